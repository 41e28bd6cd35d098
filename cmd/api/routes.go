package main

import (
	"net/http"
)

func (s *server) routes() {
	s.router.HandlerFunc(http.MethodGet, "/v1/healthcheck", s.rateLimit(s.handleHealthCheck()))

	s.router.HandlerFunc(http.MethodGet, "/v1/catalogs", s.rateLimit(s.handleListCatalogs()))
	s.router.HandlerFunc(http.MethodPost, "/v1/catalogs", s.rateLimit(s.handleCreateCatalog()))
	s.router.HandlerFunc(http.MethodGet, "/v1/catalogs/:id/items", s.rateLimit(s.handleListItemsInCatalog()))
	s.router.HandlerFunc(http.MethodGet, "/v1/catalogs/:id/missing-items", s.rateLimit(s.handleListItemsNotInCatalog()))

	s.router.HandlerFunc(http.MethodGet, "/v1/items", s.rateLimit(s.handleListItems()))
	s.router.HandlerFunc(http.MethodPost, "/v1/items", s.rateLimit(s.handleCreateItem()))
	s.router.HandlerFunc(http.MethodGet, "/v1/items/:id", s.rateLimit(s.handleShowItem()))
	s.router.HandlerFunc(http.MethodDelete, "/v1/items/:id", s.rateLimit(s.handleDeleteItem()))

	s.router.HandlerFunc(http.MethodPost, "/v1/associations", s.rateLimit(s.handleCreateAssociation()))
	s.router.HandlerFunc(http.MethodDelete, "/v1/associations", s.rateLimit(s.handleDeleteAssociation()))

	s.router.HandlerFunc(http.MethodGet, "/admin", s.rateLimit(s.handleAdminPage()))
	s.router.HandlerFunc(http.MethodGet, "/admin/items", s.rateLimit(s.handleAdminItemList()))
}
