package main

import (
	"fmt"
	"net/http"

	"github.com/vmx-pso/catalog-service/internal/data"
	"github.com/vmx-pso/catalog-service/internal/validator"
)

func (s *server) handleCreateCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var requestPayload struct {
			Name string `json:"name"`
		}

		err := s.readJSON(w, r, &requestPayload)
		if err != nil {
			s.badRequestResponse(w, r, err)
			return
		}

		catalog := &data.Catalog{
			Name: requestPayload.Name,
		}

		v := validator.New()
		v.Check(catalog.Name != "", "name", "must be provided")
		v.Check(len(catalog.Name) <= 255, "name", "must not be more than 255 characters long")
		if !v.Valid() {
			s.failedValidationResponse(w, r, v.Errors)
			return
		}

		err = s.models.Catalogs.Insert(catalog)
		if err != nil {
			s.serverErrorResponse(w, r, err)
			return
		}

		headers := make(http.Header)
		headers.Set("Location", fmt.Sprintf("/v1/catalogs/%d/items", catalog.ID))

		err = s.writeJSON(w, http.StatusCreated, envelope{"catalog": catalog}, headers)
		if err != nil {
			s.serverErrorResponse(w, r, err)
		}
	}
}

func (s *server) handleListCatalogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := validator.New()

		qs := r.URL.Query()
		limit := s.readInt(qs, "limit", 10, v)
		offset := s.readInt(qs, "offset", 0, v)

		v.Check(limit >= 0, "limit", "must not be negative")
		v.Check(offset >= 0, "offset", "must not be negative")
		if !v.Valid() {
			s.failedValidationResponse(w, r, v.Errors)
			return
		}

		catalogs, err := s.models.Catalogs.GetAll(limit, offset)
		if err != nil {
			s.serverErrorResponse(w, r, err)
			return
		}

		err = s.writeJSON(w, http.StatusOK, envelope{"catalogs": catalogs, "total_count": len(catalogs)}, nil)
		if err != nil {
			s.serverErrorResponse(w, r, err)
		}
	}
}
