package main

import (
	"errors"
	"net/http"

	"github.com/vmx-pso/catalog-service/internal/data"
	"github.com/vmx-pso/catalog-service/internal/validator"
)

func (s *server) handleCreateAssociation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var requestPayload struct {
			CatalogID int64 `json:"catalog_id"`
			ItemID    int64 `json:"item_id"`
		}

		err := s.readJSON(w, r, &requestPayload)
		if err != nil {
			s.badRequestResponse(w, r, err)
			return
		}

		v := validator.New()
		v.Check(requestPayload.CatalogID > 0, "catalog_id", "must be a positive integer")
		v.Check(requestPayload.ItemID > 0, "item_id", "must be a positive integer")
		if !v.Valid() {
			s.failedValidationResponse(w, r, v.Errors)
			return
		}

		err = s.models.Associations.Insert(requestPayload.CatalogID, requestPayload.ItemID)
		if err != nil {
			switch {
			case errors.Is(err, data.ErrDuplicateAssociation):
				s.duplicateAssociationResponse(w, r)
			case errors.Is(err, data.ErrInvalidReference):
				v.AddError("association", "catalog and item must both exist")
				s.failedValidationResponse(w, r, v.Errors)
			default:
				s.serverErrorResponse(w, r, err)
			}
			return
		}

		association := data.Association{
			CatalogID: requestPayload.CatalogID,
			ItemID:    requestPayload.ItemID,
		}

		err = s.writeJSON(w, http.StatusCreated, envelope{"association": association}, nil)
		if err != nil {
			s.serverErrorResponse(w, r, err)
		}
	}
}

func (s *server) handleDeleteAssociation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := validator.New()

		qs := r.URL.Query()
		catalogID := s.readInt64(qs, "catalog_id", 0, v)
		itemID := s.readInt64(qs, "item_id", 0, v)

		v.Check(catalogID > 0, "catalog_id", "must be a positive integer")
		v.Check(itemID > 0, "item_id", "must be a positive integer")
		if !v.Valid() {
			s.failedValidationResponse(w, r, v.Errors)
			return
		}

		// Removing an association that does not exist is a success.
		err := s.models.Associations.Delete(catalogID, itemID)
		if err != nil {
			s.serverErrorResponse(w, r, err)
			return
		}

		err = s.writeJSON(w, http.StatusOK, envelope{"message": "successfully deleted"}, nil)
		if err != nil {
			s.serverErrorResponse(w, r, err)
		}
	}
}
