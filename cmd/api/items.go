package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vmx-pso/catalog-service/internal/data"
	"github.com/vmx-pso/catalog-service/internal/validator"
)

func (s *server) handleCreateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var requestPayload struct {
			Name        string     `json:"name"`
			Description string     `json:"description"`
			Price       data.Price `json:"price"`
			PictureURL  string     `json:"picture_url"`
			CatalogID   int64      `json:"catalog_id"`
		}

		err := s.readJSON(w, r, &requestPayload)
		if err != nil {
			s.badRequestResponse(w, r, err)
			return
		}

		item := &data.Item{
			Name:        requestPayload.Name,
			Description: requestPayload.Description,
			Price:       int64(requestPayload.Price),
			PictureURL:  requestPayload.PictureURL,
		}

		// The placeholder is taken from config at request time, not captured
		// at startup.
		if item.PictureURL == "" {
			item.PictureURL = s.cfg.defaultPictureURL
		}

		v := validator.New()

		if data.ValidateItem(v, item); !v.Valid() {
			s.failedValidationResponse(w, r, v.Errors)
			return
		}

		err = s.models.Items.Insert(item)
		if err != nil {
			s.serverErrorResponse(w, r, err)
			return
		}

		if requestPayload.CatalogID != 0 {
			err = s.models.Associations.Insert(requestPayload.CatalogID, item.ID)
			if err != nil {
				switch {
				case errors.Is(err, data.ErrInvalidReference):
					v.AddError("catalog_id", "must reference an existing catalog")
					s.failedValidationResponse(w, r, v.Errors)
				default:
					s.serverErrorResponse(w, r, err)
				}
				return
			}
		}

		headers := make(http.Header)
		headers.Set("Location", fmt.Sprintf("/v1/items/%d", item.ID))

		err = s.writeJSON(w, http.StatusCreated, envelope{"item": item}, headers)
		if err != nil {
			s.serverErrorResponse(w, r, err)
		}
	}
}

func (s *server) handleShowItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := s.readIDParam(r)
		if err != nil {
			s.notFoundResponse(w, r)
			return
		}

		item, err := s.models.Items.Get(id)
		if err != nil {
			switch {
			case errors.Is(err, data.ErrNoRecord):
				s.notFoundResponse(w, r)
			default:
				s.serverErrorResponse(w, r, err)
			}
			return
		}

		err = s.writeJSON(w, http.StatusOK, envelope{"item": item}, nil)
		if err != nil {
			s.serverErrorResponse(w, r, err)
		}
	}
}

func (s *server) handleDeleteItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := s.readIDParam(r)
		if err != nil {
			s.notFoundResponse(w, r)
			return
		}

		// Deleting an item that is already gone is a success, not an error.
		err = s.models.Items.Delete(id)
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

func (s *server) handleListItems() http.HandlerFunc {
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

		items, err := s.models.Items.GetAll(limit, offset)
		if err != nil {
			s.serverErrorResponse(w, r, err)
			return
		}

		err = s.writeJSON(w, http.StatusOK, envelope{"items": items, "total_count": len(items)}, nil)
		if err != nil {
			s.serverErrorResponse(w, r, err)
		}
	}
}

func (s *server) handleListItemsInCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := s.readIDParam(r)
		if err != nil {
			s.notFoundResponse(w, r)
			return
		}

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

		items, err := s.models.Associations.GetItemsInCatalog(id, limit, offset)
		if err != nil {
			s.serverErrorResponse(w, r, err)
			return
		}

		err = s.writeJSON(w, http.StatusOK, envelope{"items": items, "total_count": len(items)}, nil)
		if err != nil {
			s.serverErrorResponse(w, r, err)
		}
	}
}

func (s *server) handleListItemsNotInCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := s.readIDParam(r)
		if err != nil {
			s.notFoundResponse(w, r)
			return
		}

		items, err := s.models.Associations.GetItemsNotInCatalog(id)
		if err != nil {
			s.serverErrorResponse(w, r, err)
			return
		}

		err = s.writeJSON(w, http.StatusOK, envelope{"items": items, "total_count": len(items)}, nil)
		if err != nil {
			s.serverErrorResponse(w, r, err)
		}
	}
}
