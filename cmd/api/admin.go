package main

import (
	"bytes"
	_ "embed"
	"net/http"

	"github.com/vmx-pso/catalog-service/internal/data"
	"github.com/vmx-pso/catalog-service/internal/pagination"
	"github.com/vmx-pso/catalog-service/internal/validator"
)

//go:embed templates/admin.tmpl
var adminPage string

// The sidebar shows at most this many catalogs.
const adminCatalogLimit = 15

type adminPageData struct {
	Catalogs        []*data.Catalog
	Pages           [][]*data.Item
	PageCount       int
	SelectedCatalog int64
	View            string
}

func (s *server) handleAdminPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalogs, err := s.models.Catalogs.GetAll(adminCatalogLimit, 0)
		if err != nil {
			s.serverErrorResponse(w, r, err)
			return
		}

		items, err := s.models.Items.GetAll(0, 0)
		if err != nil {
			s.serverErrorResponse(w, r, err)
			return
		}

		pages, pageCount, err := pagination.Paginate(items, s.cfg.pageSize)
		if err != nil {
			s.serverErrorResponse(w, r, err)
			return
		}

		s.renderAdmin(w, r, adminPageData{
			Catalogs:  catalogs,
			Pages:     pages,
			PageCount: pageCount,
			View:      "all",
		})
	}
}

func (s *server) handleAdminItemList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := validator.New()

		qs := r.URL.Query()
		catalogID := s.readInt64(qs, "catalog_id", 0, v)
		view := s.readString(qs, "view", "in")

		v.Check(catalogID >= 0, "catalog_id", "must not be negative")
		v.Check(validator.In(view, "in", "missing"), "view", "must be 'in' or 'missing'")
		if !v.Valid() {
			s.failedValidationResponse(w, r, v.Errors)
			return
		}

		catalogs, err := s.models.Catalogs.GetAll(adminCatalogLimit, 0)
		if err != nil {
			s.serverErrorResponse(w, r, err)
			return
		}

		var items []*data.Item
		switch {
		case catalogID == 0:
			items, err = s.models.Items.GetAll(0, 0)
		case view == "missing":
			items, err = s.models.Associations.GetItemsNotInCatalog(catalogID)
		default:
			items, err = s.models.Associations.GetItemsInCatalog(catalogID, 0, 0)
		}
		if err != nil {
			s.serverErrorResponse(w, r, err)
			return
		}

		pages, pageCount, err := pagination.Paginate(items, s.cfg.pageSize)
		if err != nil {
			s.serverErrorResponse(w, r, err)
			return
		}

		s.renderAdmin(w, r, adminPageData{
			Catalogs:        catalogs,
			Pages:           pages,
			PageCount:       pageCount,
			SelectedCatalog: catalogID,
			View:            view,
		})
	}
}

// renderAdmin executes the template into a buffer first so a rendering
// failure produces an error response instead of a half-written page.
func (s *server) renderAdmin(w http.ResponseWriter, r *http.Request, pageData adminPageData) {
	var buf bytes.Buffer

	err := s.adminTmpl.Execute(&buf, pageData)
	if err != nil {
		s.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
