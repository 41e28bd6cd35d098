package data

import (
	"database/sql"
	"errors"
	"time"
)

var (
	ErrNoRecord             = errors.New("record not found")
	ErrDuplicateAssociation = errors.New("association already exists")
	ErrInvalidReference     = errors.New("referenced catalog or item does not exist")
)

const defaultQueryTimeout = 3 * time.Second

type Models struct {
	Catalogs     CatalogModel
	Items        ItemModel
	Associations AssociationModel
}

// NewModels wires the entity models to a shared connection pool. Every
// database round trip is bounded by timeout; pass zero for the default.
func NewModels(db *sql.DB, timeout time.Duration) *Models {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &Models{
		Catalogs:     CatalogModel{DB: db, timeout: timeout},
		Items:        ItemModel{DB: db, timeout: timeout},
		Associations: AssociationModel{DB: db, timeout: timeout},
	}
}
