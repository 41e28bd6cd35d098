package data

import (
	"context"
	"database/sql"
	"time"
)

type Catalog struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CatalogModel struct {
	DB      *sql.DB
	timeout time.Duration
}

func (m *CatalogModel) Insert(catalog *Catalog) error {
	qry := `
		INSERT INTO catalogs (name)
		VALUES ($1)
		RETURNING catalog_id`

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	return m.DB.QueryRowContext(ctx, qry, catalog.Name).Scan(&catalog.ID)
}

// GetAll returns catalogs ordered by id. A limit of 0 disables paging and
// returns every row.
func (m *CatalogModel) GetAll(limit, offset int) ([]*Catalog, error) {
	qry := `
		SELECT catalog_id, name
		FROM catalogs
		ORDER BY catalog_id ASC`

	args := []interface{}{}
	if limit != 0 {
		qry += `
		LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, qry, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	catalogs := []*Catalog{}

	for rows.Next() {
		var catalog Catalog
		if err := rows.Scan(&catalog.ID, &catalog.Name); err != nil {
			return nil, err
		}
		catalogs = append(catalogs, &catalog)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return catalogs, nil
}
