package data

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
)

type Association struct {
	CatalogID int64 `json:"catalog_id"`
	ItemID    int64 `json:"item_id"`
}

type AssociationModel struct {
	DB      *sql.DB
	timeout time.Duration
}

// Insert records that an item belongs to a catalog. The composite primary
// key rejects duplicates and the foreign keys reject references to missing
// rows; both surface as distinguishable errors rather than silent success.
func (m *AssociationModel) Insert(catalogID, itemID int64) error {
	qry := `
		INSERT INTO associations (catalog_id, item_id)
		VALUES ($1, $2)`

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	_, err := m.DB.ExecContext(ctx, qry, catalogID, itemID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code.Name() {
			case "unique_violation":
				return ErrDuplicateAssociation
			case "foreign_key_violation":
				return ErrInvalidReference
			}
		}
		return err
	}

	return nil
}

// Delete removes the association if present. Deleting a pair that was never
// associated is a no-op, not an error.
func (m *AssociationModel) Delete(catalogID, itemID int64) error {
	qry := `
		DELETE FROM associations
		WHERE catalog_id = $1 AND item_id = $2`

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	_, err := m.DB.ExecContext(ctx, qry, catalogID, itemID)
	return err
}

// GetItemsInCatalog returns the items associated with a catalog, ordered by
// item id. A limit of 0 disables paging and returns every row.
func (m *AssociationModel) GetItemsInCatalog(catalogID int64, limit, offset int) ([]*Item, error) {
	qry := `
		SELECT i.item_id, i.name, i.description, i.price, i.picture_url
		FROM items i
		INNER JOIN associations a ON a.item_id = i.item_id
		WHERE a.catalog_id = $1
		ORDER BY i.item_id ASC`

	args := []interface{}{catalogID}
	if limit != 0 {
		qry += `
		LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, qry, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

// GetItemsNotInCatalog returns every item that is not associated with the
// catalog, in item-id order. The excluded-id set is built first and the full
// item list filtered against it; both reads run in one read-only transaction
// so the difference is computed over a consistent snapshot.
func (m *AssociationModel) GetItemsNotInCatalog(catalogID int64) ([]*Item, error) {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	tx, err := m.DB.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	excluded := make(map[int64]struct{})

	rows, err := tx.QueryContext(ctx, `SELECT item_id FROM associations WHERE catalog_id = $1`, catalogID)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		excluded[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	qry := `
		SELECT item_id, name, description, price, picture_url
		FROM items
		ORDER BY item_id ASC`

	rows, err = tx.QueryContext(ctx, qry)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	all, err := scanItems(rows)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	items := []*Item{}
	for _, item := range all {
		if _, ok := excluded[item.ID]; !ok {
			items = append(items, item)
		}
	}

	return items, nil
}

func scanItems(rows *sql.Rows) ([]*Item, error) {
	items := []*Item{}

	for rows.Next() {
		var item Item
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.PictureURL,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
