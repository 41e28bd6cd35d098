package data

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vmx-pso/catalog-service/internal/validator"
)

type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	PictureURL  string `json:"picture_url"`
}

func ValidateItem(v *validator.Validator, item *Item) {
	v.Check(item.Name != "", "name", "must be provided")
	v.Check(len(item.Name) <= 255, "name", "must not be more than 255 characters long")
	v.Check(item.Price >= 0, "price", "must not be negative")
}

type ItemModel struct {
	DB      *sql.DB
	timeout time.Duration
}

// Insert stores the item and fills in the generated id from the insert
// itself. Looking the row back up by content would return an arbitrary match
// when two items share the same name, description and price.
func (m *ItemModel) Insert(item *Item) error {
	qry := `
		INSERT INTO items (name, description, price, picture_url)
		VALUES ($1, $2, $3, $4)
		RETURNING item_id`
	args := []interface{}{item.Name, item.Description, item.Price, item.PictureURL}

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	return m.DB.QueryRowContext(ctx, qry, args...).Scan(&item.ID)
}

func (m *ItemModel) Get(id int64) (*Item, error) {
	if id < 1 {
		return nil, ErrNoRecord
	}

	qry := `
		SELECT item_id, name, description, price, picture_url
		FROM items
		WHERE item_id = $1`

	var item Item

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	err := m.DB.QueryRowContext(ctx, qry, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.PictureURL,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNoRecord
		default:
			return nil, err
		}
	}
	return &item, nil
}

// GetAll returns items ordered by id. A limit of 0 disables paging and
// returns every row.
func (m *ItemModel) GetAll(limit, offset int) ([]*Item, error) {
	qry := `
		SELECT item_id, name, description, price, picture_url
		FROM items
		ORDER BY item_id ASC`

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

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Delete removes the item and every association referencing it in a single
// transaction. Deleting an item that does not exist is a no-op, not an error.
// Associations go first so the foreign key never sees an orphaned row.
func (m *ItemModel) Delete(id int64) error {
	if id < 1 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM associations WHERE item_id = $1`, id)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM items WHERE item_id = $1`, id)
	if err != nil {
		return err
	}

	return tx.Commit()
}
