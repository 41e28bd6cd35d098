package data

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the service.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The foreign keys on associations are deliberate: a delete-item racing a
// create-association for the same item must be resolved by the database,
// not by call ordering.
const schema = `
CREATE TABLE IF NOT EXISTS catalogs (
    catalog_id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
    item_id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    price BIGINT NOT NULL DEFAULT 0,
    picture_url TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS associations (
    catalog_id BIGINT NOT NULL REFERENCES catalogs(catalog_id),
    item_id BIGINT NOT NULL REFERENCES items(item_id),
    PRIMARY KEY (catalog_id, item_id)
);

CREATE INDEX IF NOT EXISTS idx_associations_item_id ON associations(item_id);
`
