package data

import (
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
)

// newTestModels connects to the database named by CATALOG_TEST_DSN, resets
// the schema and returns models with a short query timeout. Tests that need
// a database are skipped when the variable is unset.
func newTestModels(t *testing.T) *Models {
	t.Helper()

	dsn := os.Getenv("CATALOG_TEST_DSN")
	if dsn == "" {
		t.Skip("CATALOG_TEST_DSN not set; skipping database tests")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		DROP TABLE IF EXISTS associations CASCADE;
		DROP TABLE IF EXISTS items CASCADE;
		DROP TABLE IF EXISTS catalogs CASCADE;
	`)
	if err != nil {
		t.Fatalf("failed to clean database: %v", err)
	}

	if err := CreateSchema(db); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return NewModels(db, 5*time.Second)
}

func createTestCatalog(t *testing.T, models *Models, name string) int64 {
	t.Helper()

	catalog := &Catalog{Name: name}
	if err := models.Catalogs.Insert(catalog); err != nil {
		t.Fatalf("failed to create test catalog: %v", err)
	}
	return catalog.ID
}

func createTestItem(t *testing.T, models *Models, name string, price int64) int64 {
	t.Helper()

	item := &Item{
		Name:        name,
		Description: "test item",
		Price:       price,
		PictureURL:  "https://example.com/cube.png",
	}
	if err := models.Items.Insert(item); err != nil {
		t.Fatalf("failed to create test item: %v", err)
	}
	return item.ID
}

func associate(t *testing.T, models *Models, catalogID, itemID int64) {
	t.Helper()

	if err := models.Associations.Insert(catalogID, itemID); err != nil {
		t.Fatalf("failed to create test association: %v", err)
	}
}

func itemIDs(items []*Item) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}
