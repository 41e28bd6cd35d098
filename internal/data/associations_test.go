package data

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

func TestAssociationInsertDuplicateFails(t *testing.T) {
	models := newTestModels(t)

	catalogID := createTestCatalog(t, models, "toys")
	itemID := createTestItem(t, models, "ball", 3)

	associate(t, models, catalogID, itemID)

	err := models.Associations.Insert(catalogID, itemID)
	if !errors.Is(err, ErrDuplicateAssociation) {
		t.Errorf("got %v, want ErrDuplicateAssociation", err)
	}
}

func TestAssociationInsertConcurrentDuplicates(t *testing.T) {
	models := newTestModels(t)

	catalogID := createTestCatalog(t, models, "toys")
	itemID := createTestItem(t, models, "ball", 3)

	const workers = 8

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = models.Associations.Insert(catalogID, itemID)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrDuplicateAssociation):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Errorf("%d inserts succeeded, want exactly 1", succeeded)
	}
}

func TestAssociationInsertUnknownReferencesFail(t *testing.T) {
	models := newTestModels(t)

	catalogID := createTestCatalog(t, models, "toys")
	itemID := createTestItem(t, models, "ball", 3)

	if err := models.Associations.Insert(catalogID, 9999); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("unknown item: got %v, want ErrInvalidReference", err)
	}
	if err := models.Associations.Insert(9999, itemID); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("unknown catalog: got %v, want ErrInvalidReference", err)
	}
}

func TestAssociationDeleteMissingIsNoop(t *testing.T) {
	models := newTestModels(t)

	if err := models.Associations.Delete(42, 42); err != nil {
		t.Errorf("deleting a missing association should succeed, got %v", err)
	}
}

func TestGetItemsInCatalogOrderAndPaging(t *testing.T) {
	models := newTestModels(t)

	catalogID := createTestCatalog(t, models, "books")

	var ids []int64
	for i := 0; i < 5; i++ {
		id := createTestItem(t, models, "book", int64(i))
		associate(t, models, catalogID, id)
		ids = append(ids, id)
	}
	// An unassociated item must never show up.
	createTestItem(t, models, "stray", 1)

	all, err := models.Associations.GetItemsInCatalog(catalogID, 0, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !reflect.DeepEqual(itemIDs(all), ids) {
		t.Errorf("ids = %v, want %v", itemIDs(all), ids)
	}

	page, err := models.Associations.GetItemsInCatalog(catalogID, 2, 1)
	if err != nil {
		t.Fatalf("paged list failed: %v", err)
	}
	if !reflect.DeepEqual(itemIDs(page), ids[1:3]) {
		t.Errorf("paged ids = %v, want %v", itemIDs(page), ids[1:3])
	}
}

func TestGetItemsNotInCatalogAdjacentExclusions(t *testing.T) {
	models := newTestModels(t)

	catalogID := createTestCatalog(t, models, "featured")

	var ids []int64
	for i := 0; i < 6; i++ {
		ids = append(ids, createTestItem(t, models, "item", int64(i)))
	}

	// Associate two adjacent items; a filter that mutates the list while
	// scanning it would skip the second one.
	associate(t, models, catalogID, ids[2])
	associate(t, models, catalogID, ids[3])

	got, err := models.Associations.GetItemsNotInCatalog(catalogID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	want := []int64{ids[0], ids[1], ids[4], ids[5]}
	if !reflect.DeepEqual(itemIDs(got), want) {
		t.Errorf("ids = %v, want %v", itemIDs(got), want)
	}
}

func TestInAndNotInCatalogPartitionAllItems(t *testing.T) {
	models := newTestModels(t)

	catalogID := createTestCatalog(t, models, "mixed")

	for i := 0; i < 9; i++ {
		id := createTestItem(t, models, "item", int64(i))
		if i%3 == 0 {
			associate(t, models, catalogID, id)
		}
	}

	in, err := models.Associations.GetItemsInCatalog(catalogID, 0, 0)
	if err != nil {
		t.Fatalf("in-catalog list failed: %v", err)
	}
	notIn, err := models.Associations.GetItemsNotInCatalog(catalogID)
	if err != nil {
		t.Fatalf("not-in-catalog list failed: %v", err)
	}
	all, err := models.Items.GetAll(0, 0)
	if err != nil {
		t.Fatalf("full list failed: %v", err)
	}

	union := make(map[int64]int)
	for _, item := range in {
		union[item.ID]++
	}
	for _, item := range notIn {
		union[item.ID]++
	}

	if len(union) != len(all) {
		t.Errorf("union has %d items, want %d", len(union), len(all))
	}
	for id, n := range union {
		if n != 1 {
			t.Errorf("item %d appears in both partitions", id)
		}
	}
	for _, item := range all {
		if union[item.ID] == 0 {
			t.Errorf("item %d missing from both partitions", item.ID)
		}
	}
}
