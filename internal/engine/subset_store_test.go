package engine

import (
	"bytes"
	"encoding/csv"
	"errors"
	"reflect"
	"sort"
	"testing"
)

func TestSubsetStoreLifecycle(t *testing.T) {
	table, catalog := surveyFixture(t)
	store := NewSubsetStore()

	if _, err := store.Get(); !errors.Is(err, ErrNoActiveSubset) {
		t.Fatalf("fresh store: expected ErrNoActiveSubset, got %v", err)
	}

	first, err := Filter(table, catalog, "Country", "USA")
	if err != nil {
		t.Fatal(err)
	}
	store.Save(first)

	got, err := store.Get()
	if err != nil {
		t.Fatal(err)
	}
	if got != first {
		t.Error("Get should return the saved subset")
	}

	// Saving again replaces; there is no history.
	second, err := Filter(table, catalog, "Country", "UK")
	if err != nil {
		t.Fatal(err)
	}
	store.Save(second)
	if got, _ := store.Get(); got != second {
		t.Error("Save should replace the previous subset")
	}

	// After Clear, subset-scoped queries must fail rather than fall
	// back to full-table stats.
	store.Clear()
	if _, err := store.Get(); !errors.Is(err, ErrNoActiveSubset) {
		t.Errorf("cleared store: expected ErrNoActiveSubset, got %v", err)
	}
}

func TestExportCSVRoundTrip(t *testing.T) {
	table, catalog := surveyFixture(t)

	sub, err := Filter(table, catalog, "Country", "USA")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, table, sub); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(records[0], table.Columns()) {
		t.Errorf("header mismatch: %v", records[0])
	}

	// Row-content equality, order-independent.
	var got, want []string
	for _, rec := range records[1:] {
		got = append(got, rec[0]+"|"+rec[1]+"|"+rec[2]+"|"+rec[3])
	}
	for _, row := range sub.RowIndices() {
		vals := table.Row(row)
		want = append(want, vals[0]+"|"+vals[1]+"|"+vals[2]+"|"+vals[3])
	}
	sort.Strings(got)
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("exported rows mismatch:\n got %v\nwant %v", got, want)
	}
}
