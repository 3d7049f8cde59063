package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "survey.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	ResetLoadCache()
	path := writeTempCSV(t, `ResponseId,Country,Languages
R1,USA,Python;Go
R2,UK,Python
R3,USA,
`)

	table, err := Load(path, "")
	if err != nil {
		t.Fatal(err)
	}

	if table.Rows() != 3 {
		t.Fatalf("expected 3 rows, got %d", table.Rows())
	}
	if len(table.Columns()) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(table.Columns()))
	}

	val, ok := table.Cell(0, "Languages")
	if !ok || val != "Python;Go" {
		t.Errorf("row 0 Languages: expected Python;Go, got %q (ok=%v)", val, ok)
	}

	// Empty cell is null
	if _, ok := table.Cell(2, "Languages"); ok {
		t.Error("row 2 Languages should be null")
	}
}

func TestLoadExcel(t *testing.T) {
	ResetLoadCache()
	path := filepath.Join(t.TempDir(), "survey.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"ResponseId", "Country", "Languages"},
		{"R1", "USA", "Python;Go"},
		{"R2", "UK", "Python"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	table, err := Load(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if table.Rows() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.Rows())
	}
	val, ok := table.Cell(1, "Country")
	if !ok || val != "UK" {
		t.Errorf("row 1 Country: expected UK, got %q", val)
	}
}

func TestLoadIsMemoized(t *testing.T) {
	ResetLoadCache()
	path := writeTempCSV(t, "Country\nUSA\n")

	first, err := Load(path, "")
	if err != nil {
		t.Fatal(err)
	}

	// Rewrite the file; a second Load must still return the cache.
	if err := os.WriteFile(path, []byte("Country\nUSA\nUK\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	second, err := Load(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("expected second Load to return the cached table")
	}
	if second.Rows() != 1 {
		t.Errorf("cached table mutated: got %d rows", second.Rows())
	}
}

func TestLoadErrors(t *testing.T) {
	ResetLoadCache()

	var loadErr *DataLoadError

	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), "")
	if !errors.As(err, &loadErr) {
		t.Errorf("missing file: expected DataLoadError, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "survey.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(path, "")
	if !errors.As(err, &loadErr) {
		t.Errorf("unsupported extension: expected DataLoadError, got %v", err)
	}

	empty := writeTempCSV(t, "")
	_, err = Load(empty, "")
	if !errors.As(err, &loadErr) {
		t.Errorf("empty file: expected DataLoadError, got %v", err)
	}
}
