package engine

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"
)

// Loaded tables are memoized for the process lifetime. Re-running a
// query against the same file must not re-read it; the REPL and the
// HTTP surface both lean on this.
var loadCache = struct {
	sync.Mutex
	tables map[string]*Table
}{tables: make(map[string]*Table)}

// Load reads a survey file into a Table. Supported inputs are .xlsx
// (first sheet, or the named one) and .csv. The first row holds the
// question identifiers; every later row is one respondent. Cell values
// are trimmed on ingest and empty cells become nulls.
//
// Results are cached per (path, sheet); subsequent calls return the
// cached table without touching the file.
func Load(path, sheet string) (*Table, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}
	key := abs + "\x00" + sheet

	loadCache.Lock()
	if t, ok := loadCache.tables[key]; ok {
		loadCache.Unlock()
		return t, nil
	}
	loadCache.Unlock()

	start := time.Now()

	var rows [][]string
	switch strings.ToLower(filepath.Ext(abs)) {
	case ".xlsx", ".xlsm":
		rows, err = readExcel(abs, sheet)
	case ".csv":
		rows, err = readCSV(abs)
	default:
		err = fmt.Errorf("unsupported file type %q", filepath.Ext(abs))
	}
	if err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &DataLoadError{Path: path, Err: errors.New("file contains no header row")}
	}

	builder := newTableBuilder(trimAll(rows[0]))
	for _, row := range rows[1:] {
		builder.appendRow(trimAll(row))
	}
	table := builder.build()

	loadCache.Lock()
	loadCache.tables[key] = table
	loadCache.Unlock()

	slog.Info("survey data loaded",
		"path", path,
		"respondents", table.Rows(),
		"columns", len(table.Columns()),
		"elapsed", time.Since(start))

	return table, nil
}

// ResetLoadCache drops all memoized tables. Only tests need this.
func ResetLoadCache() {
	loadCache.Lock()
	loadCache.tables = make(map[string]*Table)
	loadCache.Unlock()
}

func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	return f.GetRows(sheet)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are padded with nulls later

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func trimAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
