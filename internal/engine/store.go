package engine

// Table holds survey responses in column-major, dictionary-encoded form.
// Each column keeps one dictionary of distinct answer strings plus an
// int32 code per respondent (nullCode for empty cells). Survey columns
// are low-cardinality, so this keeps even large response files cheap to
// scan repeatedly.
type Table struct {
	cols   []*column
	byName map[string]*column
	names  []string
	rows   int
}

const nullCode int32 = -1

type column struct {
	name  string
	codes []int32
	dict  []string // ID -> value, in first-appearance order
	index map[string]int32
}

// Rows returns the number of respondents.
func (t *Table) Rows() int { return t.rows }

// Columns returns all column names in source-file order.
func (t *Table) Columns() []string { return t.names }

// HasColumn reports whether a column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Cell returns the value at (row, column). ok is false for a null cell
// or an unknown column.
func (t *Table) Cell(row int, name string) (string, bool) {
	col, exists := t.byName[name]
	if !exists || row < 0 || row >= t.rows {
		return "", false
	}
	code := col.codes[row]
	if code == nullCode {
		return "", false
	}
	return col.dict[code], true
}

// Row returns one respondent's answers in column order, "" for nulls.
func (t *Table) Row(row int) []string {
	out := make([]string, len(t.cols))
	for i, col := range t.cols {
		if code := col.codes[row]; code != nullCode {
			out[i] = col.dict[code]
		}
	}
	return out
}

// distinct returns the column's dictionary: every distinct non-null
// value, in first-appearance order.
func (c *column) distinct() []string { return c.dict }

// code returns the dictionary ID of value, or (nullCode, false) if the
// value never occurs in the column.
func (c *column) code(value string) (int32, bool) {
	id, ok := c.index[value]
	if !ok {
		return nullCode, false
	}
	return id, true
}

// tableBuilder accumulates rows during load, dictionary-encoding as it
// goes. build seals the table; it is treated as immutable afterwards.
type tableBuilder struct {
	table *Table
}

func newTableBuilder(headers []string) *tableBuilder {
	t := &Table{
		cols:   make([]*column, len(headers)),
		byName: make(map[string]*column, len(headers)),
		names:  append([]string(nil), headers...),
	}
	for i, name := range headers {
		col := &column{name: name, index: make(map[string]int32)}
		t.cols[i] = col
		t.byName[name] = col
	}
	return &tableBuilder{table: t}
}

// appendRow adds one respondent. Values beyond the header width are
// dropped; missing trailing values become nulls.
func (b *tableBuilder) appendRow(values []string) {
	for i, col := range b.table.cols {
		var val string
		if i < len(values) {
			val = values[i]
		}
		if val == "" {
			col.codes = append(col.codes, nullCode)
			continue
		}
		id, ok := col.index[val]
		if !ok {
			id = int32(len(col.dict))
			col.dict = append(col.dict, val)
			col.index[val] = id
		}
		col.codes = append(col.codes, id)
	}
	b.table.rows++
}

func (b *tableBuilder) build() *Table { return b.table }
