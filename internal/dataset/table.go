package dataset

import "time"

// RawTable is a decoded tabular file before any type coercion.
// Every cell is an opaque string; rows are padded to the header width.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// RowCount returns the number of data rows
func (t *RawTable) RowCount() int {
	return len(t.Rows)
}

// Timestamp is a parsed instant with an explicit validity marker.
// Valid is false when the source cell was blank or unparseable.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

// Column holds one typed column. Exactly one of the value slices is
// populated, according to Kind.
type Column struct {
	Name  string
	Kind  Kind
	Ints  []int64
	Texts []string
	Times []Timestamp
}

// TypedTable is a RawTable after schema coercion. Columns absent from the
// input are absent here too; consumers must check presence, never assume a
// default-filled column.
type TypedTable struct {
	names []string
	cols  map[string]*Column
	rows  int
}

// RowCount returns the number of rows
func (t *TypedTable) RowCount() int {
	return t.rows
}

// Columns returns the normalized column names in input order
func (t *TypedTable) Columns() []string {
	return t.names
}

// Has reports whether the named column is present
func (t *TypedTable) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// HasAll reports whether every named column is present
func (t *TypedTable) HasAll(names ...string) bool {
	for _, name := range names {
		if !t.Has(name) {
			return false
		}
	}
	return true
}

// Ints returns the values of an integer column, if present
func (t *TypedTable) Ints(name string) ([]int64, bool) {
	col, ok := t.cols[name]
	if !ok || col.Kind != KindInteger {
		return nil, false
	}
	return col.Ints, true
}

// Texts returns the values of a text column, if present
func (t *TypedTable) Texts(name string) ([]string, bool) {
	col, ok := t.cols[name]
	if !ok || col.Kind != KindText {
		return nil, false
	}
	return col.Texts, true
}

// Times returns the values of a timestamp column, if present
func (t *TypedTable) Times(name string) ([]Timestamp, bool) {
	col, ok := t.cols[name]
	if !ok || col.Kind != KindTimestamp {
		return nil, false
	}
	return col.Times, true
}

// Value returns the typed value at (name, row), or nil when the column is
// absent. Used by consumers that project arbitrary schema fields.
func (t *TypedTable) Value(name string, row int) (interface{}, bool) {
	col, ok := t.cols[name]
	if !ok || row < 0 || row >= t.rows {
		return nil, false
	}
	switch col.Kind {
	case KindInteger:
		return col.Ints[row], true
	case KindText:
		return col.Texts[row], true
	default:
		return col.Times[row], true
	}
}
