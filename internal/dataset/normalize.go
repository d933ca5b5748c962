package dataset

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrMissingPostBody signals that the one hard precondition of the pipeline
// failed: the free-text column sentiment analysis operates on is absent.
var ErrMissingPostBody = errors.New(`missing required column "Post Body"`)

// timestampLayouts are tried in order. Slashed dates read month-first,
// matching the upstream export convention.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006 15:04",
	"1/2/2006",
	"2006/01/02",
	"01-02-06 15:04",
	"01-02-06",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// Normalize coerces a raw table into typed columns per the schema.
//
// Column names are trimmed before matching. Schema columns coerce to their
// declared kind; columns outside the schema pass through as text so the
// response column list stays faithful to the input. The only hard failure is
// a missing "Post Body" column.
func Normalize(raw *RawTable, schema Schema) (*TypedTable, error) {
	flags := make(map[string]bool, 4)
	for _, name := range FlagColumns() {
		flags[name] = true
	}

	table := &TypedTable{
		cols: make(map[string]*Column, len(raw.Header)),
		rows: len(raw.Rows),
	}

	for idx, rawName := range raw.Header {
		name := strings.TrimSpace(rawName)
		if name == "" {
			continue
		}
		if _, dup := table.cols[name]; dup {
			// first occurrence wins
			continue
		}

		kind, known := schema[name]
		if !known {
			kind = KindText
		}

		col := &Column{Name: name, Kind: kind}
		switch kind {
		case KindInteger:
			col.Ints = make([]int64, len(raw.Rows))
			for i, row := range raw.Rows {
				cell := row[idx]
				if flags[name] && strings.TrimSpace(cell) == "" {
					cell = "0"
				}
				col.Ints[i] = coerceInt(cell)
			}
		case KindText:
			col.Texts = make([]string, len(raw.Rows))
			for i, row := range raw.Rows {
				col.Texts[i] = row[idx]
			}
		case KindTimestamp:
			col.Times = make([]Timestamp, len(raw.Rows))
			for i, row := range raw.Rows {
				col.Times[i] = ParseTimestamp(row[idx])
			}
		}

		table.names = append(table.names, name)
		table.cols[name] = col
	}

	if !table.Has(ColPostBody) {
		return nil, ErrMissingPostBody
	}

	return table, nil
}

// coerceInt applies the parse-or-default policy: any cell that does not
// parse as a finite number becomes 0, then the value truncates to int64.
func coerceInt(cell string) int64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int64(v)
}

// ParseTimestamp parses a cell with the flexible layout list. Unparseable
// values become the explicit invalid marker, never an error.
func ParseTimestamp(cell string) Timestamp {
	s := strings.TrimSpace(cell)
	if s == "" {
		return Timestamp{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t, Valid: true}
		}
	}
	return Timestamp{}
}
