package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Decode errors, mapped to client-input errors by the transport layer.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrUnreadable        = errors.New("could not read file")
)

// Decode reads an uploaded tabular file into a RawTable. The declared file
// extension selects the decode strategy: .csv, or .xls/.xlsx via excelize.
// Any other extension is a client error.
func Decode(filename string, r io.Reader) (*RawTable, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return decodeCSV(r)
	case ".xls", ".xlsx":
		return decodeExcel(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// decodeCSV reads a delimited file. Cells stay raw strings so blank cells
// remain empty rather than becoming a textual null marker.
func decodeCSV(r io.Reader) (*RawTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrUnreadable)
	}

	header := records[0]
	rows := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, padRow(record, len(header)))
	}

	return &RawTable{Header: header, Rows: rows}, nil
}

// decodeExcel reads the first sheet of a spreadsheet. Row 0 is the header;
// excelize returns cells as display strings, which keeps the coercion path
// identical to CSV input.
func decodeExcel(r io.Reader) (*RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no sheets", ErrUnreadable)
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty sheet", ErrUnreadable)
	}

	header := records[0]
	rows := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, padRow(record, len(header)))
	}

	return &RawTable{Header: header, Rows: rows}, nil
}

// padRow aligns a record to the header width: short rows gain empty cells,
// overlong rows are truncated to the declared columns.
func padRow(record []string, width int) []string {
	if len(record) == width {
		return record
	}
	row := make([]string, width)
	copy(row, record)
	return row
}
