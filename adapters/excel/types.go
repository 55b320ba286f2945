package excel

import "errors"

// RawRowData represents a row of raw spreadsheet data as string key-value pairs
type RawRowData map[string]string

// ExcelData represents the complete spreadsheet dataset
type ExcelData struct {
	Headers []string     // Column headers
	Rows    []RawRowData // Data rows
}

var (
	ErrColumnNotFound = errors.New("column not found")
	ErrNotNumeric     = errors.New("cell is not numeric")
)
