package saver

import (
	"strings"

	"eia-trends/internal/model"
)

// TableSaver is the abstraction for exporting the aligned table.
// High-level (main) injects the implementation; low-level (run flow)
// depends only on the interface.
type TableSaver interface {
	Save(table *model.Table, path string) error
	Extension() string
}

// NewTableSaver creates an implementation by format (csv, parquet, json).
// Returns nil if format not supported.
func NewTableSaver(format string) TableSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	case "json":
		return JSONSaver{}
	default:
		return nil
	}
}
