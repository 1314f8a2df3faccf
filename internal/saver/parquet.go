package saver

import (
	"github.com/parquet-go/parquet-go"

	"eia-trends/internal/model"
)

// generationRow is one flattened (period, series, generation) record
// for columnar storage.
type generationRow struct {
	Period     string  `parquet:"period"`
	Series     string  `parquet:"series"`
	Generation float64 `parquet:"generation"`
}

// ParquetSaver exports the table as Parquet, one row per cell.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(table *model.Table, path string) error {
	rows := make([]generationRow, 0, len(table.Periods)*len(table.Columns))
	for i, p := range table.Periods {
		for j, name := range table.Columns {
			rows = append(rows, generationRow{Period: p, Series: name, Generation: table.Values[i][j]})
		}
	}
	return parquet.WriteFile(path, rows)
}
