package saver

import (
	"encoding/csv"
	"os"
	"strconv"

	"eia-trends/internal/model"
)

// CSVSaver exports the table as CSV (header: period, then one column
// per series).
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(table *model.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	header := append([]string{"period"}, table.Columns...)
	if err := w.Write(header); err != nil {
		return err
	}
	for i, p := range table.Periods {
		row := make([]string, 0, len(table.Columns)+1)
		row = append(row, p)
		for _, v := range table.Values[i] {
			row = append(row, floatStr(v))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
