package saver

import (
	"encoding/json"
	"os"

	"eia-trends/internal/model"
)

// JSONSaver exports the table as JSON (periods, columns, values; indent).
type JSONSaver struct{}

func (JSONSaver) Extension() string { return "json" }

func (JSONSaver) Save(table *model.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(table)
}
