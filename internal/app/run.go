package app

import (
	"log/slog"

	"eia-trends/internal/align"
	"eia-trends/internal/model"
	"eia-trends/internal/provider"
	"eia-trends/internal/render"
	"eia-trends/internal/saver"
)

// previewRows is how many leading table rows get logged after alignment.
const previewRows = 5

// Run executes one fetch → align → render pass. Every error is fatal
// to the run; no chart or export is produced on failure.
func Run(cfg *Config, sp provider.SeriesProvider, ts saver.TableSaver) error {
	slog.Info("starting data fetch", "provider", sp.GetName(), "series", len(cfg.Series))
	raw, err := sp.FetchAll(cfg.Requests())
	if err != nil {
		return err
	}
	slog.Info("data fetching complete")

	table, err := align.Build(raw)
	if err != nil {
		return err
	}
	slog.Info("aligned table built", "rows", table.Rows(), "columns", len(table.Columns))
	logPreview(table)

	if ts != nil {
		path := cfg.ExportPath(ts.Extension())
		if err := ts.Save(table, path); err != nil {
			return err
		}
		slog.Info("table exported", "path", path, "format", ts.Extension())
	}

	if err := render.WritePNG(table, cfg.Output.ChartPath, render.DefaultOptions()); err != nil {
		return err
	}
	slog.Info("chart saved", "path", cfg.Output.ChartPath)
	return nil
}

// logPreview logs the first rows of the aligned table, one line per
// period with per-series values.
func logPreview(table *model.Table) {
	n := previewRows
	if table.Rows() < n {
		n = table.Rows()
	}
	for i := 0; i < n; i++ {
		attrs := make([]any, 0, 2*len(table.Columns)+2)
		attrs = append(attrs, "period", table.Periods[i])
		for j, name := range table.Columns {
			attrs = append(attrs, name, table.Values[i][j])
		}
		slog.Info("table row", attrs...)
	}
}
