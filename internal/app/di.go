package app

import (
	"fmt"
	"os"

	"eia-trends/internal/provider"
	"eia-trends/internal/saver"
)

// ProvideConfig loads and validates config (for Wire). The config file
// path comes from CONFIG_PATH, default config.yaml.
func ProvideConfig() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ProvideTableSaver creates a TableSaver from config (for Wire).
// Returns nil when export is disabled; errors on an unknown format.
func ProvideTableSaver(cfg *Config) (saver.TableSaver, error) {
	if cfg.Output.ExportFormat == "" {
		return nil, nil
	}
	ts := saver.NewTableSaver(cfg.Output.ExportFormat)
	if ts == nil {
		return nil, fmt.Errorf("unsupported export_format %q (use: csv, json, parquet)", cfg.Output.ExportFormat)
	}
	return ts, nil
}

// ProvideEIAProvider creates the EIA-backed SeriesProvider (for Wire).
// Caller must call Close() when shutting down.
func ProvideEIAProvider(cfg *Config) (*provider.EIAProvider, error) {
	return provider.NewEIAProvider(cfg.API.BaseURL, cfg.API.Key)
}
