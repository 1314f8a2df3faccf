package app

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"eia-trends/internal/model"
)

// SeriesEntry is one configured series: friendly name plus EIA series ID.
type SeriesEntry struct {
	Name string `yaml:"name"`
	ID   string `yaml:"id"`
}

// Config holds all application configuration.
type Config struct {
	API struct {
		BaseURL string `yaml:"base_url"`
		Key     string `yaml:"key"`
	} `yaml:"api"`
	Series []SeriesEntry `yaml:"series"`
	Output struct {
		ChartPath    string `yaml:"chart_path"`
		ExportFormat string `yaml:"export_format"` // csv | json | parquet; empty disables export
		ExportPath   string `yaml:"export_path"`
	} `yaml:"output"`
	LogLevel string `yaml:"log_level"` // debug | info | warn | error
}

// defaultSeries are the renewable generation series the tool was built
// around: annual US totals per source.
var defaultSeries = []SeriesEntry{
	{Name: "Solar", ID: "ELEC.GEN.SPV-US-99.A"},
	{Name: "Wind", ID: "ELEC.GEN.WND-US-99.A"},
	{Name: "Hydroelectric", ID: "ELEC.GEN.HYC-US-99.A"},
	{Name: "Geothermal", ID: "ELEC.GEN.GEO-US-99.A"},
	{Name: "Biomass", ID: "ELEC.GEN.BIO-US-99.A"},
}

// Load reads config from a YAML file, then applies environment
// variable overrides and defaults. A missing file is not an error; the
// defaults plus environment are enough to run.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("EIA_API_KEY"); v != "" {
		cfg.API.Key = v
	}
	if v := os.Getenv("EIA_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("CHART_PATH"); v != "" {
		cfg.Output.ChartPath = v
	}
	if v := os.Getenv("EXPORT_FORMAT"); v != "" {
		cfg.Output.ExportFormat = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	// Defaults
	if len(cfg.Series) == 0 {
		cfg.Series = defaultSeries
	}
	if cfg.Output.ChartPath == "" {
		cfg.Output.ChartPath = "renewable_energy_chart.png"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.API.Key == "" {
		return fmt.Errorf("api.key is required (or set EIA_API_KEY)")
	}
	if len(c.Series) == 0 {
		return fmt.Errorf("at least one series is required")
	}
	seen := make(map[string]bool, len(c.Series))
	for _, s := range c.Series {
		if s.Name == "" || s.ID == "" {
			return fmt.Errorf("series entries need both name and id")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate series name: %s", s.Name)
		}
		seen[s.Name] = true
	}
	switch strings.ToLower(strings.TrimSpace(c.Output.ExportFormat)) {
	case "", "csv", "json", "parquet":
	default:
		return fmt.Errorf("unsupported export_format %q (use: csv, json, parquet)", c.Output.ExportFormat)
	}
	return nil
}

// Requests returns the configured series as ordered fetch requests.
func (c *Config) Requests() []model.SeriesRequest {
	reqs := make([]model.SeriesRequest, len(c.Series))
	for i, s := range c.Series {
		reqs[i] = model.SeriesRequest{Name: s.Name, ID: s.ID}
	}
	return reqs
}

// ExportPath returns the configured export destination, deriving one
// from the chart path when only a format is set.
func (c *Config) ExportPath(ext string) string {
	if c.Output.ExportPath != "" {
		return c.Output.ExportPath
	}
	base := strings.TrimSuffix(c.Output.ChartPath, ".png")
	return base + "." + ext
}
