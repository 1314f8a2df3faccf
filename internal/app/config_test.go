package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Series) != 5 {
		t.Errorf("default series = %d, want 5", len(cfg.Series))
	}
	if cfg.Series[0].Name != "Solar" {
		t.Errorf("first series = %q, want Solar", cfg.Series[0].Name)
	}
	if cfg.Output.ChartPath != "renewable_energy_chart.png" {
		t.Errorf("chart path = %q", cfg.Output.ChartPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want info", cfg.LogLevel)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
api:
  base_url: http://localhost:9999/v2
  key: abc123
series:
  - name: Wind
    id: ELEC.GEN.WND-US-99.A
output:
  chart_path: out/wind.png
  export_format: csv
log_level: debug
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:9999/v2" || cfg.API.Key != "abc123" {
		t.Errorf("api = %+v", cfg.API)
	}
	if len(cfg.Series) != 1 || cfg.Series[0].Name != "Wind" {
		t.Errorf("series = %+v", cfg.Series)
	}
	if cfg.Output.ChartPath != "out/wind.png" || cfg.Output.ExportFormat != "csv" {
		t.Errorf("output = %+v", cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("EIA_API_KEY", "from-env")
	t.Setenv("CHART_PATH", "env.png")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.Key != "from-env" {
		t.Errorf("api key = %q, want from-env", cfg.API.Key)
	}
	if cfg.Output.ChartPath != "env.png" {
		t.Errorf("chart path = %q, want env.png", cfg.Output.ChartPath)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Series = defaultSeries
	if err := cfg.Validate(); err == nil {
		t.Error("missing api key: want error")
	}

	cfg.API.Key = "k"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config: %v", err)
	}

	cfg.Output.ExportFormat = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("bad export format: want error")
	}
	cfg.Output.ExportFormat = ""

	cfg.Series = []SeriesEntry{{Name: "Solar", ID: "a"}, {Name: "Solar", ID: "b"}}
	if err := cfg.Validate(); err == nil {
		t.Error("duplicate series name: want error")
	}

	cfg.Series = []SeriesEntry{{Name: "Solar"}}
	if err := cfg.Validate(); err == nil {
		t.Error("series missing id: want error")
	}
}

func TestRequestsPreserveOrder(t *testing.T) {
	cfg := &Config{Series: []SeriesEntry{{Name: "b", ID: "2"}, {Name: "a", ID: "1"}}}
	reqs := cfg.Requests()
	if reqs[0].Name != "b" || reqs[1].Name != "a" {
		t.Errorf("requests = %+v, want config order", reqs)
	}
}

func TestExportPath(t *testing.T) {
	cfg := &Config{}
	cfg.Output.ChartPath = "out/chart.png"
	if got := cfg.ExportPath("csv"); got != "out/chart.csv" {
		t.Errorf("derived = %q, want out/chart.csv", got)
	}
	cfg.Output.ExportPath = "table.parquet"
	if got := cfg.ExportPath("parquet"); got != "table.parquet" {
		t.Errorf("explicit = %q, want table.parquet", got)
	}
}
