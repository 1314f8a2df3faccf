package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"eia-trends/internal/model"
	"eia-trends/internal/saver"
)

// fakeProvider serves canned series data, or fails every fetch.
type fakeProvider struct {
	data *model.SeriesData
	err  error
}

func (f *fakeProvider) GetName() string { return "fake" }
func (f *fakeProvider) Close() error    { return nil }

func (f *fakeProvider) FetchAll(requests []model.SeriesRequest) (*model.SeriesData, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func testConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	cfg := &Config{}
	cfg.API.Key = "k"
	cfg.Series = []SeriesEntry{{Name: "Solar", ID: "SPV"}, {Name: "Wind", ID: "WND"}}
	cfg.Output.ChartPath = filepath.Join(dir, "chart.png")
	cfg.LogLevel = "info"
	return cfg
}

func fetchedData() *model.SeriesData {
	raw := model.NewSeriesData()
	raw.Add("Solar", []model.Observation{{Period: "2020", Value: 5}, {Period: "2021", Value: 7}})
	raw.Add("Wind", []model.Observation{{Period: "2021", Value: 3}})
	return raw
}

func TestRunProducesChart(t *testing.T) {
	cfg := testConfig(t)
	sp := &fakeProvider{data: fetchedData()}

	if err := Run(cfg, sp, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(cfg.Output.ChartPath); err != nil {
		t.Errorf("chart not written: %v", err)
	}
}

func TestRunExportsTable(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.ExportFormat = "csv"
	sp := &fakeProvider{data: fetchedData()}

	if err := Run(cfg, sp, saver.NewTableSaver("csv")); err != nil {
		t.Fatalf("Run: %v", err)
	}
	exportPath := cfg.ExportPath("csv")
	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("export not written: %v", err)
	}
	want := "period,Solar,Wind\n2020,5,0\n2021,7,3\n"
	if string(data) != want {
		t.Errorf("export = %q, want %q", data, want)
	}
}

func TestRunFetchFailureProducesNothing(t *testing.T) {
	cfg := testConfig(t)
	fetchErr := errors.New("API status 404")
	sp := &fakeProvider{err: fetchErr}

	if err := Run(cfg, sp, nil); !errors.Is(err, fetchErr) {
		t.Fatalf("Run err = %v, want fetch error", err)
	}
	if _, err := os.Stat(cfg.Output.ChartPath); !os.IsNotExist(err) {
		t.Error("chart written despite fetch failure")
	}
}

func TestRunEmptyDataProducesNothing(t *testing.T) {
	cfg := testConfig(t)
	raw := model.NewSeriesData()
	raw.Add("Solar", nil)
	sp := &fakeProvider{data: raw}

	if err := Run(cfg, sp, nil); err == nil {
		t.Fatal("Run succeeded with no data, want error")
	}
	if _, err := os.Stat(cfg.Output.ChartPath); !os.IsNotExist(err) {
		t.Error("chart written despite empty data")
	}
}
