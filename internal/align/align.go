// Package align combines independently indexed series into one
// period-keyed table: an outer join on period, sorted ascending, with
// missing cells zero-filled.
package align

import (
	"errors"
	"log/slog"
	"sort"

	"eia-trends/internal/model"
)

// ErrNoData indicates every requested series returned zero records, so
// there is nothing to combine.
var ErrNoData = errors.New("no series returned any records")

// Build aligns raw series data into a model.Table.
//
// Each non-empty series is projected to its (period, value) pairs;
// series with no records are skipped with a log note rather than
// treated as an error. Rows are the sorted union of all periods seen
// in any series; columns keep fetch order. A (period, series) cell
// with no observation is set to 0 — gaps mean negligible generation
// in early years, not unknown data. When one series carries the same
// period twice, the first occurrence wins.
//
// Build is pure: it never mutates raw, and identical input yields an
// identical table.
func Build(raw *model.SeriesData) (*model.Table, error) {
	columns := make([]string, 0, raw.Len())
	byColumn := make(map[string]map[string]float64, raw.Len())
	periodSet := make(map[string]struct{})

	for _, name := range raw.Names {
		records := raw.Records[name]
		if len(records) == 0 {
			slog.Info("no data returned for series, skipping", "series", name)
			continue
		}
		cells := make(map[string]float64, len(records))
		for _, obs := range records {
			if _, dup := cells[obs.Period]; dup {
				continue // first occurrence wins
			}
			cells[obs.Period] = obs.Value
			periodSet[obs.Period] = struct{}{}
		}
		columns = append(columns, name)
		byColumn[name] = cells
	}

	if len(columns) == 0 {
		return nil, ErrNoData
	}

	periods := make([]string, 0, len(periodSet))
	for p := range periodSet {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	values := make([][]float64, len(periods))
	for i, p := range periods {
		row := make([]float64, len(columns))
		for j, name := range columns {
			row[j] = byColumn[name][p] // zero-fill when absent
		}
		values[i] = row
	}

	return &model.Table{Periods: periods, Columns: columns, Values: values}, nil
}
