package model

// Table is the aligned period-by-series matrix produced from raw
// series data. Periods are ascending and unique; Columns keep the
// order series were fetched in. Values[i][j] is the generation for
// Periods[i] and Columns[j]. A cell with no observation holds 0:
// the dataset starts in different years per source, and early-year
// gaps are treated as negligible generation rather than unknown data.
type Table struct {
	Periods []string    `json:"periods"`
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// Rows returns the number of period rows.
func (t *Table) Rows() int {
	return len(t.Periods)
}

// Column returns the values of the named column, or false when the
// column does not exist.
func (t *Table) Column(name string) ([]float64, bool) {
	for j, c := range t.Columns {
		if c != name {
			continue
		}
		out := make([]float64, len(t.Periods))
		for i := range t.Values {
			out[i] = t.Values[i][j]
		}
		return out, true
	}
	return nil, false
}

// Value returns the cell for (period, column), or false when either
// key is not present.
func (t *Table) Value(period, column string) (float64, bool) {
	row := -1
	for i, p := range t.Periods {
		if p == period {
			row = i
			break
		}
	}
	if row < 0 {
		return 0, false
	}
	for j, c := range t.Columns {
		if c == column {
			return t.Values[row][j], true
		}
	}
	return 0, false
}
