// Package render draws the aligned generation table as a multi-series
// line chart and writes it to a PNG file.
package render

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	chart "github.com/wcharczuk/go-chart/v2"

	"eia-trends/internal/model"
)

// Options holds the cosmetic chart settings.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int
}

// DefaultOptions returns the renewable-generation chart theme.
func DefaultOptions() Options {
	return Options{
		Title:  "U.S. Annual Renewable Energy Generation",
		XLabel: "Year",
		YLabel: "Generation (Thousand Megawatthours)",
		Width:  1200,
		Height: 800,
	}
}

// WriteError reports a chart that could not be produced at its
// destination.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write chart %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// lineStyle matches the source chart's 2.5pt line weight; colors come
// from go-chart's default palette per series index.
func lineStyle() chart.Style {
	return chart.Style{StrokeWidth: 2.5}
}

func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor:     chart.ColorAlternateGray,
		StrokeWidth:     0.5,
		StrokeDashArray: []float64{3.0, 3.0},
	}
}

// WritePNG renders one line per table column over the period axis and
// writes the result to path.
func WritePNG(table *model.Table, path string, opts Options) error {
	xs, xTicks := buildXAxis(table.Periods)

	series := make([]chart.Series, 0, len(table.Columns))
	maxY := 0.0
	for j, name := range table.Columns {
		ys := make([]float64, len(table.Periods))
		for i := range table.Values {
			v := table.Values[i][j]
			ys[i] = v
			if v > maxY {
				maxY = v
			}
		}
		// Pad to at least two X values for go-chart
		if len(xs) == 1 {
			series = append(series, chart.ContinuousSeries{
				Name:    name,
				XValues: []float64{xs[0], xs[0] + 1},
				YValues: []float64{ys[0], ys[0]},
				Style:   lineStyle(),
			})
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(),
		})
	}

	// Baseline at 0 with a nice rounded max; avoid a zero-height Y
	// range when every cell is 0.
	if maxY <= 0 {
		maxY = 1
	}
	nMax := niceCeil(maxY * 1.05)
	yRange := &chart.ContinuousRange{Min: 0, Max: nMax}
	yTicks := valueTicks(0, nMax, 6)

	ch := chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:           opts.XLabel,
			Ticks:          xTicks,
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           opts.YLabel,
			Range:          yRange,
			Ticks:          yTicks,
			GridMajorStyle: gridStyle(),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer f.Close()
	if err := ch.Render(chart.PNG, f); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// buildXAxis maps period labels to X values. Numeric periods (the
// normal annual case) plot at their year value; otherwise rows plot at
// their index with the period string as tick label.
func buildXAxis(periods []string) ([]float64, []chart.Tick) {
	xs := make([]float64, len(periods))
	numeric := true
	for i, p := range periods {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			numeric = false
			break
		}
		xs[i] = v
	}
	if !numeric {
		for i := range xs {
			xs[i] = float64(i)
		}
	}

	// Thin ticks so long ranges stay readable.
	step := 1
	if len(periods) > 30 {
		step = len(periods) / 30
	}
	ticks := make([]chart.Tick, 0, len(periods))
	for i, p := range periods {
		if i%step != 0 && i != len(periods)-1 {
			continue
		}
		ticks = append(ticks, chart.Tick{Value: xs[i], Label: p})
	}
	if len(ticks) == 1 {
		// second tick keeps the axis happy for single-period tables
		ticks = append(ticks, chart.Tick{Value: xs[0] + 1, Label: ""})
	}
	return xs, ticks
}

// niceCeil rounds v up to a round increment for its order of magnitude.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(v)))
	return math.Ceil(v/mag) * mag
}

// valueTicks generates n evenly spaced ticks between [min, max] with
// thousands-separator labels.
func valueTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || max <= min {
		return nil
	}
	step := (max - min) / float64(n-1)
	ticks := make([]chart.Tick, 0, n)
	for i := 0; i < n; i++ {
		v := min + float64(i)*step
		ticks = append(ticks, chart.Tick{Value: v, Label: humanize.Comma(int64(math.Round(v)))})
	}
	return ticks
}
