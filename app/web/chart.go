package web

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Semior001/wikiviews/app/compare"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const chartWidth = 1024

// dark palette of the rendered chart
var (
	chartDarkBg   = drawing.ColorFromHex("111111")
	chartDarkFg   = drawing.ColorFromHex("f2f5fa")
	chartDarkGrid = drawing.ColorFromHex("283442")

	seriesColors = []drawing.Color{
		drawing.ColorFromHex("636efa"),
		drawing.ColorFromHex("ef553b"),
	}
)

// renderChart renders the chart spec into a PNG image. It returns nil
// bytes when there are no points to draw.
func renderChart(spec compare.ChartSpec) ([]byte, error) {
	var series []chart.Series
	var names []string
	var colors []drawing.Color

	for i, s := range spec.Series {
		var xs []time.Time
		var ys []float64
		for _, p := range s.Points {
			d, err := time.Parse("20060102", p.Date)
			if err != nil {
				continue
			}
			xs = append(xs, d)
			ys = append(ys, float64(p.Views))
		}

		if len(xs) == 0 {
			continue
		}

		// a single-point series can't be rendered, pad it to a day-long segment
		if len(xs) == 1 {
			xs = append(xs, xs[0].Add(24*time.Hour))
			ys = append(ys, ys[0])
		}

		col := seriesColors[i%len(seriesColors)]
		series = append(series, chart.TimeSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: col, StrokeWidth: 2},
		})
		names = append(names, s.Name)
		colors = append(colors, col)
	}

	if len(series) == 0 {
		return nil, nil
	}

	bgCol, fgCol, gridCol := drawing.ColorWhite, drawing.ColorFromHex("333333"), drawing.ColorFromHex("efefef")
	if spec.Dark {
		bgCol, fgCol, gridCol = chartDarkBg, chartDarkFg, chartDarkGrid
	}

	ch := chart.Chart{
		Title:      spec.Title,
		TitleStyle: chart.Style{FontColor: fgCol},
		Width:      chartWidth,
		Height:     spec.Height,
		Background: chart.Style{
			FillColor: bgCol,
			Padding:   chart.Box{Top: 50, Left: 50, Right: 50, Bottom: 50},
		},
		Canvas: chart.Style{FillColor: bgCol},
		XAxis: chart.XAxis{
			Name:           spec.XLabel,
			NameStyle:      chart.Style{FontColor: fgCol},
			Style:          chart.Style{FontColor: fgCol, StrokeColor: gridCol},
			GridMajorStyle: chart.Style{StrokeColor: gridCol, StrokeWidth: 1},
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
		},
		YAxis: chart.YAxis{
			Name:           spec.YLabel,
			NameStyle:      chart.Style{FontColor: fgCol},
			Style:          chart.Style{FontColor: fgCol, StrokeColor: gridCol},
			GridMajorStyle: chart.Style{StrokeColor: gridCol, StrokeWidth: 1},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{legend(spec.LegendTitle, names, colors, fgCol)}

	buf := &bytes.Buffer{}
	if err := ch.Render(chart.PNG, buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}

	return buf.Bytes(), nil
}

// legend draws a horizontal legend at the bottom-right corner of the
// canvas, in the manner of chart.Legend.
func legend(title string, names []string, colors []drawing.Color, fg drawing.Color) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		const (
			swatch   = 25 // width of a series color sample
			gap      = 5  // between a sample and its label
			entryGap = 15 // between legend entries
			margin   = 10 // distance from the canvas corner
		)

		r.SetFont(defaults.GetFont())
		r.SetFontSize(defaults.GetFontSize(9.0))

		entries := names
		if title != "" {
			entries = append([]string{title}, names...)
		}

		width := len(names)*(swatch+gap) + entryGap*(len(entries)-1)
		height := 0
		widths := make([]int, len(entries))
		for i, e := range entries {
			box := r.MeasureText(e)
			widths[i] = box.Width()
			width += box.Width()
			if box.Height() > height {
				height = box.Height()
			}
		}

		x := cb.Right - width - margin
		y := cb.Bottom - margin

		for i, e := range entries {
			if title == "" || i > 0 {
				idx := i
				if title != "" {
					idx = i - 1
				}

				r.SetStrokeColor(colors[idx])
				r.SetStrokeWidth(3)
				r.MoveTo(x, y-height/3)
				r.LineTo(x+swatch, y-height/3)
				r.Stroke()
				x += swatch + gap
			}

			r.SetFontColor(fg)
			r.Text(e, x, y)
			x += widths[i] + entryGap
		}
	}
}
