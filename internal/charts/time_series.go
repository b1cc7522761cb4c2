package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"salesdash/internal/aggregate"
	"salesdash/internal/style"
)

// renderTimePanel draws the summed-by-date series as a connected line with
// point markers.
func (g *Generator) renderTimePanel(points []aggregate.TimePoint, width, height int) (image.Image, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no data points for time series panel")
	}

	st := style.Current()

	xValues := make([]time.Time, len(points))
	yValues := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = p.Date
		yValues[i] = p.Total
	}

	series := chart.TimeSeries{
		Name: "Ventas",
		Style: chart.Style{
			StrokeColor: st.SeriesColor(0),
			StrokeWidth: st.Options.LineWidth,
			DotColor:    st.SeriesColor(0),
			DotWidth:    4,
		},
		XValues: xValues,
		YValues: yValues,
	}

	xAxis := dateXAxis()
	// A single point leaves the axis with a zero-width range go-chart
	// cannot autoscale, so pin it to the surrounding day.
	if len(points) == 1 {
		only := points[0].Date
		xAxis.Range = &chart.ContinuousRange{
			Min: chart.TimeToFloat64(only.Add(-12 * time.Hour)),
			Max: chart.TimeToFloat64(only.Add(12 * time.Hour)),
		}
	}

	graph := chart.Chart{
		Title: "Ventas en el tiempo",
		TitleStyle: chart.Style{
			FontSize: st.Options.TitleFontSize,
		},
		ColorPalette: st.ChartPalette(),
		Width:        width,
		Height:       height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 30, Right: 20, Bottom: 30},
		},
		XAxis: xAxis,
		YAxis: chart.YAxis{
			Name: "Ventas",
			NameStyle: chart.Style{
				FontSize: st.Options.LabelFontSize,
			},
			Style: chart.Style{
				FontSize: st.Options.TickFontSize,
			},
			GridMajorStyle: chart.Style{
				StrokeColor: st.GridStrokeColor(),
				StrokeWidth: 1.0,
			},
		},
		Series: []chart.Series{series},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render time series panel: %w", err)
	}
	return png.Decode(&buf)
}
