package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/wcharczuk/go-chart/v2"

	"salesdash/internal/aggregate"
	"salesdash/internal/style"
)

// renderBarPanel draws the top-ranked category totals as a bar chart. The
// title reflects the number of bars actually rendered.
func (g *Generator) renderBarPanel(totals []aggregate.CategoryTotal, topN, width, height int) (image.Image, error) {
	top, _ := aggregate.TopN(totals, topN)
	if len(top) == 0 {
		return nil, fmt.Errorf("no categories to plot (top_n=%d over %d categories)", topN, len(totals))
	}

	st := style.Current()

	var maxTotal float64
	bars := make([]chart.Value, len(top))
	for i, ct := range top {
		if ct.Total > maxTotal {
			maxTotal = ct.Total
		}
		bars[i] = chart.Value{
			Value: ct.Total,
			Label: ct.Category,
			Style: chart.Style{
				FillColor:   st.SeriesColor(i),
				StrokeColor: st.SeriesColor(i),
			},
		}
	}

	// All-equal bar values leave go-chart with a zero-width value range it
	// cannot autoscale, so pin the Y range explicitly.
	yMax := maxTotal * 1.1
	if yMax <= 0 {
		yMax = 1
	}

	barWidth := (width - 150) / len(bars)
	if barWidth > 80 {
		barWidth = 80
	}

	graph := chart.BarChart{
		Title: fmt.Sprintf("Top %d categorías por ventas", len(bars)),
		TitleStyle: chart.Style{
			FontSize: st.Options.TitleFontSize,
		},
		ColorPalette: st.ChartPalette(),
		Width:        width,
		Height:       height,
		BarWidth:     barWidth,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 30, Right: 20, Bottom: 30},
		},
		XAxis: chart.Style{
			FontSize:            st.Options.TickFontSize,
			TextRotationDegrees: 45,
		},
		YAxis: chart.YAxis{
			Name: "Ventas",
			NameStyle: chart.Style{
				FontSize: st.Options.LabelFontSize,
			},
			Style: chart.Style{
				FontSize: st.Options.TickFontSize,
			},
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
			GridMajorStyle: chart.Style{
				StrokeColor: st.GridStrokeColor(),
				StrokeWidth: 1.0,
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render category bar panel: %w", err)
	}
	return png.Decode(&buf)
}
