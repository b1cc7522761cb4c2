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

// pieSlices builds the pie entries: the top-n category totals plus a
// synthetic remainder bucket, added only when the remainder is strictly
// positive.
func pieSlices(totals []aggregate.CategoryTotal, topN int) []aggregate.CategoryTotal {
	top, others := aggregate.TopN(totals, topN)
	slices := make([]aggregate.CategoryTotal, len(top), len(top)+1)
	copy(slices, top)
	if others > 0 {
		slices = append(slices, aggregate.CategoryTotal{Category: aggregate.OthersLabel, Total: others})
	}
	return slices
}

// renderPiePanel draws the share-of-total pie with one-decimal percentage
// labels.
func (g *Generator) renderPiePanel(totals []aggregate.CategoryTotal, topN, width, height int) (image.Image, error) {
	slices := pieSlices(totals, topN)
	if len(slices) == 0 {
		return nil, fmt.Errorf("no categories to plot in pie panel")
	}

	var total float64
	for _, s := range slices {
		total += s.Total
	}
	if total <= 0 {
		return nil, fmt.Errorf("pie panel requires a positive total, got %v", total)
	}

	st := style.Current()

	values := make([]chart.Value, len(slices))
	for i, s := range slices {
		values[i] = chart.Value{
			Value: s.Total,
			Label: fmt.Sprintf("%s %.1f%%", s.Category, 100*s.Total/total),
			Style: chart.Style{
				FillColor: st.SeriesColor(i),
				FontSize:  st.Options.TickFontSize,
			},
		}
	}

	graph := chart.PieChart{
		Title: "Participación por categoría",
		TitleStyle: chart.Style{
			FontSize: st.Options.TitleFontSize,
		},
		ColorPalette: st.ChartPalette(),
		Width:        width,
		Height:       height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render pie panel: %w", err)
	}
	return png.Decode(&buf)
}
