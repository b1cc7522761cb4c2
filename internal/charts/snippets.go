package charts

import (
	"bytes"
	"encoding/json"
	"fmt"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"salesdash/internal/aggregate"
	"salesdash/internal/dataset"
)

// ChartSnippet is an embeddable ECharts fragment for the HTML report.
// Div holds the root <div>, Script the initializing <script> block, and
// HTML the complete self-contained snippet.
type ChartSnippet struct {
	ID     string
	Title  string
	Div    string
	Script string
	HTML   string
}

// Snippets builds the HTML chart fragments for the three data panels. The
// same validation and aggregation as Dashboard applies.
func (g *Generator) Snippets(tbl *dataset.Table) ([]ChartSnippet, error) {
	opts := g.opts

	if err := tbl.RequireColumns(opts.DateColumn, opts.CategoryColumn, opts.AmountColumn); err != nil {
		return nil, err
	}

	work := tbl.Copy()
	if err := work.CoerceTimes(opts.DateColumn); err != nil {
		return nil, fmt.Errorf("date column %q: %w", opts.DateColumn, err)
	}

	dates, err := work.Times(opts.DateColumn)
	if err != nil {
		return nil, err
	}
	categories := work.Strings(opts.CategoryColumn)
	amounts, err := work.Floats(opts.AmountColumn)
	if err != nil {
		return nil, fmt.Errorf("amount column %q: %w", opts.AmountColumn, err)
	}

	byDate := aggregate.SumByDate(dates, amounts)
	byCategory := aggregate.SumByCategory(categories, amounts)

	var snippets []ChartSnippet

	if timeSnippet, err := g.timeSeriesSnippet(byDate); err == nil {
		snippets = append(snippets, timeSnippet)
	}
	if barSnippet, err := g.categoryBarSnippet(byCategory); err == nil {
		snippets = append(snippets, barSnippet)
	}
	if pieSnippet, err := g.sharePieSnippet(byCategory); err == nil {
		snippets = append(snippets, pieSnippet)
	}

	return snippets, nil
}

// timeSeriesSnippet builds a go-echarts line chart of summed sales per date
func (g *Generator) timeSeriesSnippet(points []aggregate.TimePoint) (ChartSnippet, error) {
	line := echarts.NewLine()
	line.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{
			Width:  "700px",
			Height: "400px",
		}),
		echarts.WithTitleOpts(opts.Title{
			Title: "Ventas en el tiempo",
		}),
		echarts.WithYAxisOpts(opts.YAxis{
			Name: "Ventas",
		}),
		echarts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)

	xAxis := make([]string, len(points))
	lineData := make([]opts.LineData, len(points))
	for i, p := range points {
		xAxis[i] = p.Date.Format("2006-01-02")
		lineData[i] = opts.LineData{Value: p.Total}
	}

	line.SetXAxis(xAxis).
		AddSeries("Ventas", lineData).
		SetSeriesOptions(echarts.WithLineChartOpts(opts.LineChart{ShowSymbol: true}))

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return ChartSnippet{}, err
	}

	return ChartSnippet{
		ID:    "chart-ventas-tiempo",
		Title: "Ventas en el tiempo",
		HTML:  buf.String(),
	}, nil
}

// categoryBarSnippet builds a go-echarts bar chart of the top categories
func (g *Generator) categoryBarSnippet(totals []aggregate.CategoryTotal) (ChartSnippet, error) {
	top, _ := aggregate.TopN(totals, g.opts.BarTopN)
	if len(top) == 0 {
		return ChartSnippet{}, fmt.Errorf("no categories for bar snippet")
	}

	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{
			Width:  "700px",
			Height: "400px",
		}),
		echarts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Top %d categorías por ventas", len(top)),
		}),
		echarts.WithYAxisOpts(opts.YAxis{
			Name: "Ventas",
		}),
	)

	xAxis := make([]string, len(top))
	barData := make([]opts.BarData, len(top))
	for i, ct := range top {
		xAxis[i] = ct.Category
		barData[i] = opts.BarData{Value: ct.Total}
	}

	bar.SetXAxis(xAxis).AddSeries("Ventas", barData)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return ChartSnippet{}, err
	}

	return ChartSnippet{
		ID:    "chart-top-categorias",
		Title: "Top categorías por ventas",
		HTML:  buf.String(),
	}, nil
}

// sharePieSnippet builds the share-of-total pie. The option map is built
// by hand because the pie needs a 140-degree start angle and one-decimal
// percentage labels; the {d} placeholder fixes two decimals, so each slice
// carries its own precomputed formatter string.
func (g *Generator) sharePieSnippet(totals []aggregate.CategoryTotal) (ChartSnippet, error) {
	slices := pieSlices(totals, g.opts.PieTopN)
	if len(slices) == 0 {
		return ChartSnippet{}, fmt.Errorf("no categories for pie snippet")
	}

	var total float64
	for _, s := range slices {
		total += s.Total
	}
	if total <= 0 {
		return ChartSnippet{}, fmt.Errorf("pie snippet requires a positive total, got %v", total)
	}

	id := "chart-participacion"

	seriesData := make([]map[string]interface{}, 0, len(slices))
	for _, s := range slices {
		seriesData = append(seriesData, map[string]interface{}{
			"name":  s.Category,
			"value": s.Total,
			"label": map[string]interface{}{
				"formatter": fmt.Sprintf("%s: %.1f%%", s.Category, 100*s.Total/total),
			},
		})
	}

	option := map[string]interface{}{
		"title":   map[string]interface{}{"text": "Participación por categoría", "left": "center"},
		"tooltip": map[string]interface{}{"trigger": "item"},
		"series": []interface{}{map[string]interface{}{
			"type":       "pie",
			"radius":     "60%",
			"startAngle": 140,
			"data":       seriesData,
		}},
	}

	optJSON, err := json.Marshal(option)
	if err != nil {
		return ChartSnippet{}, err
	}

	div := fmt.Sprintf("<div id=%q style=\"width:700px;height:400px;\"></div>", id)
	script := fmt.Sprintf(`<script>(function(){var el=document.getElementById('%s');if(!el)return;var c=echarts.init(el);c.setOption(%s);window.addEventListener('resize',function(){c.resize();});})();</script>`, id, string(optJSON))

	completeHTML := fmt.Sprintf("%s\n%s", div, script)

	return ChartSnippet{
		ID:     id,
		Title:  "Participación por categoría",
		Div:    div,
		Script: script,
		HTML:   completeHTML,
	}, nil
}
