package charts

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"

	"salesdash/internal/aggregate"
	"salesdash/internal/dataset"
	"salesdash/internal/logger"
	"salesdash/internal/style"
)

// Dashboard validates the table, aggregates it, and renders the four-panel
// figure: time series top-left, category bars top-right, share pie
// bottom-left, KPI text bottom-right, under a "Dashboard de Ventas"
// supertitle. The caller's table is never mutated; the returned figure is
// owned by the caller.
func (g *Generator) Dashboard(tbl *dataset.Table) (*Figure, error) {
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

	logger.Debugf("Rendering dashboard from %d rows", work.Len())

	byDate := aggregate.SumByDate(dates, amounts)
	byCategory := aggregate.SumByCategory(categories, amounts)
	summary := aggregate.Summarize(dates, categories, amounts)

	timePanel, err := g.renderTimePanel(byDate, panelWidth, panelHeight)
	if err != nil {
		return nil, err
	}
	barPanel, err := g.renderBarPanel(byCategory, opts.BarTopN, panelWidth, panelHeight)
	if err != nil {
		return nil, err
	}
	piePanel, err := g.renderPiePanel(byCategory, opts.PieTopN, panelWidth, panelHeight)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(figureWidth, figureHeight+titleBand)
	bg := style.FigureColor
	dc.SetRGB255(int(bg.R), int(bg.G), int(bg.B))
	dc.Clear()

	if err := drawSupertitle(dc, "Dashboard de Ventas"); err != nil {
		return nil, err
	}

	dc.DrawImage(timePanel, 0, titleBand)
	dc.DrawImage(barPanel, panelWidth, titleBand)
	dc.DrawImage(piePanel, 0, titleBand+panelHeight)
	drawKPIPanel(dc, summary, panelWidth, float64(titleBand+panelHeight), panelWidth, panelHeight)

	logger.Infof("Dashboard rendered: total=%s days=%d categories=%d",
		formatThousands(summary.Total), summary.Days, summary.Categories)

	return &Figure{img: dc.Image()}, nil
}

// drawSupertitle centers the figure title in the reserved top band
func drawSupertitle(dc *gg.Context, title string) error {
	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("failed to load title font: %w", err)
	}

	face := truetype.NewFace(font, &truetype.Options{Size: 20, DPI: 72})
	dc.SetFontFace(face)
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, figureWidth/2, titleBand/2, 0.5, 0.4)
	return nil
}
