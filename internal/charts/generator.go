// Package charts renders the four-panel sales dashboard: a time series of
// summed amounts, a ranked category bar chart, a share-of-total pie, and a
// KPI text panel, composed on a 2x2 grid with a supertitle.
package charts

import (
	"image"
	"image/png"
	"io"
	"os"
)

// Defaults for the dashboard options
const (
	DefaultDateColumn     = "fecha"
	DefaultCategoryColumn = "categoria"
	DefaultAmountColumn   = "ventas"
	DefaultBarTopN        = 8
	DefaultPieTopN        = 6
)

// Dashboard figure dimensions: a 14x9-unit figure at 100px per unit, plus
// a band reserved for the supertitle.
const (
	figureWidth  = 1400
	figureHeight = 900
	titleBand    = 60
	panelWidth   = figureWidth / 2
	panelHeight  = figureHeight / 2
)

// Options configures which columns the dashboard reads and how deep the
// category panels truncate. Zero values fall back to the defaults; a
// negative top-N keeps no ranked categories, so the pie collapses to the
// single remainder slice and the bar panel fails for lack of bars.
type Options struct {
	DateColumn     string
	CategoryColumn string
	AmountColumn   string
	BarTopN        int
	PieTopN        int
}

func (o Options) withDefaults() Options {
	if o.DateColumn == "" {
		o.DateColumn = DefaultDateColumn
	}
	if o.CategoryColumn == "" {
		o.CategoryColumn = DefaultCategoryColumn
	}
	if o.AmountColumn == "" {
		o.AmountColumn = DefaultAmountColumn
	}
	if o.BarTopN == 0 {
		o.BarTopN = DefaultBarTopN
	}
	if o.PieTopN == 0 {
		o.PieTopN = DefaultPieTopN
	}
	return o
}

// Generator renders dashboards from tabular sales data
type Generator struct {
	opts Options
}

// NewGenerator creates a dashboard generator with the given options
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts.withDefaults()}
}

// Options returns the generator's effective options
func (g *Generator) Options() Options {
	return g.opts
}

// Figure is a composed dashboard image. The caller owns it; no caching or
// disposal happens here.
type Figure struct {
	img image.Image
}

// Image returns the underlying image
func (f *Figure) Image() image.Image {
	return f.img
}

// EncodePNG writes the figure as PNG
func (f *Figure) EncodePNG(w io.Writer) error {
	return png.Encode(w, f.img)
}

// WriteFile writes the figure as a PNG file
func (f *Figure) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return f.EncodePNG(file)
}
