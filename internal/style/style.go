// Package style holds the process-wide chart styling defaults. Configure
// it once with SetDefaults before rendering; it is not safe to reconfigure
// concurrently with a render in flight.
package style

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// CorporateColors is the built-in six-color palette
var CorporateColors = []drawing.Color{
	drawing.ColorFromHex("0B5FFF"), // primary blue
	drawing.ColorFromHex("00B37E"), // secondary green
	drawing.ColorFromHex("FFB020"), // accent yellow
	drawing.ColorFromHex("E11D48"), // accent red
	drawing.ColorFromHex("7C3AED"), // purple
	drawing.ColorFromHex("06B6D4"), // cyan
}

// Fixed face and line colors applied alongside any palette
var (
	FigureColor = drawing.ColorWhite
	CanvasColor = drawing.ColorFromHex("FBFBFD")
	GridColor   = drawing.ColorFromHex("DDE6F6")
	EdgeColor   = drawing.ColorFromHex("2B2B2B")
)

// Options are the tunable style parameters. Zero values fall back to the
// corresponding default when passed to SetDefaults.
type Options struct {
	FigureWidth    float64 // figure units, 100px each
	FigureHeight   float64
	TitleFontSize  float64
	LabelFontSize  float64
	TickFontSize   float64
	LegendFontSize float64
	LineWidth      float64
	GridAlpha      float64
}

// DefaultOptions returns the built-in style parameters
func DefaultOptions() Options {
	return Options{
		FigureWidth:    12,
		FigureHeight:   7,
		TitleFontSize:  16,
		LabelFontSize:  12,
		TickFontSize:   10,
		LegendFontSize: 10,
		LineWidth:      2,
		GridAlpha:      0.25,
	}
}

// Style is the active rendering configuration
type Style struct {
	Colors  []drawing.Color
	Options Options
}

var current = defaultStyle()

func defaultStyle() *Style {
	colors := make([]drawing.Color, len(CorporateColors))
	copy(colors, CorporateColors)
	return &Style{Colors: colors, Options: DefaultOptions()}
}

// SetDefaults installs the given palette and options as the process-wide
// defaults for all charts rendered afterwards. A nil palette keeps the six
// corporate colors; nil options keep the built-in parameters. Call before
// any rendering; no locking is performed.
func SetDefaults(colors []drawing.Color, opts *Options) {
	s := defaultStyle()
	if len(colors) > 0 {
		s.Colors = make([]drawing.Color, len(colors))
		copy(s.Colors, colors)
	}
	if opts != nil {
		s.Options = *opts
	}
	current = s
}

// Reset restores the built-in defaults
func Reset() {
	current = defaultStyle()
}

// Current returns the active style
func Current() *Style {
	return current
}

// SeriesColor returns the palette color for series index i, cycling when
// the palette is exhausted
func (s *Style) SeriesColor(i int) drawing.Color {
	return s.Colors[i%len(s.Colors)]
}

// GridStrokeColor returns the grid color at the configured transparency
func (s *Style) GridStrokeColor() drawing.Color {
	c := GridColor
	c.A = uint8(255 * s.Options.GridAlpha)
	return c
}

// Palette adapts the style to go-chart's ColorPalette so the figure and
// canvas faces, axis edges, and series colors follow the configuration.
type Palette struct {
	style *Style
}

// ChartPalette returns a go-chart color palette backed by this style
func (s *Style) ChartPalette() Palette {
	return Palette{style: s}
}

func (p Palette) BackgroundColor() drawing.Color       { return FigureColor }
func (p Palette) BackgroundStrokeColor() drawing.Color { return FigureColor }
func (p Palette) CanvasColor() drawing.Color           { return CanvasColor }
func (p Palette) CanvasStrokeColor() drawing.Color     { return EdgeColor }
func (p Palette) AxisStrokeColor() drawing.Color       { return EdgeColor }
func (p Palette) TextColor() drawing.Color             { return drawing.ColorBlack }
func (p Palette) GetSeriesColor(index int) drawing.Color {
	return p.style.SeriesColor(index)
}
