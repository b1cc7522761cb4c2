package charts

import (
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"salesdash/internal/aggregate"
)

// drawKPIPanel writes the summary statistics as a monospaced text block
// anchored at the top-left of the given cell. The cell carries no axis
// decorations, only text on the figure face.
func drawKPIPanel(dc *gg.Context, s aggregate.Summary, x, y, width, height float64) {
	lines := []string{
		fmt.Sprintf("Total ventas: %s", formatThousands(s.Total)),
		fmt.Sprintf("Promedio diario: %s", formatThousands(s.DailyAverage)),
		fmt.Sprintf("Días: %d", s.Days),
		fmt.Sprintf("Categorías: %d", s.Categories),
	}

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(0.17, 0.17, 0.17)

	padX := x + 0.02*width
	padY := y + 0.05*height
	const lineHeight = 22.0
	for i, line := range lines {
		dc.DrawString(line, padX, padY+float64(i+1)*lineHeight)
	}
}
