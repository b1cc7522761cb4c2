// Package reports builds the HTML dashboard report that accompanies the
// rendered PNG figure: markdown commentary converted to HTML plus the
// interactive chart snippets.
package reports

import (
	"fmt"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"salesdash/internal/aggregate"
	"salesdash/internal/charts"
	"salesdash/internal/logger"
)

const echartsCDN = "https://cdn.jsdelivr.net/npm/echarts@5/dist/echarts.min.js"

// ReportData carries everything the HTML page embeds
type ReportData struct {
	Title       string
	GeneratedAt time.Time
	Summary     aggregate.Summary
	Commentary  string // markdown, optional
	Snippets    []charts.ChartSnippet
	ImagePath   string // relative path to the dashboard PNG
}

// Generator converts report data into a complete HTML document
type Generator struct{}

// NewGenerator creates a new report generator
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateHTML builds the full report page
func (g *Generator) GenerateHTML(data *ReportData) (string, error) {
	if data == nil {
		return "", fmt.Errorf("report data is nil")
	}

	title := data.Title
	if title == "" {
		title = "Dashboard de Ventas"
	}

	var commentary string
	if data.Commentary != "" {
		commentary = g.markdownToHTML(data.Commentary)
	}

	page := g.buildCompleteHTML(title, commentary, data)
	logger.Debugf("Generated HTML report with %d characters", len(page))
	return page, nil
}

// markdownToHTML converts markdown commentary to HTML
func (g *Generator) markdownToHTML(markdownText string) string {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(markdownText))

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	opts := html.RendererOptions{Flags: htmlFlags}
	renderer := html.NewRenderer(opts)

	return string(markdown.Render(doc, renderer))
}

// buildCompleteHTML assembles the final document
func (g *Generator) buildCompleteHTML(title, commentary string, data *ReportData) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html lang=\"es\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", title)
	fmt.Fprintf(&b, "<script src=\"%s\"></script>\n", echartsCDN)
	b.WriteString("<style>\n")
	b.WriteString(pageCSS)
	b.WriteString("</style>\n</head>\n<body>\n")

	fmt.Fprintf(&b, "<h1>%s</h1>\n", title)
	fmt.Fprintf(&b, "<p class=\"generated-at\">Generado: %s</p>\n",
		data.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"))

	// KPI block mirrors the text panel of the PNG figure
	b.WriteString("<div class=\"kpi\">\n")
	fmt.Fprintf(&b, "<div><span>Total ventas</span><strong>%.0f</strong></div>\n", data.Summary.Total)
	fmt.Fprintf(&b, "<div><span>Promedio diario</span><strong>%.1f</strong></div>\n", data.Summary.DailyAverage)
	fmt.Fprintf(&b, "<div><span>Días</span><strong>%d</strong></div>\n", data.Summary.Days)
	fmt.Fprintf(&b, "<div><span>Categorías</span><strong>%d</strong></div>\n", data.Summary.Categories)
	b.WriteString("</div>\n")

	if data.ImagePath != "" {
		fmt.Fprintf(&b, "<img class=\"dashboard-png\" src=\"%s\" alt=\"%s\">\n", data.ImagePath, title)
	}

	if commentary != "" {
		b.WriteString("<div class=\"commentary\">\n")
		b.WriteString(commentary)
		b.WriteString("</div>\n")
	}

	for _, s := range data.Snippets {
		b.WriteString("<div class=\"chart\">\n")
		b.WriteString(s.HTML)
		b.WriteString("\n</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

const pageCSS = `body { font-family: "Segoe UI", Arial, sans-serif; margin: 2em auto; max-width: 1440px; color: #2b2b2b; background: #fbfbfd; }
h1 { font-weight: 600; }
.generated-at { color: #777; font-size: 0.9em; }
.kpi { display: flex; gap: 2em; margin: 1.5em 0; }
.kpi div { background: #fff; border: 1px solid #dde6f6; border-radius: 6px; padding: 0.8em 1.4em; }
.kpi span { display: block; color: #777; font-size: 0.85em; }
.kpi strong { font-size: 1.4em; }
.dashboard-png { max-width: 100%; border: 1px solid #dde6f6; border-radius: 6px; }
.commentary { background: #fff; border: 1px solid #dde6f6; border-radius: 6px; padding: 1em 1.5em; margin: 1.5em 0; }
.chart { margin: 1.5em 0; }
`
