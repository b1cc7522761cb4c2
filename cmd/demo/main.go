// Demo renders a dashboard from a synthetic sales table and writes it to
// dashboard.png, plus the HTML report next to it. Useful for eyeballing
// panel layout without running the service.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"salesdash/internal/charts"
	"salesdash/internal/dataset"
	"salesdash/internal/reports"
	"salesdash/internal/style"
)

func main() {
	outDir := "demo_output"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	style.SetDefaults(nil, nil)

	tbl := syntheticSales()
	log.Printf("Generated %d synthetic sales rows", tbl.Len())

	generator := charts.NewGenerator(charts.Options{})

	figure, err := generator.Dashboard(tbl)
	if err != nil {
		log.Fatalf("Dashboard rendering failed: %v", err)
	}

	pngPath := filepath.Join(outDir, "dashboard.png")
	if err := figure.WriteFile(pngPath); err != nil {
		log.Fatalf("Failed to write PNG: %v", err)
	}
	log.Printf("Wrote %s", pngPath)

	summary, _, err := generator.Aggregates(tbl)
	if err != nil {
		log.Fatalf("Aggregation failed: %v", err)
	}
	snippets, err := generator.Snippets(tbl)
	if err != nil {
		log.Fatalf("Snippet generation failed: %v", err)
	}

	page, err := reports.NewGenerator().GenerateHTML(&reports.ReportData{
		GeneratedAt: time.Now().UTC(),
		Summary:     summary,
		Snippets:    snippets,
		ImagePath:   "dashboard.png",
	})
	if err != nil {
		log.Fatalf("Report generation failed: %v", err)
	}

	htmlPath := filepath.Join(outDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(page), 0644); err != nil {
		log.Fatalf("Failed to write HTML: %v", err)
	}
	log.Printf("Wrote %s", htmlPath)
}

// syntheticSales builds 30 consecutive days of sales across five categories
// with a fixed seed so the output is reproducible
func syntheticSales() *dataset.Table {
	rng := rand.New(rand.NewSource(42))
	categories := []string{"A", "B", "C", "D", "E"}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tbl := dataset.New("fecha", "categoria", "ventas")
	for day := 0; day < 30; day++ {
		date := start.AddDate(0, 0, day).Format("2006-01-02")
		for _, cat := range categories {
			amount := 50 + rng.Intn(450)
			tbl.Append(map[string]interface{}{
				"fecha":     date,
				"categoria": cat,
				"ventas":    fmt.Sprintf("%d", amount),
			})
		}
	}
	return tbl
}
