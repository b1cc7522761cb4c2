package charts

import (
	"testing"
	"time"

	"salesdash/internal/aggregate"
)

func sampleTotals() []aggregate.CategoryTotal {
	return []aggregate.CategoryTotal{
		{Category: "A", Total: 130},
		{Category: "B", Total: 50},
	}
}

func TestPieSlicesOthersBucket(t *testing.T) {
	tests := []struct {
		name       string
		topN       int
		wantLabels []string
	}{
		{"top one adds remainder slice", 1, []string{"A", "Otros"}},
		{"top covers everything, no remainder", 2, []string{"A", "B"}},
		{"top beyond distinct count", 5, []string{"A", "B"}},
		{"zero moves the whole total to the remainder", 0, []string{"Otros"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slices := pieSlices(sampleTotals(), tt.topN)
			if len(slices) != len(tt.wantLabels) {
				t.Fatalf("Got %d slices, want %d", len(slices), len(tt.wantLabels))
			}
			for i, want := range tt.wantLabels {
				if slices[i].Category != want {
					t.Errorf("Slice %d = %s, want %s", i, slices[i].Category, want)
				}
			}
		})
	}
}

func TestPieSlicesPreserveTotal(t *testing.T) {
	totals := sampleTotals()
	slices := pieSlices(totals, 1)

	var sum float64
	for _, s := range slices {
		sum += s.Total
	}
	if sum != 180 {
		t.Errorf("Slice totals sum to %v, want 180", sum)
	}
	if slices[1].Total != 50 {
		t.Errorf("Otros slice = %v, want 50", slices[1].Total)
	}
}

func TestRenderBarPanelTitleCount(t *testing.T) {
	g := NewGenerator(Options{})

	// Fewer distinct categories than topN: panel renders without error and
	// the bar count is the distinct count
	img, err := g.renderBarPanel(sampleTotals(), 8, panelWidth, panelHeight)
	if err != nil {
		t.Fatalf("renderBarPanel failed: %v", err)
	}
	if img.Bounds().Dx() != panelWidth {
		t.Errorf("Panel width = %d, want %d", img.Bounds().Dx(), panelWidth)
	}
}

func TestRenderBarPanelSingleCategory(t *testing.T) {
	g := NewGenerator(Options{})

	totals := []aggregate.CategoryTotal{{Category: "A", Total: 130}}
	if _, err := g.renderBarPanel(totals, 8, panelWidth, panelHeight); err != nil {
		t.Fatalf("renderBarPanel with one category failed: %v", err)
	}
}

func TestRenderBarPanelEqualTotals(t *testing.T) {
	g := NewGenerator(Options{})

	totals := []aggregate.CategoryTotal{
		{Category: "A", Total: 75},
		{Category: "B", Total: 75},
		{Category: "C", Total: 75},
	}
	if _, err := g.renderBarPanel(totals, 8, panelWidth, panelHeight); err != nil {
		t.Fatalf("renderBarPanel with all-equal totals failed: %v", err)
	}
}

func TestRenderBarPanelNoCategories(t *testing.T) {
	g := NewGenerator(Options{})

	if _, err := g.renderBarPanel(nil, 8, panelWidth, panelHeight); err == nil {
		t.Error("Expected error for empty category set, got nil")
	}
	if _, err := g.renderBarPanel(sampleTotals(), 0, panelWidth, panelHeight); err == nil {
		t.Error("Expected error for top_n=0 bar panel, got nil")
	}
}

func TestRenderPiePanelTopNZero(t *testing.T) {
	g := NewGenerator(Options{})

	// top_n=0 renders a single remainder slice
	img, err := g.renderPiePanel(sampleTotals(), 0, panelWidth, panelHeight)
	if err != nil {
		t.Fatalf("renderPiePanel with top_n=0 failed: %v", err)
	}
	if img.Bounds().Dy() != panelHeight {
		t.Errorf("Panel height = %d, want %d", img.Bounds().Dy(), panelHeight)
	}
}

func TestNegativeTopNKeepsNothing(t *testing.T) {
	g := NewGenerator(Options{BarTopN: -1, PieTopN: -1})

	// Negative values survive the defaulting pass
	if g.Options().BarTopN != -1 || g.Options().PieTopN != -1 {
		t.Fatalf("Negative top-N should not be rewritten: %+v", g.Options())
	}

	// The pie collapses to the single remainder slice
	slices := pieSlices(sampleTotals(), g.Options().PieTopN)
	if len(slices) != 1 || slices[0].Category != aggregate.OthersLabel {
		t.Errorf("Expected a lone remainder slice, got %+v", slices)
	}
	if _, err := g.renderPiePanel(sampleTotals(), g.Options().PieTopN, panelWidth, panelHeight); err != nil {
		t.Errorf("Pie panel with negative top-N failed: %v", err)
	}

	// The bar panel has nothing to draw
	if _, err := g.renderBarPanel(sampleTotals(), g.Options().BarTopN, panelWidth, panelHeight); err == nil {
		t.Error("Expected error from bar panel with negative top-N, got nil")
	}
}

func TestRenderTimePanelEmpty(t *testing.T) {
	g := NewGenerator(Options{})

	if _, err := g.renderTimePanel(nil, panelWidth, panelHeight); err == nil {
		t.Error("Expected error for empty time series, got nil")
	}
}

func TestRenderTimePanelSinglePoint(t *testing.T) {
	g := NewGenerator(Options{})

	points := []aggregate.TimePoint{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Total: 100},
	}
	if _, err := g.renderTimePanel(points, panelWidth, panelHeight); err != nil {
		t.Fatalf("renderTimePanel with one point failed: %v", err)
	}
}
