package aggregate

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

// The worked example: three rows over two days and two categories.
var (
	exampleDates      = []time.Time{day(1), day(1), day(2)}
	exampleCategories = []string{"A", "B", "A"}
	exampleAmounts    = []float64{100, 50, 30}
)

func TestSumByDate(t *testing.T) {
	points := SumByDate(exampleDates, exampleAmounts)

	if len(points) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(points))
	}
	if !points[0].Date.Equal(day(1)) || points[0].Total != 150 {
		t.Errorf("Point 0 = %+v, want day 1 total 150", points[0])
	}
	if !points[1].Date.Equal(day(2)) || points[1].Total != 30 {
		t.Errorf("Point 1 = %+v, want day 2 total 30", points[1])
	}
}

func TestSumByDateOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	dates := make([]time.Time, len(exampleDates))
	amounts := make([]float64, len(exampleAmounts))
	copy(dates, exampleDates)
	copy(amounts, exampleAmounts)

	want := SumByDate(exampleDates, exampleAmounts)

	for trial := 0; trial < 10; trial++ {
		rng.Shuffle(len(dates), func(i, j int) {
			dates[i], dates[j] = dates[j], dates[i]
			amounts[i], amounts[j] = amounts[j], amounts[i]
		})

		got := SumByDate(dates, amounts)
		if len(got) != len(want) {
			t.Fatalf("Trial %d: length %d, want %d", trial, len(got), len(want))
		}
		for i := range want {
			if !got[i].Date.Equal(want[i].Date) || got[i].Total != want[i].Total {
				t.Errorf("Trial %d: point %d = %+v, want %+v", trial, i, got[i], want[i])
			}
		}
	}
}

func TestSumByCategory(t *testing.T) {
	totals := SumByCategory(exampleCategories, exampleAmounts)

	if len(totals) != 2 {
		t.Fatalf("Expected 2 totals, got %d", len(totals))
	}
	if totals[0].Category != "A" || totals[0].Total != 130 {
		t.Errorf("Top category = %+v, want A:130", totals[0])
	}
	if totals[1].Category != "B" || totals[1].Total != 50 {
		t.Errorf("Second category = %+v, want B:50", totals[1])
	}
}

func TestSumByCategoryDeterministicTies(t *testing.T) {
	totals := SumByCategory([]string{"Z", "M", "A"}, []float64{10, 10, 10})

	want := []string{"A", "M", "Z"}
	for i, ct := range totals {
		if ct.Category != want[i] {
			t.Errorf("Tie order position %d = %s, want %s", i, ct.Category, want[i])
		}
	}
}

func TestTopN(t *testing.T) {
	totals := SumByCategory(exampleCategories, exampleAmounts)

	tests := []struct {
		name       string
		n          int
		wantTop    int
		wantOthers float64
	}{
		{"top one keeps A, B becomes remainder", 1, 1, 50},
		{"n equals distinct count", 2, 2, 0},
		{"n beyond distinct count", 10, 2, 0},
		{"zero keeps nothing, all to remainder", 0, 0, 180},
		{"negative treated as zero", -3, 0, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top, others := TopN(totals, tt.n)
			if len(top) != tt.wantTop {
				t.Errorf("len(top) = %d, want %d", len(top), tt.wantTop)
			}
			if others != tt.wantOthers {
				t.Errorf("others = %v, want %v", others, tt.wantOthers)
			}
		})
	}
}

// Truncating at any depth must preserve the grand total.
func TestTopNRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	categories := make([]string, 200)
	amounts := make([]float64, 200)
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	for i := range categories {
		categories[i] = names[rng.Intn(len(names))]
		amounts[i] = float64(rng.Intn(450) + 50)
	}

	totals := SumByCategory(categories, amounts)
	var grand float64
	for _, ct := range totals {
		grand += ct.Total
	}

	for n := 1; n <= len(totals)+2; n++ {
		top, others := TopN(totals, n)
		var sum float64
		for _, ct := range top {
			sum += ct.Total
		}
		sum += others
		if math.Abs(sum-grand) > 1e-9 {
			t.Errorf("n=%d: sum(top)+others = %v, want %v", n, sum, grand)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(exampleDates, exampleCategories, exampleAmounts)

	if s.Total != 180 {
		t.Errorf("Total = %v, want 180", s.Total)
	}
	if s.Days != 2 {
		t.Errorf("Days = %d, want 2", s.Days)
	}
	if s.Categories != 2 {
		t.Errorf("Categories = %d, want 2", s.Categories)
	}
	if s.DailyAverage != 90 {
		t.Errorf("DailyAverage = %v, want 90 (mean of 150 and 30)", s.DailyAverage)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil, nil)

	if s.Total != 0 || s.Days != 0 || s.Categories != 0 || s.DailyAverage != 0 {
		t.Errorf("Empty summary should be all zeros, got %+v", s)
	}
}
