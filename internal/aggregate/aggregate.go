// Package aggregate implements the grouped sums behind every dashboard
// panel: per-date series, ranked per-category totals with top-N
// truncation, and the KPI summary.
package aggregate

import (
	"sort"
	"time"
)

// TimePoint is one entry of a date-keyed sum series
type TimePoint struct {
	Date  time.Time
	Total float64
}

// CategoryTotal is one entry of a category-keyed sum series
type CategoryTotal struct {
	Category string
	Total    float64
}

// OthersLabel is the synthetic bucket holding the remainder after top-N
// truncation.
const OthersLabel = "Otros"

// SumByDate groups amounts by their exact date value and sums each group,
// returning points sorted ascending by date. The result is independent of
// input row order.
func SumByDate(dates []time.Time, amounts []float64) []TimePoint {
	sums := make(map[time.Time]float64, len(dates))
	for i, d := range dates {
		sums[d] += amounts[i]
	}

	points := make([]TimePoint, 0, len(sums))
	for d, total := range sums {
		points = append(points, TimePoint{Date: d, Total: total})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// SumByCategory groups amounts by category and sums each group, returning
// totals sorted descending by amount. Equal totals are ordered by category
// name so the ranking is deterministic.
func SumByCategory(categories []string, amounts []float64) []CategoryTotal {
	sums := make(map[string]float64, len(categories))
	for i, c := range categories {
		sums[c] += amounts[i]
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for c, total := range sums {
		totals = append(totals, CategoryTotal{Category: c, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// TopN keeps the n highest-ranked totals and sums the rest into a single
// remainder. n <= 0 keeps nothing: the whole total becomes the remainder.
// n >= len(totals) keeps everything and the remainder is zero.
func TopN(totals []CategoryTotal, n int) (top []CategoryTotal, others float64) {
	if n < 0 {
		n = 0
	}
	if n > len(totals) {
		n = len(totals)
	}

	top = make([]CategoryTotal, n)
	copy(top, totals[:n])
	for _, ct := range totals[n:] {
		others += ct.Total
	}
	return top, others
}

// Summary holds the KPI statistics shown in the dashboard's fourth panel
type Summary struct {
	Total        float64
	DailyAverage float64
	Days         int
	Categories   int
}

// Summarize computes the dashboard KPIs: grand total, mean of per-date
// sums, distinct day count, and distinct category count.
func Summarize(dates []time.Time, categories []string, amounts []float64) Summary {
	var s Summary
	for _, v := range amounts {
		s.Total += v
	}

	byDate := SumByDate(dates, amounts)
	s.Days = len(byDate)
	if s.Days > 0 {
		var daySum float64
		for _, p := range byDate {
			daySum += p.Total
		}
		s.DailyAverage = daySum / float64(s.Days)
	}

	distinct := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		distinct[c] = struct{}{}
	}
	s.Categories = len(distinct)

	return s
}
