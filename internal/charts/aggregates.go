package charts

import (
	"fmt"

	"salesdash/internal/aggregate"
	"salesdash/internal/dataset"
)

// Aggregates validates the table and returns the summary plus the category
// ranking, highest total first. Callers that only need the figures behind
// the dashboard use this instead of rendering.
func (g *Generator) Aggregates(tbl *dataset.Table) (aggregate.Summary, []aggregate.CategoryTotal, error) {
	opts := g.opts

	if err := tbl.RequireColumns(opts.DateColumn, opts.CategoryColumn, opts.AmountColumn); err != nil {
		return aggregate.Summary{}, nil, err
	}

	work := tbl.Copy()
	if err := work.CoerceTimes(opts.DateColumn); err != nil {
		return aggregate.Summary{}, nil, fmt.Errorf("date column %q: %w", opts.DateColumn, err)
	}

	dates, err := work.Times(opts.DateColumn)
	if err != nil {
		return aggregate.Summary{}, nil, err
	}
	categories := work.Strings(opts.CategoryColumn)
	amounts, err := work.Floats(opts.AmountColumn)
	if err != nil {
		return aggregate.Summary{}, nil, fmt.Errorf("amount column %q: %w", opts.AmountColumn, err)
	}

	summary := aggregate.Summarize(dates, categories, amounts)
	byCategory := aggregate.SumByCategory(categories, amounts)
	return summary, byCategory, nil
}
