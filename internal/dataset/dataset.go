package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Table is a column-named collection of rows. Cells are dynamically typed:
// date cells hold either time.Time or any parseable date representation,
// amount cells hold a numeric type or a numeric string.
type Table struct {
	columns []string
	rows    []map[string]interface{}
}

// MissingColumnError reports that a table lacks one of its required columns.
// The message names the full configured column set, matching what the
// caller asked for rather than what happened to be present.
type MissingColumnError struct {
	Required []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("table must contain columns: %s", strings.Join(e.Required, ", "))
}

// New creates an empty table with the given column set
func New(columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{columns: cols}
}

// Append adds one row. Values for unknown columns are ignored; missing
// columns are stored as nil.
func (t *Table) Append(values map[string]interface{}) {
	row := make(map[string]interface{}, len(t.columns))
	for _, col := range t.columns {
		row[col] = values[col]
	}
	t.rows = append(t.rows, row)
}

// Columns returns the table's column names
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether the table contains the named column
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.columns {
		if col == name {
			return true
		}
	}
	return false
}

// RequireColumns verifies all named columns are present, failing with a
// MissingColumnError that lists the whole required set
func (t *Table) RequireColumns(names ...string) error {
	for _, name := range names {
		if !t.HasColumn(name) {
			return &MissingColumnError{Required: names}
		}
	}
	return nil
}

// Copy returns a deep copy of the table. Mutations of the copy never reach
// the original rows.
func (t *Table) Copy() *Table {
	clone := New(t.columns...)
	clone.rows = make([]map[string]interface{}, 0, len(t.rows))
	for _, row := range t.rows {
		dup := make(map[string]interface{}, len(row))
		for k, v := range row {
			dup[k] = v
		}
		clone.rows = append(clone.rows, dup)
	}
	return clone
}

// Value returns the cell at row i, column col
func (t *Table) Value(i int, col string) interface{} {
	return t.rows[i][col]
}

// Set replaces the cell at row i, column col
func (t *Table) Set(i int, col string, v interface{}) {
	t.rows[i][col] = v
}

// CoerceTimes converts every cell in the named column to time.Time in
// place. Cells that already hold a time.Time are kept; everything else is
// parsed with a generic date parser, and the first unparseable value fails
// the whole call.
func (t *Table) CoerceTimes(col string) error {
	for i, row := range t.rows {
		switch v := row[col].(type) {
		case time.Time:
			continue
		case nil:
			return fmt.Errorf("row %d: empty value in date column %q", i, col)
		default:
			parsed, err := dateparse.ParseAny(fmt.Sprint(v))
			if err != nil {
				return fmt.Errorf("row %d: cannot parse %q as date: %w", i, fmt.Sprint(v), err)
			}
			row[col] = parsed
		}
	}
	return nil
}

// Times extracts the named column as time values. CoerceTimes must have
// run first; a non-time cell is an error here.
func (t *Table) Times(col string) ([]time.Time, error) {
	out := make([]time.Time, len(t.rows))
	for i, row := range t.rows {
		v, ok := row[col].(time.Time)
		if !ok {
			return nil, fmt.Errorf("row %d: column %q does not hold a date value", i, col)
		}
		out[i] = v
	}
	return out, nil
}

// Strings extracts the named column stringified
func (t *Table) Strings(col string) []string {
	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = fmt.Sprint(row[col])
	}
	return out
}

// Floats extracts the named column as float64 values, accepting any
// numeric type or numeric string
func (t *Table) Floats(col string) ([]float64, error) {
	out := make([]float64, len(t.rows))
	for i, row := range t.rows {
		f, err := toFloat(row[col])
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", i, col, err)
		}
		out[i] = f
	}
	return out, nil
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as number", n)
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("empty numeric value")
	default:
		return 0, fmt.Errorf("unsupported numeric type %T", v)
	}
}
