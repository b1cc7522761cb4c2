package charts

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"salesdash/internal/dataset"
)

func demoTable() *dataset.Table {
	tbl := dataset.New("fecha", "categoria", "ventas")
	tbl.Append(map[string]interface{}{"fecha": "2024-01-01", "categoria": "A", "ventas": 100})
	tbl.Append(map[string]interface{}{"fecha": "2024-01-01", "categoria": "B", "ventas": 50})
	tbl.Append(map[string]interface{}{"fecha": "2024-01-02", "categoria": "A", "ventas": 30})
	return tbl
}

func TestNewGeneratorDefaults(t *testing.T) {
	g := NewGenerator(Options{})

	opts := g.Options()
	if opts.DateColumn != "fecha" || opts.CategoryColumn != "categoria" || opts.AmountColumn != "ventas" {
		t.Errorf("Unexpected default columns: %+v", opts)
	}
	if opts.BarTopN != 8 {
		t.Errorf("Expected default BarTopN 8, got %d", opts.BarTopN)
	}
	if opts.PieTopN != 6 {
		t.Errorf("Expected default PieTopN 6, got %d", opts.PieTopN)
	}
}

func TestDashboard(t *testing.T) {
	g := NewGenerator(Options{})

	fig, err := g.Dashboard(demoTable())
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}

	bounds := fig.Image().Bounds()
	if bounds.Dx() != figureWidth || bounds.Dy() != figureHeight+titleBand {
		t.Errorf("Figure size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), figureWidth, figureHeight+titleBand)
	}

	var buf bytes.Buffer
	if err := fig.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("Encoded output is not a PNG")
	}
}

func TestDashboardMissingColumn(t *testing.T) {
	g := NewGenerator(Options{})

	tbl := dataset.New("fecha", "categoria") // no amount column
	tbl.Append(map[string]interface{}{"fecha": "2024-01-01", "categoria": "A"})

	_, err := g.Dashboard(tbl)
	var missing *dataset.MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingColumnError, got %v", err)
	}
	if !strings.Contains(err.Error(), "ventas") {
		t.Errorf("Error should name the missing column set, got: %v", err)
	}
}

func TestDashboardDoesNotMutateInput(t *testing.T) {
	g := NewGenerator(Options{})
	tbl := demoTable()

	if _, err := g.Dashboard(tbl); err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}

	// Date cells in the caller's table must still be the raw strings
	if v, ok := tbl.Value(0, "fecha").(string); !ok || v != "2024-01-01" {
		t.Errorf("Caller's table was mutated: %v", tbl.Value(0, "fecha"))
	}
}

func TestDashboardUnparseableDate(t *testing.T) {
	g := NewGenerator(Options{})

	tbl := dataset.New("fecha", "categoria", "ventas")
	tbl.Append(map[string]interface{}{"fecha": "garbage", "categoria": "A", "ventas": 1})

	if _, err := g.Dashboard(tbl); err == nil {
		t.Error("Expected date parse error, got nil")
	}
}

func TestDashboardCustomColumns(t *testing.T) {
	g := NewGenerator(Options{
		DateColumn:     "date",
		CategoryColumn: "cat",
		AmountColumn:   "amount",
	})

	tbl := dataset.New("date", "cat", "amount")
	tbl.Append(map[string]interface{}{"date": "2024-02-01", "cat": "X", "amount": 10})
	tbl.Append(map[string]interface{}{"date": "2024-02-02", "cat": "Y", "amount": 20})

	if _, err := g.Dashboard(tbl); err != nil {
		t.Fatalf("Dashboard with custom columns failed: %v", err)
	}
}

func TestDashboardSingleDay(t *testing.T) {
	g := NewGenerator(Options{})

	tbl := dataset.New("fecha", "categoria", "ventas")
	tbl.Append(map[string]interface{}{"fecha": "2024-01-01", "categoria": "A", "ventas": 100})

	if _, err := g.Dashboard(tbl); err != nil {
		t.Fatalf("Dashboard with a single day failed: %v", err)
	}
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567.8, "1,234,568"},
		{-45000, "-45,000"},
	}

	for _, tt := range tests {
		if got := formatThousands(tt.in); got != tt.want {
			t.Errorf("formatThousands(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
