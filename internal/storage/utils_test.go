package storage

import (
	"testing"
	"time"
)

func TestDashboardFolderPath(t *testing.T) {
	ts := time.Date(2024, 7, 4, 23, 5, 9, 0, time.UTC)

	got := DashboardFolderPath(ts)
	want := "2024/07/04/SalesDashboard-2024-07-04-23-05-09"
	if got != want {
		t.Errorf("DashboardFolderPath = %q, want %q", got, want)
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"dashboard.png", "image/png"},
		{"index.html", "text/html"},
		{"data.json", "application/json"},
		{"sales.csv", "text/csv"},
		{"commentary.md", "text/markdown"},
		{"notes.txt", "text/plain"},
		{"archive.zip", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := ContentType(tt.filename); got != tt.want {
			t.Errorf("ContentType(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
