package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchCSV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("fecha,categoria,ventas\n2024-01-01,A,100\n"))
	}))
	defer server.Close()

	fetcher := NewFetcher()
	tbl, err := fetcher.FetchCSV(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchCSV failed: %v", err)
	}

	if tbl.Len() != 1 {
		t.Errorf("Expected 1 row, got %d", tbl.Len())
	}
	if !tbl.HasColumn("ventas") {
		t.Error("Expected 'ventas' column in fetched table")
	}
}

func TestFetchCSVHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher()
	if _, err := fetcher.FetchCSV(context.Background(), server.URL); err == nil {
		t.Error("Expected error for HTTP 404, got nil")
	}
}
