package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"salesdash/internal/dataset"
	"salesdash/internal/logger"
	"salesdash/internal/reports"
	"salesdash/internal/storage"
)

// HandleRoot redirects to the most recent dashboard, or shows a short
// landing page when none has been generated yet
func (s *Server) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	folders, err := s.Storage.ListDashboards(r.Context(), 1)
	if err != nil || len(folders) == 0 {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, "<html><body><h1>Dashboard de Ventas</h1><p>No dashboards yet. POST a CSV to /dashboard to generate one.</p></body></html>")
		return
	}

	http.Redirect(w, r, "/files/"+folders[0]+"/index.html", http.StatusFound)
}

// HandleHealth provides the health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"mode":      string(s.DeploymentMode),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// HandleDashboard renders a dashboard from the posted CSV (or the
// configured DATASET_URL when the body is empty) and stores the PNG plus
// the HTML report
func (s *Server) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !s.renderMutex.TryLock() {
		logger.Warn("Dashboard generation already in progress, rejecting request")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":  "Dashboard generation already in progress",
			"status": "conflict",
		})
		return
	}
	defer s.renderMutex.Unlock()

	ctx := r.Context()

	tbl, err := s.loadTable(ctx, r)
	if err != nil {
		logger.Error("Failed to load dataset", err)
		http.Error(w, "Failed to load dataset: "+err.Error(), http.StatusBadRequest)
		return
	}

	logger.Infof("Starting dashboard generation from %d rows", tbl.Len())
	started := time.Now()

	figure, err := s.Charts.Dashboard(tbl)
	if err != nil {
		status := http.StatusInternalServerError
		var missing *dataset.MissingColumnError
		if errors.As(err, &missing) {
			status = http.StatusBadRequest
		}
		logger.Error("Dashboard rendering failed", err)
		http.Error(w, "Dashboard rendering failed: "+err.Error(), status)
		return
	}

	var png bytes.Buffer
	if err := figure.EncodePNG(&png); err != nil {
		logger.Error("PNG encoding failed", err)
		http.Error(w, "PNG encoding failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	summary, totals, err := s.Charts.Aggregates(tbl)
	if err != nil {
		logger.Error("Aggregation failed", err)
		http.Error(w, "Aggregation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	snippets, err := s.Charts.Snippets(tbl)
	if err != nil {
		logger.Warnf("Chart snippets unavailable: %v", err)
	}

	var commentary string
	if s.Commentary != nil {
		commentary, err = s.Commentary.Commentary(ctx, summary, totals)
		if err != nil {
			logger.Warnf("Commentary generation failed, continuing without it: %v", err)
			commentary = ""
		}
	}

	timestamp := time.Now().UTC()
	page, err := s.Reports.GenerateHTML(&reports.ReportData{
		GeneratedAt: timestamp,
		Summary:     summary,
		Commentary:  commentary,
		Snippets:    snippets,
		ImagePath:   "dashboard.png",
	})
	if err != nil {
		logger.Error("Report generation failed", err)
		http.Error(w, "Report generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	pngPath, err := s.Storage.StoreFile(ctx, png.Bytes(), "dashboard.png", timestamp)
	if err != nil {
		logger.Error("Failed to store dashboard PNG", err)
		http.Error(w, "Failed to store dashboard: "+err.Error(), http.StatusInternalServerError)
		return
	}
	htmlPath, err := s.Storage.StoreFile(ctx, []byte(page), "index.html", timestamp)
	if err != nil {
		logger.Error("Failed to store HTML report", err)
		http.Error(w, "Failed to store report: "+err.Error(), http.StatusInternalServerError)
		return
	}

	folder := storage.DashboardFolderPath(timestamp)
	logger.Infof("Dashboard generation completed in %s: %s", time.Since(started).Round(time.Millisecond), folder)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"folder":  folder,
		"files":   []string{pngPath, htmlPath},
		"url":     "/files/" + folder + "/index.html",
		"summary": summary,
	})
}

// loadTable reads the CSV from the request body, falling back to the
// configured dataset URL when the body is empty
func (s *Server) loadTable(ctx context.Context, r *http.Request) (*dataset.Table, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	if len(bytes.TrimSpace(body)) > 0 {
		return dataset.ReadCSV(bytes.NewReader(body))
	}

	if s.Config.DatasetURL != "" {
		logger.Infof("Empty request body, fetching dataset from %s", s.Config.DatasetURL)
		return s.Fetcher.FetchCSV(ctx, s.Config.DatasetURL)
	}

	return nil, fmt.Errorf("no CSV in request body and DATASET_URL not configured")
}

// HandleListDashboards lists recent dashboard folders, newest first
func (s *Server) HandleListDashboards(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
		if limit > 100 {
			limit = 100
		}
	}

	folders, err := s.Storage.ListDashboards(r.Context(), limit)
	if err != nil {
		logger.Error("Failed to list dashboards", err)
		http.Error(w, "Failed to list dashboards: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"dashboards": folders,
		"count":      len(folders),
	})
}

// HandleFileProxy serves stored files through the storage client so the
// same URLs work for local and GCS deployments
func (s *Server) HandleFileProxy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filePath := strings.TrimPrefix(r.URL.Path, "/files/")
	if filePath == "" {
		http.Error(w, "File path required", http.StatusBadRequest)
		return
	}
	if strings.Contains(filePath, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	data, err := s.Storage.GetFile(r.Context(), filePath)
	if err != nil {
		logger.Warnf("File not found in storage: %s", filePath)
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", storage.ContentType(filePath))
	w.Write(data)
}
