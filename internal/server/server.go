package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"salesdash/internal/charts"
	"salesdash/internal/config"
	"salesdash/internal/dataset"
	"salesdash/internal/llm"
	"salesdash/internal/logger"
	"salesdash/internal/reports"
	"salesdash/internal/storage"
)

// Server wires the dashboard pipeline behind an HTTP surface
type Server struct {
	Config         *config.Config
	Fetcher        *dataset.Fetcher
	Charts         *charts.Generator
	Reports        *reports.Generator
	Commentary     *llm.CommentaryClient
	Storage        storage.Client
	DeploymentMode storage.DeploymentMode

	// Only one dashboard generation runs at a time
	renderMutex sync.Mutex
}

// NewServer creates a server instance for the given deployment mode
func NewServer(ctx context.Context, cfg *config.Config, mode storage.DeploymentMode) (*Server, error) {
	store, err := storage.NewClient(ctx, mode, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	generator := charts.NewGenerator(charts.Options{
		DateColumn:     cfg.DateColumn,
		CategoryColumn: cfg.CategoryColumn,
		AmountColumn:   cfg.AmountColumn,
		BarTopN:        cfg.BarTopN,
		PieTopN:        cfg.PieTopN,
	})

	commentary := llm.NewCommentaryClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if commentary == nil {
		logger.Info("OPENAI_API_KEY not set, report commentary disabled")
	}

	logger.Infof("Server initialized in %s mode", mode)

	return &Server{
		Config:         cfg,
		Fetcher:        dataset.NewFetcher(),
		Charts:         generator,
		Reports:        reports.NewGenerator(),
		Commentary:     commentary,
		Storage:        store,
		DeploymentMode: mode,
	}, nil
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/dashboard", s.HandleDashboard)
	mux.HandleFunc("/dashboards", s.HandleListDashboards)
	mux.HandleFunc("/files/", s.HandleFileProxy)
	mux.HandleFunc("/", s.HandleRoot)

	return mux
}

// Close cleans up server resources
func (s *Server) Close() error {
	if s.Storage != nil {
		return s.Storage.Close()
	}
	return nil
}
