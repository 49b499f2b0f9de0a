// Package http exposes the record store and the dashboard pipeline as a JSON
// API.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"kosht/internal/core"
	"kosht/internal/log"
	"kosht/internal/services"
	"kosht/internal/store"
)

// ImportPublisher queues a bank statement import request for the worker.
type ImportPublisher interface {
	PublishImportRequest(ctx context.Context, days int) error
}

// MonthExporter pushes a month summary to an external spreadsheet.
type MonthExporter interface {
	ExportMonth(ctx context.Context, dash core.Dashboard) error
}

type Server struct {
	http.Server

	store      store.Store
	dashboards *services.DashboardService
	queue      ImportPublisher
	exporter   MonthExporter
	logger     *log.Logger

	dashCache *lruCache[core.Dashboard]

	stopCacheCleanup chan struct{}
	shutdownOnce     sync.Once
}

// NewServer wires routes and the dashboard cache, returning a ready-to-run
// http.Server. queue and exporter may be nil; the matching endpoints answer
// 503 until they are configured.
func NewServer(addr string, st store.Store, dashboards *services.DashboardService, queue ImportPublisher, exporter MonthExporter, logger *log.Logger) *Server {
	s := &Server{
		store:            st,
		dashboards:       dashboards,
		queue:            queue,
		exporter:         exporter,
		logger:           logger.WithComponent(log.ComponentHTTP),
		dashCache:        newLRUCache[core.Dashboard](100, 5*time.Minute),
		stopCacheCleanup: make(chan struct{}),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(log.RequestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleHealth)

	r.Get("/expenses/all", s.handleListExpenses)
	r.Post("/expenses", s.handleCreateExpense)
	r.Delete("/expenses/{id}", s.handleDeleteExpense)

	r.Get("/incomes/all", s.handleListIncomes)
	r.Post("/incomes", s.handleCreateIncome)
	r.Delete("/incomes/{id}", s.handleDeleteIncome)

	r.Get("/categories/all", s.handleListCategories)
	r.Post("/categories", s.handleCreateCategory)
	r.Delete("/categories/{id}", s.handleDeleteCategory)

	r.Get("/income_sources/all", s.handleListSources)
	r.Post("/income_sources", s.handleCreateSource)
	r.Delete("/income_sources/{id}", s.handleDeleteSource)

	r.Get("/dashboard", s.handleDashboard)
	r.Post("/import", s.handleImport)
	r.Post("/export/sheets", s.handleExportSheets)

	s.Server = http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go s.startCacheCleanup()

	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// startCacheCleanup runs periodic cleanup of expired dashboard entries.
func (s *Server) startCacheCleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if cleaned := s.dashCache.CleanExpired(); cleaned > 0 {
				s.logger.DebugContext(context.Background(), "dashboard cache cleanup",
					"entries_removed", cleaned)
			}
		case <-s.stopCacheCleanup:
			return
		}
	}
}

// Shutdown stops the cache cleanup goroutine before draining the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		close(s.stopCacheCleanup)
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}
