// Package http exposes the store and the summary aggregation as a JSON API.
// It is the presentation collaborator: rendering decisions live with the
// clients, this layer only validates input, calls the store and shapes
// responses.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"spendwise/internal/cache"
	"spendwise/internal/core"
	"spendwise/internal/log"
	"spendwise/internal/store"
)

type Server struct {
	http.Server

	store  *store.Store
	logger *log.Logger

	// Summary responses are cached per period and purged on any mutation.
	summaryCache *cache.TTLCache[core.Summary]

	stopCacheCleanup chan struct{}
	shutdownOnce     sync.Once
}

// NewServer configures routes and returns a ready-to-run server.
func NewServer(addr string, st *store.Store, logger *log.Logger, cacheTTL time.Duration) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: log.RequestMiddleware(logger)(mux),
		},
		store:            st,
		logger:           logger.WithComponent(log.ComponentHTTP),
		summaryCache:     cache.New[core.Summary](8, cacheTTL),
		stopCacheCleanup: make(chan struct{}),
	}

	mux.HandleFunc("/api/summary", s.handleSummary)
	mux.HandleFunc("/api/expenses", s.handleExpenses)
	mux.HandleFunc("/api/expenses/", s.handleExpenseByID)
	mux.HandleFunc("/api/categories", s.handleCategories)
	mux.HandleFunc("/api/categories/", s.handleCategoryByID)
	mux.HandleFunc("/healthz", s.handleHealth)

	go s.startCacheCleanup()

	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// startCacheCleanup evicts expired summary entries in the background.
func (s *Server) startCacheCleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := s.summaryCache.CleanExpired(); removed > 0 {
				s.logger.Debug("cache cleanup completed", "entries_removed", removed)
			}
		case <-s.stopCacheCleanup:
			return
		}
	}
}

// Shutdown stops the cleanup goroutine and then the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		close(s.stopCacheCleanup)
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}
