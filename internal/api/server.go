// internal/api/server.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mergington-activities/internal/common/config"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/observability"
)

// NewRouter assembles the full route table, wrapped in the request logger.
// obs may be nil (tests).
func NewRouter(h *Handler, log logger.Logger, obs *observability.Observability) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /activities", h.ListActivities)
	mux.HandleFunc("POST /activities/{name}/signup", h.Signup)
	mux.HandleFunc("POST /activities/{name}/unregister", h.Unregister)

	mux.HandleFunc("GET /health", statusHandler("healthy"))
	mux.HandleFunc("GET /ready", statusHandler("ready"))
	mux.Handle("GET /metrics", promhttp.Handler())

	return RequestLogger(log, obs)(mux)
}

func statusHandler(status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// Server wraps the stdlib HTTP server with configured timeouts.
type Server struct {
	httpServer *http.Server
	logger     logger.Logger
}

func NewServer(cfg config.ServerConfig, handler http.Handler, log logger.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Address,
			Handler:      handler,
			ReadTimeout:  config.GetDuration(cfg.ReadTimeout),
			WriteTimeout: config.GetDuration(cfg.WriteTimeout),
		},
		logger: log,
	}
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", map[string]interface{}{
		"address": s.httpServer.Addr,
	})
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
