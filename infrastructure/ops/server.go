// Package ops provides the operations HTTP server: health probes, manual job
// triggers, and a test-delivery endpoint for inbound events.
package ops

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/SkillsFundingAgency/das-pr-jobs/application/service"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/event"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RunFunc runs one job pass and reports how many records it affected.
type RunFunc func(ctx context.Context) (int, error)

// Server is the operations HTTP server.
type Server struct {
	addr       string
	pinger     Pinger
	dispatcher *service.EventDispatcher
	jobs       map[string]RunFunc
	router     chi.Router
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates an operations Server. jobs maps trigger names to the job
// functions exposed on POST /jobs/{name}/run.
func NewServer(
	addr string,
	pinger Pinger,
	dispatcher *service.EventDispatcher,
	jobs map[string]RunFunc,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		addr:       addr,
		pinger:     pinger,
		dispatcher: dispatcher,
		jobs:       jobs,
		logger:     logger,
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Timeout(60 * time.Second))
	router.Use(cors.Handler(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Get("/healthz", s.health)
	router.Get("/readyz", s.ready)
	router.Post("/jobs/{name}/run", s.runJob)
	router.Post("/events/{operation}", s.deliverEvent)

	s.router = router
	return s
}

// Router returns the chi router, for tests and customization.
func (s *Server) Router() chi.Router {
	return s.router
}

// Start runs the HTTP server until Shutdown or a listener error.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("starting ops server", slog.String("addr", s.addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("ops server error: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.logger.Info("shutting down ops server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) ready(w http.ResponseWriter, req *http.Request) {
	if err := s.pinger.Ping(req.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) runJob(w http.ResponseWriter, req *http.Request) {
	name := chi.URLParam(req, "name")
	run, ok := s.jobs[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("unknown job %q", name)})
		return
	}

	count, err := run(req.Context())
	if err != nil {
		s.logger.Error("manual job run failed",
			slog.String("job", name),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"job": name, "count": count})
}

func (s *Server) deliverEvent(w http.ResponseWriter, req *http.Request) {
	operation, err := event.ParseOperation(chi.URLParam(req, "operation"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}

	payload := map[string]any{}
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("decode payload: %v", err)})
		return
	}

	if err := s.dispatcher.Dispatch(req.Context(), operation, payload); err != nil {
		s.logger.Error("event delivery failed",
			slog.String("operation", operation.String()),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"operation": operation.String()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
