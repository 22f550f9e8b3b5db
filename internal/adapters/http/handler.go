package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/minuterie"
	"github.com/aretw0/minuterie/pkg/lamp"
	"github.com/aretw0/minuterie/pkg/ports"
)

// DefaultEventLimit is the number of events /events returns without a limit parameter.
const DefaultEventLimit = 50

// MaxEventLimit caps the limit parameter of /events.
const MaxEventLimit = 1000

// StatusSource provides the latest published lamp state.
type StatusSource interface {
	Snapshot() lamp.Snapshot
}

// Presser accepts a virtual button press.
type Presser interface {
	Press()
}

type handler struct {
	status  StatusSource
	events  ports.EventSource
	presser Presser
	graph   string
	metrics http.Handler
	logger  *slog.Logger
}

// Option configures the handler.
type Option func(*handler)

// WithEvents exposes a journal on GET /events.
func WithEvents(src ports.EventSource) Option {
	return func(h *handler) {
		h.events = src
	}
}

// WithPresser enables POST /press.
func WithPresser(p Presser) Option {
	return func(h *handler) {
		h.presser = p
	}
}

// WithGraph sets the diagram served on GET /graph.
func WithGraph(graph string) Option {
	return func(h *handler) {
		h.graph = graph
	}
}

// WithMetrics mounts a metrics handler on GET /metrics.
func WithMetrics(m http.Handler) Option {
	return func(h *handler) {
		h.metrics = m
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHandler creates the HTTP status API of a running lamp.
func NewHandler(status StatusSource, opts ...Option) http.Handler {
	h := &handler{
		status: status,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.health)
	r.Get("/state", h.state)
	r.Get("/graph", h.graphText)
	r.Get("/events", h.recent)
	r.Post("/press", h.press)
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics)
	}

	return r
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": minuterie.Version,
	})
}

func (h *handler) state(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.status.Snapshot())
}

func (h *handler) graphText(w http.ResponseWriter, r *http.Request) {
	if h.graph == "" {
		http.Error(w, "graph not available", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, h.graph)
}

func (h *handler) recent(w http.ResponseWriter, r *http.Request) {
	if h.events == nil {
		http.Error(w, "journal disabled", http.StatusNotImplemented)
		return
	}

	limit := DefaultEventLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = min(n, MaxEventLimit)
	}

	events, err := h.events.Recent(r.Context(), limit)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to read journal", "error", err)
		http.Error(w, "failed to read journal", http.StatusBadGateway)
		return
	}
	h.writeJSON(w, r, http.StatusOK, events)
}

func (h *handler) press(w http.ResponseWriter, r *http.Request) {
	if h.presser == nil {
		http.Error(w, "button is not virtual", http.StatusConflict)
		return
	}
	h.presser.Press()
	h.logger.InfoContext(r.Context(), "virtual button pressed", "request_id", middleware.GetReqID(r.Context()))
	w.WriteHeader(http.StatusAccepted)
}

func (h *handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.WarnContext(r.Context(), "failed to encode response", "error", err)
	}
}
