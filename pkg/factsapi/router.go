package factsapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/uakit/pkg/httpserver"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// MaxBatchSize bounds the number of agents accepted by POST /facts.
const MaxBatchSize = 100

const maxBodyBytes = 1 << 20

// Option configures the router.
type Option func(*config)

type config struct {
	assume   useragent.Assumptions
	registry *prometheus.Registry
	log      *slog.Logger
	mwOpts   []useragent.MiddlewareOption
}

// WithAssumptions applies assumptions to every detection.
func WithAssumptions(a useragent.Assumptions) Option {
	return func(c *config) { c.assume = a }
}

// WithRegistry counts requests in reg and serves it on /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(c *config) { c.registry = reg }
}

// WithLogger sets the request logger. Nil is ignored. Register
// RequestIDExtractor on it to tag records with the request id.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMiddlewareOptions passes extra options, such as the cache size, to
// useragent.Middleware.
func WithMiddlewareOptions(opts ...useragent.MiddlewareOption) Option {
	return func(c *config) { c.mwOpts = append(c.mwOpts, opts...) }
}

// NewRouter builds the API handler.
func NewRouter(opts ...Option) http.Handler {
	cfg := &config{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(cfg)
	}

	mwOpts := append([]useragent.MiddlewareOption{useragent.WithMiddlewareAssumptions(cfg.assume)}, cfg.mwOpts...)
	if cfg.registry != nil {
		mwOpts = append(mwOpts, useragent.WithRegisterer(cfg.registry))
	}

	h := &handler{assume: cfg.assume, log: cfg.log}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(useragent.Middleware(mwOpts...))
	r.Use(requestLog(cfg.log))

	r.Get("/facts", h.getFacts)
	r.Post("/facts", h.postFacts)
	r.Get("/healthz", httpserver.HealthCheckHandler(cfg.log))
	if cfg.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.registry, promhttp.HandlerOpts{}))
	}
	return r
}

type handler struct {
	assume useragent.Assumptions
	log    *slog.Logger
}

// BatchRequest is the body of POST /facts.
type BatchRequest struct {
	UserAgents []string `json:"user_agents"`
}

// BatchResponse is the reply of POST /facts, in request order.
type BatchResponse struct {
	Facts []useragent.Facts `json:"facts"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

var (
	errEmptyBatch    = errors.New("user_agents must not be empty")
	errBatchTooLarge = errors.New("too many user agents")
	errBodyTooLarge  = errors.New("request body too large")
)

func (h *handler) getFacts(w http.ResponseWriter, r *http.Request) {
	if ua := r.URL.Query().Get("ua"); ua != "" {
		d := useragent.New(useragent.WithUserAgent(ua), useragent.WithAssumptions(h.assume))
		writeJSON(w, http.StatusOK, d.Snapshot())
		return
	}

	facts, _ := useragent.FromContext(r.Context())
	h.log.DebugContext(r.Context(), "facts requested")
	writeJSON(w, http.StatusOK, facts)
}

func (h *handler) postFacts(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: errBodyTooLarge.Error()})
			return
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	switch {
	case len(req.UserAgents) == 0:
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: errEmptyBatch.Error()})
		return
	case len(req.UserAgents) > MaxBatchSize:
		writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: errBatchTooLarge.Error()})
		return
	}

	d := useragent.New(useragent.WithAssumptions(h.assume))
	resp := BatchResponse{Facts: make([]useragent.Facts, 0, len(req.UserAgents))}
	for _, ua := range req.UserAgents {
		resp.Facts = append(resp.Facts, d.WithAgent(ua).Snapshot())
	}
	h.log.DebugContext(r.Context(), "batch detected", slog.Int("count", len(resp.Facts)))
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
