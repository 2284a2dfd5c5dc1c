package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/seogenie"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultAddr is the address the web UI listens on unless configured.
const DefaultAddr = ":8080"

// Default form values shown before the first analysis.
const (
	defaultSiteURL       = "example.com"
	defaultCompetitorURL = "competitor.com"
)

// maxStoredClouds bounds the in-memory word-cloud image store. Results are
// per-session; nothing persists across restarts.
const maxStoredClouds = 64

// Server is the interactive web UI: a form for one or two URLs, rendered
// per-site results, and a comparison summary.
type Server struct {
	addr    string
	runner  seogenie.Runner
	logger  *slog.Logger
	metrics *Metrics
	clouds  *cloudStore
	mux     *http.ServeMux
	server  *http.Server
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithAddr sets the listen address. Defaults to DefaultAddr.
func WithAddr(addr string) ServerOption {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new web UI server around a pipeline runner.
func NewServer(runner seogenie.Runner, opts ...ServerOption) *Server {
	s := &Server{
		addr:    DefaultAddr,
		runner:  runner,
		logger:  slog.Default(),
		metrics: NewMetrics(),
		clouds:  newCloudStore(maxStoredClouds),
		mux:     http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /analyze", s.handleAnalyze)
	s.mux.HandleFunc("GET /wordcloud/{id}", s.handleCloud)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.logging(s.mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second, // two sequential fetches plus rendering
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Handler returns the server's root handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start listens on the configured address and blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("starting web UI", "addr", s.addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down web UI")
	return s.server.Shutdown(ctx)
}

// logging wraps the mux with per-request logging. Health checks are skipped
// to reduce noise.
func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		next.ServeHTTP(w, r)
		if r.URL.Path != "/healthz" {
			s.logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"duration", time.Since(begin),
			)
		}
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, pageData{
		SiteURL:       defaultSiteURL,
		CompetitorURL: defaultCompetitorURL,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	siteURL := strings.TrimSpace(r.FormValue("site"))
	competitorURL := strings.TrimSpace(r.FormValue("competitor"))

	begin := time.Now()
	report, err := s.runner.Run(r.Context(), siteURL, competitorURL)
	if err != nil {
		http.Error(w, seogenie.ErrorMessage(err), errorStatus(err))
		return
	}
	s.metrics.observeReport(report, time.Since(begin).Seconds())

	for _, analysis := range []*seogenie.Analysis{report.Site, report.Competitor} {
		if analysis != nil && analysis.CloudID != "" {
			s.clouds.put(analysis.CloudID, analysis.Cloud)
		}
	}

	data := pageData{
		SiteURL:       siteURL,
		CompetitorURL: competitorURL,
		Report:        report,
	}
	if report.Comparison != nil {
		data.ComparisonText = report.Comparison.Summary()
	}
	s.render(w, data)
}

func (s *Server) handleCloud(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSuffix(r.PathValue("id"), ".png")
	img, ok := s.clouds.get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(img)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		s.logger.Error("template render failed", "err", err)
	}
}

// errorStatus maps application error codes to HTTP status codes.
func errorStatus(err error) int {
	switch seogenie.ErrorCode(err) {
	case seogenie.EINVALID:
		return http.StatusBadRequest
	case seogenie.ENOTFOUND:
		return http.StatusNotFound
	case seogenie.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// cloudStore is a bounded in-memory store of rendered word-cloud images,
// evicting oldest first.
type cloudStore struct {
	mu    sync.Mutex
	cap   int
	order []string
	imgs  map[string][]byte
}

func newCloudStore(capacity int) *cloudStore {
	return &cloudStore{
		cap:  capacity,
		imgs: make(map[string][]byte, capacity),
	}
}

func (c *cloudStore) put(id string, img []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.imgs[id]; !ok {
		c.order = append(c.order, id)
		for len(c.order) > c.cap {
			delete(c.imgs, c.order[0])
			c.order = c.order[1:]
		}
	}
	c.imgs[id] = img
}

func (c *cloudStore) get(id string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	img, ok := c.imgs[id]
	return img, ok
}
