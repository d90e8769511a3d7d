package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/Forgeworks_Go/internal/engine"
	"github.com/osse101/Forgeworks_Go/internal/handler"
	"github.com/osse101/Forgeworks_Go/internal/logger"
	"github.com/osse101/Forgeworks_Go/internal/metrics"
	"github.com/osse101/Forgeworks_Go/internal/middleware"
)

// Options configures the HTTP surface
type Options struct {
	Port         int
	CORSOrigins  []string
	CORSDebug    bool
	RateLimit    middleware.RateLimitConfig
	MaxBodyBytes int64
}

type Server struct {
	httpServer *http.Server
	cancel     context.CancelFunc
}

// NewServer creates a new Server instance. health reports readiness; it is
// usually the engine itself.
func NewServer(opts Options, svc engine.Service, health handler.HealthChecker) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(middleware.NewCORS(middleware.CORSConfig{
		AllowedOrigins: opts.CORSOrigins,
		Debug:          opts.CORSDebug,
	}).Middleware)
	r.Use(middleware.NewRateLimiter(ctx, opts.RateLimit).Middleware)
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(health))
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/items/{name}/price", handler.HandleGetPrice(svc))

		r.Route("/recipes/{name}", func(r chi.Router) {
			r.Get("/cost", handler.HandleGetCost(svc))
			r.Get("/time", handler.HandleGetTime(svc))
		})

		r.Get("/tree/{name}", handler.HandleGetTree(svc))

		r.Route("/ruleset", func(r chi.Router) {
			r.Get("/", handler.HandleGetRuleset(svc))
			r.Put("/", handler.HandlePutRuleset(svc, opts.MaxBodyBytes))
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", handler.HandleGetCatalog(svc))
			r.Put("/", handler.HandlePutCatalog(svc, opts.MaxBodyBytes))
			r.Get("/report", handler.HandleGetCatalogReport(svc))
			r.Get("/suggest", handler.HandleSuggest(svc))
		})

		r.Post("/recalculate", handler.HandleRecalculate(svc))
		r.Get("/stats", handler.HandleGetStats(svc))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		cancel: cancel,
	}
}

// Handler exposes the routed handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func sanitizeHeaders(h http.Header) http.Header {
	sanitized := make(http.Header, len(h))
	for k, v := range h {
		sanitized[k] = v
		for _, redacted := range RedactedHeaders {
			if strings.EqualFold(k, redacted) {
				sanitized[k] = []string{RedactedValue}
				break
			}
		}
	}
	return sanitized
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// Honor a caller-supplied request ID so the browser tool can correlate
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	s.cancel()
	return s.httpServer.Shutdown(ctx)
}
