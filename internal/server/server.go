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
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Owennied/HimmyGames/internal/farm"
	"github.com/Owennied/HimmyGames/internal/handler"
	"github.com/Owennied/HimmyGames/internal/logger"
	"github.com/Owennied/HimmyGames/internal/metrics"
	"github.com/Owennied/HimmyGames/internal/sse"
)

// Options configures the HTTP server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	FarmService    farm.Service
	SSEHub         *sse.Hub
	Readiness      handler.HealthChecker
}

// Server serves the farm API
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. It is exported for httptest-based tests.
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	if opts.APIKey == "" {
		slog.Warn(LogMsgAuthDisabled)
	}

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get(PathHealthz, handler.HandleHealthz())
	r.Get(PathReadyz, handler.HandleReadyz(opts.Readiness))
	r.Get(PathVersion, handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle(PathMetrics, promhttp.Handler())

	farmHandler := handler.NewFarmHandler(opts.FarmService)
	r.Route(APIPrefix, func(r chi.Router) {
		r.Get("/crops", farmHandler.GetCrops)

		r.Route("/farm", func(r chi.Router) {
			r.Get("/", farmHandler.GetFarm)
			r.Post("/rename", farmHandler.Rename)
			r.Post("/reset", farmHandler.Reset)
		})

		r.Route("/plots", func(r chi.Router) {
			r.Post("/plant", farmHandler.Plant)
			r.Post("/harvest", farmHandler.Harvest)
			r.Post("/buy", farmHandler.BuyPlot)
		})

		r.Route("/market", func(r chi.Router) {
			r.Get("/", farmHandler.GetMarket)
			r.Post("/sell", farmHandler.Sell)
		})

		r.Route("/farmers", func(r chi.Router) {
			r.Post("/hire", farmHandler.HireFarmer)
			r.Post("/fire", farmHandler.FireFarmer)
			r.Post("/assign", farmHandler.AssignFarmer)
			r.Post("/unassign", farmHandler.UnassignFarmer)
			r.Post("/replant", farmHandler.SetAutoReplant)
		})

		if opts.SSEHub != nil {
			r.Get(PathEvents, sse.Handler(opts.SSEHub))
		}
	})

	// Swagger documentation
	r.Get(PathSwagger, httpSwagger.WrapHandler)

	return r
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

// Flush lets the SSE stream push through the logging wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		for _, p := range quietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
