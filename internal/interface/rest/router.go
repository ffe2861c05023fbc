package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"flightquery-service/pkg/logger"
)

// NewRouter wires the API routes, the prometheus endpoint and a plain
// liveness probe onto one chi router.
func NewRouter(handler *Handler, log logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(log))

	r.Route("/api/flights", func(r chi.Router) {
		r.Post("/query", handler.Query)
		r.Get("/airports", handler.Airports)
		r.Get("/health", handler.Health)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	return r
}

// requestLogger logs one line per request with method, path, status and
// duration.
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("Request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"durationMs", time.Since(start).Milliseconds())
		})
	}
}
