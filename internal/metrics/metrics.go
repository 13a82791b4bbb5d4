package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coffeeshop",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by method, path, and status code.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coffeeshop",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	EnvironmentLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coffeeshop",
		Name:      "environment_loads_total",
		Help:      "Environment descriptor loads by source (builtin, file, default) and outcome.",
	}, []string{"source", "outcome"})

	EnvironmentInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "coffeeshop",
		Name:      "environment_info",
		Help:      "Always 1; labels describe the active environment descriptor.",
	}, []string{"name", "production"})
)

// ObserveLoad counts one descriptor load attempt.
func ObserveLoad(source string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	EnvironmentLoadsTotal.WithLabelValues(source, outcome).Inc()
}

// SetEnvironment replaces the environment_info series with the active descriptor.
func SetEnvironment(name string, production bool) {
	EnvironmentInfo.Reset()
	EnvironmentInfo.WithLabelValues(name, strconv.FormatBool(production)).Set(1)
}

// Handler returns an http.Handler that serves the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware wraps an http.Handler to record request metrics.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		duration := time.Since(start).Seconds()

		path := normalizePath(r.URL.Path)
		HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rw.statusCode)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// normalizePath maps a request path to its route label. The envserver
// routes (/environment.json, /v1/login-url, /healthz, /readyz, /metrics)
// keep their own label; any other path is cut to its first two segments so
// scanners cannot grow the label set.
func normalizePath(p string) string {
	if p == "" || p == "/" {
		return "/"
	}
	switch p {
	case "/healthz", "/readyz", "/metrics", "/environment.json":
		return p
	}
	segments := 0
	for i := 1; i < len(p); i++ {
		if p[i] == '/' {
			segments++
			if segments >= 2 {
				return p[:i]
			}
		}
	}
	return p
}
