package web

import (
	"net/http"

	"coffeeshop/internal/environment"
	"coffeeshop/internal/metrics"
)

// Server hands the environment descriptor to the frontend at runtime.
type Server struct {
	Mux *http.ServeMux
	env environment.Environment
}

func NewServer(env environment.Environment) *Server {
	s := &Server{
		Mux: http.NewServeMux(),
		env: env,
	}
	s.registerRoutes()
	return s
}

// Environment returns the descriptor the server was built with.
func (s *Server) Environment() environment.Environment {
	return s.env
}

// Handler is the mux wrapped with request metrics.
func (s *Server) Handler() http.Handler {
	return metrics.Middleware(s.Mux)
}

func (s *Server) registerRoutes() {
	s.Mux.HandleFunc("/healthz", s.handleHealthz)
	s.Mux.HandleFunc("/readyz", s.handleReadyz)
	s.Mux.Handle("/metrics", metrics.Handler())

	s.Mux.HandleFunc("/environment.json", s.handleEnvironment)
	s.Mux.HandleFunc("/v1/login-url", s.handleLoginURL)
}

func readOnly(w http.ResponseWriter, r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		return true
	default:
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
}
