package web

import "net/http"

type loginURLResponse struct {
	URL string `json:"url"`
}

func (s *Server) handleEnvironment(w http.ResponseWriter, r *http.Request) {
	if !readOnly(w, r) {
		return
	}
	if s.env.IsZero() {
		http.Error(w, "environment unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, s.env)
}

func (s *Server) handleLoginURL(w http.ResponseWriter, r *http.Request) {
	if !readOnly(w, r) {
		return
	}
	if s.env.IsZero() {
		http.Error(w, "environment unavailable", http.StatusServiceUnavailable)
		return
	}
	state := r.URL.Query().Get("state")
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, loginURLResponse{URL: s.env.Auth().LoginURL(state)})
}
