package handler

import "net/http"

// Ping handles GET /ping. It answers 201 whenever the server is up.
func (s *Server) Ping(w http.ResponseWriter, _ *http.Request) {
	writeStatus(w, http.StatusCreated)
}
