package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pkordes/booking-api/internal/auth"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type reasonResponse struct {
	Reason string `json:"reason"`
}

// CreateToken handles POST /auth.
// Bad credentials are reported in the body with status 200, the same status
// as success; clients distinguish the two by the "token" / "reason" key.
func (s *Server) CreateToken(w http.ResponseWriter, r *http.Request) {
	var creds credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, reasonResponse{Reason: "Bad credentials"})
		return
	}

	token, err := s.gate.Exchange(r.Context(), creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, auth.ErrBadCredentials) {
			writeJSON(w, reasonResponse{Reason: "Bad credentials"})
			return
		}
		s.storeFailure(w, r, "auth", err)
		return
	}

	writeJSON(w, tokenResponse{Token: token})
}

// writeJSON answers 200 with v as JSON. v is always one of the small
// response structs above, which cannot fail to encode.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
