package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/booking-api/internal/codec"
)

// writeStatus answers with the bare status: the status text as a plain-text
// body and nothing else.
func writeStatus(w http.ResponseWriter, code int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(http.StatusText(code)))
}

// writeEncoded renders a representation produced by encode. An encoding
// failure becomes 418 since the requested representation cannot be made.
func (s *Server) writeEncoded(w http.ResponseWriter, r *http.Request, f codec.Format, encode func(codec.Format) ([]byte, error)) {
	body, err := encode(f)
	if err != nil {
		s.log.WarnContext(r.Context(), "cannot encode response", "format", f.String(), "error", err)
		writeStatus(w, http.StatusTeapot)
		return
	}
	w.Header().Set("Content-Type", f.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// storeFailure logs an unexpected error and answers 500.
func (s *Server) storeFailure(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.log.ErrorContext(r.Context(), "booking store failure", "op", op, "error", err)
	writeStatus(w, http.StatusInternalServerError)
}

// bookingID parses the {id} path parameter. Only positive integers are ids;
// anything else cannot name a booking.
func bookingID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// tooLarge reports whether err came from a body exceeding the size limit.
func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
