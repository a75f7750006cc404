package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/pkordes/booking-api/internal/codec"
	"github.com/pkordes/booking-api/internal/domain"
)

// ListBookings handles GET /booking.
// Optional query parameters firstname, lastname, checkin and checkout narrow
// the listing; see bookingFilterFromQuery.
func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	filter, ignored := bookingFilterFromQuery(r.URL.Query())
	if len(ignored) > 0 {
		s.log.DebugContext(r.Context(), "ignoring unparseable filter parameters", "params", ignored)
	}

	ids, err := s.bookings.ListIDs(r.Context(), filter)
	if err != nil {
		s.storeFailure(w, r, "list", err)
		return
	}

	s.writeEncoded(w, r, codec.FormatFromAccept(r.Header.Get("Accept")), func(f codec.Format) ([]byte, error) {
		return codec.EncodeIDs(ids, f)
	})
}

// GetBooking handles GET /booking/{id}.
func (s *Server) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		writeStatus(w, http.StatusNotFound)
		return
	}

	b, err := s.bookings.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeStatus(w, http.StatusNotFound)
			return
		}
		s.storeFailure(w, r, "get", err)
		return
	}

	s.writeEncoded(w, r, codec.FormatFromAccept(r.Header.Get("Accept")), func(f codec.Format) ([]byte, error) {
		return codec.EncodeBooking(b, f)
	})
}

// CreateBooking handles POST /booking.
// A payload that fails to decode or validate is answered with 500, not 400;
// clients of this API rely on that status.
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	p, err := decodeBody(r)
	if err != nil {
		s.rejectPayload(w, r, http.StatusInternalServerError, err)
		return
	}
	b, err := s.validator.Validate(p)
	if err != nil {
		s.rejectPayload(w, r, http.StatusInternalServerError, err)
		return
	}

	created, err := s.bookings.Create(r.Context(), b)
	if err != nil {
		s.storeFailure(w, r, "create", err)
		return
	}

	s.writeEncoded(w, r, codec.FormatFromAccept(r.Header.Get("Accept")), func(f codec.Format) ([]byte, error) {
		return codec.EncodeCreated(created, f)
	})
}

// UpdateBooking handles PUT /booking/{id}. Requires the admin gate.
// The payload is validated before the id is looked at, so an invalid body
// is 400 even for an unknown id.
func (s *Server) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	p, err := decodeBody(r)
	if err != nil {
		s.rejectPayload(w, r, http.StatusBadRequest, err)
		return
	}
	b, err := s.validator.Validate(p)
	if err != nil {
		s.rejectPayload(w, r, http.StatusBadRequest, err)
		return
	}

	id, ok := bookingID(r)
	if !ok {
		writeStatus(w, http.StatusMethodNotAllowed)
		return
	}
	b.ID = id

	updated, err := s.bookings.Update(r.Context(), b)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeStatus(w, http.StatusMethodNotAllowed)
			return
		}
		s.storeFailure(w, r, "update", err)
		return
	}

	s.writeEncoded(w, r, codec.FormatFromAccept(r.Header.Get("Accept")), func(f codec.Format) ([]byte, error) {
		return codec.EncodeBooking(updated, f)
	})
}

// PatchBooking handles PATCH /booking/{id}. Requires the admin gate.
// Fields present in the payload replace the stored ones; the merged record
// must still pass full validation.
func (s *Server) PatchBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		writeStatus(w, http.StatusMethodNotAllowed)
		return
	}
	patch, err := decodeBody(r)
	if err != nil {
		s.rejectPayload(w, r, http.StatusBadRequest, err)
		return
	}

	updated, err := s.bookings.Patch(r.Context(), id, func(current domain.Booking) (domain.Booking, error) {
		return s.validator.Validate(codec.PayloadFrom(current).Merge(patch))
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeStatus(w, http.StatusMethodNotAllowed)
		case errors.Is(err, domain.ErrValidation):
			s.rejectPayload(w, r, http.StatusBadRequest, err)
		default:
			s.storeFailure(w, r, "patch", err)
		}
		return
	}

	s.writeEncoded(w, r, codec.FormatFromAccept(r.Header.Get("Accept")), func(f codec.Format) ([]byte, error) {
		return codec.EncodeBooking(updated, f)
	})
}

// DeleteBooking handles DELETE /booking/{id}. Requires the admin gate.
// Success is 201; an unknown id is 405.
func (s *Server) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		writeStatus(w, http.StatusMethodNotAllowed)
		return
	}

	if err := s.bookings.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeStatus(w, http.StatusMethodNotAllowed)
			return
		}
		s.storeFailure(w, r, "delete", err)
		return
	}

	writeStatus(w, http.StatusCreated)
}

// decodeBody reads the request body and decodes it in the format named by
// the Content-Type header.
func decodeBody(r *http.Request) (codec.Payload, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return codec.Payload{}, fmt.Errorf("read body: %w", err)
	}
	return codec.DecodePayload(data, codec.FormatFromContentType(r.Header.Get("Content-Type")))
}

// rejectPayload answers a submission that cannot be stored. Oversized bodies
// are always 413; everything else gets the route's validation status.
func (s *Server) rejectPayload(w http.ResponseWriter, r *http.Request, code int, err error) {
	if tooLarge(err) {
		writeStatus(w, http.StatusRequestEntityTooLarge)
		return
	}
	s.log.InfoContext(r.Context(), "rejected booking payload", "status", code, "error", err)
	writeStatus(w, code)
}
