package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/booking-api/apidoc"
	"github.com/pkordes/booking-api/internal/middleware"
)

// NewRouter mounts every booking API route on a chi router.
// Reads and POST /booking are open; PUT, PATCH and DELETE sit behind the
// admin gate, which answers 403 before the handler sees the request.
// Request bodies are capped at maxBodyBytes (0 disables the cap); on gated
// routes the cap applies only once the gate has let the request through.
func NewRouter(s *Server, maxBodyBytes int64) chi.Router {
	limitBody := func(next http.Handler) http.Handler { return next }
	if maxBodyBytes > 0 {
		limitBody = middleware.NewMaxBodySizeHandler(maxBodyBytes)
	}

	r := chi.NewRouter()

	r.Get("/ping", s.Ping)
	r.With(limitBody).Post("/auth", s.CreateToken)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Route("/booking", func(r chi.Router) {
		r.Get("/", s.ListBookings)
		r.With(limitBody).Post("/", s.CreateBooking)
		r.Get("/{id}", s.GetBooking)

		r.Group(func(r chi.Router) {
			r.Use(middleware.NewAdminGate(s.gate))
			r.Use(limitBody)
			r.Put("/{id}", s.UpdateBooking)
			r.Patch("/{id}", s.PatchBooking)
			r.Delete("/{id}", s.DeleteBooking)
		})
	})

	return r
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(apidoc.OpenAPI)
}
