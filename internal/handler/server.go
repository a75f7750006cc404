// Package handler implements the HTTP handlers for the booking API.
// All handlers are methods on Server; NewRouter wires them to chi routes.
package handler

import (
	"context"
	"log/slog"

	"github.com/pkordes/booking-api/internal/codec"
	"github.com/pkordes/booking-api/internal/domain"
	"github.com/pkordes/booking-api/internal/middleware"
)

// BookingServicer defines the booking operations the handlers depend on.
// Defined here, in the consumer, so tests can inject a mock.
type BookingServicer interface {
	Create(ctx context.Context, b domain.Booking) (domain.Booking, error)
	GetByID(ctx context.Context, id int64) (domain.Booking, error)
	ListIDs(ctx context.Context, f domain.BookingFilter) ([]int64, error)
	Update(ctx context.Context, b domain.Booking) (domain.Booking, error)
	Patch(ctx context.Context, id int64, apply func(domain.Booking) (domain.Booking, error)) (domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// PayloadValidator turns a decoded submission into a booking, or explains
// why it cannot. Errors wrap domain.ErrValidation.
type PayloadValidator interface {
	Validate(p codec.Payload) (domain.Booking, error)
}

// AdminGate issues admin tokens and authorizes mutations. *auth.Gate
// satisfies it.
type AdminGate interface {
	middleware.Authorizer
	Exchange(ctx context.Context, username, password string) (string, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	bookings  BookingServicer
	validator PayloadValidator
	gate      AdminGate
	log       *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger discards handler logs.
func NewServer(bookings BookingServicer, validator PayloadValidator, gate AdminGate, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{bookings: bookings, validator: validator, gate: gate, log: log}
}
