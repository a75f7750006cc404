// Package service contains the business logic for the booking API.
// Services orchestrate repo calls; no SQL lives here, and payload validation
// happens before a booking reaches this layer.
package service

import (
	"context"
	"fmt"

	"github.com/pkordes/booking-api/internal/domain"
	"github.com/pkordes/booking-api/internal/repo"
)

// BookingService implements the booking operations.
type BookingService struct {
	repo repo.BookingRepo
}

// NewBookingService constructs a BookingService backed by the provided repo.
func NewBookingService(r repo.BookingRepo) *BookingService {
	return &BookingService{repo: r}
}

// Create persists a new booking and returns it with its assigned ID.
func (s *BookingService) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	result, err := s.repo.Create(ctx, b)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single booking.
// Returns domain.ErrNotFound if no booking has that ID.
func (s *BookingService) GetByID(ctx context.Context, id int64) (domain.Booking, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.GetByID: %w", err)
	}
	return result, nil
}

// ListIDs returns the ids of bookings matching f.
// Always returns a non-nil slice so an empty result encodes as [].
func (s *BookingService) ListIDs(ctx context.Context, f domain.BookingFilter) ([]int64, error) {
	ids, err := s.repo.ListIDs(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.ListIDs: %w", err)
	}
	if ids == nil {
		return []int64{}, nil
	}
	return ids, nil
}

// Update replaces the booking with b.ID and returns the record as re-read
// from the store. Returns domain.ErrNotFound if the booking is absent either
// at update time or when re-read.
func (s *BookingService) Update(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	if _, err := s.repo.Update(ctx, b); err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Update: %w", err)
	}
	result, err := s.repo.GetByID(ctx, b.ID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Update: reread: %w", err)
	}
	return result, nil
}

// Patch loads the booking with the given id, passes it to apply, and stores
// whatever apply returns. An error from apply aborts the patch unchanged.
// Returns domain.ErrNotFound if the booking does not exist.
func (s *BookingService) Patch(ctx context.Context, id int64, apply func(domain.Booking) (domain.Booking, error)) (domain.Booking, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Patch: %w", err)
	}
	next, err := apply(current)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Patch: %w", err)
	}
	next.ID = id
	return s.Update(ctx, next)
}

// Delete removes a booking.
// Returns domain.ErrNotFound if no booking has that ID.
func (s *BookingService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.BookingService.Delete: %w", err)
	}
	return nil
}
