package repo

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/pkordes/booking-api/internal/domain"
)

// memoryBookingRepo keeps bookings in a map guarded by a mutex. IDs come from
// a counter that is never reused, matching the Postgres identity column.
type memoryBookingRepo struct {
	mu       sync.RWMutex
	bookings map[int64]domain.Booking
	lastID   int64
}

// NewMemoryBookingRepo returns an empty in-memory BookingRepo. Its contents
// are lost when the process exits.
func NewMemoryBookingRepo() BookingRepo {
	return &memoryBookingRepo{bookings: make(map[int64]domain.Booking)}
}

func (r *memoryBookingRepo) Create(_ context.Context, b domain.Booking) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	b.ID = r.lastID
	b.CheckIn = domain.Date(b.CheckIn)
	b.CheckOut = domain.Date(b.CheckOut)
	r.bookings[b.ID] = b
	return b, nil
}

func (r *memoryBookingRepo) GetByID(_ context.Context, id int64) (domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return domain.Booking{}, fmt.Errorf("repo.memoryBookingRepo.GetByID: %w", domain.ErrNotFound)
	}
	return b, nil
}

func (r *memoryBookingRepo) ListIDs(_ context.Context, f domain.BookingFilter) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := []int64{}
	for id, b := range r.bookings {
		if f.Matches(b) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (r *memoryBookingRepo) Update(_ context.Context, b domain.Booking) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[b.ID]; !ok {
		return domain.Booking{}, fmt.Errorf("repo.memoryBookingRepo.Update: %w", domain.ErrNotFound)
	}
	b.CheckIn = domain.Date(b.CheckIn)
	b.CheckOut = domain.Date(b.CheckOut)
	r.bookings[b.ID] = b
	return b, nil
}

func (r *memoryBookingRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return fmt.Errorf("repo.memoryBookingRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(r.bookings, id)
	return nil
}
