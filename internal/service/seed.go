package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pkordes/booking-api/internal/domain"
)

// SeedCount is the number of bootstrap bookings inserted at startup.
const SeedCount = 10

var (
	seedFirstNames = []string{"Sally", "Jim", "Mark", "Mary", "Susan", "Eric", "Jane", "John", "Loren", "Sam"}
	seedLastNames  = []string{"Brown", "Smith", "Jones", "Wilson", "Jackson", "Ericsson", "Allen", "Wilson"}
	seedNeeds      = []string{"Breakfast", "Late checkout", "Extra pillow", ""}
)

// Seed inserts n randomly generated bookings and returns them as stored.
// rng drives every random choice, so a fixed source yields fixed data.
func (s *BookingService) Seed(ctx context.Context, n int, rng *rand.Rand) ([]domain.Booking, error) {
	base := domain.Date(time.Now().UTC())
	out := make([]domain.Booking, 0, n)
	for range n {
		checkIn := base.AddDate(0, 0, rng.IntN(365)-180)
		b := domain.Booking{
			FirstName:       seedFirstNames[rng.IntN(len(seedFirstNames))],
			LastName:        seedLastNames[rng.IntN(len(seedLastNames))],
			TotalPrice:      float64(100 + rng.IntN(900)),
			DepositPaid:     rng.IntN(2) == 1,
			CheckIn:         checkIn,
			CheckOut:        checkIn.AddDate(0, 0, 1+rng.IntN(14)),
			AdditionalNeeds: seedNeeds[rng.IntN(len(seedNeeds))],
		}
		created, err := s.repo.Create(ctx, b)
		if err != nil {
			return out, fmt.Errorf("service.BookingService.Seed: %w", err)
		}
		out = append(out, created)
	}
	return out, nil
}
