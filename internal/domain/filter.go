package domain

import "time"

// BookingFilter narrows which booking ids a listing returns.
// Every nil field is an omitted predicate; the zero value matches everything.
type BookingFilter struct {
	// FirstName, when set, must equal the booking's first name exactly.
	FirstName *string
	// LastName, when set, must equal the booking's last name exactly.
	LastName *string
	// CheckIn is an inclusive lower bound on the booking's check-in date.
	CheckIn *time.Time
	// CheckOut is an inclusive upper bound on the booking's check-out date.
	CheckOut *time.Time
}

// NewBookingFilter builds a BookingFilter from optional HTTP query values.
// Empty strings are treated the same as absent ones. Dates are truncated to
// the calendar day so comparisons ignore any time component.
func NewBookingFilter(firstName, lastName *string, checkIn, checkOut *time.Time) BookingFilter {
	var f BookingFilter
	if firstName != nil && *firstName != "" {
		f.FirstName = firstName
	}
	if lastName != nil && *lastName != "" {
		f.LastName = lastName
	}
	if checkIn != nil {
		d := Date(*checkIn)
		f.CheckIn = &d
	}
	if checkOut != nil {
		d := Date(*checkOut)
		f.CheckOut = &d
	}
	return f
}

// IsZero reports whether the filter has no predicates.
func (f BookingFilter) IsZero() bool {
	return f.FirstName == nil && f.LastName == nil && f.CheckIn == nil && f.CheckOut == nil
}

// Matches reports whether b satisfies every predicate in f.
// Stores that cannot push the filter down (e.g. the in-memory store) use this.
func (f BookingFilter) Matches(b Booking) bool {
	if f.FirstName != nil && b.FirstName != *f.FirstName {
		return false
	}
	if f.LastName != nil && b.LastName != *f.LastName {
		return false
	}
	if f.CheckIn != nil && Date(b.CheckIn).Before(*f.CheckIn) {
		return false
	}
	if f.CheckOut != nil && Date(b.CheckOut).After(*f.CheckOut) {
		return false
	}
	return true
}
