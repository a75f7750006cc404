// Package domain contains the core data types for the booking API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler, codec).
package domain

import "time"

// DateLayout is the wire and query format for calendar dates (CCYY-MM-DD).
const DateLayout = "2006-01-02"

// Booking is a single guest reservation.
// CheckIn and CheckOut are calendar dates held as midnight UTC; the API does
// not require CheckIn to precede CheckOut.
type Booking struct {
	ID              int64
	FirstName       string
	LastName        string
	TotalPrice      float64
	DepositPaid     bool
	CheckIn         time.Time
	CheckOut        time.Time
	AdditionalNeeds string // empty when the guest has no extra needs
}

// Date truncates t to its calendar day in UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a CCYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
