// Package repo contains all storage access for the booking API.
// BookingRepo has a Postgres implementation and an in-memory one.
// No business logic lives here, only queries and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/booking-api/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BookingRepo defines the persistence operations for bookings.
type BookingRepo interface {
	// Create inserts a booking and returns it with its store-assigned ID.
	// Any ID on the input is ignored.
	Create(ctx context.Context, b domain.Booking) (domain.Booking, error)

	// GetByID retrieves a booking. Returns domain.ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (domain.Booking, error)

	// ListIDs returns the ids of all bookings matching f, ascending.
	ListIDs(ctx context.Context, f domain.BookingFilter) ([]int64, error)

	// Update overwrites every mutable field of the booking with b.ID and
	// returns the stored record. Returns domain.ErrNotFound if absent.
	Update(ctx context.Context, b domain.Booking) (domain.Booking, error)

	// Delete removes a booking. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id int64) error
}

// pgBookingRepo is the Postgres implementation of BookingRepo.
type pgBookingRepo struct {
	db db
}

// NewBookingRepo constructs a BookingRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewBookingRepo(db db) BookingRepo {
	return &pgBookingRepo{db: db}
}

const bookingColumns = `id, firstname, lastname, totalprice, depositpaid, checkin, checkout, additionalneeds`

// Create inserts a new booking row and returns the full persisted record.
func (r *pgBookingRepo) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	const q = `
		INSERT INTO bookings (firstname, lastname, totalprice, depositpaid, checkin, checkout, additionalneeds)
		VALUES (@firstname, @lastname, @totalprice, @depositpaid, @checkin, @checkout, @additionalneeds)
		RETURNING ` + bookingColumns

	row := r.db.QueryRow(ctx, q, bookingArgs(b))
	result, err := scanBooking(row)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a booking by primary key.
func (r *pgBookingRepo) GetByID(ctx context.Context, id int64) (domain.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanBooking(row)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListIDs pushes the filter down as nullable named arguments: a NULL argument
// disables its predicate, so one static statement covers every combination.
// An empty filter skips the WHERE clause entirely.
func (r *pgBookingRepo) ListIDs(ctx context.Context, f domain.BookingFilter) ([]int64, error) {
	const all = `SELECT id FROM bookings ORDER BY id`
	const q = `
		SELECT id
		FROM bookings
		WHERE (@firstname::text IS NULL OR firstname = @firstname)
		  AND (@lastname::text  IS NULL OR lastname  = @lastname)
		  AND (@checkin::date   IS NULL OR checkin  >= @checkin)
		  AND (@checkout::date  IS NULL OR checkout <= @checkout)
		ORDER BY id`

	args := pgx.NamedArgs{
		"firstname": f.FirstName,
		"lastname":  f.LastName,
		"checkin":   f.CheckIn,
		"checkout":  f.CheckOut,
	}

	var (
		rows pgx.Rows
		err  error
	)
	if f.IsZero() {
		rows, err = r.db.Query(ctx, all)
	} else {
		rows, err = r.db.Query(ctx, q, args)
	}
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.ListIDs: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.ListIDs: rows: %w", err)
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

// Update overwrites the mutable fields of a booking and returns the updated record.
func (r *pgBookingRepo) Update(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	const q = `
		UPDATE bookings
		SET firstname       = @firstname,
		    lastname        = @lastname,
		    totalprice      = @totalprice,
		    depositpaid     = @depositpaid,
		    checkin         = @checkin,
		    checkout        = @checkout,
		    additionalneeds = @additionalneeds
		WHERE id = @id
		RETURNING ` + bookingColumns

	args := bookingArgs(b)
	args["id"] = b.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanBooking(row)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a booking by primary key.
func (r *pgBookingRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM bookings WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.BookingRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.BookingRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func bookingArgs(b domain.Booking) pgx.NamedArgs {
	return pgx.NamedArgs{
		"firstname":       b.FirstName,
		"lastname":        b.LastName,
		"totalprice":      b.TotalPrice,
		"depositpaid":     b.DepositPaid,
		"checkin":         pgtype.Date{Time: domain.Date(b.CheckIn), Valid: true},
		"checkout":        pgtype.Date{Time: domain.Date(b.CheckOut), Valid: true},
		"additionalneeds": b.AdditionalNeeds,
	}
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanBooking maps a single database row into a domain.Booking.
func scanBooking(s scanner) (domain.Booking, error) {
	var (
		b        domain.Booking
		checkIn  pgtype.Date
		checkOut pgtype.Date
	)

	err := s.Scan(&b.ID, &b.FirstName, &b.LastName, &b.TotalPrice, &b.DepositPaid,
		&checkIn, &checkOut, &b.AdditionalNeeds)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Booking{}, domain.ErrNotFound
		}
		return domain.Booking{}, err
	}

	b.CheckIn = checkIn.Time
	b.CheckOut = checkOut.Time
	return b, nil
}
