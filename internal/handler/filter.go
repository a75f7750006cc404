package handler

import (
	"net/url"
	"time"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/booking-api/internal/domain"
)

// bookingFilterFromQuery builds the listing filter from GET /booking query
// parameters. A parameter that fails to bind (a malformed date, or a name
// given twice) is left unset, dropping its predicate rather than failing the
// request; the names of dropped parameters are returned for logging.
func bookingFilterFromQuery(q url.Values) (domain.BookingFilter, []string) {
	var (
		firstName, lastName *string
		checkIn, checkOut   *openapi_types.Date
		ignored             []string
	)

	bind := func(name string, dest any) {
		if err := runtime.BindQueryParameter("form", true, false, name, q, dest); err != nil {
			ignored = append(ignored, name)
		}
	}
	bind("firstname", &firstName)
	bind("lastname", &lastName)
	bind("checkin", &checkIn)
	bind("checkout", &checkOut)

	return domain.NewBookingFilter(firstName, lastName, dateTime(checkIn), dateTime(checkOut)), ignored
}

func dateTime(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
