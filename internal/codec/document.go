package codec

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/pkordes/booking-api/internal/domain"
)

// bookingDoc is the outbound shape of a single booking in both formats.
type bookingDoc struct {
	XMLName         xml.Name `json:"-" xml:"booking"`
	FirstName       string   `json:"firstname" xml:"firstname"`
	LastName        string   `json:"lastname" xml:"lastname"`
	TotalPrice      float64  `json:"totalprice" xml:"totalprice"`
	DepositPaid     bool     `json:"depositpaid" xml:"depositpaid"`
	BookingDates    datesDoc `json:"bookingdates" xml:"bookingdates"`
	AdditionalNeeds string   `json:"additionalneeds,omitempty" xml:"additionalneeds,omitempty"`
}

type datesDoc struct {
	CheckIn  string `json:"checkin" xml:"checkin"`
	CheckOut string `json:"checkout" xml:"checkout"`
}

// createdDoc is the response to POST /booking.
type createdDoc struct {
	XMLName   xml.Name   `json:"-" xml:"created-booking"`
	BookingID int64      `json:"bookingid" xml:"bookingid"`
	Booking   bookingDoc `json:"booking" xml:"booking"`
}

// idDoc is one entry of the booking id listing.
type idDoc struct {
	XMLName   xml.Name `json:"-" xml:"booking"`
	BookingID int64    `json:"bookingid" xml:"bookingid"`
}

// idListDoc wraps the listing for XML, which needs a single root element.
type idListDoc struct {
	XMLName  xml.Name `xml:"bookings"`
	Bookings []idDoc  `xml:"booking"`
}

func toBookingDoc(b domain.Booking) bookingDoc {
	return bookingDoc{
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		TotalPrice:  b.TotalPrice,
		DepositPaid: b.DepositPaid,
		BookingDates: datesDoc{
			CheckIn:  b.CheckIn.Format(domain.DateLayout),
			CheckOut: b.CheckOut.Format(domain.DateLayout),
		},
		AdditionalNeeds: b.AdditionalNeeds,
	}
}

// Payload is a decoded booking submission. Every field is optional so the
// validator can tell a missing field from a zero value.
type Payload struct {
	XMLName         xml.Name      `json:"-" xml:"booking"`
	FirstName       *string       `json:"firstname" xml:"firstname" validate:"required,min=1"`
	LastName        *string       `json:"lastname" xml:"lastname" validate:"required,min=1"`
	TotalPrice      *float64      `json:"totalprice" xml:"totalprice" validate:"required,finite,gte=0"`
	DepositPaid     *bool         `json:"depositpaid" xml:"depositpaid" validate:"required"`
	BookingDates    *DatesPayload `json:"bookingdates" xml:"bookingdates" validate:"required"`
	AdditionalNeeds *string       `json:"additionalneeds,omitempty" xml:"additionalneeds,omitempty"`
}

// DatesPayload holds the submitted stay dates as raw strings.
type DatesPayload struct {
	CheckIn  *string `json:"checkin" xml:"checkin" validate:"required,datetime=2006-01-02"`
	CheckOut *string `json:"checkout" xml:"checkout" validate:"required,datetime=2006-01-02"`
}

// PayloadFrom builds a fully populated Payload from a stored booking.
// It is used to merge partial updates onto an existing record.
func PayloadFrom(b domain.Booking) Payload {
	doc := toBookingDoc(b)
	p := Payload{
		FirstName:   &doc.FirstName,
		LastName:    &doc.LastName,
		TotalPrice:  &doc.TotalPrice,
		DepositPaid: &doc.DepositPaid,
		BookingDates: &DatesPayload{
			CheckIn:  &doc.BookingDates.CheckIn,
			CheckOut: &doc.BookingDates.CheckOut,
		},
	}
	if doc.AdditionalNeeds != "" {
		p.AdditionalNeeds = &doc.AdditionalNeeds
	}
	return p
}

// Merge overlays every field set in patch onto p and returns the result.
func (p Payload) Merge(patch Payload) Payload {
	if patch.FirstName != nil {
		p.FirstName = patch.FirstName
	}
	if patch.LastName != nil {
		p.LastName = patch.LastName
	}
	if patch.TotalPrice != nil {
		p.TotalPrice = patch.TotalPrice
	}
	if patch.DepositPaid != nil {
		p.DepositPaid = patch.DepositPaid
	}
	if patch.BookingDates != nil {
		dates := DatesPayload{}
		if p.BookingDates != nil {
			dates = *p.BookingDates
		}
		if patch.BookingDates.CheckIn != nil {
			dates.CheckIn = patch.BookingDates.CheckIn
		}
		if patch.BookingDates.CheckOut != nil {
			dates.CheckOut = patch.BookingDates.CheckOut
		}
		p.BookingDates = &dates
	}
	if patch.AdditionalNeeds != nil {
		p.AdditionalNeeds = patch.AdditionalNeeds
	}
	return p
}

// Booking converts p into a domain.Booking. Absent fields become zero values;
// callers are expected to validate p first. Dates that do not parse as
// CCYY-MM-DD return an error wrapping ErrEncoding.
func (p Payload) Booking() (domain.Booking, error) {
	var b domain.Booking
	if p.FirstName != nil {
		b.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		b.LastName = *p.LastName
	}
	if p.TotalPrice != nil {
		b.TotalPrice = *p.TotalPrice
	}
	if p.DepositPaid != nil {
		b.DepositPaid = *p.DepositPaid
	}
	if p.AdditionalNeeds != nil {
		b.AdditionalNeeds = *p.AdditionalNeeds
	}
	if p.BookingDates != nil {
		var err error
		if b.CheckIn, err = parseOptionalDate(p.BookingDates.CheckIn); err != nil {
			return domain.Booking{}, fmt.Errorf("%w: checkin: %v", ErrEncoding, err)
		}
		if b.CheckOut, err = parseOptionalDate(p.BookingDates.CheckOut); err != nil {
			return domain.Booking{}, fmt.Errorf("%w: checkout: %v", ErrEncoding, err)
		}
	}
	return b, nil
}

func parseOptionalDate(s *string) (time.Time, error) {
	if s == nil {
		return time.Time{}, nil
	}
	return domain.ParseDate(*s)
}
