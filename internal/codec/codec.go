package codec

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/pkordes/booking-api/internal/domain"
)

// ErrEncoding is returned when a value cannot be converted to or from the
// requested representation.
// Handlers map this to HTTP 418 for responses.
var ErrEncoding = errors.New("encoding error")

// EncodeBooking renders a single booking.
func EncodeBooking(b domain.Booking, f Format) ([]byte, error) {
	return encode(toBookingDoc(b), f)
}

// EncodeCreated renders the response to a successful create: the new id and
// the stored booking.
func EncodeCreated(b domain.Booking, f Format) ([]byte, error) {
	return encode(createdDoc{BookingID: b.ID, Booking: toBookingDoc(b)}, f)
}

// EncodeIDs renders the booking id listing. An empty listing is still a
// well-formed document ("[]" in JSON, an empty <bookings/> in XML).
func EncodeIDs(ids []int64, f Format) ([]byte, error) {
	docs := make([]idDoc, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, idDoc{BookingID: id})
	}
	if f == XML {
		return encode(idListDoc{Bookings: docs}, f)
	}
	return encode(docs, f)
}

// DecodePayload parses a booking submission. XML input must be wrapped in a
// <booking> element, which is unwrapped here.
func DecodePayload(data []byte, f Format) (Payload, error) {
	var p Payload
	var err error
	switch f {
	case XML:
		err = xml.Unmarshal(data, &p)
	default:
		err = json.Unmarshal(data, &p)
	}
	if err != nil {
		return Payload{}, fmt.Errorf("%w: decode %s: %v", ErrEncoding, f, err)
	}
	return p, nil
}

func encode(v any, f Format) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch f {
	case XML:
		var body []byte
		body, err = xml.Marshal(v)
		if err == nil {
			out = append([]byte(xml.Header), body...)
		}
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		err = enc.Encode(v)
		out = bytes.TrimRight(buf.Bytes(), "\n")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: encode %s: %v", ErrEncoding, f, err)
	}
	return out, nil
}
