package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/booking-api/internal/codec"
	"github.com/pkordes/booking-api/internal/domain"
	"github.com/pkordes/booking-api/internal/validator"
)

func decode(t *testing.T, body string) codec.Payload {
	t.Helper()
	p, err := codec.DecodePayload([]byte(body), codec.JSON)
	require.NoError(t, err)
	return p
}

func TestBookingValidator_Valid(t *testing.T) {
	v := validator.NewBookingValidator()
	p := decode(t, `{"firstname":"Jim","lastname":"Brown","totalprice":111,"depositpaid":true,
		"bookingdates":{"checkin":"2018-01-01","checkout":"2019-01-01"},"additionalneeds":"Breakfast"}`)

	got, err := v.Validate(p)

	require.NoError(t, err)
	assert.Equal(t, domain.Booking{
		FirstName:       "Jim",
		LastName:        "Brown",
		TotalPrice:      111,
		DepositPaid:     true,
		CheckIn:         time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:        time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
		AdditionalNeeds: "Breakfast",
	}, got)
}

func TestBookingValidator_ZeroValuesArePresent(t *testing.T) {
	v := validator.NewBookingValidator()
	p := decode(t, `{"firstname":"Jim","lastname":"Brown","totalprice":0,"depositpaid":false,
		"bookingdates":{"checkin":"2018-01-01","checkout":"2017-01-01"}}`)

	got, err := v.Validate(p)

	require.NoError(t, err, "checkout before checkin is allowed")
	assert.False(t, got.DepositPaid)
	assert.Zero(t, got.TotalPrice)
	assert.Empty(t, got.AdditionalNeeds)
}

func TestBookingValidator_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing firstname", `{"lastname":"Brown","totalprice":1,"depositpaid":true,"bookingdates":{"checkin":"2018-01-01","checkout":"2019-01-01"}}`, "firstname"},
		{"empty lastname", `{"firstname":"Jim","lastname":"","totalprice":1,"depositpaid":true,"bookingdates":{"checkin":"2018-01-01","checkout":"2019-01-01"}}`, "lastname"},
		{"negative price", `{"firstname":"Jim","lastname":"Brown","totalprice":-5,"depositpaid":true,"bookingdates":{"checkin":"2018-01-01","checkout":"2019-01-01"}}`, "totalprice"},
		{"missing depositpaid", `{"firstname":"Jim","lastname":"Brown","totalprice":1,"bookingdates":{"checkin":"2018-01-01","checkout":"2019-01-01"}}`, "depositpaid"},
		{"missing bookingdates", `{"firstname":"Jim","lastname":"Brown","totalprice":1,"depositpaid":true}`, "bookingdates"},
		{"missing checkout", `{"firstname":"Jim","lastname":"Brown","totalprice":1,"depositpaid":true,"bookingdates":{"checkin":"2018-01-01"}}`, "bookingdates.checkout"},
		{"malformed checkin", `{"firstname":"Jim","lastname":"Brown","totalprice":1,"depositpaid":true,"bookingdates":{"checkin":"01/01/2018","checkout":"2019-01-01"}}`, "bookingdates.checkin"},
	}
	v := validator.NewBookingValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Validate(decode(t, tt.body))

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestBookingValidator_RejectsNonFinitePrice(t *testing.T) {
	v := validator.NewBookingValidator()
	for _, price := range []string{"Inf", "+Inf", "-Inf", "NaN"} {
		t.Run(price, func(t *testing.T) {
			body := `<booking><firstname>Jim</firstname><lastname>Brown</lastname>` +
				`<totalprice>` + price + `</totalprice><depositpaid>true</depositpaid>` +
				`<bookingdates><checkin>2018-01-01</checkin><checkout>2019-01-01</checkout></bookingdates></booking>`
			p, err := codec.DecodePayload([]byte(body), codec.XML)
			require.NoError(t, err)

			_, err = v.Validate(p)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), "totalprice")
		})
	}
}
