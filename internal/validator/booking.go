// Package validator checks decoded booking submissions before they are
// written to the store.
package validator

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/booking-api/internal/codec"
	"github.com/pkordes/booking-api/internal/domain"
)

// BookingValidator validates codec.Payload values using struct tags.
type BookingValidator struct {
	validate *validator.Validate
}

// NewBookingValidator returns a validator that reports fields by their wire
// names (e.g. "bookingdates.checkin" rather than "BookingDates.CheckIn").
func NewBookingValidator() *BookingValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// encoding/xml accepts "Inf" and "NaN" as numbers; neither can be stored
	// and rendered back.
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	})
	return &BookingValidator{validate: v}
}

// Validate checks that every required field is present and well formed and
// returns the normalized booking. Failures wrap domain.ErrValidation and name
// each offending field.
func (v *BookingValidator) Validate(p codec.Payload) (domain.Booking, error) {
	if err := v.validate.Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return domain.Booking{}, fmt.Errorf("%w: %s", domain.ErrValidation, describe(fieldErrs))
		}
		return domain.Booking{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	b, err := p.Booking()
	if err != nil {
		return domain.Booking{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if b.AdditionalNeeds != "" {
		b.AdditionalNeeds = strings.TrimSpace(b.AdditionalNeeds)
	}
	return b, nil
}

// describe turns validator field errors into "field: problem" messages.
func describe(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fieldPath(fe), problem(fe)))
	}
	return strings.Join(msgs, "; ")
}

// fieldPath strips the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func problem(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must not be empty"
	case "finite":
		return "must be a finite number"
	case "gte":
		return "must not be negative"
	case "datetime":
		return "must be a CCYY-MM-DD date"
	default:
		return "is invalid"
	}
}
