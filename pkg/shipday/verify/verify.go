// Package verify holds the small set of field validators shared by the
// Shipday models. Every validator returns nil or an *errs.ValidationError.
package verify

import (
	"math"
	"slices"

	"github.com/tournevent/shipday/pkg/shipday/errs"
)

// Required fails when value is empty.
func Required(field, value, message string) error {
	if value == "" {
		return errs.MissingRequiredField(field, message)
	}
	return nil
}

// Number fails when v is NaN or infinite.
func Number(field string, v float64, message string) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errs.TypeMismatch(field, message)
	}
	return nil
}

// NotNegative fails when v is not a finite number or is below zero.
func NotNegative(field string, v float64, message string) error {
	if err := Number(field, v, message); err != nil {
		return err
	}
	if v < 0 {
		return errs.RangeViolation(field, message)
	}
	return nil
}

// NotNegativeInt fails when v is below zero.
func NotNegativeInt(field string, v int, message string) error {
	if v < 0 {
		return errs.RangeViolation(field, message)
	}
	return nil
}

// PositiveInt fails when v is below one.
func PositiveInt(field string, v int, message string) error {
	if v < 1 {
		return errs.RangeViolation(field, message)
	}
	return nil
}

// WithinRange fails when v is present and outside [lo, hi].
func WithinRange(field string, v *float64, lo, hi float64, message string) error {
	if v == nil {
		return nil
	}
	if err := Number(field, *v, message); err != nil {
		return err
	}
	if *v < lo || *v > hi {
		return errs.RangeViolation(field, message)
	}
	return nil
}

// AllOrNone fails when some, but not all, of the given values are present.
func AllOrNone(field, message string, present ...bool) error {
	var n int
	for _, p := range present {
		if p {
			n++
		}
	}
	if n != 0 && n != len(present) {
		return errs.CrossFieldViolation(field, message)
	}
	return nil
}

// OneOf fails when v is not in allowed.
func OneOf[T comparable](field string, v T, allowed []T, message string) error {
	if !slices.Contains(allowed, v) {
		return errs.RangeViolation(field, message)
	}
	return nil
}

// First returns the first non-nil error.
func First(checks ...error) error {
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}
