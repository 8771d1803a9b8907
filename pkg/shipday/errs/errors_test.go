package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tournevent/shipday/pkg/shipday/errs"
)

func TestValidationError_Error(t *testing.T) {
	err := errs.MissingRequiredField("name", "customer must have a name")
	assert.Equal(t, "customer must have a name", err.Error())
	assert.Equal(t, errs.KindMissingRequiredField, err.Kind)
	assert.Equal(t, "name", err.Field)
}

func TestValidationError_ErrorWithCause(t *testing.T) {
	cause := errs.RangeViolation("quantity", "quantity must be a positive integer")
	err := errs.NewValidationError(cause.Kind, "orderItems", "item 2").WithCause(cause)

	assert.Equal(t, "item 2: quantity must be a positive integer", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestValidationError_Is(t *testing.T) {
	err := errs.RangeViolation("latitude", "latitude out of range")

	assert.True(t, errors.Is(err, errs.ErrValidation))
	assert.True(t, errors.Is(err, errs.RangeViolation("other", "different message")))
	assert.False(t, errors.Is(err, errs.TypeMismatch("latitude", "latitude out of range")))
	assert.False(t, errors.Is(err, errs.ErrAPI))
}

func TestAPIError_Error(t *testing.T) {
	err := errs.NewAPIError("INVALID_ORDER", "Order number already exists")
	assert.Equal(t, "shipday error (INVALID_ORDER): Order number already exists", err.Error())

	noCode := errs.NewAPIError("", "something broke")
	assert.Equal(t, "shipday error: something broke", noCode.Error())
}

func TestAPIError_IsAndUnwrap(t *testing.T) {
	err := errs.NewAPIError("SERVICE_NOT_AVAILABLE", "Service not available").
		WithCause(errs.ErrServiceNotAvailable).
		WithStatusCode(400)

	assert.True(t, errors.Is(err, errs.ErrAPI))
	assert.True(t, errors.Is(err, errs.ErrServiceNotAvailable))
	assert.True(t, errors.Is(err, errs.NewAPIError("SERVICE_NOT_AVAILABLE", "")))
	assert.Equal(t, 400, err.StatusCode)
}

func TestHelpers(t *testing.T) {
	wrapped := fmt.Errorf("inserting order: %w", errs.TypeMismatch("quantity", "bad"))

	assert.True(t, errs.IsValidation(wrapped))
	assert.False(t, errs.IsAPI(wrapped))
	assert.Equal(t, errs.KindTypeMismatch, errs.KindOf(wrapped))
	assert.Equal(t, errs.Kind(""), errs.KindOf(errors.New("plain")))

	apiErr := fmt.Errorf("adding carrier: %w", errs.NewAPIError("X", "y"))
	assert.True(t, errs.IsAPI(apiErr))
	assert.False(t, errs.IsValidation(apiErr))
}
