package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/shipday/pkg/shipday/carrier"
	"github.com/tournevent/shipday/pkg/shipday/errs"
	"github.com/tournevent/shipday/pkg/shipday/services"
	"github.com/tournevent/shipday/pkg/shipday/transport"
)

func johnDoe() *carrier.Request {
	return carrier.NewRequest(carrier.Params{
		Name:        "John Doe",
		Email:       "john@example.com",
		PhoneNumber: "+12345678901",
	})
}

func TestCarrierService_GetCarriers(t *testing.T) {
	mock := transport.NewMockAPIClient()
	svc := services.NewCarrierService(mock, testLogger())

	resp, err := svc.GetCarriers(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestCarrierService_AddCarrier(t *testing.T) {
	mock := transport.NewMockAPIClient()
	svc := services.NewCarrierService(mock, testLogger())

	_, err := svc.AddCarrier(context.Background(), johnDoe())
	require.NoError(t, err)

	calls := mock.CallsTo("POST", "/carriers/")
	require.Len(t, calls, 1)
	assert.Equal(t, map[string]any{
		"name":        "John Doe",
		"email":       "john@example.com",
		"phoneNumber": "+12345678901",
	}, calls[0].Body)
}

func TestCarrierService_AddCarrierErrorCode(t *testing.T) {
	response := map[string]any{"errorCode": 400, "errorMessage": "Carrier already exists"}

	mock := transport.NewMockAPIClient()
	mock.OnPost = func(ctx context.Context, path string, body map[string]any) (any, error) {
		return response, nil
	}
	svc := services.NewCarrierService(mock, testLogger())

	resp, err := svc.AddCarrier(context.Background(), johnDoe())
	assert.Nil(t, resp)

	var apiErr *errs.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Carrier already exists", apiErr.Message)
}

func TestCarrierService_AddCarrierInvalid(t *testing.T) {
	mock := transport.NewMockAPIClient()
	svc := services.NewCarrierService(mock, testLogger())

	_, err := svc.AddCarrier(context.Background(), carrier.NewRequest(carrier.Params{Name: "John"}))
	assert.EqualError(t, err, "carrier must have an email")
	assert.Empty(t, mock.Calls())

	_, err = svc.AddCarrier(context.Background(), nil)
	assert.True(t, errs.IsValidation(err))
}

func TestCarrierService_DeleteCarrier(t *testing.T) {
	mock := transport.NewMockAPIClient()
	svc := services.NewCarrierService(mock, testLogger())

	_, err := svc.DeleteCarrier(context.Background(), 0)
	assert.True(t, errs.IsValidation(err))

	_, err = svc.DeleteCarrier(context.Background(), 11)
	require.NoError(t, err)
	assert.Len(t, mock.CallsTo("DELETE", "/carriers/11"), 1)
}
