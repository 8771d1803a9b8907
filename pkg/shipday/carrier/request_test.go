package carrier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/shipday/pkg/shipday/carrier"
	"github.com/tournevent/shipday/pkg/shipday/errs"
)

func TestRequest_Body(t *testing.T) {
	r := carrier.NewRequest(carrier.Params{
		Name:        "John Doe",
		Email:       "john@example.com",
		PhoneNumber: "+12345678901",
	})

	body, err := r.Body()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name":        "John Doe",
		"email":       "john@example.com",
		"phoneNumber": "+12345678901",
	}, body)
}

func TestRequest_BodyVerifiesFirst(t *testing.T) {
	tests := []struct {
		name    string
		params  carrier.Params
		message string
	}{
		{"missing name", carrier.Params{Email: "a@b.c", PhoneNumber: "+1"}, "carrier must have a name"},
		{"missing email", carrier.Params{Name: "John", PhoneNumber: "+1"}, "carrier must have an email"},
		{"missing phone", carrier.Params{Name: "John", Email: "a@b.c"}, "carrier must have a phone number"},
		{"empty", carrier.Params{}, "carrier must have a name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := carrier.NewRequest(tt.params).Body()
			require.Error(t, err)
			assert.Nil(t, body)
			assert.EqualError(t, err, tt.message)
			assert.Equal(t, errs.KindMissingRequiredField, errs.KindOf(err))
		})
	}
}

func TestRequest_Setters(t *testing.T) {
	r := carrier.NewRequest(carrier.Params{})
	assert.Error(t, r.SetName(""))
	assert.Error(t, r.SetEmail(""))
	assert.Error(t, r.SetPhoneNumber(""))

	require.NoError(t, r.SetName("John"))
	require.NoError(t, r.SetEmail("john@example.com"))
	require.NoError(t, r.SetPhoneNumber("+1"))
	assert.NoError(t, r.Verify())
	assert.Equal(t, "John", r.Name())
}
