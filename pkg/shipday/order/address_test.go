package order_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/shipday/pkg/shipday/errs"
	"github.com/tournevent/shipday/pkg/shipday/order"
)

func ptr[T any](v T) *T { return &v }

func jefferson() *order.Address {
	return order.NewAddress(order.AddressParams{
		Street:  "Jefferson St",
		City:    "California",
		State:   "CA",
		Country: "USA",
	})
}

func TestAddress_SingleLine(t *testing.T) {
	assert.Equal(t, "Jefferson St, California, CA, USA", jefferson().SingleLine())
}

func TestAddress_SingleLineUnit(t *testing.T) {
	a := order.NewAddress(order.AddressParams{
		Unit:   "Apt 4",
		Street: "Jefferson St",
		City:   "California",
		Zip:    "94132",
	})
	assert.Equal(t, "Jefferson St, California, 94132", a.SingleLine())

	a.SetUnitInAddress(true)
	assert.Equal(t, "Jefferson St, Apt 4, California, 94132", a.SingleLine())
	assert.Equal(t, a.SingleLine(), a.String())
}

func TestAddress_Breakdown(t *testing.T) {
	a := order.NewAddress(order.AddressParams{Unit: "Apt 4", Street: "Jefferson St", City: "California"})
	assert.Equal(t, map[string]any{
		"unit":   "Apt 4",
		"street": "Jefferson St",
		"city":   "California",
	}, a.Breakdown())

	require.NoError(t, a.SetCoordinates(37.7, -122.4))
	b := a.Breakdown()
	assert.NotContains(t, b, "latitude")
	assert.NotContains(t, b, "longitude")
	assert.Len(t, b, 3)
}

func TestAddress_Verify(t *testing.T) {
	tests := []struct {
		name      string
		latitude  *float64
		longitude *float64
		kind      errs.Kind
	}{
		{name: "no coordinates"},
		{name: "both valid", latitude: ptr(23.5), longitude: ptr(90.4)},
		{name: "bounds", latitude: ptr(-90.0), longitude: ptr(180.0)},
		{name: "latitude only", latitude: ptr(23.5), kind: errs.KindCrossFieldViolation},
		{name: "longitude only", longitude: ptr(90.4), kind: errs.KindCrossFieldViolation},
		{name: "latitude out of range", latitude: ptr(300.0), longitude: ptr(90.4), kind: errs.KindRangeViolation},
		{name: "longitude out of range", latitude: ptr(23.5), longitude: ptr(300.0), kind: errs.KindRangeViolation},
		{name: "latitude NaN", latitude: ptr(math.NaN()), longitude: ptr(1.0), kind: errs.KindTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := order.NewAddress(order.AddressParams{Street: "Jefferson St", Latitude: tt.latitude, Longitude: tt.longitude})
			err := a.Verify()
			if tt.kind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValidation)
			assert.Equal(t, tt.kind, errs.KindOf(err))
		})
	}
}

func TestAddress_SetLatitudeRejectsOutOfRange(t *testing.T) {
	a := jefferson()
	require.NoError(t, a.SetLatitude(10))

	err := a.SetLatitude(300)
	require.Error(t, err)
	assert.Equal(t, errs.KindRangeViolation, errs.KindOf(err))
	assert.Equal(t, 10.0, *a.Latitude())
}

func TestAddress_SetCoordinatesAtomic(t *testing.T) {
	a := jefferson()
	err := a.SetCoordinates(10, 300)
	require.Error(t, err)
	assert.Nil(t, a.Latitude())
	assert.Nil(t, a.Longitude())

	require.NoError(t, a.SetCoordinates(10, 20))
	a.ClearCoordinates()
	assert.Nil(t, a.Latitude())
	assert.NoError(t, a.Verify())
}

func TestAddressFromFields(t *testing.T) {
	a, err := order.AddressFromFields(order.Fields{
		"street":  "Hacker way",
		"city":    "California",
		"country": "USA",
		"lat":     37.48,
		"lng":     -122.15,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hacker way", a.Street())
	assert.Equal(t, 37.48, *a.Latitude())
	assert.Equal(t, -122.15, *a.Longitude())
	assert.NoError(t, a.Verify())
}

func TestAddressFromFields_TypeMismatch(t *testing.T) {
	_, err := order.AddressFromFields(order.Fields{"street": 12})
	require.Error(t, err)
	assert.Equal(t, errs.KindTypeMismatch, errs.KindOf(err))
}

func TestAddressParams_CanonicalWins(t *testing.T) {
	p, err := order.AddressParams{City: "Toronto"}.Merge(order.Fields{"city": "Montreal", "state": "QC"})
	require.NoError(t, err)
	assert.Equal(t, "Toronto", p.City)
	assert.Equal(t, "QC", p.State)
}
