package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/shipday/pkg/shipday/errs"
	"github.com/tournevent/shipday/pkg/shipday/order"
)

func testCustomer() *order.Customer {
	return order.NewCustomer(order.CustomerParams{
		Name:        "customer",
		Address:     jefferson(),
		Email:       "customer@shipday.com",
		PhoneNumber: "+1343523423",
	})
}

func testPickup() *order.Pickup {
	return order.NewPickup(order.PickupParams{
		Name: "Popeyes",
		Address: order.NewAddress(order.AddressParams{
			Street:  "Hacker way",
			City:    "California",
			State:   "CA",
			Country: "USA",
		}),
		PhoneNumber: "+134343534",
	})
}

func TestCustomer_Verify(t *testing.T) {
	assert.NoError(t, testCustomer().Verify())

	tests := []struct {
		name    string
		params  order.CustomerParams
		message string
	}{
		{
			name:    "missing name",
			params:  order.CustomerParams{Address: jefferson(), PhoneNumber: "+1"},
			message: "customer must have a name",
		},
		{
			name:    "missing address",
			params:  order.CustomerParams{Name: "customer", PhoneNumber: "+1"},
			message: "customer must have an address",
		},
		{
			name:    "missing phone number",
			params:  order.CustomerParams{Name: "customer", Address: jefferson()},
			message: "customer must have a phone number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := order.NewCustomer(tt.params).Verify()
			require.Error(t, err)
			assert.Equal(t, errs.KindMissingRequiredField, errs.KindOf(err))
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestCustomer_VerifyChecksAddress(t *testing.T) {
	c := order.NewCustomer(order.CustomerParams{
		Name:        "customer",
		Address:     order.NewAddress(order.AddressParams{Street: "Jefferson St", Longitude: ptr(12.0)}),
		PhoneNumber: "+1",
	})
	err := c.Verify()
	require.Error(t, err)
	assert.Equal(t, errs.KindCrossFieldViolation, errs.KindOf(err))
}

func TestCustomer_Setters(t *testing.T) {
	c := testCustomer()

	assert.Error(t, c.SetName(""))
	assert.Equal(t, "customer", c.Name())
	assert.Error(t, c.SetPhoneNumber(""))
	assert.Equal(t, "+1343523423", c.PhoneNumber())
	assert.Error(t, c.SetAddress(nil))
	assert.NotNil(t, c.Address())

	require.NoError(t, c.SetName("Jane"))
	assert.Equal(t, "Jane", c.Name())
}

func TestCustomer_Body(t *testing.T) {
	body := testCustomer().Body()
	assert.Equal(t, map[string]any{
		"customerName":        "customer",
		"customerAddress":     "Jefferson St, California, CA, USA",
		"customerEmail":       "customer@shipday.com",
		"customerPhoneNumber": "+1343523423",
		"dropoff": map[string]any{
			"street":  "Jefferson St",
			"city":    "California",
			"state":   "CA",
			"country": "USA",
		},
	}, body)
}

func TestCustomer_BodyPrefersAddressLine(t *testing.T) {
	c := testCustomer()
	c.SetAddressLine("556 Crestlake Dr, San Francisco")
	assert.Equal(t, "556 Crestlake Dr, San Francisco", c.Body()["customerAddress"])
}

func TestCustomerFromFields(t *testing.T) {
	c, err := order.CustomerFromFields(order.Fields{
		"customerName":        "John",
		"customerAddress":     "556 Crestlake Dr, San Francisco",
		"customerEmail":       "john@example.com",
		"customerPhoneNumber": "+14152392212",
	})
	require.NoError(t, err)
	assert.Equal(t, "John", c.Name())
	assert.Nil(t, c.Address())

	body := c.Body()
	assert.Equal(t, "556 Crestlake Dr, San Francisco", body["customerAddress"])
	assert.NotContains(t, body, "dropoff")
}

func TestPickup_Verify(t *testing.T) {
	assert.NoError(t, testPickup().Verify())

	err := order.NewPickup(order.PickupParams{Address: jefferson()}).Verify()
	assert.EqualError(t, err, "pickup must have a name")

	err = order.NewPickup(order.PickupParams{Name: "Popeyes"}).Verify()
	assert.EqualError(t, err, "pickup must have an address")

	// phone number is optional
	assert.NoError(t, order.NewPickup(order.PickupParams{Name: "Popeyes", Address: jefferson()}).Verify())
}

func TestPickup_ClearPhoneNumber(t *testing.T) {
	p := testPickup()
	p.SetPhoneNumber("")
	assert.Empty(t, p.PhoneNumber())
	assert.NotContains(t, p.Body(), "restaurantPhoneNumber")
	assert.NoError(t, p.Verify())

	r := order.NewRestaurant(order.PickupParams{Name: "Popeyes", Address: jefferson(), PhoneNumber: "+1"})
	r.SetPhoneNumber("")
	assert.NotContains(t, r.Body(), "restaurantPhoneNumber")
}

func TestPickup_Body(t *testing.T) {
	body := testPickup().Body()
	assert.Equal(t, "Popeyes", body["restaurantName"])
	assert.Equal(t, "Hacker way, California, CA, USA", body["restaurantAddress"])
	assert.Equal(t, "+134343534", body["restaurantPhoneNumber"])
	assert.Equal(t, map[string]any{
		"street":  "Hacker way",
		"city":    "California",
		"state":   "CA",
		"country": "USA",
	}, body["pickup"])

	p := order.NewPickup(order.PickupParams{Name: "Popeyes", AddressLine: "890 Geneva Ave"})
	assert.Equal(t, map[string]any{
		"restaurantName":    "Popeyes",
		"restaurantAddress": "890 Geneva Ave",
	}, p.Body())
}

func TestRestaurant(t *testing.T) {
	r, err := order.RestaurantFromFields(order.Fields{
		"restaurantName":    "Popeyes",
		"restaurantAddress": "890 Geneva Ave",
	})
	require.NoError(t, err)

	err = r.Verify()
	assert.EqualError(t, err, "restaurant must have an address")

	require.NoError(t, r.SetAddress(jefferson()))
	assert.NoError(t, r.Verify())

	p := r.AsPickup()
	assert.Equal(t, r.Body(), p.Body())
	assert.NoError(t, p.Verify())
}
