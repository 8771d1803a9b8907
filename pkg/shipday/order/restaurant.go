package order

// Restaurant is the older name for a pickup location. It renders exactly
// like Pickup.
type Restaurant struct {
	Pickup
}

// NewRestaurant creates a Restaurant from canonical fields.
func NewRestaurant(p PickupParams) *Restaurant {
	return &Restaurant{Pickup: *NewPickup(p)}
}

// RestaurantFromFields creates a Restaurant from a legacy bag.
func RestaurantFromFields(f Fields) (*Restaurant, error) {
	p, err := PickupParams{}.Merge(f)
	if err != nil {
		return nil, err
	}
	return NewRestaurant(p), nil
}

// Verify checks that name and address are present and the address is valid.
func (r *Restaurant) Verify() error {
	return r.verify("restaurant")
}

// AsPickup returns a Pickup with the same fields.
func (r *Restaurant) AsPickup() *Pickup {
	p := r.Pickup
	return &p
}
