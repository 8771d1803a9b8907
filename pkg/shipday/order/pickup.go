package order

import (
	"github.com/tournevent/shipday/pkg/shipday/errs"
	"github.com/tournevent/shipday/pkg/shipday/verify"
)

// PickupParams holds the canonical Pickup fields. AddressLine is the
// flattened single-line address; when set it is sent instead of the line
// computed from Address.
type PickupParams struct {
	Name        string
	Address     *Address
	PhoneNumber string
	AddressLine string
}

// Merge fills empty canonical fields from the restaurantName,
// restaurantAddress, restaurantPhoneNumber and pickup keys.
func (p PickupParams) Merge(f Fields) (PickupParams, error) {
	var err error
	if p.Name, err = stringOr(p.Name, f, "restaurantName"); err != nil {
		return p, err
	}
	if p.PhoneNumber, err = stringOr(p.PhoneNumber, f, "restaurantPhoneNumber"); err != nil {
		return p, err
	}
	if p.AddressLine, err = stringOr(p.AddressLine, f, "restaurantAddress"); err != nil {
		return p, err
	}
	if p.Address, err = addressOr(p.Address, f, "pickup"); err != nil {
		return p, err
	}
	return p, nil
}

// Pickup is the place an order is collected from.
type Pickup struct {
	name        string
	address     *Address
	phoneNumber string
	addressLine string
}

// NewPickup creates a Pickup from canonical fields.
func NewPickup(p PickupParams) *Pickup {
	return &Pickup{
		name:        p.Name,
		address:     p.Address,
		phoneNumber: p.PhoneNumber,
		addressLine: p.AddressLine,
	}
}

// PickupFromFields creates a Pickup from a legacy bag.
func PickupFromFields(f Fields) (*Pickup, error) {
	p, err := PickupParams{}.Merge(f)
	if err != nil {
		return nil, err
	}
	return NewPickup(p), nil
}

func (p *Pickup) Name() string            { return p.name }
func (p *Pickup) Address() *Address       { return p.address }
func (p *Pickup) PhoneNumber() string     { return p.phoneNumber }
func (p *Pickup) AddressLine() string     { return p.addressLine }
func (p *Pickup) SetAddressLine(v string) { p.addressLine = v }

// SetName sets the pickup name.
func (p *Pickup) SetName(v string) error {
	if err := verify.Required("name", v, "pickup name must be a non-empty string"); err != nil {
		return err
	}
	p.name = v
	return nil
}

// SetAddress sets the pickup address.
func (p *Pickup) SetAddress(v *Address) error {
	if v == nil {
		return errs.MissingRequiredField("address", "pickup address must be an Address")
	}
	p.address = v
	return nil
}

// SetPhoneNumber sets the pickup phone number. The empty string clears it.
func (p *Pickup) SetPhoneNumber(v string) { p.phoneNumber = v }

// Verify checks that name and address are present and the address is valid.
func (p *Pickup) Verify() error {
	return p.verify("pickup")
}

func (p *Pickup) verify(label string) error {
	if err := verify.Required("name", p.name, label+" must have a name"); err != nil {
		return err
	}
	if p.address == nil {
		return errs.MissingRequiredField("address", label+" must have an address")
	}
	return p.address.Verify()
}

// Body renders the pickup in wire format.
func (p *Pickup) Body() map[string]any {
	obj := make(map[string]any)
	if p.name != "" {
		obj["restaurantName"] = p.name
	}
	if line := addressLine(p.addressLine, p.address); line != "" {
		obj["restaurantAddress"] = line
	}
	if p.address != nil {
		obj["pickup"] = p.address.Breakdown()
	}
	if p.phoneNumber != "" {
		obj["restaurantPhoneNumber"] = p.phoneNumber
	}
	return obj
}
