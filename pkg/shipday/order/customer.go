package order

import (
	"github.com/tournevent/shipday/pkg/shipday/errs"
	"github.com/tournevent/shipday/pkg/shipday/verify"
)

// CustomerParams holds the canonical Customer fields. AddressLine is the
// flattened single-line address; when set it is sent instead of the line
// computed from Address.
type CustomerParams struct {
	Name        string
	Address     *Address
	Email       string
	PhoneNumber string
	AddressLine string
}

// Merge fills empty canonical fields from the customerName, customerEmail,
// customerPhoneNumber, customerAddress and dropoff keys.
func (p CustomerParams) Merge(f Fields) (CustomerParams, error) {
	var err error
	if p.Name, err = stringOr(p.Name, f, "customerName"); err != nil {
		return p, err
	}
	if p.Email, err = stringOr(p.Email, f, "customerEmail"); err != nil {
		return p, err
	}
	if p.PhoneNumber, err = stringOr(p.PhoneNumber, f, "customerPhoneNumber"); err != nil {
		return p, err
	}
	if p.AddressLine, err = stringOr(p.AddressLine, f, "customerAddress"); err != nil {
		return p, err
	}
	if p.Address, err = addressOr(p.Address, f, "dropoff"); err != nil {
		return p, err
	}
	return p, nil
}

// Customer is the recipient of an order.
type Customer struct {
	name        string
	address     *Address
	email       string
	phoneNumber string
	addressLine string
}

// NewCustomer creates a Customer from canonical fields.
func NewCustomer(p CustomerParams) *Customer {
	return &Customer{
		name:        p.Name,
		address:     p.Address,
		email:       p.Email,
		phoneNumber: p.PhoneNumber,
		addressLine: p.AddressLine,
	}
}

// CustomerFromFields creates a Customer from a legacy bag.
func CustomerFromFields(f Fields) (*Customer, error) {
	p, err := CustomerParams{}.Merge(f)
	if err != nil {
		return nil, err
	}
	return NewCustomer(p), nil
}

func (c *Customer) Name() string            { return c.name }
func (c *Customer) Address() *Address       { return c.address }
func (c *Customer) Email() string           { return c.email }
func (c *Customer) PhoneNumber() string     { return c.phoneNumber }
func (c *Customer) AddressLine() string     { return c.addressLine }
func (c *Customer) SetEmail(v string)       { c.email = v }
func (c *Customer) SetAddressLine(v string) { c.addressLine = v }

// SetName sets the customer name.
func (c *Customer) SetName(v string) error {
	if err := verify.Required("name", v, "customer name must be a non-empty string"); err != nil {
		return err
	}
	c.name = v
	return nil
}

// SetAddress sets the customer address.
func (c *Customer) SetAddress(v *Address) error {
	if v == nil {
		return errs.MissingRequiredField("address", "customer address must be an Address")
	}
	c.address = v
	return nil
}

// SetPhoneNumber sets the customer phone number.
func (c *Customer) SetPhoneNumber(v string) error {
	if err := verify.Required("phoneNumber", v, "customer phone number must be a non-empty string"); err != nil {
		return err
	}
	c.phoneNumber = v
	return nil
}

// Verify checks that name, address and phone number are present and the
// address itself is valid.
func (c *Customer) Verify() error {
	if err := verify.Required("name", c.name, "customer must have a name"); err != nil {
		return err
	}
	if c.address == nil {
		return errs.MissingRequiredField("address", "customer must have an address")
	}
	if err := verify.Required("phoneNumber", c.phoneNumber, "customer must have a phone number"); err != nil {
		return err
	}
	return c.address.Verify()
}

// Body renders the customer in wire format.
func (c *Customer) Body() map[string]any {
	obj := make(map[string]any)
	if c.name != "" {
		obj["customerName"] = c.name
	}
	if line := addressLine(c.addressLine, c.address); line != "" {
		obj["customerAddress"] = line
	}
	if c.address != nil {
		obj["dropoff"] = c.address.Breakdown()
	}
	if c.email != "" {
		obj["customerEmail"] = c.email
	}
	if c.phoneNumber != "" {
		obj["customerPhoneNumber"] = c.phoneNumber
	}
	return obj
}

// addressLine prefers an explicit flattened line over the computed one.
func addressLine(explicit string, a *Address) string {
	if explicit != "" {
		return explicit
	}
	if a != nil {
		return a.SingleLine()
	}
	return ""
}
