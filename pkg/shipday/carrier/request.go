// Package carrier holds the request used to register a delivery driver.
package carrier

import "github.com/tournevent/shipday/pkg/shipday/verify"

// Params holds the Request fields.
type Params struct {
	Name        string
	Email       string
	PhoneNumber string
}

// Request registers a carrier. Every field is required.
type Request struct {
	name        string
	email       string
	phoneNumber string
}

// NewRequest creates a Request. Nothing is validated until Verify or Body.
func NewRequest(p Params) *Request {
	return &Request{name: p.Name, email: p.Email, phoneNumber: p.PhoneNumber}
}

func (r *Request) Name() string        { return r.name }
func (r *Request) Email() string       { return r.email }
func (r *Request) PhoneNumber() string { return r.phoneNumber }

// SetName sets the carrier name.
func (r *Request) SetName(v string) error {
	if err := verify.Required("name", v, "carrier name must be a non-empty string"); err != nil {
		return err
	}
	r.name = v
	return nil
}

// SetEmail sets the carrier email.
func (r *Request) SetEmail(v string) error {
	if err := verify.Required("email", v, "carrier email must be a non-empty string"); err != nil {
		return err
	}
	r.email = v
	return nil
}

// SetPhoneNumber sets the carrier phone number.
func (r *Request) SetPhoneNumber(v string) error {
	if err := verify.Required("phoneNumber", v, "carrier phone number must be a non-empty string"); err != nil {
		return err
	}
	r.phoneNumber = v
	return nil
}

// Verify checks that name, email and phone number are present.
func (r *Request) Verify() error {
	return verify.First(
		verify.Required("name", r.name, "carrier must have a name"),
		verify.Required("email", r.email, "carrier must have an email"),
		verify.Required("phoneNumber", r.phoneNumber, "carrier must have a phone number"),
	)
}

// Body verifies the request and renders it in wire format.
func (r *Request) Body() (map[string]any, error) {
	if err := r.Verify(); err != nil {
		return nil, err
	}
	return map[string]any{
		"name":        r.name,
		"phoneNumber": r.phoneNumber,
		"email":       r.email,
	}, nil
}
