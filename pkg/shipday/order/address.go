package order

import (
	"strings"

	"github.com/tournevent/shipday/pkg/shipday/verify"
)

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// AddressParams holds the canonical Address fields.
type AddressParams struct {
	Unit          string
	Street        string
	City          string
	State         string
	Zip           string
	Country       string
	Latitude      *float64
	Longitude     *float64
	UnitInAddress bool
}

// Merge fills empty canonical fields from the legacy bag.
func (p AddressParams) Merge(f Fields) (AddressParams, error) {
	var err error
	if p.Unit, err = stringOr(p.Unit, f, "unit"); err != nil {
		return p, err
	}
	if p.Street, err = stringOr(p.Street, f, "street"); err != nil {
		return p, err
	}
	if p.City, err = stringOr(p.City, f, "city"); err != nil {
		return p, err
	}
	if p.State, err = stringOr(p.State, f, "state"); err != nil {
		return p, err
	}
	if p.Zip, err = stringOr(p.Zip, f, "zip"); err != nil {
		return p, err
	}
	if p.Country, err = stringOr(p.Country, f, "country"); err != nil {
		return p, err
	}
	if p.Latitude == nil {
		if p.Latitude, err = firstFloat(f, "latitude", "lat"); err != nil {
			return p, err
		}
	}
	if p.Longitude == nil {
		if p.Longitude, err = firstFloat(f, "longitude", "lng"); err != nil {
			return p, err
		}
	}
	return p, nil
}

func firstFloat(f Fields, keys ...string) (*float64, error) {
	for _, key := range keys {
		n, err := f.Float(key)
		if err != nil || n != nil {
			return n, err
		}
	}
	return nil, nil
}

// Address is a postal address with optional coordinates.
type Address struct {
	unit          string
	street        string
	city          string
	state         string
	zip           string
	country       string
	latitude      *float64
	longitude     *float64
	unitInAddress bool
}

// NewAddress creates an Address from canonical fields. Nothing is validated
// until Verify.
func NewAddress(p AddressParams) *Address {
	return &Address{
		unit:          p.Unit,
		street:        p.Street,
		city:          p.City,
		state:         p.State,
		zip:           p.Zip,
		country:       p.Country,
		latitude:      copyFloat(p.Latitude),
		longitude:     copyFloat(p.Longitude),
		unitInAddress: p.UnitInAddress,
	}
}

// AddressFromFields creates an Address from a legacy bag.
func AddressFromFields(f Fields) (*Address, error) {
	p, err := AddressParams{}.Merge(f)
	if err != nil {
		return nil, err
	}
	return NewAddress(p), nil
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func (a *Address) Unit() string        { return a.unit }
func (a *Address) Street() string      { return a.street }
func (a *Address) City() string        { return a.city }
func (a *Address) State() string       { return a.state }
func (a *Address) Zip() string         { return a.zip }
func (a *Address) Country() string     { return a.country }
func (a *Address) UnitInAddress() bool { return a.unitInAddress }

// Latitude returns the latitude, or nil when unset.
func (a *Address) Latitude() *float64 { return copyFloat(a.latitude) }

// Longitude returns the longitude, or nil when unset.
func (a *Address) Longitude() *float64 { return copyFloat(a.longitude) }

func (a *Address) SetUnit(v string)        { a.unit = v }
func (a *Address) SetStreet(v string)      { a.street = v }
func (a *Address) SetCity(v string)        { a.city = v }
func (a *Address) SetState(v string)       { a.state = v }
func (a *Address) SetZip(v string)         { a.zip = v }
func (a *Address) SetCountry(v string)     { a.country = v }
func (a *Address) SetUnitInAddress(v bool) { a.unitInAddress = v }

// SetLatitude sets the latitude after checking it lies in [-90, 90].
func (a *Address) SetLatitude(v float64) error {
	if err := checkLatitude(&v); err != nil {
		return err
	}
	a.latitude = &v
	return nil
}

// SetLongitude sets the longitude after checking it lies in [-180, 180].
func (a *Address) SetLongitude(v float64) error {
	if err := checkLongitude(&v); err != nil {
		return err
	}
	a.longitude = &v
	return nil
}

// SetCoordinates sets both coordinates, or neither when either is invalid.
func (a *Address) SetCoordinates(lat, lon float64) error {
	if err := verify.First(checkLatitude(&lat), checkLongitude(&lon)); err != nil {
		return err
	}
	a.latitude, a.longitude = &lat, &lon
	return nil
}

// ClearCoordinates removes both coordinates.
func (a *Address) ClearCoordinates() {
	a.latitude, a.longitude = nil, nil
}

func checkLatitude(v *float64) error {
	return verify.WithinRange("latitude", v, minLatitude, maxLatitude, "latitude must be between -90 and 90")
}

func checkLongitude(v *float64) error {
	return verify.WithinRange("longitude", v, minLongitude, maxLongitude, "longitude must be between -180 and 180")
}

// Verify checks coordinate ranges and that latitude and longitude are set together.
func (a *Address) Verify() error {
	return verify.First(
		checkLatitude(a.latitude),
		checkLongitude(a.longitude),
		verify.AllOrNone("coordinates", "latitude and longitude must be set together",
			a.latitude != nil, a.longitude != nil),
	)
}

// SingleLine renders the address as one comma separated line. The unit is
// included only when UnitInAddress is set.
func (a *Address) SingleLine() string {
	parts := make([]string, 0, 6)
	if a.street != "" {
		parts = append(parts, a.street)
	}
	if a.unitInAddress && a.unit != "" {
		parts = append(parts, a.unit)
	}
	for _, p := range []string{a.city, a.state, a.zip, a.country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Breakdown renders the present address components as a wire map.
// Coordinates are not part of it.
func (a *Address) Breakdown() map[string]any {
	obj := make(map[string]any)
	if a.unit != "" {
		obj["unit"] = a.unit
	}
	if a.street != "" {
		obj["street"] = a.street
	}
	if a.city != "" {
		obj["city"] = a.city
	}
	if a.state != "" {
		obj["state"] = a.state
	}
	if a.zip != "" {
		obj["zip"] = a.zip
	}
	if a.country != "" {
		obj["country"] = a.country
	}
	return obj
}

// String implements fmt.Stringer.
func (a *Address) String() string {
	return a.SingleLine()
}
