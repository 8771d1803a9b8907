package order

import (
	"github.com/shopspring/decimal"
	"github.com/tournevent/shipday/pkg/shipday/verify"
)

const (
	msgItemPrice    = "order item must have a valid non-negative price"
	msgItemQuantity = "order quantity must be a positive integer"
)

// OrderItemParams holds the canonical OrderItem fields.
type OrderItemParams struct {
	Name      string
	UnitPrice float64
	Quantity  int
	AddOns    string
	Detail    string
}

// Merge fills empty canonical fields from the name, unitPrice, quantity,
// addOns and detail keys.
func (p OrderItemParams) Merge(f Fields) (OrderItemParams, error) {
	var err error
	if p.Name, err = stringOr(p.Name, f, "name"); err != nil {
		return p, err
	}
	if p.UnitPrice, err = floatOr(p.UnitPrice, f, "unitPrice", "unit_price"); err != nil {
		return p, err
	}
	if p.Quantity == 0 {
		q, err := f.Int("quantity")
		if err != nil {
			return p, err
		}
		if q != nil {
			p.Quantity = *q
		}
	}
	if p.AddOns, err = stringOr(p.AddOns, f, "addOns"); err != nil {
		return p, err
	}
	if p.Detail, err = stringOr(p.Detail, f, "detail"); err != nil {
		return p, err
	}
	return p, nil
}

// OrderItem is a single line of an order.
type OrderItem struct {
	name      string
	unitPrice float64
	quantity  int
	addOns    string
	detail    string
}

// NewOrderItem creates an OrderItem from canonical fields.
func NewOrderItem(p OrderItemParams) *OrderItem {
	return &OrderItem{
		name:      p.Name,
		unitPrice: p.UnitPrice,
		quantity:  p.Quantity,
		addOns:    p.AddOns,
		detail:    p.Detail,
	}
}

// OrderItemFromFields creates an OrderItem from a legacy bag.
func OrderItemFromFields(f Fields) (*OrderItem, error) {
	p, err := OrderItemParams{}.Merge(f)
	if err != nil {
		return nil, err
	}
	return NewOrderItem(p), nil
}

func (i *OrderItem) Name() string       { return i.name }
func (i *OrderItem) UnitPrice() float64 { return i.unitPrice }
func (i *OrderItem) Quantity() int      { return i.quantity }
func (i *OrderItem) AddOns() string     { return i.addOns }
func (i *OrderItem) Detail() string     { return i.detail }
func (i *OrderItem) SetAddOns(v string) { i.addOns = v }
func (i *OrderItem) SetDetail(v string) { i.detail = v }

// SetName sets the item name.
func (i *OrderItem) SetName(v string) error {
	if err := verify.Required("name", v, "order item name must be a non-empty string"); err != nil {
		return err
	}
	i.name = v
	return nil
}

// SetUnitPrice sets the unit price. Negative or non-finite prices are rejected.
func (i *OrderItem) SetUnitPrice(v float64) error {
	if err := verify.NotNegative("unitPrice", v, msgItemPrice); err != nil {
		return err
	}
	i.unitPrice = v
	return nil
}

// SetQuantity sets the quantity. Values below one are rejected.
func (i *OrderItem) SetQuantity(v int) error {
	if err := verify.PositiveInt("quantity", v, msgItemQuantity); err != nil {
		return err
	}
	i.quantity = v
	return nil
}

// Verify checks name, price and quantity.
func (i *OrderItem) Verify() error {
	return verify.First(
		verify.Required("name", i.name, "order item must have a name"),
		verify.NotNegative("unitPrice", i.unitPrice, msgItemPrice),
		verify.PositiveInt("quantity", i.quantity, msgItemQuantity),
	)
}

// Subtotal returns unitPrice × quantity.
func (i *OrderItem) Subtotal() (decimal.Decimal, error) {
	if err := verify.First(
		verify.NotNegative("unitPrice", i.unitPrice, msgItemPrice),
		verify.PositiveInt("quantity", i.quantity, msgItemQuantity),
	); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat(i.unitPrice).Mul(decimal.NewFromInt(int64(i.quantity))), nil
}

// Body renders the item in wire format.
func (i *OrderItem) Body() map[string]any {
	obj := map[string]any{
		"name":      i.name,
		"unitPrice": i.unitPrice,
		"quantity":  i.quantity,
	}
	if i.addOns != "" {
		obj["addOns"] = i.addOns
	}
	if i.detail != "" {
		obj["detail"] = i.detail
	}
	return obj
}
