package order

import (
	"github.com/shopspring/decimal"
	"github.com/tournevent/shipday/pkg/shipday/verify"
)

// OrderCostParams holds the canonical OrderCost fields.
type OrderCostParams struct {
	Tips        float64
	Tax         float64
	Discount    float64
	DeliveryFee float64
	Total       float64
}

// Merge fills zero canonical fields from the tips, tax, discountAmount,
// deliveryFee and total keys. totalOrderCost and discount are accepted as
// aliases.
func (p OrderCostParams) Merge(f Fields) (OrderCostParams, error) {
	var err error
	if p.Tips, err = floatOr(p.Tips, f, "tips"); err != nil {
		return p, err
	}
	if p.Tax, err = floatOr(p.Tax, f, "tax"); err != nil {
		return p, err
	}
	if p.Discount, err = floatOr(p.Discount, f, "discountAmount", "discount"); err != nil {
		return p, err
	}
	if p.DeliveryFee, err = floatOr(p.DeliveryFee, f, "deliveryFee"); err != nil {
		return p, err
	}
	if p.Total, err = floatOr(p.Total, f, "total", "totalOrderCost"); err != nil {
		return p, err
	}
	return p, nil
}

// OrderCost holds the monetary adjustments of an order. All amounts are
// non-negative and default to zero.
type OrderCost struct {
	tips        float64
	tax         float64
	discount    float64
	deliveryFee float64
	total       float64
}

// NewOrderCost creates an OrderCost from canonical fields.
func NewOrderCost(p OrderCostParams) *OrderCost {
	return &OrderCost{
		tips:        p.Tips,
		tax:         p.Tax,
		discount:    p.Discount,
		deliveryFee: p.DeliveryFee,
		total:       p.Total,
	}
}

// OrderCostFromFields creates an OrderCost from a legacy bag.
func OrderCostFromFields(f Fields) (*OrderCost, error) {
	p, err := OrderCostParams{}.Merge(f)
	if err != nil {
		return nil, err
	}
	return NewOrderCost(p), nil
}

func (c *OrderCost) Tips() float64        { return c.tips }
func (c *OrderCost) Tax() float64         { return c.tax }
func (c *OrderCost) Discount() float64    { return c.discount }
func (c *OrderCost) DeliveryFee() float64 { return c.deliveryFee }
func (c *OrderCost) Total() float64       { return c.total }

// SetTips sets the tips amount.
func (c *OrderCost) SetTips(v float64) error {
	return setAmount(&c.tips, "tips", v, "tips must be a positive number")
}

// SetTax sets the tax amount.
func (c *OrderCost) SetTax(v float64) error {
	return setAmount(&c.tax, "tax", v, "tax must be a positive number")
}

// SetDiscount sets the discount amount.
func (c *OrderCost) SetDiscount(v float64) error {
	return setAmount(&c.discount, "discountAmount", v, "discount must be a positive number")
}

// SetDeliveryFee sets the delivery fee.
func (c *OrderCost) SetDeliveryFee(v float64) error {
	return setAmount(&c.deliveryFee, "deliveryFee", v, "delivery fee must be a positive number")
}

// SetTotal sets the order total.
func (c *OrderCost) SetTotal(v float64) error {
	return setAmount(&c.total, "total", v, "total must be a positive number")
}

func setAmount(dst *float64, field string, v float64, message string) error {
	if err := verify.NotNegative(field, v, message); err != nil {
		return err
	}
	*dst = v
	return nil
}

// Verify checks that every amount is non-negative.
func (c *OrderCost) Verify() error {
	return verify.First(
		verify.NotNegative("tips", c.tips, "tips must be a positive number"),
		verify.NotNegative("tax", c.tax, "tax must be a positive number"),
		verify.NotNegative("discountAmount", c.discount, "discount must be a positive number"),
		verify.NotNegative("deliveryFee", c.deliveryFee, "delivery fee must be a positive number"),
		verify.NotNegative("total", c.total, "total must be a positive number"),
	)
}

// adjustments returns tax + tips + deliveryFee - discount.
func (c *OrderCost) adjustments() decimal.Decimal {
	return decimal.NewFromFloat(c.tax).
		Add(decimal.NewFromFloat(c.tips)).
		Add(decimal.NewFromFloat(c.deliveryFee)).
		Sub(decimal.NewFromFloat(c.discount))
}

// Body renders the cost in wire format.
func (c *OrderCost) Body() map[string]any {
	return map[string]any{
		"tips":           c.tips,
		"tax":            c.tax,
		"discountAmount": c.discount,
		"deliveryFee":    c.deliveryFee,
		"total":          c.total,
	}
}
