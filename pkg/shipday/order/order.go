package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/tournevent/shipday/pkg/shipday/errs"
	"github.com/tournevent/shipday/pkg/shipday/verify"
)

// Wire layouts for the split delivery date/time fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// OrderParams holds the canonical Order fields. Nil sub-objects are built
// from the legacy bag by Merge, or left empty by NewOrder.
type OrderParams struct {
	OrderNumber          string
	Customer             *Customer
	Pickup               *Pickup
	Items                []*OrderItem
	Cost                 *OrderCost
	ExpectedDeliveryTime *time.Time
	ExpectedPickupTime   *time.Time
	DeliveryInstruction  string
}

// Merge fills every empty canonical field from the legacy bag. Items come
// from the orderItems (or orderItem) list of item-shaped maps.
func (p OrderParams) Merge(f Fields) (OrderParams, error) {
	var err error
	if p.OrderNumber, err = stringOr(p.OrderNumber, f, "orderNumber"); err != nil {
		return p, err
	}
	if p.DeliveryInstruction, err = stringOr(p.DeliveryInstruction, f, "deliveryInstruction"); err != nil {
		return p, err
	}
	if p.Customer == nil {
		if p.Customer, err = CustomerFromFields(f); err != nil {
			return p, err
		}
	}
	if p.Pickup == nil {
		if p.Pickup, err = PickupFromFields(f); err != nil {
			return p, err
		}
	}
	if p.Cost == nil {
		if p.Cost, err = OrderCostFromFields(f); err != nil {
			return p, err
		}
	}
	if p.Items == nil {
		if p.Items, err = itemsFromFields(f); err != nil {
			return p, err
		}
	}
	if p.ExpectedDeliveryTime == nil {
		if p.ExpectedDeliveryTime, err = timeFromFields(f, "expectedDeliveryTime"); err != nil {
			return p, err
		}
	}
	if p.ExpectedPickupTime == nil {
		if p.ExpectedPickupTime, err = timeFromFields(f, "expectedPickupTime"); err != nil {
			return p, err
		}
	}
	return p, nil
}

func itemsFromFields(f Fields) ([]*OrderItem, error) {
	key := "orderItems"
	if _, ok := f[key]; !ok {
		key = "orderItem"
	}
	list, err := f.List(key)
	if err != nil {
		return nil, err
	}
	items := make([]*OrderItem, 0, len(list))
	for _, raw := range list {
		item, err := OrderItemFromFields(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// timeFromFields joins expectedDeliveryDate and the clock under clockKey
// back into a UTC timestamp. The wire format carries a single date, so a
// clock without expectedDeliveryDate is ignored.
func timeFromFields(f Fields, clockKey string) (*time.Time, error) {
	date, err := f.String("expectedDeliveryDate")
	if err != nil || date == "" {
		return nil, err
	}
	clock, err := f.String(clockKey)
	if err != nil {
		return nil, err
	}
	if clock == "" {
		if clockKey != "expectedDeliveryTime" {
			return nil, nil
		}
		clock = "00:00:00"
	}
	t, err := time.Parse(DateLayout+"T"+TimeLayout, date+"T"+clock)
	if err != nil {
		return nil, errs.TypeMismatch(clockKey, "expected date and time must be YYYY-MM-DD and HH:MM:SS").WithCause(err)
	}
	return &t, nil
}

// Order is a delivery order together with its customer, pickup, items and cost.
type Order struct {
	orderNumber         string
	customer            *Customer
	pickup              *Pickup
	items               []*OrderItem
	cost                *OrderCost
	deliveryTime        *time.Time
	pickupTime          *time.Time
	deliveryInstruction string
}

// NewOrder creates an Order from canonical fields. Missing sub-objects are
// replaced with empty ones so that Verify reports them.
func NewOrder(p OrderParams) *Order {
	o := &Order{
		orderNumber:         p.OrderNumber,
		customer:            p.Customer,
		pickup:              p.Pickup,
		items:               p.Items,
		cost:                p.Cost,
		deliveryTime:        copyTime(p.ExpectedDeliveryTime),
		pickupTime:          copyTime(p.ExpectedPickupTime),
		deliveryInstruction: p.DeliveryInstruction,
	}
	if o.customer == nil {
		o.customer = NewCustomer(CustomerParams{})
	}
	if o.pickup == nil {
		o.pickup = NewPickup(PickupParams{})
	}
	if o.cost == nil {
		o.cost = NewOrderCost(OrderCostParams{})
	}
	return o
}

// OrderFromFields creates an Order entirely from a legacy bag.
func OrderFromFields(f Fields) (*Order, error) {
	p, err := OrderParams{}.Merge(f)
	if err != nil {
		return nil, err
	}
	return NewOrder(p), nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func (o *Order) OrderNumber() string              { return o.orderNumber }
func (o *Order) Customer() *Customer              { return o.customer }
func (o *Order) Pickup() *Pickup                  { return o.pickup }
func (o *Order) Items() []*OrderItem              { return o.items }
func (o *Order) Cost() *OrderCost                 { return o.cost }
func (o *Order) ExpectedDeliveryTime() *time.Time { return copyTime(o.deliveryTime) }
func (o *Order) ExpectedPickupTime() *time.Time   { return copyTime(o.pickupTime) }
func (o *Order) DeliveryInstruction() string      { return o.deliveryInstruction }

func (o *Order) SetExpectedDeliveryTime(t *time.Time) { o.deliveryTime = copyTime(t) }
func (o *Order) SetExpectedPickupTime(t *time.Time)   { o.pickupTime = copyTime(t) }
func (o *Order) SetDeliveryInstruction(v string)      { o.deliveryInstruction = v }

// SetOrderNumber sets the order number.
func (o *Order) SetOrderNumber(v string) error {
	if err := verify.Required("orderNumber", v, "order number must be a non-empty string"); err != nil {
		return err
	}
	o.orderNumber = v
	return nil
}

// SetCustomer replaces the customer.
func (o *Order) SetCustomer(c *Customer) error {
	if c == nil {
		return errs.MissingRequiredField("customer", "order must have a customer")
	}
	o.customer = c
	return nil
}

// SetPickup replaces the pickup.
func (o *Order) SetPickup(p *Pickup) error {
	if p == nil {
		return errs.MissingRequiredField("pickup", "order must have a pickup")
	}
	o.pickup = p
	return nil
}

// SetCost replaces the cost.
func (o *Order) SetCost(c *OrderCost) error {
	if c == nil {
		return errs.MissingRequiredField("cost", "order must have an order cost")
	}
	o.cost = c
	return nil
}

// SetItems replaces the item list. Nil entries are rejected.
func (o *Order) SetItems(items []*OrderItem) error {
	for i, item := range items {
		if item == nil {
			return errs.TypeMismatch(fmt.Sprintf("orderItem[%d]", i), "order items must be a list of order items")
		}
	}
	o.items = items
	return nil
}

// AddItem appends an item.
func (o *Order) AddItem(item *OrderItem) error {
	if item == nil {
		return errs.TypeMismatch("orderItem", "order items must be a list of order items")
	}
	o.items = append(o.items, item)
	return nil
}

// UpdateTotalCost recomputes the cost total as tax + tips + deliveryFee -
// discount plus the subtotal of every item. Items whose price or quantity
// is invalid contribute nothing.
func (o *Order) UpdateTotalCost() error {
	total := o.cost.adjustments()
	for _, item := range o.items {
		if item == nil {
			continue
		}
		sub, err := item.Subtotal()
		if err != nil {
			continue
		}
		total = total.Add(sub)
	}
	f, _ := total.Float64()
	return o.cost.SetTotal(f)
}

// Verify checks the order number, the customer, the pickup, every item and
// the cost. An item failure keeps its kind and reports the item index.
func (o *Order) Verify() error {
	if err := verify.Required("orderNumber", o.orderNumber, "order must have an order number"); err != nil {
		return err
	}
	if err := o.customer.Verify(); err != nil {
		return err
	}
	if err := o.pickup.Verify(); err != nil {
		return err
	}
	for i, item := range o.items {
		if item == nil {
			return errs.TypeMismatch(fmt.Sprintf("orderItem[%d]", i), fmt.Sprintf("item %d is not an order item", i))
		}
		if err := item.Verify(); err != nil {
			return wrapItemError(i, err)
		}
	}
	return o.cost.Verify()
}

func wrapItemError(i int, err error) error {
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("item %d: %w", i, err)
	}
	field := fmt.Sprintf("orderItem[%d].%s", i, ve.Field)
	return errs.NewValidationError(ve.Kind, field, fmt.Sprintf("item %d", i)).WithCause(err)
}

// Body renders the order in wire format. Customer, pickup and cost fields
// are flattened into the top-level object.
func (o *Order) Body() map[string]any {
	items := make([]map[string]any, 0, len(o.items))
	for _, item := range o.items {
		if item != nil {
			items = append(items, item.Body())
		}
	}

	obj := map[string]any{
		"orderNumber": o.orderNumber,
		"orderItem":   items,
	}
	overlay(obj, o.cost.Body())
	overlay(obj, o.customer.Body())
	overlay(obj, o.pickup.Body())
	overlay(obj, o.cost.Body())

	if o.deliveryTime != nil {
		obj["expectedDeliveryDate"] = o.deliveryTime.Format(DateLayout)
		obj["expectedDeliveryTime"] = o.deliveryTime.Format(TimeLayout)
	}
	if o.pickupTime != nil {
		obj["expectedPickupTime"] = o.pickupTime.Format(TimeLayout)
	}
	if o.deliveryInstruction != "" {
		obj["deliveryInstruction"] = o.deliveryInstruction
	}
	return obj
}

func overlay(dst, src map[string]any) {
	for k, v := range src {
		dst[k] = v
	}
}
