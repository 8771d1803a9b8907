package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tournevent/shipday/pkg/shipday/errs"
	"github.com/tournevent/shipday/pkg/shipday/order"
	"github.com/tournevent/shipday/pkg/shipday/transport"
	"github.com/tournevent/shipday/pkg/shipday/verify"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const (
	ordersPath      = "/orders/"
	orderEditPath   = "/order/edit/%d"
	orderAssignPath = "/orders/assign/%d/%d"
	orderQueryPath  = "/orders/query/"
)

// OrderService manages orders.
type OrderService struct {
	base
}

// NewOrderService creates an OrderService over client.
func NewOrderService(client transport.HTTPClient, logger *otelzap.Logger) *OrderService {
	return &OrderService{base: newBase(client, logger)}
}

// GetOrders lists the active orders.
func (s *OrderService) GetOrders(ctx context.Context) (any, error) {
	return s.get(ctx, "get_orders", ordersPath)
}

// GetOrder fetches the orders with the given order number.
func (s *OrderService) GetOrder(ctx context.Context, orderNumber string) (any, error) {
	if err := verify.Required("orderNumber", orderNumber, "order number can not be empty"); err != nil {
		return nil, err
	}
	return s.get(ctx, "get_order", ordersPath+url.PathEscape(orderNumber))
}

// InsertOrder verifies and creates an order.
func (s *OrderService) InsertOrder(ctx context.Context, o *order.Order) (any, error) {
	if o == nil {
		return nil, errs.MissingRequiredField("order", "order can not be nil")
	}
	if err := o.Verify(); err != nil {
		return nil, err
	}

	s.logger.Ctx(ctx).Info("Inserting Shipday order",
		zap.String("order_number", o.OrderNumber()),
		zap.Int("item_count", len(o.Items())),
	)
	return s.post(ctx, "insert_order", ordersPath, o.Body())
}

// EditOrder verifies the order and replaces the order with id orderID.
func (s *OrderService) EditOrder(ctx context.Context, orderID int, o *order.Order) (any, error) {
	if err := checkID("orderId", orderID); err != nil {
		return nil, err
	}
	if o == nil {
		return nil, errs.MissingRequiredField("order", "order can not be nil")
	}
	if err := o.Verify(); err != nil {
		return nil, err
	}

	body := o.Body()
	body["orderId"] = orderID

	s.logger.Ctx(ctx).Info("Editing Shipday order",
		zap.Int("order_id", orderID),
		zap.String("order_number", o.OrderNumber()),
	)
	return s.put(ctx, "edit_order", fmt.Sprintf(orderEditPath, orderID), body)
}

// DeleteOrder deletes an order and returns the raw response.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID int) (*transport.RawResponse, error) {
	if err := checkID("orderId", orderID); err != nil {
		return nil, err
	}
	return s.delete(ctx, "delete_order", fmt.Sprintf("%s%d", ordersPath, orderID))
}

// AssignOrder assigns an order to one of the account's carriers.
func (s *OrderService) AssignOrder(ctx context.Context, orderID, carrierID int) (any, error) {
	if err := checkID("orderId", orderID); err != nil {
		return nil, err
	}
	if err := checkID("carrierId", carrierID); err != nil {
		return nil, err
	}
	return s.put(ctx, "assign_order", fmt.Sprintf(orderAssignPath, orderID, carrierID), map[string]any{})
}

// Query lists orders matching q.
func (s *OrderService) Query(ctx context.Context, q *order.OrderQuery) (any, error) {
	if q == nil {
		return nil, errs.MissingRequiredField("query", "query can not be nil")
	}
	if err := q.Verify(); err != nil {
		return nil, err
	}
	return s.post(ctx, "query_orders", orderQueryPath, q.Body())
}
