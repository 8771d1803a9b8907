package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/tournevent/shipday/pkg/shipday/errs"
	"github.com/tournevent/shipday/pkg/shipday/order"
	"github.com/tournevent/shipday/pkg/shipday/transport"
	"github.com/tournevent/shipday/pkg/shipday/verify"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const (
	onDemandServicesPath = "/on-demand/services"
	onDemandEstimatePath = "/on-demand/estimate/%d"
	onDemandAssignPath   = "/on-demand/assign"
	onDemandCancelPath   = "/on-demand/cancel/%d"
	onDemandDetailsPath  = "/on-demand/details/%d"
	availabilityPath     = "/third-party/availability"
)

// AvailabilityRequest asks which third-party providers can deliver between
// two addresses.
type AvailabilityRequest struct {
	Pickup       *order.Address
	Delivery     *order.Address
	DeliveryTime *time.Time
}

func (r AvailabilityRequest) body() (map[string]any, error) {
	if r.Pickup == nil {
		return nil, errs.MissingRequiredField("pickupAddress", "pickup address is required")
	}
	if r.Delivery == nil {
		return nil, errs.MissingRequiredField("deliveryAddress", "delivery address is required")
	}
	if err := verify.First(r.Pickup.Verify(), r.Delivery.Verify()); err != nil {
		return nil, err
	}

	body := map[string]any{
		"pickupAddress":   r.Pickup.SingleLine(),
		"deliveryAddress": r.Delivery.SingleLine(),
	}
	if r.DeliveryTime != nil {
		body["deliveryTime"] = r.DeliveryTime.Format(time.RFC3339)
	}
	return body, nil
}

// AssignRequest hands an order to an on-demand provider.
type AssignRequest struct {
	OrderID           int
	ServiceName       string
	Tip               float64
	EstimateReference string
}

func (r AssignRequest) validate() error {
	return verify.First(
		checkID("orderId", r.OrderID),
		verify.Required("name", r.ServiceName, "service name can not be empty"),
		verify.NotNegative("tip", r.Tip, "tip must be a non-negative number"),
	)
}

// OnDemandDeliveryService drives third-party delivery providers such as
// DoorDash or Uber.
type OnDemandDeliveryService struct {
	base
}

// NewOnDemandDeliveryService creates an OnDemandDeliveryService over client.
func NewOnDemandDeliveryService(client transport.HTTPClient, logger *otelzap.Logger) *OnDemandDeliveryService {
	return &OnDemandDeliveryService{base: newBase(client, logger)}
}

// GetServices lists every provider known to the account.
func (s *OnDemandDeliveryService) GetServices(ctx context.Context) (any, error) {
	return s.get(ctx, "get_services", onDemandServicesPath)
}

// GetActiveServices returns the names of the enabled providers. A provider
// entry is enabled when the field named after it is true, e.g.
// {"name": "DoorDash", "DoorDash": true}.
func (s *OnDemandDeliveryService) GetActiveServices(ctx context.Context) ([]string, error) {
	resp, err := s.GetServices(ctx)
	if err != nil {
		return nil, err
	}
	return ActiveServices(resp)
}

// ActiveServices extracts the enabled provider names from a services
// response.
func ActiveServices(resp any) ([]string, error) {
	list, ok := resp.([]any)
	if !ok {
		if resp == nil {
			return []string{}, nil
		}
		return nil, errs.NewAPIError("INVALID_RESPONSE", fmt.Sprintf("unexpected services response of type %T", resp))
	}

	active := make([]string, 0, len(list))
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name, _ := m["name"].(string)
		if name == "" {
			continue
		}
		if enabled, _ := m[name].(bool); enabled {
			active = append(active, name)
		}
	}
	return active, nil
}

// Estimate returns fee and time estimates per provider for an order.
func (s *OnDemandDeliveryService) Estimate(ctx context.Context, orderID int) (any, error) {
	if err := checkID("orderId", orderID); err != nil {
		return nil, err
	}
	return s.get(ctx, "estimate", fmt.Sprintf(onDemandEstimatePath, orderID))
}

// CheckAvailability asks which providers can serve the given addresses.
func (s *OnDemandDeliveryService) CheckAvailability(ctx context.Context, req AvailabilityRequest) (any, error) {
	body, err := req.body()
	if err != nil {
		return nil, err
	}
	return s.post(ctx, "check_availability", availabilityPath, body)
}

// Assign hands an order to an active provider. It fails with an
// *errs.APIError matching errs.ErrServiceNotAvailable, without issuing the
// assignment, when the provider is not active.
func (s *OnDemandDeliveryService) Assign(ctx context.Context, req AssignRequest) (any, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	active, err := s.GetActiveServices(ctx)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(active, req.ServiceName) {
		err := errs.NewAPIError("SERVICE_NOT_AVAILABLE", "Service not available").
			WithCause(errs.ErrServiceNotAvailable)
		s.logger.Ctx(ctx).Warn("On-demand service not active",
			zap.String("service", req.ServiceName),
			zap.Strings("active", active),
		)
		return nil, err
	}

	body := map[string]any{
		"name":    req.ServiceName,
		"orderId": req.OrderID,
		"tip":     req.Tip,
	}
	if req.EstimateReference != "" {
		body["estimateReference"] = req.EstimateReference
	}

	s.logger.Ctx(ctx).Info("Assigning order to on-demand service",
		zap.Int("order_id", req.OrderID),
		zap.String("service", req.ServiceName),
		zap.Float64("tip", req.Tip),
	)
	return s.post(ctx, "assign", onDemandAssignPath, body)
}

// Cancel cancels the on-demand assignment of an order.
func (s *OnDemandDeliveryService) Cancel(ctx context.Context, orderID int) (any, error) {
	if err := checkID("orderId", orderID); err != nil {
		return nil, err
	}
	return s.post(ctx, "cancel", fmt.Sprintf(onDemandCancelPath, orderID), map[string]any{})
}

// GetDetails fetches the on-demand assignment of an order.
func (s *OnDemandDeliveryService) GetDetails(ctx context.Context, orderID int) (any, error) {
	if err := checkID("orderId", orderID); err != nil {
		return nil, err
	}
	return s.get(ctx, "get_details", fmt.Sprintf(onDemandDetailsPath, orderID))
}
