package services

import (
	"context"
	"fmt"

	"github.com/tournevent/shipday/pkg/shipday/carrier"
	"github.com/tournevent/shipday/pkg/shipday/errs"
	"github.com/tournevent/shipday/pkg/shipday/transport"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const carriersPath = "/carriers/"

// CarrierService manages the account's carriers.
type CarrierService struct {
	base
}

// NewCarrierService creates a CarrierService over client.
func NewCarrierService(client transport.HTTPClient, logger *otelzap.Logger) *CarrierService {
	return &CarrierService{base: newBase(client, logger)}
}

// GetCarriers lists the carriers.
func (s *CarrierService) GetCarriers(ctx context.Context) (any, error) {
	return s.get(ctx, "get_carriers", carriersPath)
}

// AddCarrier registers a carrier.
func (s *CarrierService) AddCarrier(ctx context.Context, req *carrier.Request) (any, error) {
	if req == nil {
		return nil, errs.MissingRequiredField("carrier", "carrier request can not be nil")
	}
	body, err := req.Body()
	if err != nil {
		return nil, err
	}

	s.logger.Ctx(ctx).Info("Adding Shipday carrier", zap.String("name", req.Name()))
	return s.post(ctx, "add_carrier", carriersPath, body)
}

// DeleteCarrier removes a carrier and returns the raw response.
func (s *CarrierService) DeleteCarrier(ctx context.Context, carrierID int) (*transport.RawResponse, error) {
	if err := checkID("carrierId", carrierID); err != nil {
		return nil, err
	}
	return s.delete(ctx, "delete_carrier", fmt.Sprintf("%s%d", carriersPath, carrierID))
}
