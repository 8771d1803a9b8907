// Package services maps Shipday operations onto HTTP calls.
package services

import (
	"context"
	"fmt"

	"github.com/tournevent/shipday/pkg/shipday/errs"
	"github.com/tournevent/shipday/pkg/shipday/transport"
	"github.com/tournevent/shipday/pkg/shipday/verify"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// base holds what every service shares: the transport and the logger.
type base struct {
	client transport.HTTPClient
	logger *otelzap.Logger
}

func newBase(client transport.HTTPClient, logger *otelzap.Logger) base {
	if logger == nil {
		logger = otelzap.New(zap.NewNop())
	}
	return base{client: client, logger: logger}
}

func (b base) get(ctx context.Context, op, path string) (any, error) {
	b.logger.Ctx(ctx).Debug("Shipday request", zap.String("operation", op), zap.String("path", path))
	resp, err := b.client.Get(ctx, path)
	return b.finish(ctx, op, resp, err)
}

func (b base) post(ctx context.Context, op, path string, body map[string]any) (any, error) {
	b.logger.Ctx(ctx).Debug("Shipday request", zap.String("operation", op), zap.String("path", path))
	resp, err := b.client.Post(ctx, path, body)
	return b.finish(ctx, op, resp, err)
}

func (b base) put(ctx context.Context, op, path string, body map[string]any) (any, error) {
	b.logger.Ctx(ctx).Debug("Shipday request", zap.String("operation", op), zap.String("path", path))
	resp, err := b.client.Put(ctx, path, body)
	return b.finish(ctx, op, resp, err)
}

// delete returns the raw response, failing on a non-2xx status or an
// errorCode body.
func (b base) delete(ctx context.Context, op, path string) (*transport.RawResponse, error) {
	b.logger.Ctx(ctx).Debug("Shipday request", zap.String("operation", op), zap.String("path", path))
	raw, err := b.client.Delete(ctx, path)
	if err != nil {
		return nil, b.fail(ctx, op, err)
	}
	if !raw.OK() {
		return nil, b.fail(ctx, op, transport.ParseError(raw))
	}
	if body, err := raw.JSON(); err == nil {
		if apiErr := ResponseError(body); apiErr != nil {
			return nil, b.fail(ctx, op, apiErr.WithStatusCode(raw.StatusCode))
		}
	}
	return raw, nil
}

func (b base) finish(ctx context.Context, op string, resp any, err error) (any, error) {
	if err != nil {
		return nil, b.fail(ctx, op, err)
	}
	if apiErr := ResponseError(resp); apiErr != nil {
		return nil, b.fail(ctx, op, apiErr)
	}
	return resp, nil
}

func (b base) fail(ctx context.Context, op string, err error) error {
	b.logger.Ctx(ctx).Error("Shipday API error", zap.String("operation", op), zap.Error(err))
	return err
}

// ResponseError returns an *errs.APIError when resp is a map carrying an
// errorCode key, nil otherwise.
func ResponseError(resp any) *errs.APIError {
	m, ok := resp.(map[string]any)
	if !ok {
		return nil
	}
	code, ok := m["errorCode"]
	if !ok {
		return nil
	}
	msg, _ := m["errorMessage"].(string)
	codeStr := ""
	if code != nil {
		codeStr = fmt.Sprint(code)
	}
	return errs.NewAPIError(codeStr, msg)
}

func checkID(field string, id int) error {
	return verify.PositiveInt(field, id, fmt.Sprintf("%s must be a positive integer", field))
}
