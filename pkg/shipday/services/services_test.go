package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/shipday/pkg/shipday/errs"
	"github.com/tournevent/shipday/pkg/shipday/order"
	"github.com/tournevent/shipday/pkg/shipday/services"
	"github.com/tournevent/shipday/pkg/shipday/transport"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

func testLogger() *otelzap.Logger {
	return otelzap.New(zap.NewNop())
}

func address(street string) *order.Address {
	return order.NewAddress(order.AddressParams{Street: street, City: "California", State: "CA", Country: "USA"})
}

func validOrder() *order.Order {
	return order.NewOrder(order.OrderParams{
		OrderNumber: "1234",
		Customer: order.NewCustomer(order.CustomerParams{
			Name:        "customer",
			Address:     address("Jefferson St"),
			PhoneNumber: "+1343523423",
		}),
		Pickup: order.NewPickup(order.PickupParams{Name: "Popeyes", Address: address("Hacker way")}),
		Items: []*order.OrderItem{
			order.NewOrderItem(order.OrderItemParams{Name: "Pizza", UnitPrice: 2, Quantity: 7}),
		},
	})
}

func TestResponseError(t *testing.T) {
	err := services.ResponseError(map[string]any{"errorCode": 400, "errorMessage": "Invalid carrier"})
	require.NotNil(t, err)
	assert.Equal(t, "400", err.Code)
	assert.Equal(t, "Invalid carrier", err.Message)

	assert.Nil(t, services.ResponseError(map[string]any{"success": true}))
	assert.Nil(t, services.ResponseError([]any{map[string]any{"errorCode": 1}}))
	assert.Nil(t, services.ResponseError(nil))
}

func TestOrderService_GetOrders(t *testing.T) {
	mock := transport.NewMockAPIClient()
	svc := services.NewOrderService(mock, testLogger())

	resp, err := svc.GetOrders(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, resp)
	assert.Len(t, mock.CallsTo("GET", "/orders/"), 1)
}

func TestOrderService_GetOrder(t *testing.T) {
	mock := transport.NewMockAPIClient()
	svc := services.NewOrderService(mock, testLogger())

	_, err := svc.GetOrder(context.Background(), "")
	assert.Equal(t, errs.KindMissingRequiredField, errs.KindOf(err))
	assert.Empty(t, mock.Calls())

	_, err = svc.GetOrder(context.Background(), "ORD 7")
	require.NoError(t, err)
	assert.Len(t, mock.CallsTo("GET", "/orders/ORD%207"), 1)
}

func TestOrderService_InsertOrder(t *testing.T) {
	mock := transport.NewMockAPIClient()
	svc := services.NewOrderService(mock, testLogger())

	_, err := svc.InsertOrder(context.Background(), validOrder())
	require.NoError(t, err)

	calls := mock.CallsTo("POST", "/orders/")
	require.Len(t, calls, 1)
	assert.Equal(t, "1234", calls[0].Body["orderNumber"])
	assert.Equal(t, "customer", calls[0].Body["customerName"])
}

func TestOrderService_InsertOrderVerifiesFirst(t *testing.T) {
	mock := transport.NewMockAPIClient()
	svc := services.NewOrderService(mock, testLogger())

	o := validOrder()
	require.NoError(t, o.AddItem(order.NewOrderItem(order.OrderItemParams{Name: "Soda"})))

	_, err := svc.InsertOrder(context.Background(), o)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Contains(t, err.Error(), "item 1")
	assert.Empty(t, mock.Calls())

	_, err = svc.InsertOrder(context.Background(), nil)
	assert.True(t, errs.IsValidation(err))
}

func TestOrderService_InsertOrderErrorCode(t *testing.T) {
	mock := transport.NewMockAPIClient()
	mock.OnPost = func(ctx context.Context, path string, body map[string]any) (any, error) {
		return map[string]any{"errorCode": "DUPLICATE", "errorMessage": "Order number already exists"}, nil
	}
	svc := services.NewOrderService(mock, testLogger())

	resp, err := svc.InsertOrder(context.Background(), validOrder())
	require.Error(t, err)
	assert.Nil(t, resp)

	var apiErr *errs.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Order number already exists", apiErr.Message)
	assert.Equal(t, "DUPLICATE", apiErr.Code)
}

func TestOrderService_EditOrder(t *testing.T) {
	mock := transport.NewMockAPIClient()
	svc := services.NewOrderService(mock, testLogger())

	_, err := svc.EditOrder(context.Background(), 0, validOrder())
	assert.Equal(t, errs.KindRangeViolation, errs.KindOf(err))

	_, err = svc.EditOrder(context.Background(), 55, validOrder())
	require.NoError(t, err)

	calls := mock.CallsTo("PUT", "/order/edit/55")
	require.Len(t, calls, 1)
	assert.Equal(t, 55, calls[0].Body["orderId"])
	assert.Equal(t, "1234", calls[0].Body["orderNumber"])
}

func TestOrderService_DeleteOrder(t *testing.T) {
	mock := transport.NewMockAPIClient()
	svc := services.NewOrderService(mock, testLogger())

	_, err := svc.DeleteOrder(context.Background(), -3)
	assert.True(t, errs.IsValidation(err))

	raw, err := svc.DeleteOrder(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, raw.StatusCode)
	assert.Len(t, mock.CallsTo("DELETE", "/orders/42"), 1)
}

func TestOrderService_DeleteOrderFailure(t *testing.T) {
	mock := transport.NewMockAPIClient()
	mock.OnDelete = func(ctx context.Context, path string) (*transport.RawResponse, error) {
		return &transport.RawResponse{
			StatusCode: http.StatusNotFound,
			Body:       []byte(`{"errorCode":"NOT_FOUND","errorMessage":"Order not found"}`),
		}, nil
	}
	svc := services.NewOrderService(mock, testLogger())

	_, err := svc.DeleteOrder(context.Background(), 42)
	var apiErr *errs.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Order not found", apiErr.Message)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestOrderService_DeleteOrderErrorCodeOn200(t *testing.T) {
	mock := transport.NewMockAPIClient()
	mock.OnDelete = func(ctx context.Context, path string) (*transport.RawResponse, error) {
		return &transport.RawResponse{
			StatusCode: http.StatusOK,
			Body:       []byte(`{"errorCode":500,"errorMessage":"Could not delete"}`),
		}, nil
	}
	svc := services.NewOrderService(mock, testLogger())

	_, err := svc.DeleteOrder(context.Background(), 42)
	var apiErr *errs.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Could not delete", apiErr.Message)
}

func TestOrderService_AssignOrder(t *testing.T) {
	mock := transport.NewMockAPIClient()
	svc := services.NewOrderService(mock, testLogger())

	_, err := svc.AssignOrder(context.Background(), 5, 0)
	assert.True(t, errs.IsValidation(err))
	assert.Empty(t, mock.Calls())

	_, err = svc.AssignOrder(context.Background(), 5, 7)
	require.NoError(t, err)
	calls := mock.CallsTo("PUT", "/orders/assign/5/7")
	require.Len(t, calls, 1)
	assert.Empty(t, calls[0].Body)
}

func TestOrderService_Query(t *testing.T) {
	mock := transport.NewMockAPIClient()
	svc := services.NewOrderService(mock, testLogger())

	_, err := svc.Query(context.Background(), order.NewOrderQuery(order.QueryParams{OrderStatus: "bogus"}))
	assert.True(t, errs.IsValidation(err))

	q := order.NewOrderQuery(order.QueryParams{OrderStatus: order.StatusPickedUp})
	_, err = svc.Query(context.Background(), q)
	require.NoError(t, err)

	calls := mock.CallsTo("POST", "/orders/query/")
	require.Len(t, calls, 1)
	assert.Equal(t, map[string]any{"orderStatus": "PICKED_UP"}, calls[0].Body)
}

func TestOrderService_TransportError(t *testing.T) {
	mock := transport.NewMockAPIClient()
	mock.SimulateErrors = true
	svc := services.NewOrderService(mock, testLogger())

	_, err := svc.GetOrders(context.Background())
	assert.ErrorIs(t, err, errs.ErrAPI)
}
