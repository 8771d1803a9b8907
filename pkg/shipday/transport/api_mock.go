package transport

import (
	"context"
	"maps"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tournevent/shipday/pkg/shipday/errs"
)

// Call is a request recorded by MockAPIClient.
type Call struct {
	Method string
	Path   string
	Body   map[string]any
}

// MockAPIClient is an in-memory HTTPClient for tests and offline use.
// Hooks take precedence over the canned responses.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnGet    func(ctx context.Context, path string) (any, error)
	OnPost   func(ctx context.Context, path string, body map[string]any) (any, error)
	OnPut    func(ctx context.Context, path string, body map[string]any) (any, error)
	OnDelete func(ctx context.Context, path string) (*RawResponse, error)

	mu    sync.Mutex
	calls []Call
}

// NewMockAPIClient creates a new mock API client with default behavior.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

// Calls returns the recorded requests in order.
func (m *MockAPIClient) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallsTo returns the recorded requests for method and path.
func (m *MockAPIClient) CallsTo(method, path string) []Call {
	var out []Call
	for _, c := range m.Calls() {
		if c.Method == method && c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

// Reset clears the recorded requests.
func (m *MockAPIClient) Reset() {
	m.mu.Lock()
	m.calls = nil
	m.mu.Unlock()
}

func (m *MockAPIClient) record(ctx context.Context, method, path string, body map[string]any) error {
	m.mu.Lock()
	m.calls = append(m.calls, Call{Method: method, Path: path, Body: maps.Clone(body)})
	m.mu.Unlock()

	if m.SimulateLatency > 0 {
		select {
		case <-time.After(m.SimulateLatency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if m.SimulateErrors {
		return errs.NewAPIError("MOCK_ERROR", "Simulated API error").WithStatusCode(http.StatusInternalServerError)
	}
	return nil
}

// Get returns canned data for the list and detail endpoints.
func (m *MockAPIClient) Get(ctx context.Context, path string) (any, error) {
	if err := m.record(ctx, http.MethodGet, path, nil); err != nil {
		return nil, err
	}
	if m.OnGet != nil {
		return m.OnGet(ctx, path)
	}

	switch route := Route(path); {
	case route == "/orders/":
		return []any{mockOrder(1001, "ORD-1001")}, nil
	case strings.HasPrefix(route, "/orders/"):
		return []any{mockOrder(1001, strings.TrimPrefix(path, "/orders/"))}, nil
	case route == "/carriers/":
		return []any{
			map[string]any{"id": 11, "name": "John Doe", "email": "john@example.com", "phoneNumber": "+12345678901", "isOnShift": true},
		}, nil
	case route == "/on-demand/services":
		return MockServices(), nil
	case route == "/on-demand/estimate/:id":
		return []any{
			map[string]any{"name": "DoorDash", "fee": 8.5, "pickupDuration": 12, "deliveryDuration": 25, "referenceId": "est-" + uuid.New().String()[:8]},
		}, nil
	case route == "/on-demand/details/:id":
		return map[string]any{"name": "DoorDash", "status": "ASSIGNED", "trackingUrl": "https://track.example.com/" + uuid.New().String()[:8]}, nil
	default:
		return map[string]any{}, nil
	}
}

// Post echoes a success payload.
func (m *MockAPIClient) Post(ctx context.Context, path string, body map[string]any) (any, error) {
	if err := m.record(ctx, http.MethodPost, path, body); err != nil {
		return nil, err
	}
	if m.OnPost != nil {
		return m.OnPost(ctx, path, body)
	}

	switch path {
	case "/orders/":
		return map[string]any{"success": true, "orderId": 1002, "response": "Order created successfully"}, nil
	case "/orders/query/":
		return []any{mockOrder(1001, "ORD-1001")}, nil
	case "/carriers/":
		return map[string]any{"success": true, "id": uuid.New().ID()}, nil
	case "/third-party/availability":
		return []any{map[string]any{"name": "DoorDash", "available": true}}, nil
	default:
		return map[string]any{"success": true}, nil
	}
}

// Put echoes a success payload.
func (m *MockAPIClient) Put(ctx context.Context, path string, body map[string]any) (any, error) {
	if err := m.record(ctx, http.MethodPut, path, body); err != nil {
		return nil, err
	}
	if m.OnPut != nil {
		return m.OnPut(ctx, path, body)
	}
	return map[string]any{"success": true}, nil
}

// Delete returns 204 No Content.
func (m *MockAPIClient) Delete(ctx context.Context, path string) (*RawResponse, error) {
	if err := m.record(ctx, http.MethodDelete, path, nil); err != nil {
		return nil, err
	}
	if m.OnDelete != nil {
		return m.OnDelete(ctx, path)
	}
	return &RawResponse{StatusCode: http.StatusNoContent, Header: http.Header{}}, nil
}

// MockServices is the canned on-demand services list: DoorDash active,
// Uber inactive.
func MockServices() []any {
	return []any{
		map[string]any{"name": "DoorDash", "DoorDash": true},
		map[string]any{"name": "Uber", "Uber": false},
	}
}

func mockOrder(id int, number string) map[string]any {
	return map[string]any{
		"orderId":     id,
		"orderNumber": number,
		"customer": map[string]any{
			"name":        "Mock Customer",
			"address":     "Jefferson St, California, CA, USA",
			"phoneNumber": "+1343523423",
		},
		"restaurant": map[string]any{
			"name":    "Mock Kitchen",
			"address": "Hacker way, California, CA, USA",
		},
		"orderStatus": map[string]any{"orderState": "NOT_ASSIGNED"},
	}
}

var _ HTTPClient = (*MockAPIClient)(nil)
