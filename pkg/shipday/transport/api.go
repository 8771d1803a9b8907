// Package transport issues the HTTP calls behind the Shipday services.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// HTTPClient is the transport used by the services. Paths are relative to
// the API root, for example "/orders/".
type HTTPClient interface {
	Get(ctx context.Context, path string) (any, error)
	Post(ctx context.Context, path string, body map[string]any) (any, error)
	Put(ctx context.Context, path string, body map[string]any) (any, error)
	Delete(ctx context.Context, path string) (*RawResponse, error)
}

// RawResponse is an undecoded response, returned by Delete.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports a 2xx status.
func (r *RawResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// JSON decodes the body. An empty body decodes to nil.
func (r *RawResponse) JSON() (any, error) {
	return decodeJSON(r.Body)
}

// MetricsRecorder receives one observation per request.
type MetricsRecorder interface {
	RecordRequest(method, route, status string, duration float64)
	RecordError(route, errorType string)
}

func decodeJSON(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Route replaces numeric path segments with ":id" so that metric labels
// stay bounded, e.g. "/orders/assign/12/7" becomes "/orders/assign/:id/:id".
func Route(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if s == "" {
			continue
		}
		if _, err := strconv.Atoi(s); err == nil {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}
