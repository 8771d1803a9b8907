package order

import (
	"fmt"
	"time"

	"github.com/tournevent/shipday/pkg/shipday/verify"
)

const (
	msgInvalidStatus = "invalid order status"
	msgStartCursor   = "start cursor must be a non-negative integer"
	msgEndCursor     = "end cursor must be a non-negative integer"
)

// QueryParams holds the OrderQuery filters. Zero values mean absent.
type QueryParams struct {
	StartTime   *time.Time
	EndTime     *time.Time
	OrderStatus Status
	StartCursor *int
	EndCursor   *int
}

// OrderQuery filters the orders query endpoint.
type OrderQuery struct {
	startTime   *time.Time
	endTime     *time.Time
	orderStatus Status
	startCursor *int
	endCursor   *int
}

// NewOrderQuery creates an OrderQuery. Nothing is validated until Verify.
func NewOrderQuery(p QueryParams) *OrderQuery {
	return &OrderQuery{
		startTime:   copyTime(p.StartTime),
		endTime:     copyTime(p.EndTime),
		orderStatus: p.OrderStatus,
		startCursor: copyInt(p.StartCursor),
		endCursor:   copyInt(p.EndCursor),
	}
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func (q *OrderQuery) StartTime() *time.Time { return copyTime(q.startTime) }
func (q *OrderQuery) EndTime() *time.Time   { return copyTime(q.endTime) }
func (q *OrderQuery) OrderStatus() Status   { return q.orderStatus }
func (q *OrderQuery) StartCursor() *int     { return copyInt(q.startCursor) }
func (q *OrderQuery) EndCursor() *int       { return copyInt(q.endCursor) }

func (q *OrderQuery) SetStartTime(t *time.Time) { q.startTime = copyTime(t) }
func (q *OrderQuery) SetEndTime(t *time.Time)   { q.endTime = copyTime(t) }

// SetOrderStatus sets the status filter. The empty status clears it.
func (q *OrderQuery) SetOrderStatus(s Status) error {
	if err := checkStatus(s); err != nil {
		return err
	}
	q.orderStatus = s
	return nil
}

// SetStartCursor sets the start cursor. Nil clears it.
func (q *OrderQuery) SetStartCursor(v *int) error {
	if err := checkCursor("startCursor", v, msgStartCursor); err != nil {
		return err
	}
	q.startCursor = copyInt(v)
	return nil
}

// SetEndCursor sets the end cursor. Nil clears it.
func (q *OrderQuery) SetEndCursor(v *int) error {
	if err := checkCursor("endCursor", v, msgEndCursor); err != nil {
		return err
	}
	q.endCursor = copyInt(v)
	return nil
}

func checkStatus(s Status) error {
	if s == "" {
		return nil
	}
	return verify.OneOf("orderStatus", s, Statuses, msgInvalidStatus)
}

func checkCursor(field string, v *int, message string) error {
	if v == nil {
		return nil
	}
	return verify.NotNegativeInt(field, *v, message)
}

// Verify checks the status filter and both cursors.
func (q *OrderQuery) Verify() error {
	return verify.First(
		checkStatus(q.orderStatus),
		checkCursor("startCursor", q.startCursor, msgStartCursor),
		checkCursor("endCursor", q.endCursor, msgEndCursor),
	)
}

// Body renders the present filters in wire format.
func (q *OrderQuery) Body() map[string]any {
	obj := make(map[string]any)
	if q.startTime != nil {
		obj["startTime"] = q.startTime.Format(time.RFC3339)
	}
	if q.endTime != nil {
		obj["endTime"] = q.endTime.Format(time.RFC3339)
	}
	if q.orderStatus != "" {
		obj["orderStatus"] = string(q.orderStatus)
	}
	if q.startCursor != nil {
		obj["startCursor"] = *q.startCursor
	}
	if q.endCursor != nil {
		obj["endCursor"] = *q.endCursor
	}
	return obj
}

// String renders the query for logs.
func (q *OrderQuery) String() string {
	return fmt.Sprintf("OrderQuery%v", q.Body())
}
