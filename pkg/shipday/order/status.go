package order

import "slices"

// Status is an order state token understood by the orders query endpoint.
type Status string

const (
	StatusActive           Status = "ACTIVE"
	StatusNotAssigned      Status = "NOT_ASSIGNED"
	StatusNotAccepted      Status = "NOT_ACCEPTED"
	StatusNotStartedYet    Status = "NOT_STARTED_YET"
	StatusStarted          Status = "STARTED"
	StatusPickedUp         Status = "PICKED_UP"
	StatusReadyToDeliver   Status = "READY_TO_DELIVER"
	StatusAlreadyDelivered Status = "ALREADY_DELIVERED"
	StatusFailedDelivery   Status = "FAILED_DELIVERY"
	StatusIncomplete       Status = "INCOMPLETE"
)

// Statuses lists every accepted Status.
var Statuses = []Status{
	StatusActive,
	StatusNotAssigned,
	StatusNotAccepted,
	StatusNotStartedYet,
	StatusStarted,
	StatusPickedUp,
	StatusReadyToDeliver,
	StatusAlreadyDelivered,
	StatusFailedDelivery,
	StatusIncomplete,
}

// Valid reports whether s is one of Statuses.
func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}
