package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a strictly forward state machine: every order moves through
// the same fixed sequence of stages and never regresses or skips a stage.
//
// State transitions:
//
//	Received ──> Preparing ──> Ready ──> OnTheWay ──> Delivered
//
// Delivered is terminal; it has no successor.
//
// Status is a value object that validates state transitions and provides
// the wire-format string representation used by the REST API and the
// database.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusReceived is the initial status assigned when an order is placed.
	// The restaurant has not started preparing it yet.
	StatusReceived

	// StatusPreparing indicates the restaurant is preparing the order.
	StatusPreparing

	// StatusReady indicates the order is prepared and waiting for pickup.
	StatusReady

	// StatusOnTheWay indicates a delivery actor has picked the order up.
	StatusOnTheWay

	// StatusDelivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	StatusDelivered
)

// statusSequence is the single authoritative ordering of lifecycle states.
// Both Next and Index derive from it, so the forward-only rule lives in
// exactly one place.
func statusSequence() []Status {
	return []Status{
		StatusReceived,
		StatusPreparing,
		StatusReady,
		StatusOnTheWay,
		StatusDelivered,
	}
}

// getStatusStrings returns a map of Status values to their wire-format strings.
// These exact strings are the persisted and transmitted representation.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusReceived:  "RECEIVED",
		StatusPreparing: "PREPARING",
		StatusReady:     "READY",
		StatusOnTheWay:  "ON_THE_WAY",
		StatusDelivered: "DELIVERED",
	}
}

// AllStatuses returns every valid lifecycle state in forward order.
// Useful for building complete by-status breakdowns where states with
// no orders must still appear.
func AllStatuses() []Status {
	return statusSequence()
}

// StatusFromString parses a wire-format status string.
//
// Returns:
//   - the matching Status for one of the five valid strings
//   - an error for any other input, including "UNKNOWN"
func StatusFromString(s string) (Status, error) {
	for _, status := range statusSequence() {
		if getStatusStrings()[status] == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are the five lifecycle states; StatusUnknown (0) and any
// other values are invalid.
func (s Status) Validate() error {
	for _, status := range statusSequence() {
		if s == status {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%d is not a valid status", s),
	)
}

// String returns the wire-format name of the status.
//
// Returns "UNKNOWN" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Next returns the unique successor of the status.
//
// Returns:
//   - (successor, true) for every non-terminal valid status
//   - (StatusUnknown, false) for StatusDelivered and invalid values
//
// Each state has at most one successor; this is a lookup over the ordered
// sequence, not a transition graph.
func (s Status) Next() (Status, bool) {
	seq := statusSequence()
	for i, status := range seq {
		if s == status && i+1 < len(seq) {
			return seq[i+1], true
		}
	}
	return StatusUnknown, false
}

// IsTerminal reports whether the status has no successor.
func (s Status) IsTerminal() bool {
	_, ok := s.Next()
	return s.Validate() == nil && !ok
}

// Index returns the zero-based position of the status within the fixed
// sequence, used to render progress timelines (all stages before the
// index are complete).
//
// Returns -1 for invalid status values.
func (s Status) Index() int {
	for i, status := range statusSequence() {
		if s == status {
			return i
		}
	}
	return -1
}
