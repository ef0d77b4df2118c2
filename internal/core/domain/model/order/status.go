package order

import (
	"fmt"

	"github.com/camdiaz/xuma/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	pending ──> processing ──┬──> completed
//	                         └──> cancelled
//
// Completed and cancelled are terminal. Self-transitions are not permitted
// edges and are rejected like any other invalid transition.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to enter fulfillment.
	Pending

	// Processing indicates the order is being fulfilled.
	Processing

	// Completed indicates the order was fulfilled successfully.
	// This is a terminal state.
	Completed

	// Cancelled indicates the order was abandoned during fulfillment.
	// This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getTransitions returns the permitted edges of the status state machine.
// Statuses absent from a slice are unreachable from that source, and terminal
// statuses map to an empty slice.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing},
		Processing: {Completed, Cancelled},
		Completed:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses a status from its lowercase string form
// ("pending", "processing", "completed", "cancelled"). Returns an error for
// any other input, including the empty string.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Processing, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for invalid
// values. This method implements the fmt.Stringer interface and is safe to
// call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return len(getTransitions()[s]) == 0 && s.Validate() == nil
}

// AllowedTargets returns the statuses reachable from s in one transition.
// The result is empty for terminal and invalid statuses.
func (s Status) AllowedTargets() []Status {
	targets := getTransitions()[s]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// CanTransitionTo reports whether s -> target is a permitted edge.
// Self-transitions are not permitted edges.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo transitions the status to target.
//
// Returns:
//   - (target, nil) when s -> target is a permitted edge
//   - (0, error) otherwise; the error names the current status, the rejected
//     target, and the set of allowed targets
//
// This method is used by Order.ChangeStatus to enforce the state machine.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		allowed := getTransitions()[s]
		allowedStrings := make([]string, 0, len(allowed))
		for _, a := range allowed {
			allowedStrings = append(allowedStrings, a.String())
		}
		return 0, errs.NewInvalidStateTransitionError(s.String(), target.String(), allowedStrings)
	}

	return target, nil
}
