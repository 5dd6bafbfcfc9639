package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

// ErrOrderIsNotDraft is returned when a placement is attempted on an order
// that has already left the Draft status.
var ErrOrderIsNotDraft = errors.New("order can only be placed while in Draft status")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Draft ──> Placed ──> Shipped ──> Delivered
//
// The status only ever advances; no transition regresses. This core performs
// the Draft -> Placed transition; shipping and delivery transitions belong to
// the fulfillment workflow and are defined here only to complete the machine.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status of an order under construction.
	// Draft orders are mutable and are the only orders that can be placed.
	Draft

	// Placed indicates the order has been placed: its total is fixed
	// and it has been handed over to fulfillment.
	Placed

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer.
	// This is the final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Placed:    "Placed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Placed:    "Placed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Draft, Placed, Shipped, Delivered.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidatePlace checks if the status allows placement without performing
// the transition.
//
// Only Draft orders can be placed. Any other status, including a repeated
// placement of an already Placed order, fails with ErrOrderIsNotDraft.
//
// This method provides placement validation without side effects, useful
// for pre-validation before authorization and pricing run.
func (s Status) ValidatePlace() error {
	if s != Draft {
		return fmt.Errorf("%w: %s is not a valid status to place", ErrOrderIsNotDraft, s.String())
	}
	return nil
}

// Place transitions the status to Placed.
//
// Valid transitions:
//   - Draft -> Placed
//
// Any other source status fails with ErrOrderIsNotDraft; placement is
// deliberately not idempotent so a second attempt surfaces the conflict.
func (s Status) Place() (Status, error) {
	if err := s.ValidatePlace(); err != nil {
		return 0, err
	}

	return Placed, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Placed -> Shipped
func (s Status) Ship() (Status, error) {
	if s != Placed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to ship", s.String()),
		)
	}

	return Shipped, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Shipped -> Delivered
//
// Delivered is a final state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
