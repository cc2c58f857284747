package order

import (
	"fmt"

	"kitcart/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with time-driven transitions so orders
// follow the fulfilment workflow.
//
// State transitions driven by the lifecycle clock:
//
//	Pending ──> Packed ──> OutForDelivery ──> Delivered
//
// The clock only ever advances status forward. The admin status override
// (Order.ForceStatus) is an explicit escape hatch that may set any valid
// status, including moving backward, to correct mistakes.
//
// Status is a closed enumeration: invalid values are unrepresentable in the
// domain and are rejected at the boundary by StatusFromString and Validate.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is placed.
	// The kitchen has not started packing the kit yet.
	StatusPending

	// StatusPacked indicates the kit has been packed and is awaiting dispatch.
	StatusPacked

	// StatusOutForDelivery indicates the order has left with delivery staff.
	// Assignment to staff always forces this status.
	StatusOutForDelivery

	// StatusDelivered indicates the order has reached the customer.
	// This is a terminal state for the lifecycle clock and for assignment.
	StatusDelivered
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusPending:        "Pending",
		StatusPacked:         "Packed",
		StatusOutForDelivery: "OutForDelivery",
		StatusDelivered:      "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "Pending",
		StatusPacked:         "Packed",
		StatusOutForDelivery: "OutForDelivery",
		StatusDelivered:      "Delivered",
	}
}

// StatusFromString parses a status name into a Status value.
// Returns an error for any name outside the enumerated set; this is the
// validation point for status values arriving from external callers.
//
// Example:
//
//	status, err := order.StatusFromString("Packed")
//	if err != nil {
//	    // caller sent an unknown status name
//	}
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
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
// Valid statuses are: Pending, Packed, OutForDelivery, Delivered.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value,
// returning "Unknown" for invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAssign checks if an order in this status may be assigned to staff.
//
// Delivered orders are terminal and cannot be assigned. Any other valid
// status is assignable; assignment then forces OutForDelivery regardless of
// whether packing had finished.
func (s Status) ValidateAssign() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s == StatusDelivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}
