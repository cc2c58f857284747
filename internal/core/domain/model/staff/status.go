package staff

import (
	"fmt"

	"kitcart/internal/pkg/errs"
)

// Status represents the availability of a delivery staff member.
//
// A staff member is either Available to take a new order or Busy delivering
// one. The status flips to Busy through the assignment protocol and back to
// Available only through a manual admin toggle; there is no automatic
// release when the assigned order is delivered.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable marks staff free to take a new order.
	StatusAvailable

	// StatusBusy marks staff currently bound to an order.
	StatusBusy
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusAvailable: "Available",
		StatusBusy:      "Busy",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAvailable: "Available",
		StatusBusy:      "Busy",
	}
}

// StatusFromString parses a staff status name into a Status value.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid staff status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Available, Busy.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid staff status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
