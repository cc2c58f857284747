package order

import (
	"fmt"

	"kitcart/internal/pkg/errs"
)

// DeliveryMode distinguishes instant orders, which count down an ETA and
// auto-progress through the lifecycle, from scheduled orders, which wait for
// a customer-chosen future delivery time and are exempt from the countdown.
type DeliveryMode int

const (
	// ModeUnknown represents an invalid or undefined delivery mode.
	ModeUnknown DeliveryMode = iota

	// ModeInstant marks an order for immediate delivery with a tracked
	// ETA countdown starting at 60 minutes.
	ModeInstant

	// ModeScheduled marks an order for delivery at a specific future time.
	// Scheduled orders never participate in ETA auto-progression.
	ModeScheduled
)

func getDeliveryModeStrings() map[DeliveryMode]string {
	return map[DeliveryMode]string{
		ModeUnknown:   "Unknown",
		ModeInstant:   "Instant",
		ModeScheduled: "Scheduled",
	}
}

func getValidDeliveryModeStrings() map[DeliveryMode]string {
	//nolint:exhaustive // ModeUnknown is intentionally excluded as it's invalid
	return map[DeliveryMode]string{
		ModeInstant:   "Instant",
		ModeScheduled: "Scheduled",
	}
}

// DeliveryModeFromString parses a delivery mode name into a DeliveryMode.
// Returns an error for any name outside the enumerated set.
func DeliveryModeFromString(s string) (DeliveryMode, error) {
	for mode, name := range getValidDeliveryModeStrings() {
		if name == s {
			return mode, nil
		}
	}
	return ModeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"deliveryMode",
		fmt.Errorf("%q is not a valid delivery mode", s),
	)
}

// Validate checks if the DeliveryMode value is valid.
// Valid modes are: Instant, Scheduled.
func (m DeliveryMode) Validate() error {
	if _, ok := getValidDeliveryModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryMode",
			fmt.Errorf("%d is not a valid delivery mode", m),
		)
	}
	return nil
}

// String returns the human-readable name of the delivery mode.
func (m DeliveryMode) String() string {
	if str, ok := getDeliveryModeStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
