package kernel

import (
	"fmt"
	"strconv"

	"kitcart/internal/pkg/errs"

	"kitcart/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created
// through NewMoney. This error is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is a value object representing a non-negative monetary amount in
// whole currency units. Prices and order totals in the system are whole
// rupee amounts, so no fractional representation is needed.
//
// Money is immutable: arithmetic operations return new values and never
// modify the receiver. The zero value is invalid and must be constructed
// via NewMoney.
//
// Example usage:
//
//	price, _ := kernel.NewMoney(349)
//	total, _ := price.MulInt(2)       // 698
//	total, _ = total.Add(surcharge)   // 698 + 49
type Money struct {
	amount int

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from a whole currency amount.
// The amount must not be negative.
func NewMoney(amount int) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is negative", amount),
		)
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Amount returns the amount in whole currency units.
func (m Money) Amount() int {
	return m.amount
}

// Add returns the sum of two Money values.
// Both operands must be properly constructed.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount + other.amount)
}

// MulInt returns the Money value multiplied by a non-negative factor.
// Used to price a line item from its unit price and quantity.
func (m Money) MulInt(factor int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"factor",
			fmt.Errorf("%d is negative", factor),
		)
	}

	return NewMoney(m.amount * factor)
}

// IsEqual compares two Money values for equality by amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the amount formatted as a plain decimal string.
func (m Money) String() string {
	return strconv.Itoa(m.amount)
}

// Validate checks if the Money value was created via NewMoney.
// Returns ErrMoneyIsNotConstructed for zero values.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
