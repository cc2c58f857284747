// Package queries contains read operations that never modify system state.
// Implements the Query side of the CQRS architecture: handlers read the
// backing store directly and return flat read models, bypassing the unit of
// work used by commands.
package queries

import (
	"kitcart/internal/core/domain/model/cart"
	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/core/domain/model/order"
	"kitcart/internal/core/domain/model/staff"
)

// Reader interfaces describe the read side of the backing store.
// The in-memory store satisfies all of them.
type (
	// OrderReader provides direct read access to the order book.
	OrderReader interface {
		GetOrder(id kernel.UUID) (*order.Order, error)
		ActiveOrders(mode order.DeliveryMode) ([]*order.Order, error)
	}

	// StaffReader provides direct read access to the staff roster.
	StaffReader interface {
		AllStaff() ([]*staff.Staff, error)
		AvailableStaff() ([]*staff.Staff, error)
	}

	// CartReader provides direct read access to the active cart.
	CartReader interface {
		Cart() (*cart.Cart, error)
	}
)
