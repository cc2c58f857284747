package memory

import (
	"context"
	"fmt"

	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/core/domain/model/order"
	"kitcart/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository over the unit of work's
// staged state. All reads and writes act on the working copy; nothing is
// visible outside the transaction until Commit.
type OrderRepository struct {
	uow *UnitOfWork
}

// Add stages a new order at the head of the collection (newest first).
// Fails if an order with the same id is already stored.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveTransaction
	}

	raw := aggregate.ID().Bytes()
	for _, record := range r.uow.orders {
		if record.ID == raw {
			return errs.NewValueIsInvalidErrorWithCause(
				"orderId",
				fmt.Errorf("order %s already exists", aggregate.ID()),
			)
		}
	}

	r.uow.orders = append([]orderRecord{orderToRecord(aggregate)}, r.uow.orders...)
	return nil
}

// Update stages changes to an existing order.
// Returns an error wrapping errs.ErrObjectNotFound for unknown ids.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveTransaction
	}

	raw := aggregate.ID().Bytes()
	for i, record := range r.uow.orders {
		if record.ID == raw {
			r.uow.orders[i] = orderToRecord(aggregate)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
}

// Get retrieves an order from the staged state by id.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}

	raw := id.Bytes()
	for _, record := range r.uow.orders {
		if record.ID == raw {
			return orderFromRecord(record)
		}
	}
	return nil, errs.NewObjectNotFoundError("orderId", id.String())
}

// GetAllActive retrieves all staged orders with the given mode that have
// not reached Delivered, newest first.
func (r *OrderRepository) GetAllActive(_ context.Context, mode order.DeliveryMode) ([]*order.Order, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}

	active := make([]*order.Order, 0)
	for _, record := range r.uow.orders {
		if record.DeliveryMode != mode.String() || record.Status == order.StatusDelivered.String() {
			continue
		}
		aggregate, err := orderFromRecord(record)
		if err != nil {
			return nil, err
		}
		active = append(active, aggregate)
	}
	return active, nil
}
