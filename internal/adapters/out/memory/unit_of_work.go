package memory

import (
	"context"
	"errors"

	"kitcart/internal/core/ports"
)

// ErrNoActiveTransaction is returned when Commit is called without Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates UnitOfWork instances over a shared Store.
// The factory ensures each business operation gets a fresh unit of work
// while all instances contend on the same store-wide mutex.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for store-backed unit of work
// instances.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork ready for a business transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork implements the transaction boundary over the in-memory store.
//
// Begin takes the store's mutex and deep-copies the current state; the
// repositories operate on that working copy. Commit writes the working copy
// back and releases the mutex, Rollback discards it. Holding the mutex for
// the whole transaction serializes every mutation in the process: the
// lifecycle clock tick, assignment and admin overrides never interleave.
type UnitOfWork struct {
	store  *Store
	active bool

	// working copies, valid while active
	orders []orderRecord
	staff  []staffRecord
	cart   []lineItemRecord
}

// Begin acquires the store mutex and stages a working copy of the state.
// Calling Begin on an already active unit of work is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.store.mu.Lock()
	uow.orders = cloneOrderRecords(uow.store.orders)
	uow.staff = cloneStaffRecords(uow.store.staff)
	uow.cart = cloneLineItemRecords(uow.store.cart)
	uow.active = true
	return nil
}

// Commit publishes the working copy and releases the store mutex.
// All staged writes become visible to other collaborators at once; no
// partial state is ever observable.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.store.orders = uow.orders
	uow.store.staff = uow.staff
	uow.store.cart = uow.cart
	uow.release()
	return nil
}

// Rollback discards the working copy and releases the store mutex.
// Safe to call after Commit; it is then a no-op. This supports the
// handlers' defer-Rollback pattern.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return nil
	}

	uow.release()
	return nil
}

func (uow *UnitOfWork) release() {
	uow.orders = nil
	uow.staff = nil
	uow.cart = nil
	uow.active = false
	uow.store.mu.Unlock()
}

// OrderRepository returns an OrderRepository bound to this transaction.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

// StaffRepository returns a StaffRepository bound to this transaction.
func (uow *UnitOfWork) StaffRepository() ports.StaffRepository {
	return &StaffRepository{uow: uow}
}

// CartRepository returns a CartRepository bound to this transaction.
func (uow *UnitOfWork) CartRepository() ports.CartRepository {
	return &CartRepository{uow: uow}
}
