package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the shared
// in-memory state. It provides mutual exclusion and staged writes: all
// mutations performed through its repositories become visible to other
// collaborators only on Commit, and never partially.
//
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin acquires exclusive access to the shared state.
	Begin(ctx context.Context) error

	// Commit publishes all staged writes and releases exclusive access.
	// Returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback discards staged writes and releases exclusive access.
	// Safe to call after Commit; it is then a no-op.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to this transaction.
	OrderRepository() OrderRepository

	// StaffRepository returns a StaffRepository bound to this transaction.
	StaffRepository() StaffRepository

	// CartRepository returns a CartRepository bound to this transaction.
	CartRepository() CartRepository
}
