// Package ports defines repository interfaces for the kitcart domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/core/domain/model/staff"
)

// StaffRepository defines the persistence contract for delivery staff
// aggregates. The roster is seeded at process start and staff are never
// deleted; only their availability changes.
type StaffRepository interface {
	// Add persists a new staff aggregate to storage.
	// Used when seeding the roster at startup.
	Add(ctx context.Context, aggregate *staff.Staff) error

	// Update persists changes to an existing staff aggregate.
	Update(ctx context.Context, aggregate *staff.Staff) error

	// Get retrieves a staff aggregate by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)

	// GetAllAvailable retrieves all staff currently free to take an order.
	GetAllAvailable(ctx context.Context) ([]*staff.Staff, error)
}
