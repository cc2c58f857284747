package queries

import (
	"errors"

	"kitcart/internal/pkg/guard"
)

var (
	ErrGetAllStaffQueryIsNotConstructed = errors.New(
		"GetAllStaffQuery must be created via NewGetAllStaffQuery constructor",
	)
	ErrGetAvailableStaffQueryIsNotConstructed = errors.New(
		"GetAvailableStaffQuery must be created via NewGetAvailableStaffQuery constructor",
	)
)

// GetAllStaffQuery retrieves the whole delivery roster with duty statuses
// and current order bindings.
type GetAllStaffQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllStaffQuery creates a query to list the roster.
// This is a parameterless query.
func NewGetAllStaffQuery() GetAllStaffQuery {
	return GetAllStaffQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllStaffQueryIsNotConstructed if validation fails.
func (q GetAllStaffQuery) Validate() error {
	return q.guard.Validate(ErrGetAllStaffQueryIsNotConstructed)
}

// GetAvailableStaffQuery retrieves only the staff members free to take an
// order. Backs the assignment picker.
type GetAvailableStaffQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableStaffQuery creates a query to list available staff.
// This is a parameterless query.
func NewGetAvailableStaffQuery() GetAvailableStaffQuery {
	return GetAvailableStaffQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableStaffQueryIsNotConstructed if validation fails.
func (q GetAvailableStaffQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableStaffQueryIsNotConstructed)
}
