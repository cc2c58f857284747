package memory

import (
	"context"
	"fmt"

	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/core/domain/model/staff"
	"kitcart/internal/pkg/errs"
)

// StaffRepository implements ports.StaffRepository over the unit of work's
// staged state.
type StaffRepository struct {
	uow *UnitOfWork
}

// Add stages a new staff member at the end of the roster.
// Fails if a staff member with the same id is already stored.
func (r *StaffRepository) Add(_ context.Context, aggregate *staff.Staff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveTransaction
	}

	raw := aggregate.ID().Bytes()
	for _, record := range r.uow.staff {
		if record.ID == raw {
			return errs.NewValueIsInvalidErrorWithCause(
				"staffId",
				fmt.Errorf("staff %s already exists", aggregate.ID()),
			)
		}
	}

	r.uow.staff = append(r.uow.staff, staffToRecord(aggregate))
	return nil
}

// Update stages changes to an existing staff member.
// Returns an error wrapping errs.ErrObjectNotFound for unknown ids.
func (r *StaffRepository) Update(_ context.Context, aggregate *staff.Staff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveTransaction
	}

	raw := aggregate.ID().Bytes()
	for i, record := range r.uow.staff {
		if record.ID == raw {
			r.uow.staff[i] = staffToRecord(aggregate)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("staffId", aggregate.ID().String())
}

// Get retrieves a staff member from the staged state by id.
func (r *StaffRepository) Get(_ context.Context, id kernel.UUID) (*staff.Staff, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}

	raw := id.Bytes()
	for _, record := range r.uow.staff {
		if record.ID == raw {
			return staffFromRecord(record)
		}
	}
	return nil, errs.NewObjectNotFoundError("staffId", id.String())
}

// GetAllAvailable retrieves all staged staff currently free to take an order.
func (r *StaffRepository) GetAllAvailable(_ context.Context) ([]*staff.Staff, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}

	available := make([]*staff.Staff, 0)
	for _, record := range r.uow.staff {
		if record.Status != staff.StatusAvailable.String() {
			continue
		}
		aggregate, err := staffFromRecord(record)
		if err != nil {
			return nil, err
		}
		available = append(available, aggregate)
	}
	return available, nil
}
