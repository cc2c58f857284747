package services

import (
	"kitcart/internal/core/domain/model/order"
	"kitcart/internal/core/domain/model/staff"
)

// Dispatcher is the domain service implementing the assignment protocol:
// it binds one order to one delivery staff member, mutating both aggregates
// in a consistent pair.
//
// Business rules:
//   - the order must not be Delivered
//   - assignment always forces the order to OutForDelivery, even from
//     Pending or Packed; dispatch is implied by assignment
//   - the staff member is marked Busy with a back-reference to the order
//   - neither aggregate is mutated if any rule fails
//
// The caller is responsible for committing both aggregates atomically;
// no observer may see the order updated but the staff not yet updated,
// or vice versa.
//
// Example:
//
//	dispatcher := services.NewDispatcher()
//	if err := dispatcher.Assign(order, staffMember); err != nil {
//	    // order already delivered, or an aggregate is invalid
//	    return err
//	}
//	// persist order and staffMember in one unit of work
type Dispatcher struct{}

// NewDispatcher creates a new Dispatcher instance.
func NewDispatcher() Dispatcher {
	return Dispatcher{}
}

// Assign binds the order to the staff member.
//
// Validates both aggregates, then applies the paired mutation: the order
// records the staff reference and is forced to OutForDelivery, the staff
// member is marked Busy with the order reference. On any error both
// aggregates are left unchanged.
func (d Dispatcher) Assign(o *order.Order, s *staff.Staff) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	// ValidateAssign runs before any mutation so a failure leaves the pair
	// untouched.
	if err := o.Status().ValidateAssign(); err != nil {
		return err
	}

	if err := o.AssignTo(s.ID()); err != nil {
		return err
	}
	if err := s.MarkBusy(o.ID()); err != nil {
		return err
	}

	return nil
}
