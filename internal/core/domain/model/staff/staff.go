package staff

import (
	"errors"

	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/pkg/errs"
	"kitcart/internal/pkg/guard"
)

// Domain errors for staff operations.
var (
	// ErrNameIsRequired is returned when creating staff without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when creating staff without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrStaffIsNotConstructed is returned when using an improperly
	// initialized Staff.
	ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff constructor")
)

// Staff represents a delivery staff member. It is an aggregate root that
// tracks identity and availability: a staff member is either Available or
// Busy, and when Busy carries a weak reference to the order being delivered.
//
// Business rules:
//   - currentOrderID is present iff status is Busy
//   - MarkBusy does not guard against double-assignment; the dispatcher is
//     responsible for invoking it exactly once per binding
//   - the admin Toggle clears currentOrderID when flipping to Available even
//     if the order is still logically in progress; that is a manual
//     override, not an automated release
//   - delivery of the assigned order does not free the staff member;
//     only a toggle does
type Staff struct {
	// id uniquely identifies the staff member
	id kernel.UUID
	// name is the staff member's display name
	name string
	// phone is the staff member's contact number
	phone string
	// status is the current availability state
	status Status
	// currentOrderID is a weak reference to the assigned order, set iff Busy
	currentOrderID *kernel.UUID
	// guard ensures the staff member was properly constructed
	guard guard.ConstructorGuard
}

// NewStaff creates a new Staff member in Available status.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: display name (must be non-empty)
//   - phone: contact number (must be non-empty)
func NewStaff(id kernel.UUID, name, phone string) (*Staff, error) {
	s := &Staff{
		status: StatusAvailable,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStaff reconstructs a Staff member from stored state, preserving
// availability and the current order binding. Used by the storage adapter.
func RestoreStaff(
	id kernel.UUID,
	name, phone string,
	status Status,
	currentOrderID *kernel.UUID,
) (*Staff, error) {
	s := &Staff{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setPhone(phone),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if currentOrderID != nil {
		if err := currentOrderID.Validate(); err != nil {
			return nil, err
		}
		orderID := *currentOrderID
		s.currentOrderID = &orderID
	}
	s.status = status

	return s, nil
}

// Validate checks if the Staff was properly constructed.
func (s *Staff) Validate() error {
	if s == nil {
		return ErrStaffIsNotConstructed
	}
	return s.guard.Validate(ErrStaffIsNotConstructed)
}

// IsEqual compares two staff members by their unique identifiers.
func (s *Staff) IsEqual(other *Staff) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the staff member's unique identifier.
func (s *Staff) ID() kernel.UUID {
	return s.id
}

// Name returns the staff member's display name.
func (s *Staff) Name() string {
	return s.name
}

// Phone returns the staff member's contact number.
func (s *Staff) Phone() string {
	return s.phone
}

// Status returns the current availability state.
func (s *Staff) Status() Status {
	return s.status
}

// CurrentOrder returns the ID of the order currently being delivered.
// Returns nil when the staff member is Available.
func (s *Staff) CurrentOrder() *kernel.UUID {
	if s.currentOrderID == nil {
		return nil
	}
	orderID := *s.currentOrderID
	return &orderID
}

// IsAvailable reports whether the staff member can take a new order.
func (s *Staff) IsAvailable() bool {
	return s.status == StatusAvailable
}

// MarkBusy binds the staff member to an order and flips status to Busy.
// There is no guard against double-assignment; the dispatcher must ensure a
// single invocation per binding.
func (s *Staff) MarkBusy(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	s.status = StatusBusy
	s.currentOrderID = &orderID
	return nil
}

// MarkAvailable flips status to Available and clears the order binding.
func (s *Staff) MarkAvailable() {
	s.status = StatusAvailable
	s.currentOrderID = nil
}

// Toggle flips availability as a manual admin override.
// Flipping to Available clears currentOrderID even if the assigned order is
// still in progress.
func (s *Staff) Toggle() {
	if s.status == StatusBusy {
		s.MarkAvailable()
		return
	}
	s.status = StatusBusy
}

// setID validates and sets the staff member's unique identifier.
func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

// setName validates and sets the display name.
func (s *Staff) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

// setPhone validates and sets the contact number.
func (s *Staff) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	s.phone = phone
	return nil
}
