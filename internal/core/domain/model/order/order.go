package order

import (
	"errors"
	"fmt"
	"time"

	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/pkg/errs"
	"kitcart/internal/pkg/guard"
)

const (
	// DeliverySurcharge is the fixed delivery and tax surcharge added to
	// every order total at placement, in whole currency units.
	DeliverySurcharge = 49

	// InitialInstantETAMinutes is the ETA countdown start for instant orders.
	InitialInstantETAMinutes = 60

	// packedETAThreshold is the ETA below which a pending order is packed.
	packedETAThreshold = 45
	// outForDeliveryETAThreshold is the ETA below which a packed order
	// leaves for delivery.
	outForDeliveryETAThreshold = 30
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrOrderHasNoItems is returned when placement is attempted with an
	// empty item snapshot.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("items")
	// ErrScheduledTimeRequired is returned when a scheduled order has no
	// delivery time.
	ErrScheduledTimeRequired = errs.NewValueIsRequiredError("scheduledFor")
)

// Order represents a placed food-kit order. It is the aggregate root that
// manages the order lifecycle from placement through assignment to delivery.
//
// Order follows these invariants:
//   - Items and total are an immutable snapshot taken at placement time
//   - Status only moves forward under the lifecycle clock
//   - Scheduled orders never participate in ETA auto-progression
//   - Delivered is terminal for the clock and for assignment
//   - ETA minutes never go below zero
//   - Can only be created through NewOrder or RestoreOrder
//
// The admin status override (ForceStatus) deliberately bypasses the
// forward-only rule; it still rejects values outside the enumerated set.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// items is the immutable cart snapshot taken at placement time
	items []LineItem

	// total is the monetary amount computed at placement, surcharge included
	total kernel.Money

	// status is the current state in the order lifecycle
	status Status

	// placedAt is the creation timestamp
	placedAt time.Time

	// deliveryMode distinguishes instant from scheduled orders
	deliveryMode DeliveryMode

	// scheduledFor is the requested delivery time, set iff scheduled
	scheduledFor *time.Time

	// etaMinutes is the remaining countdown, meaningful for instant orders
	etaMinutes int

	// assignedStaffID is a weak reference to assigned delivery staff
	assignedStaffID *kernel.UUID

	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order from a cart snapshot.
//
// The items are deep-copied so later mutation of the source slice cannot
// affect the placed order. The total is computed as the sum of all line
// subtotals plus DeliverySurcharge. Instant orders start with a 60 minute
// ETA; scheduled orders require a future scheduledFor and carry no countdown.
//
// Parameters:
//   - id: unique identifier for the order
//   - items: snapshot of cart lines, must be non-empty
//   - mode: Instant or Scheduled
//   - scheduledFor: delivery time, required iff mode is Scheduled
//   - placedAt: placement timestamp
//
// Returns the order in Pending status, or a validation error.
func NewOrder(
	id kernel.UUID,
	items []LineItem,
	mode DeliveryMode,
	scheduledFor *time.Time,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		status: StatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setDeliveryMode(mode),
	); err != nil {
		return nil, err
	}

	if err := o.setSchedule(scheduledFor, placedAt); err != nil {
		return nil, err
	}

	total, err := computeTotal(o.items)
	if err != nil {
		return nil, err
	}
	o.total = total

	o.placedAt = placedAt
	if mode == ModeInstant {
		o.etaMinutes = InitialInstantETAMinutes
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from stored state.
// Unlike NewOrder it does not recompute the total or reset the lifecycle;
// it is used by the storage adapter to materialize previously placed orders
// with their status, countdown and assignment intact.
func RestoreOrder(
	id kernel.UUID,
	items []LineItem,
	total kernel.Money,
	status Status,
	mode DeliveryMode,
	scheduledFor *time.Time,
	placedAt time.Time,
	etaMinutes int,
	assignedStaffID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setDeliveryMode(mode),
		total.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if etaMinutes < 0 || etaMinutes > InitialInstantETAMinutes {
		return nil, errs.NewValueIsOutOfRangeError("etaMinutes", etaMinutes, 0, InitialInstantETAMinutes)
	}
	if assignedStaffID != nil {
		if err := assignedStaffID.Validate(); err != nil {
			return nil, err
		}
		staffID := *assignedStaffID
		o.assignedStaffID = &staffID
	}
	if scheduledFor != nil {
		at := *scheduledFor
		o.scheduledFor = &at
	}

	o.total = total
	o.status = status
	o.placedAt = placedAt
	o.etaMinutes = etaMinutes

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Items returns a copy of the item snapshot taken at placement time.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// Total returns the order total computed at placement, surcharge included.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PlacedAt returns the placement timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// DeliveryMode returns the order's delivery mode.
func (o *Order) DeliveryMode() DeliveryMode {
	return o.deliveryMode
}

// ScheduledFor returns the requested delivery time for scheduled orders.
// Returns nil for instant orders.
func (o *Order) ScheduledFor() *time.Time {
	if o.scheduledFor == nil {
		return nil
	}
	at := *o.scheduledFor
	return &at
}

// ETAMinutes returns the remaining minutes until delivery.
// Meaningful only for instant orders; always zero for scheduled ones.
func (o *Order) ETAMinutes() int {
	return o.etaMinutes
}

// AssignedStaff returns the ID of the assigned delivery staff.
// Returns nil if no staff is assigned.
func (o *Order) AssignedStaff() *kernel.UUID {
	if o.assignedStaffID == nil {
		return nil
	}
	staffID := *o.assignedStaffID
	return &staffID
}

// IsActive reports whether the order still participates in tracking,
// meaning it has not reached Delivered.
func (o *Order) IsActive() bool {
	return o.status != StatusDelivered
}

// Tick advances the order by one simulated minute.
//
// Only instant orders that are not yet delivered progress; scheduled and
// delivered orders are left untouched. The ETA is decremented with a floor
// of zero, then the status is re-derived from fixed thresholds, each rule
// only ever advancing forward:
//
//	eta < 45 and Pending         -> Packed
//	eta < 30 and Packed          -> OutForDelivery
//	eta <= 0 and OutForDelivery  -> Delivered
//
// Under the default 60 minute starting ETA and one-minute ticks a single
// tick crosses at most one boundary. The rules are applied in order, so an
// order parked below several thresholds by an admin override catches up
// across consecutive rules in one tick.
func (o *Order) Tick() {
	if o.deliveryMode != ModeInstant || o.status == StatusDelivered {
		return
	}

	if o.etaMinutes > 0 {
		o.etaMinutes--
	}

	if o.etaMinutes < packedETAThreshold && o.status == StatusPending {
		o.status = StatusPacked
	}
	if o.etaMinutes < outForDeliveryETAThreshold && o.status == StatusPacked {
		o.status = StatusOutForDelivery
	}
	if o.etaMinutes <= 0 && o.status == StatusOutForDelivery {
		o.status = StatusDelivered
	}
}

// ForceStatus sets the order status to an explicit value.
//
// This is the admin correction escape hatch: it does not enforce the
// forward-only ordering the lifecycle clock follows, and it may move an
// order off the Delivered state. The value itself must be one of the four
// legal statuses; anything else is rejected.
func (o *Order) ForceStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// AssignTo binds the order to a delivery staff member.
//
// Assignment always implies dispatch has begun: the status is forced to
// OutForDelivery even if the order was still Pending or Packed. Delivered
// orders cannot be assigned.
//
// The paired staff-side mutation (marking the staff member busy) is
// coordinated by the dispatcher service; both writes must commit together.
func (o *Order) AssignTo(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	if err := o.status.ValidateAssign(); err != nil {
		return err
	}

	o.assignedStaffID = &staffID
	o.status = StatusOutForDelivery
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setItems validates and deep-copies the item snapshot.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

// setDeliveryMode validates and sets the delivery mode.
func (o *Order) setDeliveryMode(mode DeliveryMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	o.deliveryMode = mode
	return nil
}

// setSchedule enforces the mode/schedule pairing: scheduled orders require
// a future delivery time, instant orders must not carry one.
func (o *Order) setSchedule(scheduledFor *time.Time, placedAt time.Time) error {
	switch o.deliveryMode {
	case ModeScheduled:
		if scheduledFor == nil {
			return ErrScheduledTimeRequired
		}
		if !scheduledFor.After(placedAt) {
			return errs.NewValueIsInvalidErrorWithCause(
				"scheduledFor",
				fmt.Errorf("%s is not in the future", scheduledFor.Format(time.RFC3339)),
			)
		}
		at := *scheduledFor
		o.scheduledFor = &at
	case ModeInstant:
		if scheduledFor != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"scheduledFor",
				errors.New("instant orders cannot carry a schedule time"),
			)
		}
	case ModeUnknown:
		return o.deliveryMode.Validate()
	}
	return nil
}

// computeTotal sums the line subtotals and adds the delivery surcharge.
func computeTotal(items []LineItem) (kernel.Money, error) {
	total, err := kernel.NewMoney(DeliverySurcharge)
	if err != nil {
		return kernel.Money{}, err
	}

	for _, item := range items {
		subtotal, subErr := item.Subtotal()
		if subErr != nil {
			return kernel.Money{}, subErr
		}
		total, err = total.Add(subtotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}
