// Package order contains the Order aggregate and its value objects.
//
// An Order is placed from a cart snapshot and then progresses through a
// fixed lifecycle: Pending, Packed, OutForDelivery, Delivered. For instant
// orders the lifecycle clock drives that progression by decrementing the
// ETA countdown once per simulated minute and re-deriving the status from
// fixed thresholds. Scheduled orders carry a customer-chosen delivery time
// instead and are exempt from the countdown.
//
// The aggregate exposes exactly three mutations:
//
//   - Tick: the clock's time-driven advancement (forward-only)
//   - ForceStatus: the admin correction escape hatch
//   - AssignTo: binding delivery staff, which forces OutForDelivery
//
// Everything else on a placed order, in particular the item snapshot and the
// total, is immutable.
package order
