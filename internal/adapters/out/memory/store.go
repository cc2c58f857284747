// Package memory provides the in-memory implementation of the storage ports.
//
// All application state lives in a single Store guarded by one mutex. The
// unit of work acquires the mutex for the whole transaction and stages its
// writes on deep copies, publishing them on Commit. This linearizes every
// mutation in the system: the lifecycle clock's tick, staff assignment and
// admin overrides can never interleave partially, and the dual write in
// assignment is observed atomically.
//
// The read side (queries) takes the same mutex only long enough to copy out
// the state it needs.
package memory

import (
	"sync"

	"kitcart/internal/core/domain/model/cart"
	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/core/domain/model/order"
	"kitcart/internal/core/domain/model/staff"
	"kitcart/internal/pkg/errs"
)

// Store owns all in-memory application state: placed orders (newest first),
// the staff roster and the active cart. It is created once per process and
// passed by handle to every collaborator; nothing else holds order or staff
// state.
type Store struct {
	mu     sync.Mutex
	orders []orderRecord
	staff  []staffRecord
	cart   []lineItemRecord
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// GetOrder returns a copy of the order with the given id.
// Returns an error wrapping errs.ErrObjectNotFound for unknown ids.
func (s *Store) GetOrder(id kernel.UUID) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := id.Bytes()
	for _, record := range s.orders {
		if record.ID == raw {
			return orderFromRecord(record)
		}
	}
	return nil, errs.NewObjectNotFoundError("orderId", id.String())
}

// ActiveOrders returns copies of all orders with the given delivery mode
// that have not reached Delivered, newest first.
func (s *Store) ActiveOrders(mode order.DeliveryMode) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]*order.Order, 0)
	for _, record := range s.orders {
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

// AllStaff returns copies of the whole roster in seeding order.
func (s *Store) AllStaff() ([]*staff.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roster := make([]*staff.Staff, 0, len(s.staff))
	for _, record := range s.staff {
		aggregate, err := staffFromRecord(record)
		if err != nil {
			return nil, err
		}
		roster = append(roster, aggregate)
	}
	return roster, nil
}

// AvailableStaff returns copies of all staff currently free to take an order.
func (s *Store) AvailableStaff() ([]*staff.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	available := make([]*staff.Staff, 0)
	for _, record := range s.staff {
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

// Cart returns a copy of the active cart.
func (s *Store) Cart() (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cartFromRecords(s.cart)
}
