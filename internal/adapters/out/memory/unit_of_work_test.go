package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitcart/internal/core/domain/model/cart"
	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/core/domain/model/order"
	"kitcart/internal/core/domain/model/staff"
	"kitcart/internal/core/domain/services"
	"kitcart/internal/pkg/errs"
)

func newTestLineItem(t *testing.T, name string, price, quantity int) order.LineItem {
	t.Helper()

	unitPrice, err := kernel.NewMoney(price)
	require.NoError(t, err)
	item, err := order.NewLineItem(kernel.NewUUID(), order.KindRecipe, name, unitPrice, quantity, "")
	require.NoError(t, err)
	return item
}

func newTestOrder(t *testing.T, mode order.DeliveryMode) *order.Order {
	t.Helper()

	placedAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	var scheduledFor *time.Time
	if mode == order.ModeScheduled {
		at := placedAt.Add(4 * time.Hour)
		scheduledFor = &at
	}

	items := []order.LineItem{newTestLineItem(t, "Paneer Tikka Kit", 350, 2)}
	aggregate, err := order.NewOrder(kernel.NewUUID(), items, mode, scheduledFor, placedAt)
	require.NoError(t, err)
	return aggregate
}

func newTestStaff(t *testing.T, name string) *staff.Staff {
	t.Helper()

	aggregate, err := staff.NewStaff(kernel.NewUUID(), name, "+91-9000000001")
	require.NoError(t, err)
	return aggregate
}

func Test_UnitOfWork_commit_publishes_staged_writes(t *testing.T) {
	// Given
	store := NewStore()
	factory := NewUnitOfWorkFactory(store)
	aggregate := newTestOrder(t, order.ModeInstant)

	// When
	uow := factory.Create()
	require.NoError(t, uow.Begin(context.Background()))
	require.NoError(t, uow.OrderRepository().Add(context.Background(), aggregate))
	require.NoError(t, uow.Commit(context.Background()))

	// Then
	restored, err := store.GetOrder(aggregate.ID())
	require.NoError(t, err)
	assert.True(t, restored.IsEqual(aggregate))
	assert.Equal(t, order.StatusPending, restored.Status())
	assert.Equal(t, order.InitialInstantETAMinutes, restored.ETAMinutes())
}

func Test_UnitOfWork_rollback_discards_staged_writes(t *testing.T) {
	// Given
	store := NewStore()
	factory := NewUnitOfWorkFactory(store)
	aggregate := newTestOrder(t, order.ModeInstant)

	// When
	uow := factory.Create()
	require.NoError(t, uow.Begin(context.Background()))
	require.NoError(t, uow.OrderRepository().Add(context.Background(), aggregate))
	require.NoError(t, uow.Rollback(context.Background()))

	// Then
	_, err := store.GetOrder(aggregate.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func Test_UnitOfWork_rollback_after_commit_is_noop(t *testing.T) {
	// Given
	store := NewStore()
	factory := NewUnitOfWorkFactory(store)
	aggregate := newTestOrder(t, order.ModeInstant)

	uow := factory.Create()
	require.NoError(t, uow.Begin(context.Background()))
	require.NoError(t, uow.OrderRepository().Add(context.Background(), aggregate))
	require.NoError(t, uow.Commit(context.Background()))

	// When
	err := uow.Rollback(context.Background())

	// Then
	require.NoError(t, err)
	_, err = store.GetOrder(aggregate.ID())
	assert.NoError(t, err)
}

func Test_UnitOfWork_commit_without_begin_fails(t *testing.T) {
	// Given
	factory := NewUnitOfWorkFactory(NewStore())
	uow := factory.Create()

	// When
	err := uow.Commit(context.Background())

	// Then
	assert.ErrorIs(t, err, ErrNoActiveTransaction)
}

func Test_UnitOfWork_repositories_require_active_transaction(t *testing.T) {
	// Given
	factory := NewUnitOfWorkFactory(NewStore())
	uow := factory.Create()

	// When
	_, errGet := uow.OrderRepository().Get(context.Background(), kernel.NewUUID())
	errAdd := uow.StaffRepository().Add(context.Background(), newTestStaff(t, "Deepak"))
	_, errCart := uow.CartRepository().Get(context.Background())

	// Then
	assert.ErrorIs(t, errGet, ErrNoActiveTransaction)
	assert.ErrorIs(t, errAdd, ErrNoActiveTransaction)
	assert.ErrorIs(t, errCart, ErrNoActiveTransaction)
}

func Test_UnitOfWork_assignment_publishes_both_sides_atomically(t *testing.T) {
	// Given
	store := NewStore()
	factory := NewUnitOfWorkFactory(store)
	aggregate := newTestOrder(t, order.ModeInstant)
	courier := newTestStaff(t, "Deepak")

	seed := factory.Create()
	require.NoError(t, seed.Begin(context.Background()))
	require.NoError(t, seed.OrderRepository().Add(context.Background(), aggregate))
	require.NoError(t, seed.StaffRepository().Add(context.Background(), courier))
	require.NoError(t, seed.Commit(context.Background()))

	// When
	uow := factory.Create()
	require.NoError(t, uow.Begin(context.Background()))
	stagedOrder, err := uow.OrderRepository().Get(context.Background(), aggregate.ID())
	require.NoError(t, err)
	stagedStaff, err := uow.StaffRepository().Get(context.Background(), courier.ID())
	require.NoError(t, err)

	dispatcher := services.NewDispatcher()
	require.NoError(t, dispatcher.Assign(stagedOrder, stagedStaff))
	require.NoError(t, uow.OrderRepository().Update(context.Background(), stagedOrder))
	require.NoError(t, uow.StaffRepository().Update(context.Background(), stagedStaff))
	require.NoError(t, uow.Commit(context.Background()))

	// Then
	storedOrder, err := store.GetOrder(aggregate.ID())
	require.NoError(t, err)
	assert.Equal(t, order.StatusOutForDelivery, storedOrder.Status())
	require.NotNil(t, storedOrder.AssignedStaff())
	assert.True(t, storedOrder.AssignedStaff().IsEqual(courier.ID()))

	roster, err := store.AllStaff()
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, staff.StatusBusy, roster[0].Status())
	require.NotNil(t, roster[0].CurrentOrder())
	assert.True(t, roster[0].CurrentOrder().IsEqual(aggregate.ID()))
}

func Test_UnitOfWork_delivery_does_not_release_staff(t *testing.T) {
	// Given
	store := NewStore()
	factory := NewUnitOfWorkFactory(store)
	aggregate := newTestOrder(t, order.ModeInstant)
	courier := newTestStaff(t, "Deepak")

	seed := factory.Create()
	require.NoError(t, seed.Begin(context.Background()))
	require.NoError(t, seed.OrderRepository().Add(context.Background(), aggregate))
	require.NoError(t, seed.StaffRepository().Add(context.Background(), courier))
	dispatcher := services.NewDispatcher()
	require.NoError(t, dispatcher.Assign(aggregate, courier))
	require.NoError(t, seed.OrderRepository().Update(context.Background(), aggregate))
	require.NoError(t, seed.StaffRepository().Update(context.Background(), courier))
	require.NoError(t, seed.Commit(context.Background()))

	// When: the order runs all the way down to Delivered
	uow := factory.Create()
	require.NoError(t, uow.Begin(context.Background()))
	staged, err := uow.OrderRepository().Get(context.Background(), aggregate.ID())
	require.NoError(t, err)
	for staged.Status() != order.StatusDelivered {
		staged.Tick()
	}
	require.NoError(t, uow.OrderRepository().Update(context.Background(), staged))
	require.NoError(t, uow.Commit(context.Background()))

	// Then: the courier stays busy until an admin toggles them
	roster, err := store.AllStaff()
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, staff.StatusBusy, roster[0].Status())
	require.NotNil(t, roster[0].CurrentOrder())
	assert.True(t, roster[0].CurrentOrder().IsEqual(aggregate.ID()))

	available, err := store.AvailableStaff()
	require.NoError(t, err)
	assert.Empty(t, available)
}

func Test_OrderRepository_add_keeps_newest_first(t *testing.T) {
	// Given
	store := NewStore()
	factory := NewUnitOfWorkFactory(store)
	first := newTestOrder(t, order.ModeInstant)
	second := newTestOrder(t, order.ModeInstant)

	// When
	uow := factory.Create()
	require.NoError(t, uow.Begin(context.Background()))
	require.NoError(t, uow.OrderRepository().Add(context.Background(), first))
	require.NoError(t, uow.OrderRepository().Add(context.Background(), second))
	require.NoError(t, uow.Commit(context.Background()))

	// Then
	active, err := store.ActiveOrders(order.ModeInstant)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.True(t, active[0].ID().IsEqual(second.ID()))
	assert.True(t, active[1].ID().IsEqual(first.ID()))
}

func Test_OrderRepository_add_rejects_duplicate_id(t *testing.T) {
	// Given
	factory := NewUnitOfWorkFactory(NewStore())
	aggregate := newTestOrder(t, order.ModeInstant)

	uow := factory.Create()
	require.NoError(t, uow.Begin(context.Background()))
	require.NoError(t, uow.OrderRepository().Add(context.Background(), aggregate))

	// When
	err := uow.OrderRepository().Add(context.Background(), aggregate)

	// Then
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.NoError(t, uow.Rollback(context.Background()))
}

func Test_OrderRepository_update_unknown_order_fails(t *testing.T) {
	// Given
	factory := NewUnitOfWorkFactory(NewStore())
	aggregate := newTestOrder(t, order.ModeInstant)

	uow := factory.Create()
	require.NoError(t, uow.Begin(context.Background()))

	// When
	err := uow.OrderRepository().Update(context.Background(), aggregate)

	// Then
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.NoError(t, uow.Rollback(context.Background()))
}

func Test_OrderRepository_get_all_active_filters_mode_and_delivered(t *testing.T) {
	// Given
	store := NewStore()
	factory := NewUnitOfWorkFactory(store)
	instant := newTestOrder(t, order.ModeInstant)
	scheduled := newTestOrder(t, order.ModeScheduled)
	delivered := newTestOrder(t, order.ModeInstant)
	require.NoError(t, delivered.ForceStatus(order.StatusDelivered))

	uow := factory.Create()
	require.NoError(t, uow.Begin(context.Background()))
	require.NoError(t, uow.OrderRepository().Add(context.Background(), instant))
	require.NoError(t, uow.OrderRepository().Add(context.Background(), scheduled))
	require.NoError(t, uow.OrderRepository().Add(context.Background(), delivered))

	// When
	active, err := uow.OrderRepository().GetAllActive(context.Background(), order.ModeInstant)

	// Then
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.True(t, active[0].ID().IsEqual(instant.ID()))
	require.NoError(t, uow.Rollback(context.Background()))
}

func Test_StaffRepository_get_all_available_skips_busy(t *testing.T) {
	// Given
	store := NewStore()
	factory := NewUnitOfWorkFactory(store)
	free := newTestStaff(t, "Deepak")
	busy := newTestStaff(t, "Sana")
	require.NoError(t, busy.MarkBusy(kernel.NewUUID()))

	uow := factory.Create()
	require.NoError(t, uow.Begin(context.Background()))
	require.NoError(t, uow.StaffRepository().Add(context.Background(), free))
	require.NoError(t, uow.StaffRepository().Add(context.Background(), busy))
	require.NoError(t, uow.Commit(context.Background()))

	// When
	available, err := store.AvailableStaff()

	// Then
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.True(t, available[0].ID().IsEqual(free.ID()))
}

func Test_CartRepository_save_and_get_round_trip(t *testing.T) {
	// Given
	store := NewStore()
	factory := NewUnitOfWorkFactory(store)

	basket := cart.NewCart()
	require.NoError(t, basket.AddItem(newTestLineItem(t, "Paneer Tikka Kit", 350, 2)))
	require.NoError(t, basket.AddItem(newTestLineItem(t, "Garlic Naan Add-on", 60, 1)))

	// When
	uow := factory.Create()
	require.NoError(t, uow.Begin(context.Background()))
	require.NoError(t, uow.CartRepository().Save(context.Background(), basket))
	require.NoError(t, uow.Commit(context.Background()))

	// Then
	restored, err := store.Cart()
	require.NoError(t, err)
	require.Len(t, restored.Items(), 2)
	subtotal, err := restored.Subtotal()
	require.NoError(t, err)
	assert.Equal(t, 760, subtotal.Amount())
}

func Test_Store_starts_empty(t *testing.T) {
	// Given
	store := NewStore()

	// When
	active, errActive := store.ActiveOrders(order.ModeInstant)
	roster, errRoster := store.AllStaff()
	basket, errCart := store.Cart()

	// Then
	require.NoError(t, errActive)
	require.NoError(t, errRoster)
	require.NoError(t, errCart)
	assert.Empty(t, active)
	assert.Empty(t, roster)
	assert.True(t, basket.IsEmpty())
}
