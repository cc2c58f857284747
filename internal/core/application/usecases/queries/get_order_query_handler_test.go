package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitcart/internal/adapters/out/memory"
	"kitcart/internal/core/application/usecases/queries"
	"kitcart/internal/core/domain/model/cart"
	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/core/domain/model/order"
	"kitcart/internal/core/domain/model/staff"
	"kitcart/internal/pkg/errs"
)

func seedLineItem(t *testing.T, name string, price, quantity int) order.LineItem {
	t.Helper()

	unitPrice, err := kernel.NewMoney(price)
	require.NoError(t, err)
	item, err := order.NewLineItem(kernel.NewUUID(), order.KindRecipe, name, unitPrice, quantity, "")
	require.NoError(t, err)
	return item
}

func seedOrder(t *testing.T, store *memory.Store, mode order.DeliveryMode) *order.Order {
	t.Helper()

	placedAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	var scheduledFor *time.Time
	if mode == order.ModeScheduled {
		at := placedAt.Add(4 * time.Hour)
		scheduledFor = &at
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		[]order.LineItem{seedLineItem(t, "Paneer Tikka Kit", 350, 2)},
		mode,
		scheduledFor,
		placedAt,
	)
	require.NoError(t, err)

	uow := memory.NewUnitOfWorkFactory(store).Create()
	require.NoError(t, uow.Begin(context.Background()))
	require.NoError(t, uow.OrderRepository().Add(context.Background(), aggregate))
	require.NoError(t, uow.Commit(context.Background()))
	return aggregate
}

func seedStaff(t *testing.T, store *memory.Store, name string, busy bool) *staff.Staff {
	t.Helper()

	member, err := staff.NewStaff(kernel.NewUUID(), name, "+91-9000000001")
	require.NoError(t, err)
	if busy {
		require.NoError(t, member.MarkBusy(kernel.NewUUID()))
	}

	uow := memory.NewUnitOfWorkFactory(store).Create()
	require.NoError(t, uow.Begin(context.Background()))
	require.NoError(t, uow.StaffRepository().Add(context.Background(), member))
	require.NoError(t, uow.Commit(context.Background()))
	return member
}

func seedCart(t *testing.T, store *memory.Store, items ...order.LineItem) {
	t.Helper()

	basket := cart.NewCart()
	for _, item := range items {
		require.NoError(t, basket.AddItem(item))
	}

	uow := memory.NewUnitOfWorkFactory(store).Create()
	require.NoError(t, uow.Begin(context.Background()))
	require.NoError(t, uow.CartRepository().Save(context.Background(), basket))
	require.NoError(t, uow.Commit(context.Background()))
}

func TestGetOrderQueryHandler_Handle_Success(t *testing.T) {
	// Given
	store := memory.NewStore()
	aggregate := seedOrder(t, store, order.ModeInstant)

	// When
	query, err := queries.NewGetOrderQuery(aggregate.ID())
	require.NoError(t, err)
	view, err := queries.NewGetOrderQueryHandler(store).Handle(context.Background(), query)

	// Then
	require.NoError(t, err)
	assert.Equal(t, aggregate.ID().String(), view.ID)
	assert.Equal(t, "Pending", view.Status)
	assert.Equal(t, "Instant", view.DeliveryMode)
	assert.Equal(t, 2*350+order.DeliverySurcharge, view.Total)
	assert.Equal(t, order.InitialInstantETAMinutes, view.ETAMinutes)
	assert.Nil(t, view.AssignedStaffID)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Paneer Tikka Kit", view.Items[0].Name)
	assert.Equal(t, 700, view.Items[0].Subtotal)
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	// Given
	store := memory.NewStore()

	// When
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	require.NoError(t, err)
	_, err = queries.NewGetOrderQueryHandler(store).Handle(context.Background(), query)

	// Then
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetOrderQueryHandler_Handle_ValidationError(t *testing.T) {
	// Given
	var query queries.GetOrderQuery // not constructed properly

	// When
	_, err := queries.NewGetOrderQueryHandler(memory.NewStore()).Handle(context.Background(), query)

	// Then
	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
