package services_test

import (
	"testing"
	"time"

	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/core/domain/model/order"
	"kitcart/internal/core/domain/model/staff"
	"kitcart/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instantOrder(t *testing.T) *order.Order {
	t.Helper()
	price, err := kernel.NewMoney(400)
	require.NoError(t, err)
	item, err := order.NewLineItem(kernel.NewUUID(), order.KindRecipe, "Chicken Biryani Kit", price, 1, "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), []order.LineItem{item}, order.ModeInstant, nil, time.Now())
	require.NoError(t, err)
	return o
}

func availableStaff(t *testing.T) *staff.Staff {
	t.Helper()
	s, err := staff.NewStaff(kernel.NewUUID(), "Amit Verma", "7766554433")
	require.NoError(t, err)
	return s
}

func TestDispatcher_Assign(t *testing.T) {
	t.Run("binds_order_and_staff_as_a_pair", func(t *testing.T) {
		// Given
		o := instantOrder(t)
		s := availableStaff(t)

		// When
		err := services.NewDispatcher().Assign(o, s)

		// Then all four facts hold simultaneously
		require.NoError(t, err)
		require.NotNil(t, o.AssignedStaff())
		assert.True(t, o.AssignedStaff().IsEqual(s.ID()))
		require.NotNil(t, s.CurrentOrder())
		assert.True(t, s.CurrentOrder().IsEqual(o.ID()))
		assert.Equal(t, staff.StatusBusy, s.Status())
		assert.Equal(t, order.StatusOutForDelivery, o.Status())
	})

	t.Run("assignment_forces_dispatch_from_pending", func(t *testing.T) {
		// Given an order that has not been packed yet
		o := instantOrder(t)
		require.Equal(t, order.StatusPending, o.Status())

		// When
		err := services.NewDispatcher().Assign(o, availableStaff(t))

		// Then the shortcut to OutForDelivery is taken
		require.NoError(t, err)
		assert.Equal(t, order.StatusOutForDelivery, o.Status())
	})

	t.Run("delivered_order_leaves_both_aggregates_unchanged", func(t *testing.T) {
		// Given
		o := instantOrder(t)
		require.NoError(t, o.ForceStatus(order.StatusDelivered))
		s := availableStaff(t)

		// When
		err := services.NewDispatcher().Assign(o, s)

		// Then
		require.Error(t, err)
		assert.Nil(t, o.AssignedStaff())
		assert.True(t, s.IsAvailable())
		assert.Nil(t, s.CurrentOrder())
	})

	t.Run("zero_value_aggregates_are_rejected", func(t *testing.T) {
		dispatcher := services.NewDispatcher()

		require.Error(t, dispatcher.Assign(&order.Order{}, availableStaff(t)))
		require.Error(t, dispatcher.Assign(instantOrder(t), &staff.Staff{}))
	})
}
