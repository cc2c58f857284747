package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitcart/internal/adapters/out/memory"
	"kitcart/internal/core/application/usecases/queries"
)

func TestGetAllStaffQueryHandler_Handle_ReturnsRosterInSeedingOrder(t *testing.T) {
	// Given
	store := memory.NewStore()
	seedStaff(t, store, "Deepak", false)
	busy := seedStaff(t, store, "Sana", true)
	seedStaff(t, store, "Ravi", false)

	// When
	views, err := queries.NewGetAllStaffQueryHandler(store).Handle(context.Background(), queries.NewGetAllStaffQuery())

	// Then
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "Deepak", views[0].Name)
	assert.Equal(t, "Sana", views[1].Name)
	assert.Equal(t, "Ravi", views[2].Name)
	assert.Equal(t, "Busy", views[1].Status)
	assert.NotNil(t, views[1].CurrentOrderID)
	assert.Equal(t, busy.ID().String(), views[1].ID)
}

func TestGetAvailableStaffQueryHandler_Handle_ExcludesBusy(t *testing.T) {
	// Given
	store := memory.NewStore()
	free := seedStaff(t, store, "Deepak", false)
	seedStaff(t, store, "Sana", true)

	// When
	views, err := queries.NewGetAvailableStaffQueryHandler(store).
		Handle(context.Background(), queries.NewGetAvailableStaffQuery())

	// Then
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, free.ID().String(), views[0].ID)
	assert.Equal(t, "Available", views[0].Status)
	assert.Nil(t, views[0].CurrentOrderID)
}

func TestGetAllStaffQueryHandler_Handle_ValidationError(t *testing.T) {
	// Given
	var query queries.GetAllStaffQuery // not constructed properly

	// When
	_, err := queries.NewGetAllStaffQueryHandler(memory.NewStore()).Handle(context.Background(), query)

	// Then
	require.ErrorIs(t, err, queries.ErrGetAllStaffQueryIsNotConstructed)
}
