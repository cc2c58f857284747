package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitcart/internal/adapters/out/memory"
	"kitcart/internal/core/application/usecases/queries"
)

func TestGetCartQueryHandler_Handle_Success(t *testing.T) {
	// Given
	store := memory.NewStore()
	seedCart(t, store,
		seedLineItem(t, "Paneer Tikka Kit", 350, 2),
		seedLineItem(t, "Garlic Naan Add-on", 60, 1),
	)

	// When
	view, err := queries.NewGetCartQueryHandler(store).Handle(context.Background(), queries.NewGetCartQuery())

	// Then
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, 700, view.Items[0].Subtotal)
	assert.Equal(t, 760, view.Subtotal)
}

func TestGetCartQueryHandler_Handle_EmptyCart(t *testing.T) {
	// Given
	store := memory.NewStore()

	// When
	view, err := queries.NewGetCartQueryHandler(store).Handle(context.Background(), queries.NewGetCartQuery())

	// Then
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.Subtotal)
}
