package queries

import (
	"context"
)

// GetCartQueryHandler reads the active cart from the backing store.
// The subtotal covers the cart lines only; the delivery surcharge is applied
// at checkout.
type GetCartQueryHandler struct {
	reader CartReader
}

// NewGetCartQueryHandler creates a handler for cart reads.
func NewGetCartQueryHandler(reader CartReader) GetCartQueryHandler {
	return GetCartQueryHandler{reader: reader}
}

// Handle executes the query.
func (h GetCartQueryHandler) Handle(_ context.Context, query GetCartQuery) (CartView, error) {
	if err := query.Validate(); err != nil {
		return CartView{}, err
	}

	basket, err := h.reader.Cart()
	if err != nil {
		return CartView{}, err
	}

	items := make([]LineItemView, 0, len(basket.Items()))
	for _, item := range basket.Items() {
		view, viewErr := newLineItemView(item)
		if viewErr != nil {
			return CartView{}, viewErr
		}
		items = append(items, view)
	}

	subtotal, err := basket.Subtotal()
	if err != nil {
		return CartView{}, err
	}

	return CartView{
		Items:    items,
		Subtotal: subtotal.Amount(),
	}, nil
}
