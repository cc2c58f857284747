package http

import (
	"time"

	"kitcart/internal/core/application/usecases/queries"
)

// Error is the uniform error payload for all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type addCartItemRequest struct {
	ItemID    string `json:"itemId"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	ImageRef  string `json:"imageRef,omitempty"`
}

type changeQuantityRequest struct {
	Delta int `json:"delta"`
}

type placeOrderRequest struct {
	DeliveryMode string     `json:"deliveryMode"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"`
}

type placeOrderResponse struct {
	ID string `json:"id"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type assignStaffRequest struct {
	StaffID string `json:"staffId"`
}

type lineItemResponse struct {
	ItemID    string `json:"itemId"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	ImageRef  string `json:"imageRef,omitempty"`
	Subtotal  int    `json:"subtotal"`
}

type cartResponse struct {
	Items    []lineItemResponse `json:"items"`
	Subtotal int                `json:"subtotal"`
}

type orderResponse struct {
	ID              string             `json:"id"`
	Items           []lineItemResponse `json:"items"`
	Total           int                `json:"total"`
	Status          string             `json:"status"`
	PlacedAt        time.Time          `json:"placedAt"`
	DeliveryMode    string             `json:"deliveryMode"`
	ScheduledFor    *time.Time         `json:"scheduledFor,omitempty"`
	ETAMinutes      int                `json:"etaMinutes"`
	AssignedStaffID *string            `json:"assignedStaffId,omitempty"`
}

type staffResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Status         string  `json:"status"`
	CurrentOrderID *string `json:"currentOrderId,omitempty"`
}

func toLineItemResponses(views []queries.LineItemView) []lineItemResponse {
	items := make([]lineItemResponse, len(views))
	for i, view := range views {
		items[i] = lineItemResponse{
			ItemID:    view.ItemID,
			Kind:      view.Kind,
			Name:      view.Name,
			UnitPrice: view.UnitPrice,
			Quantity:  view.Quantity,
			ImageRef:  view.ImageRef,
			Subtotal:  view.Subtotal,
		}
	}
	return items
}

func toOrderResponse(view queries.OrderView) orderResponse {
	return orderResponse{
		ID:              view.ID,
		Items:           toLineItemResponses(view.Items),
		Total:           view.Total,
		Status:          view.Status,
		PlacedAt:        view.PlacedAt,
		DeliveryMode:    view.DeliveryMode,
		ScheduledFor:    view.ScheduledFor,
		ETAMinutes:      view.ETAMinutes,
		AssignedStaffID: view.AssignedStaffID,
	}
}

func toStaffResponses(views []queries.StaffView) []staffResponse {
	members := make([]staffResponse, len(views))
	for i, view := range views {
		members[i] = staffResponse{
			ID:             view.ID,
			Name:           view.Name,
			Phone:          view.Phone,
			Status:         view.Status,
			CurrentOrderID: view.CurrentOrderID,
		}
	}
	return members
}
