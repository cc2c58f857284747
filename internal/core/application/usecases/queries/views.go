package queries

import (
	"time"

	"kitcart/internal/core/domain/model/order"
	"kitcart/internal/core/domain/model/staff"
)

// LineItemView is the read model for a single order or cart line.
type LineItemView struct {
	ItemID    string
	Kind      string
	Name      string
	UnitPrice int
	Quantity  int
	ImageRef  string
	Subtotal  int
}

// OrderView is the read model for a placed order.
type OrderView struct {
	ID              string
	Items           []LineItemView
	Total           int
	Status          string
	PlacedAt        time.Time
	DeliveryMode    string
	ScheduledFor    *time.Time
	ETAMinutes      int
	AssignedStaffID *string
}

// StaffView is the read model for a staff roster entry.
type StaffView struct {
	ID             string
	Name           string
	Phone          string
	Status         string
	CurrentOrderID *string
}

// CartView is the read model for the active cart.
type CartView struct {
	Items    []LineItemView
	Subtotal int
}

func newLineItemView(item order.LineItem) (LineItemView, error) {
	subtotal, err := item.Subtotal()
	if err != nil {
		return LineItemView{}, err
	}

	return LineItemView{
		ItemID:    item.ItemID().String(),
		Kind:      item.Kind().String(),
		Name:      item.Name(),
		UnitPrice: item.UnitPrice().Amount(),
		Quantity:  item.Quantity(),
		ImageRef:  item.ImageRef(),
		Subtotal:  subtotal.Amount(),
	}, nil
}

func newOrderView(aggregate *order.Order) (OrderView, error) {
	items := make([]LineItemView, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		view, err := newLineItemView(item)
		if err != nil {
			return OrderView{}, err
		}
		items = append(items, view)
	}

	view := OrderView{
		ID:           aggregate.ID().String(),
		Items:        items,
		Total:        aggregate.Total().Amount(),
		Status:       aggregate.Status().String(),
		PlacedAt:     aggregate.PlacedAt(),
		DeliveryMode: aggregate.DeliveryMode().String(),
		ScheduledFor: aggregate.ScheduledFor(),
		ETAMinutes:   aggregate.ETAMinutes(),
	}

	if assigned := aggregate.AssignedStaff(); assigned != nil {
		id := assigned.String()
		view.AssignedStaffID = &id
	}

	return view, nil
}

func newStaffView(member *staff.Staff) StaffView {
	view := StaffView{
		ID:     member.ID().String(),
		Name:   member.Name(),
		Phone:  member.Phone(),
		Status: member.Status().String(),
	}

	if current := member.CurrentOrder(); current != nil {
		id := current.String()
		view.CurrentOrderID = &id
	}

	return view
}
