package memory

import (
	"time"

	"kitcart/internal/core/domain/model/cart"
	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/core/domain/model/order"
	"kitcart/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// Records are the storage representation of the aggregates, analogous to
// database rows: plain data with enum values flattened to strings. Mapping
// through records gives the store value semantics, so an aggregate handed
// out by a repository never aliases stored state.

type lineItemRecord struct {
	ItemID    uuid.UUID
	Kind      string
	Name      string
	UnitPrice int
	Quantity  int
	ImageRef  string
}

type orderRecord struct {
	ID              uuid.UUID
	Items           []lineItemRecord
	TotalAmount     int
	Status          string
	DeliveryMode    string
	ScheduledFor    *time.Time
	PlacedAt        time.Time
	ETAMinutes      int
	AssignedStaffID *uuid.UUID
}

type staffRecord struct {
	ID             uuid.UUID
	Name           string
	Phone          string
	Status         string
	CurrentOrderID *uuid.UUID
}

func lineItemToRecord(item order.LineItem) lineItemRecord {
	return lineItemRecord{
		ItemID:    item.ItemID().Bytes(),
		Kind:      item.Kind().String(),
		Name:      item.Name(),
		UnitPrice: item.UnitPrice().Amount(),
		Quantity:  item.Quantity(),
		ImageRef:  item.ImageRef(),
	}
}

func lineItemFromRecord(record lineItemRecord) (order.LineItem, error) {
	kind, err := order.ItemKindFromString(record.Kind)
	if err != nil {
		return order.LineItem{}, err
	}
	unitPrice, err := kernel.NewMoney(record.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}
	itemID, err := kernel.UUIDFromString(record.ItemID.String())
	if err != nil {
		return order.LineItem{}, err
	}
	return order.NewLineItem(itemID, kind, record.Name, unitPrice, record.Quantity, record.ImageRef)
}

func lineItemsToRecords(items []order.LineItem) []lineItemRecord {
	records := make([]lineItemRecord, len(items))
	for i, item := range items {
		records[i] = lineItemToRecord(item)
	}
	return records
}

func lineItemsFromRecords(records []lineItemRecord) ([]order.LineItem, error) {
	items := make([]order.LineItem, len(records))
	for i, record := range records {
		item, err := lineItemFromRecord(record)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

func orderToRecord(aggregate *order.Order) orderRecord {
	record := orderRecord{
		ID:           aggregate.ID().Bytes(),
		Items:        lineItemsToRecords(aggregate.Items()),
		TotalAmount:  aggregate.Total().Amount(),
		Status:       aggregate.Status().String(),
		DeliveryMode: aggregate.DeliveryMode().String(),
		ScheduledFor: aggregate.ScheduledFor(),
		PlacedAt:     aggregate.PlacedAt(),
		ETAMinutes:   aggregate.ETAMinutes(),
	}
	if staffID := aggregate.AssignedStaff(); staffID != nil {
		raw := staffID.Bytes()
		record.AssignedStaffID = &raw
	}
	return record
}

func orderFromRecord(record orderRecord) (*order.Order, error) {
	items, err := lineItemsFromRecords(record.Items)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(record.TotalAmount)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(record.Status)
	if err != nil {
		return nil, err
	}
	mode, err := order.DeliveryModeFromString(record.DeliveryMode)
	if err != nil {
		return nil, err
	}
	id, err := kernel.UUIDFromString(record.ID.String())
	if err != nil {
		return nil, err
	}

	var assignedStaffID *kernel.UUID
	if record.AssignedStaffID != nil {
		staffID, idErr := kernel.UUIDFromString(record.AssignedStaffID.String())
		if idErr != nil {
			return nil, idErr
		}
		assignedStaffID = &staffID
	}

	return order.RestoreOrder(
		id,
		items,
		total,
		status,
		mode,
		record.ScheduledFor,
		record.PlacedAt,
		record.ETAMinutes,
		assignedStaffID,
	)
}

func staffToRecord(aggregate *staff.Staff) staffRecord {
	record := staffRecord{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Phone:  aggregate.Phone(),
		Status: aggregate.Status().String(),
	}
	if orderID := aggregate.CurrentOrder(); orderID != nil {
		raw := orderID.Bytes()
		record.CurrentOrderID = &raw
	}
	return record
}

func staffFromRecord(record staffRecord) (*staff.Staff, error) {
	status, err := staff.StatusFromString(record.Status)
	if err != nil {
		return nil, err
	}
	id, err := kernel.UUIDFromString(record.ID.String())
	if err != nil {
		return nil, err
	}

	var currentOrderID *kernel.UUID
	if record.CurrentOrderID != nil {
		orderID, idErr := kernel.UUIDFromString(record.CurrentOrderID.String())
		if idErr != nil {
			return nil, idErr
		}
		currentOrderID = &orderID
	}

	return staff.RestoreStaff(id, record.Name, record.Phone, status, currentOrderID)
}

func cartToRecords(aggregate *cart.Cart) []lineItemRecord {
	return lineItemsToRecords(aggregate.Items())
}

func cartFromRecords(records []lineItemRecord) (*cart.Cart, error) {
	items, err := lineItemsFromRecords(records)
	if err != nil {
		return nil, err
	}
	return cart.RestoreCart(items)
}

func cloneOrderRecord(record orderRecord) orderRecord {
	cloned := record
	cloned.Items = make([]lineItemRecord, len(record.Items))
	copy(cloned.Items, record.Items)
	if record.ScheduledFor != nil {
		at := *record.ScheduledFor
		cloned.ScheduledFor = &at
	}
	if record.AssignedStaffID != nil {
		staffID := *record.AssignedStaffID
		cloned.AssignedStaffID = &staffID
	}
	return cloned
}

func cloneOrderRecords(records []orderRecord) []orderRecord {
	cloned := make([]orderRecord, len(records))
	for i, record := range records {
		cloned[i] = cloneOrderRecord(record)
	}
	return cloned
}

func cloneStaffRecord(record staffRecord) staffRecord {
	cloned := record
	if record.CurrentOrderID != nil {
		orderID := *record.CurrentOrderID
		cloned.CurrentOrderID = &orderID
	}
	return cloned
}

func cloneStaffRecords(records []staffRecord) []staffRecord {
	cloned := make([]staffRecord, len(records))
	for i, record := range records {
		cloned[i] = cloneStaffRecord(record)
	}
	return cloned
}

func cloneLineItemRecords(records []lineItemRecord) []lineItemRecord {
	cloned := make([]lineItemRecord, len(records))
	copy(cloned, records)
	return cloned
}
