package queries

import (
	"context"

	"kitcart/internal/core/domain/model/staff"
)

// GetAllStaffQueryHandler lists the whole roster from the backing store.
//
// Example:
//
//	handler := NewGetAllStaffQueryHandler(store)
//	views, err := handler.Handle(ctx, NewGetAllStaffQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to list staff: %w", err)
//	}
//	for _, v := range views {
//	    fmt.Printf("%s: %s\n", v.Name, v.Status)
//	}
type GetAllStaffQueryHandler struct {
	reader StaffReader
}

// NewGetAllStaffQueryHandler creates a handler for roster listings.
func NewGetAllStaffQueryHandler(reader StaffReader) GetAllStaffQueryHandler {
	return GetAllStaffQueryHandler{reader: reader}
}

// Handle executes the query. Returns the roster in seeding order.
func (h GetAllStaffQueryHandler) Handle(_ context.Context, query GetAllStaffQuery) ([]StaffView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	roster, err := h.reader.AllStaff()
	if err != nil {
		return nil, err
	}

	return staffViews(roster), nil
}

// GetAvailableStaffQueryHandler lists free staff from the backing store.
type GetAvailableStaffQueryHandler struct {
	reader StaffReader
}

// NewGetAvailableStaffQueryHandler creates a handler for availability listings.
func NewGetAvailableStaffQueryHandler(reader StaffReader) GetAvailableStaffQueryHandler {
	return GetAvailableStaffQueryHandler{reader: reader}
}

// Handle executes the query. Busy staff members are excluded.
func (h GetAvailableStaffQueryHandler) Handle(
	_ context.Context,
	query GetAvailableStaffQuery,
) ([]StaffView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	available, err := h.reader.AvailableStaff()
	if err != nil {
		return nil, err
	}

	return staffViews(available), nil
}

func staffViews(members []*staff.Staff) []StaffView {
	views := make([]StaffView, 0, len(members))
	for _, member := range members {
		views = append(views, newStaffView(member))
	}
	return views
}
