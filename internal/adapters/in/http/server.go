// Package http exposes the storefront over a REST API.
// Handlers translate requests into commands and queries and map the error
// taxonomy onto status codes; no business logic lives here.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"kitcart/internal/core/application/usecases/commands"
	"kitcart/internal/core/application/usecases/queries"
	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/core/domain/model/order"
	"kitcart/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addCartItemHandler        commands.AddCartItemCommandHandler
	removeCartItemHandler     commands.RemoveCartItemCommandHandler
	changeCartQuantityHandler commands.ChangeCartItemQuantityCommandHandler
	placeOrderHandler         commands.PlaceOrderCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	assignStaffHandler        commands.AssignStaffCommandHandler
	toggleStaffHandler        commands.ToggleStaffCommandHandler

	// Query handlers
	getCartHandler           queries.GetCartQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getActiveOrdersHandler   queries.GetActiveOrdersQueryHandler
	getAllStaffHandler       queries.GetAllStaffQueryHandler
	getAvailableStaffHandler queries.GetAvailableStaffQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addCartItemHandler commands.AddCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	changeCartQuantityHandler commands.ChangeCartItemQuantityCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignStaffHandler commands.AssignStaffCommandHandler,
	toggleStaffHandler commands.ToggleStaffCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getAllStaffHandler queries.GetAllStaffQueryHandler,
	getAvailableStaffHandler queries.GetAvailableStaffQueryHandler,
) *Server {
	return &Server{
		addCartItemHandler:        addCartItemHandler,
		removeCartItemHandler:     removeCartItemHandler,
		changeCartQuantityHandler: changeCartQuantityHandler,
		placeOrderHandler:         placeOrderHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		assignStaffHandler:        assignStaffHandler,
		toggleStaffHandler:        toggleStaffHandler,
		getCartHandler:            getCartHandler,
		getOrderHandler:           getOrderHandler,
		getActiveOrdersHandler:    getActiveOrdersHandler,
		getAllStaffHandler:        getAllStaffHandler,
		getAvailableStaffHandler:  getAvailableStaffHandler,
	}
}

// RegisterRoutes mounts all storefront endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PATCH("/cart/items/:id", s.ChangeCartItemQuantity)
	api.DELETE("/cart/items/:id", s.RemoveCartItem)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetActiveOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/assign", s.AssignStaff)

	api.GET("/staff", s.GetAllStaff)
	api.GET("/staff/available", s.GetAvailableStaff)
	api.POST("/staff/:id/toggle", s.ToggleStaff)
}

// GetCart handles GET /api/v1/cart - retrieves the active cart.
func (s *Server) GetCart(ctx echo.Context) error {
	view, err := s.getCartHandler.Handle(ctx.Request().Context(), queries.NewGetCartQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartResponse{
		Items:    toLineItemResponses(view.Items),
		Subtotal: view.Subtotal,
	})
}

// AddCartItem handles POST /api/v1/cart/items - puts a catalog line into the cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var req addCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	itemID, err := kernel.UUIDFromString(req.ItemID)
	if err != nil {
		return s.badRequest(ctx, "Invalid item id: "+err.Error())
	}

	kind, err := order.ItemKindFromString(req.Kind)
	if err != nil {
		return s.badRequest(ctx, "Invalid item kind: "+err.Error())
	}

	unitPrice, err := kernel.NewMoney(req.UnitPrice)
	if err != nil {
		return s.badRequest(ctx, "Invalid unit price: "+err.Error())
	}

	cmd, err := commands.NewAddCartItemCommand(itemID, kind, req.Name, unitPrice, req.Quantity, req.ImageRef)
	if err != nil {
		return s.badRequest(ctx, "Invalid cart line: "+err.Error())
	}

	if err = s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ChangeCartItemQuantity handles PATCH /api/v1/cart/items/:id - adjusts a line's quantity.
func (s *Server) ChangeCartItemQuantity(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid item id: "+err.Error())
	}

	var req changeQuantityRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeCartItemQuantityCommand(itemID, req.Delta)
	if err != nil {
		return s.badRequest(ctx, "Invalid quantity change: "+err.Error())
	}

	if err = s.changeCartQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:id - drops a line from the cart.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid item id: "+err.Error())
	}

	cmd, err := commands.NewRemoveCartItemCommand(itemID)
	if err != nil {
		return s.badRequest(ctx, "Invalid item id: "+err.Error())
	}

	if err = s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/orders - checks the cart out into an order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req placeOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	mode, err := order.DeliveryModeFromString(req.DeliveryMode)
	if err != nil {
		return s.badRequest(ctx, "Invalid delivery mode: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, mode, req.ScheduledFor)
	if err != nil {
		return s.badRequest(ctx, "Invalid checkout data: "+err.Error())
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, placeOrderResponse{ID: orderID.String()})
}

// GetActiveOrders handles GET /api/v1/orders?mode= - lists active orders for a mode.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	mode, err := order.DeliveryModeFromString(ctx.QueryParam("mode"))
	if err != nil {
		return s.badRequest(ctx, "Invalid delivery mode: "+err.Error())
	}

	query, err := queries.NewGetActiveOrdersQuery(mode)
	if err != nil {
		return s.badRequest(ctx, "Invalid delivery mode: "+err.Error())
	}

	views, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]orderResponse, len(views))
	for i, view := range views {
		response[i] = toOrderResponse(view)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.badRequest(ctx, "Invalid order id: "+err.Error())
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(view))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - admin status override.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req updateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return s.badRequest(ctx, "Invalid status override: "+err.Error())
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignStaff handles POST /api/v1/orders/:id/assign - hands an order to a staff member.
func (s *Server) AssignStaff(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req assignStaffRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	staffID, err := kernel.UUIDFromString(req.StaffID)
	if err != nil {
		return s.badRequest(ctx, "Invalid staff id: "+err.Error())
	}

	cmd, err := commands.NewAssignStaffCommand(orderID, staffID)
	if err != nil {
		return s.badRequest(ctx, "Invalid assignment: "+err.Error())
	}

	if err = s.assignStaffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAllStaff handles GET /api/v1/staff - lists the whole roster.
func (s *Server) GetAllStaff(ctx echo.Context) error {
	views, err := s.getAllStaffHandler.Handle(ctx.Request().Context(), queries.NewGetAllStaffQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStaffResponses(views))
}

// GetAvailableStaff handles GET /api/v1/staff/available - lists free staff.
func (s *Server) GetAvailableStaff(ctx echo.Context) error {
	views, err := s.getAvailableStaffHandler.Handle(ctx.Request().Context(), queries.NewGetAvailableStaffQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStaffResponses(views))
}

// ToggleStaff handles POST /api/v1/staff/:id/toggle - flips a member's duty status.
func (s *Server) ToggleStaff(ctx echo.Context) error {
	staffID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid staff id: "+err.Error())
	}

	cmd, err := commands.NewToggleStaffCommand(staffID)
	if err != nil {
		return s.badRequest(ctx, "Invalid staff id: "+err.Error())
	}

	if err = s.toggleStaffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps application errors onto status codes: missing objects to
// 404, an empty cart to 409, validation failures to 400 and everything else
// to 500.
func (s *Server) respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrCartIsEmpty):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
