package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterhttp "kitcart/internal/adapters/in/http"
	"kitcart/internal/adapters/out/memory"
	"kitcart/internal/core/application/usecases/commands"
	"kitcart/internal/core/application/usecases/queries"
	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/core/domain/model/staff"
)

type uowFactoryFunc[T any] func() T

func (f uowFactoryFunc[T]) Create() T { return f() }

func newTestServer(t *testing.T) (*echo.Echo, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)

	cartFactory := uowFactoryFunc[commands.CartUoW](func() commands.CartUoW { return factory.Create() })
	checkoutFactory := uowFactoryFunc[commands.CheckoutUoW](func() commands.CheckoutUoW { return factory.Create() })
	orderFactory := uowFactoryFunc[commands.OrderUoW](func() commands.OrderUoW { return factory.Create() })
	staffFactory := uowFactoryFunc[commands.StaffUoW](func() commands.StaffUoW { return factory.Create() })
	fullFactory := uowFactoryFunc[commands.UoW](func() commands.UoW { return factory.Create() })

	server := adapterhttp.NewServer(
		commands.NewAddCartItemCommandHandler(cartFactory),
		commands.NewRemoveCartItemCommandHandler(cartFactory),
		commands.NewChangeCartItemQuantityCommandHandler(cartFactory),
		commands.NewPlaceOrderCommandHandler(checkoutFactory),
		commands.NewUpdateOrderStatusCommandHandler(orderFactory),
		commands.NewAssignStaffCommandHandler(fullFactory),
		commands.NewToggleStaffCommandHandler(staffFactory),
		queries.NewGetCartQueryHandler(store),
		queries.NewGetOrderQueryHandler(store),
		queries.NewGetActiveOrdersQueryHandler(store),
		queries.NewGetAllStaffQueryHandler(store),
		queries.NewGetAvailableStaffQueryHandler(store),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e, store
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func addCartItem(t *testing.T, e *echo.Echo, itemID string, price, quantity int) {
	t.Helper()

	body := `{"itemId":"` + itemID + `","kind":"recipe","name":"Paneer Tikka Kit","unitPrice":` +
		jsonInt(price) + `,"quantity":` + jsonInt(quantity) + `}`
	rec := doJSON(e, http.MethodPost, "/api/v1/cart/items", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func jsonInt(v int) string {
	out, _ := json.Marshal(v)
	return string(out)
}

func seedRosterMember(t *testing.T, store *memory.Store, name string) *staff.Staff {
	t.Helper()

	member, err := staff.NewStaff(kernel.NewUUID(), name, "9988776655")
	require.NoError(t, err)

	uow := memory.NewUnitOfWorkFactory(store).Create()
	require.NoError(t, uow.Begin(context.Background()))
	require.NoError(t, uow.StaffRepository().Add(context.Background(), member))
	require.NoError(t, uow.Commit(context.Background()))
	return member
}

func TestServer_CartFlow(t *testing.T) {
	e, _ := newTestServer(t)
	itemID := kernel.NewUUID().String()

	// Add a line, bump its quantity, then read the cart back.
	addCartItem(t, e, itemID, 350, 2)

	rec := doJSON(e, http.MethodPatch, "/api/v1/cart/items/"+itemID, `{"delta":1}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cartBody struct {
		Items []struct {
			ItemID   string `json:"itemId"`
			Quantity int    `json:"quantity"`
			Subtotal int    `json:"subtotal"`
		} `json:"items"`
		Subtotal int `json:"subtotal"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cartBody))
	require.Len(t, cartBody.Items, 1)
	assert.Equal(t, itemID, cartBody.Items[0].ItemID)
	assert.Equal(t, 3, cartBody.Items[0].Quantity)
	assert.Equal(t, 1050, cartBody.Subtotal)

	// Dropping the line empties the cart.
	rec = doJSON(e, http.MethodDelete, "/api/v1/cart/items/"+itemID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/cart", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cartBody))
	assert.Empty(t, cartBody.Items)
}

func TestServer_CheckoutAndTrack(t *testing.T) {
	e, _ := newTestServer(t)
	addCartItem(t, e, kernel.NewUUID().String(), 350, 2)

	rec := doJSON(e, http.MethodPost, "/api/v1/orders", `{"deliveryMode":"Instant"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var placed struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &placed))
	require.NotEmpty(t, placed.ID)

	rec = doJSON(e, http.MethodGet, "/api/v1/orders/"+placed.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var orderBody struct {
		Status     string `json:"status"`
		Total      int    `json:"total"`
		ETAMinutes int    `json:"etaMinutes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orderBody))
	assert.Equal(t, "Pending", orderBody.Status)
	assert.Equal(t, 749, orderBody.Total)
	assert.Equal(t, 60, orderBody.ETAMinutes)

	rec = doJSON(e, http.MethodGet, "/api/v1/orders?mode=Instant", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestServer_CheckoutEmptyCart(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/orders", `{"deliveryMode":"Instant"}`)

	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
}

func TestServer_GetOrder_NotFound(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String(), "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	e, _ := newTestServer(t)
	addCartItem(t, e, kernel.NewUUID().String(), 350, 1)

	rec := doJSON(e, http.MethodPost, "/api/v1/orders", `{"deliveryMode":"Instant"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var placed struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &placed))

	rec = doJSON(e, http.MethodPatch, "/api/v1/orders/"+placed.ID+"/status", `{"status":"Shipped"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestServer_AssignStaff(t *testing.T) {
	e, store := newTestServer(t)
	member := seedRosterMember(t, store, "Ramesh Kumar")

	addCartItem(t, e, kernel.NewUUID().String(), 350, 1)
	rec := doJSON(e, http.MethodPost, "/api/v1/orders", `{"deliveryMode":"Instant"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var placed struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &placed))

	rec = doJSON(e, http.MethodPost, "/api/v1/orders/"+placed.ID+"/assign",
		`{"staffId":"`+member.ID().String()+`"}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	// Order is out for delivery and the member no longer shows as available.
	rec = doJSON(e, http.MethodGet, "/api/v1/orders/"+placed.ID, "")
	var orderBody struct {
		Status          string  `json:"status"`
		AssignedStaffID *string `json:"assignedStaffId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orderBody))
	assert.Equal(t, "OutForDelivery", orderBody.Status)
	require.NotNil(t, orderBody.AssignedStaffID)
	assert.Equal(t, member.ID().String(), *orderBody.AssignedStaffID)

	rec = doJSON(e, http.MethodGet, "/api/v1/staff/available", "")
	var available []json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &available))
	assert.Empty(t, available)
}

func TestServer_ToggleStaff(t *testing.T) {
	e, store := newTestServer(t)
	member := seedRosterMember(t, store, "Amit Verma")

	rec := doJSON(e, http.MethodPost, "/api/v1/staff/"+member.ID().String()+"/toggle", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/staff", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var roster []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &roster))
	require.Len(t, roster, 1)
	assert.Equal(t, "Busy", roster[0].Status)
}

func TestServer_ToggleStaff_NotFound(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/staff/"+kernel.NewUUID().String()+"/toggle", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_AddCartItem_BadKind(t *testing.T) {
	e, _ := newTestServer(t)

	body := `{"itemId":"` + kernel.NewUUID().String() + `","kind":"beverage","name":"Cola","unitPrice":40,"quantity":1}`
	rec := doJSON(e, http.MethodPost, "/api/v1/cart/items", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
