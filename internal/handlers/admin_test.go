package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayeshmadusanka/energyrush/internal/models"
	"github.com/ayeshmadusanka/energyrush/internal/storage"
)

func newAdminApp(t *testing.T) (*fiber.App, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	handler := NewAdminHandler(store)

	app := fiber.New()
	app.Get("/admin/overview", handler.GetOverview)
	app.Get("/admin/orders", handler.ListOrders)
	app.Post("/admin/orders/:id/status", handler.UpdateOrderStatus)
	app.Get("/admin/products", handler.ListProducts)
	app.Post("/admin/products", handler.CreateProduct)
	app.Put("/admin/products/:id", handler.UpdateProduct)
	app.Delete("/admin/products/:id", handler.DeleteProduct)
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
}

func TestOverview(t *testing.T) {
	app, store := newAdminApp(t)

	_, err := store.CreateOrder(&models.Order{CustomerName: "A", Status: models.OrderStatusPending, TotalAmount: 10.00})
	require.NoError(t, err)
	_, err = store.CreateOrder(&models.Order{CustomerName: "B", Status: models.OrderStatusShipped, TotalAmount: 25.00})
	require.NoError(t, err)
	_, err = store.CreateProduct(&models.Product{Name: "Turbo Shot", Price: 9.99, Stock: 3})
	require.NoError(t, err)

	resp, payload := doJSON(t, app, http.MethodGet, "/admin/overview", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, float64(2), payload["total_orders"])
	assert.Equal(t, float64(1), payload["pending_orders"])
	assert.Equal(t, float64(35), payload["total_revenue"])
	assert.Len(t, payload["low_stock"], 1)
}

func TestListOrdersFilterByStatus(t *testing.T) {
	app, store := newAdminApp(t)

	_, err := store.CreateOrder(&models.Order{CustomerName: "A", Status: models.OrderStatusPending})
	require.NoError(t, err)
	_, err = store.CreateOrder(&models.Order{CustomerName: "B", Status: models.OrderStatusShipped})
	require.NoError(t, err)

	resp, payload := doJSON(t, app, http.MethodGet, "/admin/orders?status=Shipped", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), payload["count"])

	resp, _ = doJSON(t, app, http.MethodGet, "/admin/orders?status=Teleported", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	app, store := newAdminApp(t)
	order, err := store.CreateOrder(&models.Order{CustomerName: "A", Status: models.OrderStatusPending})
	require.NoError(t, err)

	resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/admin/orders/%d/status", order.ID), map[string]string{"status": "Delivered"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	after, err := store.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, after.Status)

	resp, _ = doJSON(t, app, http.MethodPost, "/admin/orders/999/status", map[string]string{"status": "Delivered"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/admin/orders/%d/status", order.ID), map[string]string{"status": "Lost"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductCRUD(t *testing.T) {
	app, store := newAdminApp(t)

	resp, payload := doJSON(t, app, http.MethodPost, "/admin/products", map[string]interface{}{
		"name":  "Energy Blast",
		"price": 12.50,
		"stock": 40,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := payload["product"].(map[string]interface{})
	id := uint(created["ID"].(float64))

	resp, _ = doJSON(t, app, http.MethodPost, "/admin/products", map[string]interface{}{"name": "", "price": 5.00})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/admin/products/%d", id), map[string]interface{}{"price": 15.00})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	after, err := store.GetProduct(id)
	require.NoError(t, err)
	assert.Equal(t, 15.00, after.Price)
	assert.Equal(t, 40, after.Stock)

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/admin/products/%d", id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_, err = store.GetProduct(id)
	assert.Error(t, err)
}
