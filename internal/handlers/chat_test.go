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

	"github.com/ayeshmadusanka/energyrush/internal/chatbot"
	"github.com/ayeshmadusanka/energyrush/internal/models"
	"github.com/ayeshmadusanka/energyrush/internal/services"
	"github.com/ayeshmadusanka/energyrush/internal/storage"
)

func newChatApp(t *testing.T) (*fiber.App, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	interpreter := chatbot.NewInterpreter(store, services.NewSessionManager(store), 0)
	handler := NewChatHandler(store, interpreter)

	app := fiber.New()
	app.Post("/admin/chatbot", handler.HandleMessage)
	app.Get("/admin/chatbot/history", handler.HandleHistory)
	return app, store
}

func postChat(t *testing.T, app *fiber.App, sessionID, message string) map[string]interface{} {
	t.Helper()
	body, err := json.Marshal(map[string]string{"message": message})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/chatbot", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func TestChatEndpointExecutesCommand(t *testing.T) {
	app, store := newChatApp(t)
	product, err := store.CreateProduct(&models.Product{Name: "Energy Blast", Price: 12.50, Stock: 40})
	require.NoError(t, err)

	payload := postChat(t, app, "s1", fmt.Sprintf("update product %d stock to 100", product.ID))
	assert.Equal(t, "success", payload["type"])
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "s1", payload["session_id"])

	after, err := store.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, after.Stock)
}

func TestChatEndpointMintsSession(t *testing.T) {
	app, _ := newChatApp(t)

	payload := postChat(t, app, "", "hello")
	minted, ok := payload["session_id"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, minted)

	// The minted token works for the confirmation round-trip.
	payload = postChat(t, app, minted, "yes")
	assert.Equal(t, "info", payload["type"])
}

func TestChatEndpointConfirmationFlow(t *testing.T) {
	app, store := newChatApp(t)
	order, err := store.CreateOrder(&models.Order{CustomerName: "Jane Doe", Status: models.OrderStatusPending, TotalAmount: 30.00})
	require.NoError(t, err)

	payload := postChat(t, app, "s1", fmt.Sprintf("delete order %d", order.ID))
	assert.Equal(t, "confirmation_required", payload["type"])
	assert.Equal(t, true, payload["requires_confirmation"])

	payload = postChat(t, app, "s1", "yes")
	assert.Equal(t, "success", payload["type"])

	_, err = store.GetOrder(order.ID)
	assert.Error(t, err)
}

func TestChatEndpointRejectsEmptyMessage(t *testing.T) {
	app, _ := newChatApp(t)

	body := []byte(`{"message": ""}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/chatbot", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatHistoryOldestFirst(t *testing.T) {
	app, _ := newChatApp(t)

	postChat(t, app, "s1", "hello")
	postChat(t, app, "s1", "order summary")

	req := httptest.NewRequest(http.MethodGet, "/admin/chatbot/history", nil)
	req.Header.Set("X-Session-ID", "s1")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Success      bool                      `json:"success"`
		SessionID    string                    `json:"session_id"`
		Count        int                       `json:"count"`
		Interactions []*models.ChatInteraction `json:"interactions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	assert.True(t, payload.Success)
	assert.Equal(t, 2, payload.Count)
	require.Len(t, payload.Interactions, 2)
	assert.Equal(t, "hello", payload.Interactions[0].UserMessage)
	assert.Equal(t, "order summary", payload.Interactions[1].UserMessage)
}

func TestChatHistoryRequiresSession(t *testing.T) {
	app, _ := newChatApp(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/chatbot/history", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
