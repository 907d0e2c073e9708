package storage

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayeshmadusanka/energyrush/internal/models"
)

func TestMemoryStoreProducts(t *testing.T) {
	store := NewMemoryStore()

	created, err := store.CreateProduct(&models.Product{Name: "Energy Blast", Price: 12.50, Stock: 40})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)

	got, err := store.GetProduct(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Energy Blast", got.Name)

	// Returned records are copies; mutating one must not leak into the store.
	got.Stock = 0
	fresh, err := store.GetProduct(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, fresh.Stock)

	require.NoError(t, store.UpdateProductFields(created.ID, map[string]interface{}{"stock": 100, "price": 15.00}))
	fresh, err = store.GetProduct(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, fresh.Stock)
	assert.Equal(t, 15.00, fresh.Price)

	err = store.UpdateProductFields(created.ID, map[string]interface{}{"colour": "red"})
	assert.ErrorContains(t, err, "unknown product column")

	err = store.UpdateProductFields(999, map[string]interface{}{"stock": 1})
	assert.ErrorContains(t, err, "not found")

	require.NoError(t, store.DeleteProduct(created.ID))
	_, err = store.GetProduct(created.ID)
	assert.ErrorContains(t, err, "not found")
}

func TestMemoryStoreOrders(t *testing.T) {
	store := NewMemoryStore()

	created, err := store.CreateOrder(&models.Order{CustomerName: "John Smith", TotalAmount: 45.00})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, created.Status)

	require.NoError(t, store.UpdateOrderFields(created.ID, map[string]interface{}{"status": models.OrderStatusShipped}))
	got, err := store.GetOrder(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, got.Status)

	err = store.UpdateOrderFields(999, map[string]interface{}{"status": models.OrderStatusShipped})
	assert.ErrorContains(t, err, "not found")

	require.NoError(t, store.DeleteOrder(created.ID))
	assert.ErrorContains(t, store.DeleteOrder(created.ID), "not found")
}

func TestMemoryStoreSearchOrders(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.CreateOrder(&models.Order{CustomerName: "John Smith", CustomerPhone: "0771111111", Status: models.OrderStatusPending})
	require.NoError(t, err)
	_, err = store.CreateOrder(&models.Order{CustomerName: "Jane Doe", CustomerPhone: "0772222222", Status: models.OrderStatusShipped})
	require.NoError(t, err)

	results, err := store.SearchOrders(&models.OrderFilter{Status: models.OrderStatusShipped})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Jane Doe", results[0].CustomerName)

	results, err = store.SearchOrders(&models.OrderFilter{Search: "john"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "John Smith", results[0].CustomerName)

	results, err = store.SearchOrders(&models.OrderFilter{Search: "0772222222"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Jane Doe", results[0].CustomerName)
}

func TestMemoryStoreCountOrdersByStatus(t *testing.T) {
	store := NewMemoryStore()

	for _, status := range []string{
		models.OrderStatusPending,
		models.OrderStatusPending,
		models.OrderStatusShipped,
	} {
		_, err := store.CreateOrder(&models.Order{CustomerName: "x", Status: status})
		require.NoError(t, err)
	}

	counts, err := store.CountOrdersByStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[models.OrderStatusPending])
	assert.Equal(t, int64(1), counts[models.OrderStatusShipped])
	assert.Equal(t, int64(0), counts[models.OrderStatusDelivered])
}

func TestMemoryStoreInteractions(t *testing.T) {
	store := NewMemoryStore()

	for n := 1; n <= 5; n++ {
		_, err := store.CreateInteraction(&models.ChatInteraction{
			SessionID:   "s1",
			UserMessage: fmt.Sprintf("message %d", n),
		})
		require.NoError(t, err)
	}
	_, err := store.CreateInteraction(&models.ChatInteraction{SessionID: "s2", UserMessage: "other session"})
	require.NoError(t, err)

	// Newest first, limited, and scoped to the session.
	results, err := store.RecentInteractions("s1", 3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "message 5", results[0].UserMessage)
	assert.Equal(t, "message 3", results[2].UserMessage)

	require.NoError(t, store.UpdateInteraction(results[0].ID, true, true))
	refreshed, err := store.RecentInteractions("s1", 1)
	require.NoError(t, err)
	require.Len(t, refreshed, 1)
	assert.True(t, refreshed[0].Confirmed)
	assert.True(t, refreshed[0].Executed)

	assert.ErrorContains(t, store.UpdateInteraction(999, true, true), "not found")
}

func TestMemoryStoreSessionValues(t *testing.T) {
	store := NewMemoryStore()

	value, err := store.GetSessionValue("s1", "pending_operation")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, store.PutSessionValue("s1", "pending_operation", "a"))
	require.NoError(t, store.PutSessionValue("s1", "pending_operation", "b"))

	value, err = store.GetSessionValue("s1", "pending_operation")
	require.NoError(t, err)
	assert.Equal(t, "b", value)

	value, err = store.GetSessionValue("s2", "pending_operation")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}
