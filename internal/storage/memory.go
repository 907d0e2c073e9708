package storage

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ayeshmadusanka/energyrush/internal/models"
)

// MemoryStore holds all data in memory for testing and local development
type MemoryStore struct {
	products     map[uint]*models.Product
	orders       map[uint]*models.Order
	interactions map[uint]*models.ChatInteraction
	sessionVals  map[string]map[string]string

	// Mutexes for thread safety
	productMu     sync.RWMutex
	orderMu       sync.RWMutex
	interactionMu sync.RWMutex
	sessionMu     sync.RWMutex

	// Counters for ID generation
	productCounter     uint
	orderCounter       uint
	interactionCounter uint
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:     make(map[uint]*models.Product),
		orders:       make(map[uint]*models.Order),
		interactions: make(map[uint]*models.ChatInteraction),
		sessionVals:  make(map[string]map[string]string),
	}
}

// Product operations

func (m *MemoryStore) CreateProduct(product *models.Product) (*models.Product, error) {
	m.productMu.Lock()
	defer m.productMu.Unlock()

	m.productCounter++
	product.ID = m.productCounter
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	m.products[product.ID] = product
	return product, nil
}

func (m *MemoryStore) GetProduct(id uint) (*models.Product, error) {
	m.productMu.RLock()
	defer m.productMu.RUnlock()

	product, exists := m.products[id]
	if !exists {
		return nil, fmt.Errorf("product not found")
	}
	copied := *product
	return &copied, nil
}

func (m *MemoryStore) GetAllProducts() ([]*models.Product, error) {
	m.productMu.RLock()
	defer m.productMu.RUnlock()

	products := make([]*models.Product, 0, len(m.products))
	for _, p := range m.products {
		copied := *p
		products = append(products, &copied)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (m *MemoryStore) UpdateProductFields(id uint, fields map[string]interface{}) error {
	m.productMu.Lock()
	defer m.productMu.Unlock()

	product, exists := m.products[id]
	if !exists {
		return fmt.Errorf("product not found")
	}

	for column, value := range fields {
		switch column {
		case "name":
			product.Name = value.(string)
		case "description":
			product.Description = value.(string)
		case "price":
			product.Price = value.(float64)
		case "stock":
			product.Stock = value.(int)
		case "image_url":
			product.ImageURL = value.(string)
		default:
			return fmt.Errorf("unknown product column: %s", column)
		}
	}
	product.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryStore) DeleteProduct(id uint) error {
	m.productMu.Lock()
	defer m.productMu.Unlock()

	if _, exists := m.products[id]; !exists {
		return fmt.Errorf("product not found")
	}
	delete(m.products, id)
	return nil
}

// Order operations

func (m *MemoryStore) CreateOrder(order *models.Order) (*models.Order, error) {
	m.orderMu.Lock()
	defer m.orderMu.Unlock()

	m.orderCounter++
	order.ID = m.orderCounter
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	m.orders[order.ID] = order
	return order, nil
}

func (m *MemoryStore) GetOrder(id uint) (*models.Order, error) {
	m.orderMu.RLock()
	defer m.orderMu.RUnlock()

	order, exists := m.orders[id]
	if !exists {
		return nil, fmt.Errorf("order not found")
	}
	copied := *order
	return &copied, nil
}

func (m *MemoryStore) GetAllOrders() ([]*models.Order, error) {
	m.orderMu.RLock()
	defer m.orderMu.RUnlock()

	orders := make([]*models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		copied := *o
		orders = append(orders, &copied)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
	return orders, nil
}

func (m *MemoryStore) SearchOrders(filter *models.OrderFilter) ([]*models.Order, error) {
	m.orderMu.RLock()
	defer m.orderMu.RUnlock()

	var results []*models.Order
	for _, order := range m.orders {
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		if filter.DateFrom != "" && order.CreatedAt.Format("2006-01-02") < filter.DateFrom {
			continue
		}
		if filter.DateTo != "" && order.CreatedAt.Format("2006-01-02") > filter.DateTo {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(order.CustomerName), needle) &&
				!strings.Contains(order.CustomerPhone, filter.Search) {
				continue
			}
		}
		copied := *order
		results = append(results, &copied)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID > results[j].ID })
	return results, nil
}

func (m *MemoryStore) UpdateOrderFields(id uint, fields map[string]interface{}) error {
	m.orderMu.Lock()
	defer m.orderMu.Unlock()

	order, exists := m.orders[id]
	if !exists {
		return fmt.Errorf("order not found")
	}

	for column, value := range fields {
		switch column {
		case "status":
			order.Status = value.(string)
		case "customer_name":
			order.CustomerName = value.(string)
		case "customer_phone":
			order.CustomerPhone = value.(string)
		case "customer_address":
			order.CustomerAddress = value.(string)
		case "total_amount":
			order.TotalAmount = value.(float64)
		default:
			return fmt.Errorf("unknown order column: %s", column)
		}
	}
	order.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryStore) DeleteOrder(id uint) error {
	m.orderMu.Lock()
	defer m.orderMu.Unlock()

	if _, exists := m.orders[id]; !exists {
		return fmt.Errorf("order not found")
	}
	delete(m.orders, id)
	return nil
}

func (m *MemoryStore) CountOrdersByStatus() (map[string]int64, error) {
	m.orderMu.RLock()
	defer m.orderMu.RUnlock()

	counts := make(map[string]int64)
	for _, order := range m.orders {
		counts[order.Status]++
	}
	return counts, nil
}

// Chat audit operations

func (m *MemoryStore) CreateInteraction(interaction *models.ChatInteraction) (*models.ChatInteraction, error) {
	m.interactionMu.Lock()
	defer m.interactionMu.Unlock()

	m.interactionCounter++
	interaction.ID = m.interactionCounter
	interaction.CreatedAt = time.Now()
	interaction.UpdatedAt = time.Now()

	copied := *interaction
	m.interactions[interaction.ID] = &copied
	return interaction, nil
}

func (m *MemoryStore) UpdateInteraction(id uint, confirmed, executed bool) error {
	m.interactionMu.Lock()
	defer m.interactionMu.Unlock()

	interaction, exists := m.interactions[id]
	if !exists {
		return fmt.Errorf("interaction not found")
	}
	interaction.Confirmed = confirmed
	interaction.Executed = executed
	interaction.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryStore) RecentInteractions(sessionID string, limit int) ([]*models.ChatInteraction, error) {
	m.interactionMu.RLock()
	defer m.interactionMu.RUnlock()

	var results []*models.ChatInteraction
	for _, it := range m.interactions {
		if it.SessionID == sessionID {
			copied := *it
			results = append(results, &copied)
		}
	}
	// Newest first in storage order; callers rendering a transcript reverse it
	sort.Slice(results, func(i, j int) bool { return results[i].ID > results[j].ID })
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Session memory operations

func (m *MemoryStore) PutSessionValue(sessionID, key, value string) error {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()

	vals, exists := m.sessionVals[sessionID]
	if !exists {
		vals = make(map[string]string)
		m.sessionVals[sessionID] = vals
	}
	vals[key] = value
	return nil
}

func (m *MemoryStore) GetSessionValue(sessionID, key string) (string, error) {
	m.sessionMu.RLock()
	defer m.sessionMu.RUnlock()

	vals, exists := m.sessionVals[sessionID]
	if !exists {
		return "", nil
	}
	return vals[key], nil
}
