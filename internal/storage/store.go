package storage

import (
	"github.com/ayeshmadusanka/energyrush/internal/models"
)

// Store defines the interface for storage operations
type Store interface {
	// Product operations
	CreateProduct(product *models.Product) (*models.Product, error)
	GetProduct(id uint) (*models.Product, error)
	GetAllProducts() ([]*models.Product, error)
	UpdateProductFields(id uint, fields map[string]interface{}) error
	DeleteProduct(id uint) error

	// Order operations
	CreateOrder(order *models.Order) (*models.Order, error)
	GetOrder(id uint) (*models.Order, error)
	GetAllOrders() ([]*models.Order, error)
	SearchOrders(filter *models.OrderFilter) ([]*models.Order, error)
	UpdateOrderFields(id uint, fields map[string]interface{}) error
	DeleteOrder(id uint) error
	CountOrdersByStatus() (map[string]int64, error)

	// Chat audit operations
	CreateInteraction(interaction *models.ChatInteraction) (*models.ChatInteraction, error)
	UpdateInteraction(id uint, confirmed, executed bool) error
	RecentInteractions(sessionID string, limit int) ([]*models.ChatInteraction, error)

	// Session memory operations
	PutSessionValue(sessionID, key, value string) error
	GetSessionValue(sessionID, key string) (string, error)
}
