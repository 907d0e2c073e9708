package models

import "gorm.io/gorm"

// Order represents a customer order placed through the storefront
type Order struct {
	gorm.Model

	CustomerName    string  `json:"customer_name" gorm:"not null"`
	CustomerPhone   string  `json:"customer_phone" gorm:"not null"`
	CustomerAddress string  `json:"customer_address" gorm:"type:text;not null"`
	TotalAmount     float64 `json:"total_amount" gorm:"not null"`
	Status          string  `json:"status" gorm:"default:'Pending'"`
	Items           string  `json:"items" gorm:"type:text"` // JSON string of cart items
}

// Order status values
const (
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
)

// ValidOrderStatus reports whether s is a recognized order status
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// OrderFilter holds search criteria for the admin orders view
type OrderFilter struct {
	Status   string `json:"status"`
	DateFrom string `json:"date_from"` // YYYY-MM-DD
	DateTo   string `json:"date_to"`   // YYYY-MM-DD
	Search   string `json:"search"`    // matches customer name or phone
}
