package models

import "gorm.io/gorm"

// Product represents an item in the store catalog
type Product struct {
	gorm.Model

	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price" gorm:"not null"`
	Stock       int     `json:"stock" gorm:"default:0"`
	ImageURL    string  `json:"image_url"`
}

// LowStockThreshold marks products that need restocking in inventory views
const LowStockThreshold = 10

// IsLowStock reports whether the product needs restocking
func (p *Product) IsLowStock() bool {
	return p.Stock < LowStockThreshold
}
