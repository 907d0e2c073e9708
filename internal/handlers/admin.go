package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/ayeshmadusanka/energyrush/internal/models"
	"github.com/ayeshmadusanka/energyrush/internal/storage"
)

// AdminHandler handles admin dashboard and record management endpoints
type AdminHandler struct {
	store storage.Store
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(store storage.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// GetOverview returns the dashboard numbers: order counts by status,
// revenue, and products that need restocking.
func (h *AdminHandler) GetOverview(c *fiber.Ctx) error {
	counts, err := h.store.CountOrdersByStatus()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load order counts",
		})
	}

	orders, err := h.store.GetAllOrders()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load orders",
		})
	}

	var revenue float64
	for _, order := range orders {
		revenue += order.TotalAmount
	}

	products, err := h.store.GetAllProducts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load products",
		})
	}

	lowStock := []*models.Product{}
	for _, p := range products {
		if p.IsLowStock() {
			lowStock = append(lowStock, p)
		}
	}

	var totalOrders int64
	for _, count := range counts {
		totalOrders += count
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"total_orders":   totalOrders,
		"pending_orders": counts[models.OrderStatusPending],
		"total_revenue":  revenue,
		"total_products": len(products),
		"low_stock":      lowStock,
	})
}

// ListOrders returns orders matching the optional status/date/search
// filters, plus per-status counts for the filter bar.
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	filter := &models.OrderFilter{
		Status:   c.Query("status"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Search:   c.Query("search"),
	}

	if filter.Status != "" && !models.ValidOrderStatus(filter.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Status must be 'Pending', 'Shipped' or 'Delivered'",
		})
	}

	orders, err := h.store.SearchOrders(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch orders",
		})
	}

	statusCounts := map[string]int{
		"pending":   0,
		"shipped":   0,
		"delivered": 0,
	}
	for _, order := range orders {
		switch order.Status {
		case models.OrderStatusPending:
			statusCounts["pending"]++
		case models.OrderStatusShipped:
			statusCounts["shipped"]++
		case models.OrderStatusDelivered:
			statusCounts["delivered"]++
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
		"count":   len(orders),
		"counts":  statusCounts,
	})
}

// UpdateOrderStatus sets a new status on one order
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order id",
		})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if !models.ValidOrderStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Status must be 'Pending', 'Shipped' or 'Delivered'",
		})
	}

	if err := h.store.UpdateOrderFields(uint(id), map[string]interface{}{"status": req.Status}); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}

	log.Printf("Order %d status updated to %s", id, req.Status)

	return c.JSON(fiber.Map{
		"success": true,
		"order": fiber.Map{
			"id":     id,
			"status": req.Status,
		},
	})
}

// ListProducts returns the full catalog
func (h *AdminHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.store.GetAllProducts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch products",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"products": products,
		"count":    len(products),
	})
}

// CreateProduct adds a catalog item
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if product.Name == "" || product.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and a positive price are required",
		})
	}

	created, err := h.store.CreateProduct(&product)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create product",
		})
	}

	log.Printf("Product %d (%s) created", created.ID, created.Name)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"product": created,
	})
}

// UpdateProduct updates catalog item fields
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product id",
		})
	}

	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Stock       *int     `json:"stock"`
		ImageURL    *string  `json:"image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Stock != nil {
		fields["stock"] = *req.Stock
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}

	if len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No fields to update",
		})
	}

	if err := h.store.UpdateProductFields(uint(id), fields); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"product": fiber.Map{"id": id},
	})
}

// DeleteProduct removes a catalog item
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product id",
		})
	}

	if err := h.store.DeleteProduct(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	log.Printf("Product %d deleted", id)

	return c.JSON(fiber.Map{
		"success": true,
	})
}
