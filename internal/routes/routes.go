package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ayeshmadusanka/energyrush/internal/chatbot"
	"github.com/ayeshmadusanka/energyrush/internal/handlers"
	"github.com/ayeshmadusanka/energyrush/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, store storage.Store, interpreter *chatbot.Interpreter) {

	// Root endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to EnergyRush Admin API!",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"health":   "/health",
				"chatbot":  "/admin/chatbot",
				"history":  "/admin/chatbot/history",
				"overview": "/admin/overview",
				"orders":   "/admin/orders",
				"products": "/admin/products",
			},
		})
	})

	app.Get("/health", handlers.HandleHealth)

	chatHandler := handlers.NewChatHandler(store, interpreter)
	adminHandler := handlers.NewAdminHandler(store)

	// ========== ADMIN ROUTES ==========
	admin := app.Group("/admin")

	// Chatbot
	admin.Post("/chatbot", chatHandler.HandleMessage)
	admin.Get("/chatbot/history", chatHandler.HandleHistory)

	// Dashboard
	admin.Get("/overview", adminHandler.GetOverview)

	// Orders
	admin.Get("/orders", adminHandler.ListOrders)
	admin.Post("/orders/:id/status", adminHandler.UpdateOrderStatus)

	// Products
	admin.Get("/products", adminHandler.ListProducts)
	admin.Post("/products", adminHandler.CreateProduct)
	admin.Put("/products/:id", adminHandler.UpdateProduct)
	admin.Delete("/products/:id", adminHandler.DeleteProduct)
}
