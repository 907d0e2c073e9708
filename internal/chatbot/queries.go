package chatbot

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ayeshmadusanka/energyrush/internal/models"
)

// Read-side intents kept deliberately small and closed: the chatbot is
// a command interpreter, not a query engine. Anything outside these
// patterns falls through to the command parser.
var (
	summaryIntent   = regexp.MustCompile(`(?i)\b(?:order\s+summary|total\s+orders?|order\s+(?:statistics?|count)|how\s+many\s+orders?)\b`)
	inventoryIntent = regexp.MustCompile(`(?i)\b(?:show\s+products?|inventory|stock\s+levels?|products?\s+in\s+stock|what\s+products?)\b`)
)

// handleQuery answers the recognized read intents. It reports handled
// = false for everything else so the command cascade still runs.
func (i *Interpreter) handleQuery(sessionID, message string) (*Result, bool) {
	switch {
	case summaryIntent.MatchString(message):
		response := i.orderSummary()
		i.record(sessionID, message, response, nil, false, false, false)
		return &Result{Response: response, Type: TypeInfo, Success: true}, true

	case inventoryIntent.MatchString(message):
		response := i.inventoryReport()
		i.record(sessionID, message, response, nil, false, false, false)
		return &Result{Response: response, Type: TypeInfo, Success: true}, true
	}
	return nil, false
}

func (i *Interpreter) orderSummary() string {
	counts, err := i.store.CountOrdersByStatus()
	if err != nil {
		return fmt.Sprintf("❌ Failed to load order summary: %v", err)
	}

	orders, err := i.store.GetAllOrders()
	if err != nil {
		return fmt.Sprintf("❌ Failed to load order summary: %v", err)
	}

	var revenue float64
	for _, order := range orders {
		revenue += order.TotalAmount
	}

	var total int64
	for _, c := range counts {
		total += c
	}

	return fmt.Sprintf(`📊 Order Summary

Total orders: %d
Pending: %d
Shipped: %d
Delivered: %d
Total revenue: %.2f`,
		total,
		counts[models.OrderStatusPending],
		counts[models.OrderStatusShipped],
		counts[models.OrderStatusDelivered],
		revenue)
}

func (i *Interpreter) inventoryReport() string {
	products, err := i.store.GetAllProducts()
	if err != nil {
		return fmt.Sprintf("❌ Failed to load inventory: %v", err)
	}
	if len(products) == 0 {
		return "📦 No products in the catalog yet."
	}

	var b strings.Builder
	b.WriteString("📦 Inventory\n")
	for _, p := range products {
		fmt.Fprintf(&b, "\n#%d %s: price %.2f, stock %d", p.ID, p.Name, p.Price, p.Stock)
		if p.IsLowStock() {
			b.WriteString(" ⚠️ low stock")
		}
	}
	return b.String()
}

// helpText lists the exact command grammar. Returned for anything the
// parser cannot classify.
func helpText(userMessage string) string {
	help := `🤖 EnergyRush Admin Assistant

I understand these commands:

📋 Orders:
- delete order <id>
- update order <id> status to <status>
- change order <id> customer name to <name>
- update order <id> phone to <phone>
- change order <id> address to <address>
- edit order <id>

📦 Products:
- update product <id> stock to <number>
- update product <id> price to <amount>
- change product <id> name to <name>
- update product <id> description to <text>
- edit product <id>

📊 Reports:
- order summary
- show products

Destructive changes ask for confirmation first. Reply YES to proceed or NO to cancel.`

	if strings.TrimSpace(userMessage) != "" {
		help += fmt.Sprintf("\n\nYour message: %q. Try one of the commands above.", strings.TrimSpace(userMessage))
	}
	return help
}
