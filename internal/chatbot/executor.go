package chatbot

import (
	"fmt"
	"log"
	"strings"

	"github.com/ayeshmadusanka/energyrush/internal/storage"
)

// ExecResult is the outcome of running one operation
type ExecResult struct {
	Success bool
	Message string
}

// Executor applies operations against the record store. Each non-edit
// kind performs exactly one persisted mutation, or none on failure.
type Executor struct {
	store storage.Store
}

// NewExecutor creates a new operation executor
func NewExecutor(store storage.Store) *Executor {
	return &Executor{store: store}
}

// Execute applies the operation and returns a human-readable result.
// Failures never escape as errors; the worst case is success=false
// with an explanatory message and an untouched record.
func (e *Executor) Execute(op Operation) ExecResult {
	switch op.Kind {
	case KindOrderDelete:
		return e.deleteOrder(op)
	case KindOrderUpdateStatus:
		return e.updateOrderField(op, "status", op.NewStatus, "status")
	case KindOrderUpdateCustomerName:
		return e.updateOrderField(op, "customer_name", op.NewName, "customer name")
	case KindOrderUpdatePhone:
		return e.updateOrderField(op, "customer_phone", op.NewPhone, "phone")
	case KindOrderUpdateAddress:
		return e.updateOrderField(op, "customer_address", op.NewAddress, "address")
	case KindOrderEdit:
		return e.viewOrder(op)
	case KindProductUpdateStock:
		return e.updateProductField(op, "stock", op.NewStock, "stock")
	case KindProductUpdatePrice:
		return e.updateProductField(op, "price", op.NewPrice, "price")
	case KindProductUpdateName:
		return e.updateProductField(op, "name", op.NewName, "name")
	case KindProductUpdateDescription:
		return e.updateProductField(op, "description", op.NewDescription, "description")
	case KindProductEdit:
		return e.viewProduct(op)
	}
	return ExecResult{Success: false, Message: "❌ Unknown operation."}
}

// ConfirmationPrompt builds the human-readable summary shown before a
// gated operation runs, including current vs proposed values. Returns
// an error when the target record does not exist.
func (e *Executor) ConfirmationPrompt(op Operation) (string, error) {
	switch op.Kind {
	case KindOrderDelete:
		order, err := e.store.GetOrder(op.TargetID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("⚠️ This will permanently delete order #%d (customer %s, total %.2f, status %s).\n\nReply YES to proceed or NO to cancel.",
			order.ID, order.CustomerName, order.TotalAmount, order.Status), nil

	case KindOrderUpdateCustomerName:
		order, err := e.store.GetOrder(op.TargetID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("⚠️ This will change order #%d customer name: %s → %s.\n\nReply YES to proceed or NO to cancel.",
			order.ID, order.CustomerName, op.NewName), nil

	case KindOrderUpdatePhone:
		order, err := e.store.GetOrder(op.TargetID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("⚠️ This will change order #%d phone: %s → %s.\n\nReply YES to proceed or NO to cancel.",
			order.ID, order.CustomerPhone, op.NewPhone), nil

	case KindOrderUpdateAddress:
		order, err := e.store.GetOrder(op.TargetID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("⚠️ This will change order #%d address: %s → %s.\n\nReply YES to proceed or NO to cancel.",
			order.ID, order.CustomerAddress, op.NewAddress), nil

	case KindProductUpdatePrice:
		product, err := e.store.GetProduct(op.TargetID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("⚠️ This will change product #%d (%s) price: %.2f → %.2f.\n\nReply YES to proceed or NO to cancel.",
			product.ID, product.Name, product.Price, op.NewPrice), nil

	case KindProductUpdateName:
		product, err := e.store.GetProduct(op.TargetID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("⚠️ This will rename product #%d: %s → %s.\n\nReply YES to proceed or NO to cancel.",
			product.ID, product.Name, op.NewName), nil

	case KindProductUpdateDescription:
		product, err := e.store.GetProduct(op.TargetID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("⚠️ This will replace the description of product #%d (%s).\n\nNew description: %s\n\nReply YES to proceed or NO to cancel.",
			product.ID, product.Name, op.NewDescription), nil
	}

	// Generic fallback for any other gated kind
	if _, err := e.fetchTarget(op); err != nil {
		return "", err
	}
	return fmt.Sprintf("⚠️ This will %s.\n\nReply YES to proceed or NO to cancel.", op.Describe()), nil
}

func (e *Executor) fetchTarget(op Operation) (interface{}, error) {
	if strings.HasPrefix(string(op.Kind), "product") {
		return e.store.GetProduct(op.TargetID)
	}
	return e.store.GetOrder(op.TargetID)
}

func (e *Executor) deleteOrder(op Operation) ExecResult {
	order, err := e.store.GetOrder(op.TargetID)
	if err != nil {
		return ExecResult{Success: false, Message: fmt.Sprintf("❌ Order #%d not found.", op.TargetID)}
	}
	if err := e.store.DeleteOrder(op.TargetID); err != nil {
		log.Printf("Failed to delete order %d: %v", op.TargetID, err)
		return ExecResult{Success: false, Message: fmt.Sprintf("❌ Failed to delete order #%d: %v", op.TargetID, err)}
	}
	return ExecResult{
		Success: true,
		Message: fmt.Sprintf("🗑️ Order #%d deleted (customer %s, total %.2f).", order.ID, order.CustomerName, order.TotalAmount),
	}
}

func (e *Executor) updateOrderField(op Operation, column string, newValue interface{}, label string) ExecResult {
	order, err := e.store.GetOrder(op.TargetID)
	if err != nil {
		return ExecResult{Success: false, Message: fmt.Sprintf("❌ Order #%d not found.", op.TargetID)}
	}

	var oldValue interface{}
	switch column {
	case "status":
		oldValue = order.Status
	case "customer_name":
		oldValue = order.CustomerName
	case "customer_phone":
		oldValue = order.CustomerPhone
	case "customer_address":
		oldValue = order.CustomerAddress
	}

	if err := e.store.UpdateOrderFields(op.TargetID, map[string]interface{}{column: newValue}); err != nil {
		log.Printf("Failed to update order %d %s: %v", op.TargetID, column, err)
		return ExecResult{Success: false, Message: fmt.Sprintf("❌ Failed to update order #%d: %v", op.TargetID, err)}
	}
	return ExecResult{
		Success: true,
		Message: fmt.Sprintf("✅ Order #%d %s updated: %v → %v", op.TargetID, label, oldValue, newValue),
	}
}

func (e *Executor) updateProductField(op Operation, column string, newValue interface{}, label string) ExecResult {
	product, err := e.store.GetProduct(op.TargetID)
	if err != nil {
		return ExecResult{Success: false, Message: fmt.Sprintf("❌ Product #%d not found.", op.TargetID)}
	}

	var oldValue interface{}
	switch column {
	case "stock":
		oldValue = product.Stock
	case "price":
		oldValue = fmt.Sprintf("%.2f", product.Price)
	case "name":
		oldValue = product.Name
	case "description":
		oldValue = product.Description
	}

	if err := e.store.UpdateProductFields(op.TargetID, map[string]interface{}{column: newValue}); err != nil {
		log.Printf("Failed to update product %d %s: %v", op.TargetID, column, err)
		return ExecResult{Success: false, Message: fmt.Sprintf("❌ Failed to update product #%d: %v", op.TargetID, err)}
	}

	shown := newValue
	if column == "price" {
		shown = fmt.Sprintf("%.2f", op.NewPrice)
	}
	return ExecResult{
		Success: true,
		Message: fmt.Sprintf("✅ Product #%d (%s) %s updated: %v → %v", op.TargetID, product.Name, label, oldValue, shown),
	}
}

func (e *Executor) viewOrder(op Operation) ExecResult {
	order, err := e.store.GetOrder(op.TargetID)
	if err != nil {
		return ExecResult{Success: false, Message: fmt.Sprintf("❌ Order #%d not found.", op.TargetID)}
	}

	msg := fmt.Sprintf(`📋 Order #%d

Customer: %s
Phone: %s
Address: %s
Total: %.2f
Status: %s
Placed: %s

To modify this order, use:
- delete order %d
- update order %d status to <status>
- change order %d customer name to <name>
- update order %d phone to <phone>
- change order %d address to <address>`,
		order.ID, order.CustomerName, order.CustomerPhone, order.CustomerAddress,
		order.TotalAmount, order.Status, order.CreatedAt.Format("2006-01-02 15:04"),
		order.ID, order.ID, order.ID, order.ID, order.ID)

	return ExecResult{Success: true, Message: msg}
}

func (e *Executor) viewProduct(op Operation) ExecResult {
	product, err := e.store.GetProduct(op.TargetID)
	if err != nil {
		return ExecResult{Success: false, Message: fmt.Sprintf("❌ Product #%d not found.", op.TargetID)}
	}

	stockNote := ""
	if product.IsLowStock() {
		stockNote = " ⚠️ low stock"
	}

	msg := fmt.Sprintf(`📦 Product #%d

Name: %s
Description: %s
Price: %.2f
Stock: %d%s

To modify this product, use:
- update product %d stock to <number>
- update product %d price to <amount>
- change product %d name to <name>
- update product %d description to <text>`,
		product.ID, product.Name, product.Description, product.Price, product.Stock, stockNote,
		product.ID, product.ID, product.ID, product.ID)

	return ExecResult{Success: true, Message: msg}
}
