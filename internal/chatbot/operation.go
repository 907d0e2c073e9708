package chatbot

import (
	"fmt"
	"time"
)

// OperationKind identifies one command in the admin grammar
type OperationKind string

const (
	KindUnknown                  OperationKind = "unknown"
	KindOrderDelete              OperationKind = "order_delete"
	KindOrderUpdateStatus        OperationKind = "order_update_status"
	KindOrderUpdateCustomerName  OperationKind = "order_update_customer_name"
	KindOrderUpdatePhone         OperationKind = "order_update_phone"
	KindOrderUpdateAddress       OperationKind = "order_update_address"
	KindOrderEdit                OperationKind = "order_edit"
	KindProductUpdateStock       OperationKind = "product_update_stock"
	KindProductUpdatePrice       OperationKind = "product_update_price"
	KindProductUpdateName        OperationKind = "product_update_name"
	KindProductUpdateDescription OperationKind = "product_update_description"
	KindProductEdit              OperationKind = "product_edit"
)

// Operation is a fully-populated description of a single intended
// mutation or read view against the record store. Only the payload
// fields relevant to the kind are set.
type Operation struct {
	Kind     OperationKind `json:"kind"`
	TargetID uint          `json:"target_id"`

	NewStatus      string  `json:"new_status,omitempty"`
	NewName        string  `json:"new_name,omitempty"`
	NewPhone       string  `json:"new_phone,omitempty"`
	NewAddress     string  `json:"new_address,omitempty"`
	NewDescription string  `json:"new_description,omitempty"`
	NewStock       int     `json:"new_stock,omitempty"`
	NewPrice       float64 `json:"new_price,omitempty"`
}

// IsReadOnly reports whether the operation only views a record
func (op Operation) IsReadOnly() bool {
	return op.Kind == KindOrderEdit || op.Kind == KindProductEdit
}

// Describe returns a short human-readable summary of the operation
func (op Operation) Describe() string {
	switch op.Kind {
	case KindOrderDelete:
		return fmt.Sprintf("delete order #%d", op.TargetID)
	case KindOrderUpdateStatus:
		return fmt.Sprintf("update order #%d status to %s", op.TargetID, op.NewStatus)
	case KindOrderUpdateCustomerName:
		return fmt.Sprintf("change order #%d customer name to %s", op.TargetID, op.NewName)
	case KindOrderUpdatePhone:
		return fmt.Sprintf("update order #%d phone to %s", op.TargetID, op.NewPhone)
	case KindOrderUpdateAddress:
		return fmt.Sprintf("change order #%d address to %s", op.TargetID, op.NewAddress)
	case KindOrderEdit:
		return fmt.Sprintf("view order #%d", op.TargetID)
	case KindProductUpdateStock:
		return fmt.Sprintf("update product #%d stock to %d", op.TargetID, op.NewStock)
	case KindProductUpdatePrice:
		return fmt.Sprintf("update product #%d price to %.2f", op.TargetID, op.NewPrice)
	case KindProductUpdateName:
		return fmt.Sprintf("change product #%d name to %s", op.TargetID, op.NewName)
	case KindProductUpdateDescription:
		return fmt.Sprintf("update product #%d description", op.TargetID)
	case KindProductEdit:
		return fmt.Sprintf("view product #%d", op.TargetID)
	}
	return "unknown operation"
}

// PendingOperation is the at-most-one-per-session record awaiting
// user confirmation. InteractionID points at the audit row created
// when the confirmation prompt was issued, so the resolving message
// can flip its flags.
type PendingOperation struct {
	Operation     Operation `json:"operation"`
	InteractionID uint      `json:"interaction_id"`
	CreatedAt     time.Time `json:"created_at"`
}
