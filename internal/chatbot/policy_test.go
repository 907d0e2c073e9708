package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiresConfirmationBypassList(t *testing.T) {
	// Exactly two kinds skip the confirmation step.
	assert.False(t, RequiresConfirmation(KindOrderUpdateStatus))
	assert.False(t, RequiresConfirmation(KindProductUpdateStock))
}

func TestRequiresConfirmationEverythingElse(t *testing.T) {
	for _, kind := range []OperationKind{
		KindOrderDelete,
		KindOrderUpdateCustomerName,
		KindOrderUpdatePhone,
		KindOrderUpdateAddress,
		KindOrderEdit,
		KindProductUpdatePrice,
		KindProductUpdateName,
		KindProductUpdateDescription,
		KindProductEdit,
	} {
		assert.True(t, RequiresConfirmation(kind), string(kind))
	}
}

func TestRequiresConfirmationUnknown(t *testing.T) {
	// Unknown never reaches an executor, so it never needs confirming.
	assert.False(t, RequiresConfirmation(KindUnknown))
}
