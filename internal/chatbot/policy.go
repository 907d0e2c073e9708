package chatbot

// autoExecuteKinds is the bypass list: operation kinds allowed to run
// without an explicit confirmation round-trip. Adding a kind here is
// the only way to change the policy.
var autoExecuteKinds = map[OperationKind]bool{
	KindOrderUpdateStatus:  true,
	KindProductUpdateStock: true,
}

// RequiresConfirmation decides whether an operation kind must wait for
// an explicit yes/no reply before executing. Every non-Unknown kind
// outside the bypass list requires confirmation; read-only views are
// resolved by the coordinator before the policy is consulted.
func RequiresConfirmation(kind OperationKind) bool {
	if kind == KindUnknown {
		return false
	}
	return !autoExecuteKinds[kind]
}
