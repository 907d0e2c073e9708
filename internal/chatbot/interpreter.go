package chatbot

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/ayeshmadusanka/energyrush/internal/models"
	"github.com/ayeshmadusanka/energyrush/internal/services"
	"github.com/ayeshmadusanka/energyrush/internal/storage"
)

// pendingKey is the well-known session memory slot holding the
// serialized pending operation.
const pendingKey = "pending_operation"

// DefaultPendingTTL bounds how long a stored confirmation request
// stays answerable. An expired pending operation auto-cancels.
const DefaultPendingTTL = 5 * time.Minute

// Response types surfaced to callers
const (
	TypeHelp                 = "help"
	TypeConfirmationRequired = "confirmation_required"
	TypeSuccess              = "success"
	TypeError                = "error"
	TypeInfo                 = "info"
	TypeCancelled            = "cancelled"
)

// Result is the structured outcome of one processed message. The
// response text is plain; any markdown/HTML rendering is a caller
// concern.
type Result struct {
	Response             string `json:"response"`
	Type                 string `json:"type"`
	Success              bool   `json:"success"`
	RequiresConfirmation bool   `json:"requires_confirmation,omitempty"`
}

// Interpreter drives the per-session command state machine: parse,
// policy check, confirmation round-trip, execution, audit. All
// collaborators are injected so it can be tested against the
// in-memory store.
type Interpreter struct {
	store      storage.Store
	sessions   *services.SessionManager
	executor   *Executor
	pendingTTL time.Duration
}

// NewInterpreter creates a new chat interpreter
func NewInterpreter(store storage.Store, sessions *services.SessionManager, pendingTTL time.Duration) *Interpreter {
	if pendingTTL <= 0 {
		pendingTTL = DefaultPendingTTL
	}
	return &Interpreter{
		store:      store,
		sessions:   sessions,
		executor:   NewExecutor(store),
		pendingTTL: pendingTTL,
	}
}

// HandleMessage processes one inbound admin message for a session and
// returns the structured reply. The whole read-pending/act/clear
// sequence runs inside the session's critical section, so concurrent
// messages for one session cannot double-execute a pending operation.
func (i *Interpreter) HandleMessage(sessionID, message string) *Result {
	unlock := i.sessions.Lock(sessionID)
	defer unlock()

	log.Printf("Chatbot: processing message for session %s: %q", sessionID, message)

	if IsAffirmative(message) {
		return i.handleConfirm(sessionID, message)
	}
	if IsNegative(message) {
		return i.handleCancel(sessionID, message)
	}

	op := Parse(message)
	if op.Kind == KindUnknown {
		if result, handled := i.handleQuery(sessionID, message); handled {
			return result
		}
		result := &Result{Response: helpText(message), Type: TypeHelp, Success: true}
		i.record(sessionID, message, result.Response, nil, false, false, false)
		return result
	}

	// Read-only views resolve immediately; confirmation protects
	// destructive mutations only.
	if op.IsReadOnly() {
		res := i.executor.Execute(op)
		result := &Result{Response: res.Message, Type: typeFor(res.Success), Success: res.Success}
		i.record(sessionID, message, result.Response, &op, false, false, false)
		return result
	}

	if !RequiresConfirmation(op.Kind) {
		res := i.executor.Execute(op)
		result := &Result{Response: res.Message, Type: typeFor(res.Success), Success: res.Success}
		i.record(sessionID, message, result.Response, &op, false, false, res.Success)
		return result
	}

	return i.requestConfirmation(sessionID, message, op)
}

// requestConfirmation stores the operation as pending and emits the
// prompt. A prior unresolved pending operation is superseded: it can
// never execute afterwards, and the reply says so.
func (i *Interpreter) requestConfirmation(sessionID, message string, op Operation) *Result {
	prompt, err := i.executor.ConfirmationPrompt(op)
	if err != nil {
		response := notFoundMessage(op)
		i.record(sessionID, message, response, &op, false, false, false)
		return &Result{Response: response, Type: TypeError, Success: false}
	}

	prior, expired, _ := i.loadPending(sessionID)
	if prior != nil && !expired {
		prompt += fmt.Sprintf("\n\n(Your previous pending request to %s was discarded.)", prior.Operation.Describe())
	}

	interactionID := i.record(sessionID, message, prompt, &op, true, false, false)

	pending := PendingOperation{Operation: op, InteractionID: interactionID, CreatedAt: time.Now()}
	if err := i.savePending(sessionID, pending); err != nil {
		log.Printf("Failed to store pending operation for session %s: %v", sessionID, err)
		return &Result{Response: "❌ Failed to store the pending operation. Please try again.", Type: TypeError, Success: false}
	}

	return &Result{Response: prompt, Type: TypeConfirmationRequired, Success: true, RequiresConfirmation: true}
}

func (i *Interpreter) handleConfirm(sessionID, message string) *Result {
	pending, expired, err := i.loadPending(sessionID)
	if err != nil {
		log.Printf("Failed to load pending operation for session %s: %v", sessionID, err)
	}

	if pending == nil {
		response := "ℹ️ There is no operation waiting for confirmation."
		i.record(sessionID, message, response, nil, false, false, false)
		return &Result{Response: response, Type: TypeInfo, Success: false}
	}

	if expired {
		i.clearPending(sessionID)
		response := fmt.Sprintf("⏰ The pending request to %s expired and was cancelled. Please issue the command again.", pending.Operation.Describe())
		i.record(sessionID, message, response, nil, false, false, false)
		return &Result{Response: response, Type: TypeInfo, Success: false}
	}

	res := i.executor.Execute(pending.Operation)
	i.clearPending(sessionID)

	i.record(sessionID, message, res.Message, &pending.Operation, false, true, res.Success)
	if err := i.store.UpdateInteraction(pending.InteractionID, true, res.Success); err != nil {
		log.Printf("Failed to update interaction %d: %v", pending.InteractionID, err)
	}

	return &Result{Response: res.Message, Type: typeFor(res.Success), Success: res.Success}
}

func (i *Interpreter) handleCancel(sessionID, message string) *Result {
	pending, expired, err := i.loadPending(sessionID)
	if err != nil {
		log.Printf("Failed to load pending operation for session %s: %v", sessionID, err)
	}

	if pending == nil || expired {
		i.clearPending(sessionID)
		response := "ℹ️ There is no operation waiting for confirmation."
		i.record(sessionID, message, response, nil, false, false, false)
		return &Result{Response: response, Type: TypeInfo, Success: false}
	}

	i.clearPending(sessionID)
	response := fmt.Sprintf("🚫 Cancelled: %s was not performed.", pending.Operation.Describe())

	i.record(sessionID, message, response, &pending.Operation, false, false, false)
	if err := i.store.UpdateInteraction(pending.InteractionID, false, false); err != nil {
		log.Printf("Failed to update interaction %d: %v", pending.InteractionID, err)
	}

	return &Result{Response: response, Type: TypeCancelled, Success: true}
}

// record appends the audit row for one inbound message. Audit failures
// are logged, never surfaced; the interaction id is 0 in that case.
func (i *Interpreter) record(sessionID, userMessage, response string, op *Operation, confirmationRequired, confirmed, executed bool) uint {
	interaction := &models.ChatInteraction{
		SessionID:            sessionID,
		UserMessage:          userMessage,
		ResponseText:         response,
		ConfirmationRequired: confirmationRequired,
		Confirmed:            confirmed,
		Executed:             executed,
	}
	if op != nil {
		interaction.OperationKind = string(op.Kind)
		interaction.TargetID = op.TargetID
	}

	created, err := i.store.CreateInteraction(interaction)
	if err != nil {
		log.Printf("Failed to record chat interaction for session %s: %v", sessionID, err)
		return 0
	}
	return created.ID
}

func (i *Interpreter) loadPending(sessionID string) (*PendingOperation, bool, error) {
	value, err := i.sessions.Get(sessionID, pendingKey)
	if err != nil {
		return nil, false, err
	}
	if value == "" {
		return nil, false, nil
	}

	var pending PendingOperation
	if err := json.Unmarshal([]byte(value), &pending); err != nil {
		return nil, false, err
	}

	expired := time.Since(pending.CreatedAt) > i.pendingTTL
	return &pending, expired, nil
}

func (i *Interpreter) savePending(sessionID string, pending PendingOperation) error {
	data, err := json.Marshal(pending)
	if err != nil {
		return err
	}
	return i.sessions.Put(sessionID, pendingKey, string(data))
}

func (i *Interpreter) clearPending(sessionID string) {
	if err := i.sessions.Clear(sessionID, pendingKey); err != nil {
		log.Printf("Failed to clear pending operation for session %s: %v", sessionID, err)
	}
}

func typeFor(success bool) string {
	if success {
		return TypeSuccess
	}
	return TypeError
}

func notFoundMessage(op Operation) string {
	if op.Kind == KindProductUpdateStock || op.Kind == KindProductUpdatePrice ||
		op.Kind == KindProductUpdateName || op.Kind == KindProductUpdateDescription ||
		op.Kind == KindProductEdit {
		return fmt.Sprintf("❌ Product #%d not found.", op.TargetID)
	}
	return fmt.Sprintf("❌ Order #%d not found.", op.TargetID)
}
