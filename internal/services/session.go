package services

import (
	"sync"

	"github.com/ayeshmadusanka/energyrush/internal/storage"
)

// SessionManager guards per-session conversation state. Sessions are
// identified by an opaque token supplied by the caller; all durable
// state lives in the store's session memory table so it survives
// process restarts and works across independent HTTP requests.
//
// Distinct sessions never block each other. Within one session the
// Lock method serializes the read-pending/act/clear-pending sequence
// so two concurrent confirmation replies cannot both execute the same
// operation.
type SessionManager struct {
	store storage.Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSessionManager creates a new session manager
func NewSessionManager(store storage.Store) *SessionManager {
	return &SessionManager{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the critical section for one session id and returns
// the unlock function.
func (sm *SessionManager) Lock(sessionID string) func() {
	sm.mu.Lock()
	lock, exists := sm.locks[sessionID]
	if !exists {
		lock = &sync.Mutex{}
		sm.locks[sessionID] = lock
	}
	sm.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Put stores a session-scoped value. Writes are last-write-wins.
func (sm *SessionManager) Put(sessionID, key, value string) error {
	return sm.store.PutSessionValue(sessionID, key, value)
}

// Get retrieves a session-scoped value; missing keys return "".
func (sm *SessionManager) Get(sessionID, key string) (string, error) {
	return sm.store.GetSessionValue(sessionID, key)
}

// Clear logically removes a key by overwriting it with an empty value.
func (sm *SessionManager) Clear(sessionID, key string) error {
	return sm.store.PutSessionValue(sessionID, key, "")
}
