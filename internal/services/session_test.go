package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayeshmadusanka/energyrush/internal/storage"
)

func TestSessionValues(t *testing.T) {
	sm := NewSessionManager(storage.NewMemoryStore())

	value, err := sm.Get("s1", "pending_operation")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, sm.Put("s1", "pending_operation", "payload"))

	value, err = sm.Get("s1", "pending_operation")
	require.NoError(t, err)
	assert.Equal(t, "payload", value)

	// Values are scoped per session.
	value, err = sm.Get("s2", "pending_operation")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	// Last write wins.
	require.NoError(t, sm.Put("s1", "pending_operation", "replaced"))
	value, err = sm.Get("s1", "pending_operation")
	require.NoError(t, err)
	assert.Equal(t, "replaced", value)

	require.NoError(t, sm.Clear("s1", "pending_operation"))
	value, err = sm.Get("s1", "pending_operation")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestSessionLockSerializes(t *testing.T) {
	sm := NewSessionManager(storage.NewMemoryStore())

	counter := 0
	var wg sync.WaitGroup
	for n := 0; n < 50; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := sm.Lock("s1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestSessionLockIndependentSessions(t *testing.T) {
	sm := NewSessionManager(storage.NewMemoryStore())

	unlock := sm.Lock("s1")
	defer unlock()

	// A different session acquires its lock without blocking.
	done := make(chan struct{})
	go func() {
		u := sm.Lock("s2")
		u()
		close(done)
	}()
	<-done
}
