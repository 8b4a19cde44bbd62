// Package token holds the session credential for the dashboard client. The
// facade consumes it read-only through api.TokenProvider; the CLI writes to
// it after login. Stores are injected, never reached through package globals.
package token

import "sync"

// Store is a read-write credential store. Token and HasToken satisfy
// api.TokenProvider.
type Store interface {
	Token() string
	HasToken() bool
	SetToken(token string) error
	Clear() error
	Close() error
}

// memoryStore keeps the token in memory for the lifetime of the process.
type memoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore returns an in-memory Store, empty until SetToken.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (m *memoryStore) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *memoryStore) HasToken() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != ""
}

func (m *memoryStore) SetToken(token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *memoryStore) Clear() error {
	return m.SetToken("")
}

func (m *memoryStore) Close() error { return nil }
