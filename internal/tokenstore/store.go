package tokenstore

import "sync"

// Store persists the bearer token for this installation under a single key.
// Get reports an empty string when no token is stored; it never fails.
// Clear is idempotent.
type Store interface {
	Get() string
	Set(token string) error
	Clear() error
}

type memory struct {
	mu    sync.Mutex
	token string
}

// NewMemory returns a Store that lives only as long as the process.
func NewMemory() Store {
	return &memory{}
}

func (m *memory) Get() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *memory) Set(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
