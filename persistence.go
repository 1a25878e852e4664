package lingua

import "sync"

// Persistence stores the user's last explicit locale choice across sessions.
// Load is consulted once, at Context construction; Save is called
// synchronously on every SetLocale before any dictionary load begins.
type Persistence interface {
	Load() (code string, ok bool)
	Save(code string) error
}

// MemoryPersistence is an in-process Persistence, useful in tests and in
// environments without durable client storage.
type MemoryPersistence struct {
	mu   sync.Mutex
	code string
	set  bool
}

// NewMemoryPersistence creates an empty in-memory preference store.
func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{}
}

func (m *MemoryPersistence) Load() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.code, m.set
}

func (m *MemoryPersistence) Save(code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.code = code
	m.set = true
	return nil
}
