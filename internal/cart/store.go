package cart

import (
	"context"
	"sync"
)

// Store persists cart lines per session. Visibility (IsOpen) is UI state
// and intentionally not part of the persisted snapshot.
type Store interface {
	// Load returns the persisted lines and whether a snapshot existed.
	Load(ctx context.Context, sessionID string) ([]Line, bool, error)
	Save(ctx context.Context, sessionID string, lines []Line) error
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStore keeps cart lines in process memory. It is the default when
// Redis is not configured and the double used in tests; carts then live
// only as long as the process.
type MemoryStore struct {
	mu    sync.RWMutex
	lines map[string][]Line
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{lines: map[string][]Line{}}
}

func (m *MemoryStore) Load(_ context.Context, sessionID string) ([]Line, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	lines, ok := m.lines[sessionID]
	if !ok {
		return nil, false, nil
	}
	snapshot := make([]Line, len(lines))
	copy(snapshot, lines)
	return snapshot, true, nil
}

func (m *MemoryStore) Save(_ context.Context, sessionID string, lines []Line) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := make([]Line, len(lines))
	copy(snapshot, lines)
	m.lines[sessionID] = snapshot
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lines, sessionID)
	return nil
}
