package state

import (
	"sync"
	"time"

	"github.com/hartmandrector/polarsim/internal/dynamics"
)

// Manager holds a concurrent-safe cache of the most recent dynamics snapshot.
type Manager struct {
	mu             sync.RWMutex
	snapshot       dynamics.Snapshot
	lastUpdated    time.Time
	staleThreshold time.Duration
}

// NewManager creates a Manager with the given stale threshold.
// A zero threshold disables staleness checking.
func NewManager(staleThreshold time.Duration) *Manager {
	return &Manager{staleThreshold: staleThreshold}
}

// Update stores a new snapshot and records the current time.
func (m *Manager) Update(snap dynamics.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot = snap
	m.lastUpdated = time.Now()
}

// GetSnapshot returns the cached snapshot, or ErrStale if no data has been
// received yet or the data age exceeds the stale threshold.
func (m *Manager) GetSnapshot() (dynamics.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.lastUpdated.IsZero() {
		return dynamics.Snapshot{}, ErrStale
	}
	if m.staleThreshold > 0 && time.Since(m.lastUpdated) > m.staleThreshold {
		return dynamics.Snapshot{}, ErrStale
	}
	return m.snapshot, nil
}

// LastUpdated returns the time of the most recent Update, or zero if never updated.
func (m *Manager) LastUpdated() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastUpdated
}
