package record

import (
	"context"
	"sync"

	"lifelog/internal/core"
)

// Snapshot is one generation kept by Memory.
type Snapshot struct {
	Generation uint64
	Grid       *core.Grid
}

// Memory keeps a copy of every generation it is handed, in arrival order.
// A positive Limit bounds the history; the oldest entries are dropped first.
type Memory struct {
	Limit int

	mu   sync.Mutex
	hist []Snapshot
}

// Record stores a clone of snapshot. It never fails.
func (m *Memory) Record(_ context.Context, generation uint64, snapshot *core.Grid) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hist = append(m.hist, Snapshot{Generation: generation, Grid: snapshot.Clone()})
	if m.Limit > 0 && len(m.hist) > m.Limit {
		m.hist = append(m.hist[:0], m.hist[len(m.hist)-m.Limit:]...)
	}
	return nil
}

// Len reports how many generations are held.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.hist)
}

// Snapshots returns the held history, oldest first.
func (m *Memory) Snapshots() []Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Snapshot(nil), m.hist...)
}

// Fetch returns the most recent snapshot of generation for gridID, or
// ErrNotRecorded.
func (m *Memory) Fetch(_ context.Context, gridID string, generation uint64) (*core.Grid, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.hist) - 1; i >= 0; i-- {
		s := m.hist[i]
		if s.Generation == generation && s.Grid.ID() == gridID {
			return s.Grid.Clone(), nil
		}
	}
	return nil, ErrNotRecorded
}
