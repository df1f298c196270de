package journal

import (
	"context"
	"sort"
	"sync"
)

// MemoryJournal is an in-memory Journal for tests and ephemeral runs.
type MemoryJournal struct {
	mu      sync.RWMutex
	entries []*Entry
}

// NewMemoryJournal creates an empty in-memory journal.
func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{}
}

// Record persists one entry.
func (m *MemoryJournal) Record(ctx context.Context, entry *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *entry
	m.entries = append(m.entries, &copied)
	return nil
}

// Query returns entries matching the query, newest first.
func (m *MemoryJournal) Query(ctx context.Context, q *Query) ([]*Entry, error) {
	if q == nil {
		q = &Query{}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []*Entry
	for _, e := range m.entries {
		if q.RunID != "" && e.RunID != q.RunID {
			continue
		}
		if q.Server != "" && e.Server != q.Server {
			continue
		}
		if q.Status != "" && e.Status != q.Status {
			continue
		}
		if q.Since != nil && e.StartedTime.Before(*q.Since) {
			continue
		}
		if q.Until != nil && e.StartedTime.After(*q.Until) {
			continue
		}
		copied := *e
		matched = append(matched, &copied)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].StartedTime.After(matched[j].StartedTime)
	})

	offset := q.Offset
	if offset > len(matched) {
		offset = len(matched)
	}
	matched = matched[offset:]

	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}

	return matched, nil
}

// Close is a no-op for the in-memory journal.
func (m *MemoryJournal) Close() error {
	return nil
}
