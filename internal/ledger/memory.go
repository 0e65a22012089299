package ledger

import (
	"context"
	"sync"
)

// MemoryStore keeps assignments for the lifetime of the process.
type MemoryStore struct {
	mu   sync.RWMutex
	days map[string]Day
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{days: make(map[string]Day)}
}

func (s *MemoryStore) Put(_ context.Context, date string, period int, studentKey, letter string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	day, ok := s.days[date]
	if !ok {
		day = Day{}
		s.days[date] = day
	}
	day[CellKey(period, studentKey)] = letter
	return nil
}

// Load returns a copy of the stored day.
func (s *MemoryStore) Load(_ context.Context, date string) (Day, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := Day{}
	for k, v := range s.days[date] {
		out[k] = v
	}
	return out, nil
}
