package logic

import (
	"sync"

	"selectdrop/internal/domain"
)

// MemorySelectionStore is an in-memory implementation of SelectionStore
type MemorySelectionStore struct {
	mu        sync.RWMutex
	selection []domain.Option
}

// NewMemorySelectionStore creates a store seeded with an initial selection
func NewMemorySelectionStore(initial []domain.Option) *MemorySelectionStore {
	s := &MemorySelectionStore{}
	s.Set(initial)
	return s
}

// Get returns a copy to prevent external modification
func (s *MemorySelectionStore) Get() []domain.Option {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Option, len(s.selection))
	copy(result, s.selection)
	return result
}

func (s *MemorySelectionStore) Set(selection []domain.Option) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection = make([]domain.Option, len(selection))
	copy(s.selection, selection)
}

func (s *MemorySelectionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selection)
}
