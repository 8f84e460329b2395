package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/calendlam/calendlam/internal/core/domain"
	"github.com/calendlam/calendlam/internal/core/ports/driven"
)

// Ensure LayoutStore implements the interface.
var _ driven.LayoutStore = (*LayoutStore)(nil)

// LayoutStore is an in-memory implementation of driven.LayoutStore.
type LayoutStore struct {
	mu      sync.RWMutex
	layouts map[string]domain.Layout
}

// NewLayoutStore creates a new in-memory layout store.
func NewLayoutStore() *LayoutStore {
	return &LayoutStore{
		layouts: make(map[string]domain.Layout),
	}
}

// Save stores or replaces a layout.
func (s *LayoutStore) Save(_ context.Context, layout domain.Layout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	layout.PrintOrder = append([]int(nil), layout.PrintOrder...)
	s.layouts[layout.ID] = layout
	return nil
}

// Get retrieves a layout by ID.
func (s *LayoutStore) Get(_ context.Context, id string) (*domain.Layout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	layout, ok := s.layouts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	layout.PrintOrder = append([]int(nil), layout.PrintOrder...)
	return &layout, nil
}

// List returns layouts newest first.
func (s *LayoutStore) List(_ context.Context, limit int) ([]domain.Layout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Layout, 0, len(s.layouts))
	for _, layout := range s.layouts {
		result = append(result, layout)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Delete removes a layout by ID.
func (s *LayoutStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.layouts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.layouts, id)
	return nil
}
