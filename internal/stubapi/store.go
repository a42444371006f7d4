package stubapi

import (
	"sync"

	"github.com/google/uuid"

	"github.com/heartlinkhq/admin-console/internal/model"
)

// Store is an insertion-ordered in-memory collection, the stub's stand-in
// for a database table.
type Store[T model.Identifier] struct {
	mu    sync.RWMutex
	order []uuid.UUID
	items map[uuid.UUID]T
}

func NewStore[T model.Identifier]() *Store[T] {
	return &Store[T]{items: make(map[uuid.UUID]T)}
}

// List returns all items in insertion order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Get returns one item by id.
func (s *Store[T]) Get(id uuid.UUID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	return item, ok
}

// Put inserts or replaces an item, keeping first-insertion order.
func (s *Store[T]) Put(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := item.Identity()
	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = item
}

// Delete removes an item; deleting an absent id reports false.
func (s *Store[T]) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return false
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Page slices one page out of a filtered view, returning the page items and
// the filtered total.
func (s *Store[T]) Page(page, limit int, keep func(T) bool) ([]T, int) {
	all := s.List()
	if keep != nil {
		filtered := all[:0:0]
		for _, item := range all {
			if keep(item) {
				filtered = append(filtered, item)
			}
		}
		all = filtered
	}

	total := len(all)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	start := (page - 1) * limit
	if start >= total {
		return []T{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return all[start:end], total
}

// Find returns the items matching a predicate, in insertion order.
func (s *Store[T]) Find(keep func(T) bool) []T {
	var out []T
	for _, item := range s.List() {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
