package engine

import (
	"sync"

	"handla/internal/category"
	"handla/internal/model"
)

// ItemStore holds the items of the active list in memory. It is the
// single source of truth for rendering and is mutated only by the
// Engine (the mutators are unexported on purpose). Reads and writes are
// mutex-guarded because remote operations resolve on their own
// goroutines.
type ItemStore struct {
	mu    sync.RWMutex
	items []model.Item
}

func NewItemStore() *ItemStore {
	return &ItemStore{}
}

// Replace swaps in a freshly loaded snapshot, e.g. after switching the
// active list.
func (s *ItemStore) Replace(items []model.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]model.Item(nil), items...)
}

// Items returns a copy of the current items.
func (s *ItemStore) Items() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Item(nil), s.items...)
}

func (s *ItemStore) Get(id string) (model.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

func (s *ItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *ItemStore) insertFront(it model.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]model.Item{it}, s.items...)
}

func (s *ItemStore) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// apply mutates the item with the given id in place.
func (s *ItemStore) apply(id string, fn func(*model.Item)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			fn(&s.items[i])
			return true
		}
	}
	return false
}

// findActive returns the non-done item whose normalized name equals
// norm, skipping exclude.
func (s *ItemStore) findActive(norm, exclude string) (model.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID != exclude && !it.Done && category.Normalize(it.Name) == norm {
			return it, true
		}
	}
	return model.Item{}, false
}

// findDone is findActive for done items.
func (s *ItemStore) findDone(norm, exclude string) (model.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID != exclude && it.Done && category.Normalize(it.Name) == norm {
			return it, true
		}
	}
	return model.Item{}, false
}
