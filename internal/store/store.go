package store

import (
	"errors"

	"catalog-cli/internal/model"
)

// ErrNotFound is returned when a referenced id is no longer in the store.
var ErrNotFound = errors.New("item not found")

// Store is the in-memory owner of all catalog items. Insertion order is
// display order. Ids are assigned from a max-id watermark and never
// reused after a delete; gaps are expected.
//
// Lookups are linear. The catalog is a single small page of items, so
// nothing fancier is warranted.
type Store struct {
	items []model.Item
	// watermark is the highest id ever held. Remove never lowers it,
	// so a deleted id cannot come back.
	watermark int
}

// New returns a store holding the given items in order. The slice is
// copied; callers keep no alias into the store.
func New(items []model.Item) *Store {
	s := &Store{}
	if len(items) > 0 {
		s.items = make([]model.Item, len(items))
		copy(s.items, items)
	}
	for _, it := range s.items {
		if it.ID > s.watermark {
			s.watermark = it.ID
		}
	}
	return s
}

// Add appends an item. The caller guarantees a fresh id via NextID;
// uniqueness is not re-checked here.
func (s *Store) Add(it model.Item) {
	s.items = append(s.items, it)
	if it.ID > s.watermark {
		s.watermark = it.ID
	}
}

// FindByID returns the item with the given id, if present.
func (s *Store) FindByID(id int) (model.Item, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

// IndexOf returns the position of the item with the given id, or -1.
func (s *Store) IndexOf(id int) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Replace swaps the item with the given id in place, keeping its
// position. Reports whether the id was present.
func (s *Store) Replace(id int, it model.Item) bool {
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	s.items[i] = it
	return true
}

// Remove deletes the item with the given id, shifting later items up.
// The id is never handed out again. Reports whether the id was present.
func (s *Store) Remove(id int) bool {
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// NextID returns 1 for a store that never held anything, otherwise one
// past the highest id ever assigned. Deletions leave gaps, never holes
// to refill.
func (s *Store) NextID() int {
	return s.watermark + 1
}

// Items returns a copy of the collection in display order. Nobody holds
// a reference into the store beyond a render cycle.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len reports the number of items.
func (s *Store) Len() int { return len(s.items) }
