// Package catalog holds the page session: the CRUD operations over the
// item store and the two-state form mode {Creating, Editing(id)}.
package catalog

import (
	"errors"
	"fmt"

	"catalog-cli/internal/model"
	"catalog-cli/internal/store"
)

// ErrDeleteCanceled is returned when the confirmation gate declines a
// delete. The store is untouched.
var ErrDeleteCanceled = errors.New("delete canceled")

// Confirmer gates destructive operations. The TUI answers with a modal,
// the CLI with a y/N prompt; tests substitute a fake.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Session owns one page worth of catalog state. All mutation goes
// through it; each call runs to completion before the next.
type Session struct {
	store   *store.Store
	confirm Confirmer

	// Form mode. editID == 0 means Creating; otherwise Editing(editID).
	// Only the id is held here, never the item, so a stale copy can't
	// shadow the store.
	editID int
}

// NewSession wraps a store with the given confirmation gate.
func NewSession(st *store.Store, confirm Confirmer) *Session {
	return &Session{store: st, confirm: confirm}
}

// Store exposes the underlying collection for rendering.
func (s *Session) Store() *store.Store { return s.store }

// Editing reports the current form mode: (id, true) while editing an
// existing item, (0, false) while creating.
func (s *Session) Editing() (int, bool) {
	return s.editID, s.editID != 0
}

// Cancel abandons any in-progress edit and returns the form to
// creation mode. The store is untouched.
func (s *Session) Cancel() { s.editID = 0 }

// Add validates, assigns the next id and appends. On a validation
// error nothing is stored. Success leaves the form in creation mode.
func (s *Session) Add(name, description string) (model.Item, error) {
	if err := model.Validate(name, description); err != nil {
		return model.Item{}, err
	}
	it := model.NewItem(s.store.NextID(), name, description)
	s.store.Add(it)
	s.editID = 0
	return it, nil
}

// BeginEdit switches the form to Editing(id) and returns the current
// fields for prefill.
func (s *Session) BeginEdit(id int) (model.Item, error) {
	it, ok := s.store.FindByID(id)
	if !ok {
		return model.Item{}, fmt.Errorf("edit item %d: %w", id, store.ErrNotFound)
	}
	s.editID = id
	return it, nil
}

// Update validates, then replaces the named item's fields in place,
// keeping its id and position. Success leaves the form in creation mode.
func (s *Session) Update(id int, name, description string) (model.Item, error) {
	if err := model.Validate(name, description); err != nil {
		return model.Item{}, err
	}
	it := model.NewItem(id, name, description)
	if !s.store.Replace(id, it) {
		return model.Item{}, fmt.Errorf("update item %d: %w", id, store.ErrNotFound)
	}
	s.editID = 0
	return it, nil
}

// Delete removes the named item after the confirmation gate approves.
// A declined gate returns ErrDeleteCanceled with no mutation. Deleting
// the item currently being edited drops the form back to creation mode.
func (s *Session) Delete(id int) error {
	it, ok := s.store.FindByID(id)
	if !ok {
		return fmt.Errorf("delete item %d: %w", id, store.ErrNotFound)
	}
	if s.confirm != nil && !s.confirm.Confirm(fmt.Sprintf("Delete %q?", it.Name)) {
		return ErrDeleteCanceled
	}
	s.store.Remove(id)
	if s.editID == id {
		s.editID = 0
	}
	return nil
}

// Get looks up an item for the detail view.
func (s *Session) Get(id int) (model.Item, error) {
	it, ok := s.store.FindByID(id)
	if !ok {
		return model.Item{}, fmt.Errorf("item %d: %w", id, store.ErrNotFound)
	}
	return it, nil
}
