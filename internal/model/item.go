package model

import (
	"errors"
	"strings"
)

// Item is the domain model for a catalog entry.
// Kept minimal on purpose; it’s easy to evolve.
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validation failures. Each maps to a user-visible message; no
// mutation happens once one of these is returned.
var (
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrEmptyDescription = errors.New("description cannot be empty")
)

// Validate trims both fields and rejects empty ones. Pure; no side effects.
func Validate(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// NewItem builds an Item with trimmed fields. Callers validate first;
// the id comes from the store's watermark.
func NewItem(id int, name, description string) Item {
	return Item{
		ID:          id,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
}
