// Package catalog holds the static, read-only library of exercise
// definitions the app ships with. Workout instantiation resolves bare
// exercise references against it; nothing ever mutates it.
package catalog

import (
	"errors"

	"dialed/fitness-app/internal/domain"
)

var ErrNotFound = errors.New("exercise not found in catalog")

// Catalog is an immutable, injected lookup over exercise definitions.
type Catalog struct {
	ordered []domain.Exercise
	byID    map[string]domain.Exercise
}

// New builds a catalog from the given definitions. Later duplicates of an ID
// are ignored; first definition wins.
func New(definitions []domain.Exercise) *Catalog {
	c := &Catalog{
		byID: make(map[string]domain.Exercise, len(definitions)),
	}
	for _, def := range definitions {
		if _, exists := c.byID[def.ID]; exists {
			continue
		}
		c.byID[def.ID] = def
		c.ordered = append(c.ordered, def)
	}
	return c
}

// Default returns a catalog seeded with the built-in exercise library.
func Default() *Catalog {
	return New(seed())
}

// List returns all definitions in seed order. Callers get deep copies.
func (c *Catalog) List() []domain.Exercise {
	out := make([]domain.Exercise, len(c.ordered))
	for i, def := range c.ordered {
		out[i] = def.Clone()
	}
	return out
}

// GetByID returns a deep copy of the definition with the given ID.
func (c *Catalog) GetByID(id string) (*domain.Exercise, error) {
	def, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := def.Clone()
	return &cp, nil
}
