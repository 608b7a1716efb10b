// Package entity provides the registry of movable things placed in a level.
package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// ID identifies an entity for its lifetime.
type ID = uuid.UUID

// Kind distinguishes entities for rendering and lookup.
type Kind string

const (
	// KindPlayer is the entity controlled by input.
	KindPlayer Kind = "player"
	// KindMarker is a static, non-interactive glyph.
	KindMarker Kind = "marker"
)

// Entity is anything with a position in the level.
type Entity struct {
	ID   ID
	Name string
	Kind Kind
	Pos  world.Position
}

// Move applies a movement request against the grid. See world.TryMove.
func (e *Entity) Move(g *world.Grid, dx, dy int) bool {
	return world.TryMove(g, &e.Pos, dx, dy)
}
