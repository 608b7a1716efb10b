package world

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a coordinate falls outside the grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Position is a grid coordinate held by a movable entity.
type Position struct {
	X, Y int
}

// Grid is a flat, row-major array of tiles.
type Grid struct {
	Width  int
	Height int
	tiles  []Tile
}

// NewGrid creates a grid of the given size filled with walls.
func NewGrid(width, height int) *Grid {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = TileWall
	}
	return &Grid{
		Width:  width,
		Height: height,
		tiles:  tiles,
	}
}

// Len returns the number of tiles in the grid.
func (g *Grid) Len() int {
	return len(g.tiles)
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IndexOf maps (x, y) to its linear index. Coordinates outside the grid are
// rejected with ErrOutOfBounds rather than wrapping into a neighbouring row.
func (g *Grid) IndexOf(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, g.Width, g.Height)
	}
	return y*g.Width + x, nil
}

// XY maps a linear index back to its coordinates.
func (g *Grid) XY(index int) (int, int) {
	return index % g.Width, index / g.Width
}

// TileAt returns the tile at the given index. Indices past either end read as wall.
func (g *Grid) TileAt(index int) Tile {
	if index < 0 || index >= len(g.tiles) {
		return TileWall
	}
	return g.tiles[index]
}

// At returns the tile at (x, y). Out-of-bounds coordinates read as wall.
func (g *Grid) At(x, y int) Tile {
	idx, err := g.IndexOf(x, y)
	if err != nil {
		return TileWall
	}
	return g.tiles[idx]
}

// IsPassable returns true if the given position can be walked on.
func (g *Grid) IsPassable(x, y int) bool {
	return g.At(x, y).IsPassable()
}

// set writes a tile at index, ignoring indices outside the grid.
func (g *Grid) set(index int, t Tile) {
	if index < 0 || index >= len(g.tiles) {
		return
	}
	g.tiles[index] = t
}

// fill overwrites every tile.
func (g *Grid) fill(t Tile) {
	for i := range g.tiles {
		g.tiles[i] = t
	}
}

// Clamp pins each axis of p into the grid independently.
func (g *Grid) Clamp(p Position) Position {
	return Position{
		X: clamp(p.X, 0, g.Width-1),
		Y: clamp(p.Y, 0, g.Height-1),
	}
}

// Reachable reports whether to can be reached from from by orthogonal steps
// over passable tiles.
func (g *Grid) Reachable(from, to Position) bool {
	if !g.IsPassable(from.X, from.Y) || !g.IsPassable(to.X, to.Y) {
		return false
	}

	start, _ := g.IndexOf(from.X, from.Y)
	goal, _ := g.IndexOf(to.X, to.Y)

	visited := make([]bool, len(g.tiles))
	visited[start] = true
	queue := []int{start}

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		if idx == goal {
			return true
		}

		x, y := g.XY(idx)
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			next, err := g.IndexOf(x+d[0], y+d[1])
			if err != nil || visited[next] || !g.tiles[next].IsPassable() {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
