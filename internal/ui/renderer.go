package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Renderer handles drawing a level and its entities to a canvas.
type Renderer struct {
	canvas  Canvas
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given canvas and palette.
func NewRenderer(canvas Canvas, palette *gamedata.Palette) *Renderer {
	return &Renderer{canvas: canvas, palette: palette}
}

// Render clears the canvas, draws every tile in row-major order, then the
// entities on top and the status line below the map, and flushes.
func (r *Renderer) Render(grid *world.Grid, entities *entity.Registry, status string) {
	r.canvas.Clear()

	for i := 0; i < grid.Len(); i++ {
		x, y := grid.XY(i)
		ch, fg := r.tileGlyph(grid.TileAt(i))
		r.canvas.SetCell(x, y, ch, fg)
	}

	for _, e := range entities.All() {
		ch, fg := r.entityGlyph(e.Kind)
		r.canvas.SetCell(e.Pos.X, e.Pos.Y, ch, fg)
	}

	if status != "" {
		r.drawText(status, grid.Height)
	}

	r.canvas.Show()
}

func (r *Renderer) drawText(msg string, y int) {
	x := 0
	for _, ch := range msg {
		r.canvas.SetCell(x, y, ch, tcell.ColorWhite)
		x++
	}
}

func (r *Renderer) tileGlyph(tile world.Tile) (rune, tcell.Color) {
	if g, ok := r.palette.Tile(tile.String()); ok {
		return g.Rune(), g.TCellColor()
	}
	return tile.Rune(), tcell.ColorGray
}

func (r *Renderer) entityGlyph(kind entity.Kind) (rune, tcell.Color) {
	if g, ok := r.palette.Entity(string(kind)); ok {
		return g.Rune(), g.TCellColor()
	}
	return '?', tcell.ColorWhite
}
