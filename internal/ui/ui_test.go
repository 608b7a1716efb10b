package ui

import (
	"context"
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

type cell struct {
	r  rune
	fg tcell.Color
}

// fakeCanvas records cells the way a terminal would show them.
type fakeCanvas struct {
	cells   map[[2]int]cell
	writes  int
	clears  int
	flushes int
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{cells: make(map[[2]int]cell)}
}

func (c *fakeCanvas) Clear() {
	c.clears++
	c.cells = make(map[[2]int]cell)
}

func (c *fakeCanvas) SetCell(x, y int, r rune, fg tcell.Color) {
	c.writes++
	c.cells[[2]int{x, y}] = cell{r, fg}
}

func (c *fakeCanvas) Show() { c.flushes++ }

func TestRenderDrawsTilesThenEntities(t *testing.T) {
	d := world.NewDungeon(rand.New(rand.NewSource(5)))
	d.Generate(context.Background())
	spawn, err := d.SpawnPoint()
	if err != nil {
		t.Fatalf("SpawnPoint: %v", err)
	}

	reg := entity.NewRegistry()
	reg.Spawn(entity.Entity{Kind: entity.KindPlayer, Pos: spawn})

	canvas := newFakeCanvas()
	r := NewRenderer(canvas, gamedata.MustLoadPalette())
	r.Render(d.Grid, reg, "hi")

	if canvas.clears != 1 || canvas.flushes != 1 {
		t.Errorf("Expected one clear and one flush, got %d/%d", canvas.clears, canvas.flushes)
	}
	if canvas.writes != d.Grid.Len()+3 {
		t.Errorf("Expected %d writes, got %d", d.Grid.Len()+3, canvas.writes)
	}
	if got := canvas.cells[[2]int{1, d.Grid.Height}]; got.r != 'i' {
		t.Errorf("Expected status text below the map, got %q", got.r)
	}
	if got := canvas.cells[[2]int{0, 0}]; got.r != '#' || got.fg != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("Wall cell = %+v", got)
	}
	if got := canvas.cells[[2]int{spawn.X, spawn.Y}]; got.r != '@' {
		t.Errorf("Expected player glyph at spawn, got %q", got.r)
	}
	if got := canvas.cells[[2]int{spawn.X + 1, spawn.Y}]; got.r != '.' {
		t.Errorf("Expected floor glyph beside spawn, got %q", got.r)
	}
}

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Intent
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), IntentRight},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), IntentUp},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), IntentDown},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), IntentLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), IntentNone},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), IntentNone},
	}
	for _, tt := range tests {
		if got := DecodeKey(tt.ev); got != tt.want {
			t.Errorf("DecodeKey(%s) = %v, want %v", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestIntentDelta(t *testing.T) {
	tests := []struct {
		in     Intent
		dx, dy int
	}{
		{IntentLeft, -1, 0},
		{IntentRight, 1, 0},
		{IntentUp, 0, -1},
		{IntentDown, 0, 1},
		{IntentQuit, 0, 0},
		{IntentNone, 0, 0},
	}
	for _, tt := range tests {
		dx, dy := tt.in.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Delta() = (%d,%d), want (%d,%d)", tt.in, dx, dy, tt.dx, tt.dy)
		}
		if tt.in.IsMove() != (dx != 0 || dy != 0) {
			t.Errorf("%v.IsMove() inconsistent with Delta", tt.in)
		}
	}
}
