package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Glyph is a display character and its foreground color.
type Glyph struct {
	Char  string `json:"glyph"` // Single character for rendering (e.g., "#")
	Color string `json:"color"` // Hex color code (e.g., "#00FF00")
}

// Rune returns the glyph as a rune for rendering.
func (g Glyph) Rune() rune {
	for _, r := range g.Char {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color, white if it does not parse.
func (g Glyph) TCellColor() tcell.Color {
	color, err := ParseHexColor(g.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// Palette maps tile and entity kinds to glyphs.
type Palette struct {
	Tiles    map[string]Glyph `json:"tiles"`    // Keyed by tile name ("wall", "floor")
	Entities map[string]Glyph `json:"entities"` // Keyed by entity kind ("player", "marker")
}

// Tile returns the glyph for a tile name.
func (p *Palette) Tile(name string) (Glyph, bool) {
	g, ok := p.Tiles[name]
	return g, ok
}

// Entity returns the glyph for an entity kind.
func (p *Palette) Entity(kind string) (Glyph, bool) {
	g, ok := p.Entities[kind]
	return g, ok
}

// Validate checks that every glyph has a character and a parseable color.
func (p *Palette) Validate() error {
	var errs []error
	check := func(group, name string, g Glyph) {
		if g.Char == "" {
			errs = append(errs, fmt.Errorf("%s %q: empty glyph", group, name))
		}
		if _, err := ParseHexColor(g.Color); err != nil {
			errs = append(errs, fmt.Errorf("%s %q: %w", group, name, err))
		}
	}
	for name, g := range p.Tiles {
		check("tile", name, g)
	}
	for name, g := range p.Entities {
		check("entity", name, g)
	}
	return errors.Join(errs...)
}

// LoadPalette loads and validates the embedded palette.json.
func LoadPalette() (*Palette, error) {
	p, err := Load[Palette]("palette.json")
	if err != nil {
		return nil, err
	}
	if len(p.Tiles) == 0 {
		return nil, errors.New("no tiles defined in palette.json")
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid palette: %w", err)
	}
	return &p, nil
}

// MustLoadPalette loads the palette, panicking on error.
// Use this for data that must be present for the game to function.
func MustLoadPalette() *Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}
