package game

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
)

const helpLine = "arrows/hjkl/wasd: move  q: quit"

// Game runs a session in the local terminal.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	config   Config
	session  *Session
	running  bool
}

// New creates a new game instance.
func New(cfg Config, palette *gamedata.Palette) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		config:   cfg,
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	g.session = NewSession(ctx, g.config)

	for g.running {
		g.renderer.Render(g.session.Level.Grid, g.session.Entities, helpLine)

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	return nil
}

// Seed returns the seed of the running session, or 0 before Run.
func (g *Game) Seed() int64 {
	if g.session == nil {
		return 0
	}
	return g.session.Seed
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		g.running = g.session.Apply(ctx, ui.DecodeKey(ev))
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized
		g.running = false
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
