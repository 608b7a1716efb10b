// Package game provides the play session and the local terminal game loop.
package game

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// maxGenerateAttempts bounds regeneration when a level comes out without rooms.
const maxGenerateAttempts = 3

// Session owns one level and the entities in it. The level is frozen once
// NewSession returns; only entity positions change afterwards.
type Session struct {
	Level    *world.Dungeon
	Entities *entity.Registry
	Seed     int64
	playerID entity.ID
}

// NewSession generates a level and spawns the player in it.
func NewSession(ctx context.Context, cfg Config) *Session {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	if cfg.Layout == "" {
		cfg.Layout = world.LayoutRooms
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var (
		level *world.Dungeon
		spawn world.Position
		err   error
	)
	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		level = world.NewDungeon(rng)
		level.Build(ctx, cfg.Layout)
		spawn, err = level.SpawnPoint()
		if err == nil || cfg.Layout == world.LayoutScatter {
			break
		}
	}

	if errors.Is(err, world.ErrNoRooms) {
		spawn = world.ScatterSpawn
		if cfg.Layout != world.LayoutScatter {
			span.SetAttributes(attribute.String("warning", "no rooms generated, using fallback position"))
		}
	}

	s := &Session{
		Level:    level,
		Entities: entity.NewRegistry(),
		Seed:     seed,
	}
	s.playerID = s.Entities.Spawn(entity.Entity{Name: "player", Kind: entity.KindPlayer, Pos: spawn})

	for i := 1; i <= cfg.Markers && i < len(level.Rooms); i++ {
		x, y := level.Rooms[i].Center()
		s.Entities.Spawn(entity.Entity{Name: "marker", Kind: entity.KindMarker, Pos: world.Position{X: x, Y: y}})
	}

	connected := true
	for i := 1; i < len(level.Rooms); i++ {
		ax, ay := level.Rooms[i-1].Center()
		bx, by := level.Rooms[i].Center()
		if !level.Grid.Reachable(world.Position{X: ax, Y: ay}, world.Position{X: bx, Y: by}) {
			connected = false
			break
		}
	}

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.String("dungeon.layout", string(cfg.Layout)),
		attribute.Int("dungeon.rooms", len(level.Rooms)),
		attribute.Bool("dungeon.connected", connected),
		attribute.Int("player.start_x", spawn.X),
		attribute.Int("player.start_y", spawn.Y),
		attribute.Int("entities", s.Entities.Count()),
	)

	return s
}

// Player returns the controlled entity.
func (s *Session) Player() *entity.Entity {
	return s.Entities.Get(s.playerID)
}

// Apply performs one input step. It returns false once the player asks to quit.
func (s *Session) Apply(ctx context.Context, intent ui.Intent) bool {
	switch {
	case intent == ui.IntentQuit:
		return false
	case intent.IsMove():
		dx, dy := intent.Delta()
		s.tryMove(ctx, dx, dy)
	}
	return true
}

// tryMove attempts to move the player by the given delta.
func (s *Session) tryMove(ctx context.Context, dx, dy int) {
	_, span := telemetry.Tracer("game").Start(ctx, "player.move")
	defer span.End()

	player := s.Player()
	moved := player.Move(s.Level.Grid, dx, dy)

	span.SetAttributes(
		attribute.Int("move.dx", dx),
		attribute.Int("move.dy", dy),
		attribute.Bool("move.accepted", moved),
		attribute.Int("player.x", player.Pos.X),
		attribute.Int("player.y", player.Pos.Y),
	)
}
