package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

const (
	// Dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 50

	// Room placement parameters
	MaxRooms    = 30
	MinRoomSize = 6
	MaxRoomSize = 10 // exclusive

	// Scatter layout parameters
	scatterWalls = 400
)

// ScatterSpawn is the fixed spawn point of the scatter layout, never walled over.
var ScatterSpawn = Position{X: 40, Y: 25}

// ErrNoRooms is returned when a spawn point is requested from a dungeon without rooms.
var ErrNoRooms = errors.New("no rooms generated")

// Layout selects a generation strategy.
type Layout string

const (
	// LayoutRooms places rectangular rooms joined by L-shaped corridors.
	LayoutRooms Layout = "rooms"
	// LayoutScatter opens the whole map and scatters single wall tiles.
	LayoutScatter Layout = "scatter"
)

// ParseLayout converts a layout name to a Layout. The empty string selects LayoutRooms.
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case "", LayoutRooms:
		return LayoutRooms, nil
	case LayoutScatter:
		return LayoutScatter, nil
	default:
		return "", fmt.Errorf("unknown layout %q", s)
	}
}

// Rand is the random source used during generation. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Dungeon is a generated level: the tile grid and the rooms carved into it.
// It is written only by Generate and GenerateScatter and read-only afterwards.
type Dungeon struct {
	Grid  *Grid
	Rooms []Rect
	rng   Rand
}

// NewDungeon creates a new dungeon filled with walls that draws from rng.
func NewDungeon(rng Rand) *Dungeon {
	return &Dungeon{
		Grid:  NewGrid(DefaultWidth, DefaultHeight),
		Rooms: make([]Rect, 0, MaxRooms),
		rng:   rng,
	}
}

// Width returns the grid width.
func (d *Dungeon) Width() int { return d.Grid.Width }

// Height returns the grid height.
func (d *Dungeon) Height() int { return d.Grid.Height }

// Build runs the generator selected by layout.
func (d *Dungeon) Build(ctx context.Context, layout Layout) {
	if layout == LayoutScatter {
		d.GenerateScatter(ctx)
		return
	}
	d.Generate(ctx)
}

// Generate creates the room-and-corridor layout. It makes MaxRooms placement
// attempts; rejected candidates are skipped, so fewer rooms may be accepted.
func (d *Dungeon) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	d.Grid.fill(TileWall)
	d.Rooms = d.Rooms[:0]

	for i := 0; i < MaxRooms; i++ {
		w := MinRoomSize + d.rng.Intn(MaxRoomSize-MinRoomSize)
		h := MinRoomSize + d.rng.Intn(MaxRoomSize-MinRoomSize)
		x := d.rng.Intn(d.Grid.Width - w - 1)
		y := d.rng.Intn(d.Grid.Height - h - 1)
		candidate := NewRect(x, y, w, h)

		if d.overlapsAny(candidate) {
			continue
		}

		d.carveRoom(candidate)

		if len(d.Rooms) > 0 {
			d.carveCorridor(d.Rooms[len(d.Rooms)-1], candidate)
		}

		d.Rooms = append(d.Rooms, candidate)
	}

	span.SetAttributes(
		attribute.String("dungeon.layout", string(LayoutRooms)),
		attribute.Int("dungeon.width", d.Grid.Width),
		attribute.Int("dungeon.height", d.Grid.Height),
		attribute.Int("dungeon.attempts", MaxRooms),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// GenerateScatter creates an open map with a solid border and randomly placed
// single walls. No rooms are recorded; spawn at ScatterSpawn.
func (d *Dungeon) GenerateScatter(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	g := d.Grid
	g.fill(TileFloor)
	d.Rooms = d.Rooms[:0]

	for x := 0; x < g.Width; x++ {
		g.set(x, TileWall)
		g.set((g.Height-1)*g.Width+x, TileWall)
	}
	for y := 0; y < g.Height; y++ {
		g.set(y*g.Width, TileWall)
		g.set(y*g.Width+g.Width-1, TileWall)
	}

	spawn, _ := g.IndexOf(ScatterSpawn.X, ScatterSpawn.Y)
	for i := 0; i < scatterWalls; i++ {
		x := 1 + d.rng.Intn(g.Width-1)
		y := 1 + d.rng.Intn(g.Height-1)
		idx, err := g.IndexOf(x, y)
		if err != nil || idx == spawn {
			continue
		}
		g.set(idx, TileWall)
	}

	span.SetAttributes(
		attribute.String("dungeon.layout", string(LayoutScatter)),
		attribute.Int("dungeon.width", g.Width),
		attribute.Int("dungeon.height", g.Height),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// SpawnPoint returns the center of the first room.
func (d *Dungeon) SpawnPoint() (Position, error) {
	if len(d.Rooms) == 0 {
		return Position{}, ErrNoRooms
	}
	x, y := d.Rooms[0].Center()
	return Position{X: x, Y: y}, nil
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (d *Dungeon) RoomIndexAt(x, y int) int {
	for i, room := range d.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

func (d *Dungeon) overlapsAny(candidate Rect) bool {
	for _, room := range d.Rooms {
		if candidate.Intersects(room) {
			return true
		}
	}
	return false
}

// carveRoom sets the room interior to floor. The top and left edges stay wall.
func (d *Dungeon) carveRoom(room Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			if idx, err := d.Grid.IndexOf(x, y); err == nil {
				d.Grid.set(idx, TileFloor)
			}
		}
	}
}

// carveCorridor joins the centers of two rooms with an L-shaped corridor.
func (d *Dungeon) carveCorridor(prev, next Rect) {
	prevX, prevY := prev.Center()
	newX, newY := next.Center()

	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	if d.rng.Intn(2) == 1 {
		d.carveHorizontalTunnel(prevX, newX, prevY)
		d.carveVerticalTunnel(prevY, newY, newX)
	} else {
		d.carveVerticalTunnel(prevY, newY, prevX)
		d.carveHorizontalTunnel(prevX, newX, newY)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (d *Dungeon) carveHorizontalTunnel(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		if idx, err := d.Grid.IndexOf(x, y); err == nil {
			d.Grid.set(idx, TileFloor)
		}
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (d *Dungeon) carveVerticalTunnel(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		if idx, err := d.Grid.IndexOf(x, y); err == nil {
			d.Grid.set(idx, TileFloor)
		}
	}
}
