package entity

import (
	"context"
	"math/rand"
	"testing"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func TestRegistrySpawnAndGet(t *testing.T) {
	r := NewRegistry()

	playerID := r.Spawn(Entity{Name: "Rogue", Kind: KindPlayer, Pos: world.Position{X: 3, Y: 4}})
	markerID := r.Spawn(Entity{Name: "Statue", Kind: KindMarker, Pos: world.Position{X: 7, Y: 20}})

	if playerID == markerID {
		t.Fatal("Expected distinct IDs")
	}
	if r.Count() != 2 {
		t.Errorf("Expected 2 entities, got %d", r.Count())
	}

	p := r.Get(playerID)
	if p == nil || p.Name != "Rogue" || p.ID != playerID {
		t.Fatalf("Get(player) = %+v", p)
	}
	if r.Player() != p {
		t.Error("Player() should return the player entity")
	}

	all := r.All()
	if len(all) != 2 || all[0].ID != playerID || all[1].ID != markerID {
		t.Errorf("All() not in spawn order: %+v", all)
	}

	markers := r.Filter(func(e *Entity) bool { return e.Kind == KindMarker })
	if len(markers) != 1 || markers[0].ID != markerID {
		t.Errorf("Filter(marker) = %+v", markers)
	}
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry()
	id := r.Spawn(Entity{Kind: KindPlayer})

	r.Remove(id)
	r.Remove(id)

	if r.Get(id) != nil || r.Count() != 0 {
		t.Error("Expected entity to be removed")
	}
	if r.Player() != nil {
		t.Error("Expected no player after removal")
	}
}

func TestEntityMove(t *testing.T) {
	d := world.NewDungeon(rand.New(rand.NewSource(3)))
	d.Generate(context.Background())

	spawn, err := d.SpawnPoint()
	if err != nil {
		t.Fatalf("SpawnPoint: %v", err)
	}
	e := &Entity{Kind: KindPlayer, Pos: spawn}

	// Room centers always have floor on every side.
	if !e.Move(d.Grid, 1, 0) {
		t.Fatal("Expected move inside the first room to succeed")
	}
	if e.Pos != (world.Position{X: spawn.X + 1, Y: spawn.Y}) {
		t.Errorf("Expected %+v, got %+v", world.Position{X: spawn.X + 1, Y: spawn.Y}, e.Pos)
	}

	solid := world.NewGrid(world.DefaultWidth, world.DefaultHeight)
	before := e.Pos
	if e.Move(solid, 0, 1) {
		t.Error("Expected move into solid grid to fail")
	}
	if e.Pos != before {
		t.Errorf("Position changed to %+v", e.Pos)
	}
}
