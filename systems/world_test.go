package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/treasure-hunt/assets"
	"github.com/automoto/treasure-hunt/components"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// newTestWorld builds a headless world on the bundled island level with the
// gameplay systems registered and a fixed random seed.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	level, err := assets.NewLevelLoader().LoadLevel(cfg.Round.LevelPath)
	if err != nil {
		t.Fatalf("load level: %v", err)
	}

	e := ecs.NewECS(donburi.NewWorld())
	AddGameplaySystems(e)
	InitWorld(e, level)
	GetOrCreateSession(e).Rand = rand.New(rand.NewSource(1))
	return e
}

// newPlayingWorld is newTestWorld already in the playing state with the
// projectiles parked so they cannot interfere.
func newPlayingWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := newTestWorld(t)
	GetOrCreateSession(e).State = cfg.StatePlaying
	parkProjectiles(e)
	return e
}

func parkProjectiles(e *ecs.ECS) {
	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		components.Projectile.Get(entry).Active = false
	})
}

func testPlayer(t *testing.T, e *ecs.ECS) *components.PlayerData {
	t.Helper()
	entry, ok := components.Player.First(e.World)
	if !ok {
		t.Fatal("no player")
	}
	return components.Player.Get(entry)
}

// movePlayer teleports the player and clears any movement target.
func movePlayer(t *testing.T, e *ecs.ECS, x, y float64) *components.PlayerData {
	t.Helper()
	p := testPlayer(t, e)
	p.Pos = dmath.Vec2{X: x, Y: y}
	p.Target = p.Pos
	p.Moving = false
	return p
}

func coinEntries(e *ecs.ECS) []*donburi.Entry {
	var entries []*donburi.Entry
	components.Coin.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	return entries
}

func ticks(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		e.Update()
	}
}

func click(e *ecs.ECS, x, y int) {
	p := GetOrCreatePointer(e)
	p.X, p.Y = x, y
	p.Pressed = true
	e.Update()
}
