package factory

import (
	"math"

	"github.com/automoto/treasure-hunt/components"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// playerBoxSize is wide enough that any entity within hit range of the
// player has its center inside the player's box.
func playerBoxSize() float64 {
	r := math.Max(cfg.Combat.EnemyHitRadius, cfg.Combat.ProjectileHitRadius)
	r = math.Max(r, math.Max(cfg.Coin.PickupRadius, cfg.PowerUp.PickupRadius))
	return 2 * r
}

// attachObject gives entry a square collision object of the given size
// centered on pos and adds it to the space.
func attachObject(ecs *ecs.ECS, entry *donburi.Entry, pos dmath.Vec2, size float64, tag string) *resolv.Object {
	obj := resolv.NewObject(0, 0, size, size)
	obj.AddTags(tag)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	placeObject(obj, pos)
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)
	return obj
}

func placeObject(obj *resolv.Object, pos dmath.Vec2) {
	m := SpaceMargin(cfg.Combat.BroadphaseCellSize)
	obj.X = pos.X - obj.W/2 + m
	obj.Y = pos.Y - obj.H/2 + m
	obj.Update()
}

// entityPos returns the center of whichever round entity entry is.
func entityPos(entry *donburi.Entry) (dmath.Vec2, bool) {
	switch {
	case entry.HasComponent(components.Player):
		return components.Player.Get(entry).Pos, true
	case entry.HasComponent(components.Enemy):
		return components.Enemy.Get(entry).Pos, true
	case entry.HasComponent(components.Projectile):
		return components.Projectile.Get(entry).Pos, true
	case entry.HasComponent(components.Coin):
		return components.Coin.Get(entry).Pos, true
	case entry.HasComponent(components.PowerUp):
		return components.PowerUp.Get(entry).Pos, true
	}
	return dmath.Vec2{}, false
}

// SyncObject moves entry's collision object to the entity's current position.
func SyncObject(entry *donburi.Entry) {
	obj := components.Object.Get(entry).Object
	if obj == nil || obj.Space == nil {
		return
	}
	if pos, ok := entityPos(entry); ok {
		placeObject(obj, pos)
	}
}

// RemoveObject takes entry's collision object out of the space. The entity
// itself is kept.
func RemoveObject(ecs *ecs.ECS, entry *donburi.Entry) {
	obj := components.Object.Get(entry).Object
	if obj == nil || obj.Space == nil {
		return
	}
	components.Space.Get(components.Space.MustFirst(ecs.World)).Remove(obj)
}
