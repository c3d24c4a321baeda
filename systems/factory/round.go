package factory

import (
	"math/rand"

	"github.com/automoto/treasure-hunt/components"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/automoto/treasure-hunt/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResetRound discards every entity of the previous round and builds a fresh
// set from the current level: the player at its spawn, one enemy per
// territory, the coins and powerups, and the projectiles.
func ResetRound(ecs *ecs.ECS, rng *rand.Rand) {
	ClearRound(ecs)

	level := components.Level.Get(components.Level.MustFirst(ecs.World)).CurrentLevel

	CreatePlayer(ecs, level.PlayerSpawn.X, level.PlayerSpawn.Y)
	for _, t := range level.Territories[:cfg.Round.EnemyCount] {
		CreateEnemy(ecs, t, rng)
	}
	for _, c := range level.Coins[:cfg.Round.CoinCount] {
		CreateCoin(ecs, c.X, c.Y)
	}
	for _, p := range level.PowerUps[:cfg.Round.PowerUpCount] {
		CreatePowerUp(ecs, p.X, p.Y)
	}
	for i := 0; i < cfg.Projectile.Count; i++ {
		CreateProjectile(ecs, rng)
	}
}

// ClearRound removes every round entity and its collision object.
func ClearRound(ecs *ecs.ECS) {
	var stale []*donburi.Entry
	tags.Round.Each(ecs.World, func(entry *donburi.Entry) {
		stale = append(stale, entry)
	})
	for _, entry := range stale {
		RemoveObject(ecs, entry)
		ecs.World.Remove(entry.Entity())
	}
}
