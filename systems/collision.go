package systems

import (
	"math"

	"github.com/automoto/treasure-hunt/components"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/automoto/treasure-hunt/systems/factory"
	"github.com/automoto/treasure-hunt/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// nearby returns the objects tagged tag that share a broadphase cell with obj.
func nearby(obj *resolv.Object, tag string) map[*resolv.Object]bool {
	found := map[*resolv.Object]bool{}
	if check := obj.Check(0, 0, tag); check != nil {
		for _, o := range check.ObjectsByTags(tag) {
			found[o] = true
		}
	}
	return found
}

func within(a, b dmath.Vec2, radius float64) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) < radius
}

// UpdateCollisions runs the pickup and hit checks for the player in a fixed
// order: coins, powerups, enemies, projectiles, then the victory check.
func UpdateCollisions(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	playerObj := components.Object.Get(playerEntry).Object
	s := GetOrCreateSession(e)
	w := e.World

	// Coins
	near := nearby(playerObj, tags.ResolvCoin)
	components.Coin.Each(w, func(entry *donburi.Entry) {
		coin := components.Coin.Get(entry)
		if coin.Collected || !near[components.Object.Get(entry).Object] {
			return
		}
		if !within(player.Pos, coin.Pos, cfg.Coin.PickupRadius) {
			return
		}
		coin.Collected = true
		factory.RemoveObject(e, entry)
		s.Score += cfg.Coin.ScoreValue
		SpawnParticles(e, coin.Pos.X, coin.Pos.Y, cfg.Coin.ParticleColor, cfg.Coin.ParticleCount)
		if s.SfxOn {
			PlaySFX(e, cfg.SoundCoin)
		}
	})

	// Powerups
	near = nearby(playerObj, tags.ResolvPowerUp)
	components.PowerUp.Each(w, func(entry *donburi.Entry) {
		pu := components.PowerUp.Get(entry)
		if pu.Collected || !near[components.Object.Get(entry).Object] {
			return
		}
		if !within(player.Pos, pu.Pos, cfg.PowerUp.PickupRadius) {
			return
		}
		pu.Collected = true
		factory.RemoveObject(e, entry)
		player.ActivatePowerup()
		SpawnParticles(e, pu.Pos.X, pu.Pos.Y, cfg.PowerUp.ParticleColor, cfg.PowerUp.ParticleCount)
		s.Score += cfg.PowerUp.ScoreValue
	})

	// Enemies
	near = nearby(playerObj, tags.ResolvEnemy)
	components.Enemy.Each(w, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if !near[components.Object.Get(entry).Object] || !within(player.Pos, enemy.Pos, cfg.Combat.EnemyHitRadius) {
			return
		}
		if player.TakeDamage() {
			SpawnParticles(e, player.Pos.X, player.Pos.Y, cfg.Combat.EnemyHitColor, cfg.Combat.EnemyHitParticles)
			if player.Lives <= 0 {
				s.State = cfg.StateGameOver
			}
		}
	})

	// Projectiles
	near = nearby(playerObj, tags.ResolvProjectile)
	components.Projectile.Each(w, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		if !p.Active || !near[components.Object.Get(entry).Object] || !within(player.Pos, p.Pos, cfg.Combat.ProjectileHitRadius) {
			return
		}
		if player.TakeDamage() {
			SpawnParticles(e, player.Pos.X, player.Pos.Y, cfg.Combat.ProjectileHitColor, cfg.Combat.ProjectileHitParticles)
			p.Reset(s.Rand, cfg.FieldBounds())
			factory.SyncObject(entry)
			if player.Lives <= 0 {
				s.State = cfg.StateGameOver
			}
		}
	})

	if AllCoinsCollected(e) {
		s.State = cfg.StateGameOver
	}
}

// CollectedCoins counts the coins picked up this round.
func CollectedCoins(e *ecs.ECS) int {
	n := 0
	components.Coin.Each(e.World, func(entry *donburi.Entry) {
		if components.Coin.Get(entry).Collected {
			n++
		}
	})
	return n
}

// AllCoinsCollected reports whether no coin is left on the field.
func AllCoinsCollected(e *ecs.ECS) bool {
	all := true
	components.Coin.Each(e.World, func(entry *donburi.Entry) {
		if !components.Coin.Get(entry).Collected {
			all = false
		}
	})
	return all
}
