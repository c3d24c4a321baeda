package systems

import (
	"math"
	"testing"

	"github.com/automoto/treasure-hunt/components"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/automoto/treasure-hunt/systems/factory"
	"github.com/automoto/treasure-hunt/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestCoinPickup(t *testing.T) {
	e := newPlayingWorld(t)
	entries := coinEntries(e)
	coin := components.Coin.Get(entries[0])
	movePlayer(t, e, coin.Pos.X, coin.Pos.Y)

	e.Update()

	s := GetOrCreateSession(e)
	if !coin.Collected {
		t.Fatal("coin under the player was not collected")
	}
	if s.Score != cfg.Coin.ScoreValue {
		t.Errorf("Score = %d, want %d", s.Score, cfg.Coin.ScoreValue)
	}
	if got := len(GetOrCreateParticles(e).Items); got != cfg.Coin.ParticleCount {
		t.Errorf("particles = %d, want %d", got, cfg.Coin.ParticleCount)
	}
	if pending := GetOrCreateAudio(e).PendingSFX; len(pending) != 1 || pending[0] != cfg.SoundCoin {
		t.Errorf("PendingSFX = %v, want one coin sound", pending)
	}
	if CollectedCoins(e) != 1 {
		t.Errorf("CollectedCoins = %d, want 1", CollectedCoins(e))
	}
	if s.State != cfg.StatePlaying {
		t.Errorf("State = %v after one coin", s.State)
	}

	// A collected coin never pays out twice.
	e.Update()
	if s.Score != cfg.Coin.ScoreValue {
		t.Errorf("Score = %d after standing still, want %d", s.Score, cfg.Coin.ScoreValue)
	}
}

func TestCoinPickupSilentWithSoundsOff(t *testing.T) {
	e := newPlayingWorld(t)
	GetOrCreateSession(e).SfxOn = false
	coin := components.Coin.Get(coinEntries(e)[0])
	movePlayer(t, e, coin.Pos.X, coin.Pos.Y)

	e.Update()

	if !coin.Collected {
		t.Fatal("coin was not collected")
	}
	if pending := GetOrCreateAudio(e).PendingSFX; len(pending) != 0 {
		t.Errorf("PendingSFX = %v with sounds off", pending)
	}
}

func TestCollectingLastCoinWins(t *testing.T) {
	e := newPlayingWorld(t)
	entries := coinEntries(e)
	for _, entry := range entries[:len(entries)-1] {
		components.Coin.Get(entry).Collected = true
	}
	last := components.Coin.Get(entries[len(entries)-1])
	movePlayer(t, e, last.Pos.X, last.Pos.Y)

	e.Update()

	if got := CurrentState(e); got != cfg.StateGameOver {
		t.Fatalf("State = %v, want game over", got)
	}
	if !IsVictory(e) {
		t.Error("round with every coin collected is not a victory")
	}
}

func TestPowerUpPickup(t *testing.T) {
	e := newPlayingWorld(t)
	entry, _ := components.PowerUp.First(e.World)
	pu := components.PowerUp.Get(entry)
	p := movePlayer(t, e, pu.Pos.X, pu.Pos.Y)

	e.Update()

	if !pu.Collected {
		t.Fatal("powerup was not collected")
	}
	if !p.PowerUpActive || p.Speed != cfg.Player.Speed*cfg.Player.PowerUpMultiplier {
		t.Errorf("powerup not applied: active=%v speed=%v", p.PowerUpActive, p.Speed)
	}
	if s := GetOrCreateSession(e); s.Score != cfg.PowerUp.ScoreValue {
		t.Errorf("Score = %d, want %d", s.Score, cfg.PowerUp.ScoreValue)
	}
}

func TestEnemyContactCostsOneLife(t *testing.T) {
	e := newPlayingWorld(t)
	entry, _ := components.Enemy.First(e.World)
	enemy := components.Enemy.Get(entry)
	p := movePlayer(t, e, enemy.Pos.X, enemy.Pos.Y)

	e.Update()
	if p.Lives != cfg.Player.StartingLives-1 {
		t.Fatalf("Lives = %d, want %d", p.Lives, cfg.Player.StartingLives-1)
	}
	if !p.Invincible {
		t.Error("player not invincible after a hit")
	}

	// Still touching, but invincible.
	movePlayer(t, e, enemy.Pos.X, enemy.Pos.Y)
	e.Update()
	if p.Lives != cfg.Player.StartingLives-1 {
		t.Errorf("Lives = %d during invincibility", p.Lives)
	}
	if CurrentState(e) != cfg.StatePlaying {
		t.Errorf("State = %v, want playing", CurrentState(e))
	}
}

func TestLastLifeEndsRound(t *testing.T) {
	e := newPlayingWorld(t)
	entry, _ := components.Enemy.First(e.World)
	enemy := components.Enemy.Get(entry)
	p := movePlayer(t, e, enemy.Pos.X, enemy.Pos.Y)
	p.Lives = 1

	e.Update()

	if p.Lives != 0 {
		t.Errorf("Lives = %d, want 0", p.Lives)
	}
	if CurrentState(e) != cfg.StateGameOver {
		t.Fatalf("State = %v, want game over", CurrentState(e))
	}
	if IsVictory(e) {
		t.Error("defeat reported as victory")
	}
}

func TestProjectileHitRespawnsProjectile(t *testing.T) {
	e := newPlayingWorld(t)
	p := movePlayer(t, e, 400, 300)

	entry, _ := components.Projectile.First(e.World)
	proj := components.Projectile.Get(entry)
	proj.Active = true
	proj.Pos = dmath.Vec2{X: 400, Y: 300}
	proj.Direction = 0
	proj.Speed = cfg.Projectile.MinSpeed
	factory.SyncObject(entry)

	e.Update()

	if p.Lives != cfg.Player.StartingLives-1 {
		t.Fatalf("Lives = %d, want %d", p.Lives, cfg.Player.StartingLives-1)
	}
	field := cfg.FieldBounds()
	inside := proj.Pos.X >= float64(field.Min.X) && proj.Pos.X <= float64(field.Max.X) &&
		proj.Pos.Y >= float64(field.Min.Y) && proj.Pos.Y <= float64(field.Max.Y)
	if inside {
		t.Errorf("projectile at %v after hit, want respawn outside the field", proj.Pos)
	}
	if got := len(GetOrCreateParticles(e).Items); got != cfg.Combat.ProjectileHitParticles {
		t.Errorf("particles = %d, want %d", got, cfg.Combat.ProjectileHitParticles)
	}
}

func TestBroadphaseNeverHidesAHit(t *testing.T) {
	e := newPlayingWorld(t)
	playerEntry, _ := components.Player.First(e.World)
	playerObj := components.Object.Get(playerEntry).Object
	enemyEntry, _ := components.Enemy.First(e.World)
	enemyObj := components.Object.Get(enemyEntry).Object
	enemy := components.Enemy.Get(enemyEntry)

	r := cfg.Combat.EnemyHitRadius - 0.01
	for x := 0.0; x <= float64(cfg.C.Width); x += 13 {
		for y := 0.0; y <= float64(cfg.C.Height); y += 13 {
			movePlayer(t, e, x, y)
			factory.SyncObject(playerEntry)
			for a := 0; a < 8; a++ {
				angle := float64(a) * math.Pi / 4
				enemy.Pos = dmath.Vec2{X: x + math.Cos(angle)*r, Y: y + math.Sin(angle)*r}
				factory.SyncObject(enemyEntry)
				if !nearby(playerObj, tags.ResolvEnemy)[enemyObj] {
					t.Fatalf("player (%v,%v) enemy %v: broadphase missed a hit", x, y, enemy.Pos)
				}
			}
		}
	}
}

func TestCollectedCoinsLeaveTheSpace(t *testing.T) {
	e := newPlayingWorld(t)
	entry := coinEntries(e)[0]
	coin := components.Coin.Get(entry)
	movePlayer(t, e, coin.Pos.X, coin.Pos.Y)

	e.Update()

	if obj := components.Object.Get(entry).Object; obj.Space != nil {
		t.Error("collected coin still in the space")
	}
	playerEntry, _ := components.Player.First(e.World)
	near := nearby(components.Object.Get(playerEntry).Object, tags.ResolvCoin)
	components.Coin.Each(e.World, func(other *donburi.Entry) {
		if near[components.Object.Get(other).Object] && components.Coin.Get(other).Collected {
			t.Error("collected coin returned by the broadphase")
		}
	})
}

func TestEnemyAndProjectileSameTickCostOneLife(t *testing.T) {
	e := newPlayingWorld(t)
	enemyEntry, _ := components.Enemy.First(e.World)
	enemy := components.Enemy.Get(enemyEntry)
	p := movePlayer(t, e, enemy.Pos.X, enemy.Pos.Y)

	projEntry, _ := components.Projectile.First(e.World)
	proj := components.Projectile.Get(projEntry)
	proj.Active = true
	proj.Pos = p.Pos
	proj.Direction = 0
	proj.Speed = cfg.Projectile.MinSpeed
	factory.SyncObject(projEntry)
	want := dmath.Vec2{X: p.Pos.X + proj.Speed, Y: p.Pos.Y}

	e.Update()

	if p.Lives != cfg.Player.StartingLives-1 {
		t.Errorf("Lives = %d, want %d", p.Lives, cfg.Player.StartingLives-1)
	}
	if proj.Pos != want {
		t.Errorf("projectile at %v, want %v (no respawn after a blocked hit)", proj.Pos, want)
	}
	if got := len(GetOrCreateParticles(e).Items); got != cfg.Combat.EnemyHitParticles {
		t.Errorf("particles = %d, want %d from the enemy hit only", got, cfg.Combat.EnemyHitParticles)
	}
}
