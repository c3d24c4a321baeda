package systems

import (
	"image/color"

	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SpawnParticles adds a burst of count particles at (x, y).
func SpawnParticles(e *ecs.ECS, x, y float64, c color.RGBA, count int) {
	GetOrCreateParticles(e).Spawn(GetOrCreateSession(e).Rand, x, y, c, count, cfg.Particle.Lifetime, cfg.Particle.MaxVelocity)
}

// UpdateEffects ages particles and drops the expired ones.
func UpdateEffects(e *ecs.ECS) {
	GetOrCreateParticles(e).Update()
}

// DrawParticles renders every live particle.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	if CurrentState(e) != cfg.StatePlaying {
		return
	}
	r := float32(cfg.Particle.Radius)
	for _, p := range GetOrCreateParticles(e).Items {
		vector.FillCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), r, p.Color, false)
	}
}
