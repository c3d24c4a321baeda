package components

import (
	"image"
	"math"
	"math/rand"

	"github.com/automoto/treasure-hunt/assets/animations"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type ProjectileData struct {
	Pos       dmath.Vec2
	Direction float64 // radians
	Speed     float64
	Active    bool
	Anim      *animations.Animation
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// Reset respawns the projectile on a random edge just outside field, with a
// new heading and speed.
func (p *ProjectileData) Reset(rng *rand.Rand, field image.Rectangle) {
	off := cfg.Projectile.SpawnOffset
	minX, minY := float64(field.Min.X), float64(field.Min.Y)
	maxX, maxY := float64(field.Max.X), float64(field.Max.Y)
	alongX := minX + float64(rng.Intn(field.Dx()+1))
	alongY := minY + float64(rng.Intn(field.Dy()+1))

	switch rng.Intn(4) {
	case 0: // top
		p.Pos = dmath.Vec2{X: alongX, Y: minY - off}
	case 1: // right
		p.Pos = dmath.Vec2{X: maxX + off, Y: alongY}
	case 2: // bottom
		p.Pos = dmath.Vec2{X: alongX, Y: maxY + off}
	default: // left
		p.Pos = dmath.Vec2{X: minX - off, Y: alongY}
	}

	p.Direction = rng.Float64() * 2 * math.Pi
	p.Speed = cfg.Projectile.MinSpeed + rng.Float64()*(cfg.Projectile.MaxSpeed-cfg.Projectile.MinSpeed)
	p.Active = true
	p.Anim = animations.NewAnimation(cfg.Animations.Projectile.Frames, cfg.Animations.Projectile.Hold)
}

// OutOfField reports whether the projectile is more than the exit margin outside field.
func (p *ProjectileData) OutOfField(field image.Rectangle) bool {
	m := cfg.Projectile.ExitMargin
	return p.Pos.X < float64(field.Min.X)-m || p.Pos.X > float64(field.Max.X)+m ||
		p.Pos.Y < float64(field.Min.Y)-m || p.Pos.Y > float64(field.Max.Y)+m
}

func (p *ProjectileData) Update(rng *rand.Rand, field image.Rectangle) {
	if !p.Active {
		return
	}
	p.Pos.X += math.Cos(p.Direction) * p.Speed
	p.Pos.Y += math.Sin(p.Direction) * p.Speed

	if p.OutOfField(field) {
		p.Reset(rng, field)
	}

	p.Anim.Update()
}
