package components

import (
	"image/color"
	"math/rand"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Particle is a short lived decorative point
type Particle struct {
	Pos   dmath.Vec2
	Vel   dmath.Vec2
	Life  int // ticks remaining
	Color color.RGBA
}

// ParticlesData owns every live particle (singleton component)
type ParticlesData struct {
	Items []Particle
}

var Particles = donburi.NewComponentType[ParticlesData]()

// Spawn adds count particles at (x, y) with velocity components drawn from
// [-maxVel, maxVel).
func (p *ParticlesData) Spawn(rng *rand.Rand, x, y float64, c color.RGBA, count, life int, maxVel float64) {
	for i := 0; i < count; i++ {
		p.Items = append(p.Items, Particle{
			Pos:   dmath.Vec2{X: x, Y: y},
			Vel:   dmath.Vec2{X: (rng.Float64()*2 - 1) * maxVel, Y: (rng.Float64()*2 - 1) * maxVel},
			Life:  life,
			Color: c,
		})
	}
}

// Update moves and ages every particle, then drops the expired ones in a
// single pass.
func (p *ParticlesData) Update() {
	alive := p.Items[:0]
	for _, pt := range p.Items {
		pt.Pos.X += pt.Vel.X
		pt.Pos.Y += pt.Vel.Y
		pt.Life--
		if pt.Life > 0 {
			alive = append(alive, pt)
		}
	}
	// Clear the tail so dropped particles do not linger in the backing array.
	for i := len(alive); i < len(p.Items); i++ {
		p.Items[i] = Particle{}
	}
	p.Items = alive
}

func (p *ParticlesData) Clear() {
	p.Items = p.Items[:0]
}
