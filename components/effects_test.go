package components

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/automoto/treasure-hunt/assets/animations"
)

func newTestAnimation() *animations.Animation {
	return animations.NewAnimation([]string{"a", "b"}, 1)
}

func TestParticlesLiveExactlyTheirLifetime(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	var ps ParticlesData
	ps.Spawn(rng, 10, 10, color.RGBA{R: 255, A: 255}, 8, 30, 3)

	for tick := 1; tick < 30; tick++ {
		ps.Update()
		if len(ps.Items) != 8 {
			t.Fatalf("tick %d: %d particles, want 8", tick, len(ps.Items))
		}
	}
	ps.Update()
	if len(ps.Items) != 0 {
		t.Errorf("after 30 ticks %d particles remain", len(ps.Items))
	}
}

func TestParticlesPruneOnlyExpired(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	var ps ParticlesData
	ps.Spawn(rng, 0, 0, color.RGBA{}, 3, 1, 3)
	ps.Spawn(rng, 0, 0, color.RGBA{G: 1}, 2, 5, 3)

	ps.Update()
	if len(ps.Items) != 2 {
		t.Fatalf("%d particles after one tick, want 2", len(ps.Items))
	}
	for _, p := range ps.Items {
		if p.Color.G != 1 || p.Life != 4 {
			t.Errorf("unexpected survivor %+v", p)
		}
	}
}

func TestParticleVelocityWithinRange(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	var ps ParticlesData
	ps.Spawn(rng, 50, 60, color.RGBA{}, 200, 30, 3)
	for _, p := range ps.Items {
		if p.Vel.X < -3 || p.Vel.X >= 3 || p.Vel.Y < -3 || p.Vel.Y >= 3 {
			t.Fatalf("velocity %v outside [-3,3)", p.Vel)
		}
		if p.Pos.X != 50 || p.Pos.Y != 60 {
			t.Fatalf("spawned at %v", p.Pos)
		}
	}

	ps.Update()
	for _, p := range ps.Items {
		if p.Pos.X != 50+p.Vel.X || p.Pos.Y != 60+p.Vel.Y {
			t.Fatalf("particle at %v did not move by %v", p.Pos, p.Vel)
		}
	}
}

func TestCollectedItemsStopAnimating(t *testing.T) {
	c := CoinData{}
	c.Anim = newTestAnimation()
	c.Update()
	if c.Anim.Frame() != 1 {
		t.Fatalf("frame = %d, want 1", c.Anim.Frame())
	}
	c.Collected = true
	c.Update()
	if c.Anim.Frame() != 1 {
		t.Errorf("collected coin kept animating, frame %d", c.Anim.Frame())
	}
}
