package components

import (
	"image"
	"math"
	"math/rand"
	"testing"
)

func TestEnemyStaysInsideTerritory(t *testing.T) {
	territories := []image.Rectangle{
		image.Rect(80, 80, 260, 200),
		image.Rect(520, 80, 700, 200),
		image.Rect(300, 420, 500, 540),
		image.Rect(10, 10, 12, 12),
	}
	rng := rand.New(rand.NewSource(7))

	for _, territory := range territories {
		e := NewEnemyData(territory, rng)
		for tick := 0; tick < 5000; tick++ {
			e.Update(rng)
			if !e.InTerritory(e.Pos.X, e.Pos.Y) {
				t.Fatalf("territory %v tick %d: enemy at %v", territory, tick, e.Pos)
			}
		}
	}
}

func TestEnemySpawnsAtTerritoryCenter(t *testing.T) {
	e := NewEnemyData(image.Rect(80, 80, 260, 200), rand.New(rand.NewSource(1)))
	if e.Pos.X != 170 || e.Pos.Y != 140 {
		t.Errorf("spawn = %v, want (170,140)", e.Pos)
	}
}

func TestEnemyBouncesOffEdge(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := NewEnemyData(image.Rect(0, 0, 100, 100), rng)
	e.Pos.X, e.Pos.Y = 99, 50
	e.Direction = 0

	e.Update(rng)
	if e.Pos.X != 100 {
		t.Errorf("X = %v, want clamp to 100", e.Pos.X)
	}
	if math.Abs(e.Direction-math.Pi) > 1e-9 {
		t.Errorf("Direction = %v, want pi", e.Direction)
	}
	e.Update(rng)
	if e.Pos.X >= 100 {
		t.Errorf("X = %v, expected to head back inside", e.Pos.X)
	}
}

func TestEnemyWandersAfterInterval(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	e := NewEnemyData(image.Rect(0, 0, 1000, 1000), rng)
	e.Direction = 0

	for i := 0; i < 120; i++ {
		e.Update(rng)
		if e.Direction != 0 {
			t.Fatalf("direction changed after %d ticks", i+1)
		}
	}
	e.Update(rng)
	if e.WanderTimer != 0 {
		t.Errorf("WanderTimer = %d after re-roll, want 0", e.WanderTimer)
	}
	if e.Direction < 0 || e.Direction >= 2*math.Pi {
		t.Errorf("Direction %v outside [0, 2pi)", e.Direction)
	}
}
