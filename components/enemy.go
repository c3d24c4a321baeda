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

type EnemyData struct {
	Pos         dmath.Vec2
	Territory   image.Rectangle
	Speed       float64
	Direction   float64 // radians
	WanderTimer int
	Anim        *animations.Animation
}

var Enemy = donburi.NewComponentType[EnemyData]()

// NewEnemyData places an enemy at the center of its territory.
func NewEnemyData(territory image.Rectangle, rng *rand.Rand) EnemyData {
	c := territory.Min.Add(territory.Max).Div(2)
	return EnemyData{
		Pos:       dmath.Vec2{X: float64(c.X), Y: float64(c.Y)},
		Territory: territory,
		Speed:     cfg.Enemy.Speed,
		Direction: rng.Float64() * 2 * math.Pi,
		Anim:      animations.NewAnimation(cfg.Animations.EnemyRun.Frames, cfg.Animations.EnemyRun.Hold),
	}
}

// InTerritory reports whether (x, y) lies inside the territory, edges included.
func (e *EnemyData) InTerritory(x, y float64) bool {
	t := e.Territory
	return x >= float64(t.Min.X) && x <= float64(t.Max.X) &&
		y >= float64(t.Min.Y) && y <= float64(t.Max.Y)
}

func (e *EnemyData) Update(rng *rand.Rand) {
	e.Pos.X += math.Cos(e.Direction) * e.Speed
	e.Pos.Y += math.Sin(e.Direction) * e.Speed

	if !e.InTerritory(e.Pos.X, e.Pos.Y) {
		e.Direction += math.Pi
		t := e.Territory
		e.Pos.X = math.Max(float64(t.Min.X), math.Min(float64(t.Max.X), e.Pos.X))
		e.Pos.Y = math.Max(float64(t.Min.Y), math.Min(float64(t.Max.Y), e.Pos.Y))
	}

	e.WanderTimer++
	if e.WanderTimer > cfg.Enemy.WanderInterval {
		e.Direction = rng.Float64() * 2 * math.Pi
		e.WanderTimer = 0
	}

	e.Anim.Update()
}
