package components

import (
	"github.com/automoto/treasure-hunt/assets/animations"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Collectible is a static pickup. Collected only ever goes from false to true.
type Collectible struct {
	Pos       dmath.Vec2
	Collected bool
	Anim      *animations.Animation
}

func (c *Collectible) Update() {
	if !c.Collected {
		c.Anim.Update()
	}
}

type CoinData struct {
	Collectible
}

type PowerUpData struct {
	Collectible
}

var Coin = donburi.NewComponentType[CoinData]()
var PowerUp = donburi.NewComponentType[PowerUpData]()
