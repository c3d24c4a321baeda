package factory

import (
	"github.com/automoto/treasure-hunt/archetypes"
	"github.com/automoto/treasure-hunt/assets/animations"
	"github.com/automoto/treasure-hunt/components"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/automoto/treasure-hunt/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func newCollectible(x, y float64, anim cfg.AnimationDef) components.Collectible {
	return components.Collectible{
		Pos:  dmath.Vec2{X: x, Y: y},
		Anim: animations.NewAnimation(anim.Frames, anim.Hold),
	}
}

func CreateCoin(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)

	c := newCollectible(x, y, cfg.Animations.Coin)
	components.Coin.SetValue(coin, components.CoinData{Collectible: c})
	attachObject(ecs, coin, c.Pos, 2*cfg.Coin.Radius, tags.ResolvCoin)

	return coin
}

func CreatePowerUp(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	pu := archetypes.PowerUp.Spawn(ecs)

	c := newCollectible(x, y, cfg.Animations.PowerUp)
	components.PowerUp.SetValue(pu, components.PowerUpData{Collectible: c})
	attachObject(ecs, pu, c.Pos, 2*cfg.PowerUp.Radius, tags.ResolvPowerUp)

	return pu
}
