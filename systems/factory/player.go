package factory

import (
	"github.com/automoto/treasure-hunt/archetypes"
	"github.com/automoto/treasure-hunt/components"
	"github.com/automoto/treasure-hunt/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	data := components.NewPlayerData(x, y)
	components.Player.SetValue(player, data)
	attachObject(ecs, player, data.Pos, playerBoxSize(), tags.ResolvPlayer)

	return player
}
