package systems

import (
	"github.com/automoto/treasure-hunt/components"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(e *ecs.ECS) {
	if entry, ok := components.Player.First(e.World); ok {
		components.Player.Get(entry).Update()
	}
}
