package factory

import (
	"github.com/automoto/treasure-hunt/archetypes"
	"github.com/automoto/treasure-hunt/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceMarginCells is how many cells the space extends past each field edge,
// so projectiles waiting to respawn still sit inside the grid.
const spaceMarginCells = 2

// SpaceMargin returns the offset in pixels between field and space coordinates.
func SpaceMargin(cellSize int) float64 {
	return float64(spaceMarginCells * cellSize)
}

// CreateSpace creates the broadphase grid covering a width x height field
// plus a margin on every side.
func CreateSpace(ecs *ecs.ECS, width, height, cellSize int) *donburi.Entry {
	margin := 2 * spaceMarginCells * cellSize
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width+margin, height+margin, cellSize, cellSize)
	components.Space.Set(space, spaceData)
	return space
}
