package systems

import (
	"image/color"

	"github.com/automoto/treasure-hunt/components"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/automoto/treasure-hunt/systems/factory"
	"github.com/automoto/treasure-hunt/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebugToggle flips the hitbox overlay on F3.
func UpdateDebugToggle(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		cfg.Debug.ShowHitboxes = !cfg.Debug.ShowHitboxes
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes || CurrentState(ecs) != cfg.StatePlaying {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	m := factory.SpaceMargin(cfg.Combat.BroadphaseCellSize)

	for _, obj := range space.Objects() {
		// Space coordinates are offset by the margin
		x := obj.X - m
		y := obj.Y - m

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		radius := 0.0
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255} // Red
			radius = cfg.Combat.EnemyHitRadius
		} else if obj.HasTags(tags.ResolvProjectile) {
			c = color.RGBA{255, 165, 0, 255}
			radius = cfg.Combat.ProjectileHitRadius
		} else if obj.HasTags(tags.ResolvCoin) {
			c = color.RGBA{255, 215, 0, 255}
			radius = cfg.Coin.PickupRadius
		} else if obj.HasTags(tags.ResolvPowerUp) {
			c = color.RGBA{0, 255, 0, 255} // Green
			radius = cfg.PowerUp.PickupRadius
		}

		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
		if radius > 0 {
			vector.StrokeCircle(screen, float32(x+obj.W/2), float32(y+obj.H/2), float32(radius), 1, c, true)
		}
	}
}
