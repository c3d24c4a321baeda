package systems

import (
	"image/color"
	"math"

	"github.com/automoto/treasure-hunt/assets"
	"github.com/automoto/treasure-hunt/components"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/automoto/treasure-hunt/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	lookupSprite = assets.LookupSprite
)

// DrawBackground fills the field and, while playing, the lighter grass patches.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Field.GrassColor)
	if CurrentState(e) != cfg.StatePlaying {
		return
	}
	step := cfg.Field.PatchSpacing
	for x := 0; x < cfg.C.Width; x += step {
		for y := 0; y < cfg.C.Height; y += step {
			if (x+y)%(2*step) == 0 {
				vector.FillRect(screen, float32(x), float32(y), cfg.Field.PatchSize, cfg.Field.PatchSize, cfg.Field.PatchColor, false)
			}
		}
	}
}

// DrawPlaying renders territories and every live round entity in depth order.
func DrawPlaying(e *ecs.ECS, screen *ebiten.Image) {
	if CurrentState(e) != cfg.StatePlaying {
		return
	}
	w := e.World

	labelFont := fonts.Label.Get()
	components.Enemy.Each(w, func(entry *donburi.Entry) {
		t := components.Enemy.Get(entry).Territory
		vector.StrokeRect(screen, float32(t.Min.X), float32(t.Min.Y), float32(t.Dx()), float32(t.Dy()), 1, cfg.Enemy.TerritoryColor, false)
		mid := t.Min.Add(t.Max).Div(2)
		drawCentered(screen, cfg.Enemy.TerritoryLabel, labelFont, mid.X, t.Min.Y-15, cfg.Orange)
	})

	components.Coin.Each(w, func(entry *donburi.Entry) {
		c := components.Coin.Get(entry)
		if c.Collected {
			return
		}
		x, y := float32(c.Pos.X), float32(c.Pos.Y)
		if img, ok := lookupSprite(c.Anim.CurrentFrame()); ok {
			drawSprite(screen, img, c.Pos.X, c.Pos.Y, false)
			return
		}
		r := float32(cfg.Coin.Radius)
		vector.FillCircle(screen, x+1, y+1, r, color.RGBA{A: 50}, true)
		vector.FillCircle(screen, x, y, r, cfg.DarkGold, true)
		vector.FillCircle(screen, x, y, r-2, cfg.Gold, true)
		vector.FillCircle(screen, x, y, r-5, cfg.PaleGold, true)
		vector.StrokeCircle(screen, x, y, r, 1, cfg.White, true)
	})

	components.PowerUp.Each(w, func(entry *donburi.Entry) {
		p := components.PowerUp.Get(entry)
		if p.Collected {
			return
		}
		x, y := float32(p.Pos.X), float32(p.Pos.Y)
		if img, ok := lookupSprite(p.Anim.CurrentFrame()); ok {
			drawSprite(screen, img, p.Pos.X, p.Pos.Y, false)
			return
		}
		r := float32(cfg.PowerUp.Radius)
		vector.FillCircle(screen, x+2, y+2, r, color.RGBA{A: 60}, true)
		vector.FillCircle(screen, x, y, r, cfg.SkyBlue, true)
		vector.FillCircle(screen, x, y, r-2, cfg.PaleBlue, true)
		vector.FillCircle(screen, x, y, r-6, cfg.White, true)
		vector.StrokeCircle(screen, x, y, r, 1, cfg.White, true)
		vector.StrokeCircle(screen, x, y, r-4, 1, cfg.SoftYellow, true)
	})

	components.Enemy.Each(w, func(entry *donburi.Entry) {
		en := components.Enemy.Get(entry)
		if img, ok := lookupSprite(en.Anim.CurrentFrame()); ok {
			drawSprite(screen, img, en.Pos.X, en.Pos.Y, false)
			return
		}
		drawFallback(screen, en.Pos.X, en.Pos.Y, cfg.Enemy.FallbackSize, cfg.Enemy.FallbackColor, cfg.Enemy.FallbackBorderColor)
	})

	components.Projectile.Each(w, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		if !p.Active {
			return
		}
		x, y := float32(p.Pos.X), float32(p.Pos.Y)
		if img, ok := lookupSprite(p.Anim.CurrentFrame()); ok {
			drawSprite(screen, img, p.Pos.X, p.Pos.Y, false)
		} else {
			r := float32(cfg.Projectile.Radius)
			vector.FillCircle(screen, x+1, y+1, r, color.RGBA{A: 80}, true)
			vector.FillCircle(screen, x, y, r, cfg.Orange, true)
			vector.FillCircle(screen, x, y, r/2, color.RGBA{R: 255, G: 200, B: 100, A: 255}, true)
			vector.StrokeCircle(screen, x, y, r, 1, color.RGBA{R: 255, G: 50, A: 255}, true)
		}
		trail := cfg.Projectile.TrailLength
		tx := float32(p.Pos.X - math.Cos(p.Direction)*trail)
		ty := float32(p.Pos.Y - math.Sin(p.Direction)*trail)
		vector.FillCircle(screen, tx, ty, 4, color.RGBA{R: 100, G: 39, B: 20, A: 100}, true)
	})

	if entry, ok := components.Player.First(w); ok {
		drawPlayer(screen, components.Player.Get(entry))
	}
}

func drawPlayer(screen *ebiten.Image, p *components.PlayerData) {
	if !p.Visible() {
		return
	}
	if img, ok := lookupSprite(p.Anim.Current().CurrentFrame()); ok {
		drawSprite(screen, img, p.Pos.X, p.Pos.Y, p.Facing == cfg.DirectionLeft)
		return
	}
	drawFallback(screen, p.Pos.X, p.Pos.Y, cfg.Player.FallbackSize, PlayerFallbackColor(p), cfg.White)
}

// PlayerFallbackColor picks the rectangle colour used when the player sprite is missing.
func PlayerFallbackColor(p *components.PlayerData) color.RGBA {
	switch {
	case p.PowerUpActive:
		return cfg.Player.FallbackPowerColor
	case p.Anim.Choice == components.AnimRun:
		return cfg.Player.FallbackRunColor
	default:
		return cfg.Player.FallbackIdleColor
	}
}

func drawFallback(screen *ebiten.Image, cx, cy, size float64, fill, border color.RGBA) {
	x, y := float32(cx-size/2), float32(cy-size/2)
	s := float32(size)
	vector.FillRect(screen, x, y, s, s, fill, false)
	vector.StrokeRect(screen, x, y, s, s, 1, border, false)
}

// drawSprite draws img centered on (x, y), mirrored horizontally when flip is set.
func drawSprite(screen *ebiten.Image, img *ebiten.Image, x, y float64, flip bool) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	if flip {
		drawOp.GeoM.Scale(-1, 1)
	}
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}

// drawCentered draws s with its bounding box centered on (cx, cy).
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	b := text.BoundString(face, s)
	x := cx - (b.Min.X+b.Max.X)/2
	y := cy - (b.Min.Y+b.Max.Y)/2
	text.Draw(screen, s, face, x, y, clr)
}

// drawTopLeft draws s with the top-left of its bounding box at (x, y).
func drawTopLeft(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, x-b.Min.X, y-b.Min.Y, clr)
}

func colorScale(c color.Color) ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.ScaleWithColor(c)
	return cs
}

func shadowScale() ebiten.ColorScale {
	return colorScale(color.RGBA{A: 150})
}
