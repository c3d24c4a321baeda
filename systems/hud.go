package systems

import (
	"fmt"

	"github.com/automoto/treasure-hunt/components"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/automoto/treasure-hunt/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the score panel, the powerup timer and the instructions line.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if CurrentState(e) != cfg.StatePlaying {
		return
	}
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	s := GetOrCreateSession(e)

	panel := cfg.HUD.Panel
	px, py := float32(panel.Min.X), float32(panel.Min.Y)
	pw, ph := float32(panel.Dx()), float32(panel.Dy())
	vector.FillRect(screen, px, py, pw, ph, cfg.HUD.PanelColor, false)
	vector.StrokeRect(screen, px, py, pw, ph, 1, cfg.White, false)

	left := panel.Min.X + 10
	drawTopLeft(screen, fmt.Sprintf("Treasure: %d", s.Score), fonts.Subtitle.Get(), left, panel.Min.Y+10, cfg.HUD.ScoreColor)

	collected := CollectedCoins(e)
	coinColor := cfg.White
	if collected == cfg.Round.CoinCount {
		coinColor = cfg.LightGreen
	}
	drawTopLeft(screen, fmt.Sprintf("Coins: %d/%d", collected, cfg.Round.CoinCount), fonts.Body.Get(), left, panel.Min.Y+40, coinColor)

	livesColor := cfg.White
	if player.Lives <= 1 {
		livesColor = cfg.HUD.LowLifeColor
	}
	drawTopLeft(screen, fmt.Sprintf("Lives: %d/%d", player.Lives, cfg.Player.StartingLives), fonts.Label.Get(), left, panel.Min.Y+60, livesColor)

	if player.PowerUpActive {
		drawCentered(screen, fmt.Sprintf("SPEED! (%ds)", player.PowerUpTimer/cfg.C.TPS), fonts.Label.Get(), cfg.C.Width/2, 30, cfg.HUD.PowerColor)
	}

	drawCentered(screen, cfg.HUD.Instructions, fonts.Tiny.Get(), cfg.C.Width/2, cfg.C.Height-20, cfg.LightGray)
}
