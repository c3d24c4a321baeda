package systems

import (
	"fmt"

	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/automoto/treasure-hunt/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// IsVictory re-derives the outcome of a finished round: it was won exactly
// when every coin was collected.
func IsVictory(e *ecs.ECS) bool {
	return CollectedCoins(e) == cfg.Round.CoinCount
}

// DrawGameOver renders the victory or defeat screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	if CurrentState(e) != cfg.StateGameOver {
		return
	}
	s := GetOrCreateSession(e)
	w, h := cfg.C.Width, cfg.C.Height
	cx, cy := w/2, h/2

	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.GameOver.OverlayColor, false)

	title, message, clr, msgClr := cfg.GameOver.DefeatTitle, cfg.GameOver.DefeatMessage, cfg.GameOver.DefeatColor, cfg.PaleRed
	if IsVictory(e) {
		title, message, clr, msgClr = cfg.GameOver.VictoryTitle, cfg.GameOver.VictoryMessage, cfg.GameOver.VictoryColor, cfg.LightGreen
	}

	banner := fonts.Banner.Get()
	drawCentered(screen, title, banner, cx+3, cy-47, cfg.Shadow)
	drawCentered(screen, title, banner, cx, cy-50, clr)
	drawCentered(screen, message, fonts.Body.Get(), cx, cy-10, msgClr)

	drawCentered(screen, fmt.Sprintf("Treasure Found: %d", s.Score), fonts.Score.Get(), cx, cy+30, cfg.White)
	drawCentered(screen, fmt.Sprintf("Coins Collected: %d/%d", CollectedCoins(e), cfg.Round.CoinCount), fonts.Body.Get(), cx, cy+60, cfg.Gold)

	r := cfg.GameOver.ReturnButton
	bx, by := float32(r.Min.X), float32(r.Min.Y)
	bw, bh := float32(r.Dx()), float32(r.Dy())
	vector.FillRect(screen, bx, by, bw, bh, cfg.GameOver.ButtonColor, false)
	vector.StrokeRect(screen, bx, by, bw, bh, 1, cfg.White, false)
	mid := r.Min.Add(r.Max).Div(2)
	drawCentered(screen, cfg.GameOver.ReturnLabel, fonts.Label.Get(), mid.X, mid.Y, cfg.White)
}
