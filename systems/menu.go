package systems

import (
	"image/color"
	"math"

	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/automoto/treasure-hunt/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMenu advances the menu's background and title animation.
func UpdateMenu(e *ecs.ECS) {
	menu := GetOrCreateMenu(e)
	menu.Ticks++

	offset, done := menu.Bob.Update(1 / float32(cfg.C.TPS))
	menu.BobOffset = offset
	if done {
		// Swing back the other way.
		from, to := cfg.Menu.TitleBobPixels, float32(0)
		if offset < cfg.Menu.TitleBobPixels/2 {
			from, to = 0, cfg.Menu.TitleBobPixels
		}
		menu.Bob = gween.New(from, to, 1, ease.InOutSine)
	}
}

func activateButton(e *ecs.ECS, id cfg.ButtonID) {
	s := GetOrCreateSession(e)

	switch id {
	case cfg.ButtonStart:
		StartCountdown(e)
	case cfg.ButtonMusic:
		s.MusicOn = !s.MusicOn
		if s.MusicOn {
			PlayMusic(e)
		} else {
			StopMusic(e)
		}
		SaveCurrentSettings(s)
	case cfg.ButtonSFX:
		s.SfxOn = !s.SfxOn
		SaveCurrentSettings(s)
	case cfg.ButtonExit:
		s.QuitRequested = true
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	if CurrentState(e) != cfg.StateMenu {
		return
	}
	s := GetOrCreateSession(e)
	menu := GetOrCreateMenu(e)

	width := float32(cfg.C.Width)
	cx := cfg.C.Width / 2

	// Animated gradient stripes
	t := float64(menu.Ticks)
	for y := 0; y < cfg.C.Height; y += 20 {
		fy := float64(y)
		stripe := color.RGBA{
			R: uint8(50 + 30*math.Sin(fy*0.01+t*0.02)),
			G: uint8(100 + 40*math.Sin(fy*0.015+t*0.03)),
			B: uint8(150 + 50*math.Sin(fy*0.02+t*0.04)),
			A: 255,
		}
		vector.FillRect(screen, 0, float32(y), width, 20, stripe, false)
	}

	if bg, ok := lookupSprite("menu_background"); ok {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(0.5)
		screen.DrawImage(bg, op)
	}

	titleY := int(cfg.Menu.TitleY + float64(menu.BobOffset))
	drawCentered(screen, cfg.Menu.Title, fonts.Title.Get(), cx+3, titleY+2, cfg.Shadow)
	drawCentered(screen, cfg.Menu.Title, fonts.Title.Get(), cx, titleY, cfg.Menu.TitleColor)
	drawCentered(screen, cfg.Menu.Subtitle, fonts.Subtitle.Get(), cx+2, int(cfg.Menu.SubtitleY)+2, cfg.Shadow)
	drawCentered(screen, cfg.Menu.Subtitle, fonts.Subtitle.Get(), cx, int(cfg.Menu.SubtitleY), cfg.Menu.SubtitleColor)
	drawCentered(screen, cfg.Menu.Author, fonts.Small.Get(), cx, int(cfg.Menu.AuthorY), cfg.Menu.AuthorColor)

	buttonFont := fonts.Button.Get()
	for _, b := range cfg.Menu.Buttons {
		r := b.Rect
		x, y := float32(r.Min.X), float32(r.Min.Y)
		w, h := float32(r.Dx()), float32(r.Dy())

		fill := cfg.Menu.ButtonColor
		if menu.Hover == b.ID {
			fill = cfg.Menu.HoverColor
		}

		vector.FillRect(screen, x+3, y+3, w, h, cfg.Shadow, false)
		vector.FillRect(screen, x, y, w, h, fill, false)
		vector.StrokeRect(screen, x-2, y-2, w+4, h+4, 2, cfg.Menu.BorderColor, false)

		label := buttonLabel(b.ID, s.MusicOn, s.SfxOn)
		mid := r.Min.Add(r.Max).Div(2)
		drawCentered(screen, label, buttonFont, mid.X+1, mid.Y+1, cfg.Shadow)
		drawCentered(screen, label, buttonFont, mid.X, mid.Y, cfg.Menu.LabelColor)
	}

	drawCentered(screen, cfg.Menu.Instructions, fonts.Tiny.Get(), cx, cfg.C.Height-30, cfg.White)
}

// buttonLabel returns the display text for a menu button
func buttonLabel(id cfg.ButtonID, musicOn, sfxOn bool) string {
	switch id {
	case cfg.ButtonStart:
		return "START ADVENTURE"
	case cfg.ButtonMusic:
		return "MUSIC: " + onOff(musicOn)
	case cfg.ButtonSFX:
		return "SOUNDS: " + onOff(sfxOn)
	case cfg.ButtonExit:
		return "EXIT"
	default:
		return ""
	}
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}
