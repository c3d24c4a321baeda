package systems

import (
	"strconv"

	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/automoto/treasure-hunt/fonts"
	"github.com/automoto/treasure-hunt/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// StartCountdown switches to the countdown and rewinds it to the first number.
func StartCountdown(e *ecs.ECS) {
	s := GetOrCreateSession(e)
	c := GetOrCreateCountdown(e)

	s.State = cfg.StateCountdown
	c.Timer = 0
	c.Number = cfg.Countdown.Start
	c.Scale = cfg.Countdown.PopScale
	c.Pop.Reset()
}

// UpdateCountdown runs the 3-2-1-GO sequence and starts the round when it ends.
func UpdateCountdown(e *ecs.ECS) {
	s := GetOrCreateSession(e)
	c := GetOrCreateCountdown(e)

	c.Timer++
	if c.Timer >= cfg.Countdown.AdvanceTick {
		c.Number--
		c.Timer = cfg.Countdown.ShowTick
		if c.Number < 0 {
			s.State = cfg.StatePlaying
			StartRound(e)
			return
		}
	}

	if c.Timer == cfg.Countdown.ShowTick {
		c.Pop.Reset()
	}
	if c.Visible(cfg.Countdown.ShowTick) {
		c.Scale, _ = c.Pop.Update(1 / float32(cfg.C.TPS))
	}
}

// StartRound rebuilds every round entity and resets the score, particles and
// soundtrack.
func StartRound(e *ecs.ECS) {
	s := GetOrCreateSession(e)
	factory.ResetRound(e, s.Rand)
	s.Score = 0
	GetOrCreateParticles(e).Clear()
	if s.MusicOn {
		PlayMusic(e)
	}
}

// DrawCountdown renders the black overlay and the current number.
func DrawCountdown(e *ecs.ECS, screen *ebiten.Image) {
	if CurrentState(e) != cfg.StateCountdown {
		return
	}
	c := GetOrCreateCountdown(e)

	vector.FillRect(screen, 0, 0, float32(cfg.C.Width), float32(cfg.C.Height), cfg.Black, false)
	if !c.Visible(cfg.Countdown.ShowTick) {
		return
	}

	label, clr := "GO!", cfg.LightGreen
	if c.Number > 0 {
		label, clr = strconv.Itoa(c.Number), cfg.SoftYellow
	}

	face := fonts.Countdown.Get()
	b := text.BoundString(face, label)
	scale := float64(c.Scale)
	cx, cy := float64(cfg.C.Width)/2, float64(cfg.C.Height)/2

	for _, pass := range []struct {
		dx, dy float64
		clr    ebiten.ColorScale
	}{
		{4, 4, shadowScale()},
		{0, 0, colorScale(clr)},
	} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Min.X+b.Max.X)/2, -float64(b.Min.Y+b.Max.Y)/2)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(cx+pass.dx, cy+pass.dy)
		op.ColorScale = pass.clr
		text.DrawWithOptions(screen, label, face, op)
	}
}
