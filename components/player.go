package components

import (
	"math"

	"github.com/automoto/treasure-hunt/assets/animations"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Pos    dmath.Vec2
	Target dmath.Vec2
	Speed  float64
	Moving bool
	Facing float64 // cfg.DirectionLeft or cfg.DirectionRight

	Lives           int
	Invincible      bool
	InvincibleTimer int
	PowerUpActive   bool
	PowerUpTimer    int

	Anim AnimationPair
}

var Player = donburi.NewComponentType[PlayerData]()

func NewPlayerData(x, y float64) PlayerData {
	return PlayerData{
		Pos:    dmath.Vec2{X: x, Y: y},
		Target: dmath.Vec2{X: x, Y: y},
		Speed:  cfg.Player.Speed,
		Facing: cfg.DirectionRight,
		Lives:  cfg.Player.StartingLives,
		Anim: AnimationPair{
			Idle: animations.NewAnimation(cfg.Animations.PlayerIdle.Frames, cfg.Animations.PlayerIdle.Hold),
			Run:  animations.NewAnimation(cfg.Animations.PlayerRun.Frames, cfg.Animations.PlayerRun.Hold),
		},
	}
}

// MoveTo replaces the movement target.
func (p *PlayerData) MoveTo(x, y float64) {
	p.Target = dmath.Vec2{X: x, Y: y}
	p.Moving = true
}

func (p *PlayerData) Update() {
	if p.Invincible {
		p.InvincibleTimer--
		if p.InvincibleTimer <= 0 {
			p.Invincible = false
		}
	}

	if p.PowerUpActive {
		p.PowerUpTimer--
		if p.PowerUpTimer <= 0 {
			p.PowerUpActive = false
			p.Speed = cfg.Player.Speed
		}
	}

	p.Anim.Choice = AnimIdle
	if p.Moving {
		dx := p.Target.X - p.Pos.X
		dy := p.Target.Y - p.Pos.Y
		dist := math.Hypot(dx, dy)
		if dist > p.Speed {
			p.Pos.X += dx / dist * p.Speed
			p.Pos.Y += dy / dist * p.Speed
			if dx > 0 {
				p.Facing = cfg.DirectionRight
			} else {
				p.Facing = cfg.DirectionLeft
			}
			p.Anim.Choice = AnimRun
		} else {
			p.Pos = p.Target
			p.Moving = false
		}
	}

	p.Anim.Current().Update()
}

func (p *PlayerData) ActivatePowerup() {
	p.PowerUpActive = true
	p.PowerUpTimer = cfg.Player.PowerUpTicks
	p.Speed = cfg.Player.Speed * cfg.Player.PowerUpMultiplier
}

// TakeDamage costs a life unless the player is invincible. It reports whether
// the hit landed.
func (p *PlayerData) TakeDamage() bool {
	if p.Invincible {
		return false
	}
	if p.Lives > 0 {
		p.Lives--
	}
	p.Invincible = true
	p.InvincibleTimer = cfg.Player.InvincibleTicks
	return true
}

// Visible is false during the hidden half of the invincibility blink.
func (p *PlayerData) Visible() bool {
	return !(p.Invincible && p.InvincibleTimer%cfg.Player.BlinkPeriod < cfg.Player.BlinkPeriod/2)
}
