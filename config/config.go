package config

import (
	"image"
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by every renderer.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed             float64 `yaml:"speed"`             // pixels per tick
	PowerUpMultiplier float64 `yaml:"powerUpMultiplier"` // speed multiplier while a powerup is active

	// Lives
	StartingLives   int `yaml:"startingLives"`
	InvincibleTicks int `yaml:"invincibleTicks"` // ticks of invincibility after a hit
	PowerUpTicks    int `yaml:"powerUpTicks"`    // ticks a speed powerup lasts
	BlinkPeriod     int `yaml:"blinkPeriod"`     // hidden for the first half of each period while invincible

	// Fallback rectangle drawn when the sprite is missing
	FallbackSize       float64    `yaml:"fallbackSize"`
	FallbackIdleColor  color.RGBA `yaml:"-"`
	FallbackRunColor   color.RGBA `yaml:"-"`
	FallbackPowerColor color.RGBA `yaml:"-"`
}

// EnemyConfig contains enemy patrol configuration
type EnemyConfig struct {
	Speed          float64 `yaml:"speed"`
	WanderInterval int     `yaml:"wanderInterval"` // direction is re-rolled once the timer exceeds this

	FallbackSize        float64    `yaml:"fallbackSize"`
	FallbackColor       color.RGBA `yaml:"-"`
	FallbackBorderColor color.RGBA `yaml:"-"`
	TerritoryColor      color.RGBA `yaml:"-"`
	TerritoryLabel      string     `yaml:"territoryLabel"`
}

// CollectibleConfig is shared by coins and powerups
type CollectibleConfig struct {
	PickupRadius  float64    `yaml:"pickupRadius"`
	ScoreValue    int        `yaml:"scoreValue"`
	ParticleCount int        `yaml:"particleCount"`
	Radius        float64    `yaml:"radius"` // drawn radius, also the broadphase box half-size
	ParticleColor color.RGBA `yaml:"-"`
}

// ProjectileConfig contains projectile hazard configuration
type ProjectileConfig struct {
	Count       int     `yaml:"count"`
	MinSpeed    float64 `yaml:"minSpeed"`
	MaxSpeed    float64 `yaml:"maxSpeed"`    // exclusive
	ExitMargin  float64 `yaml:"exitMargin"`  // distance outside the field before respawning
	SpawnOffset float64 `yaml:"spawnOffset"` // spawn edges sit this far outside the field
	Radius      float64 `yaml:"radius"`
	TrailLength float64 `yaml:"trailLength"`
}

// CombatConfig contains hit radii and hit feedback
type CombatConfig struct {
	EnemyHitRadius         float64    `yaml:"enemyHitRadius"`
	EnemyHitParticles      int        `yaml:"enemyHitParticles"`
	EnemyHitColor          color.RGBA `yaml:"-"`
	ProjectileHitRadius    float64    `yaml:"projectileHitRadius"`
	ProjectileHitParticles int        `yaml:"projectileHitParticles"`
	ProjectileHitColor     color.RGBA `yaml:"-"`
	BroadphaseCellSize     int        `yaml:"broadphaseCellSize"`
}

// ParticleConfig contains particle burst configuration
type ParticleConfig struct {
	Lifetime    int     `yaml:"lifetime"`    // ticks
	MaxVelocity float64 `yaml:"maxVelocity"` // components drawn from [-MaxVelocity, MaxVelocity)
	Radius      float64 `yaml:"radius"`
}

// CountdownConfig drives the 3-2-1-GO sequence
type CountdownConfig struct {
	Start       int     `yaml:"start"`       // first number shown
	ShowTick    int     `yaml:"showTick"`    // tick from which the number is visible
	AdvanceTick int     `yaml:"advanceTick"` // tick at which the number decrements
	PopScale    float32 `yaml:"popScale"`    // scale the number pops in at
	PopSeconds  float32 `yaml:"popSeconds"`  // duration of the pop tween
}

// RoundConfig contains round composition
type RoundConfig struct {
	CoinCount    int    `yaml:"coinCount"`
	EnemyCount   int    `yaml:"enemyCount"`
	PowerUpCount int    `yaml:"powerUpCount"`
	LevelPath    string `yaml:"levelPath"`
}

// MenuButton defines a labeled clickable region on the main menu
type MenuButton struct {
	ID   ButtonID
	Rect image.Rectangle
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	Title          string
	Subtitle       string
	Author         string
	Instructions   string
	Buttons        []MenuButton
	ButtonColor    color.RGBA
	HoverColor     color.RGBA
	BorderColor    color.RGBA
	LabelColor     color.RGBA
	TitleColor     color.RGBA
	SubtitleColor  color.RGBA
	AuthorColor    color.RGBA
	TitleY         float64
	SubtitleY      float64
	AuthorY        float64
	TitleBobPixels float32
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	OverlayColor   color.RGBA
	VictoryTitle   string
	VictoryMessage string
	VictoryColor   color.RGBA
	DefeatTitle    string
	DefeatMessage  string
	DefeatColor    color.RGBA
	ReturnLabel    string
	ReturnButton   image.Rectangle
	ButtonColor    color.RGBA
}

// HUDConfig contains the in-game panel configuration
type HUDConfig struct {
	Panel        image.Rectangle
	PanelColor   color.RGBA
	ScoreColor   color.RGBA
	LowLifeColor color.RGBA
	PowerColor   color.RGBA
	Instructions string
}

// FieldConfig contains the play-field look
type FieldConfig struct {
	GrassColor   color.RGBA
	PatchColor   color.RGBA
	PatchSpacing int
	PatchSize    float32
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // Skip menu and go straight into the countdown
	ShowHitboxes bool // Draw broadphase boxes and hit radii, toggled with F3
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Coin CollectibleConfig
var PowerUp CollectibleConfig
var Projectile ProjectileConfig
var Combat CombatConfig
var Particle ParticleConfig
var Countdown CountdownConfig
var Round RoundConfig
var Menu MenuConfig
var GameOver GameOverConfig
var HUD HUDConfig
var Field FieldConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Gold       = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	DarkGold   = color.RGBA{R: 200, G: 150, B: 0, A: 255}
	PaleGold   = color.RGBA{R: 255, G: 255, B: 150, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	SoftYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	LightGreen = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightRed   = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	PaleRed    = color.RGBA{R: 255, G: 150, B: 150, A: 255}
	SkyBlue    = color.RGBA{R: 100, G: 150, B: 255, A: 255}
	PaleBlue   = color.RGBA{R: 150, G: 200, B: 255, A: 255}
	Orange     = color.RGBA{R: 255, G: 100, B: 50, A: 255}
	LightGray  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Shadow     = color.RGBA{R: 0, G: 0, B: 0, A: 100}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Treasure Hunt - Pirate Adventure",
		TPS:    60,
	}

	Player = PlayerConfig{
		Speed:             3,
		PowerUpMultiplier: 2,

		StartingLives:   3,
		InvincibleTicks: 120, // 2 seconds
		PowerUpTicks:    300, // 5 seconds
		BlinkPeriod:     10,

		FallbackSize:       30,
		FallbackIdleColor:  color.RGBA{R: 0, G: 120, B: 255, A: 255},
		FallbackRunColor:   color.RGBA{R: 0, G: 180, B: 255, A: 255},
		FallbackPowerColor: Yellow,
	}

	Enemy = EnemyConfig{
		Speed:          2,
		WanderInterval: 120,

		FallbackSize:        25,
		FallbackColor:       color.RGBA{R: 180, G: 30, B: 30, A: 255},
		FallbackBorderColor: color.RGBA{R: 100, G: 0, B: 0, A: 255},
		TerritoryColor:      color.RGBA{R: 100, G: 0, B: 0, A: 255},
		TerritoryLabel:      "RIVAL PIRATES",
	}

	Coin = CollectibleConfig{
		PickupRadius:  25,
		ScoreValue:    10,
		ParticleCount: 8,
		Radius:        10,
		ParticleColor: Gold,
	}

	PowerUp = CollectibleConfig{
		PickupRadius:  30,
		ScoreValue:    20,
		ParticleCount: 12,
		Radius:        12,
		ParticleColor: SkyBlue,
	}

	Projectile = ProjectileConfig{
		Count:       5,
		MinSpeed:    2,
		MaxSpeed:    4,
		ExitMargin:  30,
		SpawnOffset: 20,
		Radius:      8,
		TrailLength: 15,
	}

	Combat = CombatConfig{
		EnemyHitRadius:         30,
		EnemyHitParticles:      10,
		EnemyHitColor:          LightRed,
		ProjectileHitRadius:    20,
		ProjectileHitParticles: 8,
		ProjectileHitColor:     color.RGBA{R: 255, G: 150, B: 50, A: 255},
		BroadphaseCellSize:     40,
	}

	Particle = ParticleConfig{
		Lifetime:    30,
		MaxVelocity: 3,
		Radius:      2,
	}

	Countdown = CountdownConfig{
		Start:       3,
		ShowTick:    30,
		AdvanceTick: 60,
		PopScale:    1.6,
		PopSeconds:  0.3,
	}

	Round = RoundConfig{
		CoinCount:    10,
		EnemyCount:   3,
		PowerUpCount: 3,
		LevelPath:    "levels/island.tmx",
	}

	Menu = MenuConfig{
		Title:        "TREASURE HUNT",
		Subtitle:     "Pirate Adventure",
		Author:       "by Matheus Abrahao",
		Instructions: "MOUSE: Click the buttons - GOAL: Collect 10 coins - AVOID: Pirates and projectiles!",
		Buttons: []MenuButton{
			{ID: ButtonStart, Rect: image.Rect(250, 220, 550, 290)},
			{ID: ButtonMusic, Rect: image.Rect(250, 310, 550, 370)},
			{ID: ButtonSFX, Rect: image.Rect(250, 390, 550, 450)},
			{ID: ButtonExit, Rect: image.Rect(250, 470, 550, 530)},
		},
		ButtonColor:    color.RGBA{R: 107, G: 66, B: 38, A: 255},  // wood
		HoverColor:     color.RGBA{R: 26, G: 188, B: 156, A: 255}, // turquoise
		BorderColor:    color.RGBA{R: 75, G: 46, B: 28, A: 255},
		LabelColor:     Gold,
		TitleColor:     SoftYellow,
		SubtitleColor:  color.RGBA{R: 255, G: 200, B: 100, A: 255},
		AuthorColor:    LightGray,
		TitleY:         80,
		SubtitleY:      130,
		AuthorY:        170,
		TitleBobPixels: 4,
	}

	GameOver = GameOverConfig{
		OverlayColor:   color.RGBA{R: 0, G: 0, B: 0, A: 150},
		VictoryTitle:   "TREASURE FOUND!",
		VictoryMessage: "You found every treasure!",
		VictoryColor:   SoftYellow,
		DefeatTitle:    "PIRATES GOT YOU!",
		DefeatMessage:  "The rival pirates captured you!",
		DefeatColor:    LightRed,
		ReturnLabel:    "Click to return to port",
		ReturnButton:   image.Rect(300, 400, 500, 440),
		ButtonColor:    SkyBlue,
	}

	HUD = HUDConfig{
		Panel:        image.Rect(5, 5, 205, 85),
		PanelColor:   color.RGBA{R: 0, G: 0, B: 0, A: 150},
		ScoreColor:   SoftYellow,
		LowLifeColor: LightRed,
		PowerColor:   Yellow,
		Instructions: "MOUSE: Click to move - GOAL: Collect all 10 coins - AVOID: Pirates and projectiles!",
	}

	Field = FieldConfig{
		GrassColor:   color.RGBA{R: 30, G: 120, B: 30, A: 255},
		PatchColor:   color.RGBA{R: 40, G: 140, B: 40, A: 255},
		PatchSpacing: 40,
		PatchSize:    20,
	}
}

// FieldBounds returns the play field rectangle in world coordinates.
func FieldBounds() image.Rectangle {
	return image.Rect(0, 0, C.Width, C.Height)
}
