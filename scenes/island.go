package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/treasure-hunt/assets"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/automoto/treasure-hunt/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// IslandScene runs the whole game: menu, countdown, rounds and the game over
// screen all live in one world driven by the session state machine.
type IslandScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewIslandScene() *IslandScene {
	return &IslandScene{}
}

func (is *IslandScene) Update() {
	is.once.Do(is.configure)
	is.ecs.Update()
}

func (is *IslandScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if is.ecs == nil {
		return
	}
	is.ecs.Draw(screen)
}

// QuitRequested reports whether the player chose Exit on the menu.
func (is *IslandScene) QuitRequested() bool {
	if is.ecs == nil {
		return false
	}
	return systems.GetOrCreateSession(is.ecs).QuitRequested
}

func (is *IslandScene) configure() {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()

	level := assets.NewLevelLoader().MustLoadLevel(cfg.Round.LevelPath)
	if err := level.Validate(cfg.Round.CoinCount, cfg.Round.EnemyCount, cfg.Round.PowerUpCount); err != nil {
		panic("invalid level " + cfg.Round.LevelPath + ": " + err.Error())
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Device polling feeds the pointer component before the gameplay systems
	// consume it; audio drains whatever they queued.
	ecs.AddSystem(systems.UpdatePointer)
	systems.AddGameplaySystems(ecs)
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateDebugToggle)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawMenu)
	ecs.AddRenderer(cfg.Default, systems.DrawCountdown)
	ecs.AddRenderer(cfg.Default, systems.DrawPlaying)
	ecs.AddRenderer(cfg.Default, systems.DrawParticles)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	is.ecs = ecs

	systems.InitWorld(is.ecs, level)
	if cfg.Debug.SkipMenu {
		systems.StartCountdown(is.ecs)
	}
}
