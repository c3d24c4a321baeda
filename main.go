package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/treasure-hunt/assets"
	"github.com/automoto/treasure-hunt/config"
	"github.com/automoto/treasure-hunt/fonts"
	"github.com/automoto/treasure-hunt/scenes"
	"github.com/automoto/treasure-hunt/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	QuitRequested() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	if err := fonts.LoadAll(nil); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewIslandScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding gameplay tuning")
	assetDir := flag.String("assets", "", "Directory whose files take precedence over the embedded assets")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "Skip the menu and start the countdown immediately")
	flag.BoolVar(&config.Debug.ShowHitboxes, "debug", false, "Start with the hitbox overlay enabled (F3 toggles)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Fatalf("Failed to load config overrides: %v", err)
		}
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *assetDir != "" {
		assets.SetOverlay(os.DirFS(*assetDir))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
