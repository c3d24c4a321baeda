package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/treasure-hunt/archetypes"
	"github.com/automoto/treasure-hunt/assets"
	"github.com/automoto/treasure-hunt/components"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/automoto/treasure-hunt/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Toggle defaults applied to new sessions; replaced by saved settings at startup.
var (
	defaultMusicOn = true
	defaultSfxOn   = true
)

// GetOrCreateSession returns the singleton session, creating it in the menu
// state if needed.
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	return components.Session.Get(sessionEntry(e))
}

func sessionEntry(e *ecs.ECS) *donburi.Entry {
	if entry, ok := components.Session.First(e.World); ok {
		return entry
	}

	entry := archetypes.Session.Spawn(e)
	components.Session.SetValue(entry, components.SessionData{
		State:   cfg.StateMenu,
		Phase:   cfg.StateMenu,
		MusicOn: defaultMusicOn,
		SfxOn:   defaultSfxOn,
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	components.Countdown.SetValue(entry, components.CountdownData{
		Number: cfg.Countdown.Start,
		Pop:    gween.New(cfg.Countdown.PopScale, 1, cfg.Countdown.PopSeconds, ease.OutBack),
		Scale:  1,
	})
	components.Menu.SetValue(entry, components.MenuData{
		Hover: cfg.ButtonNone,
		Bob:   gween.New(0, cfg.Menu.TitleBobPixels, 1, ease.InOutSine),
	})
	components.Particles.SetValue(entry, components.ParticlesData{
		Items: make([]components.Particle, 0, 64),
	})
	return entry
}

// GetOrCreateCountdown returns the countdown fields stored on the session entity.
func GetOrCreateCountdown(e *ecs.ECS) *components.CountdownData {
	return components.Countdown.Get(sessionEntry(e))
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	return components.Menu.Get(sessionEntry(e))
}

// GetOrCreateParticles returns the particle collection owned by the session.
func GetOrCreateParticles(e *ecs.ECS) *components.ParticlesData {
	return components.Particles.Get(sessionEntry(e))
}

// LatchPhase records the state the tick starts in. Must run first.
func LatchPhase(e *ecs.ECS) {
	s := GetOrCreateSession(e)
	s.Phase = s.State
}

// WithPhase wraps a system so it only runs on ticks that started in phase.
func WithPhase(phase cfg.GameStateID, system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreateSession(e).Phase != phase {
			return
		}
		system(e)
	}
}

// CurrentState returns the session state.
func CurrentState(e *ecs.ECS) cfg.GameStateID {
	return GetOrCreateSession(e).State
}

// AddGameplaySystems registers the per-tick logic in order. None of these
// systems touch the window, input devices or the audio device, so a world
// built with them can be driven headless.
func AddGameplaySystems(e *ecs.ECS) {
	e.AddSystem(LatchPhase)
	e.AddSystem(UpdateInput)
	e.AddSystem(WithPhase(cfg.StateMenu, UpdateMenu))
	e.AddSystem(WithPhase(cfg.StateCountdown, UpdateCountdown))

	e.AddSystem(WithPhase(cfg.StatePlaying, UpdatePlayer))
	e.AddSystem(WithPhase(cfg.StatePlaying, UpdateEnemies))
	e.AddSystem(WithPhase(cfg.StatePlaying, UpdateCollectibles))
	e.AddSystem(WithPhase(cfg.StatePlaying, UpdateProjectiles))
	e.AddSystem(WithPhase(cfg.StatePlaying, UpdateEffects))
	e.AddSystem(WithPhase(cfg.StatePlaying, UpdateObjects))
	e.AddSystem(WithPhase(cfg.StatePlaying, UpdateCollisions))
}

// InitWorld prepares a fresh world for level: the session, the level entity,
// the broadphase space and a first set of round entities. The session starts
// in the menu with the soundtrack queued if music is on.
func InitWorld(e *ecs.ECS, level assets.Level) {
	s := GetOrCreateSession(e)
	factory.CreateLevel(e, level)
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, cfg.Combat.BroadphaseCellSize)
	factory.ResetRound(e, s.Rand)
	if s.MusicOn {
		PlayMusic(e)
	}
}
