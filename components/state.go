package components

import (
	"math/rand"

	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/yohamta/donburi"
)

// SessionData is the game state machine (singleton component).
type SessionData struct {
	State cfg.GameStateID
	// Phase is State as it was when the current tick started. Gated systems
	// read Phase so a transition takes effect on the next tick.
	Phase cfg.GameStateID

	Score   int
	MusicOn bool
	SfxOn   bool

	QuitRequested bool
	Rand          *rand.Rand
}

var Session = donburi.NewComponentType[SessionData]()
