package components

import (
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MenuData stores the current state of the main menu
type MenuData struct {
	Hover cfg.ButtonID // button under the pointer, ButtonNone if none
	Ticks int          // drives the animated background

	Bob       *gween.Tween // title bob, reversed every time it finishes
	BobOffset float32
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
