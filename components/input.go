package components

import "github.com/yohamta/donburi"

// PointerData is the mouse state for the current tick (singleton component).
// It is filled by the pointer polling system or directly by tests.
type PointerData struct {
	X, Y    int
	Pressed bool // left button went down this tick
	Moved   bool // cursor position changed this tick
}

var Pointer = donburi.NewComponentType[PointerData]()
