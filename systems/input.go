package systems

import (
	"image"

	"github.com/automoto/treasure-hunt/components"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePointer polls the mouse into the Pointer component.
// Must run BEFORE UpdateInput in the system order.
func UpdatePointer(e *ecs.ECS) {
	p := GetOrCreatePointer(e)
	x, y := ebiten.CursorPosition()
	if x != p.X || y != p.Y {
		p.Moved = true
	}
	p.X, p.Y = x, y
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.Pressed = true
	}
}

// UpdateInput forwards this tick's pointer events to the state machine and
// consumes them.
func UpdateInput(e *ecs.ECS) {
	p := GetOrCreatePointer(e)
	if p.Moved {
		HandlePointerMove(e, p.X, p.Y)
	}
	if p.Pressed {
		HandleClick(e, p.X, p.Y)
	}
	p.Moved = false
	p.Pressed = false
}

// HandleClick applies a left click at (x, y) to the current state.
func HandleClick(e *ecs.ECS, x, y int) {
	s := GetOrCreateSession(e)

	switch s.State {
	case cfg.StateCountdown:
		return
	case cfg.StateMenu:
		menu := GetOrCreateMenu(e)
		menu.Hover = ButtonAt(x, y)
		activateButton(e, menu.Hover)
	case cfg.StatePlaying:
		if entry, ok := components.Player.First(e.World); ok {
			components.Player.Get(entry).MoveTo(float64(x), float64(y))
		}
	case cfg.StateGameOver:
		s.State = cfg.StateMenu
	}
}

// HandlePointerMove updates the hovered menu button.
func HandlePointerMove(e *ecs.ECS, x, y int) {
	if GetOrCreateSession(e).State != cfg.StateMenu {
		return
	}
	GetOrCreateMenu(e).Hover = ButtonAt(x, y)
}

// ButtonAt returns the first menu button containing (x, y), or ButtonNone.
func ButtonAt(x, y int) cfg.ButtonID {
	pt := image.Pt(x, y)
	for _, b := range cfg.Menu.Buttons {
		if pt.In(b.Rect) {
			return b.ID
		}
	}
	return cfg.ButtonNone
}

// GetOrCreatePointer returns the singleton Pointer component, creating if needed
func GetOrCreatePointer(e *ecs.ECS) *components.PointerData {
	if _, ok := components.Pointer.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Pointer))
	}
	ent, _ := components.Pointer.First(e.World)
	return components.Pointer.Get(ent)
}
