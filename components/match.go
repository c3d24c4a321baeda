package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CountdownData drives the 3-2-1-GO sequence before a round (singleton component)
type CountdownData struct {
	Timer  int          // ticks since the current number started
	Number int          // current countdown number (3, 2, 1, then 0 for GO)
	Pop    *gween.Tween // scale tween restarted for each number
	Scale  float32
}

var Countdown = donburi.NewComponentType[CountdownData]()

// Visible reports whether the number is on screen this tick.
func (c *CountdownData) Visible(showTick int) bool {
	return c.Timer >= showTick
}
