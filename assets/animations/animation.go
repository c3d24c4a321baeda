package animations

import "fmt"

// Animation cycles through frame identifiers, holding each for Hold ticks.
type Animation struct {
	Frames []string
	Hold   int

	frame        int
	frameCounter int
}

func (a *Animation) Update() {
	a.frameCounter++
	if a.frameCounter >= a.Hold {
		a.frameCounter = 0
		a.frame++
		if a.frame >= len(a.Frames) {
			// loop back to the beginning
			a.frame = 0
		}
	}
}

// CurrentFrame returns the identifier of the frame being shown.
func (a *Animation) CurrentFrame() string {
	return a.Frames[a.frame]
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = 0
	a.frameCounter = 0
}

// NewAnimation panics on an empty frame list or a non-positive hold.
func NewAnimation(frames []string, hold int) *Animation {
	if len(frames) == 0 {
		panic("animation requires at least one frame")
	}
	if hold <= 0 {
		panic(fmt.Sprintf("animation hold must be positive, got %d", hold))
	}
	return &Animation{
		Frames: frames,
		Hold:   hold,
	}
}
