package components

import "github.com/automoto/treasure-hunt/assets/animations"

// AnimChoice selects which of an entity's two animations is active
type AnimChoice int

const (
	AnimIdle AnimChoice = iota
	AnimRun
)

func (c AnimChoice) String() string {
	if c == AnimRun {
		return "run"
	}
	return "idle"
}

// AnimationPair holds an idle and a run cycle plus the active choice.
type AnimationPair struct {
	Idle   *animations.Animation
	Run    *animations.Animation
	Choice AnimChoice
}

// Current returns the animation selected by Choice.
func (a *AnimationPair) Current() *animations.Animation {
	if a.Choice == AnimRun {
		return a.Run
	}
	return a.Idle
}
