package config

import "fmt"

// AnimationDef names the frames of a cyclic animation and how many ticks each is held
type AnimationDef struct {
	Frames []string
	Hold   int
}

// AnimationSet groups every animation the game uses
type AnimationSet struct {
	PlayerIdle AnimationDef
	PlayerRun  AnimationDef
	EnemyRun   AnimationDef
	Coin       AnimationDef
	PowerUp    AnimationDef
	Projectile AnimationDef
}

var Animations AnimationSet

// FrameSequence returns prefix+i for i in [first, last].
func FrameSequence(prefix string, first, last int) []string {
	frames := make([]string, 0, last-first+1)
	for i := first; i <= last; i++ {
		frames = append(frames, fmt.Sprintf("%s%d", prefix, i))
	}
	return frames
}

func init() {
	Animations = AnimationSet{
		PlayerIdle: AnimationDef{Frames: FrameSequence("player/idle/", 1, 26), Hold: 15},
		PlayerRun:  AnimationDef{Frames: FrameSequence("player/run/", 1, 14), Hold: 12},
		EnemyRun:   AnimationDef{Frames: FrameSequence("enemy/run/", 1, 12), Hold: 10},
		Coin:       AnimationDef{Frames: FrameSequence("coin_", 1, 3), Hold: 10},
		PowerUp:    AnimationDef{Frames: FrameSequence("powerup_", 1, 3), Hold: 8},
		Projectile: AnimationDef{Frames: FrameSequence("projectile_", 1, 2), Hold: 8},
	}
}
