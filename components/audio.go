package components

import (
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/yohamta/donburi"
)

// MusicCommand is a pending change to the soundtrack
type MusicCommand int

const (
	MusicNone MusicCommand = iota
	MusicPlay              // start the soundtrack from the beginning
	MusicStop
)

// AudioData queues sound work for the audio system (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
	Music      MusicCommand
}

var Audio = donburi.NewComponentType[AudioData]()
