package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCoin
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int     `yaml:"sampleRate"`
	MusicVol   float64 `yaml:"musicVol"`
	SFXVol     float64 `yaml:"sfxVol"`
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	Soundtrack string
	SFXPaths   map[SoundID]string
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		MusicVol:   0.6,
		SFXVol:     1.0,
	}

	Sound = SoundConfig{
		Soundtrack: "audio/music/soundtrack.ogg",
		SFXPaths: map[SoundID]string{
			SoundCoin: "audio/sfx/coin.wav",
		},
	}
}
