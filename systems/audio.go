package systems

import (
	"log"
	"sync"

	"github.com/automoto/treasure-hunt/assets"
	"github.com/automoto/treasure-hunt/components"
	cfg "github.com/automoto/treasure-hunt/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	audioInitOnce      sync.Once

	// paths that failed to load; each is reported once
	audioMisses = map[string]bool{}
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			audioMiss(path, err)
		}
	}
}

func audioMiss(path string, err error) {
	if audioMisses[path] {
		return
	}
	audioMisses[path] = true
	log.Printf("Warning: audio %s unavailable, continuing silently: %v", path, err)
}

// UpdateAudio drains the queued sound work onto the audio device.
// Only the scene registers it; the gameplay systems merely enqueue.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	a := GetOrCreateAudio(e)
	switch a.Music {
	case components.MusicPlay:
		startMusic()
	case components.MusicStop:
		stopMusic()
	}
	a.Music = components.MusicNone

	for _, id := range a.PendingSFX {
		playSFX(id)
	}
	a.PendingSFX = a.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		audioMiss(path, err)
		return
	}

	player.SetVolume(cfg.Audio.SFXVol)
	player.Play()
}

// startMusic restarts the soundtrack from the beginning.
func startMusic() {
	stopMusic()

	player, err := globalAudioLoader.LoadMusic(cfg.Sound.Soundtrack)
	if err != nil {
		audioMiss(cfg.Sound.Soundtrack, err)
		return
	}

	player.SetVolume(cfg.Audio.MusicVol)
	player.Play()
	globalMusicPlayer = player
}

func stopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
}

// PlayMusic queues a (re)start of the looping soundtrack.
func PlayMusic(e *ecs.ECS) {
	GetOrCreateAudio(e).Music = components.MusicPlay
}

// StopMusic queues a stop of the soundtrack.
func StopMusic(e *ecs.ECS) {
	GetOrCreateAudio(e).Music = components.MusicStop
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
