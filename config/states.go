package config

// GameStateID identifies the current screen of the game
type GameStateID int

const (
	StateMenu GameStateID = iota
	StateCountdown
	StatePlaying
	StateGameOver
)

func (s GameStateID) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateCountdown:
		return "countdown"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ButtonID identifies a clickable main menu button
type ButtonID int

const (
	ButtonNone ButtonID = iota
	ButtonStart
	ButtonMusic
	ButtonSFX
	ButtonExit
)

func (b ButtonID) String() string {
	switch b {
	case ButtonStart:
		return "start"
	case ButtonMusic:
		return "music"
	case ButtonSFX:
		return "sfx"
	case ButtonExit:
		return "exit"
	default:
		return "none"
	}
}
