package types

// Command is a discrete control request from an input source.
type Command uint8

const (
	CommandNone Command = iota
	CommandTogglePause
	CommandToggleWallMode
	// CommandRestart only has an effect once the game is over
	CommandRestart
)

func (c Command) String() string {
	switch c {
	case CommandTogglePause:
		return "toggle-pause"
	case CommandToggleWallMode:
		return "toggle-wall-mode"
	case CommandRestart:
		return "restart"
	default:
		return "none"
	}
}

// Input is a single event produced by an input source. Exactly one of
// Direction or Command is set.
type Input struct {
	Direction Direction
	Command   Command
}

// DirectionInput returns an input carrying a direction intent.
func DirectionInput(d Direction) Input {
	return Input{Direction: d}
}

// CommandInput returns an input carrying a command.
func CommandInput(c Command) Input {
	return Input{Command: c}
}
