package app

// Mode decides how key presses are interpreted.
type Mode int

const (
	// Normal is the default mode for moving between sections
	Normal Mode = iota
	// Command is the mode for typing a ':' command
	Command
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "Normal"
	case Command:
		return "Command"
	default:
		return "Unknown"
	}
}
