package app

// UIMode describes how the application interacts with the user.
type UIMode int

const (
	UnknownUIMode UIMode = iota
	TUI
	CLI
)

// UIModeFor picks the interactive selector when no mode argument was given.
func UIModeFor(positional []string) UIMode {
	if len(positional) == 0 {
		return TUI
	}
	return CLI
}
