package mode_selection

import (
	"sensocket/domain/mode"
)

// ArgsAppMode reads the mode from the first positional argument.
type ArgsAppMode struct {
	arguments []string
}

func NewArgsAppMode(arguments []string) AppMode {
	return &ArgsAppMode{
		arguments: arguments,
	}
}

func (a *ArgsAppMode) Mode() (mode.Mode, error) {
	if len(a.arguments) == 0 {
		return mode.Unknown, mode.NewNoModeProvided()
	}

	return mode.Parse(a.arguments[0])
}
