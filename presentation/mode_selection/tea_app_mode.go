package mode_selection

import (
	"sensocket/domain/mode"
	"sensocket/presentation/bubble_tea"

	tea "github.com/charmbracelet/bubbletea"
)

// Prompt asks the user for a mode and returns its name, or "" when nothing was chosen.
type Prompt func() string

// TeaAppMode falls back to an interactive selector when no mode argument was given.
type TeaAppMode struct {
	arguments []string
	prompt    Prompt
}

func NewTeaAppMode(arguments []string) AppMode {
	return NewTeaAppModeWithPrompt(arguments, askForModeSelection)
}

func NewTeaAppModeWithPrompt(arguments []string, prompt Prompt) AppMode {
	return &TeaAppMode{
		arguments: arguments,
		prompt:    prompt,
	}
}

func (p *TeaAppMode) Mode() (mode.Mode, error) {
	if len(p.arguments) == 0 {
		selectedMode := p.prompt()
		if selectedMode == "" {
			return mode.Unknown, mode.NewInvalidModeProvided("empty string")
		}
		p.arguments = []string{selectedMode}
	}

	return NewArgsAppMode(p.arguments).Mode()
}

func modeOptions() []bubble_tea.Option {
	descriptions := map[mode.Mode]string{
		mode.TcpNio: "TCP, single event loop",
		mode.TcpBio: "TCP, blocking reader and writer",
		mode.UdpNio: "UDP, single event loop",
		mode.UdpBio: "UDP, blocking reader and writer",
	}
	options := make([]bubble_tea.Option, 0, len(mode.All()))
	for _, m := range mode.All() {
		options = append(options, bubble_tea.Option{Value: m.String(), Description: descriptions[m]})
	}
	return options
}

func askForModeSelection() string {
	selector := bubble_tea.NewSelector("Please select mode", modeOptions())
	selectorProgram, selectorProgramErr := tea.NewProgram(selector).Run()
	if selectorProgramErr != nil {
		return ""
	}

	selectorResult, ok := selectorProgram.(bubble_tea.Selector)
	if !ok {
		return ""
	}

	return selectorResult.Choice()
}
