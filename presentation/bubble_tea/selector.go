package bubble_tea

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type selectorKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultSelectorKeyMap() selectorKeyMap {
	return selectorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k selectorKeyMap) help() string {
	bindings := []key.Binding{k.Up, k.Down, k.Select, k.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	optionStyle = lipgloss.NewStyle()
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// Option is one selectable line. Value is what Choice returns.
type Option struct {
	Value       string
	Description string
}

type Selector struct {
	placeholder string
	options     []Option
	cursor      int
	choice      string
	keys        selectorKeyMap
}

func NewSelector(placeholder string, options []Option) Selector {
	return Selector{
		placeholder: placeholder,
		options:     options,
		keys:        defaultSelectorKeyMap(),
	}
}

// Choice is empty when the user quit without selecting.
func (m Selector) Choice() string {
	return m.choice
}

func (m Selector) Init() tea.Cmd {
	return nil
}

func (m Selector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		if len(m.options) > 0 {
			m.choice = m.options[m.cursor].Value
		}
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Selector) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.placeholder))
	b.WriteString("\n\n")
	for i, option := range m.options {
		line := option.Value
		if option.Description != "" {
			line += "  " + option.Description
		}
		if m.cursor == i {
			b.WriteString(activeStyle.Render("> " + line))
		} else {
			b.WriteString(optionStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.keys.help()))
	b.WriteString("\n")
	return b.String()
}
