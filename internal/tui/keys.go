package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type quizKeyMap struct {
	Up, Down, Choose, Next, Restart, Quit key.Binding
}

func newQuizKeyMap() quizKeyMap {
	return quizKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Choose:  key.NewBinding(key.WithKeys("enter", " ", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("enter/1-9", "answer")),
		Next:    key.NewBinding(key.WithKeys("n", "enter"), key.WithHelp("n", "next")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp and FullHelp implement help.KeyMap.
func (k quizKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Next, k.Restart, k.Quit}
}

func (k quizKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type checklistKeyMap struct {
	Toggle, Expand, Reset, Quit key.Binding
}

func newChecklistKeyMap() checklistKeyMap {
	return checklistKeyMap{
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "check")),
		Expand: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "fold section")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k checklistKeyMap) bindings() []key.Binding {
	return []key.Binding{k.Toggle, k.Expand, k.Reset}
}
