package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/preflop-trainer/internal/preflop"
)

type keyMap struct {
	Fold  key.Binding
	Call  key.Binding
	Raise key.Binding
	AllIn key.Binding
	Next  key.Binding
	Range key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Fold:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "fold")),
		Call:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "call")),
		Raise: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "raise")),
		AllIn: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "all-in")),
		Next:  key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "next hand")),
		Range: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "range")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fold, k.Call, k.Raise, k.AllIn, k.Next, k.Range, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fold, k.Call, k.Raise, k.AllIn},
		{k.Next, k.Range, k.Help, k.Quit},
	}
}

// actionFor maps an answer binding to its action
func (k keyMap) actionFor(msg tea.KeyMsg) (preflop.Action, bool) {
	switch {
	case key.Matches(msg, k.Fold):
		return preflop.Fold, true
	case key.Matches(msg, k.Call):
		return preflop.Call, true
	case key.Matches(msg, k.Raise):
		return preflop.Raise, true
	case key.Matches(msg, k.AllIn):
		return preflop.AllIn, true
	}
	return 0, false
}
