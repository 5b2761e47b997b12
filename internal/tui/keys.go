package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Preview   key.Binding
	Edit      key.Binding
	Add       key.Binding
	Remove    key.Binding
	Threshold key.Binding
	Save      key.Binding
	Reload    key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Preview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle preview"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit next condition"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add condition"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove condition"),
		),
		Threshold: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "set threshold"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Preview, k.Edit, k.Add, k.Remove, k.Threshold, k.Save, k.Reload, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Preview, k.Save, k.Reload, k.Quit},
		{k.Edit, k.Add, k.Remove, k.Threshold},
	}
}

// inputKeys are active while the threshold field has focus
type inputKeys struct {
	Commit key.Binding
	Cancel key.Binding
}

func defaultInputKeys() inputKeys {
	return inputKeys{
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "commit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

func (k inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Cancel}
}

func (k inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
