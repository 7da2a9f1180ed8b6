package ui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionLabels
	actionPeak
	actionBorder
	actionPause
	actionRaiseFloor
	actionLowerFloor
	actionHelp
)

// floorStep is how far one up/down press moves the floor, in dB.
const floorStep = 5.0

type keyMap struct {
	Quit       key.Binding
	Labels     key.Binding
	Peak       key.Binding
	Border     key.Binding
	Pause      key.Binding
	RaiseFloor key.Binding
	LowerFloor key.Binding
	Help       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Labels:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "labels")),
		Peak:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "peak")),
		Border:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "border")),
		Pause:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		RaiseFloor: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "floor +5dB")),
		LowerFloor: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "floor -5dB")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.RaiseFloor, k.LowerFloor, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.RaiseFloor, k.LowerFloor},
		{k.Labels, k.Peak, k.Border},
		{k.Help, k.Quit},
	}
}

// action maps a key name, as bubbletea spells it, to what it does. The
// tcell backend translates its events to the same names.
func (k keyMap) action(name string) action {
	bindings := []struct {
		b key.Binding
		a action
	}{
		{k.Quit, actionQuit},
		{k.Labels, actionLabels},
		{k.Peak, actionPeak},
		{k.Border, actionBorder},
		{k.Pause, actionPause},
		{k.RaiseFloor, actionRaiseFloor},
		{k.LowerFloor, actionLowerFloor},
		{k.Help, actionHelp},
	}
	for _, kb := range bindings {
		if kb.b.Enabled() && slices.Contains(kb.b.Keys(), name) {
			return kb.a
		}
	}
	return actionNone
}
