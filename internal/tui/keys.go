package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit      key.Binding
	copy      key.Binding
	buildInfo key.Binding
	esc       key.Binding
}

var keys = keyMap{
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy config")),
	buildInfo: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "build info")),
	esc:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

func helpLine(bindings ...key.Binding) string {
	var line string
	for i, b := range bindings {
		if i > 0 {
			line += " • "
		}
		line += b.Help().Key + ": " + b.Help().Desc
	}
	return line
}
