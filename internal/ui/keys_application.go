package ui

import (
	"github.com/ghscout/ghscout/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	ClearHistory   KeyWithTip
	CommandPalette KeyWithTip
	ForceQuit      KeyWithTip
	Help           KeyWithTip
	History        KeyWithTip
	Quit           KeyWithTip
}

func newApplicationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ApplicationKeys {
	return ApplicationKeys{
		ClearHistory:   buildBinding("clear_history", defaults, customKeys),
		CommandPalette: buildBinding("command_palette", defaults, customKeys),
		ForceQuit:      buildBinding("force_quit", defaults, customKeys),
		Help:           buildBinding("help", defaults, customKeys),
		History:        buildBinding("history", defaults, customKeys),
		Quit:           buildBinding("quit", defaults, customKeys),
	}
}
