package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ghscout/ghscout/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Pagination  PaginationKeys
	Results     ResultKeys
	Search      SearchKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	resetTips()
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, customKeys),
		Pagination:  newPaginationKeys(defaults, customKeys),
		Results:     newResultKeys(defaults, customKeys),
		Search:      newSearchKeys(defaults, customKeys),
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Search.Focus.Binding,
		k.Search.Select.Binding,
		k.Pagination.Prev.Binding,
		k.Pagination.Next.Binding,
		k.Pagination.GoTo.Binding,
		k.Application.History.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// Binding returns the configured binding for a key definition name
func (k KeyMap) Binding(name string) (key.Binding, bool) {
	var b KeyWithTip
	switch name {
	case "clear_history":
		b = k.Application.ClearHistory
	case "command_palette":
		b = k.Application.CommandPalette
	case "force_quit":
		b = k.Application.ForceQuit
	case "help":
		b = k.Application.Help
	case "history":
		b = k.Application.History
	case "quit":
		b = k.Application.Quit
	case "focus_search":
		b = k.Search.Focus
	case "leave_search":
		b = k.Search.Leave
	case "select":
		b = k.Search.Select
	case "down":
		b = k.Results.Down
	case "open_profile":
		b = k.Results.OpenProfile
	case "retry":
		b = k.Results.Retry
	case "up":
		b = k.Results.Up
	case "goto_page":
		b = k.Pagination.GoTo
	case "next_page":
		b = k.Pagination.Next
	case "prev_page":
		b = k.Pagination.Prev
	default:
		return key.Binding{}, false
	}
	return b.Binding, true
}

// buildBinding creates a KeyWithTip from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) KeyWithTip {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	result := KeyWithTip{
		Binding: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), def.Help),
		),
	}

	if def.TipFormat != "" && len(keys) > 0 {
		result.Tip = newTip(def.TipFormat, keys[0])
	}

	return result
}
