package ui

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults        []string
	Help            string
	IsPaletteAction bool    // If true, this key appears in command palette
	Msg             tea.Msg // Prototype message for dispatch (nil if not dispatchable)
	Name            string
	TipFormat       string
}

// AllKeyDefinitions contains all configurable key bindings.
// If IsPaletteAction is true, the key appears in the command palette.
// If Msg is set, the action can be dispatched via the command palette.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "clear_history", Defaults: []string{"X"}, Help: "clear search history", IsPaletteAction: true, Msg: ClearHistoryMsg{}},
	{Name: "command_palette", Defaults: []string{"P"}, Help: "command palette", TipFormat: "press %s to open the command palette"},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts", IsPaletteAction: true, Msg: ShowHelpMsg{}, TipFormat: "press %s to see all shortcuts"},
	{Name: "history", Defaults: []string{"H"}, Help: "pick a recent search", IsPaletteAction: true, Msg: ShowHistoryMsg{}, TipFormat: "press %s to rerun a recent search"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application", IsPaletteAction: true, Msg: QuitMsg{}},

	// Search keys
	{Name: "focus_search", Defaults: []string{"/"}, Help: "focus the search box", IsPaletteAction: true, Msg: FocusSearchMsg{}, TipFormat: "press %s to start a new search"},
	{Name: "leave_search", Defaults: []string{"esc", "tab"}, Help: "leave the search box"},
	{Name: "select", Defaults: []string{"enter"}, Help: "search / expand or collapse user", TipFormat: "press %s on a user to list their repositories"},

	// Result keys
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next user"},
	{Name: "open_profile", Defaults: []string{"o"}, Help: "open profile in browser", IsPaletteAction: true, Msg: OpenProfileMsg{}, TipFormat: "press %s to open the selected profile in your browser"},
	{Name: "retry", Defaults: []string{"r"}, Help: "retry loading repositories", IsPaletteAction: true, Msg: RetryDetailMsg{}, TipFormat: "press %s to retry repositories that failed to load"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous user"},

	// Pagination keys
	{Name: "goto_page", Defaults: []string{"g"}, Help: "go to page", IsPaletteAction: true, Msg: ShowGoToPageMsg{}, TipFormat: "press %s to jump to a page number"},
	{Name: "next_page", Defaults: []string{"right", "l"}, Help: "next page", IsPaletteAction: true, Msg: NextPageMsg{}},
	{Name: "prev_page", Defaults: []string{"left", "h"}, Help: "previous page", IsPaletteAction: true, Msg: PrevPageMsg{}, TipFormat: "press %s to go back a page"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name, nil if not found
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}

// GetPaletteActions returns key definitions that should appear in the command palette.
func GetPaletteActions() []KeyDefinition {
	var actions []KeyDefinition
	for _, def := range AllKeyDefinitions {
		if def.IsPaletteAction {
			actions = append(actions, def)
		}
	}
	return actions
}
