package ui

import (
	"github.com/ghscout/ghscout/internal/config"
)

// SearchKeys defines key bindings for the search box
type SearchKeys struct {
	Focus  KeyWithTip
	Leave  KeyWithTip
	Select KeyWithTip
}

// ResultKeys defines key bindings for moving through and acting on result rows
type ResultKeys struct {
	Down        KeyWithTip
	OpenProfile KeyWithTip
	Retry       KeyWithTip
	Up          KeyWithTip
}

// PaginationKeys defines key bindings for moving between result pages
type PaginationKeys struct {
	GoTo KeyWithTip
	Next KeyWithTip
	Prev KeyWithTip
}

func newSearchKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) SearchKeys {
	return SearchKeys{
		Focus:  buildBinding("focus_search", defaults, customKeys),
		Leave:  buildBinding("leave_search", defaults, customKeys),
		Select: buildBinding("select", defaults, customKeys),
	}
}

func newResultKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ResultKeys {
	return ResultKeys{
		Down:        buildBinding("down", defaults, customKeys),
		OpenProfile: buildBinding("open_profile", defaults, customKeys),
		Retry:       buildBinding("retry", defaults, customKeys),
		Up:          buildBinding("up", defaults, customKeys),
	}
}

func newPaginationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) PaginationKeys {
	return PaginationKeys{
		GoTo: buildBinding("goto_page", defaults, customKeys),
		Next: buildBinding("next_page", defaults, customKeys),
		Prev: buildBinding("prev_page", defaults, customKeys),
	}
}
