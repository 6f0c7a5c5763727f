package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghscout/ghscout/internal/controller"
)

// ActionDispatcher maps key definitions to UI messages.
// This keeps the command palette decoupled from specific message types.
type ActionDispatcher struct {
	row *controller.Row
}

// NewActionDispatcher creates a new action dispatcher.
// row can be nil when no result row is selected.
func NewActionDispatcher(row *controller.Row) *ActionDispatcher {
	return &ActionDispatcher{row: row}
}

// Dispatch returns the tea.Msg for def, nil if the action cannot be dispatched
func (d *ActionDispatcher) Dispatch(def KeyDefinition) tea.Msg {
	if def.Msg == nil {
		return nil
	}

	if rowMsg, ok := def.Msg.(RowAwareMsg); ok {
		if d.row == nil {
			return nil
		}
		return rowMsg.WithRow(*d.row)
	}

	return def.Msg
}
