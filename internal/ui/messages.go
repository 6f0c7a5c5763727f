package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghscout/ghscout/internal/controller"
	"github.com/ghscout/ghscout/internal/domain"
)

// RowAwareMsg is implemented by messages that act on the selected result row.
// Messages without row requirements don't need to implement this.
type RowAwareMsg interface {
	WithRow(row controller.Row) tea.Msg
}

// Action messages. Key presses and command palette picks both end up as one of
// these, handled by Model.updateBrowse.

// ClearHistoryMsg requests forgetting every recorded search
type ClearHistoryMsg struct{}

// FocusSearchMsg moves keyboard focus to the search box
type FocusSearchMsg struct{}

// NextPageMsg requests the next result page
type NextPageMsg struct{}

// OpenProfileMsg requests opening a user's profile page in the browser
type OpenProfileMsg struct {
	Login string
	URL   string
}

func (m OpenProfileMsg) WithRow(row controller.Row) tea.Msg {
	return OpenProfileMsg{Login: row.Login, URL: row.ProfileURL}
}

// PrevPageMsg requests the previous result page
type PrevPageMsg struct{}

// QuitMsg requests quitting the application
type QuitMsg struct{}

// RetryDetailMsg refetches repositories for a row whose fetch failed
type RetryDetailMsg struct {
	Identity domain.UserID
}

func (m RetryDetailMsg) WithRow(row controller.Row) tea.Msg {
	return RetryDetailMsg{Identity: row.Identity}
}

// ShowGoToPageMsg requests the go-to-page dialog
type ShowGoToPageMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// ShowHistoryMsg requests the recent searches picker
type ShowHistoryMsg struct{}

// Internal messages

// clearErrorMsg is sent after the error clear delay to trigger error clearing
type clearErrorMsg struct{}

type hideTipMsg struct{} // Time to hide the current tip
type showTipMsg struct{} // Time to show a new random tip

// historyLoadedMsg carries recent searches for the history picker
type historyLoadedMsg struct {
	Entries []domain.HistoryEntry
	Err     error
}

// historyClearedMsg reports the outcome of clearing the history
type historyClearedMsg struct {
	Err error
}

// profileOpenedMsg reports the outcome of launching the browser
type profileOpenedMsg struct {
	Err   error
	Login string
}
