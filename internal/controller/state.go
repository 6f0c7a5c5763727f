// Package controller holds the search/list state machine behind the result browser.
//
// Update is a pure transition function: it takes the current State and one Event
// and returns the next State plus the Effects (remote requests) that should run.
// Effects are executed elsewhere and report back through SearchResult and
// DetailResult events, so nothing in this package performs I/O.
package controller

import (
	"github.com/ghscout/ghscout/internal/domain"
	"github.com/ghscout/ghscout/internal/pagination"
)

// DefaultPageSize is the number of users requested per page
const DefaultPageSize = 10

// Status is the lifecycle of the search session
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// DetailStatus is the lifecycle of a row's lazily loaded repositories
type DetailStatus int

const (
	DetailNotLoaded DetailStatus = iota
	DetailLoading
	DetailLoaded
	DetailFailed
)

func (s DetailStatus) String() string {
	switch s {
	case DetailNotLoaded:
		return "not_loaded"
	case DetailLoading:
		return "loading"
	case DetailLoaded:
		return "loaded"
	case DetailFailed:
		return "failed"
	}
	return "unknown"
}

// Row is one matched user plus its local expand/detail state
type Row struct {
	AvatarURL    string
	DetailError  string
	DetailItems  []domain.Repository
	DetailStatus DetailStatus
	DisplayName  string
	Expanded     bool
	Identity     domain.UserID
	Login        string
	ProfileURL   string
}

// newRow builds a collapsed row with nothing loaded
func newRow(u domain.User) Row {
	return Row{
		AvatarURL:    u.AvatarURL,
		DetailStatus: DetailNotLoaded,
		DisplayName:  u.DisplayName(),
		Identity:     u.ID,
		Login:        u.Login,
		ProfileURL:   u.ProfileURL,
	}
}

// State is the search session: keyword, page, status and the current roster
type State struct {
	CurrentPage  int
	ErrorMessage string
	Generation   uint64 // id of the most recently issued search request
	Keyword      string
	PageSize     int
	Roster       Roster
	Status       Status
	Submitted    bool // a non-empty keyword is being shown
	TotalRows    int
}

// New returns an idle session using pageSize (DefaultPageSize when not positive)
func New(pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return State{
		CurrentPage: 1,
		PageSize:    pageSize,
		Roster:      NewRoster(nil),
		Status:      StatusIdle,
	}
}

// TotalPages is the number of pages implied by TotalRows and PageSize
func (s State) TotalPages() int {
	return pagination.TotalPages(s.TotalRows, s.PageSize)
}

// Window is the page selector for the current page
func (s State) Window() pagination.Window {
	return pagination.ComputeWindow(s.CurrentPage, s.TotalPages())
}
