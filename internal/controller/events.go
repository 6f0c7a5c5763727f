package controller

import (
	"github.com/ghscout/ghscout/internal/domain"
	"github.com/ghscout/ghscout/internal/pagination"
)

// Event is an input to Update: a user action or a finished request
type Event interface {
	isEvent()
}

// SubmitSearch starts a new search for Keyword at page 1
type SubmitSearch struct {
	Keyword string
}

// ChangePage requests the page named by Token, keeping the keyword
type ChangePage struct {
	Token pagination.Token
}

// PrevPage moves one page back
type PrevPage struct{}

// NextPage moves one page forward
type NextPage struct{}

// SearchResult reports the outcome of the search request with Generation
type SearchResult struct {
	Err        error
	Generation uint64
	Page       *domain.SearchPage
}

// ToggleRow expands or collapses the row with Identity
type ToggleRow struct {
	Identity domain.UserID
}

// RetryDetail refetches the repositories of an expanded row whose fetch failed
type RetryDetail struct {
	Identity domain.UserID
}

// DetailResult reports the outcome of a detail request for Identity.
// Generation is the search generation the row belonged to when it was issued.
type DetailResult struct {
	Err        error
	Generation uint64
	Identity   domain.UserID
	Repos      []domain.Repository
}

func (SubmitSearch) isEvent() {}
func (ChangePage) isEvent()   {}
func (PrevPage) isEvent()     {}
func (NextPage) isEvent()     {}
func (SearchResult) isEvent() {}
func (ToggleRow) isEvent()    {}
func (RetryDetail) isEvent()  {}
func (DetailResult) isEvent() {}

// Effect is a remote request Update asks the caller to run
type Effect interface {
	isEffect()
}

// SearchRequest asks for one page of users matching Keyword
type SearchRequest struct {
	Generation uint64
	Keyword    string
	Page       int
	PageSize   int
}

// DetailRequest asks for the repositories owned by Login
type DetailRequest struct {
	Generation uint64
	Identity   domain.UserID
	Login      string
}

func (SearchRequest) isEffect() {}
func (DetailRequest) isEffect() {}
