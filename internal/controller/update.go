package controller

import (
	"strings"

	"github.com/ghscout/ghscout/internal/pagination"
)

// Update applies ev to s and returns the next state and the requests to issue.
// Results belonging to a superseded search are dropped, so only the most
// recently issued search can change the session or the roster.
func Update(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case SubmitSearch:
		return submitSearch(s, ev.Keyword)
	case ChangePage:
		if ev.Token.Ellipsis {
			return s, nil
		}
		return changePage(s, ev.Token.Page)
	case PrevPage:
		page, ok := pagination.Prev(s.CurrentPage, s.TotalPages())
		if !ok {
			return s, nil
		}
		return changePage(s, page)
	case NextPage:
		page, ok := pagination.Next(s.CurrentPage, s.TotalPages())
		if !ok {
			return s, nil
		}
		return changePage(s, page)
	case SearchResult:
		return searchResult(s, ev), nil
	case ToggleRow:
		return toggleRow(s, ev)
	case RetryDetail:
		return retryDetail(s, ev)
	case DetailResult:
		return detailResult(s, ev), nil
	}
	return s, nil
}

func submitSearch(s State, keyword string) (State, []Effect) {
	keyword = strings.TrimSpace(keyword)

	// An empty keyword resets to the idle display without asking for anything.
	// Bumping the generation also drops any search still in flight.
	if keyword == "" {
		s.Generation++
		s.Keyword = ""
		s.CurrentPage = 1
		s.TotalRows = 0
		s.Status = StatusIdle
		s.ErrorMessage = ""
		s.Submitted = false
		s.Roster = NewRoster(nil)
		return s, nil
	}

	s.Keyword = keyword
	s.Submitted = true
	s.TotalRows = 0
	return issueSearch(s, 1)
}

func changePage(s State, page int) (State, []Effect) {
	if s.Status == StatusFailed || !s.Submitted || page < 1 {
		return s, nil
	}
	// TotalRows is zero until the first page lands, so nothing is in range yet
	if page > s.TotalPages() {
		return s, nil
	}
	return issueSearch(s, page)
}

func issueSearch(s State, page int) (State, []Effect) {
	s.Generation++
	s.CurrentPage = page
	s.Status = StatusLoading
	s.ErrorMessage = ""
	s.Roster = NewRoster(nil)

	return s, []Effect{SearchRequest{
		Generation: s.Generation,
		Keyword:    s.Keyword,
		Page:       page,
		PageSize:   s.PageSize,
	}}
}

func searchResult(s State, ev SearchResult) State {
	if ev.Generation != s.Generation || s.Status != StatusLoading {
		return s
	}

	if ev.Err != nil || ev.Page == nil {
		s.Status = StatusFailed
		s.ErrorMessage = errorMessage(ev.Err)
		s.TotalRows = 0
		s.Roster = NewRoster(nil)
		return s
	}

	s.Status = StatusReady
	s.ErrorMessage = ""
	s.TotalRows = ev.Page.TotalCount
	s.Roster = NewRoster(ev.Page.Users)
	return s
}

func toggleRow(s State, ev ToggleRow) (State, []Effect) {
	row, ok := s.Roster.Get(ev.Identity)
	if !ok {
		return s, nil
	}

	row.Expanded = !row.Expanded

	var effects []Effect
	if row.Expanded && row.DetailStatus == DetailNotLoaded {
		row.DetailStatus = DetailLoading
		effects = append(effects, detailRequest(s, row))
	}

	s.Roster = s.Roster.replace(row)
	return s, effects
}

func retryDetail(s State, ev RetryDetail) (State, []Effect) {
	row, ok := s.Roster.Get(ev.Identity)
	if !ok || !row.Expanded || row.DetailStatus != DetailFailed {
		return s, nil
	}

	row.DetailStatus = DetailLoading
	row.DetailError = ""
	row.DetailItems = nil

	s.Roster = s.Roster.replace(row)
	return s, []Effect{detailRequest(s, row)}
}

func detailRequest(s State, row Row) DetailRequest {
	return DetailRequest{
		Generation: s.Generation,
		Identity:   row.Identity,
		Login:      row.Login,
	}
}

func detailResult(s State, ev DetailResult) State {
	if ev.Generation != s.Generation {
		return s
	}

	row, ok := s.Roster.Get(ev.Identity)
	if !ok || row.DetailStatus != DetailLoading {
		return s
	}

	if ev.Err != nil {
		row.DetailStatus = DetailFailed
		row.DetailItems = nil
		row.DetailError = errorMessage(ev.Err)
	} else {
		row.DetailStatus = DetailLoaded
		row.DetailItems = ev.Repos
		row.DetailError = ""
	}

	s.Roster = s.Roster.replace(row)
	return s
}

// errorMessage keeps the collaborator's message as-is, falling back to a
// generic text so a failed state always carries a message
func errorMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "unknown error"
}
