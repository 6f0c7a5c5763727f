package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghscout/ghscout/internal/domain"
	"github.com/ghscout/ghscout/internal/pagination"
)

func users(ids ...int64) []domain.User {
	out := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.User{ID: domain.UserID(id), Login: "user" + domain.UserID(id).String()})
	}
	return out
}

func page(total int, ids ...int64) *domain.SearchPage {
	return &domain.SearchPage{TotalCount: total, Users: users(ids...)}
}

// ready runs a search for keyword and delivers a successful first page
func ready(t *testing.T, keyword string, total int, ids ...int64) State {
	t.Helper()
	s, effects := Update(New(10), SubmitSearch{Keyword: keyword})
	require.Len(t, effects, 1)
	req := effects[0].(SearchRequest)
	s, _ = Update(s, SearchResult{Generation: req.Generation, Page: page(total, ids...)})
	require.Equal(t, StatusReady, s.Status)
	return s
}

func TestSubmitSearch_EmptyKeywordIssuesNothing(t *testing.T) {
	s := ready(t, "octocat", 30, 1, 2)
	s.CurrentPage = 3

	for _, keyword := range []string{"", "   "} {
		next, effects := Update(s, SubmitSearch{Keyword: keyword})

		assert.Empty(t, effects, "no request for %q", keyword)
		assert.Equal(t, StatusIdle, next.Status)
		assert.Equal(t, 1, next.CurrentPage)
		assert.Equal(t, 0, next.TotalRows)
		assert.Equal(t, 0, next.Roster.Len())
		assert.False(t, next.Submitted)
		assert.Equal(t, BodyEmpty, Derive(next).Body)
	}
}

func TestSubmitSearch_IssuesFirstPage(t *testing.T) {
	s := New(10)
	s.CurrentPage = 4

	next, effects := Update(s, SubmitSearch{Keyword: " octocat "})

	require.Len(t, effects, 1)
	assert.Equal(t, SearchRequest{Generation: next.Generation, Keyword: "octocat", Page: 1, PageSize: 10}, effects[0])
	assert.Equal(t, StatusLoading, next.Status)
	assert.Equal(t, 1, next.CurrentPage)
	assert.Equal(t, "octocat", next.Keyword)
	assert.True(t, next.Submitted)
	assert.Equal(t, BodyLoading, Derive(next).Body)
}

func TestSearchResult_SuccessBuildsFreshRows(t *testing.T) {
	s := ready(t, "octocat", 2, 1, 2)

	assert.Equal(t, 2, s.TotalRows)
	require.Equal(t, 2, s.Roster.Len())
	for _, row := range s.Roster.Rows() {
		assert.False(t, row.Expanded)
		assert.Equal(t, DetailNotLoaded, row.DetailStatus)
		assert.Empty(t, row.DetailItems)
	}

	d := Derive(s)
	assert.Equal(t, BodyRows, d.Body)
	assert.Equal(t, pagination.Window{pagination.Page(1)}, d.Window)
	assert.False(t, d.PrevEnabled)
	assert.False(t, d.NextEnabled)
	assert.Equal(t, 1, d.From)
	assert.Equal(t, 2, d.To)
}

func TestSearchResult_FailureClearsRowsAndKeepsMessage(t *testing.T) {
	s, effects := Update(New(10), SubmitSearch{Keyword: "octocat"})
	gen := effects[0].(SearchRequest).Generation

	s, _ = Update(s, SearchResult{Generation: gen, Err: errors.New("API rate limit exceeded")})

	assert.Equal(t, StatusFailed, s.Status)
	assert.Equal(t, "API rate limit exceeded", s.ErrorMessage)
	assert.Equal(t, 0, s.TotalRows)
	assert.Equal(t, 0, s.Roster.Len())

	d := Derive(s)
	assert.Equal(t, BodyError, d.Body)
	assert.Equal(t, "API rate limit exceeded", d.ErrorMessage)
	assert.Empty(t, d.Window)
}

func TestSearchResult_FailureWithoutMessageStillHasOne(t *testing.T) {
	s, effects := Update(New(10), SubmitSearch{Keyword: "octocat"})
	s, _ = Update(s, SearchResult{Generation: effects[0].(SearchRequest).Generation, Err: errors.New("")})

	assert.Equal(t, StatusFailed, s.Status)
	assert.NotEmpty(t, s.ErrorMessage)
}

func TestChangePage_IgnoresEllipsisAndFailedSessions(t *testing.T) {
	s := ready(t, "octocat", 123, 1, 2)

	next, effects := Update(s, ChangePage{Token: pagination.Ellipsis()})
	assert.Empty(t, effects)
	assert.Equal(t, s, next)

	failed, fx := Update(s, ChangePage{Token: pagination.Page(2)})
	failed, _ = Update(failed, SearchResult{Generation: fx[0].(SearchRequest).Generation, Err: errors.New("boom")})
	require.Equal(t, StatusFailed, failed.Status)

	after, effects := Update(failed, ChangePage{Token: pagination.Page(3)})
	assert.Empty(t, effects)
	assert.Equal(t, failed, after)
}

func TestChangePage_OutOfRangeIsIgnored(t *testing.T) {
	s := ready(t, "octocat", 123, 1, 2) // 13 pages

	for _, p := range []int{0, -1, 14} {
		next, effects := Update(s, ChangePage{Token: pagination.Page(p)})
		assert.Empty(t, effects, "page %d", p)
		assert.Equal(t, s, next)
	}
}

func TestChangePage_BeforeAnySearchIsIgnored(t *testing.T) {
	s := New(10)
	next, effects := Update(s, ChangePage{Token: pagination.Page(2)})

	assert.Empty(t, effects)
	assert.Equal(t, s, next)
}

func TestChangePage_WhileFirstPageLoadsIsIgnored(t *testing.T) {
	s, effects := Update(New(10), SubmitSearch{Keyword: "octocat"})
	require.Len(t, effects, 1)

	next, effects := Update(s, ChangePage{Token: pagination.Page(999)})
	assert.Empty(t, effects)
	assert.Equal(t, s, next)
	assert.Equal(t, 1, next.CurrentPage)
	assert.Equal(t, StatusLoading, next.Status)
}

func TestChangePage_NoResultsIsIgnored(t *testing.T) {
	s := ready(t, "nobody", 0)

	next, effects := Update(s, ChangePage{Token: pagination.Page(1)})
	assert.Empty(t, effects)
	assert.Equal(t, s, next)
}

func TestChangePage_KeepsKeyword(t *testing.T) {
	s := ready(t, "octocat", 123, 1, 2)

	next, effects := Update(s, ChangePage{Token: pagination.Page(7)})

	require.Len(t, effects, 1)
	req := effects[0].(SearchRequest)
	assert.Equal(t, "octocat", req.Keyword)
	assert.Equal(t, 7, req.Page)
	assert.Equal(t, 10, req.PageSize)
	assert.Equal(t, 7, next.CurrentPage)
	assert.Equal(t, StatusLoading, next.Status)
	assert.Equal(t, 123, next.TotalRows, "total is kept so the selector stays stable while loading")

	next, _ = Update(next, SearchResult{Generation: req.Generation, Page: page(123, 61, 62)})
	d := Derive(next)
	assert.Equal(t, pagination.Window{
		pagination.Page(1), pagination.Ellipsis(), pagination.Page(6), pagination.Page(7),
		pagination.Page(8), pagination.Ellipsis(), pagination.Page(13),
	}, d.Window)
	assert.Equal(t, 61, d.From)
	assert.Equal(t, 62, d.To)
}

func TestChangePage_LastRequestWins(t *testing.T) {
	s := ready(t, "octocat", 123, 1, 2)

	s, fx2 := Update(s, ChangePage{Token: pagination.Page(2)})
	stale := fx2[0].(SearchRequest)
	s, fx3 := Update(s, ChangePage{Token: pagination.Page(3)})
	fresh := fx3[0].(SearchRequest)

	s, _ = Update(s, SearchResult{Generation: fresh.Generation, Page: page(123, 31, 32)})
	require.Equal(t, StatusReady, s.Status)

	s, _ = Update(s, SearchResult{Generation: stale.Generation, Page: page(123, 21, 22)})

	assert.Equal(t, 3, s.CurrentPage)
	_, ok := s.Roster.Get(31)
	assert.True(t, ok, "newer page rows must survive the stale response")
	_, ok = s.Roster.Get(21)
	assert.False(t, ok, "stale rows must not be shown")
}

func TestChangePage_StaleResponseWhileLoadingIsDropped(t *testing.T) {
	s := ready(t, "octocat", 123, 1, 2)

	s, fx2 := Update(s, ChangePage{Token: pagination.Page(2)})
	s, _ = Update(s, ChangePage{Token: pagination.Page(3)})

	s, _ = Update(s, SearchResult{Generation: fx2[0].(SearchRequest).Generation, Page: page(123, 21)})

	assert.Equal(t, StatusLoading, s.Status, "still waiting for page 3")
	assert.Equal(t, 0, s.Roster.Len())
}

func TestEmptySubmitDropsInFlightSearch(t *testing.T) {
	s, effects := Update(New(10), SubmitSearch{Keyword: "octocat"})
	s, _ = Update(s, SubmitSearch{Keyword: ""})

	s, _ = Update(s, SearchResult{Generation: effects[0].(SearchRequest).Generation, Page: page(2, 1, 2)})

	assert.Equal(t, StatusIdle, s.Status)
	assert.Equal(t, 0, s.Roster.Len())
}

func TestPrevNext(t *testing.T) {
	s := ready(t, "octocat", 25, 1, 2) // 3 pages

	next, effects := Update(s, PrevPage{})
	assert.Empty(t, effects, "prev is a no-op on the first page")
	assert.Equal(t, s, next)

	next, effects = Update(s, NextPage{})
	require.Len(t, effects, 1)
	assert.Equal(t, 2, effects[0].(SearchRequest).Page)
	next, _ = Update(next, SearchResult{Generation: next.Generation, Page: page(25, 11)})

	next, effects = Update(next, NextPage{})
	require.Len(t, effects, 1)
	next, _ = Update(next, SearchResult{Generation: next.Generation, Page: page(25, 21)})
	assert.Equal(t, 3, next.CurrentPage)

	last, effects := Update(next, NextPage{})
	assert.Empty(t, effects, "next is a no-op on the last page")
	assert.Equal(t, next, last)

	prev, effects := Update(next, PrevPage{})
	require.Len(t, effects, 1)
	assert.Equal(t, 2, prev.CurrentPage)
}

func TestPrevNext_NoPages(t *testing.T) {
	s := ready(t, "nobody", 0)

	for _, ev := range []Event{PrevPage{}, NextPage{}} {
		next, effects := Update(s, ev)
		assert.Empty(t, effects)
		assert.Equal(t, s, next)
	}

	d := Derive(s)
	assert.Equal(t, BodyEmpty, d.Body)
	assert.Empty(t, d.Window)
	assert.False(t, d.PrevEnabled)
	assert.False(t, d.NextEnabled)
	assert.Equal(t, 0, d.From)
}

func TestToggleRow_FetchesOnceAndKeepsDetail(t *testing.T) {
	s := ready(t, "octocat", 2, 1, 2)

	s, effects := Update(s, ToggleRow{Identity: 1})
	require.Len(t, effects, 1)
	req := effects[0].(DetailRequest)
	assert.Equal(t, DetailRequest{Generation: s.Generation, Identity: 1, Login: "user1"}, req)

	row, _ := s.Roster.Get(1)
	assert.True(t, row.Expanded)
	assert.Equal(t, DetailLoading, row.DetailStatus)

	repos := []domain.Repository{{ID: 10, Name: "hello-world", Stars: 3}}
	s, _ = Update(s, DetailResult{Generation: req.Generation, Identity: 1, Repos: repos})

	// collapse and expand again: cached, no new request
	s, effects = Update(s, ToggleRow{Identity: 1})
	assert.Empty(t, effects)
	row, _ = s.Roster.Get(1)
	assert.False(t, row.Expanded)
	assert.Equal(t, DetailLoaded, row.DetailStatus)

	s, effects = Update(s, ToggleRow{Identity: 1})
	assert.Empty(t, effects)
	row, _ = s.Roster.Get(1)
	assert.True(t, row.Expanded)
	assert.Equal(t, repos, row.DetailItems)
	assert.Equal(t, PanelItems, Derive(s).Rows[0].Panel)
}

func TestToggleRow_CollapseDoesNotCancelInFlightFetch(t *testing.T) {
	s := ready(t, "octocat", 2, 1, 2)

	s, effects := Update(s, ToggleRow{Identity: 1})
	req := effects[0].(DetailRequest)
	s, effects = Update(s, ToggleRow{Identity: 1})
	assert.Empty(t, effects)

	s, _ = Update(s, DetailResult{Generation: req.Generation, Identity: 1, Repos: []domain.Repository{{ID: 5}}})

	row, _ := s.Roster.Get(1)
	assert.False(t, row.Expanded)
	assert.Equal(t, DetailLoaded, row.DetailStatus)
	assert.Equal(t, PanelHidden, Derive(s).Rows[0].Panel)
}

func TestToggleRow_UnknownIdentity(t *testing.T) {
	s := ready(t, "octocat", 2, 1, 2)

	next, effects := Update(s, ToggleRow{Identity: 99})
	assert.Empty(t, effects)
	assert.Equal(t, s, next)
}

func TestDetailResult_OutOfOrderCompletion(t *testing.T) {
	s := ready(t, "octocat", 2, 1, 2)

	s, fxA := Update(s, ToggleRow{Identity: 1})
	s, fxB := Update(s, ToggleRow{Identity: 2})
	reqA := fxA[0].(DetailRequest)
	reqB := fxB[0].(DetailRequest)

	s, _ = Update(s, DetailResult{Generation: reqB.Generation, Identity: 2, Repos: []domain.Repository{{ID: 20}}})

	rowA, _ := s.Roster.Get(1)
	rowB, _ := s.Roster.Get(2)
	assert.Equal(t, DetailLoading, rowA.DetailStatus, "A untouched until its own response")
	assert.Equal(t, DetailLoaded, rowB.DetailStatus)

	s, _ = Update(s, DetailResult{Generation: reqA.Generation, Identity: 1, Repos: nil})

	rowA, _ = s.Roster.Get(1)
	assert.Equal(t, DetailLoaded, rowA.DetailStatus)
	assert.Equal(t, PanelEmpty, Derive(s).Rows[0].Panel)
}

func TestDetailResult_FailureOnlyAffectsItsRow(t *testing.T) {
	s := ready(t, "octocat", 2, 1, 2)

	s, fxA := Update(s, ToggleRow{Identity: 1})
	s, _ = Update(s, ToggleRow{Identity: 2})

	s, _ = Update(s, DetailResult{Generation: fxA[0].(DetailRequest).Generation, Identity: 1, Err: errors.New("Not Found")})

	rowA, _ := s.Roster.Get(1)
	assert.Equal(t, DetailFailed, rowA.DetailStatus)
	assert.Equal(t, "Not Found", rowA.DetailError)
	assert.Empty(t, rowA.DetailItems)

	rowB, _ := s.Roster.Get(2)
	assert.Equal(t, DetailLoading, rowB.DetailStatus)
	assert.Empty(t, rowB.DetailError)

	d := Derive(s)
	assert.Equal(t, PanelError, d.Rows[0].Panel)
	assert.Equal(t, PanelLoading, d.Rows[1].Panel)
}

func TestToggleRow_FailedDetailIsNotRetried(t *testing.T) {
	s := ready(t, "octocat", 1, 1)

	s, fx := Update(s, ToggleRow{Identity: 1})
	s, _ = Update(s, DetailResult{Generation: fx[0].(DetailRequest).Generation, Identity: 1, Err: errors.New("Not Found")})

	s, effects := Update(s, ToggleRow{Identity: 1})
	assert.Empty(t, effects)
	s, effects = Update(s, ToggleRow{Identity: 1})
	assert.Empty(t, effects)

	row, _ := s.Roster.Get(1)
	assert.Equal(t, DetailFailed, row.DetailStatus)
	assert.Equal(t, "Not Found", row.DetailError)
}

func TestRetryDetail(t *testing.T) {
	s := ready(t, "octocat", 1, 1)

	next, effects := Update(s, RetryDetail{Identity: 1})
	assert.Empty(t, effects, "nothing to retry on a collapsed, unloaded row")
	assert.Equal(t, s, next)

	s, fx := Update(s, ToggleRow{Identity: 1})
	s, _ = Update(s, DetailResult{Generation: fx[0].(DetailRequest).Generation, Identity: 1, Err: errors.New("Not Found")})

	s, effects = Update(s, RetryDetail{Identity: 1})
	require.Len(t, effects, 1)
	row, _ := s.Roster.Get(1)
	assert.Equal(t, DetailLoading, row.DetailStatus)
	assert.Empty(t, row.DetailError)

	s, _ = Update(s, DetailResult{Generation: effects[0].(DetailRequest).Generation, Identity: 1, Repos: []domain.Repository{{ID: 1}}})
	row, _ = s.Roster.Get(1)
	assert.Equal(t, DetailLoaded, row.DetailStatus)
}

func TestDetailResult_AfterRosterReplacedIsDropped(t *testing.T) {
	s := ready(t, "octocat", 123, 1, 2)

	s, fx := Update(s, ToggleRow{Identity: 1})
	detail := fx[0].(DetailRequest)

	s, search := Update(s, ChangePage{Token: pagination.Page(2)})
	// the next page happens to contain the same user again
	s, _ = Update(s, SearchResult{Generation: search[0].(SearchRequest).Generation, Page: page(123, 1, 3)})

	s, _ = Update(s, DetailResult{Generation: detail.Generation, Identity: 1, Repos: []domain.Repository{{ID: 1}}})

	row, _ := s.Roster.Get(1)
	assert.False(t, row.Expanded)
	assert.Equal(t, DetailNotLoaded, row.DetailStatus, "rows are never carried over across pages")
}

func TestUpdate_DoesNotMutatePreviousState(t *testing.T) {
	before := ready(t, "octocat", 2, 1, 2)

	after, _ := Update(before, ToggleRow{Identity: 1})

	row, _ := before.Roster.Get(1)
	assert.False(t, row.Expanded, "earlier state keeps its own rows")
	row, _ = after.Roster.Get(1)
	assert.True(t, row.Expanded)
}
