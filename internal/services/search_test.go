package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ghscout/ghscout/internal/domain"
	portsmocks "github.com/ghscout/ghscout/internal/ports/mocks"
)

var fixedNow = time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

func newTestService(t *testing.T) (*SearchService, *portsmocks.MockUserDirectory, *portsmocks.MockSearchHistoryRepository) {
	directory := portsmocks.NewMockUserDirectory(t)
	history := portsmocks.NewMockSearchHistoryRepository(t)
	service := NewSearchService(directory, history)
	service.now = func() time.Time { return fixedNow }
	return service, directory, history
}

func TestSearch_FirstPageRecordsHistory(t *testing.T) {
	service, directory, history := newTestService(t)
	page := &domain.SearchPage{TotalCount: 2, Users: []domain.User{{ID: 1, Login: "octocat"}}}

	directory.EXPECT().SearchUsers(mock.Anything, "octocat", 10, 1).Return(page, nil)
	history.EXPECT().Record(mock.Anything, domain.HistoryEntry{
		Keyword:    "octocat",
		SearchedAt: fixedNow,
		TotalCount: 2,
	}).Return(nil)

	result, err := service.Search(context.Background(), "  octocat ", 10, 1)

	require.NoError(t, err)
	assert.Equal(t, page, result)
}

func TestSearch_LaterPagesDoNotRecord(t *testing.T) {
	service, directory, _ := newTestService(t)
	page := &domain.SearchPage{TotalCount: 123}

	directory.EXPECT().SearchUsers(mock.Anything, "octocat", 10, 7).Return(page, nil)

	result, err := service.Search(context.Background(), "octocat", 10, 7)

	require.NoError(t, err)
	assert.Equal(t, 123, result.TotalCount)
}

func TestSearch_HistoryFailureIsNotFatal(t *testing.T) {
	service, directory, history := newTestService(t)

	directory.EXPECT().SearchUsers(mock.Anything, "octocat", 10, 1).Return(&domain.SearchPage{TotalCount: 1}, nil)
	history.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("database is locked"))

	result, err := service.Search(context.Background(), "octocat", 10, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalCount)
}

func TestSearch_ErrorIsReturnedUnchanged(t *testing.T) {
	service, directory, _ := newTestService(t)
	apiErr := errors.New("API rate limit exceeded")

	directory.EXPECT().SearchUsers(mock.Anything, "octocat", 10, 1).Return(nil, apiErr)

	result, err := service.Search(context.Background(), "octocat", 10, 1)

	assert.Nil(t, result)
	assert.Same(t, apiErr, err)
	assert.Equal(t, "API rate limit exceeded", err.Error())
}

func TestSearch_WithoutHistory(t *testing.T) {
	directory := portsmocks.NewMockUserDirectory(t)
	service := NewSearchService(directory, nil)

	directory.EXPECT().SearchUsers(mock.Anything, "octocat", 10, 1).Return(&domain.SearchPage{}, nil)

	_, err := service.Search(context.Background(), "octocat", 10, 1)
	require.NoError(t, err)

	assert.False(t, service.HistoryEnabled())
	entries, err := service.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, service.ClearHistory(context.Background()))
}

func TestRepositories(t *testing.T) {
	service, directory, _ := newTestService(t)
	repos := []domain.Repository{{ID: 1, Name: "Hello-World", Stars: 80}}

	directory.EXPECT().ListRepositories(mock.Anything, "octocat").Return(repos, nil)
	directory.EXPECT().ListRepositories(mock.Anything, "ghost").Return(nil, errors.New("Not Found"))

	got, err := service.Repositories(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, repos, got)

	_, err = service.Repositories(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, "Not Found", err.Error())
}

func TestHistory(t *testing.T) {
	service, _, history := newTestService(t)
	entries := []domain.HistoryEntry{{Keyword: "octocat"}, {Keyword: "torvalds"}}

	history.EXPECT().Recent(mock.Anything, 5).Return(entries, nil).Once()
	history.EXPECT().Recent(mock.Anything, 1).Return(nil, errors.New("disk I/O error")).Once()

	got, err := service.History(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	_, err = service.History(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read search history")
}

func TestClearHistory(t *testing.T) {
	service, _, history := newTestService(t)

	history.EXPECT().Clear(mock.Anything).Return(nil).Once()
	require.NoError(t, service.ClearHistory(context.Background()))

	history.EXPECT().Clear(mock.Anything).Return(errors.New("readonly database")).Once()
	err := service.ClearHistory(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "readonly database")
}

func TestExpandAll_KeepsOrderAndPerUserErrors(t *testing.T) {
	service, directory, _ := newTestService(t)
	users := []domain.User{{ID: 1, Login: "a"}, {ID: 2, Login: "b"}, {ID: 3, Login: "c"}}

	directory.EXPECT().ListRepositories(mock.Anything, "a").Return([]domain.Repository{{ID: 10}}, nil)
	directory.EXPECT().ListRepositories(mock.Anything, "b").Return(nil, errors.New("Not Found"))
	directory.EXPECT().ListRepositories(mock.Anything, "c").Return([]domain.Repository{}, nil)

	results := service.ExpandAll(context.Background(), users, 2)

	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].User.Login)
	assert.NoError(t, results[0].Err)
	assert.Len(t, results[0].Repos, 1)

	assert.Equal(t, "b", results[1].User.Login)
	require.Error(t, results[1].Err)
	assert.Equal(t, "Not Found", results[1].Err.Error())
	assert.Nil(t, results[1].Repos)

	assert.Equal(t, "c", results[2].User.Login)
	assert.NoError(t, results[2].Err)
	assert.Empty(t, results[2].Repos)
}

func TestExpandAll_RespectsConcurrency(t *testing.T) {
	service, directory, _ := newTestService(t)
	users := make([]domain.User, 8)
	for i := range users {
		users[i] = domain.User{ID: domain.UserID(i + 1), Login: "user" + domain.UserID(i+1).String()}
	}

	var inFlight, peak atomic.Int32
	directory.EXPECT().ListRepositories(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, login string) ([]domain.Repository, error) {
			n := inFlight.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
			return nil, nil
		})

	results := service.ExpandAll(context.Background(), users, 3)

	assert.Len(t, results, 8)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestExpandAll_Empty(t *testing.T) {
	service, _, _ := newTestService(t)

	assert.Empty(t, service.ExpandAll(context.Background(), nil, 0))
}
