package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghscout/ghscout/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestRecordAndRecent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, repo.Record(ctx, domain.HistoryEntry{Keyword: "octocat", TotalCount: 2, SearchedAt: base}))
	require.NoError(t, repo.Record(ctx, domain.HistoryEntry{Keyword: "torvalds", TotalCount: 7, SearchedAt: base.Add(time.Minute)}))

	entries, err := repo.Recent(ctx, 10)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "torvalds", entries[0].Keyword)
	assert.Equal(t, 7, entries[0].TotalCount)
	assert.Equal(t, "octocat", entries[1].Keyword)
	assert.NotEmpty(t, entries[1].ID)
	assert.True(t, entries[1].SearchedAt.Equal(base))
}

func TestRecord_SameKeywordMovesToTop(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, repo.Record(ctx, domain.HistoryEntry{Keyword: "octocat", TotalCount: 2, SearchedAt: base}))
	require.NoError(t, repo.Record(ctx, domain.HistoryEntry{Keyword: "torvalds", TotalCount: 7, SearchedAt: base.Add(time.Minute)}))
	require.NoError(t, repo.Record(ctx, domain.HistoryEntry{Keyword: "octocat", TotalCount: 3, SearchedAt: base.Add(2 * time.Minute)}))

	entries, err := repo.Recent(ctx, 10)

	require.NoError(t, err)
	require.Len(t, entries, 2, "keywords are distinct")
	assert.Equal(t, "octocat", entries[0].Keyword)
	assert.Equal(t, 3, entries[0].TotalCount)
}

func TestRecord_RejectsEmptyKeyword(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.Record(context.Background(), domain.HistoryEntry{Keyword: "   "})

	assert.ErrorIs(t, err, domain.ErrEmptyKeyword)
}

func TestRecent_Limit(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Now().UTC()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Record(ctx, domain.HistoryEntry{
			Keyword:    fmt.Sprintf("kw-%d", i),
			SearchedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	entries, err := repo.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "kw-4", entries[0].Keyword)

	none, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestClear(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, domain.HistoryEntry{Keyword: "octocat"}))
	require.NoError(t, repo.Clear(ctx))

	entries, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// clearing an empty table is fine
	require.NoError(t, repo.Clear(ctx))
}

func TestReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "history.db")
	ctx := context.Background()

	repo, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Record(ctx, domain.HistoryEntry{Keyword: "octocat", TotalCount: 2}))
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "octocat", entries[0].Keyword)
}

func TestWithRetry(t *testing.T) {
	t.Run("retries busy errors", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			if calls < 3 {
				return sqlite3.Error{Code: sqlite3.ErrBusy}
			}
			return nil
		}, 3)

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns other errors immediately", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := withRetry(func() error {
			calls++
			return boom
		}, 3)

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up", func(t *testing.T) {
		err := withRetry(func() error {
			return sqlite3.Error{Code: sqlite3.ErrLocked}
		}, 2)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "after 2 retries")
	})
}
