package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ghscout/ghscout/internal/domain"
	"github.com/ghscout/ghscout/internal/logging"
	"github.com/ghscout/ghscout/internal/ports"
)

// defaultExpandConcurrency bounds parallel repository fetches in ExpandAll
const defaultExpandConcurrency = 4

// SearchService runs directory searches and keeps the search history
type SearchService struct {
	directory ports.UserDirectory
	history   ports.SearchHistoryRepository // nil when history is disabled
	now       func() time.Time
}

// NewSearchService creates a new SearchService.
// Pass a nil history to disable recording.
func NewSearchService(directory ports.UserDirectory, history ports.SearchHistoryRepository) *SearchService {
	return &SearchService{
		directory: directory,
		history:   history,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Search fetches one page of users matching keyword.
// A successful first page is recorded in the history; recording failures are
// logged and never turn a good search into an error. Directory errors are
// returned unwrapped so their message reaches the user unchanged.
func (s *SearchService) Search(ctx context.Context, keyword string, pageSize, page int) (*domain.SearchPage, error) {
	keyword = strings.TrimSpace(keyword)
	logging.Logger.Info("Searching users", "keyword", keyword, "page", page, "page_size", pageSize)

	result, err := s.directory.SearchUsers(ctx, keyword, pageSize, page)
	if err != nil {
		logging.Logger.Warn("User search failed", "keyword", keyword, "page", page, "error", err)
		return nil, err
	}

	logging.Logger.Debug("User search done",
		"keyword", keyword,
		"page", page,
		"total_count", result.TotalCount,
		"users", len(result.Users))

	if page == 1 && s.history != nil {
		entry := domain.HistoryEntry{
			Keyword:    keyword,
			SearchedAt: s.now(),
			TotalCount: result.TotalCount,
		}
		if err := s.history.Record(ctx, entry); err != nil {
			logging.Logger.Warn("Failed to record search history", "keyword", keyword, "error", err)
		}
	}

	return result, nil
}

// Repositories lists the repositories owned by login
func (s *SearchService) Repositories(ctx context.Context, login string) ([]domain.Repository, error) {
	logging.Logger.Info("Listing repositories", "login", login)

	repos, err := s.directory.ListRepositories(ctx, login)
	if err != nil {
		logging.Logger.Warn("Listing repositories failed", "login", login, "error", err)
		return nil, err
	}

	logging.Logger.Debug("Listed repositories", "login", login, "count", len(repos))
	return repos, nil
}

// HistoryEnabled reports whether searches are being recorded
func (s *SearchService) HistoryEnabled() bool {
	return s.history != nil
}

// History returns the most recent searches, newest first
func (s *SearchService) History(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if s.history == nil {
		return []domain.HistoryEntry{}, nil
	}

	entries, err := s.history.Recent(ctx, limit)
	if err != nil {
		logging.Logger.Error("Failed to read search history", "error", err)
		return nil, fmt.Errorf("failed to read search history: %w", err)
	}
	return entries, nil
}

// ClearHistory forgets every recorded search
func (s *SearchService) ClearHistory(ctx context.Context) error {
	if s.history == nil {
		return nil
	}

	if err := s.history.Clear(ctx); err != nil {
		logging.Logger.Error("Failed to clear search history", "error", err)
		return fmt.Errorf("failed to clear search history: %w", err)
	}

	logging.Logger.Info("Search history cleared")
	return nil
}

// ExpandAll fetches repositories for every user concurrently, at most
// concurrency at a time (a default when not positive). Results keep the order
// of users, and a failure for one user is stored on its entry only.
func (s *SearchService) ExpandAll(ctx context.Context, users []domain.User, concurrency int) []UserRepositories {
	if concurrency <= 0 {
		concurrency = defaultExpandConcurrency
	}

	results := make([]UserRepositories, len(users))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, user := range users {
		i, user := i, user
		results[i].User = user
		g.Go(func() error {
			repos, err := s.Repositories(gctx, user.Login)
			results[i].Repos = repos
			results[i].Err = err
			return nil
		})
	}

	// Per-user errors are kept in results; the group itself never fails
	_ = g.Wait()

	logging.Logger.Debug("Expanded users", "count", len(users), "concurrency", concurrency)
	return results
}
