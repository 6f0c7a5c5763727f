package ports

import (
	"context"

	"github.com/ghscout/ghscout/internal/domain"
)

// UserSearcher finds users by keyword, one page at a time
type UserSearcher interface {
	SearchUsers(ctx context.Context, keyword string, pageSize, page int) (*domain.SearchPage, error)
}

// RepositoryLister lists the public repositories owned by a user
type RepositoryLister interface {
	ListRepositories(ctx context.Context, login string) ([]domain.Repository, error)
}

// UserDirectory is the remote user directory (composite interface)
type UserDirectory interface {
	UserSearcher
	RepositoryLister
}
