package services

import "github.com/ghscout/ghscout/internal/domain"

// UserRepositories is a user with the outcome of fetching their repositories
type UserRepositories struct {
	Err   error
	Repos []domain.Repository
	User  domain.User
}
