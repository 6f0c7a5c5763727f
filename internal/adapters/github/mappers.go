package github

import "github.com/ghscout/ghscout/internal/domain"

func toDomainUser(u userItem) domain.User {
	return domain.User{
		AvatarURL:  u.AvatarURL,
		ID:         domain.UserID(u.ID),
		Login:      u.Login,
		ProfileURL: u.HTMLURL,
		Type:       u.Type,
	}
}

func toDomainSearchPage(r searchUsersResponse) *domain.SearchPage {
	users := make([]domain.User, 0, len(r.Items))
	for _, item := range r.Items {
		users = append(users, toDomainUser(item))
	}
	return &domain.SearchPage{
		Incomplete: r.IncompleteResults,
		TotalCount: r.TotalCount,
		Users:      users,
	}
}

func toDomainRepository(r repoItem) domain.Repository {
	repo := domain.Repository{
		Description: r.Description,
		Fork:        r.Fork,
		FullName:    r.FullName,
		HTMLURL:     r.HTMLURL,
		ID:          r.ID,
		Name:        r.Name,
		Stars:       r.StargazersCount,
	}
	if r.Language != nil {
		repo.Language = *r.Language
	}
	if repo.Stars < 0 {
		repo.Stars = 0
	}
	return repo
}

func toDomainRepositories(items []repoItem) []domain.Repository {
	repos := make([]domain.Repository, 0, len(items))
	for _, item := range items {
		repos = append(repos, toDomainRepository(item))
	}
	return repos
}
