package cmd

import (
	adaptergithub "github.com/ghscout/ghscout/internal/adapters/github"
	adapterstorage "github.com/ghscout/ghscout/internal/adapters/storage"
	"github.com/ghscout/ghscout/internal/config"
	"github.com/ghscout/ghscout/internal/logging"
	"github.com/ghscout/ghscout/internal/ports"
	"github.com/ghscout/ghscout/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	SearchService *services.SearchService

	// Internal - for cleanup only
	historyRepo ports.SearchHistoryRepository
}

// NewContainer creates a new Container with all dependencies wired.
// The history database is only opened when history is enabled.
func NewContainer(settings *config.Settings) (*Container, error) {
	directory := adaptergithub.NewClient(adaptergithub.Config{
		BaseURL: settings.ResolveAPIBaseURL(),
		Timeout: settings.ResolveRequestTimeout(),
		Token:   settings.ResolveToken(),
	})

	var historyRepo ports.SearchHistoryRepository
	if settings.HistoryOn() {
		repo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
		if err != nil {
			return nil, err
		}
		historyRepo = repo
	} else {
		logging.Logger.Info("Search history disabled")
	}

	return &Container{
		SearchService: services.NewSearchService(directory, historyRepo),
		historyRepo:   historyRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.historyRepo != nil {
		return c.historyRepo.Close()
	}
	return nil
}
