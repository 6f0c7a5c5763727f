package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ghscout/ghscout/internal/config"
	"github.com/ghscout/ghscout/internal/domain"
	"github.com/ghscout/ghscout/internal/logging"
	"github.com/ghscout/ghscout/internal/server"
	"github.com/ghscout/ghscout/internal/ui"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file (default ~/.ssh/authorized_keys)" type:"path"`
	Host           string `help:"Host to bind to (default from settings, then localhost)"`
	PageSize       int    `help:"Users per page" default:"10" env:"GHSCOUT_PAGE_SIZE"`
	Port           string `help:"Port to listen on (default from settings, then 23234)"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	host, port := s.address(cli.settings)

	pageSize := resolvePageSize(s.PageSize, cli.settings)
	if err := domain.ValidatePageSize(pageSize); err != nil {
		return fmt.Errorf("%w: %d", err, pageSize)
	}

	keysConfig, err := cli.keyBindings()
	if err != nil {
		return err
	}

	authorizedKeys := s.AuthorizedKeys
	if authorizedKeys == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		authorizedKeys = filepath.Join(homeDir, ".ssh", "authorized_keys")
	}

	errorClearDelay := config.DefaultErrorClearDelay
	tipsEnabled := true
	if cli.settings != nil {
		if cli.settings.ErrorClearDelay != nil {
			errorClearDelay = *cli.settings.ErrorClearDelay
		}
		if cli.settings.TipsEnabled != nil {
			tipsEnabled = *cli.settings.TipsEnabled
		}
	}

	logging.Logger.Info("Starting ghscout SSH server",
		"host", host,
		"port", port,
		"authorized_keys", authorizedKeys)

	// Remote sessions get no URL opener: a browser would start on the server
	newModel := func() *ui.Model {
		tips := ui.DefaultTipsConfig
		tips.Enabled = tipsEnabled
		return ui.NewModel(ui.ModelOptions{
			Backend:         cli.Container.SearchService,
			ErrorClearDelay: time.Duration(errorClearDelay) * time.Second,
			HistoryLimit:    cli.settings.ResolveHistoryLimit(),
			Keys:            keysConfig,
			PageSize:        pageSize,
			RequestTimeout:  cli.settings.ResolveRequestTimeout(),
			Tips:            tips,
		})
	}

	srv, err := server.NewServer(server.Options{
		AuthorizedKeysPath: authorizedKeys,
		HostKeyDir:         config.GetSSHDir(),
		Host:               host,
		NewModel:           newModel,
		Port:               port,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Blocks until shutdown
	return srv.Start()
}

// address resolves host and port: flags > settings.json > defaults
func (s *ServeCmd) address(settings *config.Settings) (string, string) {
	host, port := s.Host, s.Port
	if host == "" && settings != nil {
		host = settings.ServeHost
	}
	if host == "" {
		host = config.DefaultServeHost
	}
	if port == "" && settings != nil {
		port = settings.ServePort
	}
	if port == "" {
		port = config.DefaultServePort
	}
	return host, port
}
