package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghscout/ghscout/internal/adapters/browser"
	"github.com/ghscout/ghscout/internal/config"
	"github.com/ghscout/ghscout/internal/domain"
	"github.com/ghscout/ghscout/internal/logging"
	"github.com/ghscout/ghscout/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the ghscout TUI (default)" default:"withargs"`
	Search   SearchCmd   `cmd:"search" help:"Print one page of matching users"`
	Repos    ReposCmd    `cmd:"repos" help:"Print a user's public repositories"`
	History  HistoryCmd  `cmd:"history" help:"Manage the search history (list, clear)"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the TUI over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (show, meta, keys)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// CLI flags > env vars > settings.json > defaults.
	// A setting only applies while the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("GHSCOUT_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("GHSCOUT_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	// The container must come after logging: gorm logs through logging.Logger
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI. Later calls are no-ops.
func (c *CLI) Close() error {
	if c.Container == nil {
		return nil
	}
	err := c.Container.Close()
	c.Container = nil
	return err
}

// keyBindings returns the validated custom key bindings from settings.json
func (c *CLI) keyBindings() (config.KeyBindingsConfig, error) {
	if c.settings == nil || c.settings.Keys == nil {
		return nil, nil
	}
	if err := c.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	logging.Logger.Debug("Custom key bindings loaded and validated")
	return c.settings.Keys, nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	Keyword []string `arg:"" optional:"" help:"Search for this keyword on start"`

	Browser                    string `help:"Browser used to open profiles (overrides $GHSCOUT_BROWSER, $BROWSER)"`
	Dev                        bool   `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay            int    `help:"Seconds before error messages auto-clear" default:"10"`
	PageSize                   int    `help:"Users per page" default:"10" env:"GHSCOUT_PAGE_SIZE"`
	TipsDisplayDurationSeconds int    `help:"Seconds to display each tip" default:"8"`
	TipsEnabled                bool   `help:"Enable rotating tips display" default:"true" negatable:""`
	TipsShowIntervalSeconds    int    `help:"Seconds between tips" default:"30"`
}

// applySettings fills flags still at their defaults from settings.json
func (r *RunCmd) applySettings(settings *config.Settings) {
	if settings == nil {
		return
	}

	if r.ErrorClearDelay == config.DefaultErrorClearDelay && settings.ErrorClearDelay != nil {
		r.ErrorClearDelay = *settings.ErrorClearDelay
	}

	r.PageSize = resolvePageSize(r.PageSize, settings)

	if r.TipsEnabled && settings.TipsEnabled != nil && !*settings.TipsEnabled {
		r.TipsEnabled = false
	}
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	r.applySettings(cli.settings)
	if err := domain.ValidatePageSize(r.PageSize); err != nil {
		return fmt.Errorf("%w: %d", err, r.PageSize)
	}

	keysConfig, err := cli.keyBindings()
	if err != nil {
		return err
	}

	keyword := strings.TrimSpace(strings.Join(r.Keyword, " "))
	logging.Logger.Info("Starting ghscout TUI", "keyword", keyword, "page_size", r.PageSize)

	model := ui.NewModel(ui.ModelOptions{
		Backend:         cli.Container.SearchService,
		DevMode:         r.Dev,
		ErrorClearDelay: time.Duration(r.ErrorClearDelay) * time.Second,
		HistoryLimit:    cli.settings.ResolveHistoryLimit(),
		InitialKeyword:  keyword,
		Keys:            keysConfig,
		Opener:          browser.NewOpener(r.Browser),
		PageSize:        r.PageSize,
		RequestTimeout:  cli.settings.ResolveRequestTimeout(),
		Tips: ui.TipsConfig{
			DisplayDurationSeconds: r.TipsDisplayDurationSeconds,
			Enabled:                r.TipsEnabled,
			ShowIntervalSeconds:    r.TipsShowIntervalSeconds,
		},
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

// resolvePageSize applies settings.json page_size when the flag is at its
// default and GHSCOUT_PAGE_SIZE is unset
func resolvePageSize(flag int, settings *config.Settings) int {
	if flag != config.DefaultPageSize || settings == nil || settings.PageSize == nil {
		return flag
	}
	if _, hasEnv := os.LookupEnv("GHSCOUT_PAGE_SIZE"); hasEnv {
		return flag
	}
	return *settings.PageSize
}
