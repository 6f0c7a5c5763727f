package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ghscout/ghscout/internal/cmd"
	"github.com/ghscout/ghscout/internal/config"
	"github.com/ghscout/ghscout/internal/ui"
	"github.com/ghscout/ghscout/internal/version"
)

// Build information is injected into internal/version via ldflags
// Example: -ldflags="-X github.com/ghscout/ghscout/internal/version.Version=v1.0.0"

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup runs before exiting
func run() int {
	ui.SetVersionInfo(ui.VersionInfo{
		Commit:    version.Commit,
		Date:      version.Date,
		GoVersion: version.GoVersion,
		Tagline:   version.Tagline,
		Version:   version.Version,
	})

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("ghscout"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	defer cli.Close()

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
