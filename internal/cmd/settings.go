package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/ghscout/ghscout/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Keys SettingsKeysCmd `cmd:"keys" help:"Manage keyboard shortcuts"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options"`
	Show SettingsShowCmd `cmd:"show" help:"Show effective settings" default:"1"`
}

// SettingsShowCmd prints the settings in effect after env and defaults
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// effectiveSettings resolves every setting the way the commands do
func effectiveSettings(settings *config.Settings) map[string]any {
	errorClearDelay := config.DefaultErrorClearDelay
	pageSize := config.DefaultPageSize
	tipsEnabled := true
	if settings != nil {
		if settings.ErrorClearDelay != nil {
			errorClearDelay = *settings.ErrorClearDelay
		}
		if settings.PageSize != nil {
			pageSize = *settings.PageSize
		}
		if settings.TipsEnabled != nil {
			tipsEnabled = *settings.TipsEnabled
		}
	}

	host, port := (&ServeCmd{}).address(settings)

	token := "(none)"
	if settings.ResolveToken() != "" {
		token = "(set)"
	}

	return map[string]any{
		"api_base_url":            settings.ResolveAPIBaseURL(),
		"error_clear_delay":       errorClearDelay,
		"history_enabled":         settings.HistoryOn(),
		"history_limit":           settings.ResolveHistoryLimit(),
		"page_size":               pageSize,
		"request_timeout_seconds": int(settings.ResolveRequestTimeout().Seconds()),
		"serve_host":              host,
		"serve_port":              port,
		"tips_enabled":            tipsEnabled,
		"token":                   token,
	}
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	effective := effectiveSettings(cli.settings)

	if s.Format == "json" {
		return printJSON(map[string]any{
			"settings_file": config.GetSettingsPath(),
			"effective":     effective,
		})
	}

	fmt.Printf("Settings file: %s\n\n", config.GetSettingsPath())
	printSettingsTable(effective)
	return nil
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()
	printSettingsTable(example)

	fmt.Println()
	fmt.Println("Create or edit this file to configure ghscout.")
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}

// printSettingsTable prints name/value pairs sorted by name
func printSettingsTable(values map[string]any) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		var valueStr string
		switch v := values[name].(type) {
		case string:
			valueStr = v
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		}
		fmt.Fprintf(w, "%s\t%s\n", name, valueStr)
	}
	w.Flush()
}
