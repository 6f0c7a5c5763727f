package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ghscout/ghscout/internal/config"
	"github.com/ghscout/ghscout/internal/logging"
	"github.com/ghscout/ghscout/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List  SettingsKeysListCmd  `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Reset SettingsKeysResetCmd `cmd:"reset" help:"Restore the default for a key binding"`
	Set   SettingsKeysSetCmd   `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// keyBindingJSON is one entry of settings keys list --format json
type keyBindingJSON struct {
	Custom  []string `json:"custom,omitempty"`
	Default []string `json:"default"`
	Help    string   `json:"help"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	defaults := ui.GetDefaultKeyBindings()
	names := ui.GetValidKeyNames()

	var customKeys config.KeyBindingsConfig
	if cli.settings != nil {
		customKeys = cli.settings.Keys
	}

	if s.Format == "json" {
		result := make(map[string]keyBindingJSON, len(names))
		for _, name := range names {
			result[name] = keyBindingJSON{
				Custom:  customKeys[name],
				Default: defaults[name],
				Help:    keyHelp(name),
			}
		}
		return printJSON(result)
	}

	fmt.Printf("Key Bindings (settings file: %s)\n\n", config.GetSettingsPath())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tDefault\tCustom\tAction")
	fmt.Fprintln(w, "────\t───────\t──────\t──────")
	for _, name := range names {
		customStr := "-"
		if custom := customKeys[name]; len(custom) > 0 {
			customStr = strings.Join(custom, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, strings.Join(defaults[name], ", "), customStr, keyHelp(name))
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use 'ghscout settings keys set <name> <value>' to customize.")
	return nil
}

func keyHelp(name string) string {
	if def := ui.GetKeyDefinition(name); def != nil {
		return def.Help
	}
	return ""
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., next_page, help, quit)"`
	Value string `arg:"" help:"Key binding (e.g., n, ctrl+n, or comma-separated for multiple: right,l)"`
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if err := validateKeyName(s.Key); err != nil {
		return err
	}

	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)

	return updateKeyBindings(func(keys config.KeyBindingsConfig) {
		keys[s.Key] = values
	}, fmt.Sprintf("Set '%s' to: %s", s.Key, strings.Join(values, ", ")))
}

// SettingsKeysResetCmd removes a custom key binding
type SettingsKeysResetCmd struct {
	Key string `arg:"" help:"Key name"`
}

// Run executes the reset command
func (s *SettingsKeysResetCmd) Run(cli *CLI) error {
	if err := validateKeyName(s.Key); err != nil {
		return err
	}

	logging.Logger.Debug("Resetting key binding", "key", s.Key)

	defaults := ui.GetDefaultKeyBindings()[s.Key]
	return updateKeyBindings(func(keys config.KeyBindingsConfig) {
		delete(keys, s.Key)
	}, fmt.Sprintf("Reset '%s' to: %s", s.Key, strings.Join(defaults, ", ")))
}

func validateKeyName(name string) error {
	if !ui.IsValidKeyName(name) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			name, strings.Join(ui.GetValidKeyNames(), ", "))
	}
	return nil
}

// updateKeyBindings loads settings.json, applies change, validates and saves
func updateKeyBindings(change func(config.KeyBindingsConfig), done string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	change(settings.Keys)

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}
	if len(settings.Keys) == 0 {
		settings.Keys = nil
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println(done)
	return nil
}

// parseKeyValues parses comma-separated key values
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
