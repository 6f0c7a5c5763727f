package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Defaults used when neither flags, environment nor settings.json say otherwise
const (
	DefaultAPIBaseURL      = "https://api.github.com"
	DefaultErrorClearDelay = 10
	DefaultHistoryLimit    = 20
	DefaultPageSize        = 10
	DefaultRequestTimeout  = 15
	DefaultServeHost       = "localhost"
	DefaultServePort       = "23234"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "next_page", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	keyToAction := make(map[string]string)

	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		if len(keys) == 0 {
			continue // Not configured, will use default
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Settings represents the structure of $GHSCOUT_HOME/settings.json
type Settings struct {
	APIBaseURL            string            `json:"api_base_url,omitempty"`
	Debug                 *bool             `json:"debug,omitempty"`
	ErrorClearDelay       *int              `json:"error_clear_delay,omitempty"`
	HistoryEnabled        *bool             `json:"history_enabled,omitempty"`
	HistoryLimit          *int              `json:"history_limit,omitempty"`
	Keys                  KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles           *int              `json:"max_log_files,omitempty"`
	PageSize              *int              `json:"page_size,omitempty"`
	RequestTimeoutSeconds *int              `json:"request_timeout_seconds,omitempty"`
	ServeHost             string            `json:"serve_host,omitempty"`
	ServePort             string            `json:"serve_port,omitempty"`
	TipsEnabled           *bool             `json:"tips_enabled,omitempty"`
	Token                 string            `json:"token,omitempty"`
}

// LoadSettings loads settings from $GHSCOUT_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	settings.APIBaseURL = strings.TrimRight(settings.APIBaseURL, "/")

	return &settings, nil
}

// SaveSettings saves settings to $GHSCOUT_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// ResolveToken returns the API token: GHSCOUT_TOKEN, then GITHUB_TOKEN, then settings.json
func (s *Settings) ResolveToken() string {
	if token := os.Getenv("GHSCOUT_TOKEN"); token != "" {
		return token
	}
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}
	if s == nil {
		return ""
	}
	return s.Token
}

// ResolveAPIBaseURL returns GHSCOUT_API_BASE_URL, then settings.json, then the public API
func (s *Settings) ResolveAPIBaseURL() string {
	if url := os.Getenv("GHSCOUT_API_BASE_URL"); url != "" {
		return strings.TrimRight(url, "/")
	}
	if s != nil && s.APIBaseURL != "" {
		return s.APIBaseURL
	}
	return DefaultAPIBaseURL
}

// ResolveRequestTimeout returns the per-request timeout
func (s *Settings) ResolveRequestTimeout() time.Duration {
	seconds := DefaultRequestTimeout
	if s != nil && s.RequestTimeoutSeconds != nil && *s.RequestTimeoutSeconds > 0 {
		seconds = *s.RequestTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}

// HistoryOn reports whether searches should be recorded
func (s *Settings) HistoryOn() bool {
	if os.Getenv("GHSCOUT_NO_HISTORY") == "1" {
		return false
	}
	if s == nil || s.HistoryEnabled == nil {
		return true
	}
	return *s.HistoryEnabled
}

// ResolveHistoryLimit returns how many history entries to show
func (s *Settings) ResolveHistoryLimit() int {
	if s != nil && s.HistoryLimit != nil && *s.HistoryLimit > 0 {
		return *s.HistoryLimit
	}
	return DefaultHistoryLimit
}
