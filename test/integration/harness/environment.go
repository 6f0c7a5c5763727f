package harness

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own GHSCOUT_HOME.
type TestEnvironment struct {
	API         *FakeAPI
	GhscoutHome string
	extraEnv    map[string]string
	tb          testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp GHSCOUT_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		GhscoutHome: tb.TempDir(),
		extraEnv:    make(map[string]string),
		tb:          tb,
	}
}

// WithAPI starts a FakeAPI and points the binary at it
func (e *TestEnvironment) WithAPI() *FakeAPI {
	e.tb.Helper()
	e.API = NewFakeAPI(e.tb)
	return e.API
}

// Environ returns environment variables configured for test isolation.
// It filters out GHSCOUT_* variables and tokens, and sets:
//   - GHSCOUT_HOME to the temp directory
//   - GHSCOUT_DEBUG to empty string (disables debug logging)
//   - GHSCOUT_API_BASE_URL to the fake API, or an unroutable address without one
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+4+len(e.extraEnv))

	overrideKeys := map[string]bool{
		"BROWSER":      true,
		"GITHUB_TOKEN": true,
	}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "GHSCOUT_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	apiURL := "http://127.0.0.1:1"
	if e.API != nil {
		apiURL = e.API.URL()
	}

	env = append(env,
		"GHSCOUT_HOME="+e.GhscoutHome,
		"GHSCOUT_DEBUG=",
		"GHSCOUT_API_BASE_URL="+apiURL,
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the history database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.GhscoutHome, "history.db")
}

// SettingsPath returns the path to settings.json.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.GhscoutHome, "settings.json")
}

// WriteSettings writes settings as settings.json
func (e *TestEnvironment) WriteSettings(settings map[string]any) {
	e.tb.Helper()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		e.tb.Fatalf("Failed to marshal settings: %v", err)
	}
	if err := os.WriteFile(e.SettingsPath(), data, 0600); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
