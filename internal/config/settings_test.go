package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyBindingValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  KeyBindingValue
	}{
		{"single string", `"n"`, KeyBindingValue{"n"}},
		{"array", `["right", "l"]`, KeyBindingValue{"right", "l"}},
		{"empty string", `""`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got KeyBindingValue
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"help", "next_page", "prev_page"}

	tests := []struct {
		name    string
		config  KeyBindingsConfig
		wantErr string
	}{
		{"nil config", nil, ""},
		{"valid", KeyBindingsConfig{"next_page": {"n"}, "prev_page": {"p"}}, ""},
		{"unknown name", KeyBindingsConfig{"archive": {"a"}}, "unknown key binding 'archive'"},
		{"empty value", KeyBindingsConfig{"help": {""}}, "contains empty value"},
		{"duplicate key", KeyBindingsConfig{"next_page": {"x"}, "prev_page": {"x"}}, "is assigned to both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate(valid)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadSettings_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("GHSCOUT_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestSaveAndLoadSettings(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested")
	t.Setenv("GHSCOUT_HOME", home)

	pageSize := 25
	require.NoError(t, SaveSettings(&Settings{
		APIBaseURL: "http://localhost:9999",
		Keys:       KeyBindingsConfig{"help": {"?"}},
		PageSize:   &pageSize,
	}))

	settings, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, settings.PageSize)
	assert.Equal(t, 25, *settings.PageSize)
	assert.Equal(t, "http://localhost:9999", settings.APIBaseURL)
	assert.Equal(t, KeyBindingValue{"?"}, settings.Keys["help"])
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("GHSCOUT_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0644))

	_, err := LoadSettings()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestResolveToken(t *testing.T) {
	s := &Settings{Token: "from-file"}

	t.Setenv("GHSCOUT_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")
	assert.Equal(t, "from-file", s.ResolveToken())

	t.Setenv("GITHUB_TOKEN", "from-github-env")
	assert.Equal(t, "from-github-env", s.ResolveToken())

	t.Setenv("GHSCOUT_TOKEN", "from-ghscout-env")
	assert.Equal(t, "from-ghscout-env", s.ResolveToken())
}

func TestResolveAPIBaseURL(t *testing.T) {
	t.Setenv("GHSCOUT_API_BASE_URL", "")
	var nilSettings *Settings
	assert.Equal(t, DefaultAPIBaseURL, nilSettings.ResolveAPIBaseURL())
	assert.Equal(t, "http://ghe.local/api/v3", (&Settings{APIBaseURL: "http://ghe.local/api/v3"}).ResolveAPIBaseURL())

	t.Setenv("GHSCOUT_API_BASE_URL", "http://127.0.0.1:8080/")
	assert.Equal(t, "http://127.0.0.1:8080", (&Settings{APIBaseURL: "http://ghe.local"}).ResolveAPIBaseURL())
}

func TestResolveRequestTimeout(t *testing.T) {
	zero := 0
	five := 5

	assert.Equal(t, DefaultRequestTimeout*time.Second, (&Settings{}).ResolveRequestTimeout())
	assert.Equal(t, DefaultRequestTimeout*time.Second, (&Settings{RequestTimeoutSeconds: &zero}).ResolveRequestTimeout())
	assert.Equal(t, 5*time.Second, (&Settings{RequestTimeoutSeconds: &five}).ResolveRequestTimeout())
}

func TestHistoryOn(t *testing.T) {
	off := false
	t.Setenv("GHSCOUT_NO_HISTORY", "")

	assert.True(t, (&Settings{}).HistoryOn())
	assert.False(t, (&Settings{HistoryEnabled: &off}).HistoryOn())

	t.Setenv("GHSCOUT_NO_HISTORY", "1")
	assert.False(t, (&Settings{}).HistoryOn())
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	for _, name := range []string{"api_base_url", "debug", "keys", "page_size", "token", "history_enabled"} {
		assert.Contains(t, example, name)
		assert.NotNil(t, example[name], name)
	}
	assert.Equal(t, DefaultPageSize, example["page_size"])
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "x", "y"), ExpandPath("~/x/y"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}
