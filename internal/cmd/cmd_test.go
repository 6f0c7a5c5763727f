package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghscout/ghscout/internal/config"
	portsmocks "github.com/ghscout/ghscout/internal/ports/mocks"
)

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func TestParseKeyValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single", "n", []string{"n"}},
		{"multiple", "right, l", []string{"right", "l"}},
		{"blank parts dropped", " ,x,, ", []string{"x"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseKeyValues(tt.input))
		})
	}
}

func TestResolvePageSize(t *testing.T) {
	settings := &config.Settings{PageSize: intPtr(25)}

	t.Run("settings apply at the flag default", func(t *testing.T) {
		assert.Equal(t, 25, resolvePageSize(config.DefaultPageSize, settings))
	})

	t.Run("explicit flag wins", func(t *testing.T) {
		assert.Equal(t, 5, resolvePageSize(5, settings))
	})

	t.Run("env wins over settings", func(t *testing.T) {
		t.Setenv("GHSCOUT_PAGE_SIZE", "10")
		assert.Equal(t, config.DefaultPageSize, resolvePageSize(config.DefaultPageSize, settings))
	})

	t.Run("no settings", func(t *testing.T) {
		assert.Equal(t, config.DefaultPageSize, resolvePageSize(config.DefaultPageSize, nil))
	})
}

func TestServeAddress(t *testing.T) {
	settings := &config.Settings{ServeHost: "0.0.0.0", ServePort: "2222"}

	host, port := (&ServeCmd{}).address(nil)
	assert.Equal(t, config.DefaultServeHost, host)
	assert.Equal(t, config.DefaultServePort, port)

	host, port = (&ServeCmd{}).address(settings)
	assert.Equal(t, "0.0.0.0", host)
	assert.Equal(t, "2222", port)

	host, port = (&ServeCmd{Host: "127.0.0.1", Port: "9000"}).address(settings)
	assert.Equal(t, "127.0.0.1", host)
	assert.Equal(t, "9000", port)
}

func TestEffectiveSettings(t *testing.T) {
	t.Setenv("GHSCOUT_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GHSCOUT_API_BASE_URL", "")
	t.Setenv("GHSCOUT_NO_HISTORY", "")

	effective := effectiveSettings(&config.Settings{
		PageSize:    intPtr(30),
		TipsEnabled: boolPtr(false),
		Token:       "secret",
	})

	assert.Equal(t, 30, effective["page_size"])
	assert.Equal(t, false, effective["tips_enabled"])
	assert.Equal(t, "(set)", effective["token"])
	assert.Equal(t, config.DefaultAPIBaseURL, effective["api_base_url"])
	assert.Equal(t, true, effective["history_enabled"])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

func TestCLIClose_ClosesHistoryOnce(t *testing.T) {
	history := portsmocks.NewMockSearchHistoryRepository(t)
	history.EXPECT().Close().Return(errors.New("locked")).Once()

	cli := &CLI{Container: &Container{historyRepo: history}}

	assert.EqualError(t, cli.Close(), "locked")
	assert.Nil(t, cli.Container)
	assert.NoError(t, cli.Close(), "second close is a no-op")
}

func TestCLIClose_WithoutContainer(t *testing.T) {
	assert.NoError(t, (&CLI{}).Close())
}
