package github

import (
	"strings"
	"time"
)

const (
	defaultBaseURL   = "https://api.github.com"
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "ghscout"
)

// Config holds the settings for the GitHub REST client
type Config struct {
	// BaseURL is the API root (default: https://api.github.com)
	BaseURL string

	// Timeout bounds each request
	Timeout time.Duration

	// Token is sent as a bearer token when set; anonymous access otherwise
	Token string

	// UserAgent identifies the client to the API
	UserAgent string
}

// withDefaults fills unset fields
func (c Config) withDefaults() Config {
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	return c
}
