package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ghscout/ghscout/internal/domain"
	"github.com/ghscout/ghscout/internal/logging"
	"github.com/ghscout/ghscout/internal/ports"
)

// maxErrorBody caps how much of an error response is read
const maxErrorBody = 64 << 10

// reposPerPage is the number of repositories fetched for a user's detail panel
const reposPerPage = 100

// Client implements ports.UserDirectory against the GitHub REST API
type Client struct {
	config     Config
	httpClient *http.Client
}

// Verify interface compliance at compile time
var _ ports.UserDirectory = (*Client)(nil)

// NewClient creates a new GitHub API client
func NewClient(config Config) *Client {
	config = config.withDefaults()
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// SearchUsers returns one page of users matching keyword
func (c *Client) SearchUsers(ctx context.Context, keyword string, pageSize, page int) (*domain.SearchPage, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, domain.ErrEmptyKeyword
	}
	if page < 1 {
		return nil, domain.ErrInvalidPage
	}
	if err := domain.ValidatePageSize(pageSize); err != nil {
		return nil, err
	}

	u, err := url.Parse(c.config.BaseURL + "/search/users")
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	q := u.Query()
	q.Set("q", keyword)
	q.Set("per_page", strconv.Itoa(pageSize))
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	var resp searchUsersResponse
	if err := c.get(ctx, u.String(), &resp); err != nil {
		return nil, err
	}

	logging.Logger.Debug("Searched users",
		"keyword", keyword,
		"page", page,
		"page_size", pageSize,
		"total_count", resp.TotalCount,
		"items", len(resp.Items))

	return toDomainSearchPage(resp), nil
}

// ListRepositories returns the public repositories owned by login
func (c *Client) ListRepositories(ctx context.Context, login string) ([]domain.Repository, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, domain.ErrUnknownLogin
	}

	u, err := url.Parse(c.config.BaseURL + "/users/" + url.PathEscape(login) + "/repos")
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	q := u.Query()
	q.Set("per_page", strconv.Itoa(reposPerPage))
	u.RawQuery = q.Encode()

	var items []repoItem
	if err := c.get(ctx, u.String(), &items); err != nil {
		return nil, err
	}

	logging.Logger.Debug("Listed repositories", "login", login, "count", len(items))

	return toDomainRepositories(items), nil
}

// get performs a GET and decodes a 2xx JSON body into model.
// Every failure comes back as *APIError.
func (c *Client) get(ctx context.Context, rawURL string, model any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return newTransportError(err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Logger.Warn("GitHub request failed", "url", rawURL, "error", err)
		return newTransportError(err)
	}
	defer resp.Body.Close()

	logging.Logger.Debug("GitHub request",
		"url", rawURL,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"rate_limit_remaining", resp.Header.Get("X-RateLimit-Remaining"))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body errorBody
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		// A non-JSON error body leaves message empty and falls back to the status text
		_ = json.Unmarshal(data, &body)
		apiErr := newStatusError(resp.StatusCode, body)
		logging.Logger.Warn("GitHub API error",
			"url", rawURL,
			"status", resp.StatusCode,
			"message", apiErr.Message)
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(model); err != nil {
		return newTransportError(fmt.Errorf("failed to decode response: %w", err))
	}

	return nil
}
