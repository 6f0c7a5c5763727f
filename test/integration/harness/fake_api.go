package harness

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// FakeUser is a user served by FakeAPI
type FakeUser struct {
	ID    int64
	Login string
}

// FakeRepo is a repository served by FakeAPI
type FakeRepo struct {
	Description string
	Fork        bool
	Language    string
	Name        string
	Stars       int
}

// FakeAPI serves /search/users and /users/{login}/repos from memory
type FakeAPI struct {
	mu        sync.Mutex
	repos     map[string][]FakeRepo
	repoErrs  map[string]string
	searchErr string
	server    *httptest.Server
	users     []FakeUser
}

// NewFakeAPI starts a fake directory API, closed when the test ends
func NewFakeAPI(tb testing.TB) *FakeAPI {
	tb.Helper()
	f := &FakeAPI{
		repos:    make(map[string][]FakeRepo),
		repoErrs: make(map[string]string),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	tb.Cleanup(f.server.Close)
	return f
}

// URL returns the base URL of the fake API
func (f *FakeAPI) URL() string {
	return f.server.URL
}

// AddUsers registers users that match any keyword they contain
func (f *FakeAPI) AddUsers(users ...FakeUser) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, users...)
}

// SetRepos sets the repositories of login
func (f *FakeAPI) SetRepos(login string, repos ...FakeRepo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.repos[login] = repos
}

// FailRepos makes the repository listing of login fail with message
func (f *FakeAPI) FailRepos(login, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.repoErrs[login] = message
}

// FailSearch makes every search fail with message
func (f *FakeAPI) FailSearch(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchErr = message
}

func (f *FakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.URL.Path == "/search/users":
		f.searchUsers(w, r)
	case strings.HasPrefix(r.URL.Path, "/users/") && strings.HasSuffix(r.URL.Path, "/repos"):
		login := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/users/"), "/repos")
		f.listRepos(w, login)
	default:
		writeError(w, http.StatusNotFound, "Not Found")
	}
}

func (f *FakeAPI) searchUsers(w http.ResponseWriter, r *http.Request) {
	if f.searchErr != "" {
		writeError(w, http.StatusForbidden, f.searchErr)
		return
	}

	q := strings.ToLower(r.URL.Query().Get("q"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if perPage <= 0 {
		perPage = 30
	}
	if page <= 0 {
		page = 1
	}

	var matches []FakeUser
	for _, u := range f.users {
		if strings.Contains(strings.ToLower(u.Login), q) {
			matches = append(matches, u)
		}
	}

	items := make([]map[string]any, 0, perPage)
	start := (page - 1) * perPage
	for i := start; i < len(matches) && i < start+perPage; i++ {
		u := matches[i]
		items = append(items, map[string]any{
			"avatar_url": fmt.Sprintf("https://avatars.example/u/%d", u.ID),
			"html_url":   "https://github.com/" + u.Login,
			"id":         u.ID,
			"login":      u.Login,
			"type":       "User",
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"incomplete_results": false,
		"items":              items,
		"total_count":        len(matches),
	})
}

func (f *FakeAPI) listRepos(w http.ResponseWriter, login string) {
	if msg, ok := f.repoErrs[login]; ok {
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	items := make([]map[string]any, 0, len(f.repos[login]))
	for i, repo := range f.repos[login] {
		item := map[string]any{
			"description":      nil,
			"fork":             repo.Fork,
			"full_name":        login + "/" + repo.Name,
			"html_url":         "https://github.com/" + login + "/" + repo.Name,
			"id":               i + 1,
			"language":         nil,
			"name":             repo.Name,
			"stargazers_count": repo.Stars,
		}
		if repo.Description != "" {
			item["description"] = repo.Description
		}
		if repo.Language != "" {
			item["language"] = repo.Language
		}
		items = append(items, item)
	}
	writeJSON(w, http.StatusOK, items)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
