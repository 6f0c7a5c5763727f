package integration_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghscout/ghscout/test/integration/harness"
)

func seedUsers(api *harness.FakeAPI, prefix string, n int) {
	for i := 1; i <= n; i++ {
		api.AddUsers(harness.FakeUser{ID: int64(i), Login: fmt.Sprintf("%s%02d", prefix, i)})
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(api *harness.FakeAPI)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, result harness.CommandResult)
	}{
		{
			name:         "first page table",
			setup:        func(api *harness.FakeAPI) { seedUsers(api, "octo", 12) },
			args:         []string{"search", "octo"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Showing 1 to 10 of 12 results (page 1 of 2)")
				harness.AssertStdoutContains(t, result, "octo01")
				harness.AssertStdoutContains(t, result, "https://github.com/octo10")
				harness.AssertStdoutNotContains(t, result, "octo11")
			},
		},
		{
			name:         "second page",
			setup:        func(api *harness.FakeAPI) { seedUsers(api, "octo", 12) },
			args:         []string{"search", "octo", "--page", "2"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Showing 11 to 12 of 12 results (page 2 of 2)")
				harness.AssertStdoutNotContains(t, result, "octo01")
			},
		},
		{
			name:         "no matches",
			args:         []string{"search", "nobody"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, `No users found for "nobody".`)
			},
		},
		{
			name:         "api message shown verbatim",
			setup:        func(api *harness.FakeAPI) { api.FailSearch("API rate limit exceeded for 127.0.0.1.") },
			args:         []string{"search", "octo"},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "Error: API rate limit exceeded for 127.0.0.1.")
			},
		},
		{
			name:         "invalid page",
			args:         []string{"search", "octo", "--page", "0"},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "page must be >= 1")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			api := env.WithAPI()
			if tt.setup != nil {
				tt.setup(api)
			}

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertExitCode(t, result, tt.wantExitCode)
			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestSearchExpandJSON(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	api := env.WithAPI()
	api.AddUsers(
		harness.FakeUser{ID: 1, Login: "alice"},
		harness.FakeUser{ID: 2, Login: "alicia"},
	)
	api.SetRepos("alice", harness.FakeRepo{Name: "wonderland", Stars: 42, Language: "Go", Description: "rabbit hole"})
	api.FailRepos("alicia", "Server Error")

	result := harness.RunCommand(t, env, "search", "ali", "--expand", "--format", "json")
	harness.AssertSuccess(t, result)

	var doc struct {
		TotalCount int `json:"total_count"`
		TotalPages int `json:"total_pages"`
		Users      []struct {
			Error        string `json:"error"`
			Login        string `json:"login"`
			Repositories []struct {
				Language string `json:"language"`
				Name     string `json:"name"`
				Stars    int    `json:"stars"`
			} `json:"repositories"`
		} `json:"users"`
	}
	harness.AssertValidJSON(t, result, &doc)

	assert.Equal(t, 2, doc.TotalCount)
	assert.Equal(t, 1, doc.TotalPages)
	require.Len(t, doc.Users, 2)

	assert.Equal(t, "alice", doc.Users[0].Login)
	require.Len(t, doc.Users[0].Repositories, 1)
	assert.Equal(t, "wonderland", doc.Users[0].Repositories[0].Name)
	assert.Equal(t, 42, doc.Users[0].Repositories[0].Stars)

	assert.Equal(t, "alicia", doc.Users[1].Login)
	assert.Equal(t, "Server Error", doc.Users[1].Error)
	assert.Empty(t, doc.Users[1].Repositories)
}

func TestSearchPageSizeFromSettings(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	api := env.WithAPI()
	seedUsers(api, "octo", 12)
	env.WriteSettings(map[string]any{"page_size": 5})

	result := harness.RunCommand(t, env, "search", "octo")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Showing 1 to 5 of 12 results (page 1 of 3)")
}
