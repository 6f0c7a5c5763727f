package github

// searchUsersResponse is the body of GET /search/users
type searchUsersResponse struct {
	IncompleteResults bool       `json:"incomplete_results"`
	Items             []userItem `json:"items"`
	TotalCount        int        `json:"total_count"`
}

type userItem struct {
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Type      string `json:"type"`
}

// repoItem is one element of GET /users/{login}/repos
type repoItem struct {
	Description     *string `json:"description"`
	Fork            bool    `json:"fork"`
	FullName        string  `json:"full_name"`
	HTMLURL         string  `json:"html_url"`
	ID              int64   `json:"id"`
	Language        *string `json:"language"`
	Name            string  `json:"name"`
	StargazersCount int     `json:"stargazers_count"`
}

// errorBody is the JSON error payload returned with non-2xx responses
type errorBody struct {
	DocumentationURL string `json:"documentation_url"`
	Message          string `json:"message"`
}
