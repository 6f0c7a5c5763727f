package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ghscout/ghscout/internal/domain"
	"github.com/ghscout/ghscout/internal/logging"
	"github.com/ghscout/ghscout/internal/pagination"
	"github.com/ghscout/ghscout/internal/services"
)

// SearchCmd prints one page of users matching a keyword
type SearchCmd struct {
	Keyword     string `arg:"" help:"Keyword to search for"`
	Concurrency int    `help:"Parallel repository requests with --expand" default:"4"`
	Expand      bool   `help:"Also list each user's repositories" short:"e"`
	Format      string `help:"Output format (table or json)" default:"table" enum:"table,json" short:"f"`
	Page        int    `help:"Page number (1-based)" default:"1" short:"p"`
	PageSize    int    `help:"Users per page" default:"10" env:"GHSCOUT_PAGE_SIZE"`
}

// Run executes the search command
func (s *SearchCmd) Run(cli *CLI) error {
	keyword := strings.TrimSpace(s.Keyword)
	if keyword == "" {
		return domain.ErrEmptyKeyword
	}
	if s.Page < 1 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidPage, s.Page)
	}

	pageSize := resolvePageSize(s.PageSize, cli.settings)
	if err := domain.ValidatePageSize(pageSize); err != nil {
		return fmt.Errorf("%w: %d", err, pageSize)
	}

	logging.Logger.Debug("Executing search command",
		"keyword", keyword,
		"page", s.Page,
		"page_size", pageSize,
		"expand", s.Expand)

	ctx := context.Background()
	result, err := cli.Container.SearchService.Search(ctx, keyword, pageSize, s.Page)
	if err != nil {
		return err
	}

	var expanded []services.UserRepositories
	if s.Expand {
		expanded = cli.Container.SearchService.ExpandAll(ctx, result.Users, s.Concurrency)
	}

	page := searchPageView{
		Keyword:    keyword,
		Page:       s.Page,
		PageSize:   pageSize,
		Result:     result,
		Expanded:   expanded,
		TotalPages: pagination.TotalPages(result.TotalCount, pageSize),
	}

	switch s.Format {
	case "json":
		return page.renderJSON()
	default:
		page.renderTable()
	}
	return nil
}

// searchPageView is one fetched page plus the optional repository fan-out
type searchPageView struct {
	Expanded   []services.UserRepositories
	Keyword    string
	Page       int
	PageSize   int
	Result     *domain.SearchPage
	TotalPages int
}

// renderTable prints users and, when expanded, their repositories
func (v searchPageView) renderTable() {
	if len(v.Result.Users) == 0 {
		fmt.Printf("No users found for %q.\n", v.Keyword)
		return
	}

	from := (v.Page-1)*v.PageSize + 1
	to := from + len(v.Result.Users) - 1
	fmt.Printf("Showing %d to %d of %d results (page %d of %d)\n\n",
		from, to, v.Result.TotalCount, v.Page, v.TotalPages)

	if v.Expanded == nil {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "Login\tType\tProfile")
		fmt.Fprintln(w, "─────\t────\t───────")
		for _, u := range v.Result.Users {
			fmt.Fprintf(w, "%s\t%s\t%s\n", u.DisplayName(), u.Type, u.ProfileURL)
		}
		w.Flush()
		return
	}

	for _, entry := range v.Expanded {
		fmt.Printf("%s  %s\n", entry.User.DisplayName(), entry.User.ProfileURL)
		printRepositories(entry.Repos, entry.Err, "  ")
		fmt.Println()
	}
}

// printRepositories prints a repository list, its error, or an empty marker
func printRepositories(repos []domain.Repository, err error, indent string) {
	if err != nil {
		fmt.Printf("%sError: %v\n", indent, err)
		return
	}
	if len(repos) == 0 {
		fmt.Printf("%sNo repositories available\n", indent)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, r := range repos {
		fork := ""
		if r.Fork {
			fork = "fork"
		}
		fmt.Fprintf(w, "%s%s\t★ %d\t%s\t%s\t%s\n",
			indent, r.Name, r.Stars, r.Language, fork, truncate(r.DescriptionText(), 60))
	}
	w.Flush()
}

// truncate shortens s to at most limit runes
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// userJSON represents a user in JSON format
type userJSON struct {
	AvatarURL    string           `json:"avatar_url"`
	Error        string           `json:"error,omitempty"`
	ID           int64            `json:"id"`
	Login        string           `json:"login"`
	ProfileURL   string           `json:"profile_url"`
	Repositories []repositoryJSON `json:"repositories,omitempty"`
	Type         string           `json:"type"`
}

// repositoryJSON represents a repository in JSON format
type repositoryJSON struct {
	Description string `json:"description,omitempty"`
	Fork        bool   `json:"fork"`
	FullName    string `json:"full_name"`
	HTMLURL     string `json:"html_url"`
	Language    string `json:"language,omitempty"`
	Name        string `json:"name"`
	Stars       int    `json:"stars"`
}

// searchJSON is the JSON document printed by search --format json
type searchJSON struct {
	Incomplete bool       `json:"incomplete_results"`
	Keyword    string     `json:"keyword"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalCount int        `json:"total_count"`
	TotalPages int        `json:"total_pages"`
	Users      []userJSON `json:"users"`
}

func (v searchPageView) renderJSON() error {
	doc := searchJSON{
		Incomplete: v.Result.Incomplete,
		Keyword:    v.Keyword,
		Page:       v.Page,
		PageSize:   v.PageSize,
		TotalCount: v.Result.TotalCount,
		TotalPages: v.TotalPages,
		Users:      make([]userJSON, 0, len(v.Result.Users)),
	}

	for i, u := range v.Result.Users {
		item := toUserJSON(u)
		if v.Expanded != nil {
			entry := v.Expanded[i]
			if entry.Err != nil {
				item.Error = entry.Err.Error()
			}
			item.Repositories = toRepositoriesJSON(entry.Repos)
		}
		doc.Users = append(doc.Users, item)
	}

	return printJSON(doc)
}

func toUserJSON(u domain.User) userJSON {
	return userJSON{
		AvatarURL:  u.AvatarURL,
		ID:         int64(u.ID),
		Login:      u.Login,
		ProfileURL: u.ProfileURL,
		Type:       u.Type,
	}
}

func toRepositoriesJSON(repos []domain.Repository) []repositoryJSON {
	out := make([]repositoryJSON, 0, len(repos))
	for _, r := range repos {
		out = append(out, repositoryJSON{
			Description: r.DescriptionText(),
			Fork:        r.Fork,
			FullName:    r.FullName,
			HTMLURL:     r.HTMLURL,
			Language:    r.Language,
			Name:        r.Name,
			Stars:       r.Stars,
		})
	}
	return out
}

// printJSON writes v as indented JSON to stdout
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
