package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ghscout/ghscout/internal/domain"
	"github.com/ghscout/ghscout/internal/logging"
)

// ReposCmd prints the public repositories of one user
type ReposCmd struct {
	Login  string `arg:"" help:"User login"`
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json" short:"f"`
}

// Run executes the repos command
func (r *ReposCmd) Run(cli *CLI) error {
	login := strings.TrimSpace(r.Login)
	if login == "" {
		return domain.ErrUnknownLogin
	}

	logging.Logger.Debug("Executing repos command", "login", login)

	repos, err := cli.Container.SearchService.Repositories(context.Background(), login)
	if err != nil {
		return err
	}

	if r.Format == "json" {
		return printJSON(toRepositoriesJSON(repos))
	}

	fmt.Printf("Repositories of %s (%d)\n\n", login, len(repos))
	printRepositories(repos, nil, "")
	return nil
}
