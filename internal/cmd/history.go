package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/ghscout/ghscout/internal/logging"
)

// HistoryCmd manages the search history
type HistoryCmd struct {
	Clear HistoryClearCmd `cmd:"clear" help:"Forget every recorded search"`
	List  HistoryListCmd  `cmd:"list" help:"List recent searches" default:"1"`
}

// HistoryListCmd lists recent searches
type HistoryListCmd struct {
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json" short:"f"`
	Limit  int    `help:"Maximum number of entries (default from settings)" short:"l"`
}

// historyEntryJSON represents a history entry in JSON format
type historyEntryJSON struct {
	Keyword    string `json:"keyword"`
	SearchedAt string `json:"searched_at"`
	TotalCount int    `json:"total_count"`
}

// Run executes the history list command
func (h *HistoryListCmd) Run(cli *CLI) error {
	if !cli.Container.SearchService.HistoryEnabled() {
		fmt.Println("Search history is disabled.")
		return nil
	}

	limit := h.Limit
	if limit <= 0 {
		limit = cli.settings.ResolveHistoryLimit()
	}

	entries, err := cli.Container.SearchService.History(context.Background(), limit)
	if err != nil {
		return err
	}

	if h.Format == "json" {
		out := make([]historyEntryJSON, 0, len(entries))
		for _, e := range entries {
			out = append(out, historyEntryJSON{
				Keyword:    e.Keyword,
				SearchedAt: e.SearchedAt.Format(time.RFC3339),
				TotalCount: e.TotalCount,
			})
		}
		return printJSON(out)
	}

	if len(entries) == 0 {
		fmt.Println("No searches recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Keyword\tResults\tSearched")
	fmt.Fprintln(w, "───────\t───────\t────────")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%d\t%s\n", e.Keyword, e.TotalCount, e.SearchedAt.Local().Format("2006-01-02 15:04:05"))
	}
	w.Flush()
	return nil
}

// HistoryClearCmd deletes the search history
type HistoryClearCmd struct{}

// Run executes the history clear command
func (h *HistoryClearCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing history clear command")

	if err := cli.Container.SearchService.ClearHistory(context.Background()); err != nil {
		return err
	}

	fmt.Println("Search history cleared.")
	return nil
}
