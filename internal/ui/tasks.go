package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghscout/ghscout/internal/controller"
	"github.com/ghscout/ghscout/internal/domain"
	"github.com/ghscout/ghscout/internal/logging"
	"github.com/ghscout/ghscout/internal/ports"
)

// SearchBackend is what the browser needs to run searches and keep history.
// *services.SearchService implements it.
type SearchBackend interface {
	ClearHistory(ctx context.Context) error
	History(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
	Repositories(ctx context.Context, login string) ([]domain.Repository, error)
	Search(ctx context.Context, keyword string, pageSize, page int) (*domain.SearchPage, error)
}

// TaskRunner turns controller effects into commands whose results come back
// to the model as controller events
type TaskRunner struct {
	backend SearchBackend
	timeout time.Duration
}

// NewTaskRunner creates a runner that bounds every request by timeout
func NewTaskRunner(backend SearchBackend, timeout time.Duration) *TaskRunner {
	return &TaskRunner{backend: backend, timeout: timeout}
}

// Run starts one command per effect
func (r *TaskRunner) Run(effects []controller.Effect) tea.Cmd {
	if len(effects) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(effects))
	for _, effect := range effects {
		switch e := effect.(type) {
		case controller.SearchRequest:
			cmds = append(cmds, r.search(e))
		case controller.DetailRequest:
			cmds = append(cmds, r.detail(e))
		default:
			logging.Logger.Warn("Ignoring unknown effect", "effect", fmt.Sprintf("%T", effect))
		}
	}
	return tea.Batch(cmds...)
}

func (r *TaskRunner) search(req controller.SearchRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := r.context()
		defer cancel()

		page, err := r.backend.Search(ctx, req.Keyword, req.PageSize, req.Page)
		return controller.SearchResult{
			Err:        err,
			Generation: req.Generation,
			Page:       page,
		}
	}
}

func (r *TaskRunner) detail(req controller.DetailRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := r.context()
		defer cancel()

		repos, err := r.backend.Repositories(ctx, req.Login)
		return controller.DetailResult{
			Err:        err,
			Generation: req.Generation,
			Identity:   req.Identity,
			Repos:      repos,
		}
	}
}

// LoadHistory fetches recent searches for the history picker
func (r *TaskRunner) LoadHistory(limit int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := r.context()
		defer cancel()

		entries, err := r.backend.History(ctx, limit)
		return historyLoadedMsg{Entries: entries, Err: err}
	}
}

// ClearHistory forgets every recorded search
func (r *TaskRunner) ClearHistory() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := r.context()
		defer cancel()

		return historyClearedMsg{Err: r.backend.ClearHistory(ctx)}
	}
}

// OpenProfile launches the browser on a user's profile page
func OpenProfile(opener ports.URLOpener, login, url string) tea.Cmd {
	return func() tea.Msg {
		if opener == nil {
			return profileOpenedMsg{Login: login, Err: fmt.Errorf("opening links is not available in this session")}
		}
		return profileOpenedMsg{Login: login, Err: opener.Open(url)}
	}
}

func (r *TaskRunner) context() (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), r.timeout)
}
