package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ghscout/ghscout/internal/domain"
)

// HistoryPickerResult contains the keyword picked from history
type HistoryPickerResult struct {
	Cancelled bool
	Keyword   string
}

// HistoryPicker lets the user rerun one of their recent searches
type HistoryPicker struct {
	Completed bool
	form      *huh.Form
	result    HistoryPickerResult
}

// NewHistoryPicker creates a picker over entries, newest first
func NewHistoryPicker(entries []domain.HistoryEntry, now time.Time) *HistoryPicker {
	hp := &HistoryPicker{}

	options := make([]huh.Option[string], 0, len(entries))
	for _, e := range entries {
		label := fmt.Sprintf("%s  (%s results, %s)", e.Keyword, formatCount(e.TotalCount), formatAgo(e.SearchedAt, now))
		options = append(options, huh.NewOption(label, e.Keyword))
	}

	hp.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Recent searches").
				Options(options...).
				Value(&hp.result.Keyword),
		),
	)

	return hp
}

func (hp *HistoryPicker) Init() tea.Cmd {
	return hp.form.Init()
}

func (hp *HistoryPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			hp.result.Cancelled = true
			hp.Completed = true
			return hp, nil
		}
	}

	form, cmd := hp.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		hp.form = f
	}

	if hp.form.State == huh.StateCompleted {
		hp.Completed = true
		return hp, nil
	}

	return hp, cmd
}

func (hp *HistoryPicker) View() string {
	return hp.form.View()
}

// Result returns the picker result
func (hp *HistoryPicker) Result() HistoryPickerResult {
	return hp.result
}
