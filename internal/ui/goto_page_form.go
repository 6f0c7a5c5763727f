package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// GoToPageFormResult contains the page the user picked
type GoToPageFormResult struct {
	Cancelled bool
	Page      int
}

// GoToPageForm asks for a page number between 1 and the last page
type GoToPageForm struct {
	Completed  bool
	form       *huh.Form
	input      string
	result     GoToPageFormResult
	totalPages int
}

// NewGoToPageForm creates a go-to-page form for a result set with totalPages pages
func NewGoToPageForm(currentPage, totalPages int) *GoToPageForm {
	gf := &GoToPageForm{totalPages: totalPages}

	gf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Page number").
				Description(fmt.Sprintf("Currently on page %d of %s", currentPage, formatCount(totalPages))).
				Placeholder(strconv.Itoa(currentPage)).
				Value(&gf.input).
				Validate(gf.validate),
		),
	)

	return gf
}

func (gf *GoToPageForm) validate(s string) error {
	_, err := parsePage(s, gf.totalPages)
	return err
}

// parsePage parses s as a page in [1, totalPages]
func parsePage(s string, totalPages int) (int, error) {
	page, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("enter a page number")
	}
	if page < 1 || page > totalPages {
		return 0, fmt.Errorf("page must be between 1 and %d", totalPages)
	}
	return page, nil
}

func (gf *GoToPageForm) Init() tea.Cmd {
	return gf.form.Init()
}

func (gf *GoToPageForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			gf.result.Cancelled = true
			gf.Completed = true
			return gf, nil
		}
	}

	form, cmd := gf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		gf.form = f
	}

	if gf.form.State == huh.StateCompleted {
		gf.Completed = true
		// Validate already accepted the input
		gf.result.Page, _ = parsePage(gf.input, gf.totalPages)
		return gf, nil
	}

	return gf, cmd
}

func (gf *GoToPageForm) View() string {
	return gf.form.View()
}

// Result returns the form result
func (gf *GoToPageForm) Result() GoToPageFormResult {
	return gf.result
}
