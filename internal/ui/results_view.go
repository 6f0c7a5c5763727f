package ui

import (
	"fmt"
	"strings"

	"github.com/ghscout/ghscout/internal/controller"
	"github.com/ghscout/ghscout/internal/domain"
	"github.com/ghscout/ghscout/internal/pagination"
	"github.com/ghscout/ghscout/internal/theme"
)

const (
	maxPanelErrorLines = 3
	panelIndent        = 6
)

// resultLines renders the result body. It returns the lines and the index of
// the first line of the row under the cursor (-1 when there is none).
func resultLines(d controller.Display, cursor int, spinnerFrame string, width int) ([]string, int) {
	switch d.Body {
	case controller.BodyLoading:
		return []string{spinnerFrame + " Loading..."}, -1
	case controller.BodyError:
		return strings.Split(theme.ErrorStyle.Render(wrapText(errorPrefix, d.ErrorMessage, width, maxErrorLines)), "\n"), -1
	case controller.BodyEmpty:
		return []string{theme.EmptyStyle.Render("No users available")}, -1
	}

	var lines []string
	focus := -1
	for i, rd := range d.Rows {
		if i == cursor {
			focus = len(lines)
		}
		lines = append(lines, rowLine(rd.Row, i == cursor))
		lines = append(lines, panelLines(rd, spinnerFrame, width-panelIndent)...)
	}
	return lines, focus
}

// rowLine renders the one-line summary of a user
func rowLine(row controller.Row, selected bool) string {
	marker := "  "
	if selected {
		marker = theme.CursorStyle.Render("> ")
	}

	chevron := "▸"
	if row.Expanded {
		chevron = "▾"
	}

	line := marker + chevron + " " + theme.LoginStyle.Render(row.DisplayName)
	if row.ProfileURL != "" {
		line += "  " + theme.ProfileURLStyle.Render(row.ProfileURL)
	}
	return line
}

// panelLines renders the repository panel under an expanded row
func panelLines(rd controller.RowDisplay, spinnerFrame string, width int) []string {
	var body string
	switch rd.Panel {
	case controller.PanelHidden:
		return nil
	case controller.PanelLoading:
		body = spinnerFrame + " Loading..."
	case controller.PanelError:
		body = theme.PanelErrorStyle.Render(wrapText(errorPrefix, rd.Row.DetailError, width, maxPanelErrorLines))
	case controller.PanelEmpty:
		body = theme.EmptyStyle.Render("No repositories available")
	case controller.PanelItems:
		items := make([]string, 0, len(rd.Row.DetailItems))
		for _, repo := range rd.Row.DetailItems {
			items = append(items, repoLines(repo, width))
		}
		body = strings.Join(items, "\n")
	}
	return strings.Split(theme.PanelStyle.Render(body), "\n")
}

// repoLines renders a repository as a title line plus an optional description
func repoLines(repo domain.Repository, width int) string {
	title := theme.RepoNameStyle.Render(repo.Name) + "  " + theme.StarsStyle.Render(fmt.Sprintf("★ %s", formatCount(repo.Stars)))
	if repo.Language != "" {
		title += "  " + theme.LanguageStyle.Render(repo.Language)
	}
	if repo.Fork {
		title += "  " + theme.MutedStyle.Render("⑂ fork")
	}

	desc := repo.DescriptionText()
	if desc == "" {
		return title
	}
	return title + "\n" + theme.RepoDescStyle.Render(wrapText("", desc, width, 2))
}

// paginationBar renders "‹ Prev  1 2 3 … 12 13  Next ›" with the current page highlighted
func paginationBar(d controller.Display) string {
	if len(d.Window) == 0 {
		return ""
	}

	prevStyle := theme.PageStyle
	if !d.PrevEnabled {
		prevStyle = theme.PageDisabledStyle
	}
	nextStyle := theme.PageStyle
	if !d.NextEnabled {
		nextStyle = theme.PageDisabledStyle
	}

	parts := []string{prevStyle.Render("‹ Prev")}
	for _, token := range d.Window {
		parts = append(parts, pageToken(token, d.CurrentPage))
	}
	parts = append(parts, nextStyle.Render("Next ›"))
	return strings.Join(parts, "")
}

func pageToken(token pagination.Token, currentPage int) string {
	switch {
	case token.Ellipsis:
		return theme.PageDisabledStyle.Render(token.String())
	case token.Page == currentPage:
		return theme.PageCurrentStyle.Render(token.String())
	default:
		return theme.PageStyle.Render(token.String())
	}
}

// fitLines keeps at most height lines of lines, scrolled so that the focus
// line stays visible with some context above it
func fitLines(lines []string, focus, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}

	start := 0
	if focus >= 0 {
		start = focus - height/3
	}
	start = max(min(start, len(lines)-height), 0)
	return lines[start : start+height]
}
