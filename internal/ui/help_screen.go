package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghscout/ghscout/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool // viewport has been sized
	keys        *KeyMap
	viewport    viewport.Model
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

func renderGroup(title string, lines ...string) string {
	return "\n" + theme.HelpGroupStyle.Render(title) + "\n" + strings.Join(lines, "")
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap) string {
	var content string

	content += renderGroup("Search",
		renderBinding(keys.Search.Focus.Binding),
		renderBinding(keys.Search.Select.Binding),
		renderBinding(keys.Search.Leave.Binding),
		renderBinding(keys.Application.History.Binding),
		renderBinding(keys.Application.ClearHistory.Binding),
	)

	content += renderGroup("Results",
		renderBinding(keys.Results.Up.Binding),
		renderBinding(keys.Results.Down.Binding),
		renderBinding(keys.Results.Retry.Binding),
		renderBinding(keys.Results.OpenProfile.Binding),
	)

	content += renderGroup("Pages",
		renderBinding(keys.Pagination.Prev.Binding),
		renderBinding(keys.Pagination.Next.Binding),
		renderBinding(keys.Pagination.GoTo.Binding),
	)

	content += renderGroup("Application",
		renderBinding(keys.Application.CommandPalette.Binding),
		renderBinding(keys.Application.Help.Binding),
		renderBinding(keys.Application.Quit.Binding),
		renderBinding(keys.Application.ForceQuit.Binding),
	)

	content += renderGroup("Row markers (read-only)",
		renderShortcut("▸", "collapsed user"),
		renderShortcut("▾", "expanded user"),
		renderShortcut("★", "repository stars"),
		renderShortcut("⑂", "forked repository"),
	)

	return content
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, Footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	closeKeys := "esc, " + h.keys.Application.Quit.Binding.Help().Key + ", " + h.keys.Application.Help.Binding.Help().Key
	footer := theme.HelpStyle.Render("Press " + closeKeys + " to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
