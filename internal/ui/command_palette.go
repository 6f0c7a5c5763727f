package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghscout/ghscout/internal/controller"
	"github.com/ghscout/ghscout/internal/theme"
)

// maxVisibleItems is the number of palette entries shown at once
const maxVisibleItems = 6

// CommandPalette is a searchable action palette overlay.
type CommandPalette struct {
	actions       []KeyDefinition // Filtered actions
	allActions    []KeyDefinition
	Completed     bool
	filterInput   textinput.Model
	keys          KeyMap
	lastQuery     string
	Result        CommandPaletteResult
	selectedIndex int
	selectedLogin string // Shown in the header, empty when no row is selected
	width         int
}

// CommandPaletteResult contains the result of the command palette interaction.
type CommandPaletteResult struct {
	Action    *KeyDefinition
	Cancelled bool
}

// NewCommandPalette creates a new command palette for the highlighted row,
// which may be nil. Row actions are only offered when they can apply to it.
func NewCommandPalette(row *controller.Row, keys KeyMap) *CommandPalette {
	actions := availableActions(row)

	selectedLogin := ""
	if row != nil {
		selectedLogin = row.Login
	}

	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.PromptStyle = theme.FilterPromptStyle
	ti.Cursor.Style = theme.FilterCursorStyle
	ti.Placeholder = "type to filter"
	ti.PlaceholderStyle = theme.DimmedStyle
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40

	return &CommandPalette{
		actions:       actions,
		allActions:    actions,
		filterInput:   ti,
		keys:          keys,
		selectedLogin: selectedLogin,
	}
}

// Init initializes the command palette.
func (cp *CommandPalette) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (cp *CommandPalette) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cp.width = msg.Width
		return cp, nil

	case tea.KeyMsg:
		switch {
		case msg.String() == "esc" || key.Matches(msg, cp.keys.Application.ForceQuit.Binding):
			cp.Completed = true
			cp.Result.Cancelled = true
			return cp, nil

		case key.Matches(msg, cp.keys.Search.Select.Binding):
			if cp.selectedIndex < len(cp.actions) {
				cp.Completed = true
				cp.Result.Action = &cp.actions[cp.selectedIndex]
			}
			return cp, nil

		case msg.Type == tea.KeyUp:
			if cp.selectedIndex > 0 {
				cp.selectedIndex--
			}
			return cp, nil

		case msg.Type == tea.KeyDown:
			if cp.selectedIndex < len(cp.actions)-1 {
				cp.selectedIndex++
			}
			return cp, nil
		}
	}

	var cmd tea.Cmd
	cp.filterInput, cmd = cp.filterInput.Update(msg)
	cp.filterActions()

	return cp, cmd
}

// View renders the command palette as a full-width bottom panel.
func (cp *CommandPalette) View() string {
	header := theme.PaletteTitleStyle.Render("⌘ Command Palette")
	if cp.selectedLogin != "" {
		header += " " + theme.DimmedStyle.Render("(selected user: "+cp.selectedLogin+")")
	}

	var items []string
	helpWidth := cp.maxHelpLen()
	start, end := cp.visibleRange()
	hasMoreAbove := start > 0
	hasMoreBelow := end < len(cp.actions)

	for i := start; i < end; i++ {
		def := cp.actions[i]

		prefix := "  "
		switch {
		case i == cp.selectedIndex:
			prefix = "> "
		case i == start && hasMoreAbove:
			prefix = theme.ScrollIndicatorStyle.Render("↑ ")
		case i == end-1 && hasMoreBelow:
			prefix = theme.ScrollIndicatorStyle.Render("↓ ")
		}

		items = append(items, prefix+
			theme.PaletteItemStyle.Render(padRight(capitalizeFirst(def.Help), helpWidth))+
			theme.PaletteShortcutStyle.Render("  "+cp.shortcut(def)))
	}

	if len(items) == 0 {
		items = append(items, theme.PaletteDescStyle.Render("  No matching actions"))
	}

	for len(items) < maxVisibleItems {
		items = append(items, "")
	}

	inner := header + "\n\n" + cp.filterInput.View() + "\n\n" + strings.Join(items, "\n")
	return theme.PaletteBorderStyle.Width(cp.paletteWidth() - 2).Render(inner)
}

// Height is the number of lines View renders
func (cp *CommandPalette) Height() int {
	return strings.Count(cp.View(), "\n") + 1
}

// shortcut shows the first key actually bound to def, honoring custom keys
func (cp *CommandPalette) shortcut(def KeyDefinition) string {
	if b, ok := cp.keys.Binding(def.Name); ok && len(b.Keys()) > 0 {
		return b.Keys()[0]
	}
	return def.Defaults[0]
}

// availableActions drops row actions that cannot apply to row
func availableActions(row *controller.Row) []KeyDefinition {
	var actions []KeyDefinition
	for _, def := range GetPaletteActions() {
		if _, rowAware := def.Msg.(RowAwareMsg); rowAware && row == nil {
			continue
		}
		switch def.Name {
		case "retry":
			if !row.Expanded || row.DetailStatus != controller.DetailFailed {
				continue
			}
		case "open_profile":
			if row.ProfileURL == "" {
				continue
			}
		}
		actions = append(actions, def)
	}
	return actions
}

// filterActions keeps actions matching the input: prefix matches on the help
// text first, then substring matches on help or name, then fuzzy matches.
func (cp *CommandPalette) filterActions() {
	query := strings.ToLower(strings.TrimSpace(cp.filterInput.Value()))
	if query == cp.lastQuery {
		return
	}
	cp.lastQuery = query
	cp.selectedIndex = 0

	if query == "" {
		cp.actions = cp.allActions
		return
	}

	type ranked struct {
		def  KeyDefinition
		rank int
	}
	var matches []ranked
	for _, def := range cp.allActions {
		if rank, ok := matchRank(query, def); ok {
			matches = append(matches, ranked{def: def, rank: rank})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].rank < matches[j].rank
	})

	cp.actions = make([]KeyDefinition, len(matches))
	for i, m := range matches {
		cp.actions[i] = m.def
	}
}

// matchRank scores how well query matches def; lower is better
func matchRank(query string, def KeyDefinition) (int, bool) {
	help := strings.ToLower(def.Help)
	switch {
	case strings.HasPrefix(help, query):
		return 0, true
	case strings.Contains(help, query), strings.Contains(def.Name, query):
		return 1, true
	case fuzzyMatch(query, help):
		return 2, true
	}
	return 0, false
}

// fuzzyMatch checks if all characters in query appear in order in target.
func fuzzyMatch(query, target string) bool {
	target = strings.ToLower(target)
	queryRunes := []rune(query)
	qi := 0
	for _, c := range target {
		if qi < len(queryRunes) && c == queryRunes[qi] {
			qi++
		}
	}
	return qi == len(queryRunes)
}

// maxHelpLen uses allActions so alignment stays stable while filtering
func (cp *CommandPalette) maxHelpLen() int {
	maxLen := 0
	for _, def := range cp.allActions {
		maxLen = max(maxLen, len(def.Help))
	}
	return maxLen
}

func (cp *CommandPalette) paletteWidth() int {
	if cp.width > 0 {
		return cp.width
	}
	return 80
}

// visibleRange returns the start and end indices for visible items.
func (cp *CommandPalette) visibleRange() (int, int) {
	total := len(cp.actions)
	if total <= maxVisibleItems {
		return 0, total
	}

	start := max(cp.selectedIndex-maxVisibleItems/2, 0)
	end := start + maxVisibleItems
	if end > total {
		end = total
		start = end - maxVisibleItems
	}
	return start, end
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
