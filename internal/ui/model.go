package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghscout/ghscout/internal/config"
	"github.com/ghscout/ghscout/internal/controller"
	"github.com/ghscout/ghscout/internal/logging"
	"github.com/ghscout/ghscout/internal/pagination"
	"github.com/ghscout/ghscout/internal/ports"
	"github.com/ghscout/ghscout/internal/theme"
)

type uiState int

const (
	stateBrowse uiState = iota
	stateCommandPalette
	stateGoToPage
	stateHelp
	stateHistory
)

// chromeLines is the number of lines around the result body: header (3),
// search box (3), keyword line, summary, pagination bar, error/tip (2) and
// the short help line
const chromeLines = 13

// ModelOptions configures a Model
type ModelOptions struct {
	Backend         SearchBackend
	DevMode         bool
	ErrorClearDelay time.Duration
	HistoryLimit    int
	InitialKeyword  string
	Keys            config.KeyBindingsConfig
	Opener          ports.URLOpener // nil disables opening profiles
	PageSize        int
	RequestTimeout  time.Duration
	Tips            TipsConfig
}

// Model is the result browser: a search box, one page of users with lazily
// loaded repositories, and a page selector
type Model struct {
	commandPalette *CommandPalette
	currentTip     *Tip
	cursor         int
	devMode        bool
	errorManager   *ErrorManager
	goToPageForm   *Dialog
	height         int
	helpScreen     *Dialog
	historyLimit   int
	historyPicker  *Dialog
	initialKeyword string
	input          textinput.Model
	keys           KeyMap
	now            func() time.Time
	opener         ports.URLOpener
	session        controller.State
	spinner        spinner.Model
	spinning       bool
	state          uiState
	tasks          *TaskRunner
	tipsConfig     TipsConfig
	width          int
}

// NewModel creates the result browser
func NewModel(opts ModelOptions) *Model {
	input := textinput.New()
	input.Prompt = "Search: "
	input.PromptStyle = theme.SearchPromptStyle
	input.Placeholder = "Enter username"
	input.CharLimit = 256
	input.SetValue(opts.InitialKeyword)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	m := &Model{
		devMode:        opts.DevMode,
		errorManager:   NewErrorManager(opts.ErrorClearDelay),
		historyLimit:   opts.HistoryLimit,
		initialKeyword: strings.TrimSpace(opts.InitialKeyword),
		input:          input,
		keys:           NewKeyMap(opts.Keys),
		now:            time.Now,
		opener:         opts.Opener,
		session:        controller.New(opts.PageSize),
		spinner:        s,
		state:          stateBrowse,
		tasks:          NewTaskRunner(opts.Backend, opts.RequestTimeout),
		tipsConfig:     opts.Tips,
	}

	if m.initialKeyword == "" {
		m.input.Focus()
	}
	if m.tipsConfig.Enabled {
		m.currentTip = randomTip()
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}

	if m.initialKeyword != "" {
		cmds = append(cmds, m.apply(controller.SubmitSearch{Keyword: m.initialKeyword}))
	}

	if m.tipsConfig.Enabled && m.currentTip != nil {
		cmds = append(cmds, m.tipTick(m.tipsConfig.DisplayDurationSeconds, hideTipMsg{}))
	}

	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.input.Width = max(size.Width-len(m.input.Prompt)-6, 10)
	}

	// Results and timers must reach the session whatever screen is open
	switch msg := msg.(type) {
	case controller.SearchResult:
		return m, m.apply(msg)
	case controller.DetailResult:
		return m, m.apply(msg)
	case spinner.TickMsg:
		return m, m.tickSpinner(msg)
	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil
	case showTipMsg:
		return m, m.showTip()
	case hideTipMsg:
		m.currentTip = nil
		if !m.tipsConfig.Enabled {
			return m, nil
		}
		return m, m.tipTick(m.tipsConfig.ShowIntervalSeconds, showTipMsg{})
	}

	switch m.state {
	case stateBrowse:
		return m.updateBrowse(msg)
	case stateCommandPalette:
		return m.updateCommandPalette(msg)
	case stateGoToPage:
		return m.updateGoToPage(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateHistory:
		return m.updateHistory(msg)
	}
	return m, nil
}

func (m *Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		return m, tea.Quit

	case ShowHelpMsg:
		m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys), m.devMode)
		m.state = stateHelp
		// The viewport needs a size before it can render
		initCmd := m.helpScreen.Init()
		updated, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.helpScreen = updated.(*Dialog)
		return m, tea.Batch(initCmd, sizeCmd)

	case ShowHistoryMsg:
		return m, m.tasks.LoadHistory(m.historyLimit)

	case historyLoadedMsg:
		if msg.Err != nil {
			return m, m.errorManager.Show(msg.Err)
		}
		if len(msg.Entries) == 0 {
			return m, m.errorManager.Show(errors.New("no recent searches yet"))
		}
		m.historyPicker = NewDialog("Search history", NewHistoryPicker(msg.Entries, m.now()), m.devMode)
		m.state = stateHistory
		return m, m.historyPicker.Init()

	case ClearHistoryMsg:
		return m, m.tasks.ClearHistory()

	case historyClearedMsg:
		if msg.Err != nil {
			return m, m.errorManager.Show(msg.Err)
		}
		logging.Logger.Info("Search history cleared from the browser")
		return m, nil

	case ShowGoToPageMsg:
		totalPages := m.session.TotalPages()
		if m.session.Status != controller.StatusReady || totalPages == 0 {
			return m, nil
		}
		m.goToPageForm = NewDialog("Go to page", NewGoToPageForm(m.session.CurrentPage, totalPages), m.devMode)
		m.state = stateGoToPage
		return m, m.goToPageForm.Init()

	case FocusSearchMsg:
		return m, m.input.Focus()

	case PrevPageMsg:
		return m, m.apply(controller.PrevPage{})

	case NextPageMsg:
		return m, m.apply(controller.NextPage{})

	case RetryDetailMsg:
		return m, m.apply(controller.RetryDetail{Identity: msg.Identity})

	case OpenProfileMsg:
		if msg.URL == "" {
			return m, nil
		}
		return m, OpenProfile(m.opener, msg.Login, msg.URL)

	case profileOpenedMsg:
		if msg.Err != nil {
			return m, m.errorManager.Show(fmt.Errorf("failed to open profile of %s: %w", msg.Login, msg.Err))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Application.ForceQuit.Binding) {
		return m, tea.Quit
	}

	if m.input.Focused() {
		switch {
		case key.Matches(msg, m.keys.Search.Select.Binding):
			keyword := strings.TrimSpace(m.input.Value())
			if keyword != "" {
				m.input.Blur()
			}
			return m, m.apply(controller.SubmitSearch{Keyword: keyword})
		case key.Matches(msg, m.keys.Search.Leave.Binding):
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Results.Up.Binding):
		m.cursor = max(m.cursor-1, 0)
		return m, nil

	case key.Matches(msg, m.keys.Results.Down.Binding):
		m.cursor = min(m.cursor+1, max(m.session.Roster.Len()-1, 0))
		return m, nil

	case key.Matches(msg, m.keys.Search.Select.Binding):
		row := m.selectedRow()
		if row == nil {
			return m, nil
		}
		return m, m.apply(controller.ToggleRow{Identity: row.Identity})

	case key.Matches(msg, m.keys.Application.CommandPalette.Binding):
		m.commandPalette = NewCommandPalette(m.selectedRow(), m.keys)
		m.state = stateCommandPalette
		updated, _ := m.commandPalette.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.commandPalette = updated.(*CommandPalette)
		return m, m.commandPalette.Init()
	}

	for _, def := range AllKeyDefinitions {
		binding, ok := m.keys.Binding(def.Name)
		if !ok || def.Msg == nil || !key.Matches(msg, binding) {
			continue
		}
		if action := NewActionDispatcher(m.selectedRow()).Dispatch(def); action != nil {
			return m.updateBrowse(action)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) updateCommandPalette(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.commandPalette.Update(msg)
	m.commandPalette = updated.(*CommandPalette)

	if !m.commandPalette.Completed {
		return m, cmd
	}

	result := m.commandPalette.Result
	m.state = stateBrowse
	m.commandPalette = nil

	if result.Cancelled || result.Action == nil {
		return m, nil
	}

	if action := NewActionDispatcher(m.selectedRow()).Dispatch(*result.Action); action != nil {
		return m.updateBrowse(action)
	}
	return m, nil
}

func (m *Model) updateGoToPage(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.goToPageForm.Update(msg)
	m.goToPageForm = updated.(*Dialog)

	form, ok := m.goToPageForm.Content().(*GoToPageForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	result := form.Result()
	m.state = stateBrowse
	m.goToPageForm = nil

	if result.Cancelled {
		return m, nil
	}
	return m, m.apply(controller.ChangePage{Token: pagination.Page(result.Page)})
}

func (m *Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.historyPicker.Update(msg)
	m.historyPicker = updated.(*Dialog)

	picker, ok := m.historyPicker.Content().(*HistoryPicker)
	if !ok || !picker.Completed {
		return m, cmd
	}

	result := picker.Result()
	m.state = stateBrowse
	m.historyPicker = nil

	if result.Cancelled || result.Keyword == "" {
		return m, nil
	}

	m.input.SetValue(result.Keyword)
	m.input.Blur()
	return m, m.apply(controller.SubmitSearch{Keyword: result.Keyword})
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if help, ok := m.helpScreen.Content().(*HelpScreen); ok && help.Completed {
		m.state = stateBrowse
		m.helpScreen = nil
		return m, nil
	}
	return m, cmd
}

// apply feeds ev to the controller and starts the requests it asks for
func (m *Model) apply(ev controller.Event) tea.Cmd {
	if result, ok := ev.(controller.SearchResult); ok && result.Generation == m.session.Generation {
		m.cursor = 0
	}

	next, effects := controller.Update(m.session, ev)
	m.session = next
	m.cursor = min(m.cursor, max(m.session.Roster.Len()-1, 0))

	cmds := []tea.Cmd{m.tasks.Run(effects)}
	if len(effects) > 0 && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// tickSpinner advances the spinner while anything is loading and lets it stop otherwise
func (m *Model) tickSpinner(msg spinner.TickMsg) tea.Cmd {
	if !m.loading() {
		m.spinning = false
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

func (m *Model) loading() bool {
	if m.session.Status == controller.StatusLoading {
		return true
	}
	for _, row := range m.session.Roster.Rows() {
		if row.Expanded && row.DetailStatus == controller.DetailLoading {
			return true
		}
	}
	return false
}

func (m *Model) selectedRow() *controller.Row {
	row, ok := m.session.Roster.At(m.cursor)
	if !ok {
		return nil
	}
	return &row
}

func (m *Model) showTip() tea.Cmd {
	// Don't cover an error with a tip; try again later
	if m.errorManager.HasError() {
		return m.tipTick(m.tipsConfig.ShowIntervalSeconds, showTipMsg{})
	}
	m.currentTip = randomTip()
	return m.tipTick(m.tipsConfig.DisplayDurationSeconds, hideTipMsg{})
}

func (m *Model) tipTick(seconds int, msg tea.Msg) tea.Cmd {
	return tea.Tick(time.Duration(seconds)*time.Second, func(time.Time) tea.Msg {
		return msg
	})
}

func (m *Model) View() string {
	switch m.state {
	case stateBrowse:
		return m.browseView()
	case stateCommandPalette:
		if m.commandPalette != nil {
			return bottomAnchoredOverlay(m.browseView(), m.commandPalette.View(), m.width, m.height)
		}
	case stateGoToPage:
		if m.goToPageForm != nil {
			return m.goToPageForm.View()
		}
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	case stateHistory:
		if m.historyPicker != nil {
			return m.historyPicker.View()
		}
	}
	return ""
}

func (m *Model) browseView() string {
	d := controller.Derive(m.session)
	var b strings.Builder

	b.WriteString(renderHeader(m.devMode, ""))

	box := theme.SearchBoxStyle
	if m.input.Focused() {
		box = theme.SearchBoxFocusedStyle
	}
	b.WriteString(box.Render(m.input.View()) + "\n")

	if d.Submitted {
		b.WriteString(theme.NormalStyle.Render(fmt.Sprintf("Showing users for %q", d.Keyword)))
	}
	b.WriteString("\n")

	lines, focus := resultLines(d, m.cursor, m.spinner.View(), m.width)
	if m.height > 0 {
		lines = fitLines(lines, focus, max(m.height-chromeLines, 3))
	}
	b.WriteString(strings.Join(lines, "\n") + "\n")

	b.WriteString(theme.SummaryStyle.Render(formatRange(d.From, d.To, d.TotalRows)) + "\n")
	b.WriteString(paginationBar(d) + "\n")

	// Bottom section: error takes priority over tip
	if m.errorManager.HasError() {
		b.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width)))
	} else if m.currentTip != nil {
		b.WriteString(RenderTip(*m.currentTip) + "\n ")
	} else {
		b.WriteString(" \n ")
	}
	b.WriteString("\n" + m.shortHelp())

	return b.String()
}

func (m *Model) shortHelp() string {
	var parts []string
	for _, binding := range m.keys.ShortHelp() {
		help := binding.Help()
		parts = append(parts, theme.HelpShortcutStyle.Render(help.Key)+" "+theme.HelpLabelStyle.Render(help.Desc))
	}
	return strings.Join(parts, theme.HelpLabelStyle.Render(" • "))
}
