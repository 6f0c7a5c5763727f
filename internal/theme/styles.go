package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Search input styles
var (
	SearchPromptStyle = lipgloss.NewStyle().
				Foreground(ColorHintKey).
				Bold(true)

	SearchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	SearchBoxFocusedStyle = SearchBoxStyle.
				BorderForeground(ColorPrimary)
)

// Result list styles
var (
	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorCursor).
			Bold(true)

	LoginStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	ProfileURLStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SummaryStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Padding(0, 0, 1, 0)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// Repository panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(ColorMuted).
			PaddingLeft(1).
			MarginLeft(4)

	RepoNameStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	RepoDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	LanguageStyle = lipgloss.NewStyle().
			Foreground(ColorLanguage)

	StarsStyle = lipgloss.NewStyle().
			Foreground(ColorStars)

	PanelErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// Pagination bar styles
var (
	PageStyle = lipgloss.NewStyle().
			Foreground(ColorNormal).
			Padding(0, 1)

	PageCurrentStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Background(ColorPageCurrent).
				Bold(true).
				Padding(0, 1)

	PageDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorPageDisabled).
				Padding(0, 1)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)

	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)
)

// Tip styles
var (
	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// Command palette styles
var (
	DimmedStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	ScrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(ColorScrollIndicator)

	PaletteBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.Border{Top: "─", Bottom: "─"}).
				BorderForeground(ColorMuted).
				Padding(0, 1)

	PaletteDescStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(ColorHintKey)

	FilterCursorStyle = lipgloss.NewStyle().
				Foreground(ColorSpinner)

	PaletteTitleStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	PaletteItemStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	PaletteShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)
)
