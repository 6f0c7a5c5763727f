package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles, logins
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorCursor    Color = "212" // Pink - selected row marker
	ColorHelpGroup Color = "141" // Purple
	ColorHintKey   Color = "226" // Yellow
	ColorLanguage  Color = "178" // Gold - repository language
	ColorSpinner   Color = "205" // Pink
	ColorStars     Color = "214" // Orange - star counts
)

// Pagination colors
const (
	ColorPageCurrent  Color = "99"  // Purple background
	ColorPageDisabled Color = "238" // Dark gray
)

// Command palette colors
const (
	ColorDimmed          Color = "238"
	ColorPaletteSelected Color = "237"
	ColorScrollIndicator Color = "241"
)
