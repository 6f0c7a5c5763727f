package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ghscout/ghscout/internal/theme"
)

// bottomAnchoredOverlay renders overlay over the last lines of a dimmed background
func bottomAnchoredOverlay(background, overlay string, width, height int) string {
	bgLines := dimBackground(background, width, height)
	overlayLines := strings.Split(overlay, "\n")

	startY := max(len(bgLines)-len(overlayLines), 0)
	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		bgLines[y] = line
	}

	return strings.Join(bgLines, "\n")
}

// dimBackground strips styling from background, dims it and pads it to the
// terminal size
func dimBackground(background string, width, height int) []string {
	lines := strings.Split(background, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}

	for i := range lines {
		dimmed := theme.DimmedStyle.Render(stripAnsi(lines[i]))
		if w := lipgloss.Width(dimmed); w < width {
			dimmed += strings.Repeat(" ", width-w)
		}
		lines[i] = dimmed
	}
	return lines
}

// stripAnsi removes ANSI escape codes from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false

	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			// SGR and most CSI sequences end with a letter
			if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
				inEscape = false
			}
			continue
		}
		result.WriteByte(s[i])
	}

	return result.String()
}
