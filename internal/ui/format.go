package ui

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var countPrinter = message.NewPrinter(language.English)

// formatCount renders n with thousands separators, e.g. 1,234,567
func formatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// formatRange renders the "Showing X to Y of N results" line
func formatRange(from, to, total int) string {
	return fmt.Sprintf("Showing %s to %s of %s results", formatCount(from), formatCount(to), formatCount(total))
}

// formatAgo renders how long ago t was, coarsely
func formatAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
