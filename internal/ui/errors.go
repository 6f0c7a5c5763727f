package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
	minLineWidth   = 10
)

// formatErrorForDisplay formats an error for the bottom line: "Error: " prefix,
// wrapped to maxWidth and cut to maxErrorLines.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	message := err.Error()
	if message == "" {
		message = "unknown error"
	}
	return wrapText(errorPrefix, message, maxWidth, maxErrorLines)
}

// wrapText word-wraps prefix+message to maxWidth columns and keeps at most
// maxLines lines, marking a cut with "...". The prefix only shortens the first line.
func wrapText(prefix, message string, maxWidth, maxLines int) string {
	words := strings.Fields(message)
	if len(words) == 0 {
		return prefix + message
	}

	firstLineWidth := max(maxWidth-utf8.RuneCountInString(prefix), minLineWidth)
	otherLineWidth := max(maxWidth, minLineWidth)

	var lines []string
	var current strings.Builder
	lineWidth := firstLineWidth
	truncated := false

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		currentLen := utf8.RuneCountInString(current.String())

		if currentLen > 0 && currentLen+1+wordLen > lineWidth {
			lines = append(lines, current.String())
			current.Reset()
			if len(lines) >= maxLines {
				truncated = true
				break
			}
			lineWidth = otherLineWidth
		}

		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}

	if current.Len() > 0 && len(lines) < maxLines {
		lines = append(lines, current.String())
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		room := otherLineWidth - utf8.RuneCountInString(truncationMark)
		if len(lines) == 1 {
			room = firstLineWidth - utf8.RuneCountInString(truncationMark)
		}
		if room > 0 && len(last) > room {
			last = last[:room]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return prefix + strings.Join(lines, "\n")
}
