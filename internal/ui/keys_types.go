package ui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ghscout/ghscout/internal/theme"
)

// Tip holds a tip format string and the keys to highlight
type Tip struct {
	Format string
	Keys   []string
}

// tips is the collection built by newTip while the key map is constructed
var tips []Tip

// newTip registers a tip, e.g. newTip("press %s to page back", "left")
func newTip(format string, keys ...string) string {
	tips = append(tips, Tip{Format: format, Keys: keys})
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	return fmt.Sprintf(format, args...)
}

// GetTips returns all registered tips
func GetTips() []Tip {
	return tips
}

// resetTips drops registered tips so a rebuilt key map does not duplicate them
func resetTips() {
	tips = nil
}

// randomTip picks one of the registered tips, nil when there are none
func randomTip() *Tip {
	if len(tips) == 0 {
		return nil
	}
	tip := tips[rand.Intn(len(tips))]
	return &tip
}

// RenderTip formats a tip with highlighted keys and gray text
func RenderTip(tip Tip) string {
	parts := strings.Split(tip.Format, "%s")
	var b strings.Builder
	b.WriteString(theme.TipTextStyle.Render("ℹ  tip: "))
	for i, part := range parts {
		b.WriteString(theme.TipTextStyle.Render(part))
		if i < len(tip.Keys) {
			b.WriteString(theme.TipKeyStyle.Render(tip.Keys[i]))
		}
	}
	return b.String()
}

// KeyWithTip wraps a key.Binding with an optional tip for rotating tips display.
type KeyWithTip struct {
	Binding key.Binding
	Tip     string
}

// TipsConfig holds configuration for the tips feature
type TipsConfig struct {
	DisplayDurationSeconds int
	Enabled                bool
	ShowIntervalSeconds    int
}

// DefaultTipsConfig shows a tip for 8 seconds every 30 seconds
var DefaultTipsConfig = TipsConfig{
	DisplayDurationSeconds: 8,
	Enabled:                true,
	ShowIntervalSeconds:    30,
}
