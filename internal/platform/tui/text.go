package tui

import (
	"fmt"
	"strings"
)

// TextAlign positions HUD text relative to its anchor column.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// glyphs is the character set the HUD can display. Anything outside it
// renders as '?' so a typo in a label shows up instead of vanishing.
const glyphs = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .,!?:;-='\"<>%()/"

// Sanitize maps text onto the HUD glyph set: lowercase folds to uppercase,
// unsupported runes become '?'.
func Sanitize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range strings.ToUpper(text) {
		if strings.ContainsRune(glyphs, r) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('?')
		}
	}
	return sb.String()
}

// FormatScore renders a score as the fixed six-digit readout.
func FormatScore(score uint32) string {
	return fmt.Sprintf("%06d", score)
}

// AlignX resolves the starting column for text of the given length.
func AlignX(anchor, length int, align TextAlign) int {
	switch align {
	case AlignCenter:
		return anchor - length/2
	case AlignRight:
		return anchor - length
	default:
		return anchor
	}
}

func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
