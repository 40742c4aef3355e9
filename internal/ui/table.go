package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Columns arranges matches into a terminal_width-constrained grid for
// double-tab completion display (spec.md §4.5): column width is the
// longest match plus 2, and the number of columns is
// floor(terminal_width / column_width), at least 1.
func Columns(matches []string, terminalWidth int) string {
	if len(matches) == 0 {
		return ""
	}

	maxLen := 0
	for _, m := range matches {
		if w := VisibleLen(m); w > maxLen {
			maxLen = w
		}
	}
	colWidth := maxLen + 2

	cols := terminalWidth / colWidth
	if cols < 1 {
		cols = 1
	}

	var b strings.Builder
	for i, m := range matches {
		b.WriteString(m)
		if (i+1)%cols == 0 || i == len(matches)-1 {
			b.WriteByte('\n')
		} else {
			b.WriteString(strings.Repeat(" ", colWidth-VisibleLen(m)))
		}
	}
	return b.String()
}

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

// VisibleLen returns the display width of a string, excluding ANSI codes.
func VisibleLen(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}
