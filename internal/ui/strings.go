package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// truncate shortens a string to the given cell width, adding ellipsis if
// needed. Wide kana count as two cells.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || ansi.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return ansi.Truncate(value, limit, "")
	}
	return ansi.Truncate(value, limit, "...")
}

// numberedLines renders items one per line with a right-aligned ordinal.
func numberedLines(items []string, width int) string {
	if len(items) == 0 {
		return ""
	}
	digits := len(strconv.Itoa(len(items)))
	var b strings.Builder
	for i, item := range items {
		n := strconv.Itoa(i + 1)
		b.WriteString(strings.Repeat(" ", digits-len(n)))
		b.WriteString(n)
		b.WriteString("  ")
		b.WriteString(truncate(item, width-digits-2))
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
