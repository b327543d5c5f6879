package slither

import (
	"fmt"
	"strings"
)

// formatCodeFrame renders the source line at pos with a gutter and a
// caret under the offending column, the way a compiler diagnostic does.
// It degrades gracefully (returns an empty string) if pos falls outside
// source, which can happen for positions synthesized past end-of-input.
func formatCodeFrame(source string, pos Position) string {
	if pos.Line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}
	line := lines[pos.Line-1]
	gutter := fmt.Sprintf("%5d | ", pos.Line)
	caretCol := pos.Column
	if caretCol < 1 {
		caretCol = 1
	}
	caretLine := strings.Repeat(" ", len(gutter)+caretCol-1) + "^"
	return gutter + line + "\n" + caretLine
}
