// Package format provides shared string and time formatting utilities.
package format

import "strings"

// Ellipsis marks truncated cell content. A single rune, so a truncated
// cell loses exactly one trailing character to the marker.
const Ellipsis = "…"

// Fit forces s into exactly width runes. Over-long input is cut to
// width-2 runes followed by the ellipsis marker and one space; shorter
// input is right-padded with spaces. Widths below len(Ellipsis)+1 leave
// no room for the marker, so content is hard-truncated instead.
func Fit(s string, width int) string {
	if width < 0 {
		width = 0
	}
	runes := []rune(s)
	if len(runes) > width {
		keep := width - len([]rune(Ellipsis)) - 1
		if keep < 0 {
			return string(runes[:width])
		}
		return string(runes[:keep]) + Ellipsis + " "
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// TruncateRunes truncates a string to maxLen runes (Unicode-aware).
// Returns the full string if it's shorter than maxLen runes.
func TruncateRunes(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// PadRight pads s with spaces to width runes. Strings already at or
// beyond width are returned unchanged.
func PadRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// RuneLen returns the number of Unicode scalar values in s. Column
// bookkeeping counts runes, never bytes.
func RuneLen(s string) int {
	return len([]rune(s))
}
