package render

import "github.com/charmbracelet/lipgloss"

// Styles decorates the aggregate table chrome on capable terminals.
// The zero value renders plain text, which keeps output byte-stable on
// dumb terminals and in pipes.
type Styles struct {
	// Header is applied to the column-name line.
	Header lipgloss.Style
	// Separator is applied to the dash line under the header.
	Separator lipgloss.Style
}

// DefaultStyles returns a bold header with a plain separator.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true),
	}
}
