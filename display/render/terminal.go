// This file provides terminal size detection utilities.

package render

import (
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// TermSize is a terminal dimension snapshot, taken once at renderer
// construction. A mid-run resize is deliberately not observed.
type TermSize struct {
	Width  int
	Height int
}

// DefaultWidth is the aggregate width budget when no terminal size is
// known (piped output).
const DefaultWidth = 240

// ProbeTerminal samples the dimensions of out exactly once. The second
// return value reports whether out is an interactive terminal. When out
// is not a terminal the COLUMNS/LINES environment variables are
// consulted so piped runs under a shell still get a width budget; if
// neither is set, size is nil.
func ProbeTerminal(out io.Writer) (*TermSize, bool) {
	if f, ok := out.(*os.File); ok {
		if w, h, err := term.GetSize(f.Fd()); err == nil && w > 0 && h > 0 {
			return &TermSize{Width: w, Height: h}, true
		}
	}

	var size TermSize
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			size.Width = w
		}
	}
	if lines := os.Getenv("LINES"); lines != "" {
		if h, err := strconv.Atoi(lines); err == nil && h > 0 {
			size.Height = h
		}
	}
	if size.Width == 0 {
		return nil, false
	}
	if size.Height == 0 {
		size.Height = 24
	}
	return &size, false
}
