// Package strfmt interpolates {name} placeholders in user-supplied
// format templates. A placeholder may carry a format spec,
// {name:[[fill]align][width][.precision]}, where align is one of
// '<', '>' or '^', width pads the substituted value and precision
// truncates it to that many characters. Doubled braces ({{ and }})
// emit literal braces.
package strfmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/tinyland/lab/streamtab/internal/format"
)

// ErrMissingField is reported when a template references a field the
// record does not carry. Use errors.Is to detect it.
var ErrMissingField = errors.New("strfmt: missing field")

// SyntaxError describes a malformed template.
type SyntaxError struct {
	Template string
	Pos      int
	Reason   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("strfmt: bad template at offset %d: %s", e.Pos, e.Reason)
}

// Formatter interpolates templates against string field maps. The zero
// value is ready to use.
type Formatter struct{}

// New returns a Formatter.
func New() *Formatter {
	return &Formatter{}
}

// Interpolate substitutes every {name[:spec]} placeholder in template
// with the corresponding entry of fields. Referencing an absent field
// fails with ErrMissingField; stray braces fail with *SyntaxError.
func (f *Formatter) Interpolate(template string, fields map[string]string) (string, error) {
	var out strings.Builder
	runes := []rune(template)

	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '{':
			if i+1 < len(runes) && runes[i+1] == '{' {
				out.WriteRune('{')
				i++
				continue
			}
			end := indexFrom(runes, i+1, '}')
			if end < 0 {
				return "", &SyntaxError{Template: template, Pos: i, Reason: "unmatched '{'"}
			}
			expanded, err := expand(template, string(runes[i+1:end]), i, fields)
			if err != nil {
				return "", err
			}
			out.WriteString(expanded)
			i = end
		case '}':
			if i+1 < len(runes) && runes[i+1] == '}' {
				out.WriteRune('}')
				i++
				continue
			}
			return "", &SyntaxError{Template: template, Pos: i, Reason: "unmatched '}'"}
		default:
			out.WriteRune(runes[i])
		}
	}
	return out.String(), nil
}

// expand resolves one placeholder body (the text between braces).
func expand(template, body string, pos int, fields map[string]string) (string, error) {
	name := body
	spec := ""
	if idx := strings.IndexByte(body, ':'); idx >= 0 {
		name, spec = body[:idx], body[idx+1:]
	}
	if name == "" {
		return "", &SyntaxError{Template: template, Pos: pos, Reason: "empty field name"}
	}

	value, ok := fields[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingField, name)
	}
	if spec == "" {
		return value, nil
	}
	return applySpec(template, spec, pos, value)
}

// applySpec applies a [[fill]align][width][.precision] spec to an
// already-stringified value.
func applySpec(template, spec string, pos int, value string) (string, error) {
	runes := []rune(spec)
	fill := ' '
	align := '<'
	i := 0

	// A fill character is only meaningful when followed by an align flag.
	if len(runes) >= 2 && isAlign(runes[1]) {
		fill, align = runes[0], runes[1]
		i = 2
	} else if len(runes) >= 1 && isAlign(runes[0]) {
		align = runes[0]
		i = 1
	}

	width := 0
	start := i
	for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
		i++
	}
	if i > start {
		width, _ = strconv.Atoi(string(runes[start:i]))
	}

	if i < len(runes) && runes[i] == '.' {
		i++
		start = i
		for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
			i++
		}
		if i == start {
			return "", &SyntaxError{Template: template, Pos: pos, Reason: "precision missing digits"}
		}
		precision, _ := strconv.Atoi(string(runes[start:i]))
		value = format.TruncateRunes(value, precision)
	}

	if i < len(runes) {
		return "", &SyntaxError{Template: template, Pos: pos, Reason: fmt.Sprintf("unexpected %q in format spec", string(runes[i:]))}
	}

	return pad(value, fill, align, width), nil
}

func pad(value string, fill, align rune, width int) string {
	n := format.RuneLen(value)
	if n >= width {
		return value
	}
	gap := width - n
	switch align {
	case '>':
		return strings.Repeat(string(fill), gap) + value
	case '^':
		left := gap / 2
		return strings.Repeat(string(fill), left) + value + strings.Repeat(string(fill), gap-left)
	default:
		return value + strings.Repeat(string(fill), gap)
	}
}

func isAlign(r rune) bool {
	return r == '<' || r == '>' || r == '^'
}

func indexFrom(runes []rune, start int, want rune) int {
	for i := start; i < len(runes); i++ {
		if runes[i] == want {
			return i
		}
	}
	return -1
}
