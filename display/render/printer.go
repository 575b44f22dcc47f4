// Package render turns records and aggregate snapshots into terminal
// output. The Printer owns cumulative column layout state; the Renderer
// wraps it with write throttling and in-place redraw on live terminals.
package render

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"gitlab.com/tinyland/lab/streamtab/data"
	"gitlab.com/tinyland/lab/streamtab/internal/format"
)

// Config holds layout and value-rendering settings.
type Config struct {
	// FloatingPoints is the number of decimal places for float values.
	FloatingPoints int
	// MinBuffer is the slack under which a column keeps its current width.
	MinBuffer int
	// MaxBuffer is the slack granted when a column width grows. Growth
	// jumps straight to value length + MaxBuffer so repeated small
	// resizes don't churn the layout.
	MaxBuffer int
	// Format is an optional record template. When empty, records render
	// as aligned [name=value] columns.
	Format string
	// Styles decorates aggregate header lines. The zero value renders
	// plain text.
	Styles Styles
}

// DefaultConfig returns the built-in render settings.
func DefaultConfig() Config {
	return Config{
		FloatingPoints: 2,
		MinBuffer:      1,
		MaxBuffer:      4,
	}
}

// Interpolator expands a record template against stringified fields.
// It is satisfied by *strfmt.Formatter; the engine itself has no
// dependency on a particular template implementation.
type Interpolator interface {
	Interpolate(template string, fields map[string]string) (string, error)
}

// TemplateError reports a record that could not be rendered through the
// configured format template. It is returned to the caller rather than
// aborting the stream; the record it covers is simply not written.
type TemplateError struct {
	Template string
	Err      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("render: template %q: %v", e.Template, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// Printer computes and remembers column layout across calls. Column
// widths only ever grow, except for the single overflow-triggered reset
// on the record path and shrink-to-fit on the aggregate path. Each
// Printer instance owns its state; independent printers never interfere.
type Printer struct {
	config       Config
	interp       Interpolator
	termSize     *TermSize
	columnWidths map[string]int
	columnOrder  []string
}

// NewPrinter creates a layout engine. termSize may be nil when no
// terminal size is known; interp may be nil when Config.Format is empty.
func NewPrinter(cfg Config, termSize *TermSize, interp Interpolator) *Printer {
	return &Printer{
		config:       cfg,
		interp:       interp,
		termSize:     termSize,
		columnWidths: map[string]int{},
	}
}

// computeColumnWidths returns the post-growth width for every field
// present in fields, leaving the printer's own state untouched.
func (p *Printer) computeColumnWidths(fields map[string]data.Value) map[string]int {
	widths := make(map[string]int, len(fields))
	for name, value := range fields {
		current := p.columnWidths[name]
		valueLen := format.RuneLen(value.Render(p.config.FloatingPoints))
		if nameLen := format.RuneLen(name); nameLen > valueLen {
			valueLen = nameLen
		}
		if valueLen+p.config.MinBuffer > current {
			// Resizing anyway, so go straight to the generous bound.
			widths[name] = valueLen + p.config.MaxBuffer
		} else {
			widths[name] = current
		}
	}
	return widths
}

// newColumns returns the field names not yet tracked, sorted so the
// append order is deterministic.
func (p *Printer) newColumns(fields map[string]data.Value) []string {
	var names []string
	for name := range fields {
		if !p.tracked(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (p *Printer) tracked(name string) bool {
	for _, n := range p.columnOrder {
		if n == name {
			return true
		}
	}
	return false
}

// projectedWidth is the full width of a padded record line: per column,
// its width plus the name and the three framing characters "[=]".
func projectedWidth(columnWidths map[string]int) int {
	total := 0
	for name, width := range columnWidths {
		total += width + format.RuneLen(name) + 3
	}
	return total
}

func (p *Printer) overflowsTerm() bool {
	if p.termSize == nil {
		return false
	}
	return projectedWidth(p.columnWidths) > p.termSize.Width
}

// FormatRecord renders one record, dispatching to the configured
// template or the columnar layout.
func (p *Printer) FormatRecord(record *data.Record) (string, error) {
	if p.config.Format != "" {
		return p.formatRecordTemplate(record)
	}
	return p.formatRecordColumns(record), nil
}

func (p *Printer) formatRecordTemplate(record *data.Record) (string, error) {
	if p.interp == nil {
		return "", &TemplateError{Template: p.config.Format, Err: fmt.Errorf("no interpolator configured")}
	}
	out, err := p.interp.Interpolate(p.config.Format, record.DisplayFields())
	if err != nil {
		return "", &TemplateError{Template: p.config.Format, Err: err}
	}
	return out, nil
}

// formatRecordColumns renders a record as aligned [name=value] cells,
// growing the persistent layout first. If the projected line no longer
// fits the terminal, the accumulated layout is discarded once and
// recomputed from this record alone; if even that overflows, padding is
// dropped for this call only.
func (p *Printer) formatRecordColumns(record *data.Record) string {
	for name, width := range p.computeColumnWidths(record.Fields) {
		p.columnWidths[name] = width
	}
	p.columnOrder = append(p.columnOrder, p.newColumns(record.Fields)...)

	if len(p.columnOrder) == 0 {
		return strings.TrimRightFunc(record.Raw, unicode.IsSpace)
	}

	noPadding := false
	if p.overflowsTerm() {
		p.columnWidths = map[string]int{}
		p.columnWidths = p.computeColumnWidths(record.Fields)
		p.columnOrder = nil
		p.columnOrder = p.newColumns(record.Fields)
		noPadding = p.overflowsTerm()
	}

	var line strings.Builder
	for _, name := range p.columnOrder {
		cell := ""
		if value, ok := record.Fields[name]; ok {
			cell = fmt.Sprintf("[%s=%s]", name, value.Render(p.config.FloatingPoints))
		}
		if !noPadding {
			cell = format.PadRight(cell, format.RuneLen(name)+3+p.columnWidths[name])
		}
		line.WriteString(cell)
	}
	return strings.TrimSpace(line.String())
}

// maxWidth is the width budget for aggregate tables.
func (p *Printer) maxWidth() int {
	if p.termSize == nil {
		return DefaultWidth
	}
	return p.termSize.Width
}

// fitsWidthBudget reports whether the sum of every tracked column width
// is within the aggregate budget.
func (p *Printer) fitsWidthBudget() bool {
	used := 0
	for _, w := range p.columnWidths {
		used += w
	}
	return used <= p.maxWidth()
}

// resizeToFit shrinks column widths to the budget with a single
// left-to-right greedy pass over ordering: at position i each column may
// claim up to remaining/(tracked-i); narrower columns keep their width
// and later columns absorb the slack. The pass is intentionally
// order-dependent, not globally fair, and the divisor intentionally
// counts every tracked column, stale ones included.
func (p *Printer) resizeToFit(columnWidths map[string]int, ordering []string) map[string]int {
	if p.fitsWidthBudget() {
		resized := make(map[string]int, len(columnWidths))
		for name, width := range columnWidths {
			resized[name] = width
		}
		return resized
	}

	remaining := p.maxWidth()
	tracked := len(p.columnWidths)
	resized := make(map[string]int, len(ordering))
	for i, name := range ordering {
		width := columnWidths[name]
		fairShare := remaining / (tracked - i)
		if width < fairShare {
			remaining -= width
			resized[name] = width
		} else {
			remaining -= fairShare
			resized[name] = fairShare
		}
	}
	return resized
}

// FormatAggregate renders a complete aggregate snapshot as a header,
// dash separator and one line per row, shrunk to the width budget and
// clipped to the terminal height. The returned text always ends in a
// newline.
func (p *Printer) FormatAggregate(agg *data.Aggregate) string {
	if len(agg.Rows) == 0 {
		return "No data\n"
	}

	for _, row := range agg.Rows {
		for name, width := range p.computeColumnWidths(row) {
			p.columnWidths[name] = width
		}
	}

	p.columnWidths = p.resizeToFit(p.columnWidths, agg.Columns)
	if !p.fitsWidthBudget() {
		panic(fmt.Sprintf("render: column widths %v exceed budget %d after resize", p.columnWidths, p.maxWidth()))
	}

	var header strings.Builder
	for _, name := range agg.Columns {
		header.WriteString(format.PadRight(name, p.columnWidths[name]))
	}
	headerLen := format.RuneLen(header.String())

	lines := make([]string, 0, len(agg.Rows)+2)
	lines = append(lines, p.config.Styles.Header.Render(strings.TrimSpace(header.String())))
	lines = append(lines, p.config.Styles.Separator.Render(strings.Repeat("-", headerLen)))
	for _, row := range agg.Rows {
		lines = append(lines, p.formatAggregateRow(agg.Columns, row))
	}

	if p.termSize != nil && p.termSize.Height > 0 && len(lines) > p.termSize.Height-1 {
		lines = lines[:p.termSize.Height-1]
	}
	return strings.Join(lines, "\n") + "\n"
}

func (p *Printer) formatAggregateRow(columns []string, row map[string]data.Value) string {
	var line strings.Builder
	for _, name := range columns {
		value, ok := row[name]
		if !ok {
			value = data.None{}
		}
		line.WriteString(format.Fit(value.Render(p.config.FloatingPoints), p.columnWidths[name]))
	}
	return strings.TrimSpace(line.String())
}
