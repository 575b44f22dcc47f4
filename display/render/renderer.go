package render

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/streamtab/data"
)

// eraseLine clears the current terminal line and moves the cursor up
// one row. Repeated once per line of the previous render, it rewinds
// the cursor to where that render started.
const eraseLine = "\x1b[2K\x1b[1A"

// Options configures a Renderer.
type Options struct {
	// Config holds layout and value-rendering settings.
	Config Config
	// Interpolator expands the record format template, if one is set.
	Interpolator Interpolator
	// UpdateInterval is the minimum delay between live redraws of an
	// in-progress aggregate.
	UpdateInterval time.Duration
	// Terminal is the size snapshot for the output, nil when unknown.
	Terminal *TermSize
	// Live marks the output as an interactive terminal, enabling
	// throttled in-place redraw. Non-live outputs only ever receive the
	// final aggregate.
	Live bool
	// Logger receives diagnostics; it must not share the output stream.
	Logger *slog.Logger
}

// Renderer drives a Printer against one output stream. Records pass
// straight through; aggregate snapshots are throttled and redrawn in
// place on live terminals, or held back until the final snapshot
// elsewhere. A Renderer exclusively owns its output stream.
type Renderer struct {
	printer  *Printer
	out      io.Writer
	interval time.Duration
	live     bool
	logger   *slog.Logger

	resetSequence string
	lastPrint     time.Time
	printed       bool

	now func() time.Time
}

// New creates a renderer writing to out. Callers probe the terminal
// once via ProbeTerminal and pass the snapshot in opts; the renderer
// never re-queries terminal state mid-stream.
func New(out io.Writer, opts Options) *Renderer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Renderer{
		printer:  NewPrinter(opts.Config, opts.Terminal, opts.Interpolator),
		out:      out,
		interval: opts.UpdateInterval,
		live:     opts.Live,
		logger:   logger,
		now:      time.Now,
	}
}

// Render handles one unit from the pipeline. last marks the final unit
// of a finite stream and forces an aggregate flush regardless of
// throttle or liveness. Template failures come back as *TemplateError
// and leave the stream usable; write failures are fatal for this call.
func (r *Renderer) Render(row data.Row, last bool) error {
	switch unit := row.(type) {
	case *data.Aggregate:
		return r.renderAggregate(unit, last)
	case *data.Record:
		out, err := r.printer.FormatRecord(unit)
		if err != nil {
			r.logger.Warn("record dropped", "error", err)
			return err
		}
		if _, err := fmt.Fprintln(r.out, out); err != nil {
			return fmt.Errorf("render: write record: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("render: unknown row type %T", row)
	}
}

func (r *Renderer) renderAggregate(agg *data.Aggregate, last bool) error {
	if !r.live {
		if !last {
			return nil
		}
		output := r.printer.FormatAggregate(agg)
		if _, err := io.WriteString(r.out, output); err != nil {
			return fmt.Errorf("render: write aggregate: %w", err)
		}
		return nil
	}

	if !r.shouldPrint() && !last {
		return nil
	}

	output := r.printer.FormatAggregate(agg)
	numLines := strings.Count(output, "\n")
	if _, err := io.WriteString(r.out, r.resetSequence+output); err != nil {
		return fmt.Errorf("render: write aggregate: %w", err)
	}
	r.resetSequence = strings.Repeat(eraseLine, numLines)
	r.lastPrint = r.now()
	r.printed = true
	return nil
}

// shouldPrint reports whether a live redraw is due: always for the
// first one, then only once the update interval has elapsed. The
// comparison rides time.Time's monotonic reading, so wall-clock jumps
// don't starve or flood the terminal.
func (r *Renderer) shouldPrint() bool {
	if !r.live {
		return false
	}
	if !r.printed {
		return true
	}
	return r.now().Sub(r.lastPrint) > r.interval
}
