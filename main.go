// streamtab renders a stream of structured output to the terminal.
//
// It reads lines from stdin, parses JSON objects into field records and
// prints them as aligned [name=value] cells whose column layout adapts
// to the terminal width. With -count-by it additionally maintains a
// grouped count table, live-updated in place on interactive terminals
// and printed once at EOF everywhere else.
//
// Usage:
//
//	streamtab [flags] < input.jsonl
//
// Flags:
//
//	-config string     Path to configuration file
//	-format string     Record template, e.g. "{level:<7} {msg}"
//	-precision int     Decimal places for float values (default 2)
//	-interval string   Minimum delay between live table redraws (default 100ms)
//	-count-by string   Comma-separated field names to count records by
//	-term-width int    Terminal width override (0 = auto-detect)
//	-term-height int   Terminal height override (0 = auto-detect)
//	-verbose           Enable verbose logging
//	-version           Print version and exit
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gitlab.com/tinyland/lab/streamtab/config"
	"gitlab.com/tinyland/lab/streamtab/display/render"
	"gitlab.com/tinyland/lab/streamtab/pipeline"
	"gitlab.com/tinyland/lab/streamtab/strfmt"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		formatFlag  = flag.String("format", "", "Record template, e.g. \"{level:<7} {msg}\"")
		precision   = flag.Int("precision", -1, "Decimal places for float values (default 2)")
		interval    = flag.String("interval", "", "Minimum delay between live table redraws (default 100ms)")
		countBy     = flag.String("count-by", "", "Comma-separated field names to count records by")
		termWidth   = flag.Int("term-width", 0, "Terminal width override (0 = auto-detect)")
		termHeight  = flag.Int("term-height", 0, "Terminal height override (0 = auto-detect)")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("streamtab %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("configuration failed", "error", err)
		os.Exit(1)
	}
	applyFlags(cfg, *formatFlag, *precision, *interval)
	if err := cfg.Validate(); err != nil {
		logger.Error("configuration failed", "error", err)
		os.Exit(1)
	}
	updateInterval, _ := cfg.Interval()

	size, live := render.ProbeTerminal(os.Stdout)
	if *termWidth > 0 {
		if size == nil {
			size = &render.TermSize{Height: 24}
		}
		size.Width = *termWidth
	}
	if *termHeight > 0 {
		if size == nil {
			size = &render.TermSize{Width: render.DefaultWidth}
		}
		size.Height = *termHeight
	}
	logger.Debug("terminal probed", "live", live, "size", size)

	// Styled table chrome only on a live terminal; piped output stays
	// byte-plain.
	var styles render.Styles
	if live {
		styles = render.DefaultStyles()
	}

	renderer := render.New(os.Stdout, render.Options{
		Config: render.Config{
			FloatingPoints: cfg.Render.FloatingPoints,
			MinBuffer:      cfg.Render.MinBuffer,
			MaxBuffer:      cfg.Render.MaxBuffer,
			Format:         cfg.Render.Format,
			Styles:         styles,
		},
		Interpolator:   strfmt.New(),
		UpdateInterval: updateInterval,
		Terminal:       size,
		Live:           live,
		Logger:         logger,
	})

	var aggregator *pipeline.CountAggregator
	if *countBy != "" {
		aggregator = pipeline.NewCountAggregator(splitFields(*countBy))
	}

	if err := run(os.Stdin, renderer, aggregator, logger); err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
}

// run feeds stdin through the renderer line by line. Template errors
// skip the offending record and keep the stream going; anything else
// is fatal.
func run(in io.Reader, renderer *render.Renderer, aggregator *pipeline.CountAggregator, logger *slog.Logger) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		record := pipeline.ParseLine(scanner.Text())

		if aggregator != nil {
			aggregator.Push(record)
			if err := renderer.Render(aggregator.Snapshot(), false); err != nil {
				return err
			}
			continue
		}

		if err := renderer.Render(record, false); err != nil {
			var tmplErr *render.TemplateError
			if errors.As(err, &tmplErr) {
				logger.Debug("record skipped", "error", tmplErr)
				continue
			}
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if aggregator != nil {
		return renderer.Render(aggregator.Snapshot(), true)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

// applyFlags layers command-line overrides on top of the file config.
func applyFlags(cfg *config.Config, format string, precision int, interval string) {
	if format != "" {
		cfg.Render.Format = format
	}
	if precision >= 0 {
		cfg.Render.FloatingPoints = precision
	}
	if interval != "" {
		cfg.UpdateInterval = interval
	}
}

func splitFields(s string) []string {
	parts := strings.Split(s, ",")
	fields := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}
