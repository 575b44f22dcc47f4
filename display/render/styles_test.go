package render

import (
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/streamtab/data"
)

func TestZeroStylesRenderPlain(t *testing.T) {
	agg := data.NewAggregate([]string{"k"}, "count", []data.AggregateRow{
		{Keys: map[string]string{"k": "a"}, Value: data.Int(1)},
	})

	plain := NewPrinter(DefaultConfig(), nil, nil).FormatAggregate(agg)
	if strings.Contains(plain, "\x1b[") {
		t.Errorf("zero styles must not emit escape codes: %q", plain)
	}
}

func TestStyledHeaderKeepsContent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Styles = DefaultStyles()
	p := NewPrinter(cfg, nil, nil)

	agg := data.NewAggregate([]string{"k"}, "count", []data.AggregateRow{
		{Keys: map[string]string{"k": "a"}, Value: data.Int(1)},
	})
	out := p.FormatAggregate(agg)
	if !strings.Contains(out, "k") || !strings.Contains(out, "count") {
		t.Errorf("styled header lost its content: %q", out)
	}
	if !strings.Contains(out, "----") {
		t.Errorf("separator line missing: %q", out)
	}
}
