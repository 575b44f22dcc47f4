package data

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseValue(t *testing.T) {
	if v, ok := ParseValue("5").(Int); !ok || v != 5 {
		t.Errorf("ParseValue(5) = %#v, want Int(5)", ParseValue("5"))
	}
	if v, ok := ParseValue("5.5000001").(Float); !ok || v != 5.5000001 {
		t.Errorf("ParseValue(5.5000001) = %#v, want Float", ParseValue("5.5000001"))
	}
	if v, ok := ParseValue("str").(Str); !ok || v != "str" {
		t.Errorf("ParseValue(str) = %#v, want Str", ParseValue("str"))
	}
}

func TestRenderPrecision(t *testing.T) {
	if got := Float(5.5000001).Render(2); got != "5.50" {
		t.Errorf("Float.Render(2) = %q, want 5.50", got)
	}
	if got := Float(5.5000001).Render(4); got != "5.5000" {
		t.Errorf("Float.Render(4) = %q, want 5.5000", got)
	}
	if got := Int(955).Render(2); got != "955" {
		t.Errorf("Int.Render = %q, want 955", got)
	}
	if got := (None{}).Render(2); got != "None" {
		t.Errorf("None.Render = %q, want None", got)
	}
	if got := Bool(true).Render(0); got != "true" {
		t.Errorf("Bool.Render = %q, want true", got)
	}
	if got := Duration(90 * time.Second).Render(0); got != "1m 30s" {
		t.Errorf("Duration.Render = %q, want 1m 30s", got)
	}
}

func TestStringKeepsRawForm(t *testing.T) {
	// Templates receive the raw form; precision is applied there as
	// string truncation, so Float.String must not round.
	if got := Float(5.5000001).String(); got != "5.5000001" {
		t.Errorf("Float.String = %q, want 5.5000001", got)
	}
}

func TestFromJSON(t *testing.T) {
	if v, ok := FromJSON(json.Number("42")).(Int); !ok || v != 42 {
		t.Errorf("FromJSON(42) = %#v, want Int(42)", FromJSON(json.Number("42")))
	}
	if v, ok := FromJSON(json.Number("1.25")).(Float); !ok || v != 1.25 {
		t.Errorf("FromJSON(1.25) = %#v, want Float(1.25)", FromJSON(json.Number("1.25")))
	}
	if v, ok := FromJSON("text").(Str); !ok || v != "text" {
		t.Errorf("FromJSON(text) = %#v, want Str", FromJSON("text"))
	}
	if _, ok := FromJSON(nil).(None); !ok {
		t.Errorf("FromJSON(nil) = %#v, want None", FromJSON(nil))
	}
	if v, ok := FromJSON([]any{json.Number("1"), "a"}).(Str); !ok || v != `[1,"a"]` {
		t.Errorf("FromJSON(array) = %#v, want compact JSON text", FromJSON([]any{json.Number("1"), "a"}))
	}
}

func TestDisplayFields(t *testing.T) {
	rec := &Record{Raw: "raw", Fields: map[string]Value{
		"f": Float(5.5000001),
		"s": Str("x"),
	}}
	got := rec.DisplayFields()
	if got["f"] != "5.5000001" || got["s"] != "x" {
		t.Errorf("DisplayFields = %#v", got)
	}
}

func TestNewAggregate(t *testing.T) {
	agg := NewAggregate([]string{"kc1", "kc2"}, "count", []AggregateRow{
		{Keys: map[string]string{"kc1": "k1", "kc2": "k2"}, Value: Int(100)},
	})
	if len(agg.Columns) != 3 || agg.Columns[2] != "count" {
		t.Fatalf("columns = %v", agg.Columns)
	}
	if len(agg.Rows) != 1 {
		t.Fatalf("rows = %d", len(agg.Rows))
	}
	if agg.Rows[0]["count"] != Int(100) {
		t.Errorf("count cell = %#v", agg.Rows[0]["count"])
	}
	if agg.Rows[0]["kc1"] != Str("k1") {
		t.Errorf("kc1 cell = %#v", agg.Rows[0]["kc1"])
	}
}
