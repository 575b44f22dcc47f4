// Package data defines the units that flow into the display engine:
// renderable values, parsed records, and whole-snapshot aggregates.
package data

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gitlab.com/tinyland/lab/streamtab/internal/format"
)

// Value is a single renderable datum attached to a record or aggregate
// cell. Render produces the display form at the given floating-point
// precision; String produces the raw form used by format templates,
// where precision is applied as string truncation instead.
type Value interface {
	Render(precision int) string
	String() string
}

// Str is a plain string value.
type Str string

// Int is a 64-bit integer value.
type Int int64

// Float is a floating-point value. Render applies the configured
// precision; String keeps the shortest exact representation.
type Float float64

// Bool is a boolean value.
type Bool bool

// Duration is an elapsed-time value rendered in humanized form.
type Duration time.Duration

// None is the absent value, rendered for cells a row does not carry.
type None struct{}

func (s Str) Render(int) string { return string(s) }
func (s Str) String() string    { return string(s) }

func (i Int) Render(int) string { return strconv.FormatInt(int64(i), 10) }
func (i Int) String() string    { return strconv.FormatInt(int64(i), 10) }

func (f Float) Render(precision int) string {
	return strconv.FormatFloat(float64(f), 'f', precision, 64)
}

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'f', -1, 64)
}

func (b Bool) Render(int) string { return strconv.FormatBool(bool(b)) }
func (b Bool) String() string    { return strconv.FormatBool(bool(b)) }

func (d Duration) Render(int) string { return format.FormatDuration(time.Duration(d)) }
func (d Duration) String() string    { return format.FormatDuration(time.Duration(d)) }

func (None) Render(int) string { return "None" }
func (None) String() string    { return "None" }

// ParseValue converts raw text into the most specific value type:
// integer, then float, then string.
func ParseValue(s string) Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	return Str(s)
}

// FromJSON converts a decoded JSON value into a Value. Numbers must be
// decoded as json.Number (json.Decoder with UseNumber) so integers
// survive without a float round-trip. Composite values fall back to
// their compact JSON text.
func FromJSON(v any) Value {
	switch t := v.(type) {
	case nil:
		return None{}
	case string:
		return Str(t)
	case bool:
		return Bool(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i)
		}
		if f, err := t.Float64(); err == nil {
			return Float(f)
		}
		return Str(t.String())
	case float64:
		return Float(t)
	default:
		if b, err := json.Marshal(t); err == nil {
			return Str(string(b))
		}
		return Str(fmt.Sprint(t))
	}
}
