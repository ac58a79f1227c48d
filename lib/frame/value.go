package frame

import (
	"strconv"
	"time"
)

type Kind int

const (
	KindNull Kind = iota
	KindString
	KindFloat
	KindTime
)

// Value is a single null-aware table cell. The zero value is null.
type Value struct {
	kind Kind
	str  string
	num  float64
	ts   time.Time
}

var Null = Value{}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func Float(f float64) Value {
	return Value{kind: KindFloat, num: f}
}

func Time(t time.Time) Value {
	return Value{kind: KindTime, ts: t}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindFloat
}

func (v Value) Time() (time.Time, bool) {
	return v.ts, v.kind == KindTime
}

// Render returns the cell as it appears in a CSV export. Nulls render
// as the empty string, floats in shortest round-trip notation and
// timestamps in RFC 3339.
func (v Value) Render() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindFloat:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindTime:
		return v.ts.Format(time.RFC3339)
	default:
		return ""
	}
}

// ParseCell is the inverse of Render: it guesses the narrowest type
// for a CSV cell, preferring timestamps over floats over raw strings.
func ParseCell(s string) Value {
	if s == "" {
		return Null
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return Time(ts)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	return String(s)
}
