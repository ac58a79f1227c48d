// Package measure splits the "value with attached error" string
// encodings found in transient-event catalog payloads into their
// numeric parts.
package measure

import (
	"strconv"
	"strings"
)

// Maybe is a float that may be missing. Halves of a split that fail
// to parse as numbers come back missing rather than failing the split.
type Maybe struct {
	Value float64
	OK    bool
}

func parse(s string) Maybe {
	s = strings.TrimSpace(s)
	if s == "" {
		return Maybe{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Maybe{}
	}
	return Maybe{Value: f, OK: true}
}

// Parse exposes the lenient float parsing used for split halves.
func Parse(s string) Maybe {
	return parse(s)
}

// PlusMinusToken is the HTML entity FRBCAT uses to attach a
// symmetric error to a value.
const PlusMinusToken = "&plusmn"

func HasPlusMinus(s string) bool {
	return strings.Contains(s, PlusMinusToken)
}

// SplitPlusMinus splits "1.23&plusmn0.04" into value and error.
// found is false when the token is absent, in which case the whole
// string is parsed as the value.
func SplitPlusMinus(s string) (val, err Maybe, found bool) {
	before, after, found := strings.Cut(s, PlusMinusToken)
	if !found {
		return parse(s), Maybe{}, false
	}
	return parse(before), parse(after), true
}

// Markup FRBCAT embeds around asymmetric errors.
const (
	supOpen  = "<span className='supsub'><sup>"
	supClose = "</sup><sub>"
	subClose = "</sub></span>"
)

func HasSupSub(s string) bool {
	return strings.Contains(s, supOpen)
}

// SplitSupSub splits the asymmetric upper/lower error markup:
//
//	2.1<span className='supsub'><sup>0.3</sup><sub>0.2</sub></span>
//
// into value 2.1, upper 0.3 and lower 0.2.
func SplitSupSub(s string) (val, up, down Maybe, found bool) {
	before, rest, found := strings.Cut(s, supOpen)
	if !found {
		return parse(s), Maybe{}, Maybe{}, false
	}
	val = parse(before)
	upper, rest, _ := strings.Cut(rest, supClose)
	lower, _, _ := strings.Cut(rest, subClose)
	return val, parse(upper), parse(lower), true
}

// SplitParenErr splits the TNS "value (error)" encoding, e.g.
// "557.0 (2.0)" into value and error. A missing or empty
// parenthesized part yields a missing error. unit, when non-empty,
// is a suffix stripped before splitting ("2.31 Jy ms (0.04)").
func SplitParenErr(s, unit string) (val, err Maybe) {
	s = trimUnit(s, unit)
	before, after, found := strings.Cut(s, " (")
	val = parse(before)
	if !found {
		return val, Maybe{}
	}
	return val, parse(strings.TrimSuffix(strings.TrimSpace(after), ")"))
}

// SplitParenText splits "557.0 (YMW16)" into the value and the text
// inside the parentheses, as used for dispersion-measure model names.
func SplitParenText(s string) (val Maybe, text string) {
	before, after, found := strings.Cut(s, " (")
	val = parse(before)
	if !found {
		return val, ""
	}
	return val, strings.TrimSuffix(strings.TrimSpace(after), ")")
}

// SplitParenString is SplitParenErr for non-numeric values: the TNS
// coordinate columns hold sexagesimal strings with an attached error.
func SplitParenString(s string) (val, err string) {
	before, after, found := strings.Cut(s, " (")
	if !found {
		return strings.TrimSpace(before), ""
	}
	return strings.TrimSpace(before), strings.TrimSuffix(strings.TrimSpace(after), ")")
}

func trimUnit(s, unit string) string {
	if unit == "" {
		return s
	}
	// the unit can trail either the whole field or just the value part
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), unit))
	if before, after, found := strings.Cut(s, " ("); found {
		before = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(before), unit))
		return before + " (" + after
	}
	return s
}
