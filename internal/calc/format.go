package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a float64 that survives JSON encoding when it is not finite.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	if s, ok := nonFinite(float64(n)); ok {
		return []byte(strconv.Quote(s)), nil
	}
	return strconv.AppendFloat(nil, float64(n), 'g', -1, 64), nil
}

// String prints the shortest round-tripping decimal. Magnitudes in
// [1e-4, 1e16) are written positionally with at least one fractional digit,
// anything else in exponent form.
func (n Number) String() string {
	v := float64(n)
	if s, ok := nonFinite(v); ok {
		return s
	}
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "nan", true
	case math.IsInf(v, 1):
		return "inf", true
	case math.IsInf(v, -1):
		return "-inf", true
	}
	return "", false
}

// Scientific formats v with two fractional digits, e.g. 9.00e-14.
func Scientific(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return fmt.Sprintf("%.2e", v)
}

// Percent formats a fraction as a percentage with two fractional digits.
func Percent(v float64) string {
	p := v * 100
	if s, ok := nonFinite(p); ok {
		return s + "%"
	}
	return fmt.Sprintf("%.2f%%", p)
}

func Fixed(v float64, digits int) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return strconv.FormatFloat(v, 'f', digits, 64)
}
