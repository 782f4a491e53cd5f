package filter

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// MissingDistance is the ordering value used for jobs without a distance.
const MissingDistance = 1000

// SalaryValue strips every non-digit from text and parses what is left as a
// single number, so "300 000 - 450 000 ₽" yields 300000450000. ok is false
// when text holds no ASCII digits.
func SalaryValue(text string) (float64, bool) {
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if c := text[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil && !isRangeErr(err) {
		return 0, false
	}
	return v, true
}

// DistanceValue returns the ordering key for a distance label: the leading
// decimal number ("2.3 км" -> 2.3), MissingDistance for an empty label, and
// +Inf when the label has no numeric prefix.
func DistanceValue(text string) float64 {
	if text == "" {
		return MissingDistance
	}
	v, ok := leadingFloat(text)
	if !ok {
		return math.Inf(1)
	}
	return v
}

// leadingFloat parses the longest decimal prefix of s after leading
// whitespace: optional sign, digits, optional fraction, optional exponent.
func leadingFloat(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		v, err := strconv.ParseFloat(s[:i]+"Inf", 64)
		return v, err == nil
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0, false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			i = j
		}
	}

	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil && !isRangeErr(err) {
		return 0, false
	}
	return v, true
}

// isRangeErr reports an overflow or underflow; ParseFloat still returns a
// usable ±Inf or 0 in that case.
func isRangeErr(err error) bool {
	return errors.Is(err, strconv.ErrRange)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
