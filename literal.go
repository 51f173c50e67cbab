package main

import (
	"math"
	"strconv"
)

// decodeLiteral converts literal text into a Value of the given kind.
// Integer and Float32 text decode from their longest numeric prefix, the part
// C's atoi and atof would read; text with no such prefix decodes to zero.
func decodeLiteral(kind Kind, text string) Value {
	switch kind {
	case Integer:
		// out of range prefixes clamp, as strtol does
		i, _ := strconv.Atoi(intPrefix(text))
		return intValue(i)
	case Float32:
		f, _ := strconv.ParseFloat(floatPrefix(text), 32)
		return float32Value(float32(f))
	default:
		return float64Value(parseDecimal(text))
	}
}

// intPrefix returns the leading "[+-]digits" of s, or "" if there are no
// digits.
func intPrefix(s string) string {
	i := signLen(s)
	j := i + digitsLen(s[i:])
	if j == i {
		return ""
	}
	return s[:j]
}

// floatPrefix returns the leading "[+-]digits[.digits][e[+-]digits]" of s,
// or "" if there are no mantissa digits. An exponent marker with no digits
// after it is not part of the prefix.
func floatPrefix(s string) string {
	i := signLen(s)
	n := digitsLen(s[i:])
	j := i + n
	if j < len(s) && s[j] == '.' {
		frac := digitsLen(s[j+1:])
		n += frac
		j += 1 + frac
	}
	if n == 0 {
		return ""
	}
	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		k := j + 1
		k += signLen(s[k:])
		if m := digitsLen(s[k:]); m > 0 {
			j = k + m
		}
	}
	return s[:j]
}

func signLen(s string) int {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return 1
	}
	return 0
}

func digitsLen(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n
}

// parseDecimal decodes an optional '-', integer digits, and an optional
// '.' followed by fractional digits. Decoding stops at the first rune that
// does not fit; there is no exponent form and no leading '+'.
func parseDecimal(s string) float64 {
	i := 0
	neg := false
	if i < len(s) && s[i] == '-' {
		neg = true
		i++
	}

	var r float64
	for ; i < len(s) && isDigit(s[i]); i++ {
		r = r*10 + float64(s[i]-'0')
	}

	if i < len(s) && s[i] == '.' {
		i++
		var f float64
		n := 0
		for ; i < len(s) && isDigit(s[i]); i++ {
			f = f*10 + float64(s[i]-'0')
			n++
		}
		r += f / math.Pow10(n)
	}

	if neg {
		r = -r
	}
	return r
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
