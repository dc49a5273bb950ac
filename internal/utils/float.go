package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat formats f in its shortest round-trip form. Integral values keep a
// trailing ".0" and the exponent form is used below 1e-4 and from 1e16 on, so
// 2 is written as "2.0" and 0.00001 as "1e-05".
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if f != 0 {
		exp := math.Abs(f)
		if exp < 1e-4 || exp >= 1e16 {
			return strconv.FormatFloat(f, 'e', -1, 64)
		}
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
