package util

import (
	"math"
	"strconv"
)

// MustParseInt converts s to an int, returning 0 when it does not parse.
func MustParseInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// RoundHalfUp rounds to the nearest integer with halves going up.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// RoundOneDecimal rounds the exact binary value of x to one decimal place, so
// 1.45 (stored as 1.4499...) gives 1.4 and agrees with FormatOneDecimal.
func RoundOneDecimal(x float64) float64 {
	v, _ := strconv.ParseFloat(FormatOneDecimal(x), 64)
	return v
}

// FormatOneDecimal renders x with exactly one decimal, e.g. 4 -> "4.0".
func FormatOneDecimal(x float64) string {
	return strconv.FormatFloat(x, 'f', 1, 64)
}
