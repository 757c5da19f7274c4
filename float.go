package quantify

import (
	"math"
	"strconv"
)

// Epsilon is the absolute tolerance used when comparing unit factors,
// offsets and quantity values for equality: the float64 machine epsilon.
// It does not scale with magnitude, so 1e6 and 1e6+1e-7 are not equal.
const Epsilon = 2.220446049250313e-16

// approxEqual reports whether a and b differ by at most Epsilon.
func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// formatScalar renders a float the shortest way that round-trips.
func formatScalar(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}
