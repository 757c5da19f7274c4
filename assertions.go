package quantify

import (
	"fmt"
	"testing"
)

// AssertionConfig contains the thresholds used by the Assert helpers.
type AssertionConfig struct {
	// Relative drift allowed on a round trip
	Tolerance float64

	// Values converted by AssertRoundTrip, in the source unit
	RoundTripValues []float64

	// Powers combined by AssertDimensionLaws
	Powers []int
}

// DefaultAssertionConfig returns conservative thresholds.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Tolerance:       1e-9,
		RoundTripValues: []float64{-1000, -1, 0, 1, 3.5, 1e6},
		Powers:          []int{-3, -1, 0, 1, 2, 3},
	}
}

// AssertRoundTrip verifies that converting from one unit to another and back
// reproduces every value in cfg.RoundTripValues.
//
// Mathematical property:
//
//	convert(convert(v, A→B), B→A) ≈ v
func AssertRoundTrip(t *testing.T, from, to Unit, cfg AssertionConfig) {
	t.Helper()

	var failures []string
	for _, v := range cfg.RoundTripValues {
		if err := CheckRoundTrip(NewQuantity(v, from), to, cfg.Tolerance); err != nil {
			failures = append(failures, "  "+err.Error())
		}
	}

	if len(failures) > 0 {
		t.Errorf("Round trip %s → %s drifted:\n%s", from, to, failures)
		return
	}

	t.Logf("✓ Round trip %s → %s → %s (tolerance: %g)", from, to, from, cfg.Tolerance)
}

// AssertDimensionLaws verifies the inverse and power-composition laws for a
// pair of dimension vectors.
//
// Mathematical properties:
//
//	a·b/b = a
//	(aⁿ)ᵐ = aⁿᵐ
func AssertDimensionLaws(t *testing.T, a, b Dimensions, cfg AssertionConfig) {
	t.Helper()

	if err := CheckDimensionInverse(a, b); err != nil {
		t.Errorf("%v", err)
	}
	if err := CheckDimensionInverse(b, a); err != nil {
		t.Errorf("%v", err)
	}

	for _, n := range cfg.Powers {
		for _, m := range cfg.Powers {
			if err := CheckPowerComposition(a, n, m); err != nil {
				t.Errorf("%v", err)
			}
		}
	}

	t.Logf("✓ Dimension laws hold for %s and %s", a, b)
}

// AssertAffineRestricted verifies that u has a non-zero offset and rejects
// every multiplicative operation.
func AssertAffineRestricted(t *testing.T, u Unit) {
	t.Helper()

	if u.IsMultiplicative() {
		t.Errorf("Unit %s is multiplicative (offset %g), expected an affine unit", u, u.offset)
		return
	}

	if err := CheckAffineRestriction(u); err != nil {
		t.Errorf("%v", err)
		return
	}

	t.Logf("✓ Affine unit %s (offset %g) rejects multiplicative operations", u, u.offset)
}

// AssertUnitAlgebra runs the unit assertions for a set of units: round trips
// between every compatible pair, equality implying compatibility, and the
// affine restriction for affine units.
func AssertUnitAlgebra(t *testing.T, units []Unit) {
	t.Helper()

	cfg := DefaultAssertionConfig()

	for i, u := range units {
		for _, v := range units[i+1:] {
			if err := CheckEqualsImpliesCompatible(u, v); err != nil {
				t.Errorf("%v", err)
			}
			if !u.IsCompatibleTo(v) {
				continue
			}
			t.Run(fmt.Sprintf("RoundTrip/%s-%s", u.name, v.name), func(t *testing.T) {
				AssertRoundTrip(t, u, v, cfg)
			})
		}

		if !u.IsMultiplicative() {
			t.Run("Affine/"+u.name, func(t *testing.T) {
				AssertAffineRestricted(t, u)
			})
		}
	}
}
