package quantify

import (
	"errors"
	"fmt"
	"math"
)

// Law names an algebraic property the unit system must satisfy.
type Law string

const (
	// a.MultiplyBy(b).DivideBy(b) == a
	LawDimensionInverse Law = "DimensionInverse"
	// a.Power(n).Power(m) == a.Power(n*m)
	LawPowerComposition Law = "PowerComposition"
	// converting A→B→A reproduces the value
	LawRoundTrip Law = "RoundTrip"
	// u.Equals(v) ⇒ u.IsCompatibleTo(v)
	LawEqualsImpliesCompatible Law = "EqualsImpliesCompatible"
	// affine units refuse multiplicative operations
	LawAffineRestriction Law = "AffineRestriction"
)

// LawViolation reports a failed law check.
type LawViolation struct {
	Law    Law
	Detail string
	cause  error
}

func (e *LawViolation) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s violated: %s: %v", e.Law, e.Detail, e.cause)
	}
	return fmt.Sprintf("%s violated: %s", e.Law, e.Detail)
}

func (e *LawViolation) Unwrap() error { return e.cause }

func violation(law Law, cause error, format string, args ...any) error {
	return &LawViolation{Law: law, Detail: fmt.Sprintf(format, args...), cause: cause}
}

// CheckDimensionInverse verifies that dividing by b undoes multiplying by b.
func CheckDimensionInverse(a, b Dimensions) error {
	got := a.MultiplyBy(b).DivideBy(b)
	if got != a {
		return violation(LawDimensionInverse, nil, "%s*%s/%s = %s", a, b, b, got)
	}
	return nil
}

// CheckPowerComposition verifies that successive powers multiply.
func CheckPowerComposition(a Dimensions, n, m int) error {
	left := a.Power(n).Power(m)
	right := a.Power(n * m)
	if left != right {
		return violation(LawPowerComposition, nil, "(%s^%d)^%d = %s, %s^%d = %s",
			a, n, m, left, a, n*m, right)
	}
	return nil
}

// CheckRoundTrip converts q into via and back, and verifies the value is
// reproduced within tolerance, relative to |value| and absolute below 1.
func CheckRoundTrip(q Quantity, via Unit, tolerance float64) error {
	there, err := q.ConvertTo(via)
	if err != nil {
		return violation(LawRoundTrip, err, "%s → %s", q, via)
	}
	back, err := there.ConvertTo(q.unit)
	if err != nil {
		return violation(LawRoundTrip, err, "%s → %s", there, q.unit)
	}
	diff := math.Abs(back.value - q.value)
	if math.IsNaN(diff) || diff > tolerance*math.Max(1, math.Abs(q.value)) {
		return violation(LawRoundTrip, nil, "%s → %s → %s (drift %g)", q, there, back, diff)
	}
	return nil
}

// CheckEqualsImpliesCompatible verifies that equal units are compatible.
func CheckEqualsImpliesCompatible(u, v Unit) error {
	if u.Equals(v) && !u.IsCompatibleTo(v) {
		return violation(LawEqualsImpliesCompatible, nil, "%s equals %s but %s != %s",
			u, v, u.dims, v.dims)
	}
	return nil
}

// CheckAffineRestriction verifies that an affine unit rejects Power,
// MultiplyBy, DivideBy, Scale, DivideByScalar and Reciprocal with
// *ErrUnsupportedOperation. Multiplicative units pass trivially.
func CheckAffineRestriction(u Unit) error {
	if u.IsMultiplicative() {
		return nil
	}

	ops := []struct {
		name string
		run  func() error
	}{
		{"Power", func() error { _, err := u.Power(2); return err }},
		{"MultiplyBy", func() error { _, err := u.MultiplyBy(u); return err }},
		{"DivideBy", func() error { _, err := u.DivideBy(u); return err }},
		{"Scale", func() error { _, err := u.Scale(2); return err }},
		{"DivideByScalar", func() error { _, err := u.DivideByScalar(2); return err }},
		{"Reciprocal", func() error { _, err := u.Reciprocal(1); return err }},
	}

	for _, op := range ops {
		var unsupported *ErrUnsupportedOperation
		if err := op.run(); !errors.As(err, &unsupported) {
			return violation(LawAffineRestriction, err, "%s accepted %s (offset %g)",
				u, op.name, u.offset)
		}
	}
	return nil
}
