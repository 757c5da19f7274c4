package quantify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	oneMeter   = NewQuantity(1, meter)
	oneSecond  = NewQuantity(1, second)
	oneKelvin  = NewQuantity(1, kelvin)
	oneCelsius = NewQuantity(1, celsius)
	oneFoot    = NewQuantity(1, feet)
)

func TestQuantityAccessors(t *testing.T) {
	q := NewQuantity(2.5, meter)

	assert.Equal(t, 2.5, q.Value())
	assert.Equal(t, meter, q.Unit())
	assert.Equal(t, "2.5 m", q.String())
	assert.Equal(t, float32(2.5), q.Float32())
}

func TestQuantityConvertTo(t *testing.T) {
	inFeet, err := oneMeter.ConvertTo(feet)
	require.NoError(t, err)
	assert.InDelta(t, 3.28084, inFeet.Value(), 1e-5)
	assert.Equal(t, "ft", inFeet.Unit().Symbol())

	inCelsius, err := oneKelvin.ConvertTo(celsius)
	require.NoError(t, err)
	assert.InDelta(t, -272.15, inCelsius.Value(), 1e-12)

	back, err := inCelsius.ConvertTo(kelvin)
	require.NoError(t, err)
	assert.InDelta(t, 1, back.Value(), 1e-12)

	_, err = oneMeter.ConvertTo(second)
	var incompatible *ErrIncompatibleUnits
	require.ErrorAs(t, err, &incompatible)
	assert.Equal(t, "m", incompatible.Left.Symbol())
	assert.Equal(t, "s", incompatible.Right.Symbol())
}

func TestQuantityRoundTrip(t *testing.T) {
	cfg := DefaultAssertionConfig()

	AssertRoundTrip(t, meter, feet, cfg)
	AssertRoundTrip(t, feet, meter, cfg)
	AssertRoundTrip(t, kelvin, celsius, cfg)
	AssertRoundTrip(t, celsius, kelvin, cfg)
}

func TestQuantityInt(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected int
	}{
		{"BelowHalf", 1.49, 1},
		{"Half", 1.50, 2},
		{"AboveHalf", 1.51, 2},
		{"Zero", 0, 0},
		{"NegativeBelowHalf", -1.49, -1},
		{"NegativeHalf", -1.50, -2},
		{"NegativeHalfAwayFromZero", -0.5, -1},
		{"Whole", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, oneMeter.Scale(tt.value).Int())
		})
	}
}

func TestQuantityEquals(t *testing.T) {
	oneFootInMeters := NewQuantity(0.3048, meter)

	eq, err := oneFoot.Equals(oneFootInMeters)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = oneFoot.Equals(oneMeter)
	require.NoError(t, err)
	assert.False(t, eq)

	_, err = oneFoot.Equals(oneSecond)
	var incompatible *ErrIncompatibleUnits
	assert.ErrorAs(t, err, &incompatible)
}

// TestQuantityEqualUnitsSkipConversion pins that units comparing Equal are
// treated as the same unit: the offset between kelvin and Celsius is not
// applied.
func TestQuantityEqualUnitsSkipConversion(t *testing.T) {
	eq, err := oneKelvin.Equals(oneCelsius)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = NewQuantity(274.15, kelvin).Equals(oneCelsius)
	require.NoError(t, err)
	assert.False(t, eq)

	sum, err := oneKelvin.Add(oneCelsius)
	require.NoError(t, err)
	assert.Equal(t, 2.0, sum.Value())
	assert.Equal(t, kelvin, sum.Unit())

	diff, err := oneKelvin.Subtract(oneCelsius)
	require.NoError(t, err)
	assert.Equal(t, 0.0, diff.Value())

	lt, err := NewQuantity(0, celsius).LessThan(oneKelvin)
	require.NoError(t, err)
	assert.True(t, lt)

	// ConvertTo always applies the offset.
	inKelvin, err := oneCelsius.ConvertTo(kelvin)
	require.NoError(t, err)
	assert.InDelta(t, 274.15, inKelvin.Value(), 1e-12)
}

// TestQuantityIncompatibleOperandOrder verifies the receiver is reported as
// Left and the argument as Right for every cross-unit operation.
func TestQuantityIncompatibleOperandOrder(t *testing.T) {
	ops := []struct {
		name string
		run  func() error
	}{
		{"Add", func() error { _, err := oneMeter.Add(oneSecond); return err }},
		{"Subtract", func() error { _, err := oneMeter.Subtract(oneSecond); return err }},
		{"Equals", func() error { _, err := oneMeter.Equals(oneSecond); return err }},
		{"LessThan", func() error { _, err := oneMeter.LessThan(oneSecond); return err }},
		{"GreaterThan", func() error { _, err := oneMeter.GreaterThan(oneSecond); return err }},
		{"LessOrEqual", func() error { _, err := oneMeter.LessOrEqual(oneSecond); return err }},
		{"GreaterOrEqual", func() error { _, err := oneMeter.GreaterOrEqual(oneSecond); return err }},
	}

	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			var incompatible *ErrIncompatibleUnits
			require.ErrorAs(t, op.run(), &incompatible)
			assert.Equal(t, "m", incompatible.Left.Symbol())
			assert.Equal(t, "s", incompatible.Right.Symbol())
		})
	}
}

func TestQuantityLessThan(t *testing.T) {
	lt, err := oneFoot.LessThan(oneMeter)
	require.NoError(t, err)
	assert.True(t, lt)

	lt, err = oneMeter.LessThan(oneFoot)
	require.NoError(t, err)
	assert.False(t, lt)

	le, err := oneMeter.LessOrEqual(NewQuantity(100, feet))
	require.NoError(t, err)
	assert.True(t, le)

	_, err = oneFoot.LessThan(oneSecond)
	var incompatible *ErrIncompatibleUnits
	assert.ErrorAs(t, err, &incompatible)

	_, err = oneFoot.LessOrEqual(oneSecond)
	assert.ErrorAs(t, err, &incompatible)
}

func TestQuantityGreaterThan(t *testing.T) {
	gt, err := oneMeter.GreaterThan(oneFoot)
	require.NoError(t, err)
	assert.True(t, gt)

	ge, err := oneMeter.GreaterOrEqual(oneMeter)
	require.NoError(t, err)
	assert.True(t, ge)

	_, err = oneFoot.GreaterThan(oneSecond)
	var incompatible *ErrIncompatibleUnits
	assert.ErrorAs(t, err, &incompatible)

	_, err = oneFoot.GreaterOrEqual(oneSecond)
	assert.ErrorAs(t, err, &incompatible)
}

// TestQuantityScalarComparisons verifies that scalar comparisons ignore the unit.
func TestQuantityScalarComparisons(t *testing.T) {
	assert.True(t, oneFoot.EqualsValue(1))
	assert.True(t, oneCelsius.EqualsValue(1))
	assert.False(t, oneFoot.EqualsValue(0.3048))
	assert.True(t, oneFoot.LessThanValue(2))
	assert.True(t, oneFoot.GreaterThanValue(0))
	assert.True(t, oneFoot.LessOrEqualValue(1))
	assert.True(t, oneFoot.GreaterOrEqualValue(1))
	assert.False(t, oneFoot.GreaterThanValue(1))
}

// TestQuantityEqualsValueAbsoluteEpsilon verifies equality uses an absolute
// machine-epsilon bound that does not grow with magnitude.
func TestQuantityEqualsValueAbsoluteEpsilon(t *testing.T) {
	big := NewQuantity(1e6, meter)

	assert.True(t, big.EqualsValue(1e6))
	assert.False(t, big.EqualsValue(1e6+1e-7))
	assert.True(t, NewQuantity(0, meter).EqualsValue(Epsilon/2))
	assert.False(t, NewQuantity(0, meter).EqualsValue(1e-15))
	assert.True(t, big.LessOrEqualValue(1e6+1e-7))
}

func TestQuantityAdd(t *testing.T) {
	twoMeters := oneMeter.AddValue(1.0)
	assert.InDelta(t, 2.0, twoMeters.Value(), 1e-15)

	threeMeters, err := oneMeter.Add(twoMeters)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, threeMeters.Value(), 1e-15)

	oneMeterAndOneFoot, err := oneMeter.Add(oneFoot)
	require.NoError(t, err)
	assert.InDelta(t, 1.3048, oneMeterAndOneFoot.Value(), 1e-12)
	assert.Equal(t, "m", oneMeterAndOneFoot.Unit().Symbol())

	_, err = oneMeter.Add(oneSecond)
	var incompatible *ErrIncompatibleUnits
	assert.ErrorAs(t, err, &incompatible)
}

// TestQuantityAddValueBypassesOffset pins that AddValue works on the raw number.
func TestQuantityAddValueBypassesOffset(t *testing.T) {
	q := oneCelsius.AddValue(1)

	assert.Equal(t, 2.0, q.Value())
	assert.Equal(t, celsius, q.Unit())
}

func TestQuantitySubtract(t *testing.T) {
	zeroMeter := oneMeter.SubtractValue(1.0)
	assert.InDelta(t, 0.0, zeroMeter.Value(), 1e-15)

	oneMeterMinusOneFoot, err := oneMeter.Subtract(oneFoot)
	require.NoError(t, err)
	assert.InDelta(t, 0.6952, oneMeterMinusOneFoot.Value(), 1e-12)

	_, err = oneMeter.Subtract(oneSecond)
	var incompatible *ErrIncompatibleUnits
	assert.ErrorAs(t, err, &incompatible)
}

func TestQuantityMultiplyBy(t *testing.T) {
	result, err := oneKelvin.Scale(2).MultiplyBy(oneMeter)
	require.NoError(t, err)

	assert.True(t, result.EqualsValue(2))
	assert.Equal(t, "K*m", result.Unit().Symbol())
	assert.Equal(t, NewDimensions(1, 0, 0, 0, 1), result.Unit().Dimensions())

	// No conversion: feet stay feet inside the composite.
	area, err := oneFoot.MultiplyBy(oneMeter)
	require.NoError(t, err)
	assert.Equal(t, 1.0, area.Value())
	assert.InDelta(t, 0.3048, area.Unit().Factor(), 1e-15)

	_, err = oneMeter.MultiplyBy(oneCelsius)
	var unsupported *ErrUnsupportedOperation
	assert.ErrorAs(t, err, &unsupported)
}

func TestQuantityDivideBy(t *testing.T) {
	result, err := oneKelvin.DivideBy(oneMeter.Scale(2))
	require.NoError(t, err)

	assert.True(t, result.EqualsValue(0.5))
	assert.Equal(t, "K/m", result.Unit().Symbol())

	_, err = oneMeter.DivideBy(oneCelsius)
	var unsupported *ErrUnsupportedOperation
	assert.ErrorAs(t, err, &unsupported)
}

func TestQuantityScale(t *testing.T) {
	q := oneFoot.Scale(3)

	assert.Equal(t, 3.0, q.Value())
	assert.Equal(t, feet, q.Unit())
}

// TestQuantityDivideByValueScalesUnit pins that dividing by a scalar divides
// both the value and the unit factor.
func TestQuantityDivideByValueScalesUnit(t *testing.T) {
	q, err := NewQuantity(4, meter).DivideByValue(2)
	require.NoError(t, err)

	assert.Equal(t, 2.0, q.Value())
	assert.Equal(t, 0.5, q.Unit().Factor())
	assert.Equal(t, "m/2", q.Unit().Symbol())

	inMeters, err := q.ConvertTo(meter)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, inMeters.Value(), 1e-15, "magnitude shrinks by the square of the divisor")

	_, err = oneCelsius.DivideByValue(2)
	var unsupported *ErrUnsupportedOperation
	assert.ErrorAs(t, err, &unsupported)
}

func TestQuantityReciprocal(t *testing.T) {
	q, err := NewQuantity(4, second).Reciprocal(2)
	require.NoError(t, err)

	assert.Equal(t, 0.5, q.Value())
	assert.Equal(t, "1/s", q.Unit().Symbol())
	assert.Equal(t, NewDimensions(0, 0, -1), q.Unit().Dimensions())

	_, err = oneCelsius.Reciprocal(1)
	var unsupported *ErrUnsupportedOperation
	assert.ErrorAs(t, err, &unsupported)
}

func TestQuantityImmutable(t *testing.T) {
	q := NewQuantity(1, meter)

	_ = q.Scale(10)
	_ = q.AddValue(10)
	_, _ = q.Add(oneFoot)
	_, _ = q.ConvertTo(feet)
	_, _ = q.DivideByValue(4)

	assert.Equal(t, 1.0, q.Value())
	assert.Equal(t, meter, q.Unit())
}
