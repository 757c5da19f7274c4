// Package quantify provides unit-safe physical-quantity arithmetic.
//
// # Overview
//
// Values are tagged with a physical unit and can be combined, compared and
// converted while dimensional correctness is preserved. Adding seconds to
// meters fails; multiplying a mass by an acceleration produces kg*m/s^2.
//
// The package has three layers:
//
//   - Dimensions - exponent vector over the seven SI base dimensions
//   - Unit       - named affine transform tagged with Dimensions
//   - Quantity   - scalar value paired with a Unit
//
// A ready-made set of units lives in the catalog sub-package.
//
// # Dimensions
//
// A Dimensions value holds one signed exponent per base dimension, in the
// fixed order length, mass, time, electric current, temperature, amount of
// substance, luminous intensity:
//
//	velocity := quantify.NewDimensions(1, 0, -1) // [1, 0, -1, 0, 0, 0, 0]
//
// Multiplying units adds exponents, dividing subtracts them, and raising to
// a power scales them.
//
// # Units
//
// A Unit maps a value expressed in it to the implicit reference unit of its
// dimensions:
//
//	reference = factor*value + offset
//
// Units with offset 0 are multiplicative and may be multiplied, divided and
// raised to powers:
//
//	meter := quantify.NewUnit("meter", "m", quantify.NewDimensions(1))
//	second := quantify.NewUnit("second", "s", quantify.NewDimensions(0, 0, 1))
//	speed, err := meter.DivideBy(second) // "m/s"
//
// Units with a non-zero offset are affine. They support only Add/Subtract
// of a scalar and conversion:
//
//	kelvin := quantify.NewUnit("kelvin", "K", quantify.NewDimensions(0, 0, 0, 0, 1))
//	celsius := quantify.NewUnitFrom("degree Celsius", "°C", kelvin.Add(273.15))
//
//	_, err := celsius.Power(2) // *quantify.ErrUnsupportedOperation
//
// Two units are compatible when their dimensions are identical. Unit
// comparisons (Equals, LessThan, GreaterThan) never fail: incompatible
// units are simply unequal and unordered. Equals compares factors only, so
// kelvin and Celsius are equal as units.
//
// # Quantities
//
//	oneMeter := quantify.NewQuantity(1, meter)
//	inFeet, err := oneMeter.ConvertTo(foot) // 3.28084 ft
//
// Additive arithmetic and comparisons between quantities convert the right
// operand into the left operand's unit first and fail with
// *quantify.ErrIncompatibleUnits when that is impossible. When the units
// compare Equal the value is taken as-is, so 1 K plus 1 °C is 2 K; use
// ConvertTo to apply the offset explicitly. Multiplicative
// arithmetic composes units without converting:
//
//	area, err := oneMeter.MultiplyBy(oneMeter) // 1 m*m
//
// Methods with a Value suffix work on the raw stored number and ignore the
// unit entirely.
//
// # Errors
//
// Two error types cover every failure, both matched with errors.As:
//
//   - *ErrIncompatibleUnits     - dimensions differ (carries both units)
//   - *ErrUnsupportedOperation  - multiplicative operation on an affine unit
//     (carries the unit and the operator)
//
// # Testing
//
// The Assert helpers check the algebraic laws for your own units:
//
//	func TestMyUnits(t *testing.T) {
//	    quantify.AssertRoundTrip(t, furlong, meter, quantify.DefaultAssertionConfig())
//	    quantify.AssertAffineRestricted(t, celsius)
//	    quantify.AssertUnitAlgebra(t, []quantify.Unit{meter, furlong, foot})
//	}
//
// # Concurrency
//
// Every type is an immutable value. Operations never mutate their receiver
// or arguments, so values can be shared between goroutines freely.
package quantify
