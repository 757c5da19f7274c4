package quantify

import (
	"fmt"
	"strconv"
	"strings"
)

// Axis identifies one of the seven SI base dimensions.
type Axis int

// Base dimensions in their fixed display order.
const (
	Length Axis = iota
	Mass
	Time
	ElectricCurrent
	Temperature
	AmountOfSubstance
	LuminousIntensity

	axisCount
)

// AxisCount is the number of base dimensions tracked by a Dimensions vector.
const AxisCount = int(axisCount)

func (a Axis) String() string {
	switch a {
	case Length:
		return "length"
	case Mass:
		return "mass"
	case Time:
		return "time"
	case ElectricCurrent:
		return "electric current"
	case Temperature:
		return "temperature"
	case AmountOfSubstance:
		return "amount of substance"
	case LuminousIntensity:
		return "luminous intensity"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Dimensions is the exponent vector of a physical quantity over the seven
// base dimensions. The zero value is dimensionless.
//
// Dimensions is a comparable value type: == is exact element-wise equality.
type Dimensions struct {
	exp [axisCount]int
}

// Dimensionless is the vector with every exponent zero.
var Dimensionless = Dimensions{}

// NewDimensions builds a vector from exponents given in axis order
// (length, mass, time, current, temperature, amount, luminous intensity).
// Missing trailing exponents are zero. It panics when more than seven
// exponents are supplied.
func NewDimensions(exps ...int) Dimensions {
	if len(exps) > AxisCount {
		panic(fmt.Sprintf("quantify: %d exponents given, at most %d axes exist", len(exps), AxisCount))
	}
	var d Dimensions
	copy(d.exp[:], exps)
	return d
}

// Exponent returns the exponent of the given axis. Unknown axes report 0.
func (d Dimensions) Exponent(a Axis) int {
	if a < 0 || a >= axisCount {
		return 0
	}
	return d.exp[a]
}

// With returns a copy of d with the exponent of axis a replaced by e.
// Unknown axes leave the copy unchanged.
func (d Dimensions) With(a Axis, e int) Dimensions {
	if a < 0 || a >= axisCount {
		return d
	}
	d.exp[a] = e
	return d
}

// Length returns the length exponent.
func (d Dimensions) Length() int { return d.exp[Length] }

// Mass returns the mass exponent.
func (d Dimensions) Mass() int { return d.exp[Mass] }

// Time returns the time exponent.
func (d Dimensions) Time() int { return d.exp[Time] }

// ElectricCurrent returns the electric current exponent.
func (d Dimensions) ElectricCurrent() int { return d.exp[ElectricCurrent] }

// Temperature returns the temperature exponent.
func (d Dimensions) Temperature() int { return d.exp[Temperature] }

// AmountOfSubstance returns the amount of substance exponent.
func (d Dimensions) AmountOfSubstance() int { return d.exp[AmountOfSubstance] }

// LuminousIntensity returns the luminous intensity exponent.
func (d Dimensions) LuminousIntensity() int { return d.exp[LuminousIntensity] }

// Exponents returns the seven exponents in axis order.
func (d Dimensions) Exponents() [AxisCount]int {
	return d.exp
}

// IsDimensionless reports whether every exponent is zero.
func (d Dimensions) IsDimensionless() bool {
	return d == Dimensionless
}

// Equals reports exact element-wise equality.
func (d Dimensions) Equals(other Dimensions) bool {
	return d == other
}

// MultiplyBy adds exponents element-wise (the dimensions of a product).
func (d Dimensions) MultiplyBy(other Dimensions) Dimensions {
	for i := range d.exp {
		d.exp[i] += other.exp[i]
	}
	return d
}

// DivideBy subtracts exponents element-wise (the dimensions of a quotient).
func (d Dimensions) DivideBy(other Dimensions) Dimensions {
	for i := range d.exp {
		d.exp[i] -= other.exp[i]
	}
	return d
}

// Power multiplies every exponent by n. Negative n yields reciprocal
// dimensions.
func (d Dimensions) Power(n int) Dimensions {
	for i := range d.exp {
		d.exp[i] *= n
	}
	return d
}

// String renders the vector as "[e1, e2, e3, e4, e5, e6, e7]".
func (d Dimensions) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range d.exp {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(e))
	}
	sb.WriteByte(']')
	return sb.String()
}
