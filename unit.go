package quantify

import "math"

// Unit is a named affine map from values expressed in this unit to values in
// the implicit reference unit of its dimensions:
//
//	reference = factor*value + offset
//
// A Unit is immutable; every operation returns a new Unit. The zero value is
// a nameless dimensionless unit with factor 0 and is not useful on its own:
// build units with NewUnit or NewUnitFrom.
type Unit struct {
	name   string
	symbol string
	dims   Dimensions
	factor float64
	offset float64
}

// UnitOption configures NewUnit.
type UnitOption func(*Unit)

// WithFactor sets the scale relative to the reference unit. Default 1.
func WithFactor(factor float64) UnitOption {
	return func(u *Unit) {
		u.factor = factor
	}
}

// WithOffset sets the zero-point shift relative to the reference unit.
// Default 0. A non-zero offset makes the unit affine.
func WithOffset(offset float64) UnitOption {
	return func(u *Unit) {
		u.offset = offset
	}
}

// NewUnit creates a unit with factor 1 and offset 0 unless overridden.
func NewUnit(name, symbol string, dims Dimensions, opts ...UnitOption) Unit {
	u := Unit{
		name:   name,
		symbol: symbol,
		dims:   dims,
		factor: 1,
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

// NewUnitFrom gives a new name and symbol to the magnitude of base, copying
// its dimensions, factor and offset.
//
//	foot := quantify.NewUnitFrom("foot", "ft", quantify.MustUnit(inch.Scale(12)))
func NewUnitFrom(name, symbol string, base Unit) Unit {
	base.name = name
	base.symbol = symbol
	return base
}

// Name returns the long name, e.g. "meter".
func (u Unit) Name() string { return u.name }

// Symbol returns the short symbol, e.g. "m".
func (u Unit) Symbol() string { return u.symbol }

// Dimensions returns the exponent vector.
func (u Unit) Dimensions() Dimensions { return u.dims }

// Factor returns the scale relative to the reference unit.
func (u Unit) Factor() float64 { return u.factor }

// Offset returns the shift added after scaling; non-zero for affine units.
func (u Unit) Offset() float64 { return u.offset }

// String returns the unit symbol.
func (u Unit) String() string { return u.symbol }

// IsMultiplicative reports whether the offset is approximately zero, i.e.
// whether the unit may take part in multiplication, division and powers.
func (u Unit) IsMultiplicative() bool {
	return approxEqual(u.offset, 0)
}

// IsCompatibleTo reports whether both units have exactly the same dimensions.
// Factors and offsets are irrelevant.
func (u Unit) IsCompatibleTo(other Unit) bool {
	return u.dims == other.dims
}

// CheckCompatibility returns *ErrIncompatibleUnits if the units have
// different dimensions.
func (u Unit) CheckCompatibility(other Unit) error {
	if !u.IsCompatibleTo(other) {
		return &ErrIncompatibleUnits{Left: u, Right: other}
	}
	return nil
}

// CheckMultiply returns *ErrUnsupportedOperation if u is affine.
func (u Unit) CheckMultiply() error {
	if !u.IsMultiplicative() {
		return &ErrUnsupportedOperation{Unit: u, Operation: "*"}
	}
	return nil
}

// CheckDivide returns *ErrUnsupportedOperation if u is affine.
func (u Unit) CheckDivide() error {
	if !u.IsMultiplicative() {
		return &ErrUnsupportedOperation{Unit: u, Operation: "/"}
	}
	return nil
}

// Power raises the unit to the integer power n. The name and symbol become
// "<name>^<n>" and "<symbol>^<n>".
func (u Unit) Power(n int) (Unit, error) {
	if err := u.CheckMultiply(); err != nil {
		return Unit{}, err
	}
	exp := "^" + formatInt(n)
	return Unit{
		name:   u.name + exp,
		symbol: u.symbol + exp,
		dims:   u.dims.Power(n),
		factor: math.Pow(u.factor, float64(n)),
	}, nil
}

// MultiplyBy composes the product unit u*other. Both units must be
// multiplicative.
func (u Unit) MultiplyBy(other Unit) (Unit, error) {
	if err := other.CheckMultiply(); err != nil {
		return Unit{}, err
	}
	if err := u.CheckMultiply(); err != nil {
		return Unit{}, err
	}
	return Unit{
		name:   u.name + "*" + other.name,
		symbol: u.symbol + "*" + other.symbol,
		dims:   u.dims.MultiplyBy(other.dims),
		factor: u.factor * other.factor,
	}, nil
}

// DivideBy composes the quotient unit u/other. Both units must be
// multiplicative.
func (u Unit) DivideBy(other Unit) (Unit, error) {
	if err := other.CheckDivide(); err != nil {
		return Unit{}, err
	}
	if err := u.CheckDivide(); err != nil {
		return Unit{}, err
	}
	return Unit{
		name:   u.name + "/" + other.name,
		symbol: u.symbol + "/" + other.symbol,
		dims:   u.dims.DivideBy(other.dims),
		factor: u.factor / other.factor,
	}, nil
}

// Scale multiplies the factor by s, producing "<s>*<name>".
//
//	kilometer, err := meter.Scale(1000)
func (u Unit) Scale(s float64) (Unit, error) {
	if err := u.CheckMultiply(); err != nil {
		return Unit{}, err
	}
	prefix := formatScalar(s) + "*"
	return Unit{
		name:   prefix + u.name,
		symbol: prefix + u.symbol,
		dims:   u.dims,
		factor: s * u.factor,
	}, nil
}

// DivideByScalar divides the factor by s, producing "<name>/<s>".
func (u Unit) DivideByScalar(s float64) (Unit, error) {
	if err := u.CheckDivide(); err != nil {
		return Unit{}, err
	}
	suffix := "/" + formatScalar(s)
	return Unit{
		name:   u.name + suffix,
		symbol: u.symbol + suffix,
		dims:   u.dims,
		factor: u.factor / s,
	}, nil
}

// Reciprocal returns numerator/u: inverted dimensions and factor
// numerator/factor.
func (u Unit) Reciprocal(numerator float64) (Unit, error) {
	if err := u.CheckDivide(); err != nil {
		return Unit{}, err
	}
	prefix := formatScalar(numerator) + "/"
	return Unit{
		name:   prefix + u.name,
		symbol: prefix + u.symbol,
		dims:   u.dims.Power(-1),
		factor: numerator / u.factor,
	}, nil
}

// Add shifts the offset by +s. This is how affine scales are derived:
//
//	celsius := kelvin.Add(273.15)
//
// Affine units are allowed here.
func (u Unit) Add(s float64) Unit {
	v := formatScalar(s)
	u.name = "(" + u.name + "+" + v + ")"
	u.symbol = u.symbol + "+" + v
	u.offset += s
	return u
}

// Subtract shifts the offset by -s.
func (u Unit) Subtract(s float64) Unit {
	v := formatScalar(s)
	u.name = "(" + u.name + "-" + v + ")"
	u.symbol = u.symbol + "-" + v
	u.offset -= s
	return u
}

// Equals reports compatible dimensions and approximately equal factors.
// The offset is not compared, so kelvin and Celsius are equal here.
// Incompatible units are simply unequal.
func (u Unit) Equals(other Unit) bool {
	return u.IsCompatibleTo(other) && approxEqual(u.factor, other.factor)
}

// LessThan reports compatible dimensions and a strictly smaller factor.
func (u Unit) LessThan(other Unit) bool {
	return u.IsCompatibleTo(other) && u.factor < other.factor
}

// GreaterThan reports compatible dimensions and a strictly larger factor.
func (u Unit) GreaterThan(other Unit) bool {
	return u.IsCompatibleTo(other) && u.factor > other.factor
}

// LessOrEqual is LessThan or Equals.
func (u Unit) LessOrEqual(other Unit) bool {
	return u.LessThan(other) || u.Equals(other)
}

// GreaterOrEqual is GreaterThan or Equals.
func (u Unit) GreaterOrEqual(other Unit) bool {
	return u.GreaterThan(other) || u.Equals(other)
}
