package quantify

// Quantity is a scalar value measured in a Unit. Quantities are immutable;
// every operation returns a new Quantity.
type Quantity struct {
	value float64
	unit  Unit
}

// NewQuantity pairs value with unit.
func NewQuantity(value float64, unit Unit) Quantity {
	return Quantity{value: value, unit: unit}
}

// Value returns the raw number, expressed in Unit.
func (q Quantity) Value() float64 { return q.value }

// Unit returns the unit the value is expressed in.
func (q Quantity) Unit() Unit { return q.unit }

// String renders "<value> <symbol>".
func (q Quantity) String() string {
	return formatScalar(q.value) + " " + q.unit.symbol
}

// ConvertTo expresses q in target. Both units map through the shared
// reference coordinate of their dimensions:
//
//	v' = ((f*v + o) - o') / f'
//
// It returns *ErrIncompatibleUnits if the dimensions differ.
func (q Quantity) ConvertTo(target Unit) (Quantity, error) {
	if err := q.unit.CheckCompatibility(target); err != nil {
		return Quantity{}, err
	}
	reference := q.unit.factor*q.value + q.unit.offset
	return Quantity{
		value: (reference - target.offset) / target.factor,
		unit:  target,
	}, nil
}

// Int rounds the value to the nearest integer, halves away from zero.
func (q Quantity) Int() int {
	if q.GreaterOrEqualValue(0) {
		return int(q.value + 0.5)
	}
	return int(q.value - 0.5)
}

// Float32 narrows the value to float32.
func (q Quantity) Float32() float32 {
	return float32(q.value)
}

// valueIn returns other's value expressed in q's unit. Units that compare
// Equal skip conversion, so an offset difference alone is not applied:
// 1 K equals 1 °C here.
func (q Quantity) valueIn(other Quantity) (float64, error) {
	if err := q.unit.CheckCompatibility(other.unit); err != nil {
		return 0, err
	}
	if q.unit.Equals(other.unit) {
		return other.value, nil
	}
	converted, err := other.ConvertTo(q.unit)
	if err != nil {
		return 0, err
	}
	return converted.value, nil
}

// Equals converts other into q's unit and compares values within Epsilon.
// It returns *ErrIncompatibleUnits if the dimensions differ.
func (q Quantity) Equals(other Quantity) (bool, error) {
	v, err := q.valueIn(other)
	if err != nil {
		return false, err
	}
	return q.EqualsValue(v), nil
}

// LessThan converts other into q's unit and compares strictly.
func (q Quantity) LessThan(other Quantity) (bool, error) {
	v, err := q.valueIn(other)
	if err != nil {
		return false, err
	}
	return q.LessThanValue(v), nil
}

// GreaterThan converts other into q's unit and compares strictly.
func (q Quantity) GreaterThan(other Quantity) (bool, error) {
	v, err := q.valueIn(other)
	if err != nil {
		return false, err
	}
	return q.GreaterThanValue(v), nil
}

// LessOrEqual is LessThan or Equals.
func (q Quantity) LessOrEqual(other Quantity) (bool, error) {
	v, err := q.valueIn(other)
	if err != nil {
		return false, err
	}
	return q.LessOrEqualValue(v), nil
}

// GreaterOrEqual is GreaterThan or Equals.
func (q Quantity) GreaterOrEqual(other Quantity) (bool, error) {
	v, err := q.valueIn(other)
	if err != nil {
		return false, err
	}
	return q.GreaterOrEqualValue(v), nil
}

// EqualsValue compares the raw value against v, ignoring the unit.
func (q Quantity) EqualsValue(v float64) bool {
	return approxEqual(q.value, v)
}

// LessThanValue compares the raw value against v, ignoring the unit.
func (q Quantity) LessThanValue(v float64) bool {
	return q.value < v
}

// GreaterThanValue compares the raw value against v, ignoring the unit.
func (q Quantity) GreaterThanValue(v float64) bool {
	return q.value > v
}

// LessOrEqualValue is LessThanValue or EqualsValue.
func (q Quantity) LessOrEqualValue(v float64) bool {
	return q.LessThanValue(v) || q.EqualsValue(v)
}

// GreaterOrEqualValue is GreaterThanValue or EqualsValue.
func (q Quantity) GreaterOrEqualValue(v float64) bool {
	return q.GreaterThanValue(v) || q.EqualsValue(v)
}

// Add converts other into q's unit and sums. The result keeps q's unit.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	v, err := q.valueIn(other)
	if err != nil {
		return Quantity{}, err
	}
	return q.AddValue(v), nil
}

// Subtract converts other into q's unit and subtracts. The result keeps q's
// unit.
func (q Quantity) Subtract(other Quantity) (Quantity, error) {
	v, err := q.valueIn(other)
	if err != nil {
		return Quantity{}, err
	}
	return q.SubtractValue(v), nil
}

// AddValue adds v to the raw value. The unit offset is not involved.
func (q Quantity) AddValue(v float64) Quantity {
	return Quantity{value: q.value + v, unit: q.unit}
}

// SubtractValue subtracts v from the raw value.
func (q Quantity) SubtractValue(v float64) Quantity {
	return Quantity{value: q.value - v, unit: q.unit}
}

// MultiplyBy composes the units and multiplies the raw values. No conversion
// happens: 2 K times 1 m is 2 K*m.
func (q Quantity) MultiplyBy(other Quantity) (Quantity, error) {
	u, err := q.unit.MultiplyBy(other.unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: q.value * other.value, unit: u}, nil
}

// DivideBy composes the quotient unit and divides the raw values.
func (q Quantity) DivideBy(other Quantity) (Quantity, error) {
	u, err := q.unit.DivideBy(other.unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: q.value / other.value, unit: u}, nil
}

// Scale multiplies the raw value by s. The unit is unchanged.
func (q Quantity) Scale(s float64) Quantity {
	return Quantity{value: q.value * s, unit: q.unit}
}

// DivideByValue divides both the raw value and the unit factor by s, so the
// physical magnitude shrinks by s². Scale(1/s) only touches the value.
//
// TODO: decide whether the unit should stay unchanged here, matching Scale.
func (q Quantity) DivideByValue(s float64) (Quantity, error) {
	u, err := q.unit.DivideByScalar(s)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: q.value / s, unit: u}, nil
}

// Reciprocal returns numerator/q: value numerator/value in the unit 1/u.
func (q Quantity) Reciprocal(numerator float64) (Quantity, error) {
	u, err := q.unit.Reciprocal(1)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: numerator / q.value, unit: u}, nil
}
