package quantify

import "fmt"

// ErrIncompatibleUnits indicates an operation that needs matching dimension
// vectors was given units whose dimensions differ.
type ErrIncompatibleUnits struct {
	Left  Unit
	Right Unit
}

func (e *ErrIncompatibleUnits) Error() string {
	return fmt.Sprintf("units %q and %q are not compatible: %s != %s",
		e.Left.symbol, e.Right.symbol, e.Left.dims, e.Right.dims)
}

// ErrUnsupportedOperation indicates a multiplicative operation attempted on
// an affine unit (one with a non-zero offset).
type ErrUnsupportedOperation struct {
	Unit      Unit
	Operation string
}

func (e *ErrUnsupportedOperation) Error() string {
	msg := fmt.Sprintf("unit %q does not support operation %q", e.Unit.symbol, e.Operation)
	if !e.Unit.IsMultiplicative() {
		msg += ": units with a non-zero offset support neither multiplication nor division"
	}
	return msg
}

// MustUnit returns u or panics if err is non-nil. It is meant for composing
// units that are known to be multiplicative.
func MustUnit(u Unit, err error) Unit {
	if err != nil {
		panic(fmt.Sprintf("quantify: %v", err))
	}
	return u
}

// MustQuantity returns q or panics if err is non-nil.
func MustQuantity(q Quantity, err error) Quantity {
	if err != nil {
		panic(fmt.Sprintf("quantify: %v", err))
	}
	return q
}
