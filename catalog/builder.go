package catalog

import (
	"fmt"

	"github.com/alexshd/quantify"
)

// ErrForwardReference indicates a unit composed from a unit that was not
// defined yet.
type ErrForwardReference struct {
	Name    string // unit being defined
	Operand string // name of the undefined operand ("" for a zero Unit)
}

func (e *ErrForwardReference) Error() string {
	if e.Operand == "" {
		return fmt.Sprintf("unit %q composed from an undefined unit", e.Name)
	}
	return fmt.Sprintf("unit %q composed from %q before it was defined", e.Name, e.Operand)
}

// ErrDuplicateUnit indicates two catalog entries with the same name.
type ErrDuplicateUnit struct {
	Name string
}

func (e *ErrDuplicateUnit) Error() string {
	return fmt.Sprintf("unit %q defined twice", e.Name)
}

// term is one factor of a composed unit: unit^exp.
type term struct {
	unit quantify.Unit
	exp  int
}

func pow(u quantify.Unit, exp int) term { return term{unit: u, exp: exp} }

// builder composes catalog units in definition order. The first error is
// sticky: once set, every later step is a no-op returning the zero Unit.
type builder struct {
	defined map[string]bool
	err     error
	count   int
}

func newBuilder() *builder {
	return &builder{defined: make(map[string]bool)}
}

// known fails the build if any operand has not been defined yet.
func (b *builder) known(name string, operands ...quantify.Unit) bool {
	if b.err != nil {
		return false
	}
	for _, u := range operands {
		if !b.defined[u.Name()] {
			b.err = &ErrForwardReference{Name: name, Operand: u.Name()}
			return false
		}
	}
	return true
}

func (b *builder) define(name, symbol string, u quantify.Unit, err error) quantify.Unit {
	if b.err != nil {
		return quantify.Unit{}
	}
	if err != nil {
		b.err = fmt.Errorf("define %s: %w", name, err)
		return quantify.Unit{}
	}
	if b.defined[name] {
		b.err = &ErrDuplicateUnit{Name: name}
		return quantify.Unit{}
	}
	b.defined[name] = true
	b.count++
	return quantify.NewUnitFrom(name, symbol, u)
}

// base defines a reference unit for a single base dimension.
func (b *builder) base(name, symbol string, dims quantify.Dimensions) quantify.Unit {
	return b.define(name, symbol, quantify.NewUnit(name, symbol, dims), nil)
}

// scaled defines s*ref.
func (b *builder) scaled(name, symbol string, s float64, ref quantify.Unit) quantify.Unit {
	if !b.known(name, ref) {
		return quantify.Unit{}
	}
	u, err := ref.Scale(s)
	return b.define(name, symbol, u, err)
}

// compose defines the product of terms, each raised to its exponent.
func (b *builder) compose(name, symbol string, terms ...term) quantify.Unit {
	operands := make([]quantify.Unit, len(terms))
	for i, t := range terms {
		operands[i] = t.unit
	}
	if !b.known(name, operands...) {
		return quantify.Unit{}
	}

	var (
		acc quantify.Unit
		err error
	)
	for i, t := range terms {
		factor := t.unit
		if t.exp != 1 {
			if factor, err = t.unit.Power(t.exp); err != nil {
				break
			}
		}
		if i == 0 {
			acc = factor
			continue
		}
		if acc, err = acc.MultiplyBy(factor); err != nil {
			break
		}
	}
	return b.define(name, symbol, acc, err)
}

// affine defines (scale*ref) + offset.
func (b *builder) affine(name, symbol string, ref quantify.Unit, scale, offset float64) quantify.Unit {
	if !b.known(name, ref) {
		return quantify.Unit{}
	}
	u := ref
	if scale != 1 {
		var err error
		if u, err = ref.Scale(scale); err != nil {
			return b.define(name, symbol, u, err)
		}
	}
	return b.define(name, symbol, u.Add(offset), nil)
}
