package catalog

import (
	"errors"

	"github.com/alexshd/quantify"
)

// VerifyConfig controls Catalog.Verify.
type VerifyConfig struct {
	// Relative drift allowed on a round trip
	Tolerance float64

	// Values converted between every compatible pair of a group
	Values []float64

	// Exponents used for the dimension power-composition law
	Powers []int
}

// DefaultVerifyConfig returns the thresholds used by `quantify verify`.
func DefaultVerifyConfig() VerifyConfig {
	return VerifyConfig{
		Tolerance: 1e-9,
		Values:    []float64{-40, 0, 1, 273.15, 1e6},
		Powers:    []int{-2, -1, 0, 1, 2, 3},
	}
}

// Verify checks the algebraic laws over the whole catalog:
//
//   - round trip A→B→A for every compatible pair within a group
//   - Equals implies IsCompatibleTo for every pair within a group
//   - affine units reject multiplicative operations
//   - dimension inverse and power composition for every pair of units
//
// Every violation is logged at Warn and returned joined.
func (c *Catalog) Verify(cfg VerifyConfig) error {
	var (
		errs []error
		log  = quantify.Logger()
	)
	report := func(group string, err error) {
		if err == nil {
			return
		}
		log.Warn("catalog law violated", "group", group, "error", err)
		errs = append(errs, err)
	}

	var all []quantify.Unit
	for _, g := range c.Groups() {
		for i, u := range g.Units {
			report(g.Name, quantify.CheckAffineRestriction(u))

			for _, v := range g.Units[i+1:] {
				report(g.Name, quantify.CheckEqualsImpliesCompatible(u, v))
				if !u.IsCompatibleTo(v) {
					continue
				}
				for _, x := range cfg.Values {
					report(g.Name, quantify.CheckRoundTrip(quantify.NewQuantity(x, u), v, cfg.Tolerance))
				}
			}
		}
		all = append(all, g.Units...)
		log.Debug("catalog group verified", "group", g.Name, "units", len(g.Units))
	}

	for i, u := range all {
		for _, v := range all[i:] {
			report("dimensions", quantify.CheckDimensionInverse(u.Dimensions(), v.Dimensions()))
		}
		for _, n := range cfg.Powers {
			for _, m := range cfg.Powers {
				report("dimensions", quantify.CheckPowerComposition(u.Dimensions(), n, m))
			}
		}
	}

	return errors.Join(errs...)
}
