/*
Copyright © 2018 the SurfKin authors.
This file is part of SurfKin.

SurfKin is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

SurfKin is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with SurfKin.  If not, see <http://www.gnu.org/licenses/>.
*/

package surfkin

import (
	"fmt"
	"math"
)

// InterfaceRate composes an arbitrary base rate law with a coverage
// correction model, producing an interface reaction rate
//
//	k = kbase(T) × 10^acov exp(-ecov/T) exp(mcov) [× voltage correction].
//
// The base law needs no knowledge of the correction; any RateLaw
// works. Base laws that implement DataRefresher are refreshed before
// the correction model on every update.
type InterfaceRate struct {
	// Base is the underlying temperature-dependent rate law.
	Base RateLaw

	// Coverage computes the surface corrections.
	Coverage *CoverageModel
}

// NewInterfaceRate composes base with a fresh coverage model.
func NewInterfaceRate(base RateLaw) *InterfaceRate {
	return &InterfaceRate{Base: base, Coverage: NewCoverageModel()}
}

// Type returns "interface-" followed by the base law's type.
func (r *InterfaceRate) Type() string { return "interface-" + r.Base.Type() }

// SetParameters configures first the coverage correction and then the
// base law from the "rate-constant" sub-block. When the sub-block is
// absent the base law keeps whatever configuration it already has, so
// correction settings can be applied on their own to a law configured
// through its constructor. An explicit empty sub-block resets the law
// to its neutral state, so a reaction may declare coverage effects
// with no intrinsic rate term.
func (r *InterfaceRate) SetParameters(p Params) error {
	if err := r.Coverage.SetParameters(p); err != nil {
		return err
	}
	negA, err := p.Bool("negative-A", false)
	if err != nil {
		return err
	}
	r.Base.SetAllowNegativeA(negA)
	if !p.Has("rate-constant") {
		return nil
	}
	sub, err := p.Sub("rate-constant")
	if err != nil {
		return err
	}
	return r.Base.SetRateParameters(sub)
}

// Parameters stores the parameters needed to reconstruct an
// equivalent rate into p.
func (r *InterfaceRate) Parameters(p Params) {
	p["type"] = r.Type()
	if r.Base.AllowNegativeA() {
		p["negative-A"] = true
	}
	rateNode := Params{}
	r.Base.RateParameters(rateNode)
	if len(rateNode) > 0 {
		p["rate-constant"] = rateNode
	}
	r.Coverage.Parameters(p)
}

// BindContext binds the base law's context first and then the
// correction model's. The order is fixed for determinism.
func (r *InterfaceRate) BindContext(rxn *Reaction, kin Kinetics) error {
	if err := r.Base.BindContext(rxn, kin); err != nil {
		return err
	}
	return r.Coverage.BindContext(rxn, kin)
}

// SetSpecies resolves coverage species names against the ordered
// species list shared with the thermodynamic data.
func (r *InterfaceRate) SetSpecies(species []string) {
	r.Coverage.SetSpecies(species)
}

// UpdateFromData refreshes the base law if it carries shared-data
// state, then always refreshes the correction model.
func (r *InterfaceRate) UpdateFromData(d *SharedData) {
	if ref, ok := r.Base.(DataRefresher); ok {
		ref.UpdateFromData(d)
	}
	r.Coverage.UpdateFromData(d)
}

// Eval evaluates the rate constant. The voltage correction for
// charge-transfer reactions is applied here, exactly once.
func (r *InterfaceRate) Eval(d *SharedData) float64 {
	out := r.Base.EvalRate(d.LogT, d.RecipT) * r.Coverage.CorrectionFactor(d.RecipT)
	if r.Coverage.UsesElectrochemistry() {
		out *= r.Coverage.VoltageCorrection()
	}
	return out
}

// DDTScaled is not supported for interface rates; it always returns
// ErrNotImplemented. Callers needing temperature sensitivities must
// use a different path.
func (r *InterfaceRate) DDTScaled(d *SharedData) (float64, error) {
	return 0, fmt.Errorf("surfkin: InterfaceRate.DDTScaled: %w", ErrNotImplemented)
}

// EffectivePreExponentialFactor returns the base law's
// pre-exponential factor modified by the current coverage correction.
// It is for reporting; evaluation always goes through Eval.
func (r *InterfaceRate) EffectivePreExponentialFactor() float64 {
	return r.Base.PreExponentialFactor() *
		math.Exp(ln10*r.Coverage.acov+r.Coverage.mcov)
}

// EffectiveActivationEnergy returns the base law's activation energy
// [J/kmol] modified by the current coverage correction.
func (r *InterfaceRate) EffectiveActivationEnergy() float64 {
	return r.Base.ActivationEnergy() +
		r.Coverage.ecov*r.Coverage.consts.orDefault().GasConstant
}
