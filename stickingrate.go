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
	"log"
	"math"
	"strings"
)

// StickingRate composes an arbitrary base rate law with a sticking
// correction model. The base law evaluates a dimensionless sticking
// probability; the composed rate converts it to a rate constant using
// the site density, the square root of temperature, and the
// molecular-flux multiplier, optionally applying the Motz & Wise
// correction for sticking coefficients near 1.
type StickingRate struct {
	// Base is the underlying temperature-dependent law for the
	// sticking coefficient.
	Base RateLaw

	// Sticking computes the surface and flux corrections.
	Sticking *StickingModel
}

// NewStickingRate composes base with a fresh sticking model.
func NewStickingRate(base RateLaw) *StickingRate {
	return &StickingRate{Base: base, Sticking: NewStickingModel()}
}

// Type returns "sticking-" followed by the base law's type.
func (r *StickingRate) Type() string { return "sticking-" + r.Base.Type() }

// SetParameters configures first the coverage and sticking options
// and then the base law from the "sticking-coefficient" sub-block.
// When the sub-block is absent the base law keeps whatever
// configuration it already has; an explicit empty sub-block resets it
// to its neutral state.
func (r *StickingRate) SetParameters(p Params) error {
	if err := r.Sticking.SetParameters(p); err != nil {
		return err
	}
	if err := r.Sticking.SetStickingParameters(p); err != nil {
		return err
	}
	negA, err := p.Bool("negative-A", false)
	if err != nil {
		return err
	}
	r.Base.SetAllowNegativeA(negA)
	if !p.Has("sticking-coefficient") {
		return nil
	}
	sub, err := p.Sub("sticking-coefficient")
	if err != nil {
		return err
	}
	return r.Base.SetRateParameters(sub)
}

// Parameters stores the parameters needed to reconstruct an
// equivalent rate into p.
func (r *StickingRate) Parameters(p Params) {
	p["type"] = r.Type()
	if r.Base.AllowNegativeA() {
		p["negative-A"] = true
	}
	r.Sticking.StickingParameters(p)
	rateNode := Params{}
	r.Base.RateParameters(rateNode)
	if len(rateNode) > 0 {
		p["sticking-coefficient"] = rateNode
	}
	r.Sticking.Parameters(p)
}

// BindContext binds the base law's context, then the coverage
// context, then the sticking context.
func (r *StickingRate) BindContext(rxn *Reaction, kin Kinetics) error {
	if err := r.Base.BindContext(rxn, kin); err != nil {
		return err
	}
	if err := r.Sticking.BindContext(rxn, kin); err != nil {
		return err
	}
	return r.Sticking.BindStickingContext(rxn, kin)
}

// SetSpecies resolves coverage species names against the ordered
// species list shared with the thermodynamic data.
func (r *StickingRate) SetSpecies(species []string) {
	r.Sticking.SetSpecies(species)
}

// UpdateFromData refreshes the base law if it carries shared-data
// state, then the sticking model (which performs the coverage refresh
// before recomputing the site-density factor).
func (r *StickingRate) UpdateFromData(d *SharedData) {
	if ref, ok := r.Base.(DataRefresher); ok {
		ref.UpdateFromData(d)
	}
	r.Sticking.UpdateFromData(d)
}

// Eval evaluates the rate constant [kmol, m, s] from the sticking
// probability.
func (r *StickingRate) Eval(d *SharedData) float64 {
	out := r.Base.EvalRate(d.LogT, d.RecipT) *
		r.Sticking.CorrectionFactor(d.RecipT)
	if r.Sticking.UsesElectrochemistry() {
		// The physical interpretation of a sticking charge
		// transfer reaction remains to be resolved; the plain
		// voltage correction is applied as an approximation.
		out *= r.Sticking.VoltageCorrection()
	}
	if r.Sticking.motzWise {
		out /= 1 - 0.5*out
	}
	return out * r.Sticking.factor * d.SqrtT * r.Sticking.fluxMultiplier
}

// Validate checks the uncorrected base law at a fixed set of probe
// temperatures and logs a single warning naming the reaction and every
// temperature at which the sticking coefficient exceeds its physical
// upper bound of 1. The warning is advisory; evaluation proceeds
// unchanged.
func (r *StickingRate) Validate(equation string) {
	var bad []string
	for _, T := range stickingProbeTemperatures {
		k := r.Base.EvalRate(math.Log(T), 1/T)
		if k > 1 {
			bad = append(bad, fmt.Sprintf("%.1f", T))
		}
	}
	if len(bad) > 0 {
		log.Printf("surfkin: sticking coefficient is greater than 1 for reaction '%s' at T = %s",
			equation, strings.Join(bad, ", "))
	}
}

// DDTScaled is not supported for sticking rates; it always returns
// ErrNotImplemented.
func (r *StickingRate) DDTScaled(d *SharedData) (float64, error) {
	return 0, fmt.Errorf("surfkin: StickingRate.DDTScaled: %w", ErrNotImplemented)
}

// EffectivePreExponentialFactor returns the base law's
// pre-exponential factor modified by the current coverage correction.
func (r *StickingRate) EffectivePreExponentialFactor() float64 {
	return r.Base.PreExponentialFactor() *
		math.Exp(ln10*r.Sticking.acov+r.Sticking.mcov)
}

// EffectiveActivationEnergy returns the base law's activation energy
// [J/kmol] modified by the current coverage correction.
func (r *StickingRate) EffectiveActivationEnergy() float64 {
	return r.Base.ActivationEnergy() +
		r.Sticking.ecov*r.Sticking.consts.orDefault().GasConstant
}
