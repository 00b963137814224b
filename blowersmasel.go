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

// BlowersMasel is the Blowers-Masel approximation to the rate law
//
//	k = A T^b exp(-Ea(ΔH) / (R T)),
//
// where the effective activation energy depends on the reaction
// enthalpy ΔH through the intrinsic barrier Ea0 and the average bond
// dissociation energy W. Unlike Arrhenius, this law is stateful with
// respect to shared data: it implements DataRefresher and recomputes
// ΔH from the current partial molar enthalpies on every refresh.
type BlowersMasel struct {
	// A is the pre-exponential factor.
	A float64

	// B is the temperature exponent.
	B float64

	// Ea0 is the intrinsic (zero-enthalpy) activation energy
	// [J/kmol].
	Ea0 float64

	// W is the average bond dissociation energy [J/kmol].
	W float64

	ea0R    float64 // Ea0 / R [K]
	wR      float64 // W / R [K]
	deltaHR float64 // current ΔH / R [K]

	stoich     []indexedCoeff
	consts     Constants
	negativeA  bool
	configured bool
}

// NewBlowersMasel returns a rate law with the given pre-exponential
// factor, temperature exponent, intrinsic activation energy [J/kmol],
// and bond dissociation energy [J/kmol].
func NewBlowersMasel(A, b, Ea0, w float64) *BlowersMasel {
	return &BlowersMasel{
		A:          A,
		B:          b,
		Ea0:        Ea0,
		W:          w,
		ea0R:       Ea0 / SI.GasConstant,
		wR:         w / SI.GasConstant,
		consts:     SI,
		configured: true,
	}
}

// Type returns "blowers-masel".
func (r *BlowersMasel) Type() string { return "blowers-masel" }

// effectiveBarrierR returns the effective activation energy divided
// by the gas constant [K] for the given normalized reaction enthalpy
// deltaHR = ΔH/R [K].
func (r *BlowersMasel) effectiveBarrierR(deltaHR float64) float64 {
	switch {
	case deltaHR <= -4*r.ea0R:
		return 0
	case deltaHR >= 4*r.ea0R:
		return deltaHR
	default:
		vp := 2 * r.wR * (r.wR + r.ea0R) / (2*r.wR - r.ea0R)
		return (r.wR + deltaHR/2) * (vp - 2*r.wR + deltaHR) * (vp - 2*r.wR + deltaHR) /
			(vp*vp - 4*r.wR*r.wR + deltaHR*deltaHR)
	}
}

// EvalRate evaluates the rate law using the reaction enthalpy from
// the most recent UpdateFromData call.
func (r *BlowersMasel) EvalRate(logT, recipT float64) float64 {
	return r.A * math.Exp(r.B*logT-r.effectiveBarrierR(r.deltaHR)*recipT)
}

// PreExponentialFactor returns A.
func (r *BlowersMasel) PreExponentialFactor() float64 { return r.A }

// ActivationEnergy returns the current effective activation energy
// [J/kmol], which depends on the reaction enthalpy from the most
// recent refresh.
func (r *BlowersMasel) ActivationEnergy() float64 {
	return r.effectiveBarrierR(r.deltaHR) * r.consts.orDefault().GasConstant
}

// SetAllowNegativeA sets whether a negative pre-exponential factor is
// accepted during configuration.
func (r *BlowersMasel) SetAllowNegativeA(ok bool) { r.negativeA = ok }

// AllowNegativeA reports whether a negative pre-exponential factor is
// accepted.
func (r *BlowersMasel) AllowNegativeA() bool { return r.negativeA }

// SetRateParameters configures the law from a mapping with keys "A",
// "b", "Ea0" [J/kmol], and "w" [J/kmol]. A nil or empty mapping
// leaves the law unconfigured and evaluating to zero.
func (r *BlowersMasel) SetRateParameters(p Params) error {
	if len(p) == 0 {
		r.A, r.B, r.Ea0, r.W, r.ea0R, r.wR = 0, 0, 0, 0, 0, 0
		r.configured = false
		return nil
	}
	var err error
	if r.A, err = p.Float("A", 0); err != nil {
		return err
	}
	if r.A < 0 && !r.negativeA {
		return fmt.Errorf("surfkin: Blowers-Masel pre-exponential factor is negative (%g); "+
			"set negative-A to true to allow this", r.A)
	}
	if r.B, err = p.Float("b", 0); err != nil {
		return err
	}
	if r.Ea0, err = p.Float("Ea0", 0); err != nil {
		return err
	}
	if r.W, err = p.Float("w", 0); err != nil {
		return err
	}
	R := r.consts.orDefault().GasConstant
	r.ea0R = r.Ea0 / R
	r.wR = r.W / R
	r.configured = true
	return nil
}

// RateParameters stores the parameters needed to reconstruct an
// identical law into p, or nothing if the law is unconfigured.
func (r *BlowersMasel) RateParameters(p Params) {
	if !r.configured {
		return
	}
	p["A"] = r.A
	p["b"] = r.B
	p["Ea0"] = r.Ea0
	p["w"] = r.W
}

// BindContext captures the reaction's stoichiometric coefficients so
// that the reaction enthalpy can be recomputed from shared data, and
// adopts the physical constants of the kinetics context.
func (r *BlowersMasel) BindContext(rxn *Reaction, kin Kinetics) error {
	r.consts = kin.Constants()
	R := r.consts.orDefault().GasConstant
	r.ea0R = r.Ea0 / R
	r.wR = r.W / R
	r.stoich = r.stoich[:0]
	for name, nu := range rxn.Reactants {
		k, ok := kin.SpeciesIndex(name)
		if !ok {
			return fmt.Errorf("surfkin: reaction '%s': unknown reactant %s", rxn.Equation, name)
		}
		r.stoich = append(r.stoich, indexedCoeff{index: k, coeff: -nu})
	}
	for name, nu := range rxn.Products {
		k, ok := kin.SpeciesIndex(name)
		if !ok {
			return fmt.Errorf("surfkin: reaction '%s': unknown product %s", rxn.Equation, name)
		}
		r.stoich = append(r.stoich, indexedCoeff{index: k, coeff: nu})
	}
	return nil
}

// UpdateFromData recomputes the normalized reaction enthalpy from the
// current partial molar enthalpies. It implements DataRefresher.
func (r *BlowersMasel) UpdateFromData(d *SharedData) {
	if len(d.PartialMolarEnthalpies) == 0 {
		return
	}
	var dH float64
	for _, s := range r.stoich {
		dH += s.coeff * d.PartialMolarEnthalpies[s.index]
	}
	r.deltaHR = dH / r.consts.orDefault().GasConstant
}
