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

// Arrhenius is the modified Arrhenius rate law
//
//	k = A T^b exp(-Ea / (R T)).
//
// The activation energy divided by the gas constant is cached so
// evaluation needs no constant lookups.
type Arrhenius struct {
	// A is the pre-exponential factor. Its units depend on the
	// reaction order and are the caller's concern; for sticking
	// rates it is dimensionless.
	A float64

	// B is the temperature exponent.
	B float64

	// Ea is the activation energy [J/kmol].
	Ea float64

	eaR        float64 // Ea / R [K]
	consts     Constants
	negativeA  bool
	configured bool
}

// NewArrhenius returns a rate law with the given pre-exponential
// factor, temperature exponent, and activation energy [J/kmol].
func NewArrhenius(A, b, Ea float64) *Arrhenius {
	return &Arrhenius{
		A:          A,
		B:          b,
		Ea:         Ea,
		eaR:        Ea / SI.GasConstant,
		consts:     SI,
		configured: true,
	}
}

// Type returns "arrhenius".
func (r *Arrhenius) Type() string { return "arrhenius" }

// EvalRate evaluates the rate law.
func (r *Arrhenius) EvalRate(logT, recipT float64) float64 {
	return r.A * math.Exp(r.B*logT-r.eaR*recipT)
}

// PreExponentialFactor returns A.
func (r *Arrhenius) PreExponentialFactor() float64 { return r.A }

// ActivationEnergy returns the activation energy [J/kmol].
func (r *Arrhenius) ActivationEnergy() float64 { return r.Ea }

// SetAllowNegativeA sets whether a negative pre-exponential factor is
// accepted during configuration.
func (r *Arrhenius) SetAllowNegativeA(ok bool) { r.negativeA = ok }

// AllowNegativeA reports whether a negative pre-exponential factor is
// accepted.
func (r *Arrhenius) AllowNegativeA() bool { return r.negativeA }

// SetRateParameters configures the law from a mapping with keys "A",
// "b", and "Ea" [J/kmol]. A nil or empty mapping leaves the law
// unconfigured and evaluating to zero.
func (r *Arrhenius) SetRateParameters(p Params) error {
	if len(p) == 0 {
		r.A, r.B, r.Ea, r.eaR = 0, 0, 0, 0
		r.configured = false
		return nil
	}
	var err error
	if r.A, err = p.Float("A", 0); err != nil {
		return err
	}
	if r.A < 0 && !r.negativeA {
		return fmt.Errorf("surfkin: Arrhenius pre-exponential factor is negative (%g); "+
			"set negative-A to true to allow this", r.A)
	}
	if r.B, err = p.Float("b", 0); err != nil {
		return err
	}
	if r.Ea, err = p.Float("Ea", 0); err != nil {
		return err
	}
	r.eaR = r.Ea / r.consts.orDefault().GasConstant
	r.configured = true
	return nil
}

// RateParameters stores the parameters needed to reconstruct an
// identical law into p, or nothing if the law is unconfigured.
func (r *Arrhenius) RateParameters(p Params) {
	if !r.configured {
		return
	}
	p["A"] = r.A
	p["b"] = r.B
	p["Ea"] = r.Ea
}

// BindContext adopts the physical constants of the kinetics context.
// The Arrhenius law has no other context requirements.
func (r *Arrhenius) BindContext(rxn *Reaction, kin Kinetics) error {
	r.consts = kin.Constants()
	r.eaR = r.Ea / r.consts.orDefault().GasConstant
	return nil
}
