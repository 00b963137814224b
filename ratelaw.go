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

import "errors"

// ErrNotImplemented is returned by operations that are deliberately
// unsupported, such as temperature-derivative evaluation. Callers
// needing sensitivity information must use a different path.
var ErrNotImplemented = errors.New("surfkin: not implemented")

// RateLaw is a temperature-dependent base rate law that a surface
// correction can be composed with. The base law knows nothing about
// coverages, potentials, or sticking; those corrections are layered
// on by InterfaceRate and StickingRate.
type RateLaw interface {
	// Type returns an identifier for the law, e.g. "arrhenius".
	Type() string

	// EvalRate evaluates the temperature-dependent rate term given
	// the precomputed log and reciprocal of temperature.
	EvalRate(logT, recipT float64) float64

	// PreExponentialFactor returns the law's pre-exponential
	// factor.
	PreExponentialFactor() float64

	// ActivationEnergy returns the law's activation energy
	// [J/kmol].
	ActivationEnergy() float64

	// SetRateParameters configures the law from a parameter
	// mapping. A nil or empty mapping leaves the law in a neutral,
	// unconfigured state rather than returning an error, so that a
	// reaction can declare coverage effects with no intrinsic rate
	// term of its own.
	SetRateParameters(p Params) error

	// RateParameters stores the parameters needed to reconstruct
	// an identical law into p. It stores nothing if the law is
	// unconfigured.
	RateParameters(p Params)

	// SetAllowNegativeA sets whether a negative pre-exponential
	// factor is accepted during configuration.
	SetAllowNegativeA(ok bool)

	// AllowNegativeA reports whether a negative pre-exponential
	// factor is accepted.
	AllowNegativeA() bool

	// BindContext captures reaction-specific data the law needs,
	// such as stoichiometric coefficients. Laws without context
	// requirements return nil.
	BindContext(rxn *Reaction, kin Kinetics) error
}

// DataRefresher is an optional capability of a RateLaw: laws whose
// parameters depend on shared thermodynamic state implement it and
// are refreshed by the composed rate before each evaluation cycle.
// Laws that are stateless with respect to shared data simply omit it.
type DataRefresher interface {
	UpdateFromData(d *SharedData)
}

// Rate is a composed interface reaction rate: a base rate law plus
// surface corrections, exposing the union of both capability sets.
// It is implemented by InterfaceRate and StickingRate.
type Rate interface {
	// Type returns the composed rate type identifier, e.g.
	// "interface-arrhenius" or "sticking-blowers-masel".
	Type() string

	// SetParameters configures the correction model and the base
	// law from a parameter mapping. A mapping without a base-law
	// sub-block ("rate-constant" or "sticking-coefficient") leaves
	// the base law as previously configured; an explicit empty
	// sub-block resets it to its neutral state.
	SetParameters(p Params) error

	// Parameters stores the parameters needed to reconstruct an
	// equivalent rate into p.
	Parameters(p Params)

	// BindContext binds the rate to a specific reaction and
	// kinetics context. It must be called once, before SetSpecies.
	BindContext(rxn *Reaction, kin Kinetics) error

	// SetSpecies resolves coverage species names against the
	// ordered species list used by the shared data vectors. It
	// must be called once, after all parameters are set, before
	// any refresh.
	SetSpecies(species []string)

	// UpdateFromData recomputes cached correction terms from
	// freshly refreshed shared data.
	UpdateFromData(d *SharedData)

	// Eval evaluates the rate constant using the cached correction
	// terms and the given shared data.
	Eval(d *SharedData) float64

	// DDTScaled would evaluate the temperature derivative of the
	// rate divided by the rate. It is not supported for interface
	// rates and always returns ErrNotImplemented.
	DDTScaled(d *SharedData) (float64, error)

	// EffectivePreExponentialFactor returns the base law's
	// pre-exponential factor modified by the current coverage
	// correction. It is for reporting only; evaluation always goes
	// through Eval.
	EffectivePreExponentialFactor() float64

	// EffectiveActivationEnergy returns the base law's activation
	// energy [J/kmol] modified by the current coverage correction.
	EffectiveActivationEnergy() float64
}
