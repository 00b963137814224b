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

// Reaction describes one interface reaction: its equation and the
// stoichiometric coefficients of its reactants and products. It is
// the context that composed rate laws bind against.
type Reaction struct {
	// Equation is the reaction equation, e.g. "H2 + 2 PT(S) => 2 H(S)".
	// It is used in warning and error messages.
	Equation string

	// Reactants and Products map species names to their (positive)
	// stoichiometric coefficients.
	Reactants map[string]float64
	Products  map[string]float64
}

// Kinetics provides the species and phase context needed to bind a
// rate law to a specific reaction: the ordered species list shared
// with the Thermo collaborator, and per-species metadata.
type Kinetics interface {
	// SpeciesNames returns all species names, in the order used by
	// coverage and thermodynamic data vectors.
	SpeciesNames() []string

	// SpeciesIndex returns the index of the named species and
	// whether it exists.
	SpeciesIndex(name string) (int, bool)

	// PhaseIndex returns the index of the phase holding species k.
	PhaseIndex(k int) int

	// NPhases returns the number of phases.
	NPhases() int

	// Charge returns the charge of species k in units of the
	// elementary charge.
	Charge(k int) float64

	// MolarMass returns the molar mass of species k [kg/kmol].
	MolarMass(k int) float64

	// SiteSize returns the number of surface sites occupied by
	// species k. It is 1 for species that occupy a single site and
	// for all non-surface species.
	SiteSize(k int) float64

	// OnInterface reports whether species k belongs to the
	// interface (surface) phase.
	OnInterface(k int) bool

	// Constants returns the physical constants to use for rates
	// bound to this kinetics context.
	Constants() Constants
}

// indexedCoeff pairs a species or phase index with a numeric
// coefficient.
type indexedCoeff struct {
	index int
	coeff float64
}
