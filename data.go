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

import "math"

// SharedData holds thermodynamic and kinetic state shared by all
// reactions of one composed rate type during one evaluation pass.
// It is filled once per refresh by a Batch (or other caller) and must
// be treated as read-only by the rate models; refilling it while
// models are mid-refresh is the caller's error.
type SharedData struct {
	// T is the temperature [K], with its logarithm, reciprocal and
	// square root precomputed once per refresh.
	T      float64
	LogT   float64
	RecipT float64
	SqrtT  float64

	// Ready reports whether phase-wide quantities such as
	// SiteDensity are valid yet. Models leave their cached site
	// density unchanged when it is false.
	Ready bool

	// SiteDensity is the interface phase surface site density
	// [kmol/m²].
	SiteDensity float64

	// Coverages and LogCoverages hold the fractional surface
	// coverage and its natural logarithm for each species, in
	// kinetics species order.
	Coverages    []float64
	LogCoverages []float64

	// ElectricPotentials holds the electric potential [V] of each
	// phase.
	ElectricPotentials []float64

	// StandardChemPotentials holds the standard-state chemical
	// potential [J/kmol] of each species.
	StandardChemPotentials []float64

	// StandardConcentrations holds the standard concentration of
	// each species.
	StandardConcentrations []float64

	// PartialMolarEnthalpies holds the partial molar enthalpy
	// [J/kmol] of each species. It is only required by base rate
	// laws whose activation energy depends on the reaction
	// enthalpy.
	PartialMolarEnthalpies []float64
}

// SetTemperature sets the temperature and its precomputed
// transformations.
func (d *SharedData) SetTemperature(T float64) {
	d.T = T
	d.LogT = math.Log(T)
	d.RecipT = 1 / T
	d.SqrtT = math.Sqrt(T)
}

// Thermo supplies per-refresh thermodynamic state for one interface
// and its adjacent phases. It is implemented by Mechanism; external
// thermodynamic models can provide their own implementation.
type Thermo interface {
	// NSpecies returns the number of species.
	NSpecies() int

	// NPhases returns the number of phases.
	NPhases() int

	// Ready reports whether phase-wide quantities are valid.
	Ready() bool

	// SiteDensity returns the interface surface site density
	// [kmol/m²].
	SiteDensity() float64

	// Coverages copies the fractional species coverages into dst.
	Coverages(dst []float64)

	// ElectricPotentials copies the per-phase electric potentials
	// [V] into dst.
	ElectricPotentials(dst []float64)

	// StandardChemPotentials copies the per-species standard
	// chemical potentials [J/kmol] into dst.
	StandardChemPotentials(dst []float64)

	// StandardConcentrations copies the per-species standard
	// concentrations into dst.
	StandardConcentrations(dst []float64)

	// PartialMolarEnthalpies copies the per-species partial molar
	// enthalpies [J/kmol] into dst.
	PartialMolarEnthalpies(dst []float64)
}
