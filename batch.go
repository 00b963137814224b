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

// coverageFloor keeps the logarithm of a zero coverage finite; the
// power-law correction only involves species with registered
// coverage dependencies, which have nonzero coverages in any
// physically meaningful state.
const coverageFloor = 1e-300

// Batch evaluates all reactions of one composed rate type against a
// single SharedData record, so that coverages and potentials are
// collected once per refresh rather than once per reaction. Refresh
// is O(number of coverage-dependent species per reaction); Eval is
// O(1) per reaction.
//
// A Batch is single-threaded: Refresh and Eval must not be called
// concurrently.
type Batch struct {
	thermo Thermo
	rates  []Rate
	data   SharedData
}

// NewBatch returns a batch drawing shared data from thermo.
func NewBatch(thermo Thermo) *Batch {
	n := thermo.NSpecies()
	b := &Batch{thermo: thermo}
	b.data.Coverages = make([]float64, n)
	b.data.LogCoverages = make([]float64, n)
	b.data.ElectricPotentials = make([]float64, thermo.NPhases())
	b.data.StandardChemPotentials = make([]float64, n)
	b.data.StandardConcentrations = make([]float64, n)
	b.data.PartialMolarEnthalpies = make([]float64, n)
	return b
}

// Add appends a composed rate to the batch. All members should share
// the batch's composed type so the shared data they see is refreshed
// consistently.
func (b *Batch) Add(r Rate) { b.rates = append(b.rates, r) }

// Len returns the number of rates in the batch.
func (b *Batch) Len() int { return len(b.rates) }

// Data returns the batch's shared data record. The record is
// read-only to callers between Refresh and Eval.
func (b *Batch) Data() *SharedData { return &b.data }

// Refresh fills the shared data record at temperature T [K] and
// updates the cached correction terms of every member rate.
func (b *Batch) Refresh(T float64) {
	d := &b.data
	d.SetTemperature(T)
	d.Ready = b.thermo.Ready()
	d.SiteDensity = b.thermo.SiteDensity()
	b.thermo.Coverages(d.Coverages)
	for i, theta := range d.Coverages {
		d.LogCoverages[i] = math.Log(math.Max(theta, coverageFloor))
	}
	b.thermo.ElectricPotentials(d.ElectricPotentials)
	b.thermo.StandardChemPotentials(d.StandardChemPotentials)
	b.thermo.StandardConcentrations(d.StandardConcentrations)
	b.thermo.PartialMolarEnthalpies(d.PartialMolarEnthalpies)

	for _, r := range b.rates {
		r.UpdateFromData(d)
	}
}

// Eval evaluates every member rate against the most recent refresh,
// storing results in dst, which must have length Len().
func (b *Batch) Eval(dst []float64) {
	for i, r := range b.rates {
		dst[i] = r.Eval(&b.data)
	}
}
