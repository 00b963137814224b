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

	"github.com/gonum/floats"
)

// Phase describes one phase participating in an interface: the
// interface itself or an adjacent bulk phase (gas, electrolyte,
// electrode).
type Phase struct {
	// Name identifies the phase.
	Name string

	// Interface reports whether this is the surface phase whose
	// species carry coverages.
	Interface bool

	// SiteDensity is the surface site density [kmol/m²]; it is
	// only meaningful for the interface phase.
	SiteDensity float64

	// ElectricPotential is the phase's electric potential [V].
	ElectricPotential float64
}

// SpeciesInfo describes one species and its standard-state
// thermodynamic data.
type SpeciesInfo struct {
	// Name identifies the species.
	Name string

	// Charge is the species charge in units of the elementary
	// charge.
	Charge float64

	// MolarMass is the molar mass [kg/kmol].
	MolarMass float64

	// SiteSize is the number of surface sites the species occupies.
	// Zero means the default of one site.
	SiteSize float64

	// StandardChemPotential is the standard-state chemical
	// potential [J/kmol].
	StandardChemPotential float64

	// StandardConcentration is the standard concentration, e.g.
	// [kmol/m³] for bulk species.
	StandardConcentration float64

	// Enthalpy is the partial molar enthalpy [J/kmol].
	Enthalpy float64
}

// Mechanism is an in-memory description of an interface and its
// adjacent phases. It implements both the Kinetics context that rate
// laws bind against and the Thermo source that batches refresh shared
// data from.
type Mechanism struct {
	consts Constants

	phases  []Phase
	species []SpeciesInfo
	phaseOf []int
	index   map[string]int

	// surfIndex lists the kinetics indices of interface species, in
	// order; surfCov holds their fractional coverages, parallel to
	// surfIndex.
	surfIndex []int
	surfCov   []float64

	ready bool
}

// NewMechanism returns an empty mechanism using the default SI
// constants.
func NewMechanism() *Mechanism {
	return &Mechanism{consts: SI, index: make(map[string]int)}
}

// SetConstants replaces the physical constants used by rates bound to
// this mechanism. It must be called before any rate is bound.
func (m *Mechanism) SetConstants(c Constants) { m.consts = c }

// Constants returns the physical constants. It implements Kinetics.
func (m *Mechanism) Constants() Constants { return m.consts }

// AddPhase appends a phase and returns its index.
func (m *Mechanism) AddPhase(p Phase) int {
	m.phases = append(m.phases, p)
	return len(m.phases) - 1
}

// AddSpecies adds a species to the phase with the given index. The
// coverage of a newly added interface species is zero until
// SetCoverages is called.
func (m *Mechanism) AddSpecies(phase int, s SpeciesInfo) error {
	if phase < 0 || phase >= len(m.phases) {
		return fmt.Errorf("surfkin: species %s: phase index %d out of range", s.Name, phase)
	}
	if _, ok := m.index[s.Name]; ok {
		return fmt.Errorf("surfkin: duplicate species %s", s.Name)
	}
	m.index[s.Name] = len(m.species)
	m.species = append(m.species, s)
	m.phaseOf = append(m.phaseOf, phase)
	if m.phases[phase].Interface {
		m.surfIndex = append(m.surfIndex, len(m.species)-1)
		m.surfCov = append(m.surfCov, 0)
	}
	return nil
}

// SetCoverages sets the fractional coverages of the interface
// species by name and normalizes them to sum to 1. Interface species
// not named get a coverage of zero. Calling it marks the mechanism
// ready.
func (m *Mechanism) SetCoverages(cov map[string]float64) error {
	for i := range m.surfCov {
		m.surfCov[i] = 0
	}
	for name, theta := range cov {
		k, ok := m.index[name]
		if !ok {
			return fmt.Errorf("surfkin: coverage given for unknown species %s", name)
		}
		if !m.phases[m.phaseOf[k]].Interface {
			return fmt.Errorf("surfkin: coverage given for non-surface species %s", name)
		}
		for i, ks := range m.surfIndex {
			if ks == k {
				m.surfCov[i] = theta
				break
			}
		}
	}
	sum := floats.Sum(m.surfCov)
	if sum <= 0 {
		return fmt.Errorf("surfkin: surface coverages sum to %g; they must have a positive sum", sum)
	}
	floats.Scale(1/sum, m.surfCov)
	m.ready = true
	return nil
}

// SetElectricPotential sets the electric potential [V] of the named
// phase.
func (m *Mechanism) SetElectricPotential(phase string, v float64) error {
	for i := range m.phases {
		if m.phases[i].Name == phase {
			m.phases[i].ElectricPotential = v
			return nil
		}
	}
	return fmt.Errorf("surfkin: unknown phase %s", phase)
}

// SpeciesNames returns all species names in kinetics order. It
// implements Kinetics.
func (m *Mechanism) SpeciesNames() []string {
	names := make([]string, len(m.species))
	for i, s := range m.species {
		names[i] = s.Name
	}
	return names
}

// SpeciesIndex returns the kinetics index of the named species. It
// implements Kinetics.
func (m *Mechanism) SpeciesIndex(name string) (int, bool) {
	k, ok := m.index[name]
	return k, ok
}

// PhaseIndex returns the index of the phase holding species k. It
// implements Kinetics.
func (m *Mechanism) PhaseIndex(k int) int { return m.phaseOf[k] }

// NPhases returns the number of phases. It implements Kinetics and
// Thermo.
func (m *Mechanism) NPhases() int { return len(m.phases) }

// NSpecies returns the number of species. It implements Thermo.
func (m *Mechanism) NSpecies() int { return len(m.species) }

// Charge returns the charge of species k in units of the elementary
// charge. It implements Kinetics.
func (m *Mechanism) Charge(k int) float64 { return m.species[k].Charge }

// MolarMass returns the molar mass of species k [kg/kmol]. It
// implements Kinetics.
func (m *Mechanism) MolarMass(k int) float64 { return m.species[k].MolarMass }

// SiteSize returns the number of surface sites occupied by species k,
// defaulting to 1. It implements Kinetics.
func (m *Mechanism) SiteSize(k int) float64 {
	if s := m.species[k].SiteSize; s > 0 {
		return s
	}
	return 1
}

// OnInterface reports whether species k belongs to the interface
// phase. It implements Kinetics.
func (m *Mechanism) OnInterface(k int) bool {
	return m.phases[m.phaseOf[k]].Interface
}

// Ready reports whether coverages have been set. It implements
// Thermo.
func (m *Mechanism) Ready() bool { return m.ready }

// SiteDensity returns the site density [kmol/m²] of the first
// interface phase, or zero if there is none. It implements Thermo.
func (m *Mechanism) SiteDensity() float64 {
	for _, p := range m.phases {
		if p.Interface {
			return p.SiteDensity
		}
	}
	return 0
}

// Coverages copies the fractional coverages into dst, with zero for
// non-surface species. It implements Thermo.
func (m *Mechanism) Coverages(dst []float64) {
	for i := range dst {
		dst[i] = 0
	}
	for i, k := range m.surfIndex {
		dst[k] = m.surfCov[i]
	}
}

// ElectricPotentials copies the per-phase electric potentials [V]
// into dst. It implements Thermo.
func (m *Mechanism) ElectricPotentials(dst []float64) {
	for i, p := range m.phases {
		dst[i] = p.ElectricPotential
	}
}

// StandardChemPotentials copies the per-species standard chemical
// potentials [J/kmol] into dst. It implements Thermo.
func (m *Mechanism) StandardChemPotentials(dst []float64) {
	for i, s := range m.species {
		dst[i] = s.StandardChemPotential
	}
}

// StandardConcentrations copies the per-species standard
// concentrations into dst. It implements Thermo.
func (m *Mechanism) StandardConcentrations(dst []float64) {
	for i, s := range m.species {
		dst[i] = s.StandardConcentration
	}
}

// PartialMolarEnthalpies copies the per-species partial molar
// enthalpies [J/kmol] into dst. It implements Thermo.
func (m *Mechanism) PartialMolarEnthalpies(dst []float64) {
	for i, s := range m.species {
		dst[i] = s.Enthalpy
	}
}
