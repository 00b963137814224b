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

	"github.com/spf13/cast"
)

// CoverageDependency describes the dependence of a reaction rate on
// the surface coverage of one species: the rate is multiplied by
//
//	10^(A θ) θ^M exp(-E θ / (R T)),
//
// where θ is the species coverage.
type CoverageDependency struct {
	// Species is the name of the species whose coverage affects
	// the rate.
	Species string

	// A is the exponential (base-10) coefficient.
	A float64

	// M is the power-law exponent.
	M float64

	// E is the activation-energy dependence [K], i.e. energy
	// divided by the gas constant.
	E float64
}

// CoverageModel computes the coverage-dependent correction to an
// interface reaction rate, including the Butler-Volmer voltage
// correction for charge-transfer reactions, and, when the rate is
// specified as an exchange current density, the conversion back to a
// molar rate constant.
//
// A model is configured once from parsed reaction parameters
// (SetParameters, BindContext, SetSpecies) and then refreshed
// repeatedly from shared data. The three aggregate coverage terms are
// cached between refreshes so evaluation is O(1).
type CoverageModel struct {
	deps    []CoverageDependency
	indices []int // resolved species indices, parallel to deps

	// Aggregate coverage terms, recomputed each refresh:
	// acov contributes to the pre-exponential factor, ecov [K] to
	// the activation energy, and mcov is the power-law term.
	acov, ecov, mcov float64

	siteDensity float64

	chargeTransfer  bool
	exchangeCurrent bool
	beta            float64
	betaSet         bool

	deltaPotentialRT float64
	deltaGibbs0RT    float64
	prodStdConc      float64

	stoich     []indexedCoeff // species index, signed stoichiometric coefficient
	netCharges []indexedCoeff // phase index, Faraday × charge × signed coefficient

	consts Constants
	bound  bool
}

// NewCoverageModel returns a model with no coverage dependencies,
// contributing a neutral correction of 1 until configured otherwise.
func NewCoverageModel() *CoverageModel {
	m := &CoverageModel{}
	m.init()
	return m
}

func (m *CoverageModel) init() {
	m.siteDensity = math.NaN()
	m.beta = 0.5
	m.prodStdConc = 1
	m.consts = SI
}

// AddCoverageDependence registers a coverage dependency for the named
// species with exponential coefficient a, power-law exponent m, and
// activation-energy dependence e [K]. Dependencies must be registered
// before SetSpecies is called.
func (c *CoverageModel) AddCoverageDependence(species string, a, m, e float64) {
	c.deps = append(c.deps, CoverageDependency{Species: species, A: a, M: m, E: e})
}

// SetParameters configures the model from a parameter mapping,
// reading the "coverage-dependencies", "beta", and
// "exchange-current-density-formulation" keys. Entries under
// "coverage-dependencies" may be a list of mappings with keys
// "species", "a", "m", and "e", or a mapping from species name to a
// mapping with keys "a", "m", and "e".
func (c *CoverageModel) SetParameters(p Params) error {
	if c.consts == (Constants{}) {
		c.init()
	}
	var err error
	if p.Has("beta") {
		if c.beta, err = p.Float("beta", 0.5); err != nil {
			return err
		}
		c.betaSet = true
	}
	if c.exchangeCurrent, err = p.Bool("exchange-current-density-formulation", c.exchangeCurrent); err != nil {
		return err
	}
	if !p.Has("coverage-dependencies") {
		return nil
	}
	if list, err := p.Slice("coverage-dependencies"); err == nil && list != nil {
		for _, item := range list {
			m, err := cast.ToStringMapE(item)
			if err != nil {
				return fmt.Errorf("surfkin: malformed coverage dependency: %v", err)
			}
			dep := Params(m)
			name, err := dep.String("species", "")
			if err != nil || name == "" {
				return fmt.Errorf("surfkin: coverage dependency is missing a species name")
			}
			if err := c.addDependence(name, dep); err != nil {
				return err
			}
		}
		return nil
	}
	// Mapping form: species name → coefficients.
	deps, err := p.Sub("coverage-dependencies")
	if err != nil {
		return fmt.Errorf("surfkin: malformed coverage-dependencies: %v", err)
	}
	for name := range deps {
		dep, err := deps.Sub(name)
		if err != nil {
			return fmt.Errorf("surfkin: coverage dependency for %s: %v", name, err)
		}
		if err := c.addDependence(name, dep); err != nil {
			return err
		}
	}
	return nil
}

func (c *CoverageModel) addDependence(name string, dep Params) error {
	a, err := dep.Float("a", 0)
	if err != nil {
		return err
	}
	m, err := dep.Float("m", 0)
	if err != nil {
		return err
	}
	e, err := dep.Float("e", 0)
	if err != nil {
		return err
	}
	c.AddCoverageDependence(name, a, m, e)
	return nil
}

// Parameters stores the parameters needed to reconstruct an
// equivalent model into p. Coverage dependencies are written in the
// list form.
func (c *CoverageModel) Parameters(p Params) {
	if len(c.deps) > 0 {
		list := make([]interface{}, len(c.deps))
		for i, dep := range c.deps {
			list[i] = map[string]interface{}{
				"species": dep.Species,
				"a":       dep.A,
				"m":       dep.M,
				"e":       dep.E,
			}
		}
		p["coverage-dependencies"] = list
	}
	if c.betaSet {
		p["beta"] = c.beta
	}
	if c.exchangeCurrent {
		p["exchange-current-density-formulation"] = true
	}
}

// BindContext captures the reaction-specific quantities needed for
// charge-transfer corrections: the signed stoichiometric coefficients
// of all participating species and the net electric charge moved
// through each phase. It decides whether the reaction transfers
// charge at all; beta is only meaningful when it does.
func (c *CoverageModel) BindContext(rxn *Reaction, kin Kinetics) error {
	if c.consts == (Constants{}) {
		c.init()
	}
	c.consts = kin.Constants().orDefault()
	c.stoich = c.stoich[:0]
	c.netCharges = c.netCharges[:0]

	phaseCharge := make([]float64, kin.NPhases())
	add := func(name string, nu float64) error {
		k, ok := kin.SpeciesIndex(name)
		if !ok {
			return fmt.Errorf("surfkin: reaction '%s': unknown species %s", rxn.Equation, name)
		}
		c.stoich = append(c.stoich, indexedCoeff{index: k, coeff: nu})
		charge := c.consts.Faraday * kin.Charge(k) * nu
		c.netCharges = append(c.netCharges, indexedCoeff{index: kin.PhaseIndex(k), coeff: charge})
		phaseCharge[kin.PhaseIndex(k)] += kin.Charge(k) * nu
		return nil
	}
	for name, nu := range rxn.Reactants {
		if err := add(name, -nu); err != nil {
			return err
		}
	}
	for name, nu := range rxn.Products {
		if err := add(name, nu); err != nil {
			return err
		}
	}

	c.chargeTransfer = false
	for _, q := range phaseCharge {
		if q != 0 {
			c.chargeTransfer = true
			break
		}
	}
	if !c.chargeTransfer {
		c.netCharges = c.netCharges[:0]
	}
	c.bound = true
	return nil
}

// SetSpecies resolves the registered coverage-dependency species
// names to positions in the shared-data coverage vector. It must be
// called exactly once, after all dependencies are registered and
// before any refresh. Species that cannot be resolved are skipped,
// which leaves the model in an inconsistent state that surfaces as
// NaN correction terms rather than an error.
func (c *CoverageModel) SetSpecies(species []string) {
	c.indices = c.indices[:0]
	for _, dep := range c.deps {
		for k, name := range species {
			if name == dep.Species {
				c.indices = append(c.indices, k)
				break
			}
		}
	}
}

// UpdateFromData recomputes the cached coverage, potential, and
// standard-state terms from freshly refreshed shared data. If species
// resolution has not been performed (or was inconsistent), the three
// aggregate coverage terms are set to NaN so that misconfiguration is
// detectable downstream without aborting a batch.
func (c *CoverageModel) UpdateFromData(d *SharedData) {
	if d.Ready {
		c.siteDensity = d.SiteDensity
	}

	if len(c.indices) != len(c.deps) {
		// SetSpecies has not been run, or failed to resolve
		// every dependency.
		c.acov = math.NaN()
		c.ecov = math.NaN()
		c.mcov = math.NaN()
		return
	}
	c.acov = 0
	c.ecov = 0
	c.mcov = 0
	for i, dep := range c.deps {
		k := c.indices[i]
		c.acov += dep.A * d.Coverages[k]
		c.ecov += dep.E * d.Coverages[k]
		c.mcov += dep.M * d.LogCoverages[k]
	}

	// Change in electric potential energy across the interface.
	if c.chargeTransfer {
		c.deltaPotentialRT = 0
		for _, ch := range c.netCharges {
			c.deltaPotentialRT += d.ElectricPotentials[ch.index] * ch.coeff
		}
		c.deltaPotentialRT /= c.consts.GasConstant * d.T
	}

	// Quantities used by the exchange current density formulation.
	if c.exchangeCurrent {
		c.deltaGibbs0RT = 0
		c.prodStdConc = 1
		for _, s := range c.stoich {
			c.deltaGibbs0RT += d.StandardChemPotentials[s.index] * s.coeff
			if s.coeff > 0 {
				c.prodStdConc *= d.StandardConcentrations[s.index]
			}
		}
		c.deltaGibbs0RT /= c.consts.GasConstant * d.T
	}
}

// CorrectionFactor returns the aggregate coverage correction
//
//	10^acov exp(-ecov/T) exp(mcov)
//
// to be multiplied into the base rate, using the terms cached by the
// most recent refresh. It is NaN if species resolution has not been
// performed.
func (c *CoverageModel) CorrectionFactor(recipT float64) float64 {
	return math.Exp(ln10*c.acov - c.ecov*recipT + c.mcov)
}

// VoltageCorrection returns the charge-transfer correction to the
// forward rate. For reactions that move charge across a potential
// difference, the activation energy is shifted by the net electric
// potential energy change; the exponential form is used because it is
// numerically stable even when it drives the effective barrier below
// zero. When the rate was specified as an exchange current density
// [A/m²], the correction additionally converts it to a molar rate
// constant [kmol/m²/s].
func (c *CoverageModel) VoltageCorrection() float64 {
	correction := 1.0
	if c.deltaPotentialRT != 0 {
		correction = math.Exp(-c.beta * c.deltaPotentialRT)
	}
	if c.exchangeCurrent {
		correction *= math.Exp(-c.beta*c.deltaGibbs0RT) /
			(c.prodStdConc * c.consts.Faraday)
	}
	return correction
}

// UsesElectrochemistry reports whether the bound reaction transfers
// charge across the interface, in which case the Butler-Volmer
// correction is applied to the forward rate.
func (c *CoverageModel) UsesElectrochemistry() bool { return c.chargeTransfer }

// ExchangeCurrentDensityFormulation reports whether the rate is
// specified as an exchange current density.
func (c *CoverageModel) ExchangeCurrentDensityFormulation() bool { return c.exchangeCurrent }

// Beta returns the charge-transfer coefficient, or NaN if the bound
// reaction does not transfer charge.
func (c *CoverageModel) Beta() float64 {
	if c.chargeTransfer {
		return c.beta
	}
	return math.NaN()
}

// SiteDensity returns the cached surface site density [kmol/m²].
func (c *CoverageModel) SiteDensity() float64 { return c.siteDensity }

// SetSiteDensity overrides the cached surface site density [kmol/m²].
// The value is overwritten on the next refresh with ready shared
// data; this is chiefly useful in tests.
func (c *CoverageModel) SetSiteDensity(siteDensity float64) { c.siteDensity = siteDensity }

// Dependencies returns the registered coverage dependencies.
func (c *CoverageModel) Dependencies() []CoverageDependency { return c.deps }
