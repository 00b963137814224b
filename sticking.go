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

// stickingProbeTemperatures are the temperatures [K] at which a
// sticking coefficient is checked against its physical upper bound
// of 1 during validation.
var stickingProbeTemperatures = []float64{200, 500, 1000, 2000, 5000, 10000}

// StickingModel extends CoverageModel to convert a dimensionless
// sticking probability into a true rate constant via molecular-flux
// scaling, optionally with the Motz & Wise correction for sticking
// coefficients approaching 1.
type StickingModel struct {
	CoverageModel

	motzWise         bool
	explicitMotzWise bool

	stickingSpecies string
	explicitSpecies bool

	surfaceOrder  float64
	explicitOrder bool

	// fluxMultiplier is sqrt(R / (2 π M)) for the sticking
	// species' molar mass M, fixed at bind time.
	fluxMultiplier float64

	// factor is siteDensity^(-surfaceOrder), recomputed each
	// refresh because the site density may in general change with
	// surface composition.
	factor float64
}

// NewStickingModel returns a sticking model with no coverage
// dependencies and the Motz & Wise correction disabled.
func NewStickingModel() *StickingModel {
	m := &StickingModel{fluxMultiplier: 1}
	m.init()
	return m
}

// MotzWiseCorrection reports whether the Motz & Wise correction for
// high sticking coefficients is applied. It defaults to false.
func (m *StickingModel) MotzWiseCorrection() bool { return m.motzWise }

// SetMotzWiseCorrection explicitly enables or disables the Motz &
// Wise correction.
func (m *StickingModel) SetMotzWiseCorrection(motzWise bool) {
	m.motzWise = motzWise
	m.explicitMotzWise = true
}

// StickingSpecies returns the name of the species that sticks to the
// surface.
func (m *StickingModel) StickingSpecies() string { return m.stickingSpecies }

// SetStickingSpecies explicitly identifies the sticking species.
// Reactions with more than one non-surface reactant cannot infer the
// sticking species and require this.
func (m *StickingModel) SetStickingSpecies(species string) {
	m.stickingSpecies = species
	m.explicitSpecies = true
}

// StickingOrder returns the exponent applied to the site density.
func (m *StickingModel) StickingOrder() float64 { return m.surfaceOrder }

// SetStickingOrder overrides the exponent applied to the site
// density, which is otherwise derived from the reaction's surface
// stoichiometry at bind time.
func (m *StickingModel) SetStickingOrder(order float64) {
	m.surfaceOrder = order
	m.explicitOrder = true
}

// FluxMultiplier returns the molecular-flux scaling factor
// sqrt(R/(2 π M)) derived from the sticking species' molar mass.
func (m *StickingModel) FluxMultiplier() float64 { return m.fluxMultiplier }

// SetStickingParameters configures the sticking-specific options from
// a parameter mapping, reading the "motz-wise-correction",
// "sticking-species", and "sticking-order" keys.
func (m *StickingModel) SetStickingParameters(p Params) error {
	if p.Has("motz-wise-correction") {
		mw, err := p.Bool("motz-wise-correction", false)
		if err != nil {
			return err
		}
		m.SetMotzWiseCorrection(mw)
	}
	if p.Has("sticking-species") {
		sp, err := p.String("sticking-species", "")
		if err != nil {
			return err
		}
		m.SetStickingSpecies(sp)
	}
	if p.Has("sticking-order") {
		order, err := p.Float("sticking-order", 0)
		if err != nil {
			return err
		}
		m.SetStickingOrder(order)
	}
	return nil
}

// StickingParameters stores the explicitly set sticking options into
// p; derived values are not written so that reconstruction derives
// them the same way.
func (m *StickingModel) StickingParameters(p Params) {
	if m.explicitMotzWise {
		p["motz-wise-correction"] = m.motzWise
	}
	if m.explicitSpecies {
		p["sticking-species"] = m.stickingSpecies
	}
	if m.explicitOrder {
		p["sticking-order"] = m.surfaceOrder
	}
}

// BindStickingContext derives the sticking species (inferred only if
// the reaction has exactly one non-surface reactant), the surface
// order (each surface reactant's stoichiometric coefficient weighted
// by its site size, unless explicitly overridden), and the
// molecular-flux multiplier from the sticking species' molar mass. It
// must be called after the embedded CoverageModel's BindContext.
func (m *StickingModel) BindStickingContext(rxn *Reaction, kin Kinetics) error {
	stickingSpecies := m.stickingSpecies
	foundStick := false
	surfaceOrder := 0.0
	for name, nu := range rxn.Reactants {
		k, ok := kin.SpeciesIndex(name)
		if !ok {
			return fmt.Errorf("surfkin: reaction '%s': unknown reactant %s", rxn.Equation, name)
		}
		if kin.OnInterface(k) {
			surfaceOrder += nu * kin.SiteSize(k)
			continue
		}
		if m.explicitSpecies {
			if name == stickingSpecies {
				foundStick = true
			}
			continue
		}
		if stickingSpecies != "" {
			return fmt.Errorf("surfkin: reaction '%s' has multiple non-surface reactants; "+
				"the sticking species must be specified with sticking-species", rxn.Equation)
		}
		stickingSpecies = name
		foundStick = true
	}
	if stickingSpecies == "" {
		return fmt.Errorf("surfkin: reaction '%s' has no non-surface reactant; "+
			"a sticking species must be specified", rxn.Equation)
	}
	if !foundStick {
		return fmt.Errorf("surfkin: reaction '%s': sticking species %s is not a reactant",
			rxn.Equation, stickingSpecies)
	}
	m.stickingSpecies = stickingSpecies
	if !m.explicitOrder {
		m.surfaceOrder = surfaceOrder
	}

	k, ok := kin.SpeciesIndex(stickingSpecies)
	if !ok {
		return fmt.Errorf("surfkin: reaction '%s': unknown sticking species %s",
			rxn.Equation, stickingSpecies)
	}
	consts := kin.Constants().orDefault()
	m.fluxMultiplier = math.Sqrt(consts.GasConstant / (2 * math.Pi * kin.MolarMass(k)))
	return nil
}

// UpdateFromData performs the coverage refresh and then recomputes
// the cached site-density factor, strictly in that order.
func (m *StickingModel) UpdateFromData(d *SharedData) {
	m.CoverageModel.UpdateFromData(d)
	m.factor = math.Pow(m.siteDensity, -m.surfaceOrder)
}
