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

package mech

import (
	"github.com/spatialmodel/surfkin"
)

// Lithium returns a built-in example model of lithium intercalation at
// an electrode-electrolyte interface: Li⁺ from the electrolyte fills a
// vacancy on the electrode surface in a charge-transfer reaction with
// Butler-Volmer kinetics. It is useful for trying out the library and
// as a starting point for battery interface mechanisms.
func Lithium() (*Model, error) {
	m := surfkin.NewMechanism()
	elyt := m.AddPhase(surfkin.Phase{Name: "electrolyte"})
	ed := m.AddPhase(surfkin.Phase{Name: "electrode", Interface: true, SiteDensity: 1.0e-2})

	species := []struct {
		phase int
		info  surfkin.SpeciesInfo
	}{
		{elyt, surfkin.SpeciesInfo{Name: "Li+[elyt]", Charge: 1, MolarMass: 6.94, StandardConcentration: 1.2}},
		{ed, surfkin.SpeciesInfo{Name: "V[ed]", MolarMass: 1, StandardConcentration: 1}},
		{ed, surfkin.SpeciesInfo{Name: "Li[ed]", MolarMass: 6.94, StandardConcentration: 14}},
	}
	for _, s := range species {
		if err := m.AddSpecies(s.phase, s.info); err != nil {
			return nil, err
		}
	}
	if err := m.SetCoverages(map[string]float64{"V[ed]": 0.4, "Li[ed]": 0.6}); err != nil {
		return nil, err
	}

	beta := 0.5
	rs := reactionSpec{
		Equation:     "Li+[elyt] + V[ed] <=> Li[ed]",
		Type:         "interface-arrhenius",
		RateConstant: map[string]interface{}{"A": 2.5e3},
		Beta:         &beta,
	}
	entry, err := buildReaction(rs, m, m.SpeciesNames())
	if err != nil {
		return nil, err
	}

	return &Model{
		Description: "lithium intercalation example",
		Mechanism:   m,
		Reactions:   []*ReactionEntry{entry},
	}, nil
}
