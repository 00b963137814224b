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

// Package mech reads interface reaction mechanisms from YAML files and
// assembles them into ready-to-evaluate rate batches.
package mech

import (
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/spatialmodel/surfkin"
	"gopkg.in/yaml.v3"
)

// mechFile is the top-level YAML schema of a mechanism file.
type mechFile struct {
	Description string         `yaml:"description"`
	Phases      []phaseSpec    `yaml:"phases"`
	Reactions   []reactionSpec `yaml:"reactions"`
}

type phaseSpec struct {
	Name              string        `yaml:"name"`
	Interface         bool          `yaml:"interface"`
	SiteDensity       interface{}   `yaml:"site-density"`
	ElectricPotential float64       `yaml:"electric-potential"`
	Species           []speciesSpec `yaml:"species"`
}

type speciesSpec struct {
	Name                  string      `yaml:"name"`
	Charge                float64     `yaml:"charge"`
	MolarMass             interface{} `yaml:"molar-mass"`
	Sites                 float64     `yaml:"sites"`
	Coverage              float64     `yaml:"coverage"`
	StandardChemPotential interface{} `yaml:"standard-chemical-potential"`
	StandardConcentration interface{} `yaml:"standard-concentration"`
	Enthalpy              interface{} `yaml:"enthalpy"`
}

type reactionSpec struct {
	Equation               string                   `yaml:"equation"`
	Type                   string                   `yaml:"type"`
	RateConstant           map[string]interface{}   `yaml:"rate-constant"`
	StickingCoefficient    map[string]interface{}   `yaml:"sticking-coefficient"`
	CoverageDependencies   []map[string]interface{} `yaml:"coverage-dependencies"`
	Beta                   *float64                 `yaml:"beta"`
	ExchangeCurrentDensity bool                     `yaml:"exchange-current-density-formulation"`
	MotzWise               *bool                    `yaml:"motz-wise-correction"`
	StickingSpecies        string                   `yaml:"sticking-species"`
	StickingOrder          *float64                 `yaml:"sticking-order"`
	NegativeA              bool                     `yaml:"negative-A"`
}

// ReactionEntry pairs a parsed reaction with its configured rate.
type ReactionEntry struct {
	Reaction *surfkin.Reaction
	Rate     surfkin.Rate
}

// Model is a fully assembled mechanism: the thermodynamic context and
// the configured reaction rates bound to it.
type Model struct {
	Description string
	Mechanism   *surfkin.Mechanism
	Reactions   []*ReactionEntry
}

// Load reads and assembles a mechanism from the YAML file at path.
func Load(path string) (*Model, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mech: %v", err)
	}
	model, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("mech: %s: %v", path, err)
	}
	return model, nil
}

// Parse assembles a mechanism from YAML data.
func Parse(data []byte) (*Model, error) {
	var f mechFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("mech: %v", err)
	}
	if len(f.Phases) == 0 {
		return nil, fmt.Errorf("mech: no phases defined")
	}

	m := surfkin.NewMechanism()
	coverages := make(map[string]float64)
	for _, ps := range f.Phases {
		siteDensity, err := parseQuantity(ps.SiteDensity, amountPerArea,
			fmt.Sprintf("phase %s: site-density", ps.Name))
		if err != nil {
			return nil, err
		}
		if ps.Interface && siteDensity <= 0 {
			return nil, fmt.Errorf("mech: interface phase %s needs a positive site-density", ps.Name)
		}
		phase := m.AddPhase(surfkin.Phase{
			Name:              ps.Name,
			Interface:         ps.Interface,
			SiteDensity:       siteDensity,
			ElectricPotential: ps.ElectricPotential,
		})
		for _, ss := range ps.Species {
			info, err := speciesInfo(ss, m.Constants())
			if err != nil {
				return nil, err
			}
			if err := m.AddSpecies(phase, info); err != nil {
				return nil, err
			}
			if ps.Interface && ss.Coverage > 0 {
				coverages[ss.Name] = ss.Coverage
			}
		}
	}
	if len(coverages) > 0 {
		if err := m.SetCoverages(coverages); err != nil {
			return nil, err
		}
	}

	model := &Model{Description: f.Description, Mechanism: m}
	species := m.SpeciesNames()
	for i, rs := range f.Reactions {
		entry, err := buildReaction(rs, m, species)
		if err != nil {
			return nil, fmt.Errorf("mech: reaction %d: %v", i, err)
		}
		model.Reactions = append(model.Reactions, entry)
	}
	return model, nil
}

func speciesInfo(ss speciesSpec, consts surfkin.Constants) (surfkin.SpeciesInfo, error) {
	var info surfkin.SpeciesInfo
	var err error
	what := func(field string) string { return fmt.Sprintf("species %s: %s", ss.Name, field) }
	info.Name = ss.Name
	info.Charge = ss.Charge
	info.SiteSize = ss.Sites
	if info.MolarMass, err = parseQuantity(ss.MolarMass, massPerAmount, what("molar-mass")); err != nil {
		return info, err
	}
	if info.StandardChemPotential, err = parseEnergy(ss.StandardChemPotential, consts, what("standard-chemical-potential")); err != nil {
		return info, err
	}
	if info.StandardConcentration, err = parseQuantity(ss.StandardConcentration, amountPerVolume, what("standard-concentration")); err != nil {
		return info, err
	}
	if info.Enthalpy, err = parseEnergy(ss.Enthalpy, consts, what("enthalpy")); err != nil {
		return info, err
	}
	return info, nil
}

// buildReaction parses one reaction entry, constructs the rate named
// by its type, configures it, and binds it to the mechanism.
func buildReaction(rs reactionSpec, m *surfkin.Mechanism, species []string) (*ReactionEntry, error) {
	rxn, err := ParseEquation(rs.Equation)
	if err != nil {
		return nil, err
	}
	rate, err := NewRate(rs.Type)
	if err != nil {
		return nil, err
	}
	params, err := rateParams(rs, m.Constants())
	if err != nil {
		return nil, fmt.Errorf("'%s': %v", rs.Equation, err)
	}
	if err := rate.SetParameters(params); err != nil {
		return nil, err
	}
	if err := rate.BindContext(rxn, m); err != nil {
		return nil, err
	}
	rate.SetSpecies(species)
	if sr, ok := rate.(*surfkin.StickingRate); ok {
		sr.Validate(rxn.Equation)
	}
	return &ReactionEntry{Reaction: rxn, Rate: rate}, nil
}

// NewRate constructs an unconfigured rate of the named composed type.
func NewRate(typeName string) (surfkin.Rate, error) {
	switch typeName {
	case "interface-arrhenius":
		return surfkin.NewInterfaceRate(&surfkin.Arrhenius{}), nil
	case "interface-blowers-masel":
		return surfkin.NewInterfaceRate(&surfkin.BlowersMasel{}), nil
	case "sticking-arrhenius":
		return surfkin.NewStickingRate(&surfkin.Arrhenius{}), nil
	case "sticking-blowers-masel":
		return surfkin.NewStickingRate(&surfkin.BlowersMasel{}), nil
	}
	return nil, fmt.Errorf("mech: unknown rate type %q", typeName)
}

// rateParams converts a reaction's YAML fields into the parameter mapping the
// rate types consume, converting unit-bearing strings to base SI-kmol
// values along the way.
func rateParams(rs reactionSpec, consts surfkin.Constants) (surfkin.Params, error) {
	p := surfkin.Params{}
	if rs.NegativeA {
		p["negative-A"] = true
	}
	if rs.Beta != nil {
		p["beta"] = *rs.Beta
	}
	if rs.ExchangeCurrentDensity {
		p["exchange-current-density-formulation"] = true
	}
	if rs.MotzWise != nil {
		p["motz-wise-correction"] = *rs.MotzWise
	}
	if rs.StickingSpecies != "" {
		p["sticking-species"] = rs.StickingSpecies
	}
	if rs.StickingOrder != nil {
		p["sticking-order"] = *rs.StickingOrder
	}
	if rs.RateConstant != nil {
		sub, err := baseLawParams(rs.RateConstant, consts)
		if err != nil {
			return nil, err
		}
		p["rate-constant"] = map[string]interface{}(sub)
	}
	if rs.StickingCoefficient != nil {
		sub, err := baseLawParams(rs.StickingCoefficient, consts)
		if err != nil {
			return nil, err
		}
		p["sticking-coefficient"] = map[string]interface{}(sub)
	}
	if len(rs.CoverageDependencies) > 0 {
		deps := make([]interface{}, 0, len(rs.CoverageDependencies))
		for _, raw := range rs.CoverageDependencies {
			dep := map[string]interface{}{}
			for key, v := range raw {
				if key == "e" {
					e, err := parseTemperatureEnergy(v, consts, "coverage dependency: e")
					if err != nil {
						return nil, err
					}
					dep[key] = e
					continue
				}
				dep[key] = v
			}
			deps = append(deps, dep)
		}
		p["coverage-dependencies"] = deps
	}
	return p, nil
}

// baseLawParams converts a rate-constant or sticking-coefficient block,
// translating the energy-valued entries Ea, Ea0, and w.
func baseLawParams(raw map[string]interface{}, consts surfkin.Constants) (surfkin.Params, error) {
	p := surfkin.Params{}
	for key, v := range raw {
		switch key {
		case "Ea", "Ea0", "w":
			e, err := parseEnergy(v, consts, key)
			if err != nil {
				return nil, err
			}
			p[key] = e
		default:
			p[key] = v
		}
	}
	return p, nil
}

// ParseEquation parses a reaction equation such as
// "H2 + 2 PT(S) => 2 H(S)" or "A + B <=> C" into a Reaction. Species
// are separated by " + " with surrounding spaces, so species names may
// themselves contain "+", as in "Li+[elyt]".
func ParseEquation(eq string) (*surfkin.Reaction, error) {
	var sep string
	switch {
	case strings.Contains(eq, "<=>"):
		sep = "<=>"
	case strings.Contains(eq, "=>"):
		sep = "=>"
	case strings.Contains(eq, " = "):
		sep = " = "
	default:
		return nil, fmt.Errorf("mech: equation %q has no reaction arrow", eq)
	}
	sides := strings.SplitN(eq, sep, 2)
	reactants, err := parseSide(sides[0], eq)
	if err != nil {
		return nil, err
	}
	products, err := parseSide(sides[1], eq)
	if err != nil {
		return nil, err
	}
	return &surfkin.Reaction{
		Equation:  eq,
		Reactants: reactants,
		Products:  products,
	}, nil
}

func parseSide(side, eq string) (map[string]float64, error) {
	out := make(map[string]float64)
	for _, term := range strings.Split(side, " + ") {
		term = strings.TrimSpace(term)
		if term == "" {
			return nil, fmt.Errorf("mech: equation %q has an empty term", eq)
		}
		coeff := 1.0
		name := term
		if fields := strings.Fields(term); len(fields) == 2 {
			c, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return nil, fmt.Errorf("mech: equation %q: bad coefficient in term %q", eq, term)
			}
			coeff = c
			name = fields[1]
		} else if len(fields) > 2 {
			return nil, fmt.Errorf("mech: equation %q: malformed term %q", eq, term)
		}
		out[name] += coeff
	}
	return out, nil
}

// Batch builds a shared-data evaluation batch holding all of the
// model's rates.
func (m *Model) Batch() *surfkin.Batch {
	b := surfkin.NewBatch(m.Mechanism)
	for _, e := range m.Reactions {
		b.Add(e.Rate)
	}
	return b
}

// BatchesByType groups the model's rates into one batch per composed
// rate type, preserving file order within each group. The returned
// type names are sorted by first appearance.
func (m *Model) BatchesByType() (types []string, batches map[string]*surfkin.Batch) {
	batches = make(map[string]*surfkin.Batch)
	for _, e := range m.Reactions {
		t := e.Rate.Type()
		b, ok := batches[t]
		if !ok {
			b = surfkin.NewBatch(m.Mechanism)
			batches[t] = b
			types = append(types, t)
		}
		b.Add(e.Rate)
	}
	return types, batches
}
