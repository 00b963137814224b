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
	"bytes"
	"log"
	"math"
	"os"
	"strings"
	"testing"
)

// With the Motz & Wise correction off and a surface order of zero,
// the sticking rate reduces to base × sqrt(T) × flux multiplier.
func TestStickingFluxScaling(t *testing.T) {
	m := ptMechanism(t)
	r := NewStickingRate(NewArrhenius(0.2, 0, 0))
	if err := r.SetParameters(Params{"sticking-order": 0.0}); err != nil {
		t.Fatal(err)
	}
	if err := r.BindContext(coReaction(), m); err != nil {
		t.Fatal(err)
	}
	r.SetSpecies(m.SpeciesNames())

	if r.Sticking.StickingSpecies() != "CO" {
		t.Errorf("sticking species is %s, want CO", r.Sticking.StickingSpecies())
	}
	wantMult := math.Sqrt(SI.GasConstant / (2 * math.Pi * 28.01))
	if different(r.Sticking.FluxMultiplier(), wantMult, 1e-14) {
		t.Errorf("flux multiplier is %g, want %g", r.Sticking.FluxMultiplier(), wantMult)
	}

	b := NewBatch(m)
	b.Add(r)
	for _, T := range []float64{300, 1200} {
		b.Refresh(T)
		want := 0.2 * math.Sqrt(T) * wantMult
		if v := r.Eval(b.Data()); different(v, want, 1e-13) {
			t.Errorf("T=%g: rate is %g, want %g", T, v, want)
		}
	}
}

// The surface order defaults to the total stoichiometric coefficient
// of surface reactants, and scales the rate by siteDensity^(-order).
func TestStickingSurfaceOrder(t *testing.T) {
	m := ptMechanism(t)
	rxn := &Reaction{
		Equation:  "H2 + 2 PT(S) => 2 H(S)",
		Reactants: map[string]float64{"H2": 1, "PT(S)": 2},
		Products:  map[string]float64{"H(S)": 2},
	}
	r := NewStickingRate(NewArrhenius(0.1, 0, 0))
	if err := r.BindContext(rxn, m); err != nil {
		t.Fatal(err)
	}
	r.SetSpecies(m.SpeciesNames())
	if r.Sticking.StickingOrder() != 2 {
		t.Fatalf("sticking order is %g, want 2", r.Sticking.StickingOrder())
	}

	b := NewBatch(m)
	b.Add(r)
	const T = 700.0
	b.Refresh(T)
	mult := math.Sqrt(SI.GasConstant / (2 * math.Pi * 2.016))
	want := 0.1 * math.Pow(2.7e-8, -2) * math.Sqrt(T) * mult
	if v := r.Eval(b.Data()); different(v, want, 1e-13) {
		t.Errorf("rate is %g, want %g", v, want)
	}
}

// A surface reactant occupying more than one site raises the derived
// sticking order by its site size.
func TestStickingSiteSize(t *testing.T) {
	m := NewMechanism()
	gas := m.AddPhase(Phase{Name: "gas"})
	surf := m.AddPhase(Phase{Name: "surface", Interface: true, SiteDensity: 2.7e-8})
	if err := m.AddSpecies(gas, SpeciesInfo{Name: "H2", MolarMass: 2.016}); err != nil {
		t.Fatal(err)
	}
	if err := m.AddSpecies(surf, SpeciesInfo{Name: "PT2(S)", MolarMass: 390.16, SiteSize: 2}); err != nil {
		t.Fatal(err)
	}
	if err := m.AddSpecies(surf, SpeciesInfo{Name: "H(S)", MolarMass: 196.09}); err != nil {
		t.Fatal(err)
	}
	if err := m.SetCoverages(map[string]float64{"PT2(S)": 1}); err != nil {
		t.Fatal(err)
	}
	if k, _ := m.SpeciesIndex("H2"); m.SiteSize(k) != 1 {
		t.Errorf("site size of H2 is %g, want the default 1", m.SiteSize(k))
	}

	rxn := &Reaction{
		Equation:  "H2 + 2 PT2(S) => 2 H(S)",
		Reactants: map[string]float64{"H2": 1, "PT2(S)": 2},
		Products:  map[string]float64{"H(S)": 2},
	}
	r := NewStickingRate(NewArrhenius(0.1, 0, 0))
	if err := r.BindContext(rxn, m); err != nil {
		t.Fatal(err)
	}
	r.SetSpecies(m.SpeciesNames())
	if r.Sticking.StickingOrder() != 4 {
		t.Fatalf("sticking order is %g, want 4", r.Sticking.StickingOrder())
	}

	b := NewBatch(m)
	b.Add(r)
	const T = 700.0
	b.Refresh(T)
	mult := math.Sqrt(SI.GasConstant / (2 * math.Pi * 2.016))
	want := 0.1 * math.Pow(2.7e-8, -4) * math.Sqrt(T) * mult
	if v := r.Eval(b.Data()); different(v, want, 1e-13) {
		t.Errorf("rate is %g, want %g", v, want)
	}
}

// A reaction with two non-surface reactants cannot infer its sticking
// species; naming one explicitly resolves the ambiguity.
func TestStickingSpeciesAmbiguity(t *testing.T) {
	m := ptMechanism(t)
	rxn := &Reaction{
		Equation:  "CO + H2 + 3 PT(S) => CO(S) + 2 H(S)",
		Reactants: map[string]float64{"CO": 1, "H2": 1, "PT(S)": 3},
		Products:  map[string]float64{"CO(S)": 1, "H(S)": 2},
	}
	r := NewStickingRate(NewArrhenius(0.1, 0, 0))
	if err := r.BindContext(rxn, m); err == nil {
		t.Error("binding an ambiguous sticking reaction should be an error")
	}

	r = NewStickingRate(NewArrhenius(0.1, 0, 0))
	if err := r.SetParameters(Params{"sticking-species": "H2"}); err != nil {
		t.Fatal(err)
	}
	if err := r.BindContext(rxn, m); err != nil {
		t.Fatal(err)
	}
	if r.Sticking.StickingSpecies() != "H2" {
		t.Errorf("sticking species is %s, want H2", r.Sticking.StickingSpecies())
	}
}

// A sticking species that is not a reactant is a configuration error.
func TestStickingSpeciesNotReactant(t *testing.T) {
	m := ptMechanism(t)
	r := NewStickingRate(NewArrhenius(0.1, 0, 0))
	if err := r.SetParameters(Params{"sticking-species": "H2"}); err != nil {
		t.Fatal(err)
	}
	if err := r.BindContext(coReaction(), m); err == nil {
		t.Error("should be an error")
	}
}

// The Motz & Wise transform v → v/(1 − 0.5 v) must stay finite and
// positive for v in (0, 2).
func TestMotzWiseBounds(t *testing.T) {
	m := ptMechanism(t)
	for _, stick := range []float64{1e-12, 0.1, 0.5, 1, 1.5, 1.999999} {
		r := NewStickingRate(NewArrhenius(stick, 0, 0))
		err := r.SetParameters(Params{
			"motz-wise-correction": true,
			"sticking-order":       0.0,
		})
		if err != nil {
			t.Fatal(err)
		}
		if err := r.BindContext(coReaction(), m); err != nil {
			t.Fatal(err)
		}
		r.SetSpecies(m.SpeciesNames())
		b := NewBatch(m)
		b.Add(r)
		b.Refresh(500)
		v := r.Eval(b.Data())
		if math.IsInf(v, 0) || math.IsNaN(v) || v <= 0 {
			t.Errorf("sticking coefficient %g: rate is %g; want finite and positive", stick, v)
		}
		want := stick / (1 - 0.5*stick) * math.Sqrt(500) * r.Sticking.FluxMultiplier()
		if different(v, want, 1e-12) {
			t.Errorf("sticking coefficient %g: rate is %g, want %g", stick, v, want)
		}
	}
}

// Motz & Wise defaults to off and must be applied when enabled.
func TestMotzWiseDefault(t *testing.T) {
	r := NewStickingModel()
	if r.MotzWiseCorrection() {
		t.Error("Motz & Wise correction should default to off")
	}
	r.SetMotzWiseCorrection(true)
	if !r.MotzWiseCorrection() {
		t.Error("Motz & Wise correction should be on")
	}
}

// A sticking coefficient above 1 at any probe temperature produces a
// single advisory warning naming the reaction and every offending
// temperature, and does not alter the computed value.
func TestStickingValidateWarning(t *testing.T) {
	m := ptMechanism(t)
	r := NewStickingRate(NewArrhenius(5, 0, 0))
	if err := r.BindContext(coReaction(), m); err != nil {
		t.Fatal(err)
	}
	r.SetSpecies(m.SpeciesNames())

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	r.Validate(coReaction().Equation)
	out := buf.String()
	if !strings.Contains(out, "CO + PT(S) => CO(S)") {
		t.Errorf("warning %q does not name the reaction", out)
	}
	if !strings.Contains(out, "200.0") || !strings.Contains(out, "10000.0") {
		t.Errorf("warning %q does not name all offending temperatures", out)
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("warning should be a single line, got %d:\n%s", n, out)
	}

	buf.Reset()
	ok := NewStickingRate(NewArrhenius(0.5, 0, 0))
	if err := ok.BindContext(coReaction(), m); err != nil {
		t.Fatal(err)
	}
	ok.Validate(coReaction().Equation)
	if buf.Len() != 0 {
		t.Errorf("unexpected warning for a valid sticking coefficient: %q", buf.String())
	}
}
