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
	"errors"
	"math"
	"testing"
)

// Serializing a configured rate and configuring a fresh one from the
// result must reproduce identical evaluations.
func TestParameterRoundTrip(t *testing.T) {
	m := ptMechanism(t)
	params := Params{
		"rate-constant": map[string]interface{}{"A": 3.7e20, "b": 0.5, "Ea": 2.13e8},
		"coverage-dependencies": []interface{}{
			map[string]interface{}{"species": "CO(S)", "a": 1.2, "m": 0.0, "e": 4000.0},
			map[string]interface{}{"species": "PT(S)", "a": 0.0, "m": 1.0, "e": 0.0},
		},
	}
	r := NewInterfaceRate(&Arrhenius{})
	if err := r.SetParameters(params); err != nil {
		t.Fatal(err)
	}
	if err := r.BindContext(coReaction(), m); err != nil {
		t.Fatal(err)
	}
	r.SetSpecies(m.SpeciesNames())

	serialized := Params{}
	r.Parameters(serialized)
	if serialized["type"] != "interface-arrhenius" {
		t.Errorf("type is %v, want interface-arrhenius", serialized["type"])
	}

	r2 := NewInterfaceRate(&Arrhenius{})
	if err := r2.SetParameters(serialized); err != nil {
		t.Fatal(err)
	}
	if err := r2.BindContext(coReaction(), m); err != nil {
		t.Fatal(err)
	}
	r2.SetSpecies(m.SpeciesNames())

	b := NewBatch(m)
	b.Add(r)
	b.Add(r2)
	out := make([]float64, 2)
	for _, T := range []float64{250, 800, 2000} {
		b.Refresh(T)
		b.Eval(out)
		if different(out[0], out[1], 1e-14) {
			t.Errorf("T=%g: round-tripped rate differs: %g != %g", T, out[1], out[0])
		}
	}
}

// Sticking rates must round-trip through their parameter mapping too.
func TestStickingRoundTrip(t *testing.T) {
	m := ptMechanism(t)
	params := Params{
		"sticking-coefficient": map[string]interface{}{"A": 0.8, "b": 0.0, "Ea": 1.0e7},
		"motz-wise-correction": true,
		"sticking-species":     "CO",
		"coverage-dependencies": []interface{}{
			map[string]interface{}{"species": "PT(S)", "a": 0.0, "m": 0.0, "e": 3000.0},
		},
	}
	r := NewStickingRate(&Arrhenius{})
	if err := r.SetParameters(params); err != nil {
		t.Fatal(err)
	}
	if err := r.BindContext(coReaction(), m); err != nil {
		t.Fatal(err)
	}
	r.SetSpecies(m.SpeciesNames())

	serialized := Params{}
	r.Parameters(serialized)
	if serialized["type"] != "sticking-arrhenius" {
		t.Errorf("type is %v, want sticking-arrhenius", serialized["type"])
	}

	r2 := NewStickingRate(&Arrhenius{})
	if err := r2.SetParameters(serialized); err != nil {
		t.Fatal(err)
	}
	if err := r2.BindContext(coReaction(), m); err != nil {
		t.Fatal(err)
	}
	r2.SetSpecies(m.SpeciesNames())

	b := NewBatch(m)
	b.Add(r)
	b.Add(r2)
	out := make([]float64, 2)
	b.Refresh(600)
	b.Eval(out)
	if different(out[0], out[1], 1e-14) {
		t.Errorf("round-tripped sticking rate differs: %g != %g", out[1], out[0])
	}
}

// The effective pre-exponential factor and activation energy report
// the base law's values shifted by the current coverage correction.
func TestEffectiveParameters(t *testing.T) {
	m := ptMechanism(t)
	const (
		A  = 1e15
		Ea = 5.0e7
	)
	r := NewInterfaceRate(NewArrhenius(A, 0, Ea))
	r.Coverage.AddCoverageDependence("CO(S)", 2, 1, 1500)
	if err := r.BindContext(coReaction(), m); err != nil {
		t.Fatal(err)
	}
	r.SetSpecies(m.SpeciesNames())

	b := NewBatch(m)
	b.Add(r)
	b.Refresh(900)

	acov := 2 * 0.3
	mcov := 1 * math.Log(0.3)
	ecov := 1500 * 0.3
	wantA := A * math.Exp(ln10*acov+mcov)
	wantEa := Ea + ecov*SI.GasConstant
	if v := r.EffectivePreExponentialFactor(); different(v, wantA, 1e-12) {
		t.Errorf("effective pre-exponential factor is %g, want %g", v, wantA)
	}
	if v := r.EffectiveActivationEnergy(); different(v, wantEa, 1e-12) {
		t.Errorf("effective activation energy is %g, want %g", v, wantEa)
	}
}

// Derivative evaluation must fail loudly and unconditionally.
func TestDDTScaledNotImplemented(t *testing.T) {
	m := ptMechanism(t)
	b := NewBatch(m)
	b.Refresh(500)
	rates := []Rate{
		NewInterfaceRate(NewArrhenius(1, 0, 0)),
		NewStickingRate(NewArrhenius(1, 0, 0)),
	}
	for _, r := range rates {
		if _, err := r.DDTScaled(b.Data()); !errors.Is(err, ErrNotImplemented) {
			t.Errorf("%s: error is %v, want ErrNotImplemented", r.Type(), err)
		}
	}
}

// A reaction may declare coverage effects with no intrinsic rate
// term: the missing rate-constant block configures a neutral base
// law instead of failing.
func TestMissingRateConstant(t *testing.T) {
	m := ptMechanism(t)
	r := NewInterfaceRate(&Arrhenius{})
	err := r.SetParameters(Params{
		"coverage-dependencies": []interface{}{
			map[string]interface{}{"species": "CO(S)", "a": 1.0, "m": 0.0, "e": 0.0},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := r.BindContext(coReaction(), m); err != nil {
		t.Fatal(err)
	}
	r.SetSpecies(m.SpeciesNames())

	serialized := Params{}
	r.Parameters(serialized)
	if _, ok := serialized["rate-constant"]; ok {
		t.Error("an unconfigured base law should not serialize a rate-constant block")
	}

	b := NewBatch(m)
	b.Add(r)
	b.Refresh(500)
	if v := r.Eval(b.Data()); v != 0 {
		t.Errorf("rate is %g, want 0 for a neutral base law", v)
	}
}

// Correction settings may be applied on their own: a base law
// configured through its constructor keeps its parameters when the
// mapping carries no rate-constant block, while an explicit empty
// block resets it to neutral.
func TestFlagOnlySetParameters(t *testing.T) {
	m := liMechanism(t, 14)
	r := NewInterfaceRate(NewArrhenius(2.0e3, 0, 0))
	if err := r.SetParameters(Params{"beta": 0.5}); err != nil {
		t.Fatal(err)
	}
	if err := r.BindContext(liReaction(), m); err != nil {
		t.Fatal(err)
	}
	r.SetSpecies(m.SpeciesNames())

	b := NewBatch(m)
	b.Add(r)
	b.Refresh(298.15)
	// All phases are at the same potential, so the voltage
	// correction is 1 and the rate is the constructor's A.
	if v := r.Eval(b.Data()); different(v, 2.0e3, 1e-12) {
		t.Errorf("rate is %g, want 2.0e3", v)
	}

	s := NewStickingRate(NewArrhenius(0.25, 0, 0))
	if err := s.SetParameters(Params{"motz-wise-correction": true}); err != nil {
		t.Fatal(err)
	}
	if v := s.Base.PreExponentialFactor(); different(v, 0.25, 1e-14) {
		t.Errorf("sticking pre-exponential factor is %g, want 0.25", v)
	}

	r2 := NewInterfaceRate(NewArrhenius(2.0e3, 0, 0))
	err := r2.SetParameters(Params{"rate-constant": map[string]interface{}{}})
	if err != nil {
		t.Fatal(err)
	}
	if v := r2.Base.PreExponentialFactor(); v != 0 {
		t.Errorf("an empty rate-constant block should reset the law; A is %g", v)
	}
}

// A negative pre-exponential factor requires the negative-A flag.
func TestNegativeA(t *testing.T) {
	r := NewInterfaceRate(&Arrhenius{})
	err := r.SetParameters(Params{
		"rate-constant": map[string]interface{}{"A": -1.0, "b": 0.0, "Ea": 0.0},
	})
	if err == nil {
		t.Error("negative A without negative-A flag should be an error")
	}

	r = NewInterfaceRate(&Arrhenius{})
	err = r.SetParameters(Params{
		"negative-A":    true,
		"rate-constant": map[string]interface{}{"A": -1.0, "b": 0.0, "Ea": 0.0},
	})
	if err != nil {
		t.Error(err)
	}
	serialized := Params{}
	r.Parameters(serialized)
	if serialized["negative-A"] != true {
		t.Error("negative-A flag should round-trip")
	}
}

// The Blowers-Masel law implements the optional refresh capability:
// its effective activation energy follows the reaction enthalpy from
// the shared data.
func TestBlowersMaselRefresh(t *testing.T) {
	m := NewMechanism()
	gas := m.AddPhase(Phase{Name: "gas"})
	surf := m.AddPhase(Phase{Name: "surface", Interface: true, SiteDensity: 2.7e-8})
	const dH = -8.0e7 // J/kmol
	if err := m.AddSpecies(gas, SpeciesInfo{Name: "CO", MolarMass: 28.01, Enthalpy: 0}); err != nil {
		t.Fatal(err)
	}
	if err := m.AddSpecies(surf, SpeciesInfo{Name: "PT(S)", MolarMass: 195.08}); err != nil {
		t.Fatal(err)
	}
	if err := m.AddSpecies(surf, SpeciesInfo{Name: "CO(S)", MolarMass: 223.09, Enthalpy: dH}); err != nil {
		t.Fatal(err)
	}
	if err := m.SetCoverages(map[string]float64{"PT(S)": 1}); err != nil {
		t.Fatal(err)
	}

	const (
		A   = 1e12
		Ea0 = 4.0e7
		w   = 1.0e9
	)
	r := NewInterfaceRate(NewBlowersMasel(A, 0, Ea0, w))
	if err := r.BindContext(coReaction(), m); err != nil {
		t.Fatal(err)
	}
	r.SetSpecies(m.SpeciesNames())

	b := NewBatch(m)
	b.Add(r)
	const T = 1000.0
	b.Refresh(T)

	R := SI.GasConstant
	ea0R := Ea0 / R
	wR := w / R
	dHR := dH / R
	vp := 2 * wR * (wR + ea0R) / (2*wR - ea0R)
	eaR := (wR + dHR/2) * (vp - 2*wR + dHR) * (vp - 2*wR + dHR) /
		(vp*vp - 4*wR*wR + dHR*dHR)
	want := A * math.Exp(-eaR/T)
	if v := r.Eval(b.Data()); different(v, want, 1e-12) {
		t.Errorf("rate is %g, want %g", v, want)
	}
	if v := r.Base.ActivationEnergy(); different(v, eaR*R, 1e-12) {
		t.Errorf("activation energy is %g, want %g", v, eaR*R)
	}

	// An exothermic enthalpy below -4 Ea0 drives the barrier to
	// zero.
	m.species[2].Enthalpy = -5 * Ea0
	b.Refresh(T)
	if v := r.Base.ActivationEnergy(); v != 0 {
		t.Errorf("activation energy is %g, want 0", v)
	}
}
