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

package cmd

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testMechanismYAML = `
phases:
  - name: gas
    species:
      - name: CO
        molar-mass: 28.01 g/mol
  - name: surface
    interface: true
    site-density: 2.7e-9 mol/cm^2
    species:
      - name: PT(S)
        molar-mass: 195.08
        coverage: 0.7
      - name: CO(S)
        molar-mass: 223.09
        coverage: 0.3
reactions:
  - equation: CO + PT(S) => CO(S)
    type: interface-arrhenius
    rate-constant:
      A: 1.0e13
`

func writeTestFiles(t *testing.T) (dir, configPath string) {
	dir, err := ioutil.TempDir("", "surfkin")
	if err != nil {
		t.Fatal(err)
	}
	mechPath := filepath.Join(dir, "mechanism.yaml")
	if err := ioutil.WriteFile(mechPath, []byte(testMechanismYAML), 0644); err != nil {
		t.Fatal(err)
	}
	config := `MechanismFile = "` + mechPath + `"
TemperatureStart = 400.0
TemperatureStop = 800.0
TemperaturePoints = 3
`
	configPath = filepath.Join(dir, "surfkin.toml")
	if err := ioutil.WriteFile(configPath, []byte(config), 0644); err != nil {
		t.Fatal(err)
	}
	return dir, configPath
}

func TestReadConfigFile(t *testing.T) {
	dir, configPath := writeTestFiles(t)
	defer os.RemoveAll(dir)

	config, err := ReadConfigFile(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if config.TemperaturePoints != 3 {
		t.Errorf("TemperaturePoints: got %d, want 3", config.TemperaturePoints)
	}
	if config.TemperatureStart != 400 || config.TemperatureStop != 800 {
		t.Errorf("temperature bounds: got %g-%g, want 400-800",
			config.TemperatureStart, config.TemperatureStop)
	}

	if _, err := ReadConfigFile(filepath.Join(dir, "nonexistent.toml")); err == nil {
		t.Error("reading a nonexistent configuration file should fail")
	}
}

func TestSweepTable(t *testing.T) {
	dir, configPath := writeTestFiles(t)
	defer os.RemoveAll(dir)

	config, err := ReadConfigFile(configPath)
	if err != nil {
		t.Fatal(err)
	}
	model, err := loadModel(config)
	if err != nil {
		t.Fatal(err)
	}
	table, temps := sweep(model, config)
	if len(temps) != 3 || temps[0] != 400 || temps[1] != 600 || temps[2] != 800 {
		t.Errorf("temperatures: got %v, want [400 600 800]", temps)
	}
	for j := range temps {
		if k := table.Get(0, j); k <= 0 {
			t.Errorf("rate at %g K is %g; want positive", temps[j], k)
		}
	}

	var buf bytes.Buffer
	if err := writeTable(&buf, model, table, temps); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "CO + PT(S) => CO(S)") {
		t.Errorf("output table is missing the reaction equation:\n%s", out)
	}
	if !strings.Contains(out, "600.0 K") {
		t.Errorf("output table is missing a temperature header:\n%s", out)
	}
}
