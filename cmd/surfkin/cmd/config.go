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
	"bufio"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/BurntSushi/toml"
)

// ConfigData holds information about a SurfKin configuration.
type ConfigData struct {
	// MechanismFile is the path to the YAML mechanism file to
	// evaluate. The path can include environment variables.
	MechanismFile string

	// OutputFile is the path where the rate-constant table should be
	// written. If it is empty, the table is written to standard
	// output. The path can include environment variables.
	OutputFile string

	// TemperatureStart and TemperatureStop are the bounds [K] of the
	// temperature sweep, and TemperaturePoints is the number of
	// evenly spaced temperatures to evaluate. If unset, the sweep
	// goes from 300 K to 1000 K in 8 points.
	TemperatureStart  float64
	TemperatureStop   float64
	TemperaturePoints int

	// ElectricPotentials overrides the electric potential [V] of the
	// named phases before evaluation.
	ElectricPotentials map[string]float64

	// Coverages overrides the fractional coverages of the named
	// surface species before evaluation. The given values are
	// normalized to sum to 1.
	Coverages map[string]float64
}

// ReadConfigFile reads and parses a TOML configuration file.
func ReadConfigFile(filename string) (config *ConfigData, err error) {
	// Open the configuration file
	var (
		file  *os.File
		bytes []byte
	)
	file, err = os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("the configuration file you have specified, %v, does not "+
			"appear to exist. Please check the file name and location and "+
			"try again.\n", filename)
	}
	reader := bufio.NewReader(file)
	bytes, err = ioutil.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("problem reading configuration file: %v", err)
	}

	config = new(ConfigData)
	_, err = toml.Decode(string(bytes), config)
	if err != nil {
		return nil, fmt.Errorf(
			"there has been an error parsing the configuration file: %v\n", err)
	}

	config.MechanismFile = os.ExpandEnv(config.MechanismFile)
	config.OutputFile = os.ExpandEnv(config.OutputFile)

	if config.MechanismFile == "" {
		return nil, fmt.Errorf("you need to specify a mechanism file in the " +
			"configuration file (for example: " +
			"\"MechanismFile\":\"mechanism.yaml\")")
	}

	if config.TemperatureStart == 0 {
		config.TemperatureStart = 300
	}
	if config.TemperatureStop == 0 {
		config.TemperatureStop = 1000
	}
	if config.TemperaturePoints < 1 {
		config.TemperaturePoints = 8
	}
	if config.TemperatureStop < config.TemperatureStart {
		return nil, fmt.Errorf("TemperatureStop (%g) is below TemperatureStart (%g)",
			config.TemperatureStop, config.TemperatureStart)
	}

	return config, err
}
