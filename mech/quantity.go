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
	"fmt"
	"strconv"
	"strings"

	"github.com/ctessum/unit"
	"github.com/spatialmodel/surfkin"
)

// AmountDim is the dimension for amount of substance, which is not
// among the unit package's built-in dimensions. The SI base unit used
// throughout this library is the kmol.
var AmountDim = unit.NewDimension("kmol")

// Dimensions of the quantities appearing in mechanism files.
var (
	energyPerAmount = unit.Dimensions{
		unit.MassDim:   1,
		unit.LengthDim: 2,
		unit.TimeDim:   -2,
		AmountDim:      -1,
	}
	massPerAmount = unit.Dimensions{
		unit.MassDim: 1,
		AmountDim:    -1,
	}
	amountPerArea = unit.Dimensions{
		AmountDim:      1,
		unit.LengthDim: -2,
	}
	amountPerVolume = unit.Dimensions{
		AmountDim:      1,
		unit.LengthDim: -3,
	}
)

// unitTable maps recognized unit spellings to their conversion factor
// into base SI-kmol units and their dimensions. Temperature-like
// activation energies ("K") are handled separately because their
// conversion involves the gas constant.
var unitTable = map[string]struct {
	factor float64
	dims   unit.Dimensions
}{
	// Energy per amount.
	"J/kmol":   {1, energyPerAmount},
	"J/mol":    {1e3, energyPerAmount},
	"kJ/mol":   {1e6, energyPerAmount},
	"cal/mol":  {4.184e3, energyPerAmount},
	"kcal/mol": {4.184e6, energyPerAmount},
	"eV":       {9.64853321233e7, energyPerAmount},

	// Mass per amount.
	"kg/kmol": {1, massPerAmount},
	"g/mol":   {1, massPerAmount},
	"kg/mol":  {1e3, massPerAmount},

	// Amount per area.
	"kmol/m^2": {1, amountPerArea},
	"mol/m^2":  {1e-3, amountPerArea},
	"mol/cm^2": {10, amountPerArea},

	// Amount per volume.
	"kmol/m^3": {1, amountPerVolume},
	"mol/m^3":  {1e-3, amountPerVolume},
	"mol/cm^3": {1e3, amountPerVolume},
	"mol/l":    {1, amountPerVolume},
}

// parseQuantity interprets a mechanism-file value as a physical
// quantity with the wanted dimensions. Plain numbers are taken to
// already be in base SI-kmol units; strings carry a unit after the
// value, e.g. "28.01 g/mol", and are converted and dimension-checked.
func parseQuantity(v interface{}, want unit.Dimensions, what string) (float64, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case int:
		return float64(val), nil
	case float64:
		return val, nil
	case string:
		fields := strings.Fields(val)
		if len(fields) != 2 {
			return 0, fmt.Errorf("mech: %s: %q is not of the form 'value units'", what, val)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, fmt.Errorf("mech: %s: %v", what, err)
		}
		conv, ok := unitTable[fields[1]]
		if !ok {
			return 0, fmt.Errorf("mech: %s: unrecognized units %q", what, fields[1])
		}
		u := unit.New(x*conv.factor, conv.dims)
		if err := u.Check(want); err != nil {
			return 0, fmt.Errorf("mech: %s: %v", what, err)
		}
		return u.Value(), nil
	default:
		return 0, fmt.Errorf("mech: %s: cannot interpret %v (%T) as a quantity", what, v, v)
	}
}

// parseEnergy interprets a value as a molar energy [J/kmol]. In
// addition to energy units, an activation energy may be specified in
// Kelvin ("K"), i.e. energy divided by the gas constant.
func parseEnergy(v interface{}, consts surfkin.Constants, what string) (float64, error) {
	if s, ok := v.(string); ok {
		fields := strings.Fields(s)
		if len(fields) == 2 && fields[1] == "K" {
			x, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return 0, fmt.Errorf("mech: %s: %v", what, err)
			}
			return x * consts.GasConstant, nil
		}
	}
	return parseQuantity(v, energyPerAmount, what)
}

// parseTemperatureEnergy interprets a value as an energy divided by
// the gas constant [K]; energy units are converted using the gas
// constant.
func parseTemperatureEnergy(v interface{}, consts surfkin.Constants, what string) (float64, error) {
	if s, ok := v.(string); ok {
		fields := strings.Fields(s)
		if len(fields) == 2 && fields[1] != "K" {
			e, err := parseQuantity(v, energyPerAmount, what)
			if err != nil {
				return 0, err
			}
			return e / consts.GasConstant, nil
		}
		if len(fields) == 2 {
			x, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return 0, fmt.Errorf("mech: %s: %v", what, err)
			}
			return x, nil
		}
	}
	switch val := v.(type) {
	case nil:
		return 0, nil
	case int:
		return float64(val), nil
	case float64:
		return val, nil
	default:
		return 0, fmt.Errorf("mech: %s: cannot interpret %v (%T) as a quantity", what, v, v)
	}
}
