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

	"github.com/spf13/cast"
)

// Params holds already-parsed key/value configuration data for one
// reaction rate, as produced by a mechanism parser. Numeric values
// are expected to already be in SI units with amounts in kmol.
//
// Recognized keys are "rate-constant", "sticking-coefficient",
// "coverage-dependencies", "exchange-current-density-formulation",
// "beta", "motz-wise-correction", "sticking-species",
// "sticking-order", and "negative-A".
type Params map[string]interface{}

// Has reports whether key is present.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Float returns the value stored under key, or def if the key is
// absent. An error is returned if the stored value is not numeric.
func (p Params) Float(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return def, fmt.Errorf("surfkin: parameter %s: %v", key, err)
	}
	return f, nil
}

// Bool returns the value stored under key, or def if the key is
// absent.
func (p Params) Bool(key string, def bool) (bool, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return def, fmt.Errorf("surfkin: parameter %s: %v", key, err)
	}
	return b, nil
}

// String returns the value stored under key, or def if the key is
// absent.
func (p Params) String(key, def string) (string, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return def, fmt.Errorf("surfkin: parameter %s: %v", key, err)
	}
	return s, nil
}

// Sub returns the nested mapping stored under key, or nil if the key
// is absent.
func (p Params) Sub(key string) (Params, error) {
	v, ok := p[key]
	if !ok {
		return nil, nil
	}
	if sub, ok := v.(Params); ok {
		return sub, nil
	}
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return nil, fmt.Errorf("surfkin: parameter %s: %v", key, err)
	}
	return Params(m), nil
}

// Slice returns the list stored under key, or nil if the key is
// absent.
func (p Params) Slice(key string) ([]interface{}, error) {
	v, ok := p[key]
	if !ok {
		return nil, nil
	}
	s, err := cast.ToSliceE(v)
	if err != nil {
		return nil, fmt.Errorf("surfkin: parameter %s: %v", key, err)
	}
	return s, nil
}
