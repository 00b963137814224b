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

// Constants holds the physical constants used in rate calculations.
// They are passed in explicitly rather than being process-wide
// globals so that the library can be used with alternate unit
// systems.
type Constants struct {
	// GasConstant is the universal gas constant [J/kmol/K].
	GasConstant float64

	// Faraday is the Faraday constant [C/kmol].
	Faraday float64

	// Avogadro is the Avogadro number [1/kmol].
	Avogadro float64
}

// SI holds the default constant values, in SI units with amounts of
// substance expressed in kmol.
var SI = Constants{
	GasConstant: 8314.462618,
	Faraday:     9.64853321233e7,
	Avogadro:    6.02214076e26,
}

// orDefault returns c if it has been populated and the default SI
// values otherwise, so that zero-valued models remain usable.
func (c Constants) orDefault() Constants {
	if c == (Constants{}) {
		return SI
	}
	return c
}
