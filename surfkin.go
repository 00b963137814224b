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

// Package surfkin calculates reaction-rate constants for chemical
// reactions occurring at phase interfaces, such as gas reactions on
// catalytic surfaces and charge-transfer reactions on electrodes.
// Rates combine an arbitrary temperature-dependent base rate law with
// corrections for surface coverage, electric potential differences
// (Butler-Volmer), and sticking-coefficient kinetics.
package surfkin

// Version gives the version of this library.
const Version = "0.1.0"

// ln10 converts base-10 exponents in coverage corrections
// to natural exponents.
const ln10 = 2.302585092994046
