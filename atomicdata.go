/*
 * atomicdata.go, part of gocube.
 *
 * Copyright 2023 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goCube is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package cube

//A map from atomic numbers to element symbols.
//Note that just common "bio-elements" are present
var numberSymbol = map[int]string{
	1:  "H",
	4:  "Be",
	5:  "B",
	6:  "C",
	7:  "N",
	8:  "O",
	9:  "F",
	11: "Na",
	12: "Mg",
	14: "Si",
	15: "P",
	16: "S",
	17: "Cl",
	19: "K",
	20: "Ca",
	24: "Cr",
	25: "Mn",
	26: "Fe",
	27: "Co",
	29: "Cu",
	30: "Zn",
	34: "Se",
	35: "Br",
	53: "I",
}

//A map for assigning mass to elements.
var symbolMass = map[string]float64{
	"H":  1.0,
	"Be": 9.012,
	"B":  10.81,
	"C":  12.01,
	"N":  14.01,
	"O":  16.00,
	"F":  18.998,
	"Na": 22.99,
	"Mg": 24.30,
	"Si": 28.08,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.1,
	"Ca": 40.08,
	"Cr": 51.996,
	"Mn": 54.94,
	"Fe": 55.84,
	"Co": 58.93,
	"Cu": 63.55,
	"Zn": 65.38,
	"Se": 78.96,
	"Br": 79.904,
	"I":  126.90,
}
