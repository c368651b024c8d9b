/*
 * cube.go, part of gocube.
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

//Package cube provides reading and analysis of Gaussian cube files, the
//text format pairing a molecular geometry with a scalar property sampled
//on a regular 3D grid. The package parses a cube file into a Grid object
//and offers queries over the sampled values: extrema, sums, an approximate
//volume and spatial integral, and an isosurface threshold for a given
//coverage of the total property.
package cube

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

/**Note: some "fundamental" methods here panic instead of returning errors,
 * following the same logic as the rest of the library: if you index a grid
 * out of its bounds, the program is way-most likely wrong and should crash.**/

//Atom represents one atom of the molecular geometry stored in a cube file.
//Symbol and Mass are filled from the atomic number upon reading, when the
//element is known to the library, and are left zero-valued otherwise.
type Atom struct {
	AtomicNumber  int
	NuclearCharge float64 //can differ from AtomicNumber in pseudopotential calculations
	Position      [3]float64
	Symbol        string
	Mass          float64
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("goCube: Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.AtomicNumber = A.AtomicNumber
	Newat.NuclearCharge = A.NuclearCharge
	Newat.Position = A.Position
	Newat.Symbol = A.Symbol
	Newat.Mass = A.Mass
	return Newat
}

//Axis describes one dimension of the grid: the number of points along it
//and the displacement vector between adjacent points. The vector needs not
//be aligned with a Cartesian axis, so grids can be non-orthogonal.
type Axis struct {
	Points int
	Vector [3]float64
}

//Norm returns the Euclidean norm of the axis displacement vector, i.e. the
//distance between adjacent grid points along this axis.
func (A Axis) Norm() float64 {
	return floats.Norm(A.Vector[:], 2)
}

//Grid is a parsed cube file: two comment lines, the grid geometry, the
//molecular geometry and the flat sequence of sampled values. A Grid is only
//ever produced fully populated by Read/ReadFile and is meant to be read-only
//afterwards.
type Grid struct {
	comment1 string
	comment2 string
	origin   [3]float64
	axes     [3]Axis
	perPoint int //data values stored per grid vertex, NVAL in the format spec
	atoms    []*Atom
	data     []float64
}

//Comment1 returns the first comment line of the file, without the line
//terminator. Cube comments carry no semantic meaning.
func (G *Grid) Comment1() string {
	return G.comment1
}

//Comment2 returns the second comment line of the file, without the line
//terminator.
func (G *Grid) Comment2() string {
	return G.comment2
}

//Origin returns the position of the grid vertex (0,0,0). Units are those of
//the file, conventionally Bohr.
func (G *Grid) Origin() [3]float64 {
	return G.origin
}

//XAxis returns the descriptor for the first (slowest-varying) grid axis.
func (G *Grid) XAxis() Axis {
	return G.axes[0]
}

//YAxis returns the descriptor for the second grid axis.
func (G *Grid) YAxis() Axis {
	return G.axes[1]
}

//ZAxis returns the descriptor for the third (fastest-varying) grid axis.
func (G *Grid) ZAxis() Axis {
	return G.axes[2]
}

//PerPoint returns the number of data values stored per grid vertex. It is
//1 for almost every cube file in the wild.
func (G *Grid) PerPoint() int {
	return G.perPoint
}

//Len returns the number of atoms in the molecular geometry.
func (G *Grid) Len() int {
	return len(G.atoms)
}

//Atom returns the Atom corresponding to the index i, in file order.
//It panics if i is out of range.
func (G *Grid) Atom(i int) *Atom {
	if i < 0 || i >= len(G.atoms) {
		panic("goCube: Atom index out of range")
	}
	return G.atoms[i]
}

//Coords returns the positions of all atoms as an N x 3 matrix, in file
//order. It returns nil for a grid without atoms.
func (G *Grid) Coords() *mat.Dense {
	if len(G.atoms) == 0 {
		return nil
	}
	c := mat.NewDense(len(G.atoms), 3, nil)
	for i, v := range G.atoms {
		c.SetRow(i, v.Position[:])
	}
	return c
}

//GridPoints returns the number of spatial vertexes in the grid, i.e. the
//product of the point counts of the three axes.
func (G *Grid) GridPoints() int {
	return G.axes[0].Points * G.axes[1].Points * G.axes[2].Points
}

//DataLen returns the total number of data values in the grid, which is
//GridPoints()*PerPoint().
func (G *Grid) DataLen() int {
	return len(G.data)
}

//i2d returns the index in the flat data slice for the grid vertex (i,j,k)
//and the per-vertex component c. The flat order is the one of the format:
//all components of one vertex are contiguous, then the third axis varies
//fastest among the spatial axes and the first one slowest.
func (G *Grid) i2d(i, j, k, c int) int {
	if i < 0 || i >= G.axes[0].Points || j < 0 || j >= G.axes[1].Points ||
		k < 0 || k >= G.axes[2].Points || c < 0 || c >= G.perPoint {
		panic("goCube: Grid index out of range")
	}
	return ((i*G.axes[1].Points+j)*G.axes[2].Points+k)*G.perPoint + c
}

//Value returns the data value at the grid vertex (i,j,k). For grids with
//more than one value per vertex the component can be given as an additional
//argument (it defaults to 0). It panics if any index is out of range.
func (G *Grid) Value(i, j, k int, component ...int) float64 {
	c := 0
	if len(component) > 0 {
		c = component[0]
	}
	return G.data[G.i2d(i, j, k, c)]
}

//View returns the internal flat data slice of the grid. It is a view, not a
//copy: writing to it corrupts the Grid. Use CopyData if you need to modify
//the values.
func (G *Grid) View() []float64 {
	return G.data
}

//CopyData returns a copy of the flat data sequence. If a destination slice
//with enough room is given, it is used (truncated to the exact length) and
//returned; otherwise a new slice is allocated.
func (G *Grid) CopyData(dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= len(G.data) {
		d = dest[0][:len(G.data)]
	} else {
		d = make([]float64, len(G.data))
	}
	copy(d, G.data)
	return d
}
