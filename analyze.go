/*
 * analyze.go, part of gocube.
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

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

/*All the queries here are pure functions of the Grid: they never modify it,
 * and a successful parse guarantees a non-empty data slice, so none of them
 * can fail on a Grid obtained from Read or ReadFile.*/

//MinValue returns the minimum value in the data set.
func (G *Grid) MinValue() float64 {
	return floats.Min(G.data)
}

//MaxValue returns the maximum value in the data set.
func (G *Grid) MaxValue() float64 {
	return floats.Max(G.data)
}

//AbsMinValue returns the data value that is closest to zero, with the sign
//discarded.
func (G *Grid) AbsMinValue() float64 {
	min := math.Abs(G.data[0])
	for _, v := range G.data[1:] {
		if a := math.Abs(v); a < min {
			min = a
		}
	}
	return min
}

//AbsMaxValue returns the data value that is furthest away from zero, with
//the sign discarded.
func (G *Grid) AbsMaxValue() float64 {
	max := math.Abs(G.data[0])
	for _, v := range G.data[1:] {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	return max
}

//SummedData returns the sum over all data points.
func (G *Grid) SummedData() float64 {
	return floats.Sum(G.data)
}

//AbsSummedData returns, despite its name, the plain signed sum over all
//data points, i.e. the same value as SummedData. The absolute values are
//never taken. This is a historical quirk, kept so results stay comparable
//with the tools this library replaces. Callers wanting a true sum of
//absolute values must compute it themselves from View or CopyData.
func (G *Grid) AbsSummedData() float64 {
	return G.SummedData()
}

//Volume returns the volume of the cuboid represented by this grid, as the
//product of the norms of the three axis vectors. Note that this treats the
//axes as if they were orthogonal: for a non-orthogonal grid it is an
//approximation, not the parallelepiped volume a scalar triple product would
//give. The unit is the third power of the length unit of the file,
//conventionally Bohr.
func (G *Grid) Volume() float64 {
	return G.axes[0].Norm() * G.axes[1].Norm() * G.axes[2].Norm()
}

//Integrate returns the property represented by this grid integrated over
//the whole cuboid, approximated as SummedData()*Volume(). The unit is that
//of the data values times the cube of the length unit of the file.
func (G *Grid) Integrate() float64 {
	return G.SummedData() * G.Volume()
}

//IsosurfaceThresholdValue returns the value at which an isosurface has to
//be drawn so that the region enclosed by it (possibly bounded by the
//cuboid) contains the given percentage of the total property of the grid.
//The coverage defaults to 90 (percent) if not given. The returned threshold
//is always one of the values actually present in the data set, never an
//interpolated one. A coverage of 100 or more returns 0.
func (G *Grid) IsosurfaceThresholdValue(coverage ...float64) float64 {
	cov := 90.0
	if len(coverage) > 0 {
		cov = coverage[0]
	}
	if cov >= 100 {
		return 0
	}
	target := G.SummedData() * cov / 100
	sorted := G.CopyData()
	sort.Float64s(sorted)
	sum := 0.0
	//Walk from the largest value down, until the values at or above the
	//current one add up to the target.
	for i := len(sorted) - 1; i >= 0; i-- {
		sum += sorted[i]
		if sum >= target {
			return sorted[i]
		}
	}
	//Only reachable through floating-point rounding at the boundary.
	return sorted[len(sorted)-1]
}

//ValueHistogram returns the number of data values falling in each of the
//bins delimited by the given dividers (len(dividers)-1 bins, so at least 2
//dividers are needed; they must be sorted in ascending order). Values
//outside the dividers are omitted; the last bin is closed, so a value equal
//to the last divider is counted in it. It is a plain count, meant as an aid
//for picking an isosurface coverage, not any kind of plot.
func (G *Grid) ValueHistogram(dividers []float64) []float64 {
	if len(dividers) < 2 {
		panic("goCube: ValueHistogram needs at least 2 dividers")
	}
	rawdata := G.CopyData()
	sort.Float64s(rawdata)
	//stat.Histogram just panics instead of omitting the values that are off
	//limits, so we remove them here before the call. The last bin is closed,
	//so only values strictly above the last divider go.
	last := dividers[len(dividers)-1]
	maxi := sort.Search(len(rawdata), func(i int) bool { return rawdata[i] > last })
	mini := sort.SearchFloat64s(rawdata, dividers[0])
	rawdata = rawdata[mini:maxi]
	return stat.Histogram(nil, dividers, rawdata, nil)
}
