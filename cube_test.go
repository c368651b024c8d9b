/*
 * cube_test.go, part of gocube.
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
	"fmt"
	"strings"
	"testing"
)

//TestReadFile reads the water sample from the test directory and checks
//that every section of the file ends up where it should.
func TestReadFile(Te *testing.T) {
	G, err := ReadFile("test/h2o.cube")
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("Cube file read!", G.Comment1())
	if G.Comment1() != "Water electron density (toy values)" {
		Te.Errorf("First comment not preserved: %q", G.Comment1())
	}
	if G.Comment2() != "OUTER LOOP: X, MIDDLE LOOP: Y, INNER LOOP: Z" {
		Te.Errorf("Second comment not preserved: %q", G.Comment2())
	}
	if o := G.Origin(); o != [3]float64{-1, -1, -1} {
		Te.Errorf("Wrong origin: %v", o)
	}
	if G.XAxis().Points != 2 || G.YAxis().Points != 3 || G.ZAxis().Points != 4 {
		Te.Errorf("Wrong axis point counts: %d %d %d", G.XAxis().Points, G.YAxis().Points, G.ZAxis().Points)
	}
	if v := G.YAxis().Vector; v != [3]float64{0, 1, 0} {
		Te.Errorf("Wrong Y axis vector: %v", v)
	}
	if G.PerPoint() != 1 {
		Te.Errorf("Values per point should default to 1, got %d", G.PerPoint())
	}
	if G.Len() != 3 {
		Te.Fatalf("Wrong number of atoms: %d", G.Len())
	}
	ox := G.Atom(0)
	if ox.AtomicNumber != 8 || ox.Symbol != "O" || ox.Mass != 16.00 {
		Te.Errorf("Oxygen not read correctly: %+v", ox)
	}
	if h := G.Atom(1); h.Position != [3]float64{0, 0.757, -0.469} {
		Te.Errorf("Wrong position for the first hydrogen: %v", h.Position)
	}
	if G.GridPoints() != 24 || G.DataLen() != 24 {
		Te.Errorf("Wrong grid size: %d points, %d values", G.GridPoints(), G.DataLen())
	}
	//the sample values grow by 0.1 in storage order, so indexing is easy to check
	if G.Value(0, 0, 0) != 0.1 {
		Te.Errorf("Wrong first value: %v", G.Value(0, 0, 0))
	}
	if G.Value(1, 2, 3) != 2.4 {
		Te.Errorf("Wrong last value: %v", G.Value(1, 2, 3))
	}
	if G.Value(0, 1, 2) != 0.7 {
		Te.Errorf("Wrong value at (0,1,2): %v", G.Value(0, 1, 2))
	}
	c := G.Coords()
	if r, _ := c.Dims(); r != 3 {
		Te.Errorf("Coords matrix has %d rows", r)
	}
	if c.At(0, 2) != 0.117 {
		Te.Errorf("Wrong coordinate in the matrix: %v", c.At(0, 2))
	}
}

//TestReadGzipped checks that a gzipped cube file reads the same as the
//plain one.
func TestReadGzipped(Te *testing.T) {
	plain, err := ReadFile("test/h2o.cube")
	if err != nil {
		Te.Fatal(err)
	}
	zipped, err := ReadFile("test/h2o.cube.gz")
	if err != nil {
		Te.Fatal(err)
	}
	if zipped.DataLen() != plain.DataLen() || zipped.Len() != plain.Len() {
		Te.Fatalf("Compressed and plain reads disagree in size")
	}
	for i, v := range plain.View() {
		if zipped.View()[i] != v {
			Te.Errorf("Compressed and plain reads disagree at value %d", i)
		}
	}
}

func TestPerPointValues(Te *testing.T) {
	f := `two values per vertex
second comment
0 0.0 0.0 0.0 2
1 1.0 0.0 0.0
1 0.0 1.0 0.0
2 0.0 0.0 1.0
10.0 11.0 20.0 21.0
`
	G, err := Read(strings.NewReader(f))
	if err != nil {
		Te.Fatal(err)
	}
	if G.PerPoint() != 2 {
		Te.Fatalf("Wrong values-per-point count: %d", G.PerPoint())
	}
	if G.DataLen() != 4 || G.GridPoints() != 2 {
		Te.Errorf("Wrong sizes: %d values, %d points", G.DataLen(), G.GridPoints())
	}
	if G.Value(0, 0, 1) != 20.0 || G.Value(0, 0, 1, 1) != 21.0 {
		Te.Errorf("Per-vertex values not contiguous: %v %v", G.Value(0, 0, 1), G.Value(0, 0, 1, 1))
	}
}

//TestDataMismatch checks that both a missing and an extra data value make
//the parse fail, rather than being silently truncated or padded.
func TestDataMismatch(Te *testing.T) {
	head := `shape test
second comment
0 0.0 0.0 0.0
1 1.0 0.0 0.0
1 0.0 1.0 0.0
3 0.0 0.0 1.0
`
	for _, data := range []string{"1.0 2.0\n", "1.0 2.0 3.0 4.0\n"} {
		_, err := Read(strings.NewReader(head + data))
		if err == nil {
			Te.Errorf("A file with the wrong value count was accepted: %q", data)
			continue
		}
		fmt.Println("Got the expected error:", err.Error())
		if IsUnsupported(err) {
			Te.Errorf("A value count mismatch was flagged as an unsupported extension")
		}
	}
	//the exact count must still work
	if _, err := Read(strings.NewReader(head + "1.0 2.0 3.0\n")); err != nil {
		Te.Errorf("The well-formed variant failed: %v", err)
	}
}

//TestDSETRejected checks that a negative atom count (the DSET_IDS
//extension) is rejected with the distinct unsupported-feature error, no
//matter how well-formed the rest of the file is.
func TestDSETRejected(Te *testing.T) {
	f := `dset test
second comment
-1 0.0 0.0 0.0
1 1.0 0.0 0.0
1 0.0 1.0 0.0
1 0.0 0.0 1.0
1 1.0 0.0 0.0 0.0
1.0
`
	_, err := Read(strings.NewReader(f))
	if err == nil {
		Te.Fatal("A DSET_IDS file was accepted")
	}
	if !IsUnsupported(err) {
		Te.Errorf("DSET_IDS rejection should be distinguishable, got: %v", err)
	}
	fmt.Println("DSET_IDS file rejected with:", err.Error())
}

func TestShortAxisLine(Te *testing.T) {
	f := `axis test
second comment
0 0.0 0.0 0.0
1 1.0 0.0 0.0
1 0.0 1.0
1 0.0 0.0 1.0
1.0
`
	_, err := Read(strings.NewReader(f))
	if err == nil {
		Te.Fatal("An axis line with a missing component was accepted")
	}
	if IsUnsupported(err) {
		Te.Error("A malformed axis line was flagged as an unsupported extension")
	}
}

//TestNonPositiveAxisCount checks that axes with zero or negative point
//counts are rejected at read time. A zero count would otherwise let an
//empty, declaration-consistent grid through, on which the value queries
//have no answer.
func TestNonPositiveAxisCount(Te *testing.T) {
	for _, count := range []string{"0", "-2"} {
		f := `axis count test
second comment
0 0.0 0.0 0.0
` + count + ` 1.0 0.0 0.0
1 0.0 1.0 0.0
1 0.0 0.0 1.0
`
		G, err := Read(strings.NewReader(f))
		if err == nil {
			Te.Fatalf("A grid with an axis point count of %s was accepted: %d values", count, G.DataLen())
		}
		if IsUnsupported(err) {
			Te.Errorf("A bad axis count was flagged as an unsupported extension")
		}
		fmt.Println("Got the expected error:", err.Error())
	}
}

func TestMalformedNumbers(Te *testing.T) {
	files := []string{
		//non-numeric origin component
		"c1\nc2\n0 0.0 zero 0.0\n1 1.0 0.0 0.0\n1 0.0 1.0 0.0\n1 0.0 0.0 1.0\n1.0\n",
		//non-numeric data value
		"c1\nc2\n0 0.0 0.0 0.0\n1 1.0 0.0 0.0\n1 0.0 1.0 0.0\n1 0.0 0.0 1.0\nnotanumber\n",
		//non-integer atom count
		"c1\nc2\nx 0.0 0.0 0.0\n1 1.0 0.0 0.0\n1 0.0 1.0 0.0\n1 0.0 0.0 1.0\n1.0\n",
	}
	for i, f := range files {
		if _, err := Read(strings.NewReader(f)); err == nil {
			Te.Errorf("Malformed file %d was accepted", i)
		}
	}
}

func TestTruncatedFile(Te *testing.T) {
	files := []string{
		"only one comment line\n",
		"c1\nc2\n",
		"c1\nc2\n0 0.0 0.0 0.0\n1 1.0 0.0 0.0\n",
		//declares 2 atoms but carries only 1
		"c1\nc2\n2 0.0 0.0 0.0\n1 1.0 0.0 0.0\n1 0.0 1.0 0.0\n1 0.0 0.0 1.0\n8 8.0 0.0 0.0 0.0\n",
	}
	for i, f := range files {
		if _, err := Read(strings.NewReader(f)); err == nil {
			Te.Errorf("Truncated file %d was accepted", i)
		}
	}
}

func TestWrongDefinitionLineFields(Te *testing.T) {
	//6 fields in the grid definition line: neither the 4- nor the 5-field form
	f := "c1\nc2\n0 0.0 0.0 0.0 1 9\n1 1.0 0.0 0.0\n1 0.0 1.0 0.0\n1 0.0 0.0 1.0\n1.0\n"
	if _, err := Read(strings.NewReader(f)); err == nil {
		Te.Error("A grid definition line with 6 fields was accepted")
	}
	//4 fields in an atom line
	f = "c1\nc2\n1 0.0 0.0 0.0\n1 1.0 0.0 0.0\n1 0.0 1.0 0.0\n1 0.0 0.0 1.0\n8 8.0 0.0 0.0\n1.0\n"
	if _, err := Read(strings.NewReader(f)); err == nil {
		Te.Error("An atom line with 4 fields was accepted")
	}
}

//TestErrorDecoration exercises the Decorate machinery of the library errors.
func TestErrorDecoration(Te *testing.T) {
	_, err := ReadFile("test/doesnotexist.cube")
	if err == nil {
		Te.Fatal("Read of a non-existing file succeeded")
	}
	err2, ok := err.(Error)
	if !ok {
		Te.Fatalf("Library errors should implement cube.Error, got %T", err)
	}
	deco := err2.Decorate("TestErrorDecoration")
	if len(deco) < 2 {
		Te.Errorf("Decoration not accumulated: %v", deco)
	}
	fmt.Println("Decorated error:", err2.Error(), deco)
}
