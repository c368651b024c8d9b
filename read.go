/*
 * read.go, part of gocube.
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
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//The format is described in https://h5cube-spec.readthedocs.io/en/latest/cubeformat.html
//
//	comment1
//	comment2
//	NATOMS ORIGINX ORIGINY ORIGINZ [NVAL]
//	NX XAXISX XAXISY XAXISZ    (one line per axis, 3 lines)
//	ATNUMBER CHARGE X Y Z      (one line per atom, NATOMS lines)
//	data values, whitespace separated
//
//A negative NATOMS flags the DSET_IDS extension, which we don't support.

//Read parses a cube file from the given reader and returns the resulting
//Grid. The parse is all-or-nothing: on any structural problem it returns a
//nil Grid and an error, never a partially filled object.
func Read(r io.Reader) (*Grid, error) {
	return read(r, "")
}

//ReadFile parses the cube file with the given path and returns the
//resulting Grid. Files compressed with gzip, zstd or flate are decompressed
//transparently, based on the file name extension (".gz", ".zst"/".zstd" and
//".flate", respectively).
func ReadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ParseError{UnableToOpen + ": " + err.Error(), path, []string{"ReadFile"}, true}
	}
	defer f.Close()
	var h io.ReadCloser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		h, err = gzip.NewReader(f)
	case ".zst", ".zstd":
		var d *zstd.Decoder
		d, err = zstd.NewReader(f)
		if err == nil {
			h = zstdql{d.Close, d}
		}
	case ".flate":
		h = flate.NewReader(f)
	default:
		return read(f, path)
	}
	if err != nil {
		return nil, ParseError{"Can't decompress: " + err.Error(), path, []string{"ReadFile"}, true}
	}
	defer h.Close()
	return read(h, path)
}

//This will cause additional indirections but each call will take enough
//time to make those delays irrelevant.
//Also, why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type zstdql struct {
	closeql func() //The things I have to do xD
	*zstd.Decoder
}

//Close closes the object. It can not be used after this call
func (z zstdql) Close() error {
	z.closeql()
	return nil
}

func read(r io.Reader, filename string) (*Grid, error) {
	buf := bufio.NewReader(r)
	G := new(Grid)
	var err error
	//First two lines are comments, kept verbatim (minus the line break).
	if G.comment1, err = comment(buf); err != nil {
		return nil, ParseError{PrematureEOF + " while reading the first comment line", filename, []string{"Read"}, true}
	}
	if G.comment2, err = comment(buf); err != nil {
		return nil, ParseError{PrematureEOF + " while reading the second comment line", filename, []string{"Read"}, true}
	}
	//{NATOMS (int)} {ORIGIN (3x float)} {NVAL (int)}?
	fields, err := nextFields(buf)
	if err != nil {
		return nil, ParseError{PrematureEOF + " while reading the grid definition line", filename, []string{"Read"}, true}
	}
	if len(fields) != 4 && len(fields) != 5 {
		return nil, ParseError{fmt.Sprintf("%s: the grid definition line has %d fields, want 4 or 5", WrongFormat, len(fields)), filename, []string{"Read"}, true}
	}
	natoms, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, ParseError{fmt.Sprintf("%s: can't parse the atom count %q: %s", WrongFormat, fields[0], err.Error()), filename, []string{"strconv.Atoi", "Read"}, true}
	}
	if natoms < 0 {
		return nil, newUnsupportedError(DSETExtension, filename, "Read")
	}
	for i := 0; i < 3; i++ {
		G.origin[i], err = strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, ParseError{fmt.Sprintf("%s: can't parse origin component %q: %s", WrongFormat, fields[i+1], err.Error()), filename, []string{"strconv.ParseFloat", "Read"}, true}
		}
	}
	G.perPoint = 1
	if len(fields) == 5 {
		G.perPoint, err = strconv.Atoi(fields[4])
		if err != nil {
			return nil, ParseError{fmt.Sprintf("%s: can't parse the values-per-point count %q: %s", WrongFormat, fields[4], err.Error()), filename, []string{"strconv.Atoi", "Read"}, true}
		}
		if G.perPoint < 1 {
			return nil, ParseError{fmt.Sprintf("%s: the values-per-point count must be positive, got %d", WrongFormat, G.perPoint), filename, []string{"Read"}, true}
		}
	}
	//{NX/NY/NZ (int) AXIS (3x float)}, one line per axis.
	for i := range G.axes {
		fields, err = nextFields(buf)
		if err != nil {
			return nil, ParseError{fmt.Sprintf("%s while reading axis %d", PrematureEOF, i), filename, []string{"Read"}, true}
		}
		if len(fields) != 4 {
			return nil, ParseError{fmt.Sprintf("%s: axis %d line has %d fields, want 4", WrongFormat, i, len(fields)), filename, []string{"Read"}, true}
		}
		G.axes[i].Points, err = strconv.Atoi(fields[0])
		if err != nil {
			return nil, ParseError{fmt.Sprintf("%s: can't parse the point count of axis %d %q: %s", WrongFormat, i, fields[0], err.Error()), filename, []string{"strconv.Atoi", "Read"}, true}
		}
		if G.axes[i].Points < 1 {
			//a sign-flagged count (Angstrom convention) is as unsupported as a zero one:
			//every grid this library produces has at least one vertex.
			return nil, ParseError{fmt.Sprintf("%s: axis %d must have a positive point count, got %d", WrongFormat, i, G.axes[i].Points), filename, []string{"Read"}, true}
		}
		for j := 0; j < 3; j++ {
			G.axes[i].Vector[j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, ParseError{fmt.Sprintf("%s: can't parse axis %d component %q: %s", WrongFormat, i, fields[j+1], err.Error()), filename, []string{"strconv.ParseFloat", "Read"}, true}
			}
		}
	}
	//Molecular geometry: {ATNUMBER (int) CHARGE (float) POSITION (3x float)}
	G.atoms = make([]*Atom, 0, natoms)
	for i := 0; i < natoms; i++ {
		fields, err = nextFields(buf)
		if err != nil {
			return nil, ParseError{fmt.Sprintf("%s while reading atom %d of %d", PrematureEOF, i, natoms), filename, []string{"Read"}, true}
		}
		if len(fields) != 5 {
			return nil, ParseError{fmt.Sprintf("%s: atom line %d has %d fields, want 5", WrongFormat, i, len(fields)), filename, []string{"Read"}, true}
		}
		at, err := parseAtom(fields)
		if err != nil {
			return nil, ParseError{fmt.Sprintf("%s: atom line %d: %s", WrongFormat, i, err.Error()), filename, []string{"Read"}, true}
		}
		G.atoms = append(G.atoms, at)
	}
	//The rest of the stream is the data: whitespace/newline-separated floats,
	//normally in scientific notation. The third axis varies fastest, the
	//first one slowest, and the values for one vertex are contiguous.
	want := G.axes[0].Points * G.axes[1].Points * G.axes[2].Points * G.perPoint
	data := make([]float64, 0, want)
	for {
		line, rerr := buf.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return nil, ParseError{"Can't read data: " + rerr.Error(), filename, []string{"Read"}, true}
		}
		for _, tok := range strings.Fields(line) {
			v, perr := strconv.ParseFloat(tok, 64)
			if perr != nil {
				return nil, ParseError{fmt.Sprintf("%s: can't parse data value %q: %s", WrongFormat, tok, perr.Error()), filename, []string{"strconv.ParseFloat", "Read"}, true}
			}
			data = append(data, v)
		}
		if rerr == io.EOF {
			break
		}
	}
	if len(data) != want {
		return nil, ParseError{fmt.Sprintf("%s: %d values read, but %d declared", DataMismatch, len(data), want), filename, []string{"Read"}, true}
	}
	G.data = data
	return G, nil
}

//comment reads one header line and returns it without its line terminator.
func comment(buf *bufio.Reader) (string, error) {
	line, err := buf.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

//nextFields reads one line and returns its whitespace-separated fields.
//A line holding only whitespace, or the end of the stream, is an error here:
//this helper is only used for the structured part of the file, where every
//line must carry fields.
func nextFields(buf *bufio.Reader) ([]string, error) {
	line, err := buf.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return fields, nil
}

func parseAtom(fields []string) (*Atom, error) {
	at := new(Atom)
	var err error
	at.AtomicNumber, err = strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("can't parse the atomic number %q: %s", fields[0], err.Error())
	}
	at.NuclearCharge, err = strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return nil, fmt.Errorf("can't parse the nuclear charge %q: %s", fields[1], err.Error())
	}
	for i := 0; i < 3; i++ {
		at.Position[i], err = strconv.ParseFloat(fields[i+2], 64)
		if err != nil {
			return nil, fmt.Errorf("can't parse the position component %q: %s", fields[i+2], err.Error())
		}
	}
	//No error checking here: elements missing from the table just keep the
	//zero values, as the symbol and mass are a convenience, not file data.
	at.Symbol = numberSymbol[at.AtomicNumber]
	at.Mass = symbolMass[at.Symbol]
	return at, nil
}
