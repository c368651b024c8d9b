/*
 * errors.go, part of gocube.
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

import "fmt"

//Error is the interface for errors of this library. The Decorate method
//allows to add and retrieve info from the error, without changing its type
//or wrapping it around something else. The decoration slice should contain
//a list of the functions in the calling stack plus, for each function, any
//relevant information, or nothing.
type Error interface {
	Error() string
	Decorate(string) []string
}

//ParseError is the general structure for cube file reading errors. It is
//always fatal: no Grid is produced when one is returned. It fulfills
//cube.Error.
type ParseError struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err ParseError) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("cube file error: %s", err.message)
	}
	return fmt.Sprintf("cube file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (E ParseError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing read was associated,
//or an empty string if the input was not a named file.
func (err ParseError) FileName() string { return err.filename }

//Format returns the format of the file (always "cube") associated to the error
func (err ParseError) Format() string { return "cube" }

//Critical returns true if the error is critical, false otherwise
func (err ParseError) Critical() bool { return err.critical }

const (
	WrongFormat   = "Wrong format in the cube file"
	UnableToOpen  = "Unable to open file"
	PrematureEOF  = "Premature end of the cube file"
	DataMismatch  = "Wrong number of data values in the cube file"
	DSETExtension = "Negative atom count: the DSET_IDS extension is not supported"
)

//unsupportedError signals a well-formed cube file that uses a feature this
//library does not implement (for now, only the DSET_IDS multi-dataset
//extension, flagged by a negative atom count). It is distinct from
//ParseError so callers can give an actionable message. It fulfills
//cube.Error.
type unsupportedError struct {
	message  string
	filename string
	deco     []string
}

//Unsupported does nothing. It just separates this type from other errors of
//the library, so it can be filtered in a typeswitch that looks for it.
func (E unsupportedError) Unsupported() {}

func (E unsupportedError) FileName() string { return E.filename }

func (E unsupportedError) Format() string { return "cube" }

func (E unsupportedError) Critical() bool { return true }

func (E unsupportedError) Error() string {
	if E.filename == "" {
		return fmt.Sprintf("cube file error: %s", E.message)
	}
	return fmt.Sprintf("cube file %s error: %s", E.filename, E.message)
}

func (E unsupportedError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newUnsupportedError(message, filename, caller string) *unsupportedError {
	e := new(unsupportedError)
	e.message = message
	e.filename = filename
	e.deco = []string{caller}
	return e
}

//IsUnsupported returns true if the given error reports a cube file using an
//extension this library does not support, false otherwise (including for
//structurally invalid files).
func IsUnsupported(err error) bool {
	type unsupporter interface {
		Unsupported()
	}
	_, ok := err.(unsupporter)
	return ok
}
