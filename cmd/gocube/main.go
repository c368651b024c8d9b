/*
 * main.go, part of gocube.
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

//gocube is a small command-line tool for processing Gaussian cube files.
//It prints summary statistics for the sampled property and/or the threshold
//at which to draw an isosurface enclosing a given percentage of it.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/BurntSushi/toml"
	cube "github.com/rmera/gocube"
)

//Flags
var (
	info = flag.Bool("info", false,
		"Print some general info about the read cube file")
	iso = flag.Float64("iso", 0,
		"Coverage percentage for the isosurface threshold. 0 or less means the threshold is not computed")
	conffile = flag.String("conf", "",
		"Optional TOML file with run settings. Flags given explicitly take precedence over it")
)

//RawConf is the TOML representation of a run configuration.
type RawConf struct {
	Info        bool
	IsoCoverage float64
}

func LoadConfig(filename string) (*RawConf, error) {
	rc := new(RawConf)
	_, err := toml.DecodeFile(filename, rc)
	if err != nil {
		return nil, err
	}
	return rc, nil
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: gocube [flags] cubefile")
	}
	name := flag.Arg(0)
	printInfo := *info
	coverage := *iso
	if *conffile != "" {
		rc, err := LoadConfig(*conffile)
		if err != nil {
			log.Fatalf("can't read the configuration file %s: %v", *conffile, err)
		}
		given := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { given[f.Name] = true })
		if !given["info"] {
			printInfo = rc.Info
		}
		if !given["iso"] {
			coverage = rc.IsoCoverage
		}
	}
	grid, err := cube.ReadFile(name)
	if err != nil {
		if cube.IsUnsupported(err) {
			log.Fatalf("%v. Only single-dataset cube files can be processed", err)
		}
		log.Fatal(err)
	}
	if printInfo {
		fmt.Printf("Summary for cube file '%s':\n", name)
		fmt.Printf(" - Min. value:      %+.2e\n", grid.MinValue())
		fmt.Printf(" - Abs. min. value: %+.2e\n", grid.AbsMinValue())
		fmt.Printf(" - Max. value:      %+.2e\n", grid.MaxValue())
		fmt.Printf(" - Abs. max. value: %+.2e\n", grid.AbsMaxValue())
		fmt.Printf(" - Sum(data):       %+.4e\n", grid.SummedData())
		fmt.Printf(" - Integrated data: %+.4e\n", grid.Integrate())
	}
	if coverage > 0 {
		fmt.Printf("To create an isosurface enclosing %v%% of the contained property, use a threshold of\n%.4e\n",
			coverage, grid.IsosurfaceThresholdValue(coverage))
	}
}
