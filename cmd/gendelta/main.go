// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// gendelta generates the delta-decoding dispatch tables.
//
// With a bare mode argument it writes the switch statement to
// standard output; with -o it writes a complete generated Go file.
// With -f it processes every table listed in a YAML manifest, with
// output paths resolved relative to the working directory (so a
// go:generate line next to the manifest works as expected).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/SnellerInc/tupledelta/delta"
	"github.com/SnellerInc/tupledelta/delta/gen"

	"sigs.k8s.io/yaml"
)

var (
	ofile    = flag.String("o", "", "output `file` (write a full Go file instead of a switch body)")
	pkg      = flag.String("pkg", "main", "package `name` for -o output")
	fn       = flag.String("fn", "decode", "function `name` for -o output")
	tuple    = flag.String("tuple", "[3]uint32", "tuple `type` for -o output")
	manifest = flag.String("f", "", "generate every table listed in a YAML manifest `file`")
)

func fatalf(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: gendelta [flags] full|aggregated|fullyaggregated\n")
	fmt.Fprintf(os.Stderr, "       gendelta -f manifest.yaml\n")
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	flag.Usage = func() { usage() }
	flag.Parse()
	if *manifest != "" {
		if flag.NArg() != 0 {
			usage()
		}
		runManifest(*manifest)
		return
	}
	if flag.NArg() != 1 {
		usage()
	}
	mode, err := delta.ParseMode(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "gendelta: %s\n", err)
		usage()
	}
	tbl := delta.Build(mode)
	if *ofile == "" {
		err = gen.WriteSwitch(os.Stdout, tbl, nil, "")
		if err != nil {
			fatalf("gendelta: %s", err)
		}
		return
	}
	if err := writeFile(*ofile, tbl, *pkg, *fn, *tuple); err != nil {
		fatalf("gendelta: %s", err)
	}
}

func writeFile(path string, tbl *delta.Table, pkg, fn, tuple string) error {
	var buf bytes.Buffer
	if err := gen.WriteFile(&buf, tbl, nil, pkg, fn, tuple); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

type manifestFile struct {
	Tables []tableSpec `json:"tables"`
}

type tableSpec struct {
	Mode     string `json:"mode"`
	Output   string `json:"output"`
	Package  string `json:"package"`
	Function string `json:"function"`
	Tuple    string `json:"tuple"`
}

func runManifest(path string) {
	buf, err := os.ReadFile(path)
	if err != nil {
		fatalf("gendelta: %s", err)
	}
	var mf manifestFile
	if err := yaml.Unmarshal(buf, &mf); err != nil {
		fatalf("gendelta: %s: %s", path, err)
	}
	if len(mf.Tables) == 0 {
		fatalf("gendelta: %s: no tables", path)
	}
	for i := range mf.Tables {
		ts := &mf.Tables[i]
		mode, err := delta.ParseMode(ts.Mode)
		if err != nil {
			fatalf("gendelta: %s: table %d: %s", path, i, err)
		}
		if ts.Output == "" || ts.Package == "" || ts.Function == "" {
			fatalf("gendelta: %s: table %d: output, package and function are required", path, i)
		}
		tuple := ts.Tuple
		if tuple == "" {
			tuple = fmt.Sprintf("[%d]uint32", mode.Arity())
		}
		err = writeFile(ts.Output, delta.Build(mode), ts.Package, ts.Function, tuple)
		if err != nil {
			fatalf("gendelta: %s: table %d: %s", path, i, err)
		}
	}
}
