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

// tdump prints the contents of encoded tuple files.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/SnellerInc/tupledelta/pagefmt"
	"github.com/SnellerInc/tupledelta/triple"
)

var verbose = flag.Bool("v", false, "print every tuple")

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: tdump [-v] file...\n")
		os.Exit(1)
	}
	o := bufio.NewWriter(os.Stdout)
	for _, arg := range flag.Args() {
		if err := dump(o, arg); err != nil {
			fmt.Fprintf(os.Stderr, "tdump: %s: %s\n", arg, err)
			os.Exit(1)
		}
	}
	if err := o.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dump(o *bufio.Writer, path string) error {
	r, err := pagefmt.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()
	t := &r.Trailer
	fmt.Fprintf(o, "%s: %s id %s pagesize %d pages %d tuples %d\n",
		path, t.Algo, t.ID, t.PageSize, len(t.Pages), t.Tuples)
	for i := range t.Pages {
		fmt.Fprintf(o, "  page %d: %d -> %d bytes, %d tuples\n",
			i, t.Pages[i].Usize, t.Pages[i].Size, t.Pages[i].Tuples)
	}
	if !*verbose {
		return nil
	}
	return r.Tuples(func(t triple.Tuple) bool {
		fmt.Fprintf(o, "%d %d %d\n", t[0], t[1], t[2])
		return true
	})
}
