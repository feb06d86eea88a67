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

// Package gen renders delta dispatch tables as Go source.
//
// The output is either a bare switch statement suitable for pasting
// into a decode loop, or a complete generated file wrapping the
// switch in a function. Entries are emitted in increasing header
// code order so that regenerated output diffs cleanly and duplicate
// case labels (which would indicate a table bug) are rejected by
// the compiler.
package gen

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/SnellerInc/tupledelta/delta"
)

// cursorPath is the import path of the package providing
// the fixed-width ReadDelta primitives.
const cursorPath = "github.com/SnellerInc/tupledelta/cursor"

// Options controls the identifiers used in the rendered code.
// The zero value matches the decoders in package triple.
type Options struct {
	// Tuple is the variable holding the output tuple.
	// Defaults to "t".
	Tuple string
	// Cursor is the variable holding the stream cursor.
	// Defaults to "cur".
	Cursor string
	// Header is the expression yielding the raw header byte.
	// Defaults to "hdr".
	Header string
	// Err is the expression returned from the unreachable
	// default branch. Defaults to "ErrCorruptHeader".
	Err string
}

func (o *Options) fill() Options {
	out := Options{Tuple: "t", Cursor: "cur", Header: "hdr", Err: "ErrCorruptHeader"}
	if o == nil {
		return out
	}
	if o.Tuple != "" {
		out.Tuple = o.Tuple
	}
	if o.Cursor != "" {
		out.Cursor = o.Cursor
	}
	if o.Header != "" {
		out.Header = o.Header
	}
	if o.Err != "" {
		out.Err = o.Err
	}
	return out
}

// WriteSwitch writes the dispatch switch statement for tbl to w.
// Every line is prefixed with indent.
func WriteSwitch(w io.Writer, tbl *delta.Table, o *Options, indent string) error {
	opts := o.fill()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%sswitch %s & %d {\n", indent, opts.Header, delta.HeaderMask)
	for i := range tbl.Entries {
		e := &tbl.Entries[i]
		fmt.Fprintf(bw, "%scase %d:\n", indent, e.Code)
		for field, in := range e.Instrs {
			if in.Op == delta.Skip {
				continue
			}
			fmt.Fprintf(bw, "%s\t%s\n", indent, instrText(&opts, field, in))
		}
	}
	fmt.Fprintf(bw, "%sdefault:\n", indent)
	fmt.Fprintf(bw, "%s\treturn %s\n", indent, opts.Err)
	fmt.Fprintf(bw, "%s}\n", indent)
	return bw.Flush()
}

// instrText renders one field instruction as a Go statement.
func instrText(o *Options, field int, in delta.Instr) string {
	var sb strings.Builder
	sb.WriteString(o.Tuple)
	fmt.Fprintf(&sb, "[%d]", field)
	if in.Op == delta.Add {
		sb.WriteString(" += ")
	} else {
		sb.WriteString(" = ")
	}
	if in.Width > 0 {
		fmt.Fprintf(&sb, "%s.ReadDelta%d()", o.Cursor, in.Width)
		if in.Offset != 0 {
			fmt.Fprintf(&sb, " + %d", in.Offset)
		}
	} else {
		fmt.Fprintf(&sb, "%d", in.Offset)
	}
	return sb.String()
}

// WriteFile writes a complete generated Go source file containing
// the dispatch routine for tbl. The routine has the signature
//
//	func fn(cur *cursor.Cursor, t *tuple, hdr byte) error
//
// and returns opts.Err for unreachable header codes; the enclosing
// package must declare that value. tuple is the named tuple type
// of the target package and must index as [arity]uint32.
func WriteFile(w io.Writer, tbl *delta.Table, o *Options, pkg, fn, tuple string) error {
	opts := o.fill()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// Code generated by gendelta -mode %s; DO NOT EDIT\n\n", tbl.Mode)
	fmt.Fprintf(bw, "package %s\n\n", pkg)
	fmt.Fprintf(bw, "import (\n\t%q\n)\n\n", cursorPath)
	fmt.Fprintf(bw, "// %s applies one header-coded record to %s.\n", fn, opts.Tuple)
	fmt.Fprintf(bw, "// The high bit of %s is ignored.\n", opts.Header)
	fmt.Fprintf(bw, "func %s(%s *cursor.Cursor, %s *%s, %s byte) error {\n",
		fn, opts.Cursor, opts.Tuple, tuple, opts.Header)
	err := WriteSwitch(bw, tbl, &opts, "\t")
	if err != nil {
		return err
	}
	fmt.Fprintf(bw, "\treturn %s.Err()\n", opts.Cursor)
	fmt.Fprintf(bw, "}\n")
	return bw.Flush()
}
