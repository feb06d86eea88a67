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

package delta

import (
	"fmt"
	"reflect"
	"testing"
)

func TestCodeRoundTrip(t *testing.T) {
	for h := 0; h < NumCodes(3); h++ {
		a, b, c := Widths3(h)
		if a > MaxWidth || b > MaxWidth || c > MaxWidth {
			t.Fatalf("header %d: widths (%d,%d,%d) out of range", h, a, b, c)
		}
		if got := Code3(a, b, c); got != h {
			t.Errorf("Code3(Widths3(%d)) = %d", h, got)
		}
	}
	for h := 0; h < NumCodes(2); h++ {
		a, b := Widths2(h)
		if got := Code2(a, b); got != h {
			t.Errorf("Code2(Widths2(%d)) = %d", h, got)
		}
	}
	// 125 through 127 decompose out of range and have no entry
	for h := NumCodes(3); h <= HeaderMask; h++ {
		if a, _, _ := Widths3(h); a <= MaxWidth {
			t.Errorf("header %d: expected first width above %d, got %d", h, MaxWidth, a)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Full, Aggregated, FullyAggregated} {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != m {
			t.Errorf("ParseMode(%q) = %v", m.String(), got)
		}
	}
	if _, err := ParseMode("partial"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestBuildFull(t *testing.T) {
	tbl := Build(Full)
	if len(tbl.Entries) != NumCodes(3) {
		t.Fatalf("expected %d entries, got %d", NumCodes(3), len(tbl.Entries))
	}
	want := []struct {
		code   int
		instrs []Instr
	}{
		// all widths zero: the first two fields are carried over
		// implicitly and the last records the minimum large gap
		{0, []Instr{{Op: Skip}, {Op: Skip}, {Add, 0, 128}}},
		{1, []Instr{{Op: Skip}, {Op: Skip}, {Add, 1, 128}}},
		{4, []Instr{{Op: Skip}, {Op: Skip}, {Add, 4, 128}}},
		// second field delta present; third restarts from absolute
		{5, []Instr{{Op: Skip}, {Add, 1, 0}, {Assign, 0, 1}}},
		{9, []Instr{{Op: Skip}, {Add, 1, 0}, {Assign, 4, 1}}},
		{24, []Instr{{Op: Skip}, {Add, 4, 0}, {Assign, 4, 1}}},
		// first field delta present; the rest are absolute
		{25, []Instr{{Add, 1, 0}, {Assign, 0, 1}, {Assign, 0, 1}}},
		{31, []Instr{{Add, 1, 0}, {Assign, 1, 1}, {Assign, 1, 1}}},
		{124, []Instr{{Add, 4, 0}, {Assign, 4, 1}, {Assign, 4, 1}}},
	}
	for _, w := range want {
		e, ok := tbl.Lookup(w.code)
		if !ok {
			t.Errorf("header %d: no entry", w.code)
			continue
		}
		if !reflect.DeepEqual(e.Instrs, w.instrs) {
			t.Errorf("header %d: got %v, want %v", w.code, e.Instrs, w.instrs)
		}
	}
	if got := tbl.Unreachable(); !reflect.DeepEqual(got, []int{125, 126, 127}) {
		t.Errorf("unreachable codes: %v", got)
	}
	if _, ok := tbl.Lookup(125); ok {
		t.Error("header 125 should have no entry")
	}
}

func TestBuildAggregated(t *testing.T) {
	tbl := Build(Aggregated)
	if len(tbl.Entries) != NumCodes(3) {
		t.Fatalf("expected %d entries, got %d", NumCodes(3), len(tbl.Entries))
	}
	for i := range tbl.Entries {
		e := &tbl.Entries[i]
		last := e.Instrs[len(e.Instrs)-1]
		if last.Op == Skip {
			t.Fatalf("header %d: last field elided", e.Code)
		}
		if last.Op != Assign || last.Offset != 1 {
			t.Fatalf("header %d: last field %v, want assign+1", e.Code, last)
		}
	}
	// the first large-gap entry differs from full mode only in
	// the unconditional last field
	e, _ := tbl.Lookup(0)
	want := []Instr{{Op: Skip}, {Add, 0, 1}, {Assign, 0, 1}}
	if !reflect.DeepEqual(e.Instrs, want) {
		t.Errorf("header 0: got %v, want %v", e.Instrs, want)
	}
}

func TestBuildFullyAggregated(t *testing.T) {
	tbl := Build(FullyAggregated)
	if len(tbl.Entries) != NumCodes(2) {
		t.Fatalf("expected %d entries, got %d", NumCodes(2), len(tbl.Entries))
	}
	for i := range tbl.Entries {
		e := &tbl.Entries[i]
		if len(e.Instrs) != 2 {
			t.Fatalf("header %d: %d instrs", e.Code, len(e.Instrs))
		}
		for _, in := range e.Instrs {
			if in.Op == Skip {
				t.Fatalf("header %d: elided field in fully aggregated table", e.Code)
			}
		}
		if e.Instrs[0].Op != Add || e.Instrs[0].Offset != 1 {
			t.Fatalf("header %d: first field %v", e.Code, e.Instrs[0])
		}
		if e.Instrs[1].Op != Assign || e.Instrs[1].Offset != 1 {
			t.Fatalf("header %d: second field %v", e.Code, e.Instrs[1])
		}
	}
}

// apply interprets an instruction sequence against prev, reading
// the delta for field i from reads[i] when its width is nonzero
func apply(instrs []Instr, prev, reads [3]uint32) [3]uint32 {
	out := prev
	for i, in := range instrs {
		if in.Op == Skip {
			continue
		}
		v := uint32(in.Offset)
		if in.Width > 0 {
			v += reads[i]
		}
		if in.Op == Add {
			out[i] += v
		} else {
			out[i] = v
		}
	}
	return out
}

// fields marked Skip must stay pinned to their previous values and
// must not influence how the other fields decode
func TestSkipIsolation(t *testing.T) {
	tbl := Build(Full)
	reads := [3]uint32{7, 11, 13}
	a := [3]uint32{100, 200, 300}
	b := a
	for i := range tbl.Entries {
		e := &tbl.Entries[i]
		// perturb exactly the skipped fields of the second state
		for f, in := range e.Instrs {
			b[f] = a[f]
			if in.Op == Skip {
				b[f] += 1000
			}
		}
		ra := apply(e.Instrs, a, reads)
		rb := apply(e.Instrs, b, reads)
		for f, in := range e.Instrs {
			if in.Op == Skip {
				if ra[f] != a[f] || rb[f] != b[f] {
					t.Fatalf("header %d: skipped field %d changed", e.Code, f)
				}
				continue
			}
			if ra[f] != rb[f] {
				t.Fatalf("header %d: field %d depends on a skipped field", e.Code, f)
			}
		}
	}
}

// every mode's table must map distinct header codes to distinct
// instruction sequences, or two encodings would decode identically
func TestTablesInjective(t *testing.T) {
	for _, m := range []Mode{Full, Aggregated, FullyAggregated} {
		t.Run(m.String(), func(t *testing.T) {
			tbl := Build(m)
			seen := make(map[string]int)
			for i := range tbl.Entries {
				key := fmt.Sprint(tbl.Entries[i].Instrs)
				if prev, ok := seen[key]; ok {
					t.Errorf("headers %d and %d share %s", prev, tbl.Entries[i].Code, key)
				}
				seen[key] = tbl.Entries[i].Code
			}
		})
	}
}

func TestEntriesSorted(t *testing.T) {
	for _, m := range []Mode{Full, Aggregated, FullyAggregated} {
		tbl := Build(m)
		for i := 1; i < len(tbl.Entries); i++ {
			if tbl.Entries[i].Code <= tbl.Entries[i-1].Code {
				t.Fatalf("%s: entries out of order at %d", m, i)
			}
		}
	}
}
