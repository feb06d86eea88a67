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

import "fmt"

// Mode selects which dispatch table is generated. The modes trade
// table granularity for instruction density: the aggregated tables
// execute slightly more code per record but need fewer branches in
// the decode routine.
type Mode uint8

const (
	// Full generates one entry per valid arity-3 header code.
	// Every field is elided whenever possible.
	Full Mode = iota
	// Aggregated is like Full except that the last field is
	// always decoded, even when its width is zero.
	Aggregated
	// FullyAggregated generates the reduced arity-2 table in
	// which both fields are always decoded.
	FullyAggregated
)

// ParseMode maps a mode selector string to its Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "full":
		return Full, nil
	case "aggregated":
		return Aggregated, nil
	case "fullyaggregated":
		return FullyAggregated, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want full, aggregated or fullyaggregated)", s)
}

func (m Mode) String() string {
	switch m {
	case Full:
		return "full"
	case Aggregated:
		return "aggregated"
	case FullyAggregated:
		return "fullyaggregated"
	}
	return "invalid"
}

// Arity returns the number of tuple fields packed
// into one header code in this mode.
func (m Mode) Arity() int {
	if m == FullyAggregated {
		return 2
	}
	return 3
}

// Entry binds one header code to the per-field decode
// instructions a decoder executes for it.
type Entry struct {
	Code   int
	Instrs []Instr
}

// Table is the decode dispatch table for one mode.
//
// Entries are in strictly increasing Code order and are exhaustive
// over the valid header-code domain of the mode. Header codes in
// [0, HeaderMask] without an entry (125 through 127 in the arity-3
// modes) decompose to a width digit above MaxWidth; they can never
// be produced by an encoder, and the generated routine routes them
// to a fatal default branch.
type Table struct {
	Mode    Mode
	Entries []Entry
}

// Build constructs the dispatch table for mode m.
func Build(m Mode) *Table {
	t := &Table{Mode: m}
	switch m {
	case Full:
		for h := 0; h <= HeaderMask; h++ {
			w0, w1, w2 := Widths3(h)
			if w0 > MaxWidth || w1 > MaxWidth || w2 > MaxWidth {
				continue
			}
			i0 := decide(w0, true, 0)
			pending := i0.Op == Skip
			// when an earlier field was elided, the literal breaks
			// the tie with the record that encoded nothing at all;
			// the two constants differ per field position so the
			// decode stays unambiguous
			off := 1
			if pending {
				off = 0
			}
			i1 := decide(w1, pending, off)
			pending = i1.Op == Skip
			off = 1
			if pending {
				off = 128
			}
			i2 := decide(w2, pending, off)
			t.Entries = append(t.Entries, Entry{h, []Instr{i0, i1, i2}})
		}
	case Aggregated:
		for h := 0; h <= HeaderMask; h++ {
			w0, w1, w2 := Widths3(h)
			if w0 > MaxWidth || w1 > MaxWidth || w2 > MaxWidth {
				continue
			}
			i0 := decide(w0, true, 0)
			i1 := decide(w1, i0.Op == Skip, 1)
			i2 := decide(w2, false, 1)
			t.Entries = append(t.Entries, Entry{h, []Instr{i0, i1, i2}})
		}
	case FullyAggregated:
		for h := 0; h < NumCodes(2); h++ {
			w0, w1 := Widths2(h)
			i0 := decide(w0, true, 1)
			i1 := decide(w1, false, 1)
			t.Entries = append(t.Entries, Entry{h, []Instr{i0, i1}})
		}
	default:
		panic("delta: invalid mode")
	}
	return t
}

// Lookup returns the entry for the given header code,
// or false if the code is unreachable in this table.
func (t *Table) Lookup(code int) (Entry, bool) {
	for i := range t.Entries {
		if t.Entries[i].Code == code {
			return t.Entries[i], true
		}
		if t.Entries[i].Code > code {
			break
		}
	}
	return Entry{}, false
}

// Unreachable lists the header codes in [0, HeaderMask]
// that have no entry in this table.
func (t *Table) Unreachable() []int {
	var out []int
	next := 0
	for i := range t.Entries {
		for next < t.Entries[i].Code {
			out = append(out, next)
			next++
		}
		next = t.Entries[i].Code + 1
	}
	for next <= HeaderMask {
		out = append(out, next)
		next++
	}
	return out
}
