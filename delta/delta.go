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

// Package delta implements the header-coded tuple delta scheme.
//
// A record in the stream is a tuple of two or three integer fields
// encoded relative to the previously decoded tuple. One header byte
// packs the byte width (0 to 4) of every field delta as a base-5
// number, one digit per field, most significant field first. Width
// zero means the field is not present in the stream at all.
//
// The scheme carries no per-field "delta or absolute" flag. Instead,
// the position of a field and whether the preceding field emitted
// anything determine how its value combines with the previous tuple,
// with a fixed literal offset disambiguating the cases that would
// otherwise collide. This package computes, for every valid header
// code, the exact instruction sequence a decoder must execute; the
// sibling package gen renders those tables as Go source.
package delta

const (
	// Radix is the base of the per-field width digits
	// packed into a header code.
	Radix = 5

	// MaxWidth is the widest encodable field delta, in bytes.
	MaxWidth = 4

	// HeaderMask selects the bits of the raw header byte that
	// carry the width digits. The top bit of the byte is owned
	// by the surrounding record format and must be masked off
	// before any table lookup.
	HeaderMask = 127
)

// NumCodes returns the number of valid header codes
// for the given tuple arity: Radix to the arity'th power.
func NumCodes(arity int) int {
	n := 1
	for i := 0; i < arity; i++ {
		n *= Radix
	}
	return n
}

// Widths3 decomposes a header code into the three per-field
// byte widths, most significant field first.
func Widths3(h int) (a, b, c int) {
	return h / 25, (h % 25) / Radix, h % Radix
}

// Code3 reconstructs the header code for three field widths.
// It is the inverse of Widths3.
func Code3(a, b, c int) int {
	return a*25 + b*Radix + c
}

// Widths2 decomposes a header code into the two per-field
// byte widths, most significant field first.
func Widths2(h int) (a, b int) {
	return h / Radix, h % Radix
}

// Code2 reconstructs the header code for two field widths.
// It is the inverse of Widths2.
func Code2(a, b int) int {
	return a*Radix + b
}

// Op determines how one decoded field combines with the
// corresponding field of the previously decoded tuple.
type Op uint8

const (
	// Skip emits no code at all: the field keeps the value
	// it had in the previous tuple.
	Skip Op = iota
	// Assign replaces the field with the operand.
	Assign
	// Add adds the operand to the field.
	Add
)

func (o Op) String() string {
	switch o {
	case Skip:
		return "skip"
	case Assign:
		return "assign"
	case Add:
		return "add"
	}
	return "invalid"
}

// Instr is the decode instruction for a single field.
//
// The operand is the sum of a fixed-width stream read
// (Width bytes, absent when Width is zero) and the literal
// Offset (absent when zero). Skip instructions carry neither.
type Instr struct {
	Op     Op
	Width  int
	Offset int
}

// decide picks the instruction for one field given its width,
// the pending flag threaded from the previous field, and the
// literal offset selected by the table mode.
//
// pending is set when no preceding field has emitted code yet;
// in that state the field still adds onto its own previous value.
// Once some field has emitted, the tuple has visibly diverged and
// later fields are assigned absolute values instead. A zero-width
// field with pending set and a zero offset would decode as a no-op
// add, so it is elided entirely.
func decide(width int, pending bool, offset int) Instr {
	if width == 0 && pending && offset == 0 {
		return Instr{Op: Skip}
	}
	op := Assign
	if pending {
		op = Add
	}
	return Instr{Op: op, Width: width, Offset: offset}
}
