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

// Package triple packs and unpacks sorted tuple streams using the
// header-coded delta format described in package delta.
//
// A page begins with one tuple written in full (fixed-width
// big-endian fields); every following record encodes only the
// difference from its predecessor. The common case of a small gap
// in the last field is a single byte with the high bit clear; any
// other record is a header byte with the high bit set followed by
// the field deltas the header announces. A zero byte terminates
// the page early (the remainder of a fixed-size page is padding).
//
// Streams must be strictly increasing in lexicographic order and
// every field must be nonzero; zero is the reserved nil value.
package triple

import (
	"errors"
	"io"

	"github.com/SnellerInc/tupledelta/cursor"
)

//go:generate go run ../cmd/gendelta -f gen.yaml

// Tuple is one record of a sorted triple stream.
type Tuple [3]uint32

// Less returns true if t precedes o in lexicographic order.
func (t Tuple) Less(o Tuple) bool {
	if t[0] != o[0] {
		return t[0] < o[0]
	}
	if t[1] != o[1] {
		return t[1] < o[1]
	}
	return t[2] < o[2]
}

var (
	// ErrCorruptHeader is returned when a record header decomposes
	// to a field width above 4. No encoder produces such a header;
	// seeing one means the stream is corrupt or was written by an
	// incompatible encoder.
	ErrCorruptHeader = errors.New("triple: unreachable record header")

	// ErrOutOfOrder is returned when a tuple is appended that does
	// not sort strictly after its predecessor.
	ErrOutOfOrder = errors.New("triple: tuple out of order")

	// ErrZeroField is returned when a tuple contains a zero field.
	ErrZeroField = errors.New("triple: zero field in tuple")
)

// FirstLen is the encoded size of the leading tuple of a page.
const FirstLen = 12

// AppendFirst appends t in full; it begins a new page.
func AppendFirst(dst []byte, t Tuple) []byte {
	dst = cursor.AppendUint32(dst, t[0])
	dst = cursor.AppendUint32(dst, t[1])
	return cursor.AppendUint32(dst, t[2])
}

// EncodedLen returns the packed size of t encoded relative to prev,
// including the header byte.
func EncodedLen(t, prev Tuple) int {
	if t[0] == prev[0] {
		if t[1] == prev[1] {
			gap := t[2] - prev[2]
			if gap < 128 {
				return 1
			}
			return 1 + cursor.DeltaLen(gap-128)
		}
		return 1 + cursor.DeltaLen(t[1]-prev[1]) + cursor.DeltaLen(t[2]-1)
	}
	return 1 + cursor.DeltaLen(t[0]-prev[0]) +
		cursor.DeltaLen(t[1]-1) + cursor.DeltaLen(t[2]-1)
}

// Append appends the packed encoding of t relative to prev.
//
// When the first field changes, the others are written as absolute
// values minus one; when only later fields change, the unchanged
// prefix is carried over implicitly through the header code.
func Append(dst []byte, t, prev Tuple) ([]byte, error) {
	if !prev.Less(t) {
		return dst, ErrOutOfOrder
	}
	if t[0] == 0 || t[1] == 0 || t[2] == 0 {
		return dst, ErrZeroField
	}
	if t[0] == prev[0] {
		if t[1] == prev[1] {
			gap := t[2] - prev[2]
			if gap < 128 {
				return append(dst, byte(gap)), nil
			}
			d := gap - 128
			dst = append(dst, byte(0x80+cursor.DeltaLen(d)))
			return cursor.AppendDelta(dst, d), nil
		}
		d := t[1] - prev[1]
		dst = append(dst, byte(0x80+
			cursor.DeltaLen(d)*5+
			cursor.DeltaLen(t[2]-1)))
		dst = cursor.AppendDelta(dst, d)
		return cursor.AppendDelta(dst, t[2]-1), nil
	}
	d := t[0] - prev[0]
	dst = append(dst, byte(0x80+
		cursor.DeltaLen(d)*25+
		cursor.DeltaLen(t[1]-1)*5+
		cursor.DeltaLen(t[2]-1)))
	dst = cursor.AppendDelta(dst, d)
	dst = cursor.AppendDelta(dst, t[1]-1)
	return cursor.AppendDelta(dst, t[2]-1), nil
}

// Decoder unpacks one encoded page of tuples.
type Decoder struct {
	cur  cursor.Cursor
	t    Tuple
	n    int
	done bool
}

// Reset positions d at the start of an encoded page.
func (d *Decoder) Reset(page []byte) {
	d.cur.Reset(page)
	d.t = Tuple{}
	d.n = 0
	d.done = false
}

// Next returns the next tuple in the page.
// It returns io.EOF after the last tuple.
func (d *Decoder) Next() (Tuple, error) {
	if d.done {
		return Tuple{}, io.EOF
	}
	if d.n == 0 {
		d.t[0] = d.cur.Uint32()
		d.t[1] = d.cur.Uint32()
		d.t[2] = d.cur.Uint32()
	} else {
		if d.cur.Remaining() == 0 {
			d.done = true
			return Tuple{}, io.EOF
		}
		hdr := d.cur.Byte()
		if hdr < 0x80 {
			if hdr == 0 {
				// page terminator
				d.done = true
				return Tuple{}, io.EOF
			}
			// small gap in last field
			d.t[2] += uint32(hdr)
		} else if err := decodeTriple(&d.cur, &d.t, hdr); err != nil {
			d.done = true
			return Tuple{}, err
		}
	}
	if err := d.cur.Err(); err != nil {
		d.done = true
		return Tuple{}, err
	}
	d.n++
	return d.t, nil
}
