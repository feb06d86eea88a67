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

package triple

import (
	"io"

	"github.com/SnellerInc/tupledelta/cursor"
)

// Pair is a fully aggregated record: a key and its occurrence
// count. Keys are strictly increasing, so both fields are encoded
// by every record and the reduced arity-2 dispatch table applies.
type Pair [2]uint32

// FirstLenPair is the encoded size of the leading pair of a page.
const FirstLenPair = 8

// AppendFirstPair appends p in full; it begins a new page.
func AppendFirstPair(dst []byte, p Pair) []byte {
	dst = cursor.AppendUint32(dst, p[0])
	return cursor.AppendUint32(dst, p[1])
}

// EncodedLenPair returns the packed size of p relative to prev,
// including the header byte.
func EncodedLenPair(p, prev Pair) int {
	gap := p[0] - prev[0]
	if gap < 16 && p[1] <= 8 {
		return 1
	}
	return 1 + cursor.DeltaLen(gap-1) + cursor.DeltaLen(p[1]-1)
}

// AppendPair appends the packed encoding of p relative to prev.
// The key must be strictly greater than prev's and the count
// must be nonzero.
func AppendPair(dst []byte, p, prev Pair) ([]byte, error) {
	if p[0] <= prev[0] {
		return dst, ErrOutOfOrder
	}
	if p[1] == 0 {
		return dst, ErrZeroField
	}
	gap := p[0] - prev[0]
	if gap < 16 && p[1] <= 8 {
		return append(dst, byte((p[1]-1)<<4|gap)), nil
	}
	dst = append(dst, byte(0x80+
		cursor.DeltaLen(gap-1)*5+
		cursor.DeltaLen(p[1]-1)))
	dst = cursor.AppendDelta(dst, gap-1)
	return cursor.AppendDelta(dst, p[1]-1), nil
}

// PairDecoder unpacks one encoded page of pairs.
type PairDecoder struct {
	cur  cursor.Cursor
	p    Pair
	n    int
	done bool
}

// Reset positions d at the start of an encoded page.
func (d *PairDecoder) Reset(page []byte) {
	d.cur.Reset(page)
	d.p = Pair{}
	d.n = 0
	d.done = false
}

// Next returns the next pair in the page.
// It returns io.EOF after the last pair.
func (d *PairDecoder) Next() (Pair, error) {
	if d.done {
		return Pair{}, io.EOF
	}
	if d.n == 0 {
		d.p[0] = d.cur.Uint32()
		d.p[1] = d.cur.Uint32()
	} else {
		if d.cur.Remaining() == 0 {
			d.done = true
			return Pair{}, io.EOF
		}
		hdr := d.cur.Byte()
		if hdr < 0x80 {
			if hdr == 0 {
				d.done = true
				return Pair{}, io.EOF
			}
			// small key gap plus a count up to 8
			d.p[0] += uint32(hdr & 15)
			d.p[1] = uint32(hdr>>4) + 1
		} else if err := decodePair(&d.cur, &d.p, hdr); err != nil {
			d.done = true
			return Pair{}, err
		}
	}
	if err := d.cur.Err(); err != nil {
		d.done = true
		return Pair{}, err
	}
	d.n++
	return d.p, nil
}
