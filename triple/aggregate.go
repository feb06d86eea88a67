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

// Aggregated records replace the last field of a tuple with an
// occurrence count: (a, b, count), sorted by (a, b). The count is
// re-assigned by every record, so the aggregated dispatch table
// never elides the last field; in exchange the fast path packs a
// small (a,b)-gap and a small count into one header byte.

// EncodedLenAggregated returns the packed size of t relative to
// prev, including the header byte.
func EncodedLenAggregated(t, prev Tuple) int {
	if t[0] == prev[0] {
		gap := t[1] - prev[1]
		if gap < 32 && t[2] <= 4 {
			return 1
		}
		return 1 + cursor.DeltaLen(gap-1) + cursor.DeltaLen(t[2]-1)
	}
	return 1 + cursor.DeltaLen(t[0]-prev[0]) +
		cursor.DeltaLen(t[1]-1) + cursor.DeltaLen(t[2]-1)
}

// AppendAggregated appends the packed encoding of the aggregated
// record t relative to prev. The (a, b) prefix must sort strictly
// after prev's and the count must be nonzero.
func AppendAggregated(dst []byte, t, prev Tuple) ([]byte, error) {
	if t[0] < prev[0] || (t[0] == prev[0] && t[1] <= prev[1]) {
		return dst, ErrOutOfOrder
	}
	if t[0] == 0 || t[1] == 0 || t[2] == 0 {
		return dst, ErrZeroField
	}
	if t[0] == prev[0] {
		gap := t[1] - prev[1]
		if gap < 32 && t[2] <= 4 {
			return append(dst, byte((t[2]-1)<<5|gap)), nil
		}
		dst = append(dst, byte(0x80+
			cursor.DeltaLen(gap-1)*5+
			cursor.DeltaLen(t[2]-1)))
		dst = cursor.AppendDelta(dst, gap-1)
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

// AggregatedDecoder unpacks one encoded page of aggregated records.
type AggregatedDecoder struct {
	cur  cursor.Cursor
	t    Tuple
	n    int
	done bool
}

// Reset positions d at the start of an encoded page.
func (d *AggregatedDecoder) Reset(page []byte) {
	d.cur.Reset(page)
	d.t = Tuple{}
	d.n = 0
	d.done = false
}

// Next returns the next aggregated record in the page.
// It returns io.EOF after the last record.
func (d *AggregatedDecoder) Next() (Tuple, error) {
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
				d.done = true
				return Tuple{}, io.EOF
			}
			// small gap in b plus a count up to 4
			d.t[1] += uint32(hdr & 31)
			d.t[2] = uint32(hdr>>5) + 1
		} else if err := decodeAggregated(&d.cur, &d.t, hdr); err != nil {
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
