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

package cursor

// DeltaLen returns the number of bytes AppendDelta writes for v:
// zero for zero, otherwise the shortest big-endian width up to 4.
// This is the width digit packed into a record header.
func DeltaLen(v uint32) int {
	switch {
	case v >= 1<<24:
		return 4
	case v >= 1<<16:
		return 3
	case v >= 1<<8:
		return 2
	case v > 0:
		return 1
	}
	return 0
}

// AppendDelta appends the shortest big-endian encoding of v;
// zero appends nothing (the header width digit already records it).
func AppendDelta(dst []byte, v uint32) []byte {
	switch {
	case v >= 1<<24:
		return append(dst, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	case v >= 1<<16:
		return append(dst, byte(v>>16), byte(v>>8), byte(v))
	case v >= 1<<8:
		return append(dst, byte(v>>8), byte(v))
	case v > 0:
		return append(dst, byte(v))
	}
	return dst
}

// AppendUint32 appends a fixed-width big-endian 32-bit integer.
func AppendUint32(dst []byte, v uint32) []byte {
	return append(dst, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// AppendUvarint appends v in 7-bit groups, least significant
// group first; the high bit marks continuation.
func AppendUvarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}
