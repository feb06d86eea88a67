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

// Package cursor implements the byte-level primitives of the delta
// stream format: a read cursor with the fixed-width big-endian
// ReadDelta readers and the matching append-style writers.
package cursor

import (
	"errors"
	"io"
)

var errUvarintOverflow = errors.New("uvarint overflows 64 bits")

// Cursor reads through one encoded page.
//
// A read past the end of the buffer returns zero and sets a sticky
// error; callers check Err once per record instead of threading an
// error through every fixed-width read.
type Cursor struct {
	buf []byte
	pos int
	err error
}

// Reset positions c at the start of buf and clears the error state.
func (c *Cursor) Reset(buf []byte) {
	c.buf = buf
	c.pos = 0
	c.err = nil
}

// Err returns the sticky error, if any.
func (c *Cursor) Err() error { return c.err }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

func (c *Cursor) take(n int) []byte {
	if len(c.buf)-c.pos < n {
		c.pos = len(c.buf)
		if c.err == nil {
			c.err = io.ErrUnexpectedEOF
		}
		return nil
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b
}

// Byte returns the next byte.
func (c *Cursor) Byte() byte {
	b := c.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// Uint32 reads a fixed-width big-endian 32-bit integer.
func (c *Cursor) Uint32() uint32 {
	b := c.take(4)
	if b == nil {
		return 0
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// ReadDelta1 reads a 1-byte delta value.
func (c *Cursor) ReadDelta1() uint32 {
	b := c.take(1)
	if b == nil {
		return 0
	}
	return uint32(b[0])
}

// ReadDelta2 reads a 2-byte big-endian delta value.
func (c *Cursor) ReadDelta2() uint32 {
	b := c.take(2)
	if b == nil {
		return 0
	}
	return uint32(b[0])<<8 | uint32(b[1])
}

// ReadDelta3 reads a 3-byte big-endian delta value.
func (c *Cursor) ReadDelta3() uint32 {
	b := c.take(3)
	if b == nil {
		return 0
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// ReadDelta4 reads a 4-byte big-endian delta value.
func (c *Cursor) ReadDelta4() uint32 {
	return c.Uint32()
}

// Uvarint reads an integer encoded in 7-bit groups, least
// significant group first, with the high bit of each byte set
// on all but the final group.
func (c *Cursor) Uvarint() uint64 {
	var v uint64
	var shift uint
	for {
		b := c.take(1)
		if b == nil {
			return 0
		}
		if shift >= 64 {
			if c.err == nil {
				c.err = errUvarintOverflow
			}
			return 0
		}
		v |= uint64(b[0]&0x7f) << shift
		if b[0]&0x80 == 0 {
			return v
		}
		shift += 7
	}
}
