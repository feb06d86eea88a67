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

package pagefmt

import (
	"errors"
	"fmt"
	"io"

	"github.com/SnellerInc/tupledelta/compr"
	"github.com/SnellerInc/tupledelta/triple"

	"github.com/dchest/siphash"
	"golang.org/x/crypto/blake2b"
)

// Reader decodes a file produced by Writer.
type Reader struct {
	// Trailer is the decoded file trailer.
	Trailer Trailer

	data    []byte
	offsets []int64 // start of each block, derived from Trailer.Pages
	dec     compr.Decompressor
	unmap   func() error
}

// NewReader parses the trailer of data and verifies the file digest.
func NewReader(data []byte) (*Reader, error) {
	r := &Reader{data: data}
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: file too short", ErrTrailer)
	}
	tlen := int(get32(data[len(data)-4:]))
	if tlen <= 0 || tlen > len(data)-4 {
		return nil, fmt.Errorf("%w: impossible trailer size %d", ErrTrailer, tlen)
	}
	body := len(data) - 4 - tlen
	if err := r.Trailer.parse(data[body : len(data)-4]); err != nil {
		return nil, err
	}
	r.dec = compr.Decompression(r.Trailer.Algo)
	if r.dec == nil {
		return nil, fmt.Errorf("pagefmt: unknown compression %q", r.Trailer.Algo)
	}
	off := int64(0)
	for i := range r.Trailer.Pages {
		r.offsets = append(r.offsets, off)
		off += int64(4 + r.Trailer.Pages[i].Size + 8)
	}
	if off != int64(body) {
		return nil, fmt.Errorf("%w: pages end at %d, trailer starts at %d", ErrTrailer, off, body)
	}
	sum := blake2b.Sum256(data[:body])
	if sum != r.Trailer.Digest {
		return nil, fmt.Errorf("%w: file digest mismatch", ErrChecksum)
	}
	return r, nil
}

// Open maps or reads the file at path and returns a Reader for it.
// Callers must call Close when done with the returned Reader.
func Open(path string) (*Reader, error) {
	data, unmap, err := mapFile(path)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(data)
	if err != nil {
		if unmap != nil {
			unmap()
		}
		return nil, err
	}
	r.unmap = unmap
	return r, nil
}

// Close releases the mapping established by Open, if any.
func (r *Reader) Close() error {
	if r.unmap != nil {
		err := r.unmap()
		r.unmap = nil
		r.data = nil
		return err
	}
	return nil
}

// NumPages returns the number of pages in the file.
func (r *Reader) NumPages() int { return len(r.Trailer.Pages) }

// Page checksums and decompresses page i into dst
// (grown as needed) and returns the uncompressed page.
func (r *Reader) Page(i int, dst []byte) ([]byte, error) {
	if i < 0 || i >= len(r.offsets) {
		return nil, fmt.Errorf("pagefmt: page %d out of range", i)
	}
	pi := &r.Trailer.Pages[i]
	off := r.offsets[i]
	block := r.data[off : off+int64(4+pi.Size+8)]
	if int(get32(block)) != pi.Size {
		return nil, fmt.Errorf("%w: page %d framing disagrees with trailer", ErrTrailer, i)
	}
	comp := block[4 : 4+pi.Size]
	want := get64(block[4+pi.Size:])
	if siphash.Hash(sipK0, sipK1, comp) != want {
		return nil, fmt.Errorf("%w: page %d", ErrChecksum, i)
	}
	if cap(dst) < pi.Usize {
		dst = make([]byte, pi.Usize)
	}
	dst = dst[:pi.Usize]
	if err := r.dec.Decompress(comp, dst); err != nil {
		return nil, fmt.Errorf("pagefmt: page %d: %w", i, err)
	}
	return dst, nil
}

// Tuples calls fn for every tuple in the file, in order,
// until fn returns false or the file is exhausted.
func (r *Reader) Tuples(fn func(triple.Tuple) bool) error {
	var dec triple.Decoder
	var page []byte
	var err error
	for i := 0; i < r.NumPages(); i++ {
		page, err = r.Page(i, page)
		if err != nil {
			return err
		}
		dec.Reset(page)
		got := 0
		for {
			t, err := dec.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return fmt.Errorf("pagefmt: page %d: %w", i, err)
			}
			got++
			if !fn(t) {
				return nil
			}
		}
		if got != r.Trailer.Pages[i].Tuples {
			return fmt.Errorf("%w: page %d has %d tuples, trailer says %d",
				errShape, i, got, r.Trailer.Pages[i].Tuples)
		}
	}
	return nil
}

var errShape = errors.New("pagefmt: page shape mismatch")

func get32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func get64(b []byte) uint64 {
	return uint64(get32(b))<<32 | uint64(get32(b[4:]))
}
