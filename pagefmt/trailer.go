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
	"fmt"

	"github.com/SnellerInc/tupledelta/cursor"

	"github.com/google/uuid"
)

// trailer magic; bumped when the trailer layout changes
var magic = [4]byte{'T', 'D', 'P', '1'}

// PageInfo describes one compressed page block.
type PageInfo struct {
	// Size is the compressed page size, excluding
	// the length and checksum framing.
	Size int
	// Usize is the uncompressed page size.
	Usize int
	// Tuples is the number of records in the page.
	Tuples int
}

// Trailer describes an encoded file.
type Trailer struct {
	// Algo is the page compression algorithm.
	Algo string
	// ID identifies this particular build of the file.
	ID uuid.UUID
	// PageSize is the uncompressed page capacity
	// the file was written with.
	PageSize int
	// Tuples is the total record count.
	Tuples int64
	// Pages lists the page blocks in file order.
	Pages []PageInfo
	// Digest is the blake2b-256 digest of everything
	// preceding the trailer.
	Digest [32]byte
}

// append encodes t.
func (t *Trailer) append(dst []byte) []byte {
	dst = append(dst, magic[:]...)
	dst = append(dst, byte(len(t.Algo)))
	dst = append(dst, t.Algo...)
	dst = append(dst, t.ID[:]...)
	dst = cursor.AppendUvarint(dst, uint64(t.PageSize))
	dst = cursor.AppendUvarint(dst, uint64(t.Tuples))
	dst = cursor.AppendUvarint(dst, uint64(len(t.Pages)))
	for i := range t.Pages {
		dst = cursor.AppendUvarint(dst, uint64(t.Pages[i].Size))
		dst = cursor.AppendUvarint(dst, uint64(t.Pages[i].Usize))
		dst = cursor.AppendUvarint(dst, uint64(t.Pages[i].Tuples))
	}
	return append(dst, t.Digest[:]...)
}

// parse decodes a trailer from buf.
func (t *Trailer) parse(buf []byte) error {
	var cur cursor.Cursor
	cur.Reset(buf)
	var m [4]byte
	m[0], m[1], m[2], m[3] = cur.Byte(), cur.Byte(), cur.Byte(), cur.Byte()
	if cur.Err() != nil || m != magic {
		return fmt.Errorf("%w: bad magic %q", ErrTrailer, m[:])
	}
	alen := int(cur.Byte())
	algo := make([]byte, 0, alen)
	for i := 0; i < alen; i++ {
		algo = append(algo, cur.Byte())
	}
	t.Algo = string(algo)
	for i := range t.ID {
		t.ID[i] = cur.Byte()
	}
	t.PageSize = int(cur.Uvarint())
	t.Tuples = int64(cur.Uvarint())
	npages := int(cur.Uvarint())
	if err := cur.Err(); err != nil {
		return fmt.Errorf("%w: %s", ErrTrailer, err)
	}
	// each page entry is at least 3 bytes
	if npages < 0 || npages > cur.Remaining()/3 {
		return fmt.Errorf("%w: impossible page count %d", ErrTrailer, npages)
	}
	t.Pages = make([]PageInfo, npages)
	for i := range t.Pages {
		t.Pages[i].Size = int(cur.Uvarint())
		t.Pages[i].Usize = int(cur.Uvarint())
		t.Pages[i].Tuples = int(cur.Uvarint())
	}
	for i := range t.Digest {
		t.Digest[i] = cur.Byte()
	}
	if err := cur.Err(); err != nil {
		return fmt.Errorf("%w: %s", ErrTrailer, err)
	}
	if cur.Remaining() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrTrailer, cur.Remaining())
	}
	// the digest does not cover the trailer, so a damaged trailer
	// has to be rejected on its own shape before Reader trusts the
	// page table enough to allocate from it
	if t.PageSize <= 0 {
		return fmt.Errorf("%w: impossible page size %d", ErrTrailer, t.PageSize)
	}
	if t.Tuples < 0 {
		return fmt.Errorf("%w: impossible tuple count %d", ErrTrailer, t.Tuples)
	}
	total := int64(0)
	for i := range t.Pages {
		p := &t.Pages[i]
		if p.Size <= 0 || p.Usize <= 0 || p.Usize > t.PageSize || p.Tuples <= 0 {
			return fmt.Errorf("%w: impossible page %d (%d -> %d bytes, %d tuples)",
				ErrTrailer, i, p.Usize, p.Size, p.Tuples)
		}
		total += int64(p.Tuples)
	}
	if total != t.Tuples {
		return fmt.Errorf("%w: pages hold %d tuples, trailer says %d",
			ErrTrailer, total, t.Tuples)
	}
	return nil
}
