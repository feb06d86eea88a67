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

// Package pagefmt stores a sorted tuple stream as a sequence of
// independently compressed, checksummed pages followed by a trailer.
//
// The layout is
//
//	file    := block* trailer size32
//	block   := size32 compressed-page sum64
//	size32  := big-endian uint32
//	sum64   := big-endian siphash of the compressed page
//
// Pages are delta-packed with package triple before compression, so
// a page can be decoded only from its start; the trailer records the
// page sizes and counts so readers can seek by page. The trailing
// size32 is the length of the trailer itself.
package pagefmt

import (
	"errors"
	"fmt"
	"hash"
	"io"

	"github.com/SnellerInc/tupledelta/compr"
	"github.com/SnellerInc/tupledelta/triple"

	"github.com/dchest/siphash"
	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

const (
	// DefaultPageSize is the uncompressed page capacity
	// used when Writer.PageSize is zero.
	DefaultPageSize = 16 * 1024

	// minPageSize leaves room for the full leading tuple
	// plus at least one packed record.
	minPageSize = 64
)

// fixed siphash key for page checksums; the checksum guards
// against storage corruption, not an adversary
const (
	sipK0 = 0x7475706c6564656c // "tupledel"
	sipK1 = 0x7461706167657321 // "tapages!"
)

var (
	// ErrChecksum is returned when a page fails
	// checksum validation.
	ErrChecksum = errors.New("pagefmt: page checksum mismatch")

	// ErrTrailer is returned when the file trailer
	// is missing or damaged.
	ErrTrailer = errors.New("pagefmt: bad trailer")
)

// Writer encodes a strictly increasing tuple stream.
//
// Output, and optionally Comp and PageSize, must be set before the
// first call to Add; Close flushes the final page and the trailer.
type Writer struct {
	// Output receives the encoded file.
	Output io.Writer
	// Comp names the page compression algorithm;
	// "zstd" (default) and "s2" are supported.
	Comp string
	// PageSize is the uncompressed page capacity in bytes.
	// Zero means DefaultPageSize.
	PageSize int

	comp    compr.Compressor
	digest  hash.Hash
	page    []byte
	scratch []byte
	prev    triple.Tuple
	n       int // tuples in the current page
	off     int64
	started bool
	closed  bool

	trailer Trailer
}

func (w *Writer) init() error {
	if w.Comp == "" {
		w.Comp = "zstd"
	}
	w.comp = compr.Compression(w.Comp)
	if w.comp == nil {
		return fmt.Errorf("pagefmt: unknown compression %q", w.Comp)
	}
	if w.PageSize == 0 {
		w.PageSize = DefaultPageSize
	}
	if w.PageSize < minPageSize {
		return fmt.Errorf("pagefmt: page size %d below minimum %d", w.PageSize, minPageSize)
	}
	d, err := blake2b.New256(nil)
	if err != nil {
		return err
	}
	w.digest = d
	w.trailer = Trailer{
		Algo:     w.Comp,
		ID:       uuid.New(),
		PageSize: w.PageSize,
	}
	w.started = true
	return nil
}

// Add appends t to the stream. Tuples must arrive in strictly
// increasing lexicographic order with no zero fields.
func (w *Writer) Add(t triple.Tuple) error {
	if w.closed {
		return errors.New("pagefmt: Add after Close")
	}
	if !w.started {
		if err := w.init(); err != nil {
			return err
		}
	}
	if w.trailer.Tuples > 0 && !w.prev.Less(t) {
		return triple.ErrOutOfOrder
	}
	if t[0] == 0 || t[1] == 0 || t[2] == 0 {
		return triple.ErrZeroField
	}
	if w.n > 0 && triple.EncodedLen(t, w.prev) > w.PageSize-len(w.page) {
		if err := w.flushPage(); err != nil {
			return err
		}
	}
	if w.n == 0 {
		w.page = triple.AppendFirst(w.page[:0], t)
	} else {
		var err error
		w.page, err = triple.Append(w.page, t, w.prev)
		if err != nil {
			return err
		}
	}
	w.prev = t
	w.n++
	w.trailer.Tuples++
	return nil
}

func (w *Writer) flushPage() error {
	if w.n == 0 {
		return nil
	}
	w.scratch = w.comp.Compress(w.page, w.scratch[:0])
	var frame [4]byte
	put32(frame[:], uint32(len(w.scratch)))
	if err := w.emit(frame[:]); err != nil {
		return err
	}
	if err := w.emit(w.scratch); err != nil {
		return err
	}
	var sum [8]byte
	put64(sum[:], siphash.Hash(sipK0, sipK1, w.scratch))
	if err := w.emit(sum[:]); err != nil {
		return err
	}
	w.trailer.Pages = append(w.trailer.Pages, PageInfo{
		Size:   len(w.scratch),
		Usize:  len(w.page),
		Tuples: w.n,
	})
	w.page = w.page[:0]
	w.n = 0
	return nil
}

// emit writes b to Output and folds it into the file digest.
func (w *Writer) emit(b []byte) error {
	_, err := w.Output.Write(b)
	if err != nil {
		return err
	}
	w.digest.Write(b)
	w.off += int64(len(b))
	return nil
}

// Close flushes the final page and writes the trailer.
// It does not close Output.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	if !w.started {
		if err := w.init(); err != nil {
			return err
		}
	}
	if err := w.flushPage(); err != nil {
		return err
	}
	w.closed = true
	w.digest.Sum(w.trailer.Digest[:0])
	body := w.trailer.append(nil)
	var size [4]byte
	put32(size[:], uint32(len(body)))
	body = append(body, size[:]...)
	_, err := w.Output.Write(body)
	return err
}

// Trailer returns the file trailer.
// It is only complete after Close.
func (w *Writer) Trailer() *Trailer { return &w.trailer }

func put32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

func put64(b []byte, v uint64) {
	put32(b, uint32(v>>32))
	put32(b[4:], uint32(v))
}
