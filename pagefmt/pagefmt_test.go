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
	"bytes"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/SnellerInc/tupledelta/triple"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/exp/slices"
)

func testTuples(n int) []triple.Tuple {
	rng := rand.New(rand.NewSource(4))
	gaps := []uint32{1, 2, 120, 129, 70000, 1 << 25}
	out := make([]triple.Tuple, 0, n)
	cur := triple.Tuple{1, 1, 1}
	out = append(out, cur)
	for len(out) < n {
		g := gaps[rng.Intn(len(gaps))]
		switch rng.Intn(4) {
		case 0:
			cur[0] += g
			cur[1] = uint32(rng.Intn(500)) + 1
			cur[2] = uint32(rng.Intn(500)) + 1
		case 1:
			cur[1] += g
			cur[2] = uint32(rng.Intn(500)) + 1
		default:
			cur[2] += g
		}
		out = append(out, cur)
	}
	return out
}

func encode(t *testing.T, tuples []triple.Tuple, algo string, pageSize int) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := &Writer{Output: &buf, Comp: algo, PageSize: pageSize}
	for i := range tuples {
		if err := w.Add(tuples[i]); err != nil {
			t.Fatalf("Add(%v): %s", tuples[i], err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func collect(t *testing.T, r *Reader) []triple.Tuple {
	t.Helper()
	var got []triple.Tuple
	err := r.Tuples(func(tp triple.Tuple) bool {
		got = append(got, tp)
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	return got
}

func TestRoundTrip(t *testing.T) {
	tuples := testTuples(3000)
	for _, algo := range []string{"zstd", "s2"} {
		t.Run(algo, func(t *testing.T) {
			data := encode(t, tuples, algo, 512)
			r, err := NewReader(data)
			if err != nil {
				t.Fatal(err)
			}
			tr := &r.Trailer
			if tr.Algo != algo {
				t.Errorf("trailer algo %q", tr.Algo)
			}
			if tr.PageSize != 512 {
				t.Errorf("trailer page size %d", tr.PageSize)
			}
			if tr.Tuples != int64(len(tuples)) {
				t.Errorf("trailer tuple count %d, want %d", tr.Tuples, len(tuples))
			}
			if r.NumPages() < 2 {
				t.Fatalf("expected multiple pages, got %d", r.NumPages())
			}
			total := 0
			for i := range tr.Pages {
				if tr.Pages[i].Usize > 512 {
					t.Errorf("page %d uncompressed size %d above capacity", i, tr.Pages[i].Usize)
				}
				total += tr.Pages[i].Tuples
			}
			if int64(total) != tr.Tuples {
				t.Errorf("per-page counts sum to %d, trailer says %d", total, tr.Tuples)
			}
			if got := collect(t, r); !slices.Equal(got, tuples) {
				t.Fatalf("decoded %d tuples, want %d", len(got), len(tuples))
			}
		})
	}
}

func TestEmptyFile(t *testing.T) {
	var buf bytes.Buffer
	w := &Writer{Output: &buf}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	r, err := NewReader(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if r.NumPages() != 0 || r.Trailer.Tuples != 0 {
		t.Errorf("pages %d, tuples %d", r.NumPages(), r.Trailer.Tuples)
	}
	if got := collect(t, r); len(got) != 0 {
		t.Errorf("decoded %d tuples from empty file", len(got))
	}
}

func TestEarlyStop(t *testing.T) {
	tuples := testTuples(500)
	r, err := NewReader(encode(t, tuples, "zstd", 256))
	if err != nil {
		t.Fatal(err)
	}
	seen := 0
	err = r.Tuples(func(triple.Tuple) bool {
		seen++
		return seen < 10
	})
	if err != nil {
		t.Fatal(err)
	}
	if seen != 10 {
		t.Errorf("callback ran %d times", seen)
	}
}

func TestWriterErrors(t *testing.T) {
	var buf bytes.Buffer
	w := &Writer{Output: &buf, Comp: "lz4"}
	if err := w.Add(triple.Tuple{1, 1, 1}); err == nil {
		t.Error("expected error for unknown compression")
	}
	w = &Writer{Output: &buf, PageSize: 16}
	if err := w.Add(triple.Tuple{1, 1, 1}); err == nil {
		t.Error("expected error for tiny page size")
	}
	w = &Writer{Output: &buf}
	if err := w.Add(triple.Tuple{1, 1, 2}); err != nil {
		t.Fatal(err)
	}
	if err := w.Add(triple.Tuple{1, 1, 2}); err != triple.ErrOutOfOrder {
		t.Errorf("duplicate tuple: err = %v", err)
	}
	if err := w.Add(triple.Tuple{2, 0, 1}); err != triple.ErrZeroField {
		t.Errorf("zero field: err = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Add(triple.Tuple{9, 9, 9}); err == nil {
		t.Error("expected error for Add after Close")
	}
}

// corrupt flips one byte in the page area and rebuilds the trailer
// digest, so only the per-page checksum can catch the damage
func corrupt(t *testing.T, data []byte, off int) []byte {
	t.Helper()
	tlen := int(get32(data[len(data)-4:]))
	body := len(data) - 4 - tlen
	var tr Trailer
	if err := tr.parse(data[body : len(data)-4]); err != nil {
		t.Fatal(err)
	}
	out := append([]byte(nil), data[:body]...)
	out[off] ^= 0x40
	tr.Digest = blake2b.Sum256(out)
	enc := tr.append(nil)
	var size [4]byte
	put32(size[:], uint32(len(enc)))
	out = append(out, enc...)
	return append(out, size[:]...)
}

func TestPageChecksum(t *testing.T) {
	data := encode(t, testTuples(200), "zstd", 128)
	// offset 6 is inside the first compressed page
	data = corrupt(t, data, 6)
	r, err := NewReader(data)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Page(0, nil); !errors.Is(err, ErrChecksum) {
		t.Errorf("Page(0) err = %v", err)
	}
	err = r.Tuples(func(triple.Tuple) bool { return true })
	if !errors.Is(err, ErrChecksum) {
		t.Errorf("Tuples err = %v", err)
	}
}

func TestFileDigest(t *testing.T) {
	data := encode(t, testTuples(200), "zstd", 128)
	data[6] ^= 0x40
	if _, err := NewReader(data); !errors.Is(err, ErrChecksum) {
		t.Errorf("NewReader err = %v", err)
	}
}

func TestBadTrailer(t *testing.T) {
	data := encode(t, testTuples(50), "zstd", 128)
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"tooShort", data[:3]},
		{"truncated", data[:len(data)-8]},
		{"zeroSize", append(append([]byte(nil), data[:len(data)-4]...), 0, 0, 0, 0)},
		{"hugeSize", append(append([]byte(nil), data[:len(data)-4]...), 0xff, 0xff, 0xff, 0xff)},
	}
	for _, c := range cases {
		if _, err := NewReader(c.data); !errors.Is(err, ErrTrailer) {
			t.Errorf("%s: err = %v", c.name, err)
		}
	}
	// flip the magic
	bad := append([]byte(nil), data...)
	tlen := int(get32(bad[len(bad)-4:]))
	bad[len(bad)-4-tlen] = 'X'
	if _, err := NewReader(bad); !errors.Is(err, ErrTrailer) {
		t.Errorf("bad magic: err = %v", err)
	}
}

// rewriteTrailer re-encodes the trailer of data after mutate has
// edited it; the pages and the file digest are left untouched
func rewriteTrailer(t *testing.T, data []byte, mutate func(*Trailer)) []byte {
	t.Helper()
	tlen := int(get32(data[len(data)-4:]))
	body := len(data) - 4 - tlen
	var tr Trailer
	if err := tr.parse(data[body : len(data)-4]); err != nil {
		t.Fatal(err)
	}
	mutate(&tr)
	out := append([]byte(nil), data[:body]...)
	enc := tr.append(nil)
	var size [4]byte
	put32(size[:], uint32(len(enc)))
	out = append(out, enc...)
	return append(out, size[:]...)
}

// a damaged trailer is outside the file digest, so its fields must
// be rejected on shape alone instead of sizing allocations later
func TestCorruptTrailerFields(t *testing.T) {
	data := encode(t, testTuples(200), "s2", 128)
	cases := []struct {
		name   string
		mutate func(*Trailer)
	}{
		{"hugeUsize", func(tr *Trailer) { tr.Pages[0].Usize = 1<<31 - 1 }},
		{"zeroUsize", func(tr *Trailer) { tr.Pages[0].Usize = 0 }},
		{"oversizedUsize", func(tr *Trailer) { tr.Pages[0].Usize = tr.PageSize + 1 }},
		{"zeroSize", func(tr *Trailer) { tr.Pages[0].Size = 0 }},
		{"zeroTuples", func(tr *Trailer) { tr.Pages[0].Tuples = 0 }},
		{"countMismatch", func(tr *Trailer) { tr.Tuples++ }},
		{"zeroPageSize", func(tr *Trailer) { tr.PageSize = 0 }},
	}
	for _, c := range cases {
		bad := rewriteTrailer(t, data, c.mutate)
		if _, err := NewReader(bad); !errors.Is(err, ErrTrailer) {
			t.Errorf("%s: err = %v", c.name, err)
		}
	}
}

func TestPageOutOfRange(t *testing.T) {
	r, err := NewReader(encode(t, testTuples(50), "s2", 128))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Page(-1, nil); err == nil {
		t.Error("expected error for page -1")
	}
	if _, err := r.Page(r.NumPages(), nil); err == nil {
		t.Error("expected error for page past the end")
	}
}

func TestOpen(t *testing.T) {
	tuples := testTuples(1000)
	path := filepath.Join(t.TempDir(), "tuples.td")
	if err := os.WriteFile(path, encode(t, tuples, "zstd", 256), 0644); err != nil {
		t.Fatal(err)
	}
	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	got := collect(t, r)
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, tuples) {
		t.Fatalf("decoded %d tuples, want %d", len(got), len(tuples))
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, err := Open(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestTrailerRoundTrip(t *testing.T) {
	want := Trailer{
		Algo:     "s2",
		PageSize: 4096,
		Tuples:   903,
		Pages: []PageInfo{
			{Size: 100, Usize: 4000, Tuples: 900},
			{Size: 7, Usize: 60, Tuples: 3},
		},
	}
	for i := range want.ID {
		want.ID[i] = byte(i)
	}
	for i := range want.Digest {
		want.Digest[i] = byte(255 - i)
	}
	var got Trailer
	if err := got.parse(want.append(nil)); err != nil {
		t.Fatal(err)
	}
	if got.Algo != want.Algo || got.ID != want.ID ||
		got.PageSize != want.PageSize || got.Tuples != want.Tuples ||
		got.Digest != want.Digest || !slices.Equal(got.Pages, want.Pages) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
