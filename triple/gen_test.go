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
	"bytes"
	"os"
	"testing"

	"github.com/SnellerInc/tupledelta/delta"
	"github.com/SnellerInc/tupledelta/delta/gen"
)

// the committed dispatch files must match what gendelta
// would regenerate from gen.yaml
func TestGeneratedFiles(t *testing.T) {
	cases := []struct {
		mode  delta.Mode
		file  string
		fn    string
		tuple string
	}{
		{delta.Full, "decode_gen.go", "decodeTriple", "Tuple"},
		{delta.Aggregated, "decode_agg_gen.go", "decodeAggregated", "Tuple"},
		{delta.FullyAggregated, "decode_pair_gen.go", "decodePair", "Pair"},
	}
	for _, c := range cases {
		disk, err := os.ReadFile(c.file)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		err = gen.WriteFile(&buf, delta.Build(c.mode), nil, "triple", c.fn, c.tuple)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(disk, buf.Bytes()) {
			t.Errorf("%s is stale; rerun go generate", c.file)
		}
	}
}
