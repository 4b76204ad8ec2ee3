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

package column

import (
	"github.com/sneller-labs/dictcol/compr"
	"github.com/sneller-labs/dictcol/ints"
)

// Size returns an advisory, monotonically-nondecreasing estimate (in
// bytes) of the column's uncompressed in-memory footprint: the
// dictionary's string bytes, plus 8 bytes per run for the id/length
// pair, plus a per-id bitmap container overhead estimate. It exists for
// planning and telemetry, never for byte-exact accounting (§7 Open
// Questions).
func (c *Column) Size() int {
	n := 0
	for _, v := range c.dict.values {
		n += len(v)
	}
	n += len(c.runs.runs) * 8
	for range c.index.m {
		n += 64 // rough fixed container overhead per populated id
	}
	// a column with no rows yet still reports the dictionary's own byte
	// footprint rather than clamping to 0
	return ints.Max(n, 0)
}

// CompressedSize returns an advisory estimate of the column's footprint
// after zstd compression, by serializing the dictionary bytes and
// encoded ids and running them through the compr package's zstd
// estimator. It is strictly for capacity planning; callers must not
// depend on it for exact byte accounting, and a column with zero rows
// reports a CompressedSize of 0.
func (c *Column) CompressedSize() int {
	if c.Len() == 0 {
		return 0
	}
	raw := make([]byte, 0, c.Size())
	for _, v := range c.dict.values {
		raw = append(raw, v...)
	}
	ids := c.AllEncodedValues(nil)
	for _, id := range ids {
		raw = append(raw, byte(id), byte(id>>8), byte(id>>16), byte(id>>24))
	}

	z := compr.Compression("zstd")
	if z == nil {
		return len(raw)
	}
	return len(z.Compress(raw, nil))
}
