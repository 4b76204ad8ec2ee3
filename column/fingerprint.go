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
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a content hash of the column's dictionary: two
// columns built from the same set of distinct values, pushed in any
// order, produce identical fingerprints, since the dictionary is always
// kept sorted (I1). The row layout (runs, nulls) is not covered; use it
// to detect whether two columns could share a dictionary, not whether
// they hold the same rows.
func (c *Column) Fingerprint() [blake2b.Size256]byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only fails for an oversized key; nil never does.
		panic(err)
	}
	var lenbuf [4]byte
	for _, v := range c.dict.values {
		binary.LittleEndian.PutUint32(lenbuf[:], uint32(len(v)))
		h.Write(lenbuf[:])
		h.Write([]byte(v))
	}
	var out [blake2b.Size256]byte
	copy(out[:], h.Sum(nil))
	return out
}
