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
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// invertedIndex maps each id (including NullID) to the compressed bitmap
// of row ids at which that id occurs (I4). Bitmaps are compressed
// (run/array/bitset hybrid containers), so unions over contiguous id
// ranges stay sub-linear in row count rather than O(rows) (§4.3).
type invertedIndex struct {
	m map[uint32]*roaring.Bitmap
}

func newInvertedIndex() *invertedIndex {
	return &invertedIndex{m: make(map[uint32]*roaring.Bitmap)}
}

// add records that rows [start, start+n) belong to id.
func (ix *invertedIndex) add(id uint32, start, n uint32) {
	if n == 0 {
		return
	}
	bm := ix.m[id]
	if bm == nil {
		bm = roaring.New()
		ix.m[id] = bm
	}
	bm.AddRange(uint64(start), uint64(start)+uint64(n))
}

// bitmap returns the bitmap for id, or nil if id has never been pushed.
func (ix *invertedIndex) bitmap(id uint32) *roaring.Bitmap {
	return ix.m[id]
}

// reindexFrom renames every key >= p to key+1, mirroring
// runStream.reindexFrom for the same dictionary insertion. Keys are
// renamed from the highest down so higher keys never collide with a key
// that hasn't moved yet.
func (ix *invertedIndex) reindexFrom(p uint32) {
	var keys []uint32
	for k := range ix.m {
		if k >= p {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] > keys[j] })
	for _, k := range keys {
		ix.m[k+1] = ix.m[k]
		delete(ix.m, k)
	}
}
