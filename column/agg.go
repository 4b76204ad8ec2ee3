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

import "github.com/RoaringBitmap/roaring"

// Min returns the lexicographically smallest non-null value present
// among rowIDs, or ("", false) if rowIDs is empty or every row in it is
// NULL. Because dictionary ids are sort-order-preserving (I1), the
// smallest id present is the answer: no string comparison is needed.
func (c *Column) Min(rowIDs []uint32) (string, bool) {
	return c.extreme(rowIDs, true)
}

// Max returns the lexicographically largest non-null value present
// among rowIDs, or ("", false) if rowIDs is empty or every row in it is
// NULL.
func (c *Column) Max(rowIDs []uint32) (string, bool) {
	return c.extreme(rowIDs, false)
}

func (c *Column) extreme(rowIDs []uint32, wantMin bool) (string, bool) {
	present := c.idsPresent(rowIDs)
	if present.IsEmpty() {
		return "", false
	}
	var id uint32
	if wantMin {
		id = present.Minimum()
	} else {
		id = present.Maximum()
	}
	return c.dict.ValueOf(id), true
}

// idsPresent returns the set of distinct non-null ids occurring among
// rowIDs.
func (c *Column) idsPresent(rowIDs []uint32) *roaring.Bitmap {
	selected := roaring.BitmapOf(rowIDs...)
	out := roaring.New()
	for id := uint32(1); id <= uint32(c.dict.Len()); id++ {
		bm := c.index.bitmap(id)
		if bm != nil && bm.Intersects(selected) {
			out.Add(id)
		}
	}
	return out
}

// Count returns the number of rows among rowIDs holding a non-null
// value.
func (c *Column) Count(rowIDs []uint32) int {
	selected := roaring.BitmapOf(rowIDs...)
	var n uint64
	for id := uint32(1); id <= uint32(c.dict.Len()); id++ {
		bm := c.index.bitmap(id)
		if bm == nil {
			continue
		}
		n += bm.AndCardinality(selected)
	}
	return int(n)
}

// GroupRowIDs partitions rowIDs by the value each row holds, returning
// one Group per distinct value encountered (including a NULL bucket,
// Group.Value == Option{}, when any selected row is NULL). Buckets are
// returned in ascending value order, with NULL (if present) last, and
// each bucket's row ids are ascending.
func (c *Column) GroupRowIDs(rowIDs []uint32, newDst func() RowIDs) []Group {
	selected := roaring.BitmapOf(rowIDs...)
	var groups []Group

	for id := uint32(1); id <= uint32(c.dict.Len()); id++ {
		bm := c.index.bitmap(id)
		if bm == nil {
			continue
		}
		inter := roaring.And(bm, selected)
		if inter.IsEmpty() {
			continue
		}
		dst := newDst()
		dst.appendBitmap(inter)
		groups = append(groups, Group{Value: Option{Valid: true, Value: c.dict.ValueOf(id)}, RowIDs: dst})
	}

	if nullBm := c.index.bitmap(NullID); nullBm != nil {
		inter := roaring.And(nullBm, selected)
		if !inter.IsEmpty() {
			dst := newDst()
			dst.appendBitmap(inter)
			groups = append(groups, Group{Value: Option{}, RowIDs: dst})
		}
	}

	return groups
}

// Group is one partition produced by GroupRowIDs: every row in RowIDs
// holds Value.
type Group struct {
	Value  Option
	RowIDs RowIDs
}
