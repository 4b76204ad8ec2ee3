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

// RowIDsKind selects which concrete representation a RowIDs destination
// container uses.
type RowIDsKind int

const (
	// VectorRowIDs stores row ids as a plain sorted []uint32.
	VectorRowIDs RowIDsKind = iota
	// BitmapRowIDs stores row ids as a compressed roaring.Bitmap.
	BitmapRowIDs
)

// RowIDs is the destination container passed into predicate,
// materialization, and null-test operations. Callers choose the
// representation up front (vector or bitmap) so they can reuse
// allocations and pick whichever shape downstream consumers want. Every
// producing method clears dst on entry and appends row ids in ascending
// order on exit (§4.4 "destination container contract").
type RowIDs struct {
	Kind RowIDsKind
	vec  []uint32
	bm   *roaring.Bitmap
}

// NewVectorRowIDs returns an empty vector-backed RowIDs with the given
// starting capacity.
func NewVectorRowIDs(capacity int) RowIDs {
	return RowIDs{Kind: VectorRowIDs, vec: make([]uint32, 0, capacity)}
}

// NewBitmapRowIDs returns an empty bitmap-backed RowIDs.
func NewBitmapRowIDs() RowIDs {
	return RowIDs{Kind: BitmapRowIDs, bm: roaring.New()}
}

func (r *RowIDs) reset() {
	switch r.Kind {
	case VectorRowIDs:
		r.vec = r.vec[:0]
	case BitmapRowIDs:
		if r.bm == nil {
			r.bm = roaring.New()
		} else {
			r.bm.Clear()
		}
	}
}

// appendBitmap merges the (already ascending) contents of bm into r. Used
// internally once a predicate has accumulated its full result as a
// roaring.Bitmap, so the final row ids come out in ascending order
// regardless of which ids' bitmaps were unioned in which order.
func (r *RowIDs) appendBitmap(bm *roaring.Bitmap) {
	switch r.Kind {
	case VectorRowIDs:
		it := bm.Iterator()
		for it.HasNext() {
			r.vec = append(r.vec, it.Next())
		}
	case BitmapRowIDs:
		r.bm.Or(bm)
	}
}

// ToSlice materializes the contents of r as a sorted []uint32.
func (r RowIDs) ToSlice() []uint32 {
	switch r.Kind {
	case VectorRowIDs:
		return r.vec
	case BitmapRowIDs:
		if r.bm == nil {
			return nil
		}
		return r.bm.ToArray()
	}
	return nil
}

// IsEmpty reports whether r holds no row ids.
func (r RowIDs) IsEmpty() bool {
	switch r.Kind {
	case VectorRowIDs:
		return len(r.vec) == 0
	case BitmapRowIDs:
		return r.bm == nil || r.bm.IsEmpty()
	}
	return true
}

// Option is a materialized column value: Valid is false for NULL.
type Option struct {
	Valid bool
	Value string
}
