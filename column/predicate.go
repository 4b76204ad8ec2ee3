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
	"fmt"

	"github.com/RoaringBitmap/roaring"

	"github.com/sneller-labs/dictcol/ints"
)

// idRange returns the half-open [Start, End) range of ids (1-based,
// End exclusive) that satisfy `value op` against the dictionary. LT/LTE
// /GT/GTE are all resolved this way, including when value does not
// itself appear in the dictionary (§4.4 edge cases).
func (c *Column) idRange(value string, op Operator) ints.Interval {
	n := c.dict.Len()
	switch op {
	case LT:
		return ints.Interval{Start: 1, End: int(c.dict.LowerBound(value))}
	case LTE:
		return ints.Interval{Start: 1, End: int(c.dict.UpperBound(value))}
	case GT:
		return ints.Interval{Start: int(c.dict.UpperBound(value)), End: n + 1}
	case GTE:
		return ints.Interval{Start: int(c.dict.LowerBound(value)), End: n + 1}
	default:
		panic(fmt.Sprintf("column: idRange called with non-comparison operator %v", op))
	}
}

// RowIDsFilter populates dst with the row ids satisfying `column[row] op
// value`, in ascending order, and returns it. NULLs never satisfy any
// operator, including NotEqual (three-valued logic: NULL compares as
// "unknown", hence false) — see §4.4.
func (c *Column) RowIDsFilter(value string, op Operator, dst RowIDs) RowIDs {
	dst.reset()
	acc := roaring.New()

	switch op {
	case Equal:
		if id, ok := c.dict.Lookup(value); ok {
			if bm := c.index.bitmap(id); bm != nil {
				acc.Or(bm)
			}
		}
	case NotEqual:
		excl, hasExcl := c.dict.Lookup(value)
		for id := uint32(1); id <= uint32(c.dict.Len()); id++ {
			if hasExcl && id == excl {
				continue
			}
			if bm := c.index.bitmap(id); bm != nil {
				acc.Or(bm)
			}
		}
	case LT, LTE, GT, GTE:
		r := c.idRange(value, op)
		for id := r.Start; id < r.End; id++ {
			if bm := c.index.bitmap(uint32(id)); bm != nil {
				acc.Or(bm)
			}
		}
	default:
		panic(fmt.Sprintf("column: unknown operator %v", op))
	}

	dst.appendBitmap(acc)
	return dst
}

// RowIDsNull populates dst with the row ids at which the column is NULL
// (id 0) and returns it.
func (c *Column) RowIDsNull(dst RowIDs) RowIDs {
	dst.reset()
	if bm := c.index.bitmap(NullID); bm != nil {
		dst.appendBitmap(bm)
	}
	return dst
}

// RowIDsNotNull populates dst with the row ids at which the column is not
// NULL, restricted to the assigned row-id range [0, Len()), and returns
// it.
func (c *Column) RowIDsNotNull(dst RowIDs) RowIDs {
	dst.reset()
	acc := roaring.New()
	for id := uint32(1); id <= uint32(c.dict.Len()); id++ {
		if bm := c.index.bitmap(id); bm != nil {
			acc.Or(bm)
		}
	}
	dst.appendBitmap(acc)
	return dst
}

// RowIDsIsNull populates dst with the null rows when isNull is true, or
// the non-null rows otherwise, and returns it.
//
// The column this package is modeled on has a documented defect here: its
// row_ids_is_null always returns the null set regardless of its is_null
// argument. That is treated as a bug, not a behavior to preserve — this
// implementation branches on isNull.
func (c *Column) RowIDsIsNull(isNull bool, dst RowIDs) RowIDs {
	if isNull {
		return c.RowIDsNull(dst)
	}
	return c.RowIDsNotNull(dst)
}
