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

// idAt returns the id stored at rowID, or false if rowID is out of range
// [0, Len()).
func (c *Column) idAt(rowID uint32) (uint32, bool) {
	idx, ok := c.runs.findRun(rowID)
	if !ok {
		return 0, false
	}
	return c.runs.runs[idx].ID, true
}

// Value returns the decoded string at rowID. Valid is false both when
// rowID holds NULL and when rowID is out of range: a caller that needs to
// tell the two apart should bound rowID against Len() itself, or use
// DecodeID alongside idAt-level information — this ambiguity is
// deliberate, mirroring the column this package is modeled on (§7 Open
// Questions).
func (c *Column) Value(rowID uint32) Option {
	id, ok := c.idAt(rowID)
	if !ok || id == NullID {
		return Option{}
	}
	return Option{Valid: true, Value: c.dict.ValueOf(id)}
}

// Values appends the decoded value for every row in rowIDs, in the order
// given, to dst and returns the result. dst is cleared (capacity
// preserved) before appending. Out-of-range row ids are dropped rather
// than producing a NULL entry.
func (c *Column) Values(rowIDs []uint32, dst []Option) []Option {
	dst = dst[:0]
	for _, r := range rowIDs {
		id, ok := c.idAt(r)
		if !ok {
			continue
		}
		if id == NullID {
			dst = append(dst, Option{})
			continue
		}
		dst = append(dst, Option{Valid: true, Value: c.dict.ValueOf(id)})
	}
	return dst
}

// AllValues appends the decoded value of every row in the column, in row
// order, to dst and returns the result. dst is cleared (capacity
// preserved) before appending.
func (c *Column) AllValues(dst []Option) []Option {
	dst = dst[:0]
	for _, run := range c.runs.runs {
		var opt Option
		if run.ID != NullID {
			opt = Option{Valid: true, Value: c.dict.ValueOf(run.ID)}
		}
		for i := uint32(0); i < run.Length; i++ {
			dst = append(dst, opt)
		}
	}
	return dst
}

// DecodeID returns the dictionary string for id, or ("", false) if id is
// NullID or otherwise has no assigned value. Unlike Dictionary.ValueOf,
// DecodeID never panics: it is meant for callers handling ids recovered
// from EncodedValues, which may legitimately be NullID.
func (c *Column) DecodeID(id uint32) (string, bool) {
	if id == NullID || id == 0 || int(id) > c.dict.Len() {
		return "", false
	}
	return c.dict.ValueOf(id), true
}

// EncodedValues appends the raw dictionary id at each row in rowIDs, in
// the order given, to dst and returns the result. NULL rows yield
// NullID. dst is cleared (capacity preserved) before appending.
func (c *Column) EncodedValues(rowIDs []uint32, dst []uint32) []uint32 {
	dst = dst[:0]
	for _, r := range rowIDs {
		id, ok := c.idAt(r)
		if !ok {
			id = NullID
		}
		dst = append(dst, id)
	}
	return dst
}

// AllEncodedValues appends the raw dictionary id of every row in the
// column, in row order, to dst and returns the result. dst is cleared
// (capacity preserved) before appending.
func (c *Column) AllEncodedValues(dst []uint32) []uint32 {
	dst = dst[:0]
	for _, run := range c.runs.runs {
		for i := uint32(0); i < run.Length; i++ {
			dst = append(dst, run.ID)
		}
	}
	return dst
}

// Dictionary returns the column's sorted, de-duplicated dictionary
// values (excluding NULL, which is never a dictionary entry).
func (c *Column) Dictionary() []string {
	return c.dict.Sorted()
}

// DistinctValues appends the distinct values occurring among rowIDs to
// dst and returns the result: one Option per distinct value actually
// present in the selection, with an invalid (NULL) Option included if
// any selected row is NULL. Out-of-range row ids contribute nothing. The
// NULL entry, if present, comes first, followed by the non-null values
// in ascending dictionary order — mirroring the Option ordering (None <
// Some) of the column this package is modeled on (§4.5).
func (c *Column) DistinctValues(rowIDs []uint32, dst []Option) []Option {
	dst = dst[:0]
	selected := roaring.BitmapOf(rowIDs...)
	if bm := c.index.bitmap(NullID); bm != nil && bm.Intersects(selected) {
		dst = append(dst, Option{})
	}
	for id := uint32(1); id <= uint32(c.dict.Len()); id++ {
		bm := c.index.bitmap(id)
		if bm != nil && bm.Intersects(selected) {
			dst = append(dst, Option{Valid: true, Value: c.dict.ValueOf(id)})
		}
	}
	return dst
}

// HasNonNullValue reports whether any row in rowIDs holds a non-null
// value. Out-of-range row ids never count as non-null.
func (c *Column) HasNonNullValue(rowIDs []uint32) bool {
	selected := roaring.BitmapOf(rowIDs...)
	for id := uint32(1); id <= uint32(c.dict.Len()); id++ {
		bm := c.index.bitmap(id)
		if bm != nil && bm.Intersects(selected) {
			return true
		}
	}
	return false
}

// DictionaryCardinality returns the number of distinct non-null values
// ever interned into the dictionary — not the number of distinct values
// actually present among pushed rows, since a pre-seeded dictionary may
// carry entries no row ever uses. Unlike DistinctValues, this counts the
// whole dictionary rather than a row selection; used by cmd/dictcol's
// describe stats.
func (c *Column) DictionaryCardinality() int {
	return c.dict.Len()
}

// ContainsOtherValues reports whether any row holds a non-null value
// that is not an element of values. values need not be sorted.
func (c *Column) ContainsOtherValues(values []string) bool {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	for id := uint32(1); id <= uint32(c.dict.Len()); id++ {
		bm := c.index.bitmap(id)
		if bm == nil || bm.IsEmpty() {
			continue
		}
		if _, ok := allowed[c.dict.ValueOf(id)]; !ok {
			return true
		}
	}
	return false
}

// ContainsValue reports whether any row holds v, regardless of row
// selection. Unlike HasNonNullValue, which answers for a given row-id
// set, this checks the whole column.
func (c *Column) ContainsValue(v string) bool {
	id, ok := c.dict.Lookup(v)
	if !ok {
		return false
	}
	bm := c.index.bitmap(id)
	return bm != nil && !bm.IsEmpty()
}
