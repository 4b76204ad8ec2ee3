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

import "github.com/google/uuid"

// Kind identifies the row-layout encoding a Column uses. Only RLE exists
// today; the field exists so a future encoding can be dispatched on
// without changing Column's public surface.
type Kind int

const (
	// RLE is the (and today, only) run-length-coded layout.
	RLE Kind = iota
)

// Column is one dictionary-encoded, run-length-coded string column: a
// sorted Dictionary, the RunStream of (id, length) pairs covering every
// row, and the per-id InvertedIndex. It is append-only, not safe for
// concurrent use, and owns every string and bitmap it returns references
// or copies of (§5).
type Column struct {
	// ID identifies this Column instance for logs and traces; it has no
	// bearing on equality or content.
	ID uuid.UUID

	Kind Kind

	dict  *Dictionary
	runs  runStream
	index *invertedIndex

	// lastNonNull is the most recently appended non-null value, tracked
	// by string rather than id so that a dictionary re-index triggered
	// by a later push never invalidates it: by I1, v < lastNonNull
	// exactly when id(v) would be < id(lastNonNull), so the string
	// comparison is equivalent to (and simpler than) tracking a
	// shifting id.
	lastNonNull *string
}

// New returns an empty column with no pre-seeded dictionary.
func New() *Column {
	return &Column{
		ID:    uuid.New(),
		Kind:  RLE,
		dict:  newDictionary(),
		index: newInvertedIndex(),
	}
}

// NewWithDictionary returns an empty column whose dictionary is
// pre-seeded with values, which must already be sorted ascending with no
// duplicates. Pre-seeding avoids the re-index churn of inserting
// out-of-order strings into a sorted dictionary during ingest (§9
// "Re-index cost").
func NewWithDictionary(values []string) (*Column, error) {
	dict, err := newDictionaryFromSorted(values)
	if err != nil {
		return nil, err
	}
	return &Column{
		ID:    uuid.New(),
		Kind:  RLE,
		dict:  dict,
		index: newInvertedIndex(),
	}, nil
}

// NewFromValues builds a column whose dictionary and initial rows are
// both defined by values, which must already be sorted ascending; an
// out-of-order value fails with ErrOrderViolation exactly as a manual
// PushValue sequence would.
func NewFromValues(values []string) (*Column, error) {
	c := New()
	for _, v := range values {
		if err := c.PushValue(v); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Len returns the total number of rows appended so far.
func (c *Column) Len() uint32 { return c.runs.total }

// HasNull reports whether NULL has ever been pushed (I6).
func (c *Column) HasNull() bool {
	bm := c.index.bitmap(NullID)
	return bm != nil && !bm.IsEmpty()
}

// reindexIfNeeded shifts the run stream and inverted index when a
// dictionary insertion landed at a position other than the very end
// (before is the dictionary length prior to the insert). Appending a
// brand-new maximum value needs no reindex: nothing existing moves.
func (c *Column) reindexIfNeeded(id uint32, inserted bool, before int) {
	if inserted && int(id) <= before {
		c.runs.reindexFrom(id)
		c.index.reindexFrom(id)
	}
}

// PushValue appends one row with v. It fails with ErrOrderViolation, and
// leaves the column unchanged, if v sorts strictly before the most
// recently appended non-null value (§4.2).
func (c *Column) PushValue(v string) error {
	if c.lastNonNull != nil && v < *c.lastNonNull {
		return ErrOrderViolation
	}
	before := c.dict.Len()
	id, inserted := c.dict.Intern(v)
	c.reindexIfNeeded(id, inserted, before)

	start := c.runs.push(id, 1)
	c.index.add(id, start, 1)
	c.lastNonNull = &v
	return nil
}

// PushNull appends one NULL row.
func (c *Column) PushNull() {
	start := c.runs.push(NullID, 1)
	c.index.add(NullID, start, 1)
}

// PushAdditional appends n rows of v in bulk, extending the column's
// current last run if it already holds the resulting id. Unlike
// PushValue, it performs no ordering check: it is the caller's
// responsibility to keep the dictionary sorted consistently with the
// values it bulk-loads (§4.2), which a pre-seeded dictionary naturally
// guarantees. v == nil pushes n NULL rows; n == 0 is a no-op that does
// not intern v.
func (c *Column) PushAdditional(v *string, n uint32) {
	if n == 0 {
		return
	}
	id := NullID
	if v != nil {
		before := c.dict.Len()
		var inserted bool
		id, inserted = c.dict.Intern(*v)
		c.reindexIfNeeded(id, inserted, before)
		last := *v
		c.lastNonNull = &last
	}
	start := c.runs.push(id, n)
	c.index.add(id, start, n)
}
