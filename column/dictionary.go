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
	"sort"

	"github.com/dchest/siphash"
	"golang.org/x/exp/slices"
)

// NullID is the reserved id representing the absence of a value at a row.
// It is never a key in Dictionary and never equal to the id of any string.
const NullID uint32 = 0

// Dictionary is a sorted set of distinct non-null strings. Position p
// (1-based) in the sorted sequence is the id of the value stored there, so
// id(a) < id(b) iff a < b lexicographically (I1). Id 0 is reserved for
// NULL and is never present here (I2).
type Dictionary struct {
	values []string

	// seen is a siphash-keyed fast-negative-lookup cache: if a value's
	// hash isn't in seen, it is guaranteed absent from values, letting
	// Lookup skip the binary search entirely on a cold miss. A hit still
	// falls through to the authoritative binary search below, so hash
	// collisions only cost a wasted (but correct) search, never a wrong
	// answer.
	seen   map[uint64]struct{}
	k0, k1 uint64
}

// fixed siphash key: the cache only needs to be collision-resistant
// against accidental string clashes within one process, not
// adversarially keyed.
const dictHashK0, dictHashK1 = 0x5ec0de5eedc01d00, 0xfeedfacecafebeef

func newDictionary() *Dictionary {
	return &Dictionary{
		seen: make(map[uint64]struct{}),
		k0:   dictHashK0,
		k1:   dictHashK1,
	}
}

func (d *Dictionary) hash(v string) uint64 {
	return siphash.Hash(d.k0, d.k1, []byte(v))
}

// newDictionaryFromSorted builds a Dictionary pre-seeded with values, which
// must already be strictly sorted ascending (no duplicates). This lets
// ingest avoid the re-index churn of inserting in arbitrary order; see
// NewWithDictionary.
func newDictionaryFromSorted(values []string) (*Dictionary, error) {
	d := newDictionary()
	for i := 1; i < len(values); i++ {
		if values[i-1] >= values[i] {
			return nil, fmt.Errorf("column: preseed dictionary must be strictly sorted ascending, got %q before %q", values[i-1], values[i])
		}
	}
	d.values = append(d.values, values...)
	for _, v := range d.values {
		d.seen[d.hash(v)] = struct{}{}
	}
	return d, nil
}

// Len returns the number of distinct non-null values.
func (d *Dictionary) Len() int { return len(d.values) }

// Sorted returns the ordered view of the dictionary, excluding NULL.
// The returned slice must not be mutated or retained past the next
// mutation of the column it belongs to.
func (d *Dictionary) Sorted() []string { return d.values }

// Lookup returns the id for v without inserting it.
func (d *Dictionary) Lookup(v string) (uint32, bool) {
	if _, ok := d.seen[d.hash(v)]; !ok {
		return 0, false
	}
	i, found := slices.BinarySearch(d.values, v)
	if !found {
		return 0, false
	}
	return uint32(i + 1), true
}

// Intern returns the id for v, inserting it into the sorted dictionary if
// it is not already present. inserted reports whether an insertion
// occurred; callers must re-index the run stream and inverted index when
// an insertion lands at a position other than the very end (see
// Column.reindexIfNeeded).
func (d *Dictionary) Intern(v string) (id uint32, inserted bool) {
	i, found := slices.BinarySearch(d.values, v)
	if found {
		return uint32(i + 1), false
	}
	d.values = slices.Insert(d.values, i, v)
	d.seen[d.hash(v)] = struct{}{}
	return uint32(i + 1), true
}

// ValueOf returns the string stored at the given 1-based id. It panics if
// id is 0 or exceeds Len; callers that need a non-panicking accessor for
// an id of unknown provenance should use Column.DecodeID instead.
func (d *Dictionary) ValueOf(id uint32) string {
	return d.values[id-1]
}

// LowerBound returns the smallest id whose value is >= v, or Len()+1 if no
// such value exists.
func (d *Dictionary) LowerBound(v string) uint32 {
	idx := sort.Search(len(d.values), func(i int) bool { return d.values[i] >= v })
	return uint32(idx + 1)
}

// UpperBound returns the smallest id whose value is > v, or Len()+1 if no
// such value exists.
func (d *Dictionary) UpperBound(v string) uint32 {
	idx := sort.Search(len(d.values), func(i int) bool { return d.values[i] > v })
	return uint32(idx + 1)
}
