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
	"reflect"
	"testing"
)

func buildSample(t *testing.T) *Column {
	t.Helper()
	c := New()
	pushRun(t, c, "east", 3)
	pushRun(t, c, "north", 1)
	pushRun(t, c, "east", 5)
	pushRun(t, c, "south", 2)
	c.PushNull()
	return c
}

func TestValueAmbiguityPreserved(t *testing.T) {
	c := buildSample(t)
	// row 11 is NULL
	if opt := c.Value(11); opt.Valid {
		t.Fatalf("Value(11) should be invalid (NULL)")
	}
	// row 99 is out of range: also reports invalid, deliberately
	// indistinguishable from NULL (see Value's doc comment).
	if opt := c.Value(99); opt.Valid {
		t.Fatalf("Value(99) should be invalid (out of range)")
	}
}

func TestDecodeID(t *testing.T) {
	c := buildSample(t)
	if s, ok := c.DecodeID(NullID); ok || s != "" {
		t.Fatalf("DecodeID(0) = %q, %v; want \"\", false", s, ok)
	}
	if s, ok := c.DecodeID(1); !ok || s != "east" {
		t.Fatalf("DecodeID(1) = %q, %v; want east, true", s, ok)
	}
	if _, ok := c.DecodeID(999); ok {
		t.Fatalf("DecodeID(999) should report false")
	}
}

func TestEncodedValuesGatherMatchesAllEncodedValues(t *testing.T) {
	c := buildSample(t)
	rows := allRange(c.Len())
	gathered := c.EncodedValues(rows, nil)
	all := c.AllEncodedValues(nil)
	if !reflect.DeepEqual(gathered, all) {
		t.Fatalf("gathered != all: %v vs %v", gathered, all)
	}
	if len(all) != int(c.Len()) {
		t.Fatalf("len(all) = %d, want %d", len(all), c.Len())
	}
}

func TestValuesDropsOutOfRangeAndResetsDst(t *testing.T) {
	c := buildSample(t)
	dst := []Option{{Valid: true, Value: "zoo"}, {Valid: true, Value: "zoo"}, {Valid: true, Value: "zoo"}, {Valid: true, Value: "zoo"}}
	dst = dst[:0:4]

	// row 11 is NULL, row 99 is out of range and must be dropped entirely
	// rather than contributing an invalid Option.
	got := c.Values([]uint32{0, 11, 99}, dst)
	want := []Option{{Valid: true, Value: "east"}, {}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Values() = %+v, want %+v", got, want)
	}
	if cap(got) != 4 {
		t.Fatalf("Values() should reuse dst's capacity, got cap %d", cap(got))
	}

	if got := c.Values([]uint32{999}, dst); len(got) != 0 {
		t.Fatalf("Values([999]) = %+v, want empty", got)
	}
}

func TestAllValuesResetsDst(t *testing.T) {
	c := buildSample(t)
	stale := make([]Option, 0, 4)
	stale = append(stale, Option{Valid: true, Value: "zoo"}, Option{Valid: true, Value: "zoo"})

	got := c.AllValues(stale)
	if len(got) != int(c.Len()) {
		t.Fatalf("AllValues() len = %d, want %d", len(got), c.Len())
	}
	for _, opt := range got {
		if opt.Valid && opt.Value == "zoo" {
			t.Fatalf("AllValues() should discard stale dst content, got %+v", got)
		}
	}
}

func TestContainsOtherValues(t *testing.T) {
	c := buildSample(t)
	if c.ContainsOtherValues([]string{"east", "north", "south"}) {
		t.Fatalf("ContainsOtherValues should be false when S covers every value")
	}
	if !c.ContainsOtherValues([]string{"east", "north"}) {
		t.Fatalf("ContainsOtherValues should be true when south is missing from S")
	}
}

func TestContainsValue(t *testing.T) {
	c := buildSample(t)
	if !c.ContainsValue("north") {
		t.Fatalf("ContainsValue(north) should be true")
	}
	if c.ContainsValue("west") {
		t.Fatalf("ContainsValue(west) should be false")
	}
}

func TestHasNonNullValueRowSelection(t *testing.T) {
	c := buildSample(t)
	// rows 0-2 are "east"; row 11 is NULL.
	if !c.HasNonNullValue([]uint32{0}) {
		t.Fatalf("HasNonNullValue([0]) should be true")
	}
	if !c.HasNonNullValue([]uint32{0, 1, 2}) {
		t.Fatalf("HasNonNullValue([0,1,2]) should be true")
	}
	if c.HasNonNullValue([]uint32{11}) {
		t.Fatalf("HasNonNullValue([11]) should be false: row 11 is NULL")
	}
	if c.HasNonNullValue([]uint32{11, 100}) {
		t.Fatalf("HasNonNullValue([11,100]) should be false: NULL plus an out-of-range id")
	}
}

func TestDistinctValuesRowSelection(t *testing.T) {
	c := buildSample(t)
	rows := allRange(c.Len())

	got := c.DistinctValues(rows, nil)
	want := []Option{{}, {Valid: true, Value: "east"}, {Valid: true, Value: "north"}, {Valid: true, Value: "south"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DistinctValues(all) = %+v, want %+v", got, want)
	}

	// rows 0-3 are east, east, east, north
	got = c.DistinctValues([]uint32{0, 1, 2, 3}, nil)
	want = []Option{{Valid: true, Value: "east"}, {Valid: true, Value: "north"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DistinctValues([0-3]) = %+v, want %+v", got, want)
	}

	// out-of-range ids contribute nothing.
	if got := c.DistinctValues([]uint32{100}, nil); len(got) != 0 {
		t.Fatalf("DistinctValues([100]) = %+v, want empty", got)
	}
}

func TestDictionaryCardinality(t *testing.T) {
	c := buildSample(t)
	if n := c.DictionaryCardinality(); n != 3 {
		t.Fatalf("DictionaryCardinality() = %d, want 3", n)
	}
}
