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

func TestDictionaryInternOrderIndependence(t *testing.T) {
	d := newDictionary()
	world, insertedWorld := d.Intern("world")
	hello, insertedHello := d.Intern("hello")

	if !insertedWorld || !insertedHello {
		t.Fatalf("both interns should have inserted")
	}
	if hello >= world {
		t.Fatalf("hello (%d) should sort before world (%d)", hello, world)
	}
	if got := d.Sorted(); !reflect.DeepEqual(got, []string{"hello", "world"}) {
		t.Fatalf("got %v", got)
	}

	// re-interning returns the same id and reports no insertion
	again, inserted := d.Intern("hello")
	if inserted {
		t.Fatalf("re-intern should not insert")
	}
	if again != hello {
		t.Fatalf("re-intern id mismatch: got %d want %d", again, hello)
	}
}

func TestDictionaryLookupMiss(t *testing.T) {
	d := newDictionary()
	d.Intern("b")
	if _, ok := d.Lookup("a"); ok {
		t.Fatalf("lookup of absent value should miss")
	}
	if _, ok := d.Lookup("b"); !ok {
		t.Fatalf("lookup of present value should hit")
	}
}

func TestDictionaryBounds(t *testing.T) {
	d := newDictionary()
	for _, v := range []string{"east", "north", "south"} {
		d.Intern(v)
	}
	// ids: east=1, north=2, south=3
	if got := d.LowerBound("east1"); got != 2 {
		t.Fatalf("LowerBound(east1) = %d, want 2", got)
	}
	if got := d.UpperBound("north"); got != 3 {
		t.Fatalf("UpperBound(north) = %d, want 3", got)
	}
	if got := d.UpperBound("zoo"); got != 4 {
		t.Fatalf("UpperBound(zoo) = %d, want Len()+1 = 4", got)
	}
	if got := d.LowerBound("aaa"); got != 1 {
		t.Fatalf("LowerBound(aaa) = %d, want 1", got)
	}
}

func TestNewDictionaryFromSortedRejectsUnsorted(t *testing.T) {
	if _, err := newDictionaryFromSorted([]string{"b", "a"}); err == nil {
		t.Fatalf("expected error for unsorted preseed")
	}
	if _, err := newDictionaryFromSorted([]string{"a", "a"}); err == nil {
		t.Fatalf("expected error for duplicate preseed entries")
	}
	d, err := newDictionaryFromSorted([]string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if d.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", d.Len())
	}
}
