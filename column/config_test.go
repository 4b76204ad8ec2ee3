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

import "testing"

func TestLoadPreseedYAML(t *testing.T) {
	data := []byte("values:\n  - east\n  - north\n  - south\n")
	c, err := LoadPreseed(data)
	if err != nil {
		t.Fatalf("LoadPreseed: %s", err)
	}
	if c.DictionaryCardinality() != 3 {
		t.Fatalf("DictionaryCardinality() = %d, want 3", c.DictionaryCardinality())
	}
	if c.Len() != 0 {
		t.Fatalf("a preseeded column should start with no rows")
	}
}

func TestLoadPreseedRejectsUnsorted(t *testing.T) {
	data := []byte(`{"values": ["north", "east"]}`)
	if _, err := LoadPreseed(data); err == nil {
		t.Fatalf("expected an error for an unsorted preseed list")
	}
}
