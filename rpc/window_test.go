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

package rpc

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sneller-labs/dictcol/column"
)

func sampleColumn(t *testing.T) *column.Column {
	t.Helper()
	c, err := column.NewFromValues([]string{"a", "b", "c", "d", "e"})
	if err != nil {
		t.Fatalf("NewFromValues: %s", err)
	}
	return c
}

func TestWindowRowIDs(t *testing.T) {
	c := sampleColumn(t)
	w := Window{Start: 1, Count: 3}
	ids, err := w.RowIDs(c)
	if err != nil {
		t.Fatalf("RowIDs: %s", err)
	}
	if want := []uint32{1, 2, 3}; !reflect.DeepEqual(ids, want) {
		t.Fatalf("RowIDs = %v, want %v", ids, want)
	}
}

func TestWindowRowIDsEmpty(t *testing.T) {
	c := sampleColumn(t)
	w := Window{Start: 5, Count: 0}
	ids, err := w.RowIDs(c)
	if err != nil {
		t.Fatalf("RowIDs: %s", err)
	}
	if len(ids) != 0 {
		t.Fatalf("RowIDs = %v, want empty", ids)
	}
}

func TestWindowRowIDsOutOfRange(t *testing.T) {
	c := sampleColumn(t)
	w := Window{Start: 3, Count: 10}
	if _, err := w.RowIDs(c); !errors.Is(err, column.ErrOutOfRange) {
		t.Fatalf("RowIDs error = %v, want ErrOutOfRange", err)
	}
}
