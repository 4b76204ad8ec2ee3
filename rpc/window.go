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
	"fmt"

	"github.com/sneller-labs/dictcol/column"
)

// Window names a contiguous row-id span requested by a remote reader —
// the wire analog of an extract_values(start_row, num_rows) call. Count
// of 0 is a valid, empty window.
type Window struct {
	Start uint32
	Count uint32
}

// RowIDs validates w against col's current length and expands it into
// the explicit row-id slice the column package's accessors expect. It
// fails with column.ErrOutOfRange rather than silently clamping, since a
// remote caller's window is only ever valid relative to the row count it
// observed when it issued the request.
func (w Window) RowIDs(col *column.Column) ([]uint32, error) {
	n := col.Len()
	if w.Count == 0 {
		if w.Start > n {
			return nil, fmt.Errorf("%w: start %d exceeds column length %d", column.ErrOutOfRange, w.Start, n)
		}
		return nil, nil
	}
	end := w.Start + w.Count
	if end > n || end < w.Start {
		return nil, fmt.Errorf("%w: window [%d,%d) exceeds column length %d", column.ErrOutOfRange, w.Start, end, n)
	}
	ids := make([]uint32, w.Count)
	for i := range ids {
		ids[i] = w.Start + uint32(i)
	}
	return ids, nil
}
