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

import "sort"

// run is one (id, run length) pair; consecutive runs never share an id
// (I5) because runStream.push coalesces them.
type run struct {
	ID     uint32
	Length uint32
}

// runStream is the row-id-ordered sequence of runs backing a column. Row
// ids are the implicit prefix sums of run lengths, starting at 0 (I7).
type runStream struct {
	runs  []run
	ends  []uint32 // ends[i] = exclusive row-id upper bound of runs[i]; cumulative
	total uint32
}

// push appends n rows of id, extending the last run if it already holds
// id, and returns the row id of the first of the n appended rows.
func (rs *runStream) push(id uint32, n uint32) uint32 {
	start := rs.total
	if n == 0 {
		return start
	}
	if last := len(rs.runs) - 1; last >= 0 && rs.runs[last].ID == id {
		rs.runs[last].Length += n
		rs.ends[last] += n
	} else {
		rs.runs = append(rs.runs, run{ID: id, Length: n})
		rs.ends = append(rs.ends, rs.total+n)
	}
	rs.total += n
	return start
}

// reindexFrom increments the id of every run whose id is >= p. Called
// after Dictionary.Intern inserts a new value at position p, shifting
// every id at or after that position up by one (I1, §4.1).
func (rs *runStream) reindexFrom(p uint32) {
	for i := range rs.runs {
		if rs.runs[i].ID >= p {
			rs.runs[i].ID++
		}
	}
}

// findRun returns the index into runs containing rowID, or ok=false if
// rowID is out of range.
func (rs *runStream) findRun(rowID uint32) (idx int, ok bool) {
	if rowID >= rs.total {
		return 0, false
	}
	i := sort.Search(len(rs.ends), func(i int) bool { return rs.ends[i] > rowID })
	return i, true
}
