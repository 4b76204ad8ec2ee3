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

/*
Package column implements a dictionary-encoded, run-length-coded string
column for an append-only analytical segment.

Overview

A Column stores one string-typed column of a segment: a sorted Dictionary
mapping distinct non-null values to small integer ids, a run-length-coded
RunStream recording the logical row sequence as (id, run length) pairs, and
a per-id InvertedIndex mapping each id (including the reserved NULL id 0)
to a compressed bitmap of the row ids at which it occurs.

Rows are appended only, through PushValue, PushAdditional, and PushNull.
Every other method is read-only and assumes no concurrent mutation; a
Column does no internal locking, matching the single-threaded,
build-then-publish usage pattern of the rest of this codebase.

The sorted dictionary lets comparison predicates (<, <=, >, >=) be resolved
against an integer id range instead of a string comparison per row; the
inverted index turns that range into a handful of bitmap unions. Equality
and inequality predicates resolve directly against a single id's bitmap or
the union of all other ids.

Only one row layout (RLE) exists today. Column.Kind records that fact so a
future encoding could be added behind a type switch without changing the
public API; see column.go.
*/
package column
