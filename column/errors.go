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

import "errors"

// ErrOrderViolation is returned by PushValue when the pushed value sorts
// strictly before the most recently appended non-null value. The column
// is left unchanged: the failing call never mutates any state.
var ErrOrderViolation = errors.New("column: value out of order")

// ErrOutOfRange is returned by callers (see package rpc) that need a hard
// error for a row id outside [0, total rows) rather than the silent
// None/drop behavior the core read-only accessors use.
var ErrOutOfRange = errors.New("column: row id out of range")
