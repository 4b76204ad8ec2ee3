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

// Package rpc translates wire comparison nodes — the shape a remote
// query planner sends over the network — into the column package's
// native Operator/value pairs, and expands a requested row window into
// row ids. It is a pure translation layer: predicate translation never
// touches a Column, and Window.RowIDs reads only a Column's length.
package rpc

import "github.com/sneller-labs/dictcol/column"

// Comparison mirrors the wire encoding of a single comparison node: which
// operator, and the literal string it compares against. Regex and
// starts-with comparisons are intentionally unsupported, matching the
// upstream collaborator this package is modeled on.
type Comparison struct {
	Op    int32
	Value string
}

// Comparison wire codes.
const (
	CompEqual = iota + 1
	CompNotEqual
	CompStartsWith
	CompRegex
	CompNotRegex
	CompLT
	CompLTE
	CompGT
	CompGTE
)

// ToOperator translates a wire Comparison into a column.Operator and its
// comparison value. It fails for comparison kinds the column package has
// no equivalent for (regex, starts-with), and for unrecognized codes.
func ToOperator(c Comparison) (column.Operator, string, error) {
	switch c.Op {
	case CompEqual:
		return column.Equal, c.Value, nil
	case CompNotEqual:
		return column.NotEqual, c.Value, nil
	case CompLT:
		return column.LT, c.Value, nil
	case CompLTE:
		return column.LTE, c.Value, nil
	case CompGT:
		return column.GT, c.Value, nil
	case CompGTE:
		return column.GTE, c.Value, nil
	case CompStartsWith:
		return 0, "", errUnsupported("StartsWith")
	case CompRegex:
		return 0, "", errUnsupported("Regex")
	case CompNotRegex:
		return 0, "", errUnsupported("NotRegex")
	default:
		return 0, "", errUnknownComparison(c.Op)
	}
}
