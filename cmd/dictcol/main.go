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

package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sneller-labs/dictcol/column"
)

var (
	dashv       bool
	dashh       bool
	dashpreseed string
)

func init() {
	flag.BoolVar(&dashv, "v", false, "verbose")
	flag.BoolVar(&dashh, "h", false, "show usage help")
	flag.StringVar(&dashpreseed, "preseed", "", "YAML/JSON preseed file for the dictionary (optional)")
}

func exitf(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, f, args...)
	os.Exit(1)
}

func logf(f string, args ...interface{}) {
	if dashv {
		fmt.Fprintf(os.Stderr, f, args...)
	}
}

// load builds a column either from -preseed plus stdin rows, or purely
// from stdin when -preseed is absent.
func load(valuesPath string) *column.Column {
	var col *column.Column
	if valuesPath != "" {
		data, err := os.ReadFile(valuesPath)
		if err != nil {
			exitf("reading preseed: %s\n", err)
		}
		col, err = column.LoadPreseed(data)
		if err != nil {
			exitf("decoding preseed: %s\n", err)
		}
	} else {
		col = column.New()
	}

	sc := bufio.NewScanner(os.Stdin)
	n := 0
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			col.PushNull()
		} else if err := col.PushValue(line); err != nil {
			exitf("line %d: %s\n", n+1, err)
		}
		n++
	}
	if err := sc.Err(); err != nil {
		exitf("reading stdin: %s\n", err)
	}
	logf("loaded %d rows\n", col.Len())
	return col
}

// filter entry point for 'dictcol filter <op> <value>'
func filter(col *column.Column, opName, value string) {
	op, err := parseOperator(opName)
	if err != nil {
		exitf("%s\n", err)
	}
	dst := column.NewVectorRowIDs(16)
	dst = col.RowIDsFilter(value, op, dst)
	emitRowIDs(dst.ToSlice())
}

func parseOperator(s string) (column.Operator, error) {
	switch s {
	case "eq":
		return column.Equal, nil
	case "ne":
		return column.NotEqual, nil
	case "lt":
		return column.LT, nil
	case "lte":
		return column.LTE, nil
	case "gt":
		return column.GT, nil
	case "gte":
		return column.GTE, nil
	default:
		return 0, fmt.Errorf("unknown operator %q (want one of eq,ne,lt,lte,gt,gte)", s)
	}
}

func emitRowIDs(ids []uint32) {
	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(ids); err != nil {
		exitf("%s\n", err)
	}
}

// describe entry point for 'dictcol describe'
func describe(col *column.Column) {
	fp := col.Fingerprint()
	enc := json.NewEncoder(os.Stdout)
	enc.Encode(map[string]interface{}{
		"rows":             col.Len(),
		"distinctValues":   col.DictionaryCardinality(),
		"hasNull":          col.HasNull(),
		"size":             col.Size(),
		"compressedSize":   col.CompressedSize(),
		"dictionaryDigest": fmt.Sprintf("%x", fp),
	})
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 || dashh {
		fmt.Fprintf(os.Stderr, "usage:\n")
		fmt.Fprintf(os.Stderr, "    %s [-preseed <file>] describe\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "        load rows from stdin (one value per line, empty line = null) and report stats\n")
		fmt.Fprintf(os.Stderr, "    %s [-preseed <file>] filter <op> <value>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "        load rows from stdin, print matching row ids as a JSON array\n")
		fmt.Fprintf(os.Stderr, "flag usage:\n")
		flag.Usage()
		os.Exit(1)
	}

	switch args[0] {
	case "describe":
		if len(args) != 1 {
			exitf("usage: describe\n")
		}
		describe(load(dashpreseed))
	case "filter":
		if len(args) != 3 {
			exitf("usage: filter <op> <value>\n")
		}
		filter(load(dashpreseed), args[1], args[2])
	default:
		exitf("commands: describe, filter\n")
	}
}
