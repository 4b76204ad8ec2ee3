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
	"fmt"

	"sigs.k8s.io/yaml"
)

// Preseed is the on-disk description of a column's initial dictionary,
// loaded ahead of ingest so bulk loaders can call PushAdditional without
// triggering re-index churn (§9 "Re-index cost"). Values must already be
// listed in ascending order.
type Preseed struct {
	Values []string `json:"values"`
}

// LoadPreseed decodes a Preseed from YAML (JSON is accepted too, since
// it is a subset of YAML) and builds the column whose dictionary it
// describes.
func LoadPreseed(data []byte) (*Column, error) {
	var p Preseed
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("column: decoding preseed: %w", err)
	}
	return NewWithDictionary(p.Values)
}
