// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loaden

import (
	"github.com/pelletier/go-toml/v2"
)

// TomlParser parses TOML documents. The top level of a TOML document is
// always a table, so [InvalidShapeError] can not occur for TOML files.
type TomlParser struct{}

// Parse implements the [Parser] interface.
func (TomlParser) Parse(b []byte) (any, error) {
	var m map[string]any
	err := toml.Unmarshal(b, &m)
	if err != nil {
		return nil, err
	}
	if len(m) == 0 {
		return nil, nil
	}
	return m, nil
}
