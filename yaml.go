// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loaden

import (
	"gopkg.in/yaml.v3"
)

// YamlParser parses YAML documents. It is the reference format and the
// fallback for files whose extension has no registered parser.
type YamlParser struct{}

// Parse implements the [Parser] interface.
func (YamlParser) Parse(b []byte) (any, error) {
	var v any
	err := yaml.Unmarshal(b, &v)
	if err != nil {
		return nil, err
	}
	return v, nil
}
