// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loaden

import (
	"bytes"
	"encoding/json"
)

// JsonParser parses JSON documents.
type JsonParser struct{}

// Parse implements the [Parser] interface.
func (JsonParser) Parse(b []byte) (any, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, nil
	}

	var v any
	err := json.Unmarshal(b, &v)
	if err != nil {
		return nil, err
	}
	return v, nil
}
