// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loaden

import (
	"fmt"

	"github.com/z5labs/loaden/key"

	"github.com/go-viper/mapstructure/v2"
)

// Document is a parsed configuration tree. Values are strings, numbers,
// booleans, nil, nested map[string]any mappings or []any sequences.
type Document map[string]any

// Get returns the value at the given dot-separated key path, e.g.
// "database.host". The second return value reports whether every segment
// of the path resolved to a mapping containing the next segment.
func (d Document) Get(path string) (any, bool) {
	var current any = map[string]any(d)
	for _, k := range key.Parse(path) {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[k.Key()]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// UnmarshalError occurs when a [Document] can not be decoded into
// the value given to [Document.Unmarshal].
type UnmarshalError struct {
	Cause error
}

// Error implements the error interface.
func (e UnmarshalError) Error() string {
	return fmt.Sprintf("failed to unmarshal config: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e UnmarshalError) Unwrap() error {
	return e.Cause
}

// Unmarshal decodes the document into v. Struct fields are matched via
// the "config" tag. Strings are decoded into [time.Duration] fields
// using [time.ParseDuration].
func (d Document) Unmarshal(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "config",
		Result:     v,
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}

	err = dec.Decode(map[string]any(d))
	if err != nil {
		return UnmarshalError{Cause: err}
	}
	return nil
}
