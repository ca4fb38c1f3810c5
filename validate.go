// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loaden

import (
	"fmt"
	"strings"
)

// MissingKeysError occurs when one or more required key paths are absent
// from the fully merged document.
type MissingKeysError struct {
	Path string

	// Keys holds every missing dot-separated key path, in the order the
	// paths were declared via [Required].
	Keys []string
}

// Error implements the error interface.
func (e MissingKeysError) Error() string {
	return fmt.Sprintf("missing required keys in %s: %s", e.Path, strings.Join(e.Keys, ", "))
}

// validateRequired checks every required key path against doc and
// collects all misses rather than stopping at the first. A path misses
// if any segment resolves to a non-mapping value or to an absent key.
func validateRequired(doc Document, required []string, path string) error {
	var missing []string
	for _, keyPath := range required {
		_, ok := doc.Get(keyPath)
		if !ok {
			missing = append(missing, keyPath)
		}
	}

	if len(missing) > 0 {
		return MissingKeysError{Path: path, Keys: missing}
	}
	return nil
}
