// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package key provides types for addressing values nested inside
// hierarchical configuration documents.
package key

import (
	"strings"
)

// Keyer is the common interface all key types implement.
type Keyer interface {
	Key() string
}

// Name is a single mapping key.
type Name string

// Key implements the [Keyer] interface.
func (n Name) Key() string {
	return string(n)
}

// Chain is a sequence of keys addressing a nested value, outermost first.
type Chain []Keyer

// Key implements the [Keyer] interface. Segments are joined with dots,
// so Parse(c.Key()) round-trips for chains of plain Names.
func (c Chain) Key() string {
	ss := make([]string, len(c))
	for i := range c {
		ss[i] = c[i].Key()
	}
	return strings.Join(ss, ".")
}

// Parse splits a dot-separated path, e.g. "database.host", into a Chain
// of Names. An empty path yields a single empty Name, mirroring the
// behavior of strings.Split.
func Parse(path string) Chain {
	parts := strings.Split(path, ".")
	c := make(Chain, len(parts))
	for i, p := range parts {
		c[i] = Name(p)
	}
	return c
}
