// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loaden

// Merge combines two documents into a new one, with overlay taking
// precedence. For a key present on both sides whose values are both
// mappings, the mappings are merged recursively. Any other collision,
// including mapping-versus-scalar and sequences, is resolved by taking
// the overlay value wholesale. A nil overlay value still counts as
// present and overrides the base value.
//
// Neither input is mutated. Every level touched by the merge is a newly
// allocated map; values present on only one side are carried over by
// reference.
func Merge(base, overlay Document) Document {
	merged := make(Document, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = v
	}

	for k, v := range overlay {
		bm, baseIsMap := merged[k].(map[string]any)
		om, overlayIsMap := v.(map[string]any)
		if baseIsMap && overlayIsMap {
			merged[k] = map[string]any(Merge(bm, om))
			continue
		}
		merged[k] = v
	}
	return merged
}
