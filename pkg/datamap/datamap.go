// Package datamap implements the tree-of-mappings operations behind the data
// cascade: deep merge, set-at-path with merge, lookup and deep copy.
//
// Mappings merge key by key. Every other value, arrays included, is atomic
// and replaced wholesale by the higher-precedence side. Values copied into a
// destination are deep copies, so a merge result never aliases its sources.
package datamap

import (
	"fmt"

	"github.com/arthur-debert/cascade/pkg/types"
)

// Merge deep-merges each src into dst in order, later sources winning, and
// returns dst. A nil dst is replaced by a fresh mapping.
func Merge(dst types.DataMap, srcs ...types.DataMap) types.DataMap {
	if dst == nil {
		dst = types.DataMap{}
	}
	for _, src := range srcs {
		mergeMaps(dst, src)
	}
	return dst
}

func mergeMaps(dest, src map[string]interface{}) {
	for key, srcVal := range src {
		if srcMap, ok := toMap(srcVal); ok {
			if destMap, ok := dest[key].(map[string]interface{}); ok {
				mergeMaps(destMap, srcMap)
				continue
			}
		}

		// Otherwise, overwrite
		dest[key] = Copy(srcVal)
	}
}

// SetPath places value at the nested location named by keys. Missing or
// non-mapping intermediates become mappings. When both the existing value and
// value are mappings they are merged; otherwise value replaces what is there.
func SetPath(m types.DataMap, keys []string, value interface{}) {
	if len(keys) == 0 {
		if vm, ok := toMap(value); ok {
			mergeMaps(m, vm)
		}
		return
	}

	curr := m
	for _, key := range keys[:len(keys)-1] {
		next, ok := curr[key].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			curr[key] = next
		}
		curr = next
	}

	last := keys[len(keys)-1]
	if existing, ok := curr[last].(map[string]interface{}); ok {
		if vm, ok := toMap(value); ok {
			mergeMaps(existing, vm)
			return
		}
	}
	curr[last] = Copy(value)
}

// Get returns the value at the nested location named by keys
func Get(m types.DataMap, keys []string) (interface{}, bool) {
	var curr interface{} = m
	for _, key := range keys {
		cm, ok := toMap(curr)
		if !ok {
			return nil, false
		}
		curr, ok = cm[key]
		if !ok {
			return nil, false
		}
	}
	return curr, true
}

// Copy returns a deep copy of v. Mappings with non-string keys, as produced
// by some YAML documents, are normalized to string keys.
func Copy(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = Copy(item)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = Copy(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = Copy(item)
		}
		return out
	default:
		return v
	}
}

// CopyMap is Copy for mappings
func CopyMap(m types.DataMap) types.DataMap {
	if m == nil {
		return types.DataMap{}
	}
	return Copy(m).(map[string]interface{})
}

// toMap reports whether v is a mapping, normalizing non-string keys
func toMap(v interface{}) (map[string]interface{}, bool) {
	switch val := v.(type) {
	case map[string]interface{}:
		return val, true
	case map[interface{}]interface{}:
		return Copy(val).(map[string]interface{}), true
	default:
		return nil, false
	}
}
