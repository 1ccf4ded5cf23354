package common

import "maps"

// DeepCopy returns an independent copy of a JSON-compatible value.
// Maps and slices are copied recursively; scalars are returned as is.
// Values of other types are shared, not copied.
func DeepCopy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = DeepCopy(item)
		}

		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = DeepCopy(item)
		}

		return out
	case map[string]string:
		return maps.Clone(val)
	case []string:
		return append([]string(nil), val...)
	default:
		return v
	}
}
