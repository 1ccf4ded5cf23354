package fieldpath

import (
	"maps"
	"slices"
)

type absent struct{}

func (absent) String() string { return "<absent>" }

// Absent marks a value that is not there at all, as opposed to a JSON null,
// which is represented by nil. Get returns it for missing keys and indexes;
// Set treats it as an instruction to clear the target.
var Absent any = absent{}

// IsAbsent reports whether v is the Absent marker.
func IsAbsent(v any) bool {
	_, ok := v.(absent)
	return ok
}

// Strip replaces Absent nested in arrays with null and removes it from
// objects. Containers are copied only when something changes; a top-level
// Absent is returned as is.
func Strip(v any) any {
	out, _ := stripped(v)
	return out
}

func stripped(v any) (any, bool) {
	switch v := v.(type) {
	case []any:
		var out []any

		for i, e := range v {
			s, changed := stripped(e)
			if IsAbsent(e) {
				s, changed = nil, true
			}

			if !changed {
				continue
			}

			if out == nil {
				out = slices.Clone(v)
			}

			out[i] = s
		}

		if out == nil {
			return v, false
		}

		return out, true

	case map[string]any:
		var out map[string]any

		for k, e := range v {
			s, changed := stripped(e)
			if !changed && !IsAbsent(e) {
				continue
			}

			if out == nil {
				out = maps.Clone(v)
			}

			if IsAbsent(e) {
				delete(out, k)
			} else {
				out[k] = s
			}
		}

		if out == nil {
			return v, false
		}

		return out, true
	}

	return v, false
}
