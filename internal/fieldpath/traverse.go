package fieldpath

// Result is what a single segment yields: a Scalar or a Sequence.
type Result interface {
	isResult()
}

// Scalar is a single value, Absent when nothing is there.
type Scalar struct {
	Value any
}

// Sequence is produced by projection segments. The remaining segments are
// applied to each value independently.
type Sequence struct {
	// Keys names each value for keyed projections; nil for positional ones.
	Keys   []string
	Values []any
}

func (Scalar) isResult()   {}
func (Sequence) isResult() {}

// rejoin reassembles per-element results into an object (keyed) or an array.
// Keyed results drop Absent values; positional results keep their slots.
func (s Sequence) rejoin(values []any) any {
	if s.Keys == nil {
		return values
	}

	obj := make(map[string]any, len(values))
	for i, k := range s.Keys {
		if !IsAbsent(values[i]) {
			obj[k] = values[i]
		}
	}

	return obj
}

// Get reads the value at p inside v. Missing keys and containers yield
// Absent, not an error; a JSON null stays nil.
func Get(v any, p Path) (any, error) {
	return get(v, p.segments, 0)
}

func get(v any, segs []Segment, i int) (any, error) {
	for ; i < len(segs); i++ {
		r, err := segs[i].extract(v)
		if err != nil {
			return nil, annotate(segs, i, err)
		}

		switch r := r.(type) {
		case Scalar:
			v = r.Value
		case Sequence:
			out := make([]any, len(r.Values))

			for j, item := range r.Values {
				got, err := get(item, segs, i+1)
				if err != nil {
					return nil, err
				}

				out[j] = got
			}

			return r.rejoin(out), nil
		}
	}

	return v, nil
}

// Set returns a copy of dest with value written at p. Containers along the
// path are synthesized when absent or of the wrong kind; dest itself is
// never modified. Writing Absent clears the target: the key is removed or
// the array slot nulled, and nothing is synthesized for a target that is
// already missing.
func Set(dest any, p Path, value any) (any, error) {
	return set(dest, p.segments, 0, value)
}

func set(dest any, segs []Segment, i int, value any) (any, error) {
	if i == len(segs) {
		return Strip(value), nil
	}

	seg := segs[i]

	current, err := seg.extract(dest)
	if err != nil {
		return nil, annotate(segs, i, err)
	}

	if sc, ok := current.(Scalar); ok && IsAbsent(value) && IsAbsent(sc.Value) {
		return dest, nil
	}

	var next Result

	if seg.kind.Iterating() {
		size := 0
		if seq, ok := current.(Sequence); ok {
			size = len(seq.Values)
		}

		parts, err := seg.spread(value, size)
		if err != nil {
			return nil, annotate(segs, i, err)
		}

		values := make([]any, len(parts))

		for j, part := range parts {
			sub, err := set(childAt(current, j), segs, i+1, part)
			if err != nil {
				return nil, err
			}

			values[j] = sub
		}

		next = Sequence{Keys: seg.names, Values: values}
	} else {
		child := Absent
		if sc, ok := current.(Scalar); ok {
			child = sc.Value
		}

		sub, err := set(child, segs, i+1, value)
		if err != nil {
			return nil, err
		}

		next = Scalar{Value: sub}
	}

	out, err := seg.inject(dest, next)
	if err != nil {
		return nil, annotate(segs, i, err)
	}

	return out, nil
}

func childAt(r Result, j int) any {
	seq, ok := r.(Sequence)
	if !ok || j >= len(seq.Values) {
		return Absent
	}

	return seq.Values[j]
}
