package fieldpath

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Segment is one step of a Path. It is immutable once built.
type Segment struct {
	kind    Kind
	name    string
	index   int
	names   []string
	indexes []int
	raw     string
}

// Field returns an object field segment.
func Field(name string) Segment {
	return Segment{kind: KindField, name: name, raw: escapeName(name)}
}

// Index returns an array index segment. Negative values count from the end.
func Index(i int) Segment {
	return Segment{kind: KindIndex, index: i, raw: "[" + strconv.Itoa(i) + "]"}
}

// Fields returns a keyed projection over the given field names.
func Fields(names ...string) Segment {
	s := Segment{kind: KindFields, names: slices.Clone(names)}
	s.raw = s.canonical()

	return s
}

// Each returns a positional projection over every array element.
func Each() Segment {
	return Segment{kind: KindEach, raw: "[]"}
}

// Indexes returns a positional projection over the listed array indexes.
func Indexes(idx ...int) Segment {
	s := Segment{kind: KindIndexes, indexes: slices.Clone(idx)}
	s.raw = s.canonical()

	return s
}

// Kind returns the segment variant.
func (s Segment) Kind() Kind { return s.kind }

// Name returns the field name of a KindField segment.
func (s Segment) Name() string { return s.name }

// Index returns the index of a KindIndex segment.
func (s Segment) Index() int { return s.index }

// Names returns a copy of the field names of a KindFields segment.
func (s Segment) Names() []string { return slices.Clone(s.names) }

// Indexes returns a copy of the indexes of a KindIndexes segment.
func (s Segment) Indexes() []int { return slices.Clone(s.indexes) }

// Raw returns the source text the segment was parsed from.
func (s Segment) Raw() string { return s.raw }

// String returns the canonical text of the segment.
func (s Segment) String() string { return s.canonical() }

func (s Segment) canonical() string {
	switch s.kind {
	case KindField:
		return escapeName(s.name)
	case KindIndex:
		return "[" + strconv.Itoa(s.index) + "]"
	case KindFields:
		escaped := make([]string, len(s.names))
		for i, n := range s.names {
			escaped[i] = escapeName(n)
		}

		return "{" + strings.Join(escaped, ",") + "}"
	case KindEach:
		return "[]"
	case KindIndexes:
		parts := make([]string, len(s.indexes))
		for i, n := range s.indexes {
			parts[i] = strconv.Itoa(n)
		}

		return "[[" + strings.Join(parts, ",") + "]]"
	default:
		return "<invalid>"
	}
}

// bracketed reports whether the segment renders without a leading ".".
func (s Segment) bracketed() bool {
	return s.kind == KindIndex || s.kind == KindEach || s.kind == KindIndexes
}

// extract applies this segment to v. A value of the wrong container kind,
// a missing key or an index past the end yields Absent.
func (s Segment) extract(v any) (Result, error) {
	switch s.kind {
	case KindField:
		obj, ok := v.(map[string]any)
		if !ok {
			return Scalar{Value: Absent}, nil
		}

		return Scalar{Value: lookup(obj, s.name)}, nil

	case KindIndex:
		arr, ok := v.([]any)
		if !ok {
			return Scalar{Value: Absent}, nil
		}

		pos, err := resolveIndex(s.index, len(arr))
		if err != nil {
			return nil, err
		}

		if pos >= len(arr) {
			return Scalar{Value: Absent}, nil
		}

		return Scalar{Value: arr[pos]}, nil

	case KindFields:
		obj, ok := v.(map[string]any)
		if !ok {
			return Scalar{Value: Absent}, nil
		}

		values := make([]any, len(s.names))
		for i, n := range s.names {
			values[i] = lookup(obj, n)
		}

		return Sequence{Keys: slices.Clone(s.names), Values: values}, nil

	case KindEach:
		arr, ok := v.([]any)
		if !ok {
			return Scalar{Value: Absent}, nil
		}

		return Sequence{Values: slices.Clone(arr)}, nil

	case KindIndexes:
		arr, ok := v.([]any)
		if !ok {
			return Scalar{Value: Absent}, nil
		}

		values := absentParts(len(s.indexes))

		for i, idx := range s.indexes {
			pos, err := resolveIndex(idx, len(arr))
			if err != nil {
				return nil, err
			}

			if pos < len(arr) {
				values[i] = arr[pos]
			}
		}

		return Sequence{Values: values}, nil

	default:
		return nil, fmt.Errorf("invalid segment kind %s", s.kind)
	}
}

// inject writes r into a copy of dest at this segment's position.
// A dest of the wrong container kind is replaced by a fresh container.
// Scalar segments take a Scalar; iterating segments take a Sequence whose
// values line up with the segment's keys or positions.
// Writing Absent removes a key; in an array it nulls an existing slot and
// never grows the array.
func (s Segment) inject(dest any, r Result) (any, error) {
	switch s.kind {
	case KindField:
		obj := copyObject(dest)
		putField(obj, s.name, scalarValue(r))

		return obj, nil

	case KindIndex:
		arr := copyArray(dest)

		pos, err := resolveIndex(s.index, len(arr))
		if err != nil {
			return nil, err
		}

		v := scalarValue(r)
		if IsAbsent(v) {
			if pos < len(arr) {
				arr[pos] = nil
			}

			return arr, nil
		}

		if arr, err = grow(arr, pos+1); err != nil {
			return nil, err
		}

		arr[pos] = v

		return arr, nil

	case KindFields:
		seq, err := s.sequence(r, len(s.names))
		if err != nil {
			return nil, err
		}

		obj := copyObject(dest)
		for i, n := range s.names {
			putField(obj, n, seq.Values[i])
		}

		return obj, nil

	case KindEach:
		seq, err := s.sequence(r, -1)
		if err != nil {
			return nil, err
		}

		arr, err := grow(copyArray(dest), len(seq.Values))
		if err != nil {
			return nil, err
		}

		for i, v := range seq.Values {
			if IsAbsent(v) {
				v = nil
			}

			arr[i] = v
		}

		return arr, nil

	case KindIndexes:
		seq, err := s.sequence(r, len(s.indexes))
		if err != nil {
			return nil, err
		}

		arr := copyArray(dest)
		size := len(arr)

		for i, idx := range s.indexes {
			pos, err := resolveIndex(idx, size)
			if err != nil {
				return nil, err
			}

			if IsAbsent(seq.Values[i]) {
				if pos < len(arr) {
					arr[pos] = nil
				}

				continue
			}

			if arr, err = grow(arr, pos+1); err != nil {
				return nil, err
			}

			arr[pos] = seq.Values[i]
		}

		return arr, nil

	default:
		return nil, fmt.Errorf("invalid segment kind %s", s.kind)
	}
}

// spread splits a value written through an iterating segment into one part
// per slot. Absent or null values and missing keys yield Absent parts; for
// KindEach an empty value spreads over the size existing elements.
func (s Segment) spread(value any, size int) ([]any, error) {
	empty := value == nil || IsAbsent(value)

	switch s.kind {
	case KindFields:
		parts := absentParts(len(s.names))
		if empty {
			return parts, nil
		}

		obj, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s expects an object, got %T", ErrShapeMismatch, s.canonical(), value)
		}

		for i, n := range s.names {
			parts[i] = lookup(obj, n)
		}

		return parts, nil

	case KindEach, KindIndexes:
		if empty {
			if s.kind == KindEach {
				return absentParts(size), nil
			}

			return absentParts(len(s.indexes)), nil
		}

		arr, ok := value.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s expects an array, got %T", ErrShapeMismatch, s.canonical(), value)
		}

		if s.kind == KindEach {
			return slices.Clone(arr), nil
		}

		parts := absentParts(len(s.indexes))
		copy(parts, arr)

		return parts, nil

	default:
		return nil, fmt.Errorf("segment %s does not iterate", s.canonical())
	}
}

func (s Segment) sequence(r Result, size int) (Sequence, error) {
	seq, ok := r.(Sequence)
	if !ok {
		return Sequence{}, fmt.Errorf("segment %s expects a sequence, got %T", s.canonical(), r)
	}

	if size >= 0 && len(seq.Values) != size {
		return Sequence{}, fmt.Errorf("segment %s expects %d values, got %d", s.canonical(), size, len(seq.Values))
	}

	return seq, nil
}

// resolveIndex maps a signed index onto an array of length n.
// The result may be >= n; callers decide whether that means absent or growth.
func resolveIndex(i, n int) (int, error) {
	if i >= 0 {
		return i, nil
	}

	pos := n + i
	if pos < 0 {
		return 0, fmt.Errorf("%w: index %d on array of length %d", ErrOutOfBounds, i, n)
	}

	return pos, nil
}

func scalarValue(r Result) any {
	if sc, ok := r.(Scalar); ok {
		return sc.Value
	}

	return Absent
}

func lookup(obj map[string]any, key string) any {
	if v, ok := obj[key]; ok {
		return v
	}

	return Absent
}

func absentParts(n int) []any {
	parts := make([]any, n)
	for i := range parts {
		parts[i] = Absent
	}

	return parts
}

// putField stores v under key; Absent removes the key.
func putField(obj map[string]any, key string, v any) {
	if IsAbsent(v) {
		delete(obj, key)
		return
	}

	obj[key] = v
}

func copyObject(v any) map[string]any {
	if obj, ok := v.(map[string]any); ok && obj != nil {
		return maps.Clone(obj)
	}

	return map[string]any{}
}

func copyArray(v any) []any {
	if arr, ok := v.([]any); ok {
		return slices.Clone(arr)
	}

	return []any{}
}

// grow extends arr with null slots up to length n. Lengths past
// MaxIndex+1 fail with ErrOutOfBounds.
func grow(arr []any, n int) ([]any, error) {
	if n < 0 || n > MaxIndex+1 {
		return nil, fmt.Errorf("%w: index exceeds %d", ErrOutOfBounds, MaxIndex)
	}

	if n <= len(arr) {
		return arr, nil
	}

	return append(arr, make([]any, n-len(arr))...), nil
}

const escapable = `.[]{},\`

func escapeName(name string) string {
	if !strings.ContainsAny(name, escapable) {
		return name
	}

	var sb strings.Builder

	for _, r := range name {
		if strings.ContainsRune(escapable, r) {
			sb.WriteByte('\\')
		}

		sb.WriteRune(r)
	}

	return sb.String()
}
