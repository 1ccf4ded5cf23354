package mapping

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"shape-mapper/internal/match"
)

// ErrTransformInput is returned by built-in transforms given a value of the wrong type.
var ErrTransformInput = errors.New("unexpected transform input")

// TransformRegistry holds named transform pairs and provides lookup.
type TransformRegistry struct {
	transforms map[string]TransformPair
}

// NewTransformRegistry creates a new empty transform registry.
func NewTransformRegistry() *TransformRegistry {
	return &TransformRegistry{
		transforms: make(map[string]TransformPair),
	}
}

// DefaultRegistry returns a registry holding the built-in transforms:
// identity, numberToString, stringToNumber, boolToString and stringToBool.
func DefaultRegistry() *TransformRegistry {
	r := NewTransformRegistry()

	identity := func(v any) (any, error) { return v, nil }

	// registration of known-good pairs cannot fail
	_ = r.Add("identity", TransformPair{ToLeft: identity, ToRight: identity})
	_ = r.Add("numberToString", TransformPair{ToLeft: parseNumber, ToRight: formatNumber})
	_ = r.Add("stringToNumber", TransformPair{ToLeft: formatNumber, ToRight: parseNumber})
	_ = r.Add("boolToString", TransformPair{ToLeft: parseBool, ToRight: formatBool})
	_ = r.Add("stringToBool", TransformPair{ToLeft: formatBool, ToRight: parseBool})

	return r
}

// Add registers a transform pair under name. Both directions must be set.
func (r *TransformRegistry) Add(name string, pair TransformPair) error {
	if name == "" {
		return errors.New("transform name is empty")
	}

	if pair.ToLeft == nil || pair.ToRight == nil {
		return fmt.Errorf("transform %q: %w", name, ErrPartialTransform)
	}

	r.transforms[name] = pair

	return nil
}

// Get returns the transform pair registered under name.
func (r *TransformRegistry) Get(name string) (TransformPair, bool) {
	pair, ok := r.transforms[name]
	return pair, ok
}

// Has returns true if a transform with the given name exists.
func (r *TransformRegistry) Has(name string) bool {
	_, exists := r.transforms[name]
	return exists
}

// Names returns all transform names, sorted.
func (r *TransformRegistry) Names() []string {
	return slices.Sorted(maps.Keys(r.transforms))
}

// Suggest returns registered names resembling name, best first.
func (r *TransformRegistry) Suggest(name string) []string {
	return match.Suggest(name, r.Names(), 3)
}

// absent values pass through every built-in unchanged

func formatNumber(v any) (any, error) {
	switch n := v.(type) {
	case nil:
		return nil, nil
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(n), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case uint64:
		return strconv.FormatUint(n, 10), nil
	default:
		return nil, fmt.Errorf("%w: expected number, got %T", ErrTransformInput, v)
	}
}

func parseNumber(v any) (any, error) {
	switch s := v.(type) {
	case nil:
		return nil, nil
	case string:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrTransformInput, s)
		}

		return f, nil
	default:
		return nil, fmt.Errorf("%w: expected string, got %T", ErrTransformInput, v)
	}
}

func formatBool(v any) (any, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return strconv.FormatBool(b), nil
	default:
		return nil, fmt.Errorf("%w: expected bool, got %T", ErrTransformInput, v)
	}
}

func parseBool(v any) (any, error) {
	switch s := v.(type) {
	case nil:
		return nil, nil
	case string:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a bool", ErrTransformInput, s)
		}

		return b, nil
	default:
		return nil, fmt.Errorf("%w: expected string, got %T", ErrTransformInput, v)
	}
}
