package mapping

// TransformFunc converts a value read from one side before it is written to the other.
type TransformFunc func(v any) (any, error)

// TransformPair holds both directions of a transform. Both must be set.
type TransformPair struct {
	// ToLeft is applied when writing the left side (RightToLeft).
	ToLeft TransformFunc
	// ToRight is applied when writing the right side (LeftToRight).
	ToRight TransformFunc
}

// For returns the function used when mapping in direction d.
func (p TransformPair) For(d Direction) TransformFunc {
	if d == LeftToRight {
		return p.ToRight
	}

	return p.ToLeft
}

// FormatKind names a text format conversion.
type FormatKind string

const (
	// FormatTimestamp converts timestamp text between the left and right formats.
	FormatTimestamp FormatKind = "timestamp"
)

// IsValid returns true if the kind is a recognized value.
func (k FormatKind) IsValid() bool {
	return k == FormatTimestamp
}

// FormatSpec describes a format conversion applied to text values.
type FormatSpec struct {
	Kind FormatKind
	// LeftHint is the format of text on the left side.
	LeftHint string
	// RightHint is the format of text on the right side.
	RightHint string
}

// Hints returns the (from, to) format pair for direction d.
func (f FormatSpec) Hints(d Direction) (from, to string) {
	if d == LeftToRight {
		return f.LeftHint, f.RightHint
	}

	return f.RightHint, f.LeftHint
}

// RuleSpec is an uncompiled rule.
type RuleSpec struct {
	// Left is the left path; nil when the rule has no left side.
	// An empty string addresses the root.
	Left *string
	// Right is the right path; nil when the rule has no right side.
	Right *string
	// Literal is written instead of a source value when HasLiteral is set.
	Literal    any
	HasLiteral bool
	// Transform is optional.
	Transform *TransformPair
	// Format is optional.
	Format *FormatSpec
}

// Ref returns a pointer to path, for filling RuleSpec.Left and RuleSpec.Right.
func Ref(path string) *string {
	return &path
}

// WithLiteral returns a copy of s carrying v as its literal.
func (s RuleSpec) WithLiteral(v any) RuleSpec {
	s.Literal = v
	s.HasLiteral = true

	return s
}
