package mapping

import (
	"shape-mapper/internal/common"
	"shape-mapper/internal/fieldpath"
)

// Rule is a compiled, read-only RuleSpec.
type Rule struct {
	index      int
	left       *fieldpath.Path
	right      *fieldpath.Path
	literal    any
	hasLiteral bool
	transform  *TransformPair
	format     *FormatSpec
}

// Index returns the position of the rule in its batch.
func (r *Rule) Index() int { return r.index }

// Left returns the left path, if any.
func (r *Rule) Left() (fieldpath.Path, bool) { return optional(r.left) }

// Right returns the right path, if any.
func (r *Rule) Right() (fieldpath.Path, bool) { return optional(r.right) }

// Literal returns an independent copy of the literal value.
// Mutating the result never affects the rule.
func (r *Rule) Literal() (any, bool) {
	if !r.hasLiteral {
		return nil, false
	}

	return common.DeepCopy(r.literal), true
}

// HasLiteral reports whether the rule carries a literal.
func (r *Rule) HasLiteral() bool { return r.hasLiteral }

// Transform returns the transform pair, if any.
func (r *Rule) Transform() (TransformPair, bool) {
	if r.transform == nil {
		return TransformPair{}, false
	}

	return *r.transform, true
}

// Format returns the format descriptor, if any.
func (r *Rule) Format() (FormatSpec, bool) {
	if r.format == nil {
		return FormatSpec{}, false
	}

	return *r.format, true
}

// TargetPath returns the path written in direction d.
func (r *Rule) TargetPath(d Direction) (fieldpath.Path, bool) {
	if d == LeftToRight {
		return r.Right()
	}

	return r.Left()
}

// SourcePath returns the path read in direction d.
func (r *Rule) SourcePath(d Direction) (fieldpath.Path, bool) {
	return r.TargetPath(d.Reverse())
}

// TransformFor returns the transform function for direction d, or nil.
func (r *Rule) TransformFor(d Direction) TransformFunc {
	if r.transform == nil {
		return nil
	}

	return r.transform.For(d)
}

// FormatHints returns the (from, to) format pair for direction d.
func (r *Rule) FormatHints(d Direction) (kind FormatKind, from, to string, ok bool) {
	if r.format == nil {
		return "", "", "", false
	}

	from, to = r.format.Hints(d)

	return r.format.Kind, from, to, true
}

func optional(p *fieldpath.Path) (fieldpath.Path, bool) {
	if p == nil {
		return fieldpath.Path{}, false
	}

	return *p, true
}
