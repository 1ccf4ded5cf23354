package mapping

import (
	"errors"
	"fmt"

	"shape-mapper/internal/common"
	"shape-mapper/internal/fieldpath"
)

var (
	// ErrNoPath is returned for a rule with neither a left nor a right path.
	ErrNoPath = errors.New("rule requires a left or right path")
	// ErrPartialTransform is returned when only one transform direction is set.
	ErrPartialTransform = errors.New("transform requires both toLeft and toRight")
	// ErrUnknownFormat is returned for an unrecognized format kind.
	ErrUnknownFormat = errors.New("unknown format kind")
)

// Side names a rule side in error messages.
type Side string

const (
	SideLeft  Side = "Left"
	SideRight Side = "Right"
)

// SideError is a path failure on one side of a rule.
type SideError struct {
	Side Side
	Err  error
}

// Error implements the error interface.
func (e *SideError) Error() string {
	return string(e.Side) + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *SideError) Unwrap() error {
	return e.Err
}

// CompileError is a rule failure tagged with the rule's position.
type CompileError struct {
	Index int
	// Side is set when the failure concerns one path.
	Side Side
	Err  error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("Rule %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// Compiler compiles rule specs, optionally sharing parsed paths through a cache.
type Compiler struct {
	cache *fieldpath.Cache
}

// NewCompiler returns a Compiler. cache may be nil.
func NewCompiler(cache *fieldpath.Cache) *Compiler {
	return &Compiler{cache: cache}
}

// CompileRule compiles a single spec without a path cache.
func CompileRule(spec RuleSpec) (*Rule, error) {
	return NewCompiler(nil).Compile(spec)
}

// CompileRules compiles a batch of specs without a path cache.
func CompileRules(specs []RuleSpec) ([]*Rule, error) {
	return NewCompiler(nil).CompileAll(specs)
}

// Compile validates spec and parses its paths. The returned rule has index 0.
func (c *Compiler) Compile(spec RuleSpec) (*Rule, error) {
	if spec.Left == nil && spec.Right == nil {
		return nil, ErrNoPath
	}

	if spec.Transform != nil && (spec.Transform.ToLeft == nil || spec.Transform.ToRight == nil) {
		return nil, ErrPartialTransform
	}

	if spec.Format != nil && !spec.Format.Kind.IsValid() {
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, spec.Format.Kind)
	}

	left, err := c.parseSide(SideLeft, spec.Left)
	if err != nil {
		return nil, err
	}

	right, err := c.parseSide(SideRight, spec.Right)
	if err != nil {
		return nil, err
	}

	r := &Rule{
		left:       left,
		right:      right,
		hasLiteral: spec.HasLiteral,
	}

	if spec.HasLiteral {
		r.literal = common.DeepCopy(spec.Literal)
	}

	if spec.Transform != nil {
		pair := *spec.Transform
		r.transform = &pair
	}

	if spec.Format != nil {
		f := *spec.Format
		r.format = &f
	}

	return r, nil
}

// CompileAll compiles specs in order, assigning each rule its index.
// The first failure is returned as a *CompileError.
func (c *Compiler) CompileAll(specs []RuleSpec) ([]*Rule, error) {
	rules := make([]*Rule, 0, len(specs))

	for i, spec := range specs {
		r, err := c.compileAt(i, spec)
		if err != nil {
			return nil, err
		}

		rules = append(rules, r)
	}

	return rules, nil
}

// compileAt compiles one spec, converting errors and panics into *CompileError.
func (c *Compiler) compileAt(i int, spec RuleSpec) (r *Rule, err error) {
	defer func() {
		if p := recover(); p != nil {
			r = nil
			err = &CompileError{Index: i, Err: fmt.Errorf("%v", p)}
		}
	}()

	r, err = c.Compile(spec)
	if err != nil {
		ce := &CompileError{Index: i, Err: err}

		var se *SideError
		if errors.As(err, &se) {
			ce.Side = se.Side
		}

		return nil, ce
	}

	r.index = i

	return r, nil
}

func (c *Compiler) parseSide(side Side, s *string) (*fieldpath.Path, error) {
	if s == nil {
		return nil, nil
	}

	var (
		p   fieldpath.Path
		err error
	)

	if c.cache != nil {
		p, err = c.cache.Parse(*s)
	} else {
		p, err = fieldpath.Parse(*s)
	}

	if err != nil {
		return nil, &SideError{Side: side, Err: err}
	}

	return &p, nil
}
