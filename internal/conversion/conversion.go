// Package conversion wraps a plan with schema checks on both sides:
// the input is validated, mapped, and the output validated.
package conversion

import (
	"fmt"

	"shape-mapper/internal/mapping"
	"shape-mapper/internal/plan"
)

// Validator checks a decoded document. *schema.Schema implements it.
type Validator interface {
	Validate(value any) error
}

// Converter runs a plan between two validated shapes.
type Converter struct {
	plan  *plan.Plan
	left  Validator
	right Validator
	exec  []plan.ExecOption
}

// Option customizes a Converter.
type Option func(*Converter)

// WithLeft validates left-side documents with v.
func WithLeft(v Validator) Option {
	return func(c *Converter) {
		c.left = v
	}
}

// WithRight validates right-side documents with v.
func WithRight(v Validator) Option {
	return func(c *Converter) {
		c.right = v
	}
}

// WithExecOptions passes opts to every plan execution.
func WithExecOptions(opts ...plan.ExecOption) Option {
	return func(c *Converter) {
		c.exec = append(c.exec, opts...)
	}
}

// New returns a Converter for p. Sides without a validator are not checked.
func New(p *plan.Plan, opts ...Option) *Converter {
	c := &Converter{plan: p}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Convert validates source, maps it in direction dir and validates the result.
func (c *Converter) Convert(source, overrides any, dir mapping.Direction) (any, error) {
	in, out := c.left, c.right
	if dir == mapping.RightToLeft {
		in, out = out, in
	}

	if in != nil {
		if err := in.Validate(source); err != nil {
			return nil, fmt.Errorf("invalid input: %w", err)
		}
	}

	result, err := c.plan.Apply(source, overrides, dir, c.exec...)
	if err != nil {
		return nil, err
	}

	if out != nil {
		if err := out.Validate(result); err != nil {
			return nil, fmt.Errorf("invalid output: %w", err)
		}
	}

	return result, nil
}

// ToRight converts a left document.
func (c *Converter) ToRight(source, overrides any) (any, error) {
	return c.Convert(source, overrides, mapping.LeftToRight)
}

// ToLeft converts a right document.
func (c *Converter) ToLeft(source, overrides any) (any, error) {
	return c.Convert(source, overrides, mapping.RightToLeft)
}
