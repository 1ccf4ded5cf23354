package plan

import (
	"errors"
	"fmt"
	"log/slog"

	"shape-mapper/internal/fieldpath"
	"shape-mapper/internal/mapping"
	"shape-mapper/internal/timefmt"
)

// ErrNotText is returned when a format descriptor meets a non-string value.
var ErrNotText = errors.New("format conversion requires a text value")

// ExecError is a failure of one rule during execution. It aborts the whole call.
type ExecError struct {
	Rule int
	Err  error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	return fmt.Sprintf("Rule %d: %v", e.Rule, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ExecError) Unwrap() error {
	return e.Err
}

// ExecOptions configures a single execution.
type ExecOptions struct {
	// Logger receives a debug record per applied rule. Discards by default.
	Logger *slog.Logger
	// Formatter converts timestamp text. Defaults to timefmt.Format.
	Formatter timefmt.Formatter
}

// ExecOption customizes ExecOptions.
type ExecOption func(*ExecOptions)

// WithLogger sets the logger used during execution.
func WithLogger(logger *slog.Logger) ExecOption {
	return func(opts *ExecOptions) {
		opts.Logger = logger
	}
}

// WithFormatter replaces the timestamp formatter.
func WithFormatter(f timefmt.Formatter) ExecOption {
	return func(opts *ExecOptions) {
		opts.Formatter = f
	}
}

func newExecOptions(opts []ExecOption) ExecOptions {
	options := ExecOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}

	if options.Formatter == nil {
		options.Formatter = timefmt.Format
	}

	return options
}

// Map applies the plan left to right.
func (p *Plan) Map(source, overrides any, opts ...ExecOption) (any, error) {
	return p.Apply(source, overrides, mapping.LeftToRight, opts...)
}

// ReverseMap applies the plan right to left.
func (p *Plan) ReverseMap(source, overrides any, opts ...ExecOption) (any, error) {
	return p.Apply(source, overrides, mapping.RightToLeft, opts...)
}

// Apply maps source in direction dir. overrides may be nil; where it holds
// a value at a rule's target path, that value wins over the rule.
// A rule that resolves to an absent value clears its target, so a later
// rule can undo an earlier one. Neither source nor overrides is modified.
func (p *Plan) Apply(source, overrides any, dir mapping.Direction, opts ...ExecOption) (any, error) {
	options := newExecOptions(opts)
	log := options.Logger.With(slog.String("direction", dir.String()))

	var result any

	for _, rule := range p.ordered(dir) {
		target, ok := rule.TargetPath(dir)
		if !ok {
			log.Debug("rule skipped", slog.Int("rule", rule.Index()))
			continue
		}

		value, origin, err := resolve(rule, dir, target, source, overrides, options.Formatter)
		if err != nil {
			return nil, &ExecError{Rule: rule.Index(), Err: err}
		}

		result, err = fieldpath.Set(result, target, value)
		if err != nil {
			return nil, &ExecError{Rule: rule.Index(), Err: err}
		}

		log.Debug("rule applied",
			slog.Int("rule", rule.Index()),
			slog.String("target", target.String()),
			slog.String("origin", origin))
	}

	if fieldpath.IsAbsent(result) {
		return nil, nil
	}

	return result, nil
}

// resolve picks the value a rule writes: override, then literal, then source.
// Missing values come back as fieldpath.Absent; nil is a JSON null.
func resolve(
	rule *mapping.Rule,
	dir mapping.Direction,
	target fieldpath.Path,
	source, overrides any,
	format timefmt.Formatter,
) (any, string, error) {
	if overrides != nil {
		v, err := fieldpath.Get(overrides, target)
		if err != nil {
			return nil, "", err
		}

		if defined(v, target) {
			return v, "override", nil
		}
	}

	if lit, ok := rule.Literal(); ok {
		return lit, "literal", nil
	}

	from, ok := rule.SourcePath(dir)
	if !ok {
		return fieldpath.Absent, "absent", nil
	}

	v, err := fieldpath.Get(source, from)
	if err != nil {
		return nil, "", err
	}

	if fieldpath.IsAbsent(v) {
		return v, "absent", nil
	}

	if fn := rule.TransformFor(dir); fn != nil {
		v, err = fn(fieldpath.Strip(v))
		if err != nil {
			return nil, "", fmt.Errorf("transform: %w", err)
		}
	}

	if kind, fromHint, toHint, ok := rule.FormatHints(dir); ok && v != nil {
		v, err = convert(kind, v, from, fromHint, toHint, format)
		if err != nil {
			return nil, "", err
		}
	}

	return v, "source", nil
}

func convert(
	kind mapping.FormatKind,
	v any,
	from fieldpath.Path,
	fromHint, toHint string,
	format timefmt.Formatter,
) (any, error) {
	text, ok := v.(string)
	if !ok {
		return nil, &fieldpath.TraversalError{
			Path: from.String(),
			Err:  fmt.Errorf("%w, got %T", ErrNotText, v),
		}
	}

	switch kind {
	case mapping.FormatTimestamp:
		if toHint == "" {
			toHint = timefmt.FormatISO8601
		}

		return format(text, toHint, fromHint)
	default:
		return nil, fmt.Errorf("%w %q", mapping.ErrUnknownFormat, kind)
	}
}

// defined reports whether an override read at target holds a value. Reads
// through projections count only when some slot is present.
func defined(v any, target fieldpath.Path) bool {
	if !target.Iterating() {
		return !fieldpath.IsAbsent(v)
	}

	return hasLeaf(v)
}

func hasLeaf(v any) bool {
	if fieldpath.IsAbsent(v) {
		return false
	}

	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if hasLeaf(item) {
				return true
			}
		}

		return false
	case map[string]any:
		for _, item := range t {
			if hasLeaf(item) {
				return true
			}
		}

		return false
	default:
		return true
	}
}
