package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- Literal YAML methods ---

// UnmarshalYAML captures any YAML value as the literal.
func (l *Literal) UnmarshalYAML(node *yaml.Node) error {
	var v any

	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("invalid literal: %w", err)
	}

	l.Value = v

	return nil
}

// MarshalYAML writes the wrapped value.
func (l Literal) MarshalYAML() (any, error) {
	return l.Value, nil
}

// --- FormatDef YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for FormatDef.
// Accepts:
//   - Kind only: "timestamp"
//   - Full form: {kind: timestamp, left: "YYYY-MM-DD", right: iso8601}
func (f *FormatDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var kind string

		if err := node.Decode(&kind); err != nil {
			return err
		}

		*f = FormatDef{Kind: kind}

		return nil

	case yaml.MappingNode:
		// plain alias avoids recursing into this method
		type plain FormatDef

		var p plain

		if err := node.Decode(&p); err != nil {
			return err
		}

		*f = FormatDef(p)

		return nil

	default:
		return fmt.Errorf("expected string or map for format, got %v", node.Kind)
	}
}

// MarshalYAML writes the kind alone when no hints are set.
func (f FormatDef) MarshalYAML() (any, error) {
	if f.Left == "" && f.Right == "" {
		return f.Kind, nil
	}

	type plain FormatDef

	return plain(f), nil
}

// --- Order YAML methods ---

// UnmarshalYAML parses "ascending" or "descending".
func (o *Order) UnmarshalYAML(node *yaml.Node) error {
	var s string

	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseOrder(s)
	if err != nil {
		return err
	}

	*o = parsed

	return nil
}

// MarshalYAML writes the order name.
func (o Order) MarshalYAML() (any, error) {
	return o.String(), nil
}
