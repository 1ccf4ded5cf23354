package mapping

// CurrentVersion is the rule file schema version written by this package.
const CurrentVersion = "1"

// RuleFile represents the root of a YAML rule file.
type RuleFile struct {
	// Version of the rule file schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Order sets the application order per direction.
	Order OrderDef `yaml:"order,omitempty"`

	// Rules in declaration order.
	Rules []RuleDef `yaml:"rules"`
}

// OrderDef holds the two independent order flags of a plan.
type OrderDef struct {
	LeftToRight Order `yaml:"left_to_right,omitempty"`
	RightToLeft Order `yaml:"right_to_left,omitempty"`
}

// For returns the order configured for direction d.
func (o OrderDef) For(d Direction) Order {
	if d == LeftToRight {
		return o.LeftToRight
	}

	return o.RightToLeft
}

// RuleDef is a rule as written in a rule file.
type RuleDef struct {
	// Left path (e.g. "user.name", "items[0]", "tags[]"). Omit for right-only rules.
	Left *string `yaml:"left,omitempty"`

	// Right path. Omit for left-only rules.
	Right *string `yaml:"right,omitempty"`

	// Literal is written to the target instead of a source value.
	// Any YAML value is accepted; null means no literal.
	Literal *Literal `yaml:"literal,omitempty"`

	// Transform is the name of a registered transform pair.
	Transform string `yaml:"transform,omitempty"`

	// Format converts text values. Accepts "timestamp" or
	// {kind: timestamp, left: <format>, right: <format>}.
	Format *FormatDef `yaml:"format,omitempty"`

	// Description is an optional human-readable note.
	Description string `yaml:"description,omitempty"`
}

// Literal wraps an arbitrary YAML value.
type Literal struct {
	Value any
}

// FormatDef is the YAML form of a FormatSpec.
type FormatDef struct {
	Kind  string `yaml:"kind"`
	Left  string `yaml:"left,omitempty"`
	Right string `yaml:"right,omitempty"`
}

// Spec converts the definition into a FormatSpec.
func (f FormatDef) Spec() FormatSpec {
	return FormatSpec{
		Kind:      FormatKind(f.Kind),
		LeftHint:  f.Left,
		RightHint: f.Right,
	}
}
