package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML rule file from the given path.
func LoadFile(path string) (*RuleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a RuleFile.
func Parse(data []byte) (*RuleFile, error) {
	var rf RuleFile

	err := yaml.Unmarshal(data, &rf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rule YAML: %w", err)
	}

	applyDefaults(&rf)

	return &rf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(rf *RuleFile) {
	if rf.Version == "" {
		rf.Version = CurrentVersion
	}
}

// Marshal serializes a RuleFile to YAML.
func Marshal(rf *RuleFile) ([]byte, error) {
	return yaml.Marshal(rf)
}

// WriteFile writes a RuleFile to the given path.
func WriteFile(rf *RuleFile, path string) error {
	data, err := Marshal(rf)
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write rule file %s: %w", path, err)
	}

	return nil
}

// Specs resolves the file's rule definitions into specs, looking transforms
// up in registry. Unknown transforms fail as a *CompileError.
func (rf *RuleFile) Specs(registry *TransformRegistry) ([]RuleSpec, error) {
	specs := make([]RuleSpec, 0, len(rf.Rules))

	for i, def := range rf.Rules {
		spec := RuleSpec{
			Left:  def.Left,
			Right: def.Right,
		}

		if def.Literal != nil {
			spec = spec.WithLiteral(def.Literal.Value)
		}

		if def.Transform != "" {
			pair, ok := registry.Get(def.Transform)
			if !ok {
				return nil, &CompileError{Index: i, Err: fmt.Errorf("unknown transform %q", def.Transform)}
			}

			spec.Transform = &pair
		}

		if def.Format != nil {
			f := def.Format.Spec()
			spec.Format = &f
		}

		specs = append(specs, spec)
	}

	return specs, nil
}
