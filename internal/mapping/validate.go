package mapping

import (
	"fmt"

	"shape-mapper/internal/common"
	"shape-mapper/internal/diagnostic"
	"shape-mapper/internal/fieldpath"
)

// Validate checks a rule file against the transform registry without
// executing it. Unlike compilation it reports every problem it finds.
func Validate(rf *RuleFile, registry *TransformRegistry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if rf == nil {
		res.AddError("rule_file_is_nil", "rule file is nil", diagnostic.NoRule, "")
		return res
	}

	if registry == nil {
		res.AddError("registry_is_nil", "transform registry is nil", diagnostic.NoRule, "")
		return res
	}

	if rf.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported rule file version %q (expected %q)", rf.Version, CurrentVersion),
			diagnostic.NoRule, "")
	}

	if common.IsEmpty(rf.Rules) {
		res.AddWarning("no_rules", "rule file has no rules", diagnostic.NoRule, "")
	}

	// canonical target path -> first rule writing it, per side
	seen := map[Side]map[string]int{
		SideLeft:  {},
		SideRight: {},
	}

	for i := range rf.Rules {
		validateRule(res, i, &rf.Rules[i], registry, seen)
	}

	return res
}

func validateRule(
	res *diagnostic.Diagnostics,
	index int,
	def *RuleDef,
	registry *TransformRegistry,
	seen map[Side]map[string]int,
) {
	if def.Left == nil && def.Right == nil {
		res.AddError("rule_without_path", ErrNoPath.Error(), index, "")
		return
	}

	validateSide(res, index, SideLeft, def.Left, seen)
	validateSide(res, index, SideRight, def.Right, seen)

	if def.Transform != "" && !registry.Has(def.Transform) {
		res.AddError("unknown_transform",
			fmt.Sprintf("unknown transform %q", def.Transform),
			index, "", registry.Suggest(def.Transform)...)
	}

	if def.Format != nil {
		kind := FormatKind(def.Format.Kind)
		if !kind.IsValid() {
			res.AddError("unknown_format_kind",
				fmt.Sprintf("%s %q", ErrUnknownFormat, def.Format.Kind),
				index, "", string(FormatTimestamp))
		} else if def.Format.Left == "" && def.Format.Right == "" {
			res.AddInfo("format_without_hints",
				"format has no hints; timestamps are detected on read and written as iso8601", index, "")
		}
	}

	if def.Literal != nil && def.Left != nil && def.Right != nil {
		res.AddInfo("literal_shadows_source",
			"literal is written in both directions; source values are never read", index, "")
	}
}

func validateSide(
	res *diagnostic.Diagnostics,
	index int,
	side Side,
	raw *string,
	seen map[Side]map[string]int,
) {
	if raw == nil {
		return
	}

	p, err := fieldpath.Parse(*raw)
	if err != nil {
		code := "invalid_left_path"
		if side == SideRight {
			code = "invalid_right_path"
		}

		res.AddError(code, (&SideError{Side: side, Err: err}).Error(), index, *raw)

		return
	}

	key := p.Canonical()
	if first, dup := seen[side][key]; dup {
		res.AddWarning("duplicate_target",
			fmt.Sprintf("%s path also written by rule %d; application order decides the result", side, first),
			index, p.String())

		return
	}

	seen[side][key] = index
}
