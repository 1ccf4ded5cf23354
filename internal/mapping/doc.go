// Package mapping defines mapping rules, compiles them, and loads them from
// YAML rule files.
//
// A rule relates a path on the left shape to a path on the right shape:
//
//	version: "1"
//	order:
//	  left_to_right: ascending
//	  right_to_left: descending
//	rules:
//	  # plain correspondence, applied in both directions
//	  - left: user.name
//	    right: profile.fullName
//	  # literal written on the right only
//	  - right: profile.kind
//	    literal: {type: person}
//	  # named transform pair from the registry
//	  - left: user.age
//	    right: profile.ageText
//	    transform: numberToString
//	  # timestamp text conversion
//	  - left: created
//	    right: meta.createdAt
//	    format: {kind: timestamp, left: "YYYY-MM-DD", right: iso8601}
//
// # Compilation
//
// CompileRule validates a RuleSpec and parses its paths once. A rule needs at
// least one path; a transform needs both directions. Path errors are prefixed
// with "Left:" or "Right:", and CompileRules further prefixes "Rule <i>:".
//
// # Directions
//
// In LeftToRight the right path is the target and the left path the source;
// RightToLeft swaps them. A rule without a target path for a direction is
// skipped in that direction.
//
// # Transform Registry
//
// Rule files reference transforms by name. The registry maps names to
// TransformPair values; DefaultRegistry holds the built-in pairs.
package mapping
