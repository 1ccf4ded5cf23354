// Package plan turns compiled mapping rules into an executable, bidirectional
// mapping.
//
// Execution pipeline, per direction:
//  1. Iterate rules in the direction's order (ascending = declaration order)
//  2. Skip rules without a target path in this direction
//  3. Resolve the value, first match wins:
//     - override read at the target path
//     - fresh copy of the rule literal
//     - source value, then transform, then format conversion
//  4. Write the value into the accumulating result
//
// A Plan is immutable once built and safe for concurrent use.
package plan
