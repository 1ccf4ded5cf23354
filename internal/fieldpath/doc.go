// Package fieldpath implements the path language used to address values
// inside nested JSON-compatible documents (map[string]any, []any and scalars).
//
// # Syntax
//
// A path is a sequence of segments separated by ".":
//
//	user.name          object field access
//	items[0]           array index (negative counts from the end: items[-1])
//	items[0][1]        chained indexes
//	user.{name,email}  keyed projection over several fields
//	items[].id         positional projection over every element
//	items[[0,2]].id    positional projection over the listed indexes
//
// A backslash makes the next character literal, so "a\.b" is a single field
// named "a.b". The empty string is the root path.
//
// # Evaluation
//
// Paths are parsed once with [Parse] and evaluated many times with [Get] and
// [Set]. Neither operation mutates its input: [Set] copies every container it
// writes into. Projection segments yield a [Sequence]; the remaining segments
// are applied to each element and the results are rejoined by key or by
// position.
//
// Missing values are represented by Absent; nil is a JSON null.
package fieldpath
