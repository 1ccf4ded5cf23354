// Package match provides name normalization and edit-distance scoring used
// to suggest the intended name when a rule references an unknown one
// (e.g. a misspelled transform).
package match
