package fieldpath

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind identifies the variant of a Segment.
type Kind int

const (
	_ Kind = iota // zero value is an invalid segment

	KindField   // name
	KindIndex   // [n]
	KindFields  // {a,b}
	KindEach    // []
	KindIndexes // [[i,j]]
)

// Iterating reports whether segments of this kind yield a Sequence.
func (k Kind) Iterating() bool {
	switch k {
	case KindFields, KindEach, KindIndexes:
		return true
	default:
		return false
	}
}

// Keyed reports whether the Sequence produced by this kind is keyed by field name.
func (k Kind) Keyed() bool {
	return k == KindFields
}
