package mapping

import "fmt"

//go:generate go tool stringer -type=Direction,Order -linecomment -output=enums_string.go

// Direction selects which side of a rule is written.
type Direction int

const (
	LeftToRight Direction = iota // left-to-right
	RightToLeft                  // right-to-left
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == LeftToRight {
		return RightToLeft
	}

	return LeftToRight
}

// Order is the rule application order for one direction.
type Order int

const (
	Ascending  Order = iota // ascending
	Descending              // descending
)

// ParseOrder parses "ascending" or "descending". The empty string is Ascending.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", Ascending.String():
		return Ascending, nil
	case Descending.String():
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("invalid order %q (expected 'ascending' or 'descending')", s)
	}
}
