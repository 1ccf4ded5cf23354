package fieldpath

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a negative index resolves before the first element.
	ErrOutOfBounds = errors.New("index out of bounds")
	// ErrShapeMismatch is returned when a value written through a projection
	// is neither absent nor of the shape the projection expects.
	ErrShapeMismatch = errors.New("value shape does not match projection")
)

// ParseError describes malformed path syntax.
type ParseError struct {
	// Input is the full path string.
	Input string
	// Offset is the byte offset of Fragment within Input.
	Offset int
	// Fragment is the offending substring.
	Fragment string
	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q at offset %d in path %q", e.Message, e.Fragment, e.Offset, e.Input)
}

// TraversalError localizes a failure during Get or Set.
type TraversalError struct {
	// Path is the traversed prefix, e.g. "<root>.items[-4]".
	Path string
	Err  error
}

// Error implements the error interface.
func (e *TraversalError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *TraversalError) Unwrap() error {
	return e.Err
}

// annotate wraps err with the path up to and including segs[i].
// Errors that already carry a path are returned unchanged.
func annotate(segs []Segment, i int, err error) error {
	var te *TraversalError
	if errors.As(err, &te) {
		return err
	}

	return &TraversalError{Path: render(segs[:i+1]), Err: err}
}
