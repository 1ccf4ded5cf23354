package fieldpath

import (
	"slices"
	"strconv"
	"strings"
)

// MaxIndex bounds the magnitude of array indexes accepted by Parse and the
// length Set may grow an array to.
const MaxIndex = 1 << 24

// Parse parses a path string into a Path.
// Supports: "a.b", "a[0]", "a[-1]", "a.{b,c}", "a[].b", "a[[0,2]].b" and
// backslash escapes. The empty string parses to the root path.
func Parse(input string) (Path, error) {
	if input == "" {
		return Path{}, nil
	}

	s := &scanner{input: input}

	var segments []Segment

	for {
		seg, err := s.segment()
		if err != nil {
			return Path{}, err
		}

		segments = append(segments, seg)

		// Brackets may follow any segment directly: a[0][1], {a,b}[0]
		for s.peek() == '[' {
			seg, err = s.bracket()
			if err != nil {
				return Path{}, err
			}

			segments = append(segments, seg)
		}

		if s.done() {
			break
		}

		if s.peek() != '.' {
			return Path{}, s.fail(s.pos, s.pos+1, "unexpected character")
		}

		s.pos++

		if s.done() {
			return Path{}, s.fail(s.pos-1, s.pos, "trailing separator")
		}
	}

	return Path{segments: segments, source: input}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level path constants.
func MustParse(input string) Path {
	p, err := Parse(input)
	if err != nil {
		panic(err)
	}

	return p
}

type scanner struct {
	input string
	pos   int
}

func (s *scanner) done() bool { return s.pos >= len(s.input) }

func (s *scanner) peek() byte {
	if s.done() {
		return 0
	}

	return s.input[s.pos]
}

func (s *scanner) fail(start, end int, msg string) *ParseError {
	end = min(end, len(s.input))

	return &ParseError{
		Input:    s.input,
		Offset:   start,
		Fragment: s.input[start:end],
		Message:  msg,
	}
}

func (s *scanner) segment() (Segment, error) {
	switch s.peek() {
	case '[':
		return s.bracket()
	case '{':
		return s.braces()
	case '.':
		return Segment{}, s.fail(s.pos, s.pos+1, "empty segment")
	default:
		return s.field()
	}
}

// field reads a bare name up to the next unescaped '.', '[' or end of input.
func (s *scanner) field() (Segment, error) {
	start := s.pos

	var sb strings.Builder

	for !s.done() {
		c := s.peek()

		switch c {
		case '.', '[':
			return s.fieldSegment(start, sb.String())
		case '\\':
			if s.pos+1 >= len(s.input) {
				return Segment{}, s.fail(s.pos, s.pos+1, "dangling escape")
			}

			sb.WriteByte(s.input[s.pos+1])
			s.pos += 2
		default:
			sb.WriteByte(c)
			s.pos++
		}
	}

	return s.fieldSegment(start, sb.String())
}

func (s *scanner) fieldSegment(start int, name string) (Segment, error) {
	if name == "" {
		return Segment{}, s.fail(start, s.pos+1, "empty field name")
	}

	return Segment{kind: KindField, name: name, raw: s.input[start:s.pos]}, nil
}

// bracket reads "[n]", "[]" or "[[i,j]]".
func (s *scanner) bracket() (Segment, error) {
	start := s.pos
	s.pos++ // [

	switch s.peek() {
	case ']':
		s.pos++
		return Segment{kind: KindEach, raw: "[]"}, nil

	case '[':
		end := strings.Index(s.input[s.pos:], "]]")
		if end < 0 {
			return Segment{}, s.fail(start, len(s.input), "unterminated bracket")
		}

		closeAt := s.pos + end
		body := s.input[s.pos+1 : closeAt]
		s.pos = closeAt + 2

		indexes, ok := parseIndexList(body)
		if !ok {
			return Segment{}, s.fail(start, s.pos, "invalid array index list")
		}

		if slices.ContainsFunc(indexes, outOfRange) {
			return Segment{}, s.fail(start, s.pos, "array index out of range")
		}

		return Segment{kind: KindIndexes, indexes: indexes, raw: s.input[start:s.pos]}, nil
	}

	end := strings.IndexByte(s.input[s.pos:], ']')
	if end < 0 {
		return Segment{}, s.fail(start, len(s.input), "unterminated bracket")
	}

	closeAt := s.pos + end
	body := s.input[s.pos:closeAt]
	s.pos = closeAt + 1

	n, err := strconv.Atoi(strings.TrimSpace(body))
	if err != nil {
		return Segment{}, s.fail(start, s.pos, "invalid array index")
	}

	if outOfRange(n) {
		return Segment{}, s.fail(start, s.pos, "array index out of range")
	}

	return Segment{kind: KindIndex, index: n, raw: s.input[start:s.pos]}, nil
}

func outOfRange(n int) bool {
	return n > MaxIndex || n < -MaxIndex
}

func parseIndexList(body string) ([]int, bool) {
	var out []int

	for part := range strings.SplitSeq(body, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, false
		}

		out = append(out, n)
	}

	return out, len(out) > 0
}

// braces reads "{a,b,c}". Names may contain escapes; surrounding spaces are trimmed.
func (s *scanner) braces() (Segment, error) {
	start := s.pos
	s.pos++ // {

	var (
		names []string
		sb    strings.Builder
	)

	flush := func() error {
		name := strings.TrimSpace(sb.String())
		sb.Reset()

		if name == "" {
			return s.fail(start, s.pos+1, "empty field name in set")
		}

		if slices.Contains(names, name) {
			return s.fail(start, s.pos+1, "duplicate field name in set")
		}

		names = append(names, name)

		return nil
	}

	for !s.done() {
		c := s.peek()

		switch c {
		case '\\':
			if s.pos+1 >= len(s.input) {
				return Segment{}, s.fail(s.pos, s.pos+1, "dangling escape")
			}

			sb.WriteByte(s.input[s.pos+1])
			s.pos += 2
		case ',':
			if err := flush(); err != nil {
				return Segment{}, err
			}

			s.pos++
		case '}':
			if err := flush(); err != nil {
				return Segment{}, err
			}

			s.pos++

			return Segment{kind: KindFields, names: names, raw: s.input[start:s.pos]}, nil
		default:
			sb.WriteByte(c)
			s.pos++
		}
	}

	return Segment{}, s.fail(start, len(s.input), "unterminated field set")
}
