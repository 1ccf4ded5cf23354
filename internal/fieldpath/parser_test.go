package fieldpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input     string
		kinds     []Kind
		canonical string
	}{
		{"", nil, ""},
		{"name", []Kind{KindField}, "name"},
		{"user.address.street", []Kind{KindField, KindField, KindField}, "user.address.street"},
		{"items[0]", []Kind{KindField, KindIndex}, "items[0]"},
		{"items[-1]", []Kind{KindField, KindIndex}, "items[-1]"},
		{"grid[0][1]", []Kind{KindField, KindIndex, KindIndex}, "grid[0][1]"},
		{"items.[2]", []Kind{KindField, KindIndex}, "items[2]"},
		{"[0].id", []Kind{KindIndex, KindField}, "[0].id"},
		{"user.{name,email}", []Kind{KindField, KindFields}, "user.{name,email}"},
		{"user.{ name , email }", []Kind{KindField, KindFields}, "user.{name,email}"},
		{"items[].id", []Kind{KindField, KindEach, KindField}, "items[].id"},
		{"items[[0, 2]].id", []Kind{KindField, KindIndexes, KindField}, "items[[0,2]].id"},
		{`a\.b.c`, []Kind{KindField, KindField}, `a\.b.c`},
		{`tags\[0\]`, []Kind{KindField}, `tags\[0\]`},
		{"a]b", []Kind{KindField}, `a\]b`},
		{"x.y}z", []Kind{KindField, KindField}, `x.y\}z`},
		{"k{v", []Kind{KindField}, `k\{v`},
		{"a}", []Kind{KindField}, `a\}`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := Parse(tt.input)
			require.NoError(t, err)

			var kinds []Kind
			for _, seg := range p.Segments() {
				kinds = append(kinds, seg.Kind())
			}

			assert.Equal(t, tt.kinds, kinds)
			assert.Equal(t, tt.canonical, p.Canonical())
			assert.Equal(t, tt.input, p.Source())
		})
	}
}

func TestParse_SegmentDetails(t *testing.T) {
	p := MustParse(`a\.b[-2].{x,y}[[1,3]]`)
	require.Equal(t, 4, p.Len())

	assert.Equal(t, "a.b", p.Segment(0).Name())
	assert.Equal(t, `a\.b`, p.Segment(0).Raw())
	assert.Equal(t, -2, p.Segment(1).Index())
	assert.Equal(t, "[-2]", p.Segment(1).Raw())
	assert.Equal(t, []string{"x", "y"}, p.Segment(2).Names())
	assert.Equal(t, []int{1, 3}, p.Segment(3).Indexes())
	assert.True(t, p.Iterating())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		input    string
		message  string
		fragment string
	}{
		{"a.b[abc]", "invalid array index", "[abc]"},
		{"a[1.5]", "invalid array index", "[1.5]"},
		{"a[12", "unterminated bracket", "[12"},
		{"a[[1,2]", "unterminated bracket", "[[1,2]"},
		{"a[[1,x]]", "invalid array index list", "[[1,x]]"},
		{"a.", "trailing separator", "."},
		{"a..b", "empty segment", "."},
		{".a", "empty segment", "."},
		{"a[9223372036854775807]", "array index out of range", "[9223372036854775807]"},
		{"a[-16777217]", "array index out of range", "[-16777217]"},
		{"a[[0,16777217]]", "array index out of range", "[[0,16777217]]"},
		{"{a,b}c", "unexpected character", "c"},
		{"{a,,b}", "empty field name in set", "{a,,"},
		{"{a,a}", "duplicate field name in set", "{a,a}"},
		{"{a,b", "unterminated field set", "{a,b"},
		{`a\`, "dangling escape", `\`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.message, pe.Message)
			assert.Equal(t, tt.fragment, pe.Fragment)
			assert.Equal(t, tt.input, pe.Input)
			assert.Contains(t, err.Error(), tt.fragment)
		})
	}
}

func TestParse_BareNamePunctuation(t *testing.T) {
	tests := []struct {
		input string
		names []string
	}{
		{"a]b", []string{"a]b"}},
		{"x.y}z", []string{"x", "y}z"}},
		{"k{v", []string{"k{v"}},
		{"k{v}.w", []string{"k{v}", "w"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := Parse(tt.input)
			require.NoError(t, err)

			var names []string
			for _, seg := range p.Segments() {
				names = append(names, seg.Name())
			}

			assert.Equal(t, tt.names, names)
			assert.True(t, p.Equal(MustParse(p.Canonical())))
		})
	}
}

func TestParse_IndexLimit(t *testing.T) {
	p, err := Parse("a[16777216]")
	require.NoError(t, err)
	assert.Equal(t, MaxIndex, p.Segment(1).Index())

	p, err = Parse("a[-16777216]")
	require.NoError(t, err)
	assert.Equal(t, -MaxIndex, p.Segment(1).Index())
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("a[") })
}

func TestNewPath(t *testing.T) {
	p := NewPath(Field("items"), Index(-1), Fields("a", "b.c"))

	assert.Equal(t, `items[-1].{a,b\.c}`, p.Canonical())
	assert.Equal(t, `<root>.items[-1].{a,b\.c}`, p.String())
	assert.True(t, p.Equal(MustParse(`items[-1].{a,b\.c}`)))

	reparsed := MustParse(p.Canonical())
	assert.Equal(t, []string{"a", "b.c"}, reparsed.Segment(2).Names())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "Field", KindField.String())
	assert.Equal(t, "Indexes", KindIndexes.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())

	assert.False(t, KindField.Iterating())
	assert.False(t, KindIndex.Iterating())
	assert.True(t, KindFields.Iterating())
	assert.True(t, KindEach.Iterating())
	assert.True(t, KindIndexes.Iterating())
	assert.True(t, KindFields.Keyed())
	assert.False(t, KindEach.Keyed())
}
