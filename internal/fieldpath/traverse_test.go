package fieldpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() map[string]any {
	return map[string]any{
		"blank": nil,
		"arr": []any{"a", "b", "c"},
		"user": map[string]any{
			"name":  "Ada",
			"email": "ada@example.com",
		},
		"items": []any{
			map[string]any{"id": 1, "qty": 2},
			map[string]any{"id": 2, "qty": 5},
			map[string]any{"id": 3},
		},
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		path     string
		expected any
	}{
		{"", sampleDoc()},
		{"user.name", "Ada"},
		{"user.missing", Absent},
		{"user.name.first", Absent},
		{"arr[0]", "a"},
		{"arr[-1]", "c"},
		{"arr[-3]", "a"},
		{"arr[3]", Absent},
		{"user[0]", Absent},
		{"arr.name", Absent},
		{"missing.deep[2].x", Absent},
		{"items[1].qty", 5},
		{"items[].id", []any{1, 2, 3}},
		{"items[].qty", []any{2, 5, Absent}},
		{"items[[0,-1]].id", []any{1, 3}},
		{"items[[0,7]].id", []any{1, Absent}},
		{"user.{name,email}", map[string]any{"name": "Ada", "email": "ada@example.com"}},
		{"user.{name,nope}", map[string]any{"name": "Ada"}},
		{"missing[].id", Absent},
		{"blank", nil},
		{"blank.x", Absent},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Get(sampleDoc(), MustParse(tt.path))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGet_NegativeOutOfBounds(t *testing.T) {
	_, err := Get(sampleDoc(), MustParse("arr[-4]"))
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrOutOfBounds)

	var te *TraversalError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "<root>.arr[-4]", te.Path)
	assert.Contains(t, err.Error(), "<root>.arr[-4]: index out of bounds")
}

func TestGet_OutOfBoundsInsideProjection(t *testing.T) {
	doc := map[string]any{
		"rows": []any{
			[]any{1, 2},
			[]any{1},
		},
	}

	_, err := Get(doc, MustParse("rows[][-2]"))
	require.Error(t, err)

	var te *TraversalError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "<root>.rows[][-2]", te.Path)
}

func TestSet_Object(t *testing.T) {
	doc := sampleDoc()

	out, err := Set(doc, MustParse("user.address.city"), "Paris")
	require.NoError(t, err)

	got, err := Get(out, MustParse("user.address.city"))
	require.NoError(t, err)
	assert.Equal(t, "Paris", got)

	// input untouched
	_, exists := doc["user"].(map[string]any)["address"]
	assert.False(t, exists)
}

func TestSet_FromAbsent(t *testing.T) {
	out, err := Set(nil, MustParse("a.b[1].c"), true)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"a": map[string]any{
			"b": []any{nil, map[string]any{"c": true}},
		},
	}, out)
}

func TestSet_Root(t *testing.T) {
	out, err := Set(map[string]any{"x": 1}, Path{}, "replaced")
	require.NoError(t, err)
	assert.Equal(t, "replaced", out)
}

func TestSet_ReplacesWrongContainer(t *testing.T) {
	out, err := Set(map[string]any{"a": "text"}, MustParse("a.b"), 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": map[string]any{"b": 1}}, out)

	out, err = Set(map[string]any{"a": map[string]any{}}, MustParse("a[0]"), 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": []any{1}}, out)
}

func TestSet_GrowsArray(t *testing.T) {
	doc := map[string]any{"arr": []any{"a", "b", "c"}}

	out, err := Set(doc, MustParse("arr[5]"), "x")
	require.NoError(t, err)

	arr, ok := out.(map[string]any)["arr"].([]any)
	require.True(t, ok)
	require.Len(t, arr, 6)
	assert.Equal(t, "x", arr[5])
	assert.Nil(t, arr[3])
	assert.Nil(t, arr[4])

	assert.Len(t, doc["arr"], 3)
}

func TestSet_NegativeIndex(t *testing.T) {
	doc := map[string]any{"arr": []any{"a", "b", "c"}}

	out, err := Set(doc, MustParse("arr[-1]"), "z")
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b", "z"}, out.(map[string]any)["arr"])

	_, err = Set(doc, MustParse("arr[-4]"), "z")
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = Set(nil, MustParse("fresh[-1]"), "z")
	require.ErrorIs(t, err, ErrOutOfBounds)

	var te *TraversalError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "<root>.fresh[-1]", te.Path)
}

func TestSet_Each(t *testing.T) {
	doc := map[string]any{
		"items": []any{
			map[string]any{"id": 1, "keep": true},
		},
	}

	out, err := Set(doc, MustParse("items[].id"), []any{10, 20})
	require.NoError(t, err)

	assert.Equal(t, []any{
		map[string]any{"id": 10, "keep": true},
		map[string]any{"id": 20},
	}, out.(map[string]any)["items"])
}

func TestSet_EachShapeMismatch(t *testing.T) {
	_, err := Set(nil, MustParse("items[].id"), "nope")
	require.ErrorIs(t, err, ErrShapeMismatch)

	var te *TraversalError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "<root>.items[]", te.Path)
}

func TestSet_Fields(t *testing.T) {
	out, err := Set(nil, MustParse("user.{name,email}.value"), map[string]any{
		"name": "Ada",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"user": map[string]any{
			"name": map[string]any{"value": "Ada"},
		},
	}, out)

	_, err = Set(nil, MustParse("user.{name,email}"), []any{1})
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestSet_Indexes(t *testing.T) {
	doc := map[string]any{"arr": []any{"a", "b", "c"}}

	out, err := Set(doc, MustParse("arr[[0,-1,4]]"), []any{"A", "C", "E"})
	require.NoError(t, err)
	assert.Equal(t, []any{"A", "b", "C", nil, "E"}, out.(map[string]any)["arr"])
}

func TestGetSet_RoundTripProjection(t *testing.T) {
	doc := sampleDoc()
	p := MustParse("items[].{id,qty}")

	got, err := Get(doc, p)
	require.NoError(t, err)

	out, err := Set(nil, p, got)
	require.NoError(t, err)

	again, err := Get(out, p)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestSet_IndexLimit(t *testing.T) {
	tests := []struct {
		name string
		path Path
	}{
		{"max int", NewPath(Index(math.MaxInt))},
		{"past limit", NewPath(Index(MaxIndex + 1))},
		{"indexes", NewPath(Field("a"), Indexes(0, math.MaxInt))},
		{"nested", NewPath(Field("a"), Index(MaxIndex+1), Field("b"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var value any = "x"
			if tt.path.Iterating() {
				value = []any{"x", "y"}
			}

			_, err := Set([]any{"a"}, tt.path, value)
			require.ErrorIs(t, err, ErrOutOfBounds)

			var te *TraversalError
			require.ErrorAs(t, err, &te)
		})
	}

	got, err := Get([]any{"a"}, NewPath(Index(math.MaxInt)))
	require.NoError(t, err)
	assert.Equal(t, Absent, got)
}

func TestSet_Absent(t *testing.T) {
	tests := []struct {
		name     string
		dest     any
		path     string
		expected any
	}{
		{"removes key", map[string]any{"out": 1, "keep": 2}, "out", map[string]any{"keep": 2}},
		{"last key", map[string]any{"out": 1}, "out", map[string]any{}},
		{"missing parent", nil, "a.b", nil},
		{"missing key", map[string]any{"x": 1}, "a.b", map[string]any{"x": 1}},
		{"nested key", map[string]any{"a": map[string]any{"b": 1}}, "a.b", map[string]any{"a": map[string]any{}}},
		{"nulls slot", map[string]any{"arr": []any{1, 2}}, "arr[1]", map[string]any{"arr": []any{1, nil}}},
		{"no growth", map[string]any{"arr": []any{1, 2}}, "arr[5]", map[string]any{"arr": []any{1, 2}}},
		{"projection", map[string]any{"items": []any{map[string]any{"id": 1, "x": 2}}}, "items[].id",
			map[string]any{"items": []any{map[string]any{"x": 2}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Set(tt.dest, MustParse(tt.path), Absent)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestSet_NullIsNotAbsent(t *testing.T) {
	out, err := Set(nil, MustParse("a"), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": nil}, out)

	got, err := Get(out, MustParse("a"))
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, IsAbsent(got))

	got, err = Get(out, MustParse("b"))
	require.NoError(t, err)
	assert.True(t, IsAbsent(got))
}

func TestSet_StripsNestedAbsent(t *testing.T) {
	value := []any{1, Absent, map[string]any{"k": Absent, "v": nil}}

	out, err := Set(nil, MustParse("all"), value)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"all": []any{1, nil, map[string]any{"v": nil}},
	}, out)

	assert.Equal(t, Absent, value[1])
}

func TestGetSet_RoundTripMissingInProjection(t *testing.T) {
	doc := sampleDoc()
	p := MustParse("items[].qty")

	got, err := Get(doc, p)
	require.NoError(t, err)

	out, err := Set(map[string]any{"items": []any{
		map[string]any{"id": 1},
		map[string]any{"id": 2},
		map[string]any{"id": 3},
	}}, p, got)
	require.NoError(t, err)

	assert.Equal(t, []any{
		map[string]any{"id": 1, "qty": 2},
		map[string]any{"id": 2, "qty": 5},
		map[string]any{"id": 3},
	}, out.(map[string]any)["items"])
}
