package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepCopy(t *testing.T) {
	src := map[string]any{
		"a": 1,
		"b": []any{"x", map[string]any{"c": true}},
		"d": nil,
	}

	cp, ok := DeepCopy(src).(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, src, cp)

	cp["a"] = 2
	cp["b"].([]any)[1].(map[string]any)["c"] = false

	assert.Equal(t, 1, src["a"])
	assert.Equal(t, true, src["b"].([]any)[1].(map[string]any)["c"])
}

func TestDeepCopy_Scalars(t *testing.T) {
	assert.Nil(t, DeepCopy(nil))
	assert.Equal(t, "s", DeepCopy("s"))
	assert.InDelta(t, 1.5, DeepCopy(1.5), 0)
	assert.Equal(t, []string{"a"}, DeepCopy([]string{"a"}))
}
