package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"nil", nil, ""},
		{"string", "hello world", "hello world"},
		{"bool", true, "true"},
		{"float", 3.5, "3.5"},
		{"whole float", float64(3), "3"},
		{"int", 42, "42"},
		{"array", []interface{}{"a", 1, true}, "a 1 true"},
		{"nested array", []interface{}{"a", []interface{}{"b", "c"}}, "a b c"},
		{
			"map in sorted key order",
			map[string]interface{}{"b": "second", "a": "first"},
			"first second",
		},
		{
			"nested structure",
			map[string]interface{}{
				"a": "hello",
				"b": []interface{}{1, true, map[string]interface{}{"c": "world"}},
			},
			"hello 1 true world",
		},
		{"null values skipped", []interface{}{"a", nil, "b"}, "a b"},
		{"empty object", map[string]interface{}{}, ""},
		{"unsupported type", struct{}{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Flatten(tt.input))
		})
	}
}

func TestTaskText(t *testing.T) {
	assert.Equal(t, "summarize the report", TaskText("summarize the report"))
	assert.Equal(t, `{"a":2,"b":1}`, TaskText(map[string]interface{}{"b": 1, "a": 2}))
	assert.Equal(t, "null", TaskText(nil))
}

func TestSerializeIsStable(t *testing.T) {
	value := map[string]interface{}{"z": 1, "a": []interface{}{"x", "y"}, "m": true}
	first := Serialize(value)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Serialize(value))
	}
	assert.Equal(t, `{"a":["x","y"],"m":true,"z":1}`, first)
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   \n\t "))
	assert.Equal(t, 3, WordCount("  foo   bar\nbaz "))
}

func TestUniqueWordRatio(t *testing.T) {
	assert.Equal(t, 0.0, UniqueWordRatio(""))
	assert.InDelta(t, 1.0, UniqueWordRatio("each word once"), 1e-9)
	assert.InDelta(t, 2.0/3.0, UniqueWordRatio("Foo foo BAR"), 1e-9)
}

func TestKeywords(t *testing.T) {
	words := Keywords("Rising interest rates, rising!", 3)
	assert.Equal(t, []string{"rising", "interest", "rates", "rising"}, words)

	// Length-3 and shorter words do not qualify.
	assert.Empty(t, Keywords("the of a and", 3))
}

func TestKeywordSet(t *testing.T) {
	set := KeywordSet("Summarize the impact of rising interest rates on housing markets", 3)
	assert.Len(t, set, 7)
	_, ok := set["housing"]
	assert.True(t, ok)
	_, ok = set["the"]
	assert.False(t, ok)
}

func TestUppercaseFraction(t *testing.T) {
	assert.Equal(t, 0.0, UppercaseFraction(""))
	assert.InDelta(t, 0.75, UppercaseFraction("ABCd"), 1e-9)
	assert.InDelta(t, 0.0, UppercaseFraction("all lower"), 1e-9)
}
