package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"spaces only", "   ", 0},
		{"mixed whitespace only", " \t\n\r ", 0},
		{"single", "single", 1},
		{"runs of spaces", "a b  c", 3},
		{"surrounding whitespace", "  hello world \n", 2},
		{"newlines and tabs", "one\ntwo\tthree", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WordCount(tt.in))
		})
	}
}

func TestErase(t *testing.T) {
	assert.Equal(t, "", Erase("anything at all"))
	assert.Equal(t, "", Erase(""))
}

func TestCaseTransforms(t *testing.T) {
	tests := []struct {
		in    string
		upper string
		lower string
	}{
		{"", "", ""},
		{"Hello World", "HELLO WORLD", "hello world"},
		{"123 !?", "123 !?", "123 !?"},
		{"straße", "STRASSE", "straße"},
		{"ÀÉÎ àéî", "ÀÉÎ ÀÉÎ", "àéî àéî"},
		{"line1\nLine2", "LINE1\nLINE2", "line1\nline2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.upper, ToUpper(tt.in), "ToUpper(%q)", tt.in)
		assert.Equal(t, tt.lower, ToLower(tt.in), "ToLower(%q)", tt.in)
	}
}

func TestTransformsLeaveInputUntouched(t *testing.T) {
	in := "MiXeD"
	transforms := []Transform{Erase, ToUpper, ToLower}
	for _, tr := range transforms {
		_ = tr(in)
		assert.Equal(t, "MiXeD", in)
	}
}

func TestCaseTransformsNeedNotRoundTrip(t *testing.T) {
	in := "straße"
	assert.NotEqual(t, in, ToLower(ToUpper(in)))
}

func TestCount(t *testing.T) {
	assert.Equal(t, Stats{}, Count(""))

	st := Count("héllo wörld\nbye 👍🏽")
	assert.Equal(t, 2, st.Lines)
	assert.Equal(t, 4, st.Words)
	assert.Equal(t, 17, st.Characters)
	assert.Equal(t, len("héllo wörld\nbye 👍🏽"), st.Bytes)
}
