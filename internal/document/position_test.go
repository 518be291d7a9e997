package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrefix(t *testing.T) {
	text := "import x from 'y'\nexport const dynamic = \"auto\"\r\nexport const runtime = \n"

	tests := []struct {
		name      string
		line      int
		character int
		want      string
		ok        bool
	}{
		{name: "start of line", line: 1, character: 0, want: "", ok: true},
		{name: "after equals", line: 1, character: 23, want: "export const dynamic = ", ok: true},
		{name: "past line end clamps", line: 2, character: 500, want: "export const runtime = ", ok: true},
		{name: "carriage return excluded", line: 1, character: 100, want: "export const dynamic = \"auto\"", ok: true},
		{name: "trailing empty line", line: 3, character: 0, want: "", ok: true},
		{name: "line out of range", line: 4, character: 0, ok: false},
		{name: "negative line", line: -1, character: 0, ok: false},
		{name: "negative character", line: 0, character: -3, want: "", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LinePrefix(text, tt.line, tt.character)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinePrefix_UTF16(t *testing.T) {
	// "é" is one UTF-16 unit, "😀" is two
	text := "/* é😀 */ export const dynamic = "

	got, ok := LinePrefix(text, 0, 4)
	require.True(t, ok)
	assert.Equal(t, "/* é", got)

	got, ok = LinePrefix(text, 0, 6)
	require.True(t, ok)
	assert.Equal(t, "/* é"+"😀", got)

	// Inside the surrogate pair rounds down
	got, ok = LinePrefix(text, 0, 5)
	require.True(t, ok)
	assert.Equal(t, "/* é", got)

	got, ok = LinePrefix(text, 0, 33)
	require.True(t, ok)
	assert.Equal(t, text, got)
}

func TestLinePrefix_LoneCarriageReturn(t *testing.T) {
	text := "import x from 'y'\rexport const runtime = \r\nexport const dynamic = "

	got, ok := LinePrefix(text, 1, 100)
	require.True(t, ok)
	assert.Equal(t, "export const runtime = ", got)

	got, ok = LinePrefix(text, 2, 23)
	require.True(t, ok)
	assert.Equal(t, "export const dynamic = ", got)

	_, ok = LinePrefix(text, 3, 0)
	assert.False(t, ok)
}

func TestOffset(t *testing.T) {
	text := "ab\ncd\nef"

	assert.Equal(t, 0, Offset(text, Position{Line: 0, Character: 0}))
	assert.Equal(t, 4, Offset(text, Position{Line: 1, Character: 1}))
	assert.Equal(t, 5, Offset(text, Position{Line: 1, Character: 9}))
	assert.Equal(t, len(text), Offset(text, Position{Line: 7, Character: 0}))
	assert.Equal(t, 0, Offset(text, Position{Line: -1, Character: 4}))
}

func TestOffset_LineTerminators(t *testing.T) {
	text := "ab\rcd\r\nef"

	assert.Equal(t, 4, Offset(text, Position{Line: 1, Character: 1}))
	assert.Equal(t, 5, Offset(text, Position{Line: 1, Character: 9}))
	assert.Equal(t, 7, Offset(text, Position{Line: 2, Character: 0}))
	assert.Equal(t, len(text), Offset(text, Position{Line: 3, Character: 0}))
}
