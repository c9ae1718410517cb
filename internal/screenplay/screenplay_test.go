// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package screenplay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/rpy-tools/internal/rpy"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Line
		wantOK bool
	}{
		{name: "speaker and phrase", line: "Alice: Hello", want: Line{Speaker: "Alice", Phrase: "Hello"}, wantOK: true},
		{name: "trailing delimiter", line: "Alice:", want: Line{Speaker: "Alice", Phrase: "..."}, wantOK: true},
		{name: "trailing delimiter then spaces", line: "Alice:   ", want: Line{Speaker: "Alice", Phrase: "..."}, wantOK: true},
		{name: "leading delimiter is narration", line: ":Hello", want: Line{Phrase: "Hello"}, wantOK: true},
		{name: "several leading delimiters", line: ":::Hello", want: Line{Phrase: "Hello"}, wantOK: true},
		{name: "no delimiter is narration", line: "The rain stops.", want: Line{Phrase: "The rain stops."}, wantOK: true},
		{name: "padded name and phrase", line: "  Old Man  :   Go away.  ", want: Line{Speaker: "Old Man", Phrase: "Go away."}, wantOK: true},
		{name: "only first delimiter splits", line: "Bob: time: 10:30", want: Line{Speaker: "Bob", Phrase: "time: 10:30"}, wantOK: true},
		{name: "empty line", line: "", wantOK: false},
		{name: "whitespace only", line: " \t\r\n", wantOK: false},
		{name: "delimiters only", line: ":::", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParse(t *testing.T) {
	src := "Alice: Hi\n\n   \nThe wind howls.\r\nBob:\n:::\n"
	lines, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []Line{
		{Speaker: "Alice", Phrase: "Hi", LineNo: 1},
		{Phrase: "The wind howls.", LineNo: 4},
		{Speaker: "Bob", Phrase: rpy.Ellipsis, LineNo: 5},
	}, lines)
}

func TestParse_LineTooLong(t *testing.T) {
	src := "Alice: ok\n" + strings.Repeat("x", maxLineBytes+1) + "\n"
	lines, err := Parse(strings.NewReader(src))
	require.Error(t, err)
	assert.Len(t, lines, 1)
}

func TestCharacters_FirstSeenOrder(t *testing.T) {
	var c Characters

	assert.Equal(t, "ch_0", c.ID("Alice"))
	assert.Equal(t, "ch_1", c.ID("Bob"))
	assert.Equal(t, "ch_0", c.ID("Alice"))
	assert.Equal(t, "ch_2", c.ID("Carol"))
	assert.Equal(t, "ch_1", c.ID("Bob"))

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []rpy.Character{
		{Name: "Alice", ID: "ch_0"},
		{Name: "Bob", ID: "ch_1"},
		{Name: "Carol", ID: "ch_2"},
	}, c.List())
}

func TestCharacters_Seeded(t *testing.T) {
	c := NewCharacters([]rpy.Character{
		{Name: "Narrator", ID: "n"},
		{Name: "Eileen", ID: "e"},
		{Name: "Narrator", ID: "dup"},
	})

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "e", c.ID("Eileen"))
	// New speakers are numbered after the seeded ones.
	assert.Equal(t, "ch_2", c.ID("Lucy"))
	assert.Equal(t, []rpy.Character{
		{Name: "Narrator", ID: "n"},
		{Name: "Eileen", ID: "e"},
		{Name: "Lucy", ID: "ch_2"},
	}, c.List())
}
