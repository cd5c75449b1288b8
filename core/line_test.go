package core

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewLine_Segmentation(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		count int
		width int
	}{
		{"empty", "", 0, 0},
		{"ascii", "hello", 5, 5},
		{"wide", "日本", 2, 4},
		{"combining mark", "e\u0301", 1, 1},
		{"control char", "a\x01b", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := NewLine(tt.text)
			require.Equal(t, tt.count, line.GraphemeCount())
			require.Equal(t, tt.width, line.Width())
			require.Equal(t, tt.text, line.String())
		})
	}
}

func TestLine_WidthUntil(t *testing.T) {
	line := NewLine("a日b")

	require.Equal(t, 0, line.WidthUntil(0))
	require.Equal(t, 1, line.WidthUntil(1))
	require.Equal(t, 3, line.WidthUntil(2))
	require.Equal(t, 4, line.WidthUntil(3))
	require.Equal(t, 4, line.WidthUntil(10), "index past the end is clamped")
}

func TestLine_VisibleGraphemes(t *testing.T) {
	line := NewLine("a日b")

	tests := []struct {
		name       string
		start, end int
		want       string
	}{
		{"whole line", 0, 4, "a日b"},
		{"wide cut on the right", 0, 2, "a…"},
		{"wide cut on the left", 2, 4, "…b"},
		{"wide fully inside", 1, 3, "日"},
		{"past the end", 4, 10, ""},
		{"empty range", 2, 2, ""},
		{"inverted range", 3, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, line.VisibleGraphemes(tt.start, tt.end))
		})
	}
}

func TestLine_VisibleGraphemes_ReplacesZeroWidth(t *testing.T) {
	line := NewLine("a\x01b")

	require.Equal(t, "a\uFFFDb", line.VisibleGraphemes(0, 3))
}

func TestLine_InsertAndRemove(t *testing.T) {
	line := NewLine("ac")

	line.InsertChar(1, 'b')
	require.Equal(t, "abc", line.String())

	line.Insert(3, "日")
	require.Equal(t, "abc日", line.String())
	require.Equal(t, 4, line.GraphemeCount())

	line.Remove(0)
	require.Equal(t, "bc日", line.String())

	line.Remove(10)
	require.Equal(t, "bc日", line.String(), "out of range remove is ignored")
}

func TestLine_InsertResegmentsNeighbours(t *testing.T) {
	line := NewLine("e")

	line.InsertChar(1, '\u0301')

	require.Equal(t, 1, line.GraphemeCount(), "combining mark joins the previous grapheme")
	require.Equal(t, "e\u0301", line.String())
}

func TestLine_SplitAndAppend(t *testing.T) {
	line := NewLine("hello world")

	head, tail := line.Split(5)
	require.Equal(t, "hello", head.String())
	require.Equal(t, " world", tail.String())
	require.Equal(t, "hello world", line.String(), "split does not mutate the receiver")

	head.Append(tail)
	require.Equal(t, "hello world", head.String())
	require.Equal(t, 11, head.GraphemeCount())
}

// ============================================================================
// Property-Based Tests
// ============================================================================

var textGen = rapid.SampledFrom([]string{
	"a", "b", "z", " ", "\t", "日", "本", "\u00e9", "e\u0301", "🇷🇴", "👍", "\x01", "ß",
})

func lineText(t *rapid.T) string {
	parts := rapid.SliceOfN(textGen, 0, 20).Draw(t, "parts")
	text := ""
	for _, p := range parts {
		text += p
	}
	return text
}

func TestLine_Property_VisibleNeverExceedsRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line := NewLine(lineText(t))
		total := line.Width()
		start := rapid.IntRange(0, total+2).Draw(t, "start")
		end := rapid.IntRange(start, total+4).Draw(t, "end")

		visible := line.VisibleGraphemes(start, end)

		require.LessOrEqual(t, runewidth.StringWidth(visible), max(0, end-start))
	})
}

func TestLine_Property_FullRangeRendersEverything(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line := NewLine(lineText(t))

		visible := line.VisibleGraphemes(0, line.WidthUntil(line.GraphemeCount()))

		require.NotContains(t, visible, ellipsis)
		require.Equal(t, NewLine(visible).GraphemeCount(), line.GraphemeCount())
	})
}

func TestLine_Property_SplitThenAppendRestores(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := lineText(t)
		line := NewLine(text)
		k := rapid.IntRange(0, line.GraphemeCount()).Draw(t, "k")

		head, tail := line.Split(k)
		head.Append(tail)

		require.Equal(t, text, head.String())
	})
}

func TestLine_Property_InsertThenRemoveRestores(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		parts := rapid.SliceOfN(rapid.SampledFrom([]string{"a", "b", "日", " ", "x"}), 0, 20).Draw(t, "parts")
		text := ""
		for _, p := range parts {
			text += p
		}
		line := NewLine(text)
		k := rapid.IntRange(0, line.GraphemeCount()).Draw(t, "k")
		r := rapid.SampledFrom([]rune{'q', '語', '#'}).Draw(t, "r")

		line.InsertChar(k, r)
		line.Remove(k)

		require.Equal(t, text, line.String())
	})
}
