package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const (
	// replacementGlyph stands in for graphemes that occupy no cells.
	replacementGlyph = '\uFFFD'

	// ellipsis marks a wide grapheme cut by the edge of the visible range.
	ellipsis = "…"
)

// graphemeWidth is the number of cells a grapheme is drawn in.
type graphemeWidth int

const (
	halfWidth graphemeWidth = 1
	fullWidth graphemeWidth = 2
)

type textFragment struct {
	grapheme    string
	width       graphemeWidth
	replacement rune // 0 when the grapheme is drawn as-is
	startByte   int
}

// Line is one row of text stored as grapheme clusters.
//
// Three units are in play: bytes of the underlying string, grapheme indices
// (what a caret addresses) and cells (what the terminal draws). Fragments are
// derived from text and rebuilt after every mutation, since inserting or
// removing a code point can move cluster boundaries around it.
type Line struct {
	text      string
	fragments []textFragment
}

// NewLine segments text into grapheme clusters.
func NewLine(text string) *Line {
	return &Line{
		text:      text,
		fragments: segment(text),
	}
}

func segment(text string) []textFragment {
	if text == "" {
		return nil
	}

	fragments := make([]textFragment, 0, len(text))
	offset := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		fragments = append(fragments, newFragment(cluster, offset))
		offset += len(cluster)
	}
	return fragments
}

func newFragment(cluster string, offset int) textFragment {
	fragment := textFragment{
		grapheme:  cluster,
		width:     halfWidth,
		startByte: offset,
	}

	switch w := runewidth.StringWidth(cluster); {
	case w == 0:
		fragment.replacement = replacementGlyph
	case w >= 2:
		fragment.width = fullWidth
	}
	return fragment
}

// String returns the raw text of the line.
func (l *Line) String() string {
	return l.text
}

// GraphemeCount returns the number of grapheme clusters in the line.
func (l *Line) GraphemeCount() int {
	return len(l.fragments)
}

// WidthUntil returns the number of cells taken by the first index graphemes.
// An index past the end is treated as the grapheme count.
func (l *Line) WidthUntil(index int) int {
	width := 0
	for i, fragment := range l.fragments {
		if i >= index {
			break
		}
		width += int(fragment.width)
	}
	return width
}

// Width returns the number of cells the whole line takes.
func (l *Line) Width() int {
	return l.WidthUntil(len(l.fragments))
}

// VisibleGraphemes renders the graphemes whose cells intersect [start, end).
// A grapheme only partly inside the range is drawn as an ellipsis so a wide
// character is never split in half.
func (l *Line) VisibleGraphemes(start, end int) string {
	if start >= end {
		return ""
	}

	var b strings.Builder
	pos := 0
	for _, fragment := range l.fragments {
		if pos >= end {
			break
		}
		fragmentEnd := pos + int(fragment.width)
		if fragmentEnd > start {
			switch {
			case fragmentEnd > end || pos < start:
				b.WriteString(ellipsis)
			case fragment.replacement != 0:
				b.WriteRune(fragment.replacement)
			default:
				b.WriteString(fragment.grapheme)
			}
		}
		pos = fragmentEnd
	}
	return b.String()
}

// byteOffset converts a grapheme index into a byte offset into text.
func (l *Line) byteOffset(index int) int {
	if index <= 0 {
		return 0
	}
	if index >= len(l.fragments) {
		return len(l.text)
	}
	return l.fragments[index].startByte
}

func (l *Line) setText(text string) {
	l.text = text
	l.fragments = segment(text)
}

// Insert places text before the grapheme at index.
func (l *Line) Insert(index int, text string) {
	offset := l.byteOffset(index)
	l.setText(l.text[:offset] + text + l.text[offset:])
}

// InsertChar places a single rune before the grapheme at index.
func (l *Line) InsertChar(index int, r rune) {
	l.Insert(index, string(r))
}

// Remove deletes the grapheme at index. Out of range indices are ignored.
func (l *Line) Remove(index int) {
	if index < 0 || index >= len(l.fragments) {
		return
	}
	fragment := l.fragments[index]
	end := fragment.startByte + len(fragment.grapheme)
	l.setText(l.text[:fragment.startByte] + l.text[end:])
}

// Split returns the graphemes before index and from index on as two new lines.
func (l *Line) Split(index int) (head, tail *Line) {
	offset := l.byteOffset(index)
	return NewLine(l.text[:offset]), NewLine(l.text[offset:])
}

// Append adds the text of other to the end of the line.
func (l *Line) Append(other *Line) {
	l.setText(l.text + other.text)
}
