package core

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	Name    = "vedit"
	Version = "0.1.0"

	fillerMarker = "~"
	helpMessage  = "Ctrl-Q to quit | Ctrl-S to save | : for commands"
)

// Viewport is the window of the document that fits on screen. Offset.Row is
// the first visible line and Offset.Col the first visible cell. It never
// holds on to the document; callers pass it in for every query.
type Viewport struct {
	size   Size
	offset Position
	redraw bool
}

func NewViewport() *Viewport {
	return &Viewport{redraw: true}
}

func (v *Viewport) Size() Size {
	return v.size
}

func (v *Viewport) Offset() Position {
	return v.offset
}

func (v *Viewport) RequiresRedraw() bool {
	return v.redraw
}

func (v *Viewport) MarkRedraw() {
	v.redraw = true
}

// Resize sets the window dimensions and scrolls so caret stays visible.
func (v *Viewport) Resize(size Size, doc *Document, caret Location) {
	v.size = Size{Width: max(0, size.Width), Height: max(0, size.Height)}
	v.ScrollTo(doc, caret)
	v.redraw = true
}

// ScrollTo shifts the offsets by the smallest amount that puts caret inside
// the window. A dimension of zero leaves its offset alone.
func (v *Viewport) ScrollTo(doc *Document, caret Location) {
	offset := v.offset

	if height := v.size.Height; height > 0 {
		switch {
		case caret.LineIndex < offset.Row:
			offset.Row = caret.LineIndex
		case caret.LineIndex >= offset.Row+height:
			offset.Row = caret.LineIndex - height + 1
		}
	}

	if width := v.size.Width; width > 0 {
		col := caretColumn(doc, caret)
		switch {
		case col < offset.Col:
			offset.Col = col
		case col >= offset.Col+width:
			offset.Col = col - width + 1
		}
	}

	if offset != v.offset {
		v.offset = offset
		v.redraw = true
	}
}

func caretColumn(doc *Document, caret Location) int {
	line := doc.Line(caret.LineIndex)
	if line == nil {
		return 0
	}
	return line.WidthUntil(caret.GraphemeIndex)
}

// CaretScreenPosition maps caret to a cell relative to the viewport origin.
func (v *Viewport) CaretScreenPosition(doc *Document, caret Location) Position {
	return Position{
		Row: caret.LineIndex - v.offset.Row,
		Col: caretColumn(doc, caret) - v.offset.Col,
	}
}

// Render draws every visible row if a redraw was requested.
func (v *Viewport) Render(term Terminal, doc *Document) error {
	if !v.redraw {
		return nil
	}
	if err := v.draw(term, doc); err != nil {
		return err
	}
	v.redraw = false
	return nil
}

func (v *Viewport) draw(term Terminal, doc *Document) error {
	width, height := v.size.Width, v.size.Height
	bannerRow := max(0, (height-2)/2)
	showBanner := doc.IsPristine()

	for row := range height {
		var text string
		switch lineIndex := v.offset.Row + row; {
		case showBanner && row == bannerRow:
			text = centered(fmt.Sprintf("%s editor -- version %s", Name, Version), width)
		case showBanner && row == bannerRow+1:
			text = centered(helpMessage, width)
		case lineIndex < doc.LineCount():
			text = doc.Line(lineIndex).VisibleGraphemes(v.offset.Col, v.offset.Col+width)
		default:
			text = fillerMarker
		}
		if err := printRow(term, row, text); err != nil {
			return err
		}
	}
	return nil
}

// centered pads message to the middle of width, keeping the filler marker in
// the first column.
func centered(message string, width int) string {
	padding := 0
	if w := runewidth.StringWidth(message); w < width {
		padding = (width - w) / 2
	}
	text := fillerMarker + strings.Repeat(" ", max(0, padding-1)) + message
	return runewidth.Truncate(text, width, "")
}
