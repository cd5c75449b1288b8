package bubble_adapter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	editor "github.com/ionut-t/vedit/core"
)

type segment struct {
	text     string
	inverted bool
}

type frame struct {
	rows         [][]segment
	caret        editor.Position
	caretVisible bool
}

func (f frame) clone() frame {
	rows := make([][]segment, len(f.rows))
	for i, row := range f.rows {
		rows[i] = append([]segment(nil), row...)
	}
	f.rows = rows
	return f
}

// Screen implements editor.Terminal on top of Bubble Tea. Draw calls go to a
// staged frame; Execute publishes it, and View only ever shows published
// frames, so a half-drawn update is never visible.
type Screen struct {
	theme     Theme
	size      editor.Size
	sizeKnown bool

	cursor    editor.Position
	staged    frame
	committed frame

	title        string
	titlePending bool
}

func NewScreen(theme Theme) *Screen {
	return &Screen{theme: theme}
}

// SetSize records the terminal size reported by Bubble Tea. Both frames are
// reallocated, the editor redraws everything after a resize.
func (s *Screen) SetSize(size editor.Size) {
	s.size = size
	s.sizeKnown = true
	s.staged.rows = make([][]segment, max(0, size.Height))
	s.committed = s.staged.clone()
}

func (s *Screen) Size() (editor.Size, error) {
	if !s.sizeKnown {
		return editor.Size{}, fmt.Errorf("%w: no window size received yet", editor.ErrTerminalSize)
	}
	return s.size, nil
}

func (s *Screen) SetTitle(title string) error {
	s.title = title
	s.titlePending = true
	return nil
}

// TakeTitle returns the title set since the last call, if any.
func (s *Screen) TakeTitle() (string, bool) {
	if !s.titlePending {
		return "", false
	}
	s.titlePending = false
	return s.title, true
}

func (s *Screen) HideCaret() error {
	s.staged.caretVisible = false
	return nil
}

func (s *Screen) ShowCaret() error {
	s.staged.caretVisible = true
	return nil
}

func (s *Screen) MoveCaretTo(pos editor.Position) error {
	s.cursor = pos
	s.staged.caret = pos
	return nil
}

func (s *Screen) ClearScreen() error {
	for i := range s.staged.rows {
		s.staged.rows[i] = nil
	}
	return nil
}

func (s *Screen) ClearLine() error {
	if row := s.cursor.Row; row >= 0 && row < len(s.staged.rows) {
		s.staged.rows[row] = nil
	}
	return nil
}

func (s *Screen) Print(text string) error {
	s.print(text, false)
	return nil
}

func (s *Screen) PrintInverted(text string) error {
	s.print(text, true)
	return nil
}

func (s *Screen) print(text string, inverted bool) {
	row := s.cursor.Row
	if row < 0 || row >= len(s.staged.rows) {
		return
	}
	s.staged.rows[row] = append(s.staged.rows[row], segment{text: text, inverted: inverted})
	s.cursor.Col += ansi.StringWidth(text)
}

func (s *Screen) Execute() error {
	s.committed = s.staged.clone()
	return nil
}

// View renders the last executed frame.
func (s *Screen) View() string {
	rows := make([]string, len(s.committed.rows))
	for i, row := range s.committed.rows {
		caretCol := -1
		if s.committed.caretVisible && s.committed.caret.Row == i {
			caretCol = s.committed.caret.Col
		}
		rows[i] = ansi.Truncate(s.renderRow(row, caretCol), s.size.Width, "")
	}
	return strings.Join(rows, "\n")
}

func (s *Screen) style(seg segment, text string) string {
	if seg.inverted {
		return s.theme.InvertedStyle.Render(text)
	}
	return s.theme.TextStyle.Render(text)
}

// renderRow styles the segments of a row and highlights the cell at
// caretCol, or nothing when caretCol is negative.
func (s *Screen) renderRow(row []segment, caretCol int) string {
	var b strings.Builder
	col := 0
	caretDrawn := caretCol < 0
	for _, seg := range row {
		if seg.text == "" {
			continue
		}
		width := ansi.StringWidth(seg.text)
		if caretDrawn || caretCol >= col+width {
			b.WriteString(s.style(seg, seg.text))
			col += width
			continue
		}

		offset := caretCol - col
		before := ansi.Truncate(seg.text, offset, "")
		cluster, after, _, _ := uniseg.FirstGraphemeClusterInString(ansi.TruncateLeft(seg.text, offset, ""), -1)
		if before != "" {
			b.WriteString(s.style(seg, before))
		}
		b.WriteString(s.theme.CaretStyle.Render(cluster))
		if after != "" {
			b.WriteString(s.style(seg, after))
		}
		caretDrawn = true
		col += width
	}

	if !caretDrawn {
		b.WriteString(strings.Repeat(" ", max(0, caretCol-col)))
		b.WriteString(s.theme.CaretStyle.Render(" "))
	}
	return b.String()
}
