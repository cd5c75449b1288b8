package core

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

type statusBar struct {
	component
	status DocumentStatus
	mode   Mode
}

func newStatusBar() *statusBar {
	return &statusBar{component: component{redraw: true}, mode: NormalMode}
}

func (s *statusBar) update(status DocumentStatus, mode Mode) {
	if status == s.status && mode == s.mode {
		return
	}
	s.status = status
	s.mode = mode
	s.markRedraw()
}

func (s *statusBar) text() string {
	width := s.size.Width
	left := strings.TrimSpace(fmt.Sprintf("%s - %s %s",
		s.status.FileName, s.status.LineCountString(), s.status.ModifiedIndicator()))
	right := fmt.Sprintf("%s | %s", strings.ToUpper(string(s.mode)), s.status.PositionIndicator())

	leftWidth := runewidth.StringWidth(left)
	rightWidth := runewidth.StringWidth(right)
	if leftWidth+rightWidth < width {
		return left + strings.Repeat(" ", width-leftWidth-rightWidth) + right
	}
	return runewidth.FillRight(runewidth.Truncate(left, width, ""), width)
}

func (s *statusBar) draw(term Terminal, originRow int) error {
	if s.size.Height == 0 {
		return nil
	}
	return printInvertedRow(term, originRow, s.text())
}
