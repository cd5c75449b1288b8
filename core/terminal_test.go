package core

import "fmt"

// fakeTerminal keeps one string per row and records every call.
type fakeTerminal struct {
	size     Size
	sizeErr  error
	titleErr error

	caret        Position
	caretVisible bool
	title        string
	screen       map[int]string
	inverted     map[int]bool
	calls        []string
	executed     int
}

func newFakeTerminal(size Size) *fakeTerminal {
	return &fakeTerminal{
		size:     size,
		screen:   make(map[int]string),
		inverted: make(map[int]bool),
	}
}

func (f *fakeTerminal) record(call string, args ...any) {
	if len(args) > 0 {
		call = fmt.Sprintf("%s%v", call, args)
	}
	f.calls = append(f.calls, call)
}

func (f *fakeTerminal) reset() {
	f.calls = nil
}

func (f *fakeTerminal) rows(n int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = f.screen[i]
	}
	return rows
}

func (f *fakeTerminal) Size() (Size, error) {
	f.record("size")
	return f.size, f.sizeErr
}

func (f *fakeTerminal) SetTitle(title string) error {
	f.record("title", title)
	if f.titleErr != nil {
		return f.titleErr
	}
	f.title = title
	return nil
}

func (f *fakeTerminal) HideCaret() error {
	f.record("hide")
	f.caretVisible = false
	return nil
}

func (f *fakeTerminal) ShowCaret() error {
	f.record("show")
	f.caretVisible = true
	return nil
}

func (f *fakeTerminal) MoveCaretTo(pos Position) error {
	f.record("move", pos.Row, pos.Col)
	f.caret = pos
	return nil
}

func (f *fakeTerminal) ClearScreen() error {
	f.record("clear-screen")
	f.screen = make(map[int]string)
	f.inverted = make(map[int]bool)
	return nil
}

func (f *fakeTerminal) ClearLine() error {
	f.record("clear-line")
	f.screen[f.caret.Row] = ""
	f.inverted[f.caret.Row] = false
	return nil
}

func (f *fakeTerminal) Print(text string) error {
	f.record("print", text)
	f.screen[f.caret.Row] += text
	return nil
}

func (f *fakeTerminal) PrintInverted(text string) error {
	f.record("print-inverted", text)
	f.screen[f.caret.Row] += text
	f.inverted[f.caret.Row] = true
	return nil
}

func (f *fakeTerminal) Execute() error {
	f.record("execute")
	f.executed++
	return nil
}
