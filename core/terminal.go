package core

// Position is a zero-indexed screen cell.
type Position struct {
	Row int
	Col int
}

// Size is a width/height pair in terminal cells.
type Size struct {
	Width  int
	Height int
}

// Terminal is the output side of the terminal collaborator.
//
// Draw operations are batched: nothing is required to reach the screen until
// Execute is called, and Execute presents the batch atomically. Entering and
// leaving raw mode is owned by whoever runs the event loop, not by the editor.
type Terminal interface {
	Size() (Size, error)
	SetTitle(title string) error
	HideCaret() error
	ShowCaret() error
	MoveCaretTo(pos Position) error
	ClearScreen() error
	ClearLine() error
	Print(text string) error
	PrintInverted(text string) error
	Execute() error
}

func printRow(term Terminal, row int, text string) error {
	if err := term.MoveCaretTo(Position{Row: row}); err != nil {
		return err
	}
	if err := term.ClearLine(); err != nil {
		return err
	}
	return term.Print(text)
}

func printInvertedRow(term Terminal, row int, text string) error {
	if err := term.MoveCaretTo(Position{Row: row}); err != nil {
		return err
	}
	if err := term.ClearLine(); err != nil {
		return err
	}
	return term.PrintInverted(text)
}
