package core

import (
	"fmt"
	"unicode"
)

// Move is a caret movement.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
	MovePageUp
	MovePageDown
	MoveStartOfLine
	MoveEndOfLine
)

type EditKind int

const (
	EditInsert EditKind = iota
	EditInsertNewline
	EditDelete
	EditDeleteBackward
)

// Edit is a text mutation. Char is only set for EditInsert.
type Edit struct {
	Kind EditKind
	Char rune
}

type SystemKind int

const (
	SystemResize SystemKind = iota
	SystemDismiss
	SystemQuit
	SystemSave
	SystemShowCommandBar
	SystemEnterInsert
	SystemEnterInsertAtLineStart
	SystemCopyLine
	SystemPaste
	SystemPasteText
)

// System is an editor-level action. Size is only set for SystemResize and
// Text only for SystemPasteText.
type System struct {
	Kind SystemKind
	Size Size
	Text string
}

// Command is one of MoveCommand, EditCommand or SystemCommand.
type Command interface {
	command()
}

type MoveCommand struct {
	Move Move
}

type EditCommand struct {
	Edit Edit
}

type SystemCommand struct {
	System System
}

func (MoveCommand) command()   {}
func (EditCommand) command()   {}
func (SystemCommand) command() {}

// Context is the part of the editor state that changes how keys are read.
type Context struct {
	Mode             Mode
	CommandBarActive bool
}

type classifier func(key KeyEvent, ctx Context) (Command, bool)

// Earlier classifiers win.
var classifiers = []classifier{
	classifySystem,
	classifyMove,
	classifyEdit,
}

// Classify turns an input event into a command. Release and focus events
// yield ErrIgnoredEvent, keys without a meaning yield ErrUnsupportedKey.
func Classify(ev Event, ctx Context) (Command, error) {
	switch ev := ev.(type) {
	case ResizeEvent:
		return SystemCommand{System{Kind: SystemResize, Size: ev.Size}}, nil
	case PasteEvent:
		return SystemCommand{System{Kind: SystemPasteText, Text: ev.Text}}, nil
	case KeyPressEvent:
		for _, classify := range classifiers {
			if cmd, ok := classify(ev.Key, ctx); ok {
				return cmd, nil
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKey, ev.Key)
	default:
		return nil, fmt.Errorf("%w: %T", ErrIgnoredEvent, ev)
	}
}

func system(kind SystemKind) (Command, bool) {
	return SystemCommand{System{Kind: kind}}, true
}

func classifySystem(key KeyEvent, ctx Context) (Command, bool) {
	if key.Key == KeyEscape && key.hasOnly(ModNone) {
		return system(SystemDismiss)
	}
	if ctx.CommandBarActive {
		return nil, false
	}

	if key.hasOnly(ModCtrl) {
		switch unicode.ToLower(key.Rune) {
		case 'q':
			return system(SystemQuit)
		case 's':
			return system(SystemSave)
		case 'y':
			return system(SystemCopyLine)
		case 'v':
			return system(SystemPaste)
		}
		return nil, false
	}

	if ctx.Mode != NormalMode || key.Key != KeyUnknown {
		return nil, false
	}
	if !key.hasOnly(ModNone) && !key.hasOnly(ModShift) {
		return nil, false
	}
	switch key.Rune {
	case ':':
		return system(SystemShowCommandBar)
	case 'i':
		return system(SystemEnterInsert)
	case 'I':
		return system(SystemEnterInsertAtLineStart)
	}
	return nil, false
}

var moveKeys = map[KeyCode]Move{
	KeyUp:       MoveUp,
	KeyDown:     MoveDown,
	KeyLeft:     MoveLeft,
	KeyRight:    MoveRight,
	KeyPageUp:   MovePageUp,
	KeyPageDown: MovePageDown,
	KeyHome:     MoveStartOfLine,
	KeyEnd:      MoveEndOfLine,
}

func classifyMove(key KeyEvent, ctx Context) (Command, bool) {
	if ctx.CommandBarActive || !key.hasOnly(ModNone) {
		return nil, false
	}
	move, ok := moveKeys[key.Key]
	if !ok {
		return nil, false
	}
	return MoveCommand{Move: move}, true
}

func edit(kind EditKind, r rune) (Command, bool) {
	return EditCommand{Edit{Kind: kind, Char: r}}, true
}

func classifyEdit(key KeyEvent, _ Context) (Command, bool) {
	if key.Key == KeyUnknown {
		if key.Rune == 0 || unicode.IsControl(key.Rune) {
			return nil, false
		}
		if key.hasOnly(ModNone) || key.hasOnly(ModShift) {
			return edit(EditInsert, key.Rune)
		}
		return nil, false
	}

	if !key.hasOnly(ModNone) {
		return nil, false
	}
	switch key.Key {
	case KeyTab:
		return edit(EditInsert, '\t')
	case KeyEnter:
		return edit(EditInsertNewline, 0)
	case KeyBackspace:
		return edit(EditDeleteBackward, 0)
	case KeyDelete:
		return edit(EditDelete, 0)
	}
	return nil, false
}
