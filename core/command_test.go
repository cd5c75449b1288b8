package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	ctxNormal     = Context{Mode: NormalMode}
	ctxInsert     = Context{Mode: InsertMode}
	ctxCommandBar = Context{Mode: NormalMode, CommandBarActive: true}
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		ctx   Context
		want  Command
	}{
		{"escape dismisses", PressKey(KeyEscape), ctxInsert, SystemCommand{System{Kind: SystemDismiss}}},
		{"ctrl+q quits", PressCtrl('q'), ctxInsert, SystemCommand{System{Kind: SystemQuit}}},
		{"ctrl+s saves", PressCtrl('s'), ctxNormal, SystemCommand{System{Kind: SystemSave}}},
		{"ctrl+y copies", PressCtrl('y'), ctxNormal, SystemCommand{System{Kind: SystemCopyLine}}},
		{"ctrl+v pastes", PressCtrl('v'), ctxInsert, SystemCommand{System{Kind: SystemPaste}}},
		{"colon opens command bar", Press(':'), ctxNormal, SystemCommand{System{Kind: SystemShowCommandBar}}},
		{"i enters insert", Press('i'), ctxNormal, SystemCommand{System{Kind: SystemEnterInsert}}},
		{"I enters insert at line start", Press('I'), ctxNormal, SystemCommand{System{Kind: SystemEnterInsertAtLineStart}}},
		{"i in insert mode is text", Press('i'), ctxInsert, EditCommand{Edit{Kind: EditInsert, Char: 'i'}}},
		{"colon in insert mode is text", Press(':'), ctxInsert, EditCommand{Edit{Kind: EditInsert, Char: ':'}}},
		{"printable in normal mode is still an edit", Press('x'), ctxNormal, EditCommand{Edit{Kind: EditInsert, Char: 'x'}}},
		{"shifted rune", KeyPressEvent{Key: KeyEvent{Rune: 'X', Modifiers: ModShift}}, ctxInsert, EditCommand{Edit{Kind: EditInsert, Char: 'X'}}},
		{"arrow moves", PressKey(KeyUp), ctxInsert, MoveCommand{Move: MoveUp}},
		{"home", PressKey(KeyHome), ctxNormal, MoveCommand{Move: MoveStartOfLine}},
		{"end", PressKey(KeyEnd), ctxNormal, MoveCommand{Move: MoveEndOfLine}},
		{"page down", PressKey(KeyPageDown), ctxNormal, MoveCommand{Move: MovePageDown}},
		{"tab inserts tab", PressKey(KeyTab), ctxInsert, EditCommand{Edit{Kind: EditInsert, Char: '\t'}}},
		{"enter", PressKey(KeyEnter), ctxInsert, EditCommand{Edit{Kind: EditInsertNewline}}},
		{"backspace", PressKey(KeyBackspace), ctxInsert, EditCommand{Edit{Kind: EditDeleteBackward}}},
		{"delete", PressKey(KeyDelete), ctxInsert, EditCommand{Edit{Kind: EditDelete}}},
		{"resize", ResizeEvent{Size: Size{Width: 80, Height: 24}}, ctxCommandBar, SystemCommand{System{Kind: SystemResize, Size: Size{Width: 80, Height: 24}}}},
		{"command bar captures colon", Press(':'), ctxCommandBar, EditCommand{Edit{Kind: EditInsert, Char: ':'}}},
		{"command bar captures i", Press('i'), ctxCommandBar, EditCommand{Edit{Kind: EditInsert, Char: 'i'}}},
		{"command bar escape", PressKey(KeyEscape), ctxCommandBar, SystemCommand{System{Kind: SystemDismiss}}},
		{"command bar enter", PressKey(KeyEnter), ctxCommandBar, EditCommand{Edit{Kind: EditInsertNewline}}},
		{"paste", PasteEvent{Text: "a\nb"}, ctxNormal, SystemCommand{System{Kind: SystemPasteText, Text: "a\nb"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.event, tt.ctx)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_Unsupported(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		ctx   Context
	}{
		{"arrow in command bar", PressKey(KeyLeft), ctxCommandBar},
		{"ctrl+q in command bar", PressCtrl('q'), ctxCommandBar},
		{"ctrl+s in command bar", PressCtrl('s'), ctxCommandBar},
		{"unbound ctrl key", PressCtrl('k'), ctxInsert},
		{"alt rune", KeyPressEvent{Key: KeyEvent{Rune: 'a', Modifiers: ModAlt}}, ctxInsert},
		{"shift arrow", KeyPressEvent{Key: KeyEvent{Key: KeyUp, Modifiers: ModShift}}, ctxNormal},
		{"control rune", Press('\x07'), ctxInsert},
		{"unknown key", PressKey(KeyUnknown), ctxInsert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.event, tt.ctx)
			require.ErrorIs(t, err, ErrUnsupportedKey)
		})
	}
}

func TestClassify_IgnoredEvents(t *testing.T) {
	for _, ev := range []Event{
		KeyReleaseEvent{Key: KeyEvent{Rune: 'a'}},
		FocusGainedEvent{},
		FocusLostEvent{},
	} {
		_, err := Classify(ev, ctxNormal)
		require.ErrorIs(t, err, ErrIgnoredEvent)
	}
}

func TestKeyEvent_String(t *testing.T) {
	require.Equal(t, "Ctrl+q", KeyEvent{Rune: 'q', Modifiers: ModCtrl}.String())
	require.Equal(t, "Shift+Up", KeyEvent{Key: KeyUp, Modifiers: ModShift}.String())
	require.Equal(t, "a", KeyEvent{Rune: 'a'}.String())
	require.Equal(t, "Unknown", KeyEvent{}.String())
}
