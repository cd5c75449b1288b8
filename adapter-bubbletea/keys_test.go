package bubble_adapter

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	editor "github.com/ionut-t/vedit/core"
)

func TestConvertBubbleKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []editor.Event
	}{
		{
			name: "rune",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}},
			want: []editor.Event{editor.Press('x')},
		},
		{
			name: "alt rune",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
			want: []editor.Event{editor.KeyPressEvent{Key: editor.KeyEvent{Rune: 'x', Modifiers: editor.ModAlt}}},
		},
		{
			name: "runes without paste",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\n\tb")},
			want: []editor.Event{
				editor.Press('a'),
				editor.PressKey(editor.KeyEnter),
				editor.PressKey(editor.KeyTab),
				editor.Press('b'),
			},
		},
		{
			name: "paste",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\n\tb"), Paste: true},
			want: []editor.Event{editor.PasteEvent{Text: "a\n\tb"}},
		},
		{
			name: "paste with carriage returns",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("one\r\ntwo\rthree"), Paste: true},
			want: []editor.Event{editor.PasteEvent{Text: "one\ntwo\nthree"}},
		},
		{
			name: "space",
			msg:  tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
			want: []editor.Event{editor.Press(' ')},
		},
		{
			name: "enter",
			msg:  tea.KeyMsg{Type: tea.KeyEnter},
			want: []editor.Event{editor.PressKey(editor.KeyEnter)},
		},
		{
			name: "escape",
			msg:  tea.KeyMsg{Type: tea.KeyEsc},
			want: []editor.Event{editor.PressKey(editor.KeyEscape)},
		},
		{
			name: "page down",
			msg:  tea.KeyMsg{Type: tea.KeyPgDown},
			want: []editor.Event{editor.PressKey(editor.KeyPageDown)},
		},
		{
			name: "shift arrow",
			msg:  tea.KeyMsg{Type: tea.KeyShiftUp},
			want: []editor.Event{editor.KeyPressEvent{Key: editor.KeyEvent{Key: editor.KeyUp, Modifiers: editor.ModShift}}},
		},
		{
			name: "ctrl letter",
			msg:  tea.KeyMsg{Type: tea.KeyCtrlS},
			want: []editor.Event{editor.PressCtrl('s')},
		},
		{
			name: "ctrl q",
			msg:  tea.KeyMsg{Type: tea.KeyCtrlQ},
			want: []editor.Event{editor.PressCtrl('q')},
		},
		{
			name: "unmapped",
			msg:  tea.KeyMsg{Type: tea.KeyF5},
			want: []editor.Event{editor.PressKey(editor.KeyUnknown)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, convertBubbleKey(tt.msg))
		})
	}
}
