package bubble_adapter

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	editor "github.com/ionut-t/vedit/core"
)

// KeyMap holds the bindings handled by the adapter before the editor sees
// the key.
type KeyMap struct {
	// Interrupt ends the session immediately, unsaved changes or not.
	Interrupt key.Binding
}

var DefaultKeyMap = KeyMap{
	Interrupt: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "force quit"),
	),
}

var specialKeys = map[tea.KeyType]editor.KeyEvent{
	tea.KeyEnter:      {Key: editor.KeyEnter},
	tea.KeyTab:        {Key: editor.KeyTab},
	tea.KeyEsc:        {Key: editor.KeyEscape},
	tea.KeyBackspace:  {Key: editor.KeyBackspace},
	tea.KeyDelete:     {Key: editor.KeyDelete},
	tea.KeyUp:         {Key: editor.KeyUp},
	tea.KeyDown:       {Key: editor.KeyDown},
	tea.KeyLeft:       {Key: editor.KeyLeft},
	tea.KeyRight:      {Key: editor.KeyRight},
	tea.KeyHome:       {Key: editor.KeyHome},
	tea.KeyEnd:        {Key: editor.KeyEnd},
	tea.KeyPgUp:       {Key: editor.KeyPageUp},
	tea.KeyPgDown:     {Key: editor.KeyPageDown},
	tea.KeySpace:      {Rune: ' '},
	tea.KeyShiftUp:    {Key: editor.KeyUp, Modifiers: editor.ModShift},
	tea.KeyShiftDown:  {Key: editor.KeyDown, Modifiers: editor.ModShift},
	tea.KeyShiftLeft:  {Key: editor.KeyLeft, Modifiers: editor.ModShift},
	tea.KeyShiftRight: {Key: editor.KeyRight, Modifiers: editor.ModShift},
}

// newlines normalizes the line endings terminals send inside a paste.
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Convert Bubbletea key to editor events. A bracketed paste becomes a single
// PasteEvent; other rune messages carry one press per rune.
func convertBubbleKey(msg tea.KeyMsg) []editor.Event {
	if msg.Paste && msg.Type == tea.KeyRunes {
		return []editor.Event{editor.PasteEvent{Text: newlines.Replace(string(msg.Runes))}}
	}

	var mods editor.KeyModifiers
	if msg.Alt {
		mods |= editor.ModAlt
	}

	if msg.Type == tea.KeyRunes {
		events := make([]editor.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			k := editor.KeyEvent{Rune: r, Modifiers: mods}
			switch r {
			case '\n', '\r':
				k = editor.KeyEvent{Key: editor.KeyEnter}
			case '\t':
				k = editor.KeyEvent{Key: editor.KeyTab}
			}
			events = append(events, editor.KeyPressEvent{Key: k})
		}
		return events
	}

	k, ok := specialKeys[msg.Type]
	switch {
	case ok:
		k.Modifiers |= mods
	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		k = editor.KeyEvent{
			Rune:      'a' + rune(msg.Type-tea.KeyCtrlA),
			Modifiers: mods | editor.ModCtrl,
		}
	default:
		k = editor.KeyEvent{Key: editor.KeyUnknown, Modifiers: mods}
	}

	return []editor.Event{editor.KeyPressEvent{Key: k}}
}
