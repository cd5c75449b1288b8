package core

import (
	"fmt"
	"strings"
)

// --- KeyCode, KeyModifiers, Key ---

// KeyCode represents non-character keys
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Editing keys
	KeyDelete
)

// KeyModifiers represents modifier keys held during a keystroke
type KeyModifiers uint8

const (
	ModNone KeyModifiers = 0
	ModCtrl KeyModifiers = 1 << iota
	ModAlt
	ModShift
)

// KeyEvent represents a keyboard input event.
// Character keys carry their rune in Rune and KeyUnknown in Key.
type KeyEvent struct {
	Rune      rune
	Key       KeyCode
	Modifiers KeyModifiers
}

var keyNames = map[KeyCode]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyEscape:    "Escape",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyDelete:    "Delete",
	KeyUnknown:   "Unknown",
}

// String returns a string representation of a Key, e.g. "Ctrl+q" or "Shift+Up".
func (k KeyEvent) String() string {
	var parts []string

	if k.Modifiers&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if k.Modifiers&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if k.Modifiers&ModShift != 0 {
		parts = append(parts, "Shift")
	}

	switch name, ok := keyNames[k.Key]; {
	case k.Key != KeyUnknown && ok:
		parts = append(parts, name)
	case k.Rune != 0:
		parts = append(parts, string(k.Rune))
	case ok:
		parts = append(parts, name)
	default:
		parts = append(parts, fmt.Sprintf("SpecialKey(%d)", k.Key))
	}

	return strings.Join(parts, "+")
}

// hasOnly reports whether exactly the given modifiers are held.
func (k KeyEvent) hasOnly(mods KeyModifiers) bool {
	return k.Modifiers == mods
}

// --- Events ---

// Event is an input event delivered by the terminal collaborator.
// The concrete types are KeyPressEvent, KeyReleaseEvent, ResizeEvent,
// PasteEvent, FocusGainedEvent and FocusLostEvent.
type Event interface {
	event()
}

type KeyPressEvent struct {
	Key KeyEvent
}

type KeyReleaseEvent struct {
	Key KeyEvent
}

// ResizeEvent carries the new terminal size in cells.
type ResizeEvent struct {
	Size Size
}

// PasteEvent carries text pasted into the terminal in one piece.
type PasteEvent struct {
	Text string
}

type FocusGainedEvent struct{}

type FocusLostEvent struct{}

func (KeyPressEvent) event()    {}
func (KeyReleaseEvent) event()  {}
func (ResizeEvent) event()      {}
func (PasteEvent) event()       {}
func (FocusGainedEvent) event() {}
func (FocusLostEvent) event()   {}

// Press is shorthand for a KeyPressEvent of a plain character.
func Press(r rune) KeyPressEvent {
	return KeyPressEvent{Key: KeyEvent{Rune: r}}
}

// PressKey is shorthand for a KeyPressEvent of a special key.
func PressKey(code KeyCode) KeyPressEvent {
	return KeyPressEvent{Key: KeyEvent{Key: code}}
}

// PressCtrl is shorthand for a KeyPressEvent of Ctrl plus a character.
func PressCtrl(r rune) KeyPressEvent {
	return KeyPressEvent{Key: KeyEvent{Rune: r, Modifiers: ModCtrl}}
}
