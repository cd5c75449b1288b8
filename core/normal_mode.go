package core

import "github.com/ionut-t/vedit/internal/log"

// normalMode only reacts to system keys; text input is dropped.
type normalMode struct{}

func NewNormalMode() EditorMode { return &normalMode{} }

func (m *normalMode) Name() Mode { return NormalMode }

func (m *normalMode) Enter(e *Editor) {
	e.setMessage(EmptyMessage)
}

func (m *normalMode) Exit(e *Editor) {}

func (m *normalMode) HandleEdit(e *Editor, edit Edit) {
	log.Debug(log.CatInput, "edit ignored in normal mode", "kind", edit.Kind, "char", string(edit.Char))
}
