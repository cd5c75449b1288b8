package core

import "github.com/ionut-t/vedit/internal/log"

type insertMode struct{}

func NewInsertMode() EditorMode { return &insertMode{} }

func (m *insertMode) Name() Mode { return InsertMode }

func (m *insertMode) Enter(e *Editor) {
	e.setMessage(InsertModeMessage)
}

func (m *insertMode) Exit(e *Editor) {}

func (m *insertMode) HandleEdit(e *Editor, edit Edit) {
	e.resetQuit()

	caret := e.caret
	var err error
	switch edit.Kind {
	case EditInsert:
		caret, err = e.document.InsertChar(caret, edit.Char)
	case EditInsertNewline:
		caret, err = e.document.InsertChar(caret, '\n')
	case EditDelete:
		caret, err = e.document.DeleteForward(caret)
	case EditDeleteBackward:
		caret, err = e.document.DeleteBackward(caret)
	}
	if err != nil {
		log.ErrorErr(log.CatEditor, "edit failed", err, "kind", edit.Kind)
		return
	}

	e.caret = caret
	e.viewport.MarkRedraw()
}
