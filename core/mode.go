package core

type Mode string

const (
	NormalMode Mode = "normal"
	InsertMode Mode = "insert"
)

// EditorMode decides what the editor does with edit commands.
type EditorMode interface {
	Name() Mode
	Enter(e *Editor) // Called when entering the mode
	Exit(e *Editor)  // Called when exiting the mode
	HandleEdit(e *Editor, edit Edit)
}
