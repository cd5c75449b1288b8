package core

// State is a read-only snapshot of an editing session.
type State struct {
	Mode             Mode
	CommandBarActive bool
	CommandLine      string // Text typed into the command bar
	Message          string // Visible message bar text
	Caret            Location
	Offset           Position // Viewport offset: first line and first cell
	Status           DocumentStatus
	QuitCount        int // Refused quit requests since the last action
	Quit             bool
}

// State captures the current session state.
func (e *Editor) State() State {
	state := State{
		Mode:             e.currentMode.Name(),
		CommandBarActive: e.commandBar != nil,
		Message:          e.messageBar.current(),
		Caret:            e.caret,
		Offset:           e.viewport.Offset(),
		Status:           e.document.Status(e.caret),
		QuitCount:        e.quitCount,
		Quit:             e.shouldQuit,
	}
	if e.commandBar != nil {
		state.CommandLine = e.commandBar.text()
	}
	return state
}
