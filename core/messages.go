package core

import "fmt"

var (
	EmptyMessage          = ""
	InsertModeMessage     = "-- INSERT --"
	FileSavedMessage      = "File saved successfully."
	SaveFailedMessage     = "ERR: Error writing file!"
	LoadFailedMessage     = "ERR: Could not open file: "
	NoFileNameMessage     = "ERR: No file name (use :w <file>)"
	UnsavedChangesMessage = "ERR: Unsaved changes (use :q! to override)"
	UnknownCommandMessage = "ERR: Not an editor command: "
	LineCopiedMessage     = "Line copied"
	CopyFailedMessage     = "ERR: Could not copy line"
	PasteFailedMessage    = "ERR: Could not paste"
)

// quitWarning is shown when a quit request on a dirty document is refused.
func quitWarning(remaining int) string {
	return fmt.Sprintf("WARNING! File has unsaved changes. Press Ctrl-Q %d more times to quit.", remaining)
}
