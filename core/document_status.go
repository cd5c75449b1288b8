package core

import "fmt"

// DocumentStatus is a snapshot of a document used by the status bar.
type DocumentStatus struct {
	TotalLines       int
	CurrentLineIndex int
	IsModified       bool
	FileName         string
}

func (s DocumentStatus) ModifiedIndicator() string {
	if s.IsModified {
		return "(modified)"
	}
	return ""
}

func (s DocumentStatus) LineCountString() string {
	return fmt.Sprintf("%d lines", s.TotalLines)
}

// PositionIndicator renders the one-based caret line over the line count.
func (s DocumentStatus) PositionIndicator() string {
	return fmt.Sprintf("%d/%d", s.CurrentLineIndex+1, s.TotalLines)
}
