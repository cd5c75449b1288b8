package core

import "path/filepath"

const noName = "[No Name]"

// FileInfo records where a document lives on disk, if anywhere.
type FileInfo struct {
	path string
}

func newFileInfo(path string) FileInfo {
	return FileInfo{path: path}
}

// Path returns the backing file path, or "" for an untitled document.
func (f FileInfo) Path() string {
	return f.path
}

func (f FileInfo) HasPath() bool {
	return f.path != ""
}

// Name is the display name: the base name of the path, or "[No Name]".
func (f FileInfo) Name() string {
	if f.path == "" {
		return noName
	}
	return filepath.Base(f.path)
}
