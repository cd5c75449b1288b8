package core

import "errors"

var (
	ErrNoFileName      = errors.New("no file name")
	ErrInvalidLocation = errors.New("invalid location")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrTerminalSize    = errors.New("terminal size unavailable")
	ErrUnsavedChanges  = errors.New("unsaved changes")
	ErrIgnoredEvent    = errors.New("ignored event")
	ErrUnsupportedKey  = errors.New("unsupported key")
	ErrNoClipboard     = errors.New("clipboard handler not set")
)
