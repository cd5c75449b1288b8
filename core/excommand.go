package core

import "strings"

type ExKind int

const (
	ExUnknown ExKind = iota
	ExWrite
	ExWriteAs
	ExQuit
	ExForceQuit
	ExWriteQuit
	ExWriteAsAndQuit
)

// ExCommand is a parsed command bar entry. Arg holds the file name for
// ExWriteAs and ExWriteAsAndQuit and the trimmed input for ExUnknown.
type ExCommand struct {
	Kind ExKind
	Arg  string
}

// ParseExCommand reads a command bar entry such as "w notes.txt" or "q!".
func ParseExCommand(raw string) ExCommand {
	trimmed := strings.TrimSpace(raw)
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return ExCommand{Kind: ExUnknown}
	}

	arg := strings.Join(fields[1:], " ")
	switch fields[0] {
	case "w", "write":
		if arg == "" {
			return ExCommand{Kind: ExWrite}
		}
		return ExCommand{Kind: ExWriteAs, Arg: arg}
	case "q", "quit":
		return ExCommand{Kind: ExQuit}
	case "q!", "quit!":
		return ExCommand{Kind: ExForceQuit}
	case "wq", "x":
		if arg == "" {
			return ExCommand{Kind: ExWriteQuit}
		}
		return ExCommand{Kind: ExWriteAsAndQuit, Arg: arg}
	default:
		return ExCommand{Kind: ExUnknown, Arg: trimmed}
	}
}
