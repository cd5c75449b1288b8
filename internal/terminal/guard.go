// Package terminal wraps the editor's event loop so the terminal is always
// handed back in a usable state, even when the loop panics.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"golang.org/x/term"

	"github.com/ionut-t/vedit/internal/log"
)

// restoreSequence disables bracketed paste, shows the cursor and leaves the
// alternate screen.
const restoreSequence = "\x1b[?2004l\x1b[?25h\x1b[?1049l"

// PanicError is returned by Guard when the guarded function panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
}

// Guard runs fn against stdin/stdout. See GuardWith.
func Guard(fn func() error) error {
	return GuardWith(int(os.Stdin.Fd()), os.Stdout, fn)
}

// GuardWith snapshots the state of the terminal behind fd (when it is one),
// runs fn, and on every exit path restores that state and writes the reset
// sequence to out. A panic in fn is recovered and returned as *PanicError.
func GuardWith(fd int, out io.Writer, fn func() error) (err error) {
	var state *term.State
	if term.IsTerminal(fd) {
		state, err = term.GetState(fd)
		if err != nil {
			return fmt.Errorf("snapshot terminal state: %w", err)
		}
	}

	defer func() {
		if r := recover(); r != nil {
			perr := &PanicError{Value: r, Stack: debug.Stack()}
			log.Error(log.CatTerminal, "event loop panicked", "panic", r)
			err = perr
		}
		err = errors.Join(err, restore(fd, state, out))
	}()

	return fn()
}

func restore(fd int, state *term.State, out io.Writer) error {
	var errs []error
	if state != nil {
		if err := term.Restore(fd, state); err != nil {
			errs = append(errs, fmt.Errorf("restore terminal state: %w", err))
		}
	}
	if out != nil {
		if _, err := io.WriteString(out, restoreSequence); err != nil {
			errs = append(errs, fmt.Errorf("reset terminal: %w", err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		log.ErrorErr(log.CatTerminal, "terminal restore failed", err)
		return err
	}
	return nil
}
