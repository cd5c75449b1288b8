package core

import (
	"errors"
	"fmt"
	"time"
	"unicode"

	"github.com/spf13/afero"

	"github.com/ionut-t/vedit/internal/log"
)

type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}

// Options configures an Editor.
type Options struct {
	// QuitTimes is how many quit requests on a dirty document are refused
	// before one is honoured.
	QuitTimes int
	// ResizeResetsQuit makes a resize disarm a pending quit confirmation.
	ResizeResetsQuit bool
	// MessageTimeout is how long a message stays in the message bar.
	MessageTimeout time.Duration

	Clipboard Clipboard // optional
	Fs        afero.Fs  // defaults to the host filesystem
	Now       func() time.Time
}

func DefaultOptions() Options {
	return Options{
		QuitTimes:      1,
		MessageTimeout: 5 * time.Second,
	}
}

// Editor is a single editing session. It owns the document, the caret and
// the UI components, and is driven by HandleEvent followed by Render.
type Editor struct {
	opts Options

	document *Document
	viewport *Viewport
	caret    Location

	currentMode EditorMode
	modes       map[Mode]EditorMode

	statusBar  *statusBar
	messageBar *messageBar
	commandBar *commandBar // nil while the prompt is closed

	size      Size
	sizeKnown bool

	title         string
	renderedTitle string

	quitCount  int
	shouldQuit bool
}

// New creates an editor with an empty untitled document in normal mode.
func New(opts Options) *Editor {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	opts.QuitTimes = max(0, opts.QuitTimes)

	e := &Editor{
		opts:       opts,
		document:   NewDocument(opts.Fs),
		viewport:   NewViewport(),
		modes:      make(map[Mode]EditorMode),
		statusBar:  newStatusBar(),
		messageBar: newMessageBar(opts.MessageTimeout, opts.Now),
	}

	e.modes[NormalMode] = NewNormalMode()
	e.modes[InsertMode] = NewInsertMode()

	e.currentMode = e.modes[NormalMode]
	e.currentMode.Enter(e)
	e.updateTitle()
	e.refreshStatus()

	return e
}

// Load opens path into the document. On failure the current document is
// kept and an error message is shown.
func (e *Editor) Load(path string) error {
	if err := e.document.Load(path); err != nil {
		log.ErrorErr(log.CatDocument, "load failed", err, "path", path)
		e.setMessage(LoadFailedMessage + path)
		return err
	}

	log.Info(log.CatDocument, "loaded", "path", path, "lines", e.document.LineCount())
	e.caret = Location{}
	e.viewport.ScrollTo(e.document, e.caret)
	e.viewport.MarkRedraw()
	e.updateTitle()
	e.refreshStatus()
	return nil
}

// HandleEvent applies one input event. Failures never escape: they end up
// in the message bar or the log.
func (e *Editor) HandleEvent(ev Event) {
	cmd, err := Classify(ev, e.context())
	switch {
	case errors.Is(err, ErrIgnoredEvent):
		return
	case err != nil:
		log.Debug(log.CatInput, "unrecognized event", "error", err)
		return
	}

	switch cmd := cmd.(type) {
	case SystemCommand:
		e.handleSystem(cmd.System)
	case MoveCommand:
		e.resetQuit()
		e.handleMove(cmd.Move)
	case EditCommand:
		e.handleEdit(cmd.Edit)
	}

	e.viewport.ScrollTo(e.document, e.caret)
	e.refreshStatus()
}

func (e *Editor) context() Context {
	return Context{
		Mode:             e.currentMode.Name(),
		CommandBarActive: e.commandBar != nil,
	}
}

func (e *Editor) handleSystem(cmd System) {
	switch cmd.Kind {
	case SystemResize:
		e.resize(cmd.Size)
		if e.opts.ResizeResetsQuit {
			e.resetQuit()
		}
	case SystemDismiss:
		e.dismiss()
	case SystemQuit:
		e.requestQuit()
	case SystemSave:
		e.resetQuit()
		_ = e.save("")
	case SystemShowCommandBar:
		e.commandBar = newCommandBar(e.barSize())
	case SystemEnterInsert:
		e.resetQuit()
		e.setMode(InsertMode)
	case SystemEnterInsertAtLineStart:
		e.resetQuit()
		e.caret.GraphemeIndex = 0
		e.setMode(InsertMode)
	case SystemCopyLine:
		e.copyLine()
	case SystemPaste:
		e.resetQuit()
		e.paste()
	case SystemPasteText:
		e.resetQuit()
		e.insertText(cmd.Text)
	}
}

func (e *Editor) dismiss() {
	switch {
	case e.commandBar != nil:
		e.closeCommandBar()
	case e.currentMode.Name() == InsertMode:
		e.resetQuit()
		e.setMode(NormalMode)
	}
}

func (e *Editor) handleMove(move Move) {
	loc := e.caret
	line := e.document.Line(loc.LineIndex)
	page := max(1, e.viewport.Size().Height-1)

	switch move {
	case MoveUp:
		loc.LineIndex--
	case MoveDown:
		loc.LineIndex++
	case MoveLeft:
		if loc.GraphemeIndex > 0 {
			loc.GraphemeIndex--
		} else if loc.LineIndex > 0 {
			loc.LineIndex--
			loc.GraphemeIndex = e.document.Line(loc.LineIndex).GraphemeCount()
		}
	case MoveRight:
		if loc.GraphemeIndex < line.GraphemeCount() {
			loc.GraphemeIndex++
		} else if loc.LineIndex < e.document.LineCount()-1 {
			loc.LineIndex++
			loc.GraphemeIndex = 0
		}
	case MovePageUp:
		loc.LineIndex -= page
	case MovePageDown:
		loc.LineIndex += page
	case MoveStartOfLine:
		loc.GraphemeIndex = 0
	case MoveEndOfLine:
		loc.GraphemeIndex = line.GraphemeCount()
	}

	e.caret = e.document.ClampLocation(loc)
}

func (e *Editor) handleEdit(edit Edit) {
	if e.commandBar != nil {
		e.editCommandBar(edit)
		return
	}
	e.currentMode.HandleEdit(e, edit)
}

func (e *Editor) editCommandBar(edit Edit) {
	switch edit.Kind {
	case EditInsert:
		e.commandBar.insert(edit.Char)
	case EditDeleteBackward:
		if !e.commandBar.deleteBackward() {
			e.closeCommandBar()
		}
	case EditInsertNewline:
		raw := e.commandBar.text()
		e.closeCommandBar()
		e.execute(ParseExCommand(raw))
	}
}

func (e *Editor) closeCommandBar() {
	e.commandBar = nil
	e.messageBar.markRedraw()
}

// execute applies a parsed ex-command.
func (e *Editor) execute(cmd ExCommand) {
	log.Debug(log.CatEditor, "ex command", "kind", cmd.Kind, "arg", cmd.Arg)

	switch cmd.Kind {
	case ExWrite:
		_ = e.save("")
	case ExWriteAs:
		_ = e.save(cmd.Arg)
	case ExQuit:
		if e.document.IsDirty() {
			log.Warn(log.CatEditor, "quit refused", "error", ErrUnsavedChanges)
			e.setMessage(UnsavedChangesMessage)
			return
		}
		e.quit()
	case ExForceQuit:
		e.quit()
	case ExWriteQuit:
		if e.save("") == nil {
			e.quit()
		}
	case ExWriteAsAndQuit:
		if e.save(cmd.Arg) == nil {
			e.quit()
		}
	case ExUnknown:
		if cmd.Arg == "" {
			return
		}
		log.Debug(log.CatEditor, "unknown ex command", "error", fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Arg))
		e.setMessage(UnknownCommandMessage + cmd.Arg)
	}
}

// save writes the document, to path when given. The error is also reported
// in the message bar.
func (e *Editor) save(path string) error {
	var err error
	if path == "" {
		err = e.document.Save()
	} else {
		err = e.document.SaveAs(path)
	}

	switch {
	case errors.Is(err, ErrNoFileName):
		e.setMessage(NoFileNameMessage)
	case err != nil:
		log.ErrorErr(log.CatDocument, "save failed", err, "path", path)
		e.setMessage(SaveFailedMessage)
	default:
		log.Info(log.CatDocument, "saved", "path", e.document.FileInfo().Path())
		e.setMessage(FileSavedMessage)
		e.updateTitle()
		// The welcome banner goes away for good after the first save.
		e.viewport.MarkRedraw()
	}
	return err
}

// requestQuit quits unless the document is dirty and the confirmation
// counter has not yet reached QuitTimes.
func (e *Editor) requestQuit() {
	if !e.document.IsDirty() || e.quitCount >= e.opts.QuitTimes {
		e.quit()
		return
	}

	e.quitCount++
	log.Warn(log.CatEditor, "quit refused", "count", e.quitCount)
	e.setMessage(quitWarning(e.opts.QuitTimes - e.quitCount + 1))
}

func (e *Editor) resetQuit() {
	if e.quitCount == 0 {
		return
	}
	e.quitCount = 0
	e.setMessage(EmptyMessage)
}

func (e *Editor) quit() {
	log.Info(log.CatEditor, "quit", "dirty", e.document.IsDirty())
	e.shouldQuit = true
}

// ForceQuit ends the session regardless of unsaved changes.
func (e *Editor) ForceQuit() {
	e.quit()
}

func (e *Editor) ShouldQuit() bool {
	return e.shouldQuit
}

func (e *Editor) copyLine() {
	if e.opts.Clipboard == nil {
		e.setMessage(CopyFailedMessage)
		log.ErrorErr(log.CatEditor, "copy failed", ErrNoClipboard)
		return
	}
	text := e.document.Line(e.caret.LineIndex).String()
	if err := e.opts.Clipboard.Write(text); err != nil {
		log.ErrorErr(log.CatEditor, "copy failed", err)
		e.setMessage(CopyFailedMessage)
		return
	}
	e.setMessage(LineCopiedMessage)
}

func (e *Editor) paste() {
	if e.currentMode.Name() != InsertMode {
		log.Debug(log.CatInput, "paste ignored in normal mode")
		return
	}
	if e.opts.Clipboard == nil {
		log.ErrorErr(log.CatEditor, "paste failed", ErrNoClipboard)
		e.setMessage(PasteFailedMessage)
		return
	}

	text, err := e.opts.Clipboard.Read()
	if err != nil {
		log.ErrorErr(log.CatEditor, "paste failed", err)
		e.setMessage(PasteFailedMessage)
		return
	}
	e.insertText(text)
}

// insertText puts pasted text into the command bar when it is open, or at
// the caret in insert mode. Normal mode drops it.
func (e *Editor) insertText(text string) {
	switch {
	case e.commandBar != nil:
		for _, r := range text {
			if !unicode.IsControl(r) {
				e.commandBar.insert(r)
			}
		}
	case e.currentMode.Name() == InsertMode:
		var err error
		e.caret, err = e.document.InsertText(e.caret, text)
		if err != nil {
			log.ErrorErr(log.CatEditor, "paste failed", err)
			e.setMessage(PasteFailedMessage)
		}
		e.viewport.MarkRedraw()
	default:
		log.Debug(log.CatInput, "paste ignored in normal mode", "length", len(text))
	}
}

func (e *Editor) setMode(name Mode) {
	mode, ok := e.modes[name]
	if !ok || mode == e.currentMode {
		return
	}

	e.currentMode.Exit(e)
	e.currentMode = mode
	e.currentMode.Enter(e)
	log.Debug(log.CatEditor, "mode changed", "mode", name)
}

func (e *Editor) setMessage(message string) {
	e.messageBar.update(message)
}

func (e *Editor) updateTitle() {
	e.title = fmt.Sprintf("%s - %s", e.document.FileInfo().Name(), Name)
}

func (e *Editor) refreshStatus() {
	e.statusBar.update(e.document.Status(e.caret), e.currentMode.Name())
}

func (e *Editor) barSize() Size {
	if e.size.Height < 2 {
		return Size{Width: e.size.Width}
	}
	return Size{Width: e.size.Width, Height: 1}
}

// resize lays out the screen: the viewport on top, then the status bar and
// the message or command bar on the last two rows.
func (e *Editor) resize(size Size) {
	e.size = size
	e.sizeKnown = true

	viewportHeight := size.Height
	if size.Height >= 2 {
		viewportHeight = size.Height - 2
	}

	bar := e.barSize()
	resizeComponent(e.statusBar, bar)
	resizeComponent(e.messageBar, bar)
	if e.commandBar != nil {
		resizeComponent(e.commandBar, bar)
	}
	e.viewport.Resize(Size{Width: size.Width, Height: viewportHeight}, e.document, e.caret)
}

// Render draws whatever changed since the last call and places the caret.
func (e *Editor) Render(term Terminal) error {
	if !e.sizeKnown {
		size, err := term.Size()
		if err != nil {
			log.ErrorErr(log.CatTerminal, "size query failed", fmt.Errorf("%w: %w", ErrTerminalSize, err))
		} else {
			e.resize(size)
		}
	}

	if err := term.HideCaret(); err != nil {
		return err
	}

	if e.shouldQuit {
		if err := term.ClearScreen(); err != nil {
			return err
		}
		if err := printRow(term, 0, "Goodbye."); err != nil {
			return err
		}
		return term.Execute()
	}

	if err := e.draw(term); err != nil {
		return err
	}

	if e.title != e.renderedTitle {
		if err := term.SetTitle(e.title); err != nil {
			log.ErrorErr(log.CatTerminal, "set title failed", err)
		} else {
			e.renderedTitle = e.title
		}
	}

	if err := term.MoveCaretTo(e.caretScreenPosition()); err != nil {
		return err
	}
	if err := term.ShowCaret(); err != nil {
		return err
	}
	return term.Execute()
}

func (e *Editor) draw(term Terminal) error {
	e.messageBar.expire()

	if err := e.viewport.Render(term, e.document); err != nil {
		return err
	}
	if e.size.Height < 2 {
		return nil
	}

	if err := renderComponent(e.statusBar, term, e.size.Height-2); err != nil {
		return err
	}
	if e.commandBar != nil {
		return renderComponent(e.commandBar, term, e.size.Height-1)
	}
	return renderComponent(e.messageBar, term, e.size.Height-1)
}

func (e *Editor) caretScreenPosition() Position {
	if e.commandBar != nil && e.size.Height >= 1 {
		return Position{Row: e.size.Height - 1, Col: e.commandBar.caretColumn()}
	}
	return e.viewport.CaretScreenPosition(e.document, e.caret)
}

func (e *Editor) Mode() Mode {
	return e.currentMode.Name()
}

func (e *Editor) Caret() Location {
	return e.caret
}

func (e *Editor) Document() *Document {
	return e.document
}

func (e *Editor) Viewport() *Viewport {
	return e.viewport
}

// Message returns the message bar text while it is visible.
func (e *Editor) Message() string {
	return e.messageBar.current()
}

func (e *Editor) CommandBarActive() bool {
	return e.commandBar != nil
}

// Title returns the terminal title the editor wants.
func (e *Editor) Title() string {
	return e.title
}
