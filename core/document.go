package core

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Location addresses a grapheme in a document.
type Location struct {
	LineIndex     int
	GraphemeIndex int
}

// Document is an ordered list of lines backed by an optional file.
// It always holds at least one line.
type Document struct {
	fs       afero.Fs
	lines    []*Line
	fileInfo FileInfo
	dirty    bool
	pristine bool
}

// NewDocument returns an empty untitled document that reads and writes
// through fs. A nil fs means the host filesystem.
func NewDocument(fs afero.Fs) *Document {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Document{
		fs:       fs,
		lines:    []*Line{NewLine("")},
		pristine: true,
	}
}

func splitLines(content string) []*Line {
	parts := strings.Split(content, "\n")
	lines := make([]*Line, len(parts))
	for i, part := range parts {
		lines[i] = NewLine(part)
	}
	return lines
}

// Load replaces the content with the file at path. On failure the document
// is left untouched.
func (d *Document) Load(path string) error {
	data, err := afero.ReadFile(d.fs, path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	d.lines = splitLines(string(data))
	d.fileInfo = newFileInfo(path)
	d.dirty = false
	d.pristine = false
	return nil
}

// Save writes the document to its backing file.
func (d *Document) Save() error {
	if !d.fileInfo.HasPath() {
		return ErrNoFileName
	}
	return d.write(d.fileInfo.Path())
}

// SaveAs writes the document to path and adopts it as the backing file.
func (d *Document) SaveAs(path string) error {
	if path == "" {
		return ErrNoFileName
	}
	if err := d.write(path); err != nil {
		return err
	}
	d.fileInfo = newFileInfo(path)
	return nil
}

func (d *Document) write(path string) error {
	if err := afero.WriteFile(d.fs, path, []byte(d.Content()), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	d.dirty = false
	d.pristine = false
	return nil
}

// Content joins all lines with a line feed.
func (d *Document) Content() string {
	texts := make([]string, len(d.lines))
	for i, line := range d.lines {
		texts[i] = line.String()
	}
	return strings.Join(texts, "\n")
}

func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the line at index, or nil when out of range.
func (d *Document) Line(index int) *Line {
	if index < 0 || index >= len(d.lines) {
		return nil
	}
	return d.lines[index]
}

func (d *Document) IsDirty() bool {
	return d.dirty
}

// IsPristine reports whether the document was never edited, loaded or saved.
func (d *Document) IsPristine() bool {
	return d.pristine
}

func (d *Document) FileInfo() FileInfo {
	return d.fileInfo
}

func (d *Document) validate(loc Location) error {
	line := d.Line(loc.LineIndex)
	if line == nil || loc.GraphemeIndex < 0 || loc.GraphemeIndex > line.GraphemeCount() {
		return fmt.Errorf("%w: %d:%d", ErrInvalidLocation, loc.LineIndex, loc.GraphemeIndex)
	}
	return nil
}

// ClampLocation pulls loc back inside the document.
func (d *Document) ClampLocation(loc Location) Location {
	loc.LineIndex = max(0, min(loc.LineIndex, len(d.lines)-1))
	loc.GraphemeIndex = max(0, min(loc.GraphemeIndex, d.lines[loc.LineIndex].GraphemeCount()))
	return loc
}

func (d *Document) touch() {
	d.dirty = true
	d.pristine = false
}

// InsertChar inserts r at loc and returns the caret location after it.
// A line feed splits the line and moves to the start of the new one.
func (d *Document) InsertChar(loc Location, r rune) (Location, error) {
	if err := d.validate(loc); err != nil {
		return loc, err
	}

	line := d.lines[loc.LineIndex]
	if r == '\n' {
		head, tail := line.Split(loc.GraphemeIndex)
		d.lines[loc.LineIndex] = head
		d.lines = append(d.lines[:loc.LineIndex+1], append([]*Line{tail}, d.lines[loc.LineIndex+1:]...)...)
		d.touch()
		return Location{LineIndex: loc.LineIndex + 1}, nil
	}

	before := line.GraphemeCount()
	line.InsertChar(loc.GraphemeIndex, r)
	// A combining code point joins its neighbour instead of adding a grapheme.
	loc.GraphemeIndex += max(0, line.GraphemeCount()-before)
	d.touch()
	return loc, nil
}

// InsertText inserts text rune by rune starting at loc.
func (d *Document) InsertText(loc Location, text string) (Location, error) {
	for _, r := range text {
		var err error
		if loc, err = d.InsertChar(loc, r); err != nil {
			return loc, err
		}
	}
	return loc, nil
}

// DeleteBackward removes the grapheme before loc, joining with the previous
// line at a line start. It is a no-op at the start of the document.
func (d *Document) DeleteBackward(loc Location) (Location, error) {
	if err := d.validate(loc); err != nil {
		return loc, err
	}

	switch {
	case loc.GraphemeIndex > 0:
		d.lines[loc.LineIndex].Remove(loc.GraphemeIndex - 1)
		loc.GraphemeIndex--
	case loc.LineIndex > 0:
		prev := d.lines[loc.LineIndex-1]
		boundary := prev.GraphemeCount()
		d.join(loc.LineIndex - 1)
		loc = Location{LineIndex: loc.LineIndex - 1, GraphemeIndex: boundary}
	default:
		return loc, nil
	}

	d.touch()
	return d.ClampLocation(loc), nil
}

// DeleteForward removes the grapheme at loc, joining with the next line at a
// line end. It is a no-op at the end of the document.
func (d *Document) DeleteForward(loc Location) (Location, error) {
	if err := d.validate(loc); err != nil {
		return loc, err
	}

	switch line := d.lines[loc.LineIndex]; {
	case loc.GraphemeIndex < line.GraphemeCount():
		line.Remove(loc.GraphemeIndex)
	case loc.LineIndex < len(d.lines)-1:
		d.join(loc.LineIndex)
	default:
		return loc, nil
	}

	d.touch()
	return d.ClampLocation(loc), nil
}

// join appends the line after index to it and drops the former.
func (d *Document) join(index int) {
	d.lines[index].Append(d.lines[index+1])
	d.lines = append(d.lines[:index+1], d.lines[index+2:]...)
}

// Status snapshots the document for the line under loc.
func (d *Document) Status(loc Location) DocumentStatus {
	return DocumentStatus{
		TotalLines:       len(d.lines),
		CurrentLineIndex: loc.LineIndex,
		IsModified:       d.dirty,
		FileName:         d.fileInfo.Name(),
	}
}
