package core

const commandPrompt = ":"

// commandBar is the ex-command prompt. Its text lives in a Line so wide and
// combined characters are edited the same way as document text.
type commandBar struct {
	component
	value *Line
}

func newCommandBar(size Size) *commandBar {
	return &commandBar{
		component: component{size: size, redraw: true},
		value:     NewLine(""),
	}
}

func (c *commandBar) text() string {
	return c.value.String()
}

func (c *commandBar) insert(r rune) {
	c.value.InsertChar(c.value.GraphemeCount(), r)
	c.markRedraw()
}

// deleteBackward removes the last grapheme and reports false when there was
// nothing left to remove.
func (c *commandBar) deleteBackward() bool {
	count := c.value.GraphemeCount()
	if count == 0 {
		return false
	}
	c.value.Remove(count - 1)
	c.markRedraw()
	return true
}

// scroll returns the first visible cell of the value, keeping one free cell
// for the caret after the last grapheme.
func (c *commandBar) scroll() int {
	available := c.size.Width - len(commandPrompt)
	return max(0, c.value.Width()-available+1)
}

func (c *commandBar) caretColumn() int {
	return len(commandPrompt) + c.value.Width() - c.scroll()
}

func (c *commandBar) draw(term Terminal, originRow int) error {
	if c.size.Height == 0 {
		return nil
	}
	start := c.scroll()
	return printRow(term, originRow, commandPrompt+c.value.VisibleGraphemes(start, c.value.Width()))
}
