package core

// uiComponent is a screen region that redraws only when marked.
type uiComponent interface {
	setSize(size Size)
	requiresRedraw() bool
	setRequiresRedraw(redraw bool)
	draw(term Terminal, originRow int) error
}

// component holds the state shared by every uiComponent.
type component struct {
	size   Size
	redraw bool
}

func (c *component) setSize(size Size) {
	c.size = size
}

func (c *component) requiresRedraw() bool {
	return c.redraw
}

func (c *component) setRequiresRedraw(redraw bool) {
	c.redraw = redraw
}

func (c *component) markRedraw() {
	c.redraw = true
}

func resizeComponent(c uiComponent, size Size) {
	c.setSize(size)
	c.setRequiresRedraw(true)
}

// renderComponent draws c at originRow if it is marked and clears the mark
// once the draw succeeded.
func renderComponent(c uiComponent, term Terminal, originRow int) error {
	if !c.requiresRedraw() {
		return nil
	}
	if err := c.draw(term, originRow); err != nil {
		return err
	}
	c.setRequiresRedraw(false)
	return nil
}
