package core

import (
	"time"

	"github.com/mattn/go-runewidth"
)

// messageBar shows a transient message that disappears after timeout.
type messageBar struct {
	component
	message string
	setAt   time.Time
	expired bool
	timeout time.Duration
	now     func() time.Time
}

func newMessageBar(timeout time.Duration, now func() time.Time) *messageBar {
	return &messageBar{
		component: component{redraw: true},
		timeout:   timeout,
		now:       now,
		expired:   true,
	}
}

func (m *messageBar) update(message string) {
	m.message = message
	m.setAt = m.now()
	m.expired = false
	m.markRedraw()
}

// current returns the message while it is still visible.
func (m *messageBar) current() string {
	if m.expired {
		return ""
	}
	return m.message
}

// expire hides the message once it is older than the timeout.
func (m *messageBar) expire() {
	if m.expired || m.timeout <= 0 {
		return
	}
	if m.now().Sub(m.setAt) > m.timeout {
		m.expired = true
		m.markRedraw()
	}
}

func (m *messageBar) draw(term Terminal, originRow int) error {
	if m.size.Height == 0 {
		return nil
	}
	return printRow(term, originRow, runewidth.Truncate(m.current(), m.size.Width, ""))
}
