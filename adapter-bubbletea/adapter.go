package bubble_adapter

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	editor "github.com/ionut-t/vedit/core"
	"github.com/ionut-t/vedit/internal/log"
)

// tickInterval paces redraws that are not caused by input, such as a
// message bar entry expiring.
const tickInterval = time.Second

type tickMsg time.Time

// Model drives an editor.Editor from a Bubble Tea program.
type Model struct {
	editor *editor.Editor
	screen *Screen
	keys   KeyMap
	theme  Theme
}

type Option func(*Model)

// WithTheme allows setting a custom theme for the editor.
func WithTheme(theme Theme) Option {
	return func(m *Model) {
		m.theme = theme
	}
}

// WithKeyMap replaces the bindings handled by the adapter itself.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) {
		m.keys = keys
	}
}

func New(e *editor.Editor, opts ...Option) *Model {
	m := &Model{
		editor: e,
		keys:   DefaultKeyMap,
		theme:  DefaultTheme,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.screen = NewScreen(m.theme)
	return m
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Interrupt) {
			log.Info(log.CatInput, "interrupted")
			m.editor.ForceQuit()
			break
		}
		for _, ev := range convertBubbleKey(msg) {
			m.editor.HandleEvent(ev)
		}

	case tea.WindowSizeMsg:
		size := editor.Size{Width: msg.Width, Height: msg.Height}
		m.screen.SetSize(size)
		m.editor.HandleEvent(editor.ResizeEvent{Size: size})

	case tea.FocusMsg:
		m.editor.HandleEvent(editor.FocusGainedEvent{})

	case tea.BlurMsg:
		m.editor.HandleEvent(editor.FocusLostEvent{})

	case tickMsg:
		cmds = append(cmds, tick())
	}

	if err := m.editor.Render(m.screen); err != nil {
		log.ErrorErr(log.CatTerminal, "render failed", err)
	}

	if title, ok := m.screen.TakeTitle(); ok {
		cmds = append(cmds, tea.SetWindowTitle(title))
	}
	if m.editor.ShouldQuit() {
		cmds = append(cmds, tea.Quit)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	return m.screen.View()
}

// Editor returns the wrapped editor.
func (m *Model) Editor() *editor.Editor {
	return m.editor
}
