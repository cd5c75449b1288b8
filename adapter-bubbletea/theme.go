package bubble_adapter

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	TextStyle     lipgloss.Style
	InvertedStyle lipgloss.Style // Rows drawn with PrintInverted, i.e. the status bar
	CaretStyle    lipgloss.Style
}

var DefaultTheme = Theme{
	TextStyle:     lipgloss.NewStyle(),
	InvertedStyle: lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	CaretStyle:    lipgloss.NewStyle().Reverse(true),
}
