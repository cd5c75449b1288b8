package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	bubble_adapter "github.com/ionut-t/vedit/adapter-bubbletea"
	"github.com/ionut-t/vedit/core"
	"github.com/ionut-t/vedit/internal/config"
	"github.com/ionut-t/vedit/internal/log"
	"github.com/ionut-t/vedit/internal/terminal"
)

// runFunc runs an interactive session for a fully set up editor.
type runFunc func(e *core.Editor) error

func newRootCmd(run runFunc) *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:          "vedit [file]",
		Short:        "A small modal text editor for the terminal",
		Version:      core.Version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			if cfg.Debug {
				cleanup, err := log.Init(cfg.LogFile)
				if err != nil {
					return fmt.Errorf("opening log file: %w", err)
				}
				defer cleanup()
			}
			log.Info(log.CatConfig, "starting",
				"version", core.Version,
				"quit_times", cfg.QuitTimes,
				"resize_resets_quit", cfg.ResizeResetsQuit,
				"message_timeout", cfg.MessageTimeout)

			opts := cfg.EditorOptions()
			opts.Clipboard = &bubble_adapter.SystemClipboard{}
			e := core.New(opts)

			// A file that cannot be opened is reported inside the editor.
			if len(args) == 1 {
				_ = e.Load(args[0])
			}

			return run(e)
		},
	}

	config.RegisterFlags(cmd.Flags())
	cobra.CheckErr(config.BindFlags(v, cmd.Flags()))
	return cmd
}

func runProgram(e *core.Editor) error {
	// Warms lipgloss's cached background color. The answer is read from
	// stdin, so it has to arrive before Bubble Tea takes stdin over.
	_ = lipgloss.HasDarkBackground()

	return terminal.Guard(func() error {
		p := tea.NewProgram(
			bubble_adapter.New(e),
			tea.WithAltScreen(),
			tea.WithReportFocus(),
		)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running program: %w", err)
		}
		return nil
	})
}
