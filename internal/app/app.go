package app

import (
	"errors"

	"github.com/atomicstack/slashpad/internal/settings"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
	Mouse       bool
	Placeholder string
	AttachDir   string
	Settings    settings.Settings
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model := NewModel(cfg)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	program := tea.NewProgram(model, opts...)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
