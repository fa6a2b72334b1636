package tui

import (
	"postboard/internal/board"
	"postboard/internal/loader"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

type Options struct {
	Loader   *loader.Loader
	IDPolicy board.IDPolicy
	Log      zerolog.Logger
}

// Run starts the interactive board. The fetch starts with the program and
// its result is observed once.
func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference()

	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
