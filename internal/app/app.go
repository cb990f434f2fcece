package app

import (
	"errors"
	"time"

	"github.com/atomicstack/mergechat/internal/backend"
	"github.com/atomicstack/mergechat/internal/data/dispatcher"
	"github.com/atomicstack/mergechat/internal/state"
	"github.com/atomicstack/mergechat/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width        int
	Height       int
	ShowFooter   bool
	MaxWindows   int
	OpenInterval time.Duration
	Presets      dispatcher.Presets
	Fields       map[state.Field]string
}

// NewModel wires a window host to the UI model.
func NewModel(cfg Config, host *backend.Host) *ui.Model {
	return ui.NewModel(host, ui.Config{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Presets:    cfg.Presets,
		Fields:     cfg.Fields,
	})
}

// Run bootstraps and executes the Bubble Tea program. It returns once the
// last window has closed or the user quits.
func Run(cfg Config) error {
	host := backend.NewHost(backend.Config{
		MaxWindows:   cfg.MaxWindows,
		OpenInterval: cfg.OpenInterval,
	})
	defer host.Stop()
	program := tea.NewProgram(NewModel(cfg, host), tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
