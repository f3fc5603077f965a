package app

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"grindpad.dev/grindpad/internal/api"
	"grindpad.dev/grindpad/internal/config"
	"grindpad.dev/grindpad/internal/device"
	"grindpad.dev/grindpad/internal/logging"
	"grindpad.dev/grindpad/internal/persist"
	"grindpad.dev/grindpad/internal/ui"
)

// Run bootstraps the device and executes the Bubble Tea program. The HTTP
// gateway runs on its own goroutine for the lifetime of the process.
func Run(cfg config.Config) error {
	var archive *persist.Archive
	if cfg.Storage.SnapshotDir != "" {
		archive = persist.NewArchive(cfg.Storage.SnapshotDir)
	}
	gateway := persist.NewGateway(cfg.Storage.DataFile, archive)

	entries := gateway.Load()

	opts := device.Options{
		Entries:    entries,
		Gateway:    gateway,
		SaveDelay:  cfg.Device.SaveDelay,
		SleepAfter: cfg.Device.SleepAfter,
	}
	if cfg.Device.Battery >= 0 {
		level := cfg.Device.Battery
		opts.Battery = func() int { return level }
	}
	dev := device.New(opts)

	server := api.New(dev)
	go func() {
		if err := server.ListenAndServe(cfg.Server.ListenAddr); err != nil {
			logging.Error(fmt.Errorf("api server: %w", err))
			fmt.Fprintf(os.Stderr, "api server: %v\n", err)
		}
	}()

	model := ui.NewModel(dev, cfg.Device.Width, cfg.Device.Height)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
