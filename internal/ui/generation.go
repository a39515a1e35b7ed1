package ui

import (
	"errors"
	"sync/atomic"

	"fyne.io/fyne/v2"

	"neonicons/internal/config"
)

// ErrGenerationRunning is returned by Start while another run is in flight
var ErrGenerationRunning = errors.New("icon generation already running")

// Generation runs the icon writer in the background, one run at a time.
// The settings dialog and the tray share a single Generation.
type Generation struct {
	run     func(*config.Config) error
	running atomic.Bool
}

// NewGeneration wraps run, which writes the icon sets for a config
func NewGeneration(run func(*config.Config) error) *Generation {
	return &Generation{run: run}
}

// Running reports whether a run is in flight
func (g *Generation) Running() bool {
	return g.running.Load()
}

// Start runs a copy of cfg on a new goroutine and calls done on the UI
// goroutine when it finishes. It returns ErrGenerationRunning without
// starting anything if a run is already in flight.
func (g *Generation) Start(cfg *config.Config, done func(error)) error {
	if !g.running.CompareAndSwap(false, true) {
		return ErrGenerationRunning
	}

	snapshot := *cfg
	go func() {
		err := g.run(&snapshot)
		g.running.Store(false)
		if done != nil {
			fyne.Do(func() { done(err) })
		}
	}()
	return nil
}
