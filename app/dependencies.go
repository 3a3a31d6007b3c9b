package app

import (
	"time"

	"shape-studio/config"
	"shape-studio/log"
	"shape-studio/services/generator"
)

// Dependencies holds all service dependencies for the application
type Dependencies struct {
	Generator generator.ShapeGenerator
	Config    *config.Config
	State     config.AppState
}

// InitializeDependencies creates and wires up all service dependencies.
// A seed of 0 means derive one from the clock.
func InitializeDependencies(seed int64) (*Dependencies, error) {
	cfg := config.LoadConfig()
	state := config.LoadState()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	state.LastSeed = seed

	return &Dependencies{
		Generator: generator.NewRandGenerator(seed),
		Config:    cfg,
		State:     state,
	}, nil
}

// Cleanup persists application state on shutdown.
func (d *Dependencies) Cleanup() error {
	if err := config.SaveState(d.State); err != nil {
		log.ErrorLog.Printf("failed to save state: %v", err)
		return err
	}
	return nil
}
