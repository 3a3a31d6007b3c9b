package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"shape-studio/log"
)

const StateFileName = "state.json"

// AppState is the small amount of cross-run state the app keeps: the seed
// of the last run (so an interesting canvas can be reproduced with
// --seed) and a running total of spawned shapes. Shapes themselves are
// never persisted.
type AppState struct {
	LastSeed     int64     `json:"last_seed"`
	TotalSpawned int       `json:"total_spawned"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoadState reads the state file, returning a zero state on any problem.
func LoadState() AppState {
	var state AppState

	dir, err := GetConfigDir()
	if err != nil {
		return state
	}

	data, err := os.ReadFile(filepath.Join(dir, StateFileName))
	if err != nil {
		if !os.IsNotExist(err) {
			log.WarningLog.Printf("failed to read state file: %v", err)
		}
		return state
	}

	if err := json.Unmarshal(data, &state); err != nil {
		log.WarningLog.Printf("failed to parse state file: %v", err)
		return AppState{}
	}
	return state
}

// SaveState writes the state file, creating the directory if needed.
func SaveState(state AppState) error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, StateFileName), data, 0o644)
}
