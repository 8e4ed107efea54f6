// state.go persists the last selected lock mode so the calculator reopens
// with the same lock. Field values are never persisted.
//
// State is stored as JSON at ~/.rulecalc/state.json next to config.json.
package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/copteruni/rulecalc/internal/solver"
)

// appState is the on-disk JSON representation of app state.
type appState struct {
	LockMode string `json:"lock_mode,omitempty"`
}

// loadAppState reads the state file. A missing file yields the zero state
// without error.
func loadAppState(path string) (appState, error) {
	var state appState
	if path == "" {
		return state, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return state, fmt.Errorf("read app state %q: %w", path, err)
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return appState{}, fmt.Errorf("parse app state %q: %w", path, err)
	}
	return state, nil
}

func saveAppState(path string, state appState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal app state: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), DirPermission); err != nil {
		return fmt.Errorf("create app state dir: %w", err)
	}
	if err := os.WriteFile(path, data, FilePermission); err != nil {
		return fmt.Errorf("write app state %q: %w", path, err)
	}
	return nil
}

// persistLockMode saves lock as the mode to restore on the next start. It is
// a no-op when the model has no state path.
func (m *Model) persistLockMode(lock solver.LockMode) error {
	if m.statePath == "" {
		return nil
	}
	return saveAppState(m.statePath, appState{LockMode: lock.String()})
}
