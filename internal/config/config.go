package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/copteruni/rulecalc/internal/logging"
	"github.com/copteruni/rulecalc/internal/solver"
)

var log = logging.New("config")

const (
	configDirName  = ".rulecalc"
	configFileName = "config.json"
	keymapFileName = "keymap.json"
	stateFileName  = "state.json"
)

var ErrNotConfigured = errors.New("rulecalc is not configured")

// Config stores user-defined calculator settings.
type Config struct {
	// DefaultLock is "angle" or "height".
	DefaultLock string            `json:"default_lock,omitempty"`
	Keybindings map[string]string `json:"keybindings,omitempty"`
	KeymapFile  string            `json:"keymap_file,omitempty"`
}

// Default returns the configuration used before the user saves one.
func Default() Config {
	cfg := Config{DefaultLock: solver.DefaultLockMode.String()}
	if path, err := DefaultKeymapPath(); err == nil {
		cfg.KeymapFile = path
	}
	return cfg
}

// LockMode resolves DefaultLock. Load and Save validate it, so an error
// here only happens for hand-built configs.
func (c Config) LockMode() (solver.LockMode, error) {
	return solver.ParseLockMode(c.DefaultLock)
}

// Dir returns the directory holding config, keymap and state files.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// DefaultKeymapPath returns the keymap file used when keymap_file is unset.
func DefaultKeymapPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, keymapFileName), nil
}

// StatePath returns the path of the small key-value state file.
func StatePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, stateFileName), nil
}

// Exists reports whether the config file exists.
func Exists() (bool, error) {
	path, err := ConfigPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat config path %q: %w", path, err)
}

// Load reads and validates the saved configuration.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, ErrNotConfigured
		}
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	log.Debug("loaded config", "path", path)
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when no config file
// has been saved yet.
func LoadOrDefault() (Config, error) {
	cfg, err := Load()
	if errors.Is(err, ErrNotConfigured) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes configuration to disk.
func Save(cfg Config) error {
	if err := cfg.normalize(); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config %q: %w", path, err)
	}
	log.Info("saved config", "path", path)
	return nil
}

func (c *Config) normalize() error {
	lock, err := solver.ParseLockMode(c.DefaultLock)
	if err != nil {
		return fmt.Errorf("invalid default_lock: %w", err)
	}
	c.DefaultLock = lock.String()

	if strings.TrimSpace(c.KeymapFile) == "" {
		path, err := DefaultKeymapPath()
		if err != nil {
			return err
		}
		c.KeymapFile = path
		return nil
	}
	path, err := NormalizePath(c.KeymapFile)
	if err != nil {
		return fmt.Errorf("invalid keymap_file: %w", err)
	}
	c.KeymapFile = path
	return nil
}

// NormalizePath expands a leading ~ and returns a clean absolute path.
func NormalizePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is required")
	}

	expanded, err := expandHome(trimmed)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}

	return filepath.Clean(abs), nil
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}
