package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/copteruni/rulecalc/internal/config"
	"github.com/copteruni/rulecalc/internal/solver"
)

// fieldLabels are the form labels shown left of each input.
var fieldLabels = map[solver.Field]string{
	solver.Angle:    "Camera angle (°)",
	solver.Height:   "Drone height (m)",
	solver.Distance: "Distance (m)",
}

// Options configure a new Model.
type Options struct {
	// Lock overrides the saved and configured lock mode when non-empty.
	Lock string
	// WatchConfig reloads keybindings when the config file changes.
	WatchConfig bool
}

// Model holds the Bubble Tea state for the calculator.
type Model struct {
	// Form state
	inputs     []textinput.Model
	focus      int
	session    *solver.Session
	compliance solver.Compliance

	// UI state
	status   string
	showHelp bool
	help     helpCache

	// Layout sizing
	width  int
	height int

	// Settings
	cfg          config.Config
	statePath    string
	keyForAction map[string][]string
	keyToAction  map[string]string

	watcher *configWatcher
}

// New loads config and saved state and prepares the initial model.
func New(opts Options) (*Model, error) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, err
	}
	statePath, err := config.StatePath()
	if err != nil {
		return nil, err
	}
	state, err := loadAppState(statePath)
	if err != nil {
		appLog.Warn("load app state", "path", statePath, "error", err)
	}

	lock, err := resolveLockMode(opts.Lock, state, cfg)
	if err != nil {
		return nil, err
	}

	m := newModel(cfg, lock, statePath)
	if opts.WatchConfig {
		m.startConfigWatcher()
	}
	return m, nil
}

// newModel builds a model without touching the filesystem. An empty
// statePath disables lock persistence.
func newModel(cfg config.Config, lock solver.LockMode, statePath string) *Model {
	m := &Model{
		cfg:       cfg,
		statePath: statePath,
		status:    "Ready",
	}
	m.inputs = make([]textinput.Model, 0, len(solver.Fields()))
	for range solver.Fields() {
		input := textinput.New()
		input.Placeholder = "—"
		input.CharLimit = InputCharLimit
		applyInputTheme(&input)
		m.inputs = append(m.inputs, input)
	}
	adapter := fieldAdapter{m: m}
	m.session = solver.NewSession(adapter, adapter, lock)
	m.loadKeybindings(cfg)
	m.inputs[0].Focus()
	m.session.Refresh()
	return m
}

// resolveLockMode picks the lock mode: explicit override first, then the
// last saved mode, then the configured default.
func resolveLockMode(override string, state appState, cfg config.Config) (solver.LockMode, error) {
	if strings.TrimSpace(override) != "" {
		lock, err := solver.ParseLockMode(override)
		if err != nil {
			return solver.DefaultLockMode, fmt.Errorf("lock flag: %w", err)
		}
		return lock, nil
	}
	if state.LockMode != "" {
		lock, err := solver.ParseLockMode(state.LockMode)
		if err == nil {
			return lock, nil
		}
		appLog.Warn("ignore saved lock mode", "lock_mode", state.LockMode, "error", err)
	}
	lock, err := cfg.LockMode()
	if errors.Is(err, solver.ErrUnknownLockMode) {
		return solver.DefaultLockMode, nil
	}
	return lock, err
}

// Init starts the cursor blink and the config watcher, if any.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForConfigChange())
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout()
		return m, nil
	case configChangedMsg:
		return m.handleConfigChanged()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// Lock returns the active lock mode.
func (m *Model) Lock() solver.LockMode {
	return m.session.Lock()
}

// Compliance returns the last reported 1:1 rule status.
func (m *Model) Compliance() solver.Compliance {
	return m.compliance
}

// FieldText returns the current text of a field.
func (m *Model) FieldText(f solver.Field) string {
	i, ok := fieldIndex(f)
	if !ok {
		return ""
	}
	return m.inputs[i].Value()
}

func (m *Model) focusedField() solver.Field {
	return solver.Fields()[m.focus]
}

// Close releases the config watcher.
func (m *Model) Close() {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Close(); err != nil {
		appLog.Warn("close config watcher", "error", err)
	}
	m.watcher = nil
}
