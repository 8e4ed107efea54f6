// watcher.go reloads config.json and the keymap file while the calculator
// is open.
//
// The config directory is watched with fsnotify rather than the file itself:
// editors usually save by writing a temp file and renaming it over the
// original, which drops a watch on the old inode. Events for other files in
// the directory (state.json in particular) are filtered out.
//
// Events reach Bubble Tea through waitForConfigChange, a Cmd that blocks on
// the watcher channel and is re-armed after every configChangedMsg.
package app

import (
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/copteruni/rulecalc/internal/config"
)

// configChangedMsg is emitted when a watched config file was written.
type configChangedMsg struct{}

type configWatcher struct {
	fs      *fsnotify.Watcher
	targets map[string]bool
	events  chan struct{}
	done    chan struct{}
	once    sync.Once
}

// newConfigWatcher watches the directory of every path in paths and reports
// changes to those exact paths.
func newConfigWatcher(paths ...string) (*configWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &configWatcher{
		fs:      fw,
		targets: map[string]bool{},
		events:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	dirs := map[string]bool{}
	for _, path := range paths {
		if path == "" {
			continue
		}
		path = filepath.Clean(path)
		w.targets[path] = true
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			// The directory may not exist until configure runs.
			appLog.Debug("watch config dir", "dir", dir, "error", err)
		}
	}
	go w.run()
	return w, nil
}

func (w *configWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.matches(event) {
				continue
			}
			// Coalesce bursts; one pending reload is enough.
			select {
			case w.events <- struct{}{}:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			appLog.Warn("config watcher", "error", err)
		}
	}
}

func (w *configWatcher) matches(event fsnotify.Event) bool {
	if !w.targets[filepath.Clean(event.Name)] {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// Close stops the watcher. It is safe to call more than once.
func (w *configWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

// startConfigWatcher begins watching config.json and the keymap file.
// Failures are logged and leave the model without a watcher.
func (m *Model) startConfigWatcher() {
	configPath, err := config.ConfigPath()
	if err != nil {
		appLog.Warn("resolve config path for watcher", "error", err)
		return
	}
	w, err := newConfigWatcher(configPath, m.cfg.KeymapFile)
	if err != nil {
		appLog.Warn("start config watcher", "error", err)
		return
	}
	m.watcher = w
}

// waitForConfigChange returns a Cmd that blocks until the watcher reports a
// change, or nil when no watcher is running.
func (m *Model) waitForConfigChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		select {
		case <-w.events:
			return configChangedMsg{}
		case <-w.done:
			return nil
		}
	}
}

// handleConfigChanged reloads config and keybindings. The active lock mode
// is kept: default_lock only applies on start.
func (m *Model) handleConfigChanged() (tea.Model, tea.Cmd) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		m.setStatusError("Config reload failed", err)
		return m, m.waitForConfigChange()
	}
	m.cfg = cfg
	m.loadKeybindings(cfg)
	m.help = helpCache{}
	m.status = "Config reloaded"
	appLog.Info("config reloaded")
	return m, m.waitForConfigChange()
}
