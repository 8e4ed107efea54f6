package app

import (
	"encoding/json"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/copteruni/rulecalc/internal/config"
)

// ---------------------------------------------------------------------------
// Action constants
// ---------------------------------------------------------------------------
//
// Actions sit between physical key presses and calculator behavior. Keys
// that are not bound to an action are typed into the focused field.
//
// Default key assignments are declared in defaultActionKeys. Users can
// override any assignment via the "keybindings" map in config.json or via an
// external keymap file (default: ~/.rulecalc/keymap.json).
// ---------------------------------------------------------------------------

const (
	// actionFocusNext moves focus to the next field.
	actionFocusNext = "focus.next"

	// actionFocusPrev moves focus to the previous field.
	actionFocusPrev = "focus.prev"

	// actionLockToggle switches between angle and height lock.
	actionLockToggle = "lock.toggle"

	// actionClear empties all three fields.
	actionClear = "form.clear"

	// actionCopy copies a one-line summary to the clipboard.
	actionCopy = "result.copy"

	// actionHelp toggles the help overlay.
	actionHelp = "help.toggle"

	// actionQuit exits the application.
	actionQuit = "app.quit"
)

// defaultActionKeys maps each action to its factory-default key bindings.
//
// Letter keys are avoided because unbound keys are typed into the fields.
// Key strings use the Bubble Tea notation ("ctrl+l", "shift+tab", "esc").
var defaultActionKeys = map[string][]string{
	actionFocusNext:  {"tab", "down", "enter"},
	actionFocusPrev:  {"shift+tab", "up"},
	actionLockToggle: {"ctrl+l"},
	actionClear:      {"ctrl+r"},
	actionCopy:       {"ctrl+y"},
	actionHelp:       {"?", "f1"},
	actionQuit:       {"esc", "ctrl+c"},
}

// loadKeybindings initializes the key↔action maps from three sources,
// applied in order of increasing priority:
//
//  1. defaultActionKeys
//  2. cfg.Keybindings
//  3. the keymap file at cfg.KeymapFile, if it exists
//
// Overrides replace an action's full default key set. Unknown actions and
// key conflicts are logged and ignored.
func (m *Model) loadKeybindings(cfg config.Config) {
	m.keyForAction = map[string][]string{}
	for action, keys := range defaultActionKeys {
		m.keyForAction[action] = append([]string(nil), keys...)
	}

	for action, key := range cfg.Keybindings {
		m.applyKeybindingOverride(action, key)
	}

	for action, key := range loadKeymapFile(cfg.KeymapFile) {
		m.applyKeybindingOverride(action, key)
	}

	m.rebuildActionKeyIndex()
}

// loadKeymapFile reads a flat JSON object of action → key. A missing file
// yields nil silently; read or parse errors are logged.
func loadKeymapFile(path string) map[string]string {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			appLog.Warn("read keymap file", "path", path, "error", err)
		}
		return nil
	}
	overrides := map[string]string{}
	if err := json.Unmarshal(data, &overrides); err != nil {
		appLog.Warn("parse keymap file", "path", path, "error", err)
		return nil
	}
	return overrides
}

func (m *Model) applyKeybindingOverride(action, key string) {
	action = strings.TrimSpace(action)
	key = normalizeKeyString(key)
	if action == "" || key == "" {
		return
	}
	if _, ok := defaultActionKeys[action]; !ok {
		appLog.Warn("ignore unknown keybinding action", "action", action)
		return
	}
	m.keyForAction[action] = []string{key}
}

// rebuildActionKeyIndex builds keyToAction from keyForAction. Actions are
// visited in name order so conflicts resolve the same way on every run; the
// first action to claim a key keeps it.
func (m *Model) rebuildActionKeyIndex() {
	actions := make([]string, 0, len(m.keyForAction))
	for action := range m.keyForAction {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	m.keyToAction = map[string]string{}
	for _, action := range actions {
		for _, key := range m.keyForAction[action] {
			if key == "" {
				continue
			}
			if existing, ok := m.keyToAction[key]; ok && existing != action {
				appLog.Warn("keybinding conflict ignored", "key", key, "action", action, "existing_action", existing)
				continue
			}
			m.keyToAction[key] = action
		}
	}
}

// normalizeKeyString lowercases a key and maps a single uppercase letter
// ("Y") to its shifted form ("shift+y").
func normalizeKeyString(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if len([]rune(key)) == 1 && strings.ToUpper(key) == key && strings.ToLower(key) != key {
		return "shift+" + strings.ToLower(key)
	}
	return strings.ToLower(key)
}

// actionForKey returns the action bound to key, or "".
func (m *Model) actionForKey(key string) string {
	if m.keyToAction == nil {
		return ""
	}
	return m.keyToAction[normalizeKeyString(key)]
}

func (m *Model) actionKeyLabels(action string) []string {
	keys, ok := m.keyForAction[action]
	if !ok || len(keys) == 0 {
		return nil
	}
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		label := humanizeKeyLabel(key)
		if label == "" || slices.Contains(labels, label) {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

func (m *Model) primaryActionKey(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return keys[0]
}

func (m *Model) allActionKeys(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return strings.Join(keys, ", ")
}

func humanizeKeyLabel(key string) string {
	normalized := normalizeKeyString(key)
	if normalized == "" {
		return ""
	}
	special := map[string]string{
		"up":        "↑",
		"down":      "↓",
		"left":      "←",
		"right":     "→",
		"enter":     "Enter",
		"esc":       "Esc",
		"tab":       "Tab",
		"space":     "Space",
		"backspace": "Backspace",
	}
	parts := strings.Split(normalized, "+")
	for i, part := range parts {
		switch part {
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		default:
			if label, ok := special[part]; ok {
				parts[i] = label
				continue
			}
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "+")
}
