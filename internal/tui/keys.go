package tui

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal      = "global"
	scopeGallery     = "gallery"
	scopeCommand     = "command"
	scopeOnboarding  = "onboarding"
	scopeHome        = "home"
	scopeAlerts      = "alerts"
	scopeAlertDetail = "alert_detail"
	scopeQuickFix    = "quickfix"
	scopeComparison  = "comparison"
	scopeSwitching   = "switching"
	scopeTimeline    = "timeline"
	scopeScreenshot  = "screenshot"
	scopeSettings    = "settings"
	scopeReport      = "report"
)

const (
	actionQuit          Action = "quit"
	actionNavHome       Action = "nav_home"
	actionNavAlerts     Action = "nav_alerts"
	actionNavReport     Action = "nav_report"
	actionNavSettings   Action = "nav_settings"
	actionToggleView    Action = "toggle_view"
	actionCommandMode   Action = "command_mode"
	actionScrollUp      Action = "scroll_up"
	actionScrollDown    Action = "scroll_down"
	actionCursorUp      Action = "cursor_up"
	actionCursorDown    Action = "cursor_down"
	actionSelect        Action = "select"
	actionClose         Action = "close"
	actionBack          Action = "back"
	actionNext          Action = "next"
	actionSkip          Action = "skip"
	actionScan          Action = "scan"
	actionFixAll        Action = "fix_all"
	actionScreenshots   Action = "screenshots"
	actionReport        Action = "report"
	actionCompare       Action = "compare"
	actionFilterPrev    Action = "filter_prev"
	actionFilterNext    Action = "filter_next"
	actionRevoke        Action = "revoke"
	actionTimeline      Action = "timeline"
	actionToggle        Action = "toggle"
	actionRevokeAll     Action = "revoke_all"
	actionFixRisky      Action = "fix_risky"
	actionCycleCurrent  Action = "cycle_current"
	actionCycleAlt      Action = "cycle_alternative"
	actionSwitch        Action = "switch"
	actionUnusual       Action = "unusual_only"
	actionDetection     Action = "detection"
	actionAutoDelete    Action = "auto_delete"
	actionExport        Action = "export"
	actionConfigure     Action = "configure"
	actionFixIssues     Action = "fix_issues"
	actionDownload      Action = "download"
	actionResetSession  Action = "reset_session"
	actionGalleryOpen   Action = "open"
	actionCommandSubmit Action = "run"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	// Global fallback lookup.
	reg(scopeGlobal, actionQuit, []string{"q", "ctrl+c"}, "quit")
	reg(scopeGlobal, actionNavHome, []string{"1"}, "home")
	reg(scopeGlobal, actionNavAlerts, []string{"2"}, "alerts")
	reg(scopeGlobal, actionNavReport, []string{"3"}, "report")
	reg(scopeGlobal, actionNavSettings, []string{"4"}, "settings")
	reg(scopeGlobal, actionToggleView, []string{"v"}, "gallery")
	reg(scopeGlobal, actionCommandMode, []string{":"}, "jump")
	reg(scopeGlobal, actionScrollUp, []string{"pgup", "ctrl+u"}, "scroll up")
	reg(scopeGlobal, actionScrollDown, []string{"pgdown", "ctrl+d"}, "scroll down")

	reg(scopeGallery, actionCursorUp, []string{"k", "up"}, "up")
	reg(scopeGallery, actionCursorDown, []string{"j", "down"}, "down")
	reg(scopeGallery, actionGalleryOpen, []string{"enter"}, "open")
	reg(scopeGallery, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeCommand, actionCommandSubmit, []string{"enter"}, "go")
	reg(scopeCommand, actionClose, []string{"esc"}, "cancel")

	reg(scopeOnboarding, actionNext, []string{"enter", "l", "right"}, "next")
	reg(scopeOnboarding, actionSkip, []string{"s"}, "skip")

	reg(scopeHome, actionCursorUp, []string{"k", "up"}, "up")
	reg(scopeHome, actionCursorDown, []string{"j", "down"}, "down")
	reg(scopeHome, actionSelect, []string{"enter"}, "review app")
	reg(scopeHome, actionScan, []string{"n"}, "scan now")
	reg(scopeHome, actionFixAll, []string{"f"}, "fix all")
	reg(scopeHome, actionScreenshots, []string{"s"}, "screenshots")
	reg(scopeHome, actionReport, []string{"r"}, "details")
	reg(scopeHome, actionCompare, []string{"c"}, "compare")

	reg(scopeAlerts, actionFilterPrev, []string{"h", "left"}, "prev filter")
	reg(scopeAlerts, actionFilterNext, []string{"l", "right"}, "next filter")
	reg(scopeAlerts, actionCursorUp, []string{"k", "up"}, "up")
	reg(scopeAlerts, actionCursorDown, []string{"j", "down"}, "down")
	reg(scopeAlerts, actionSelect, []string{"enter"}, "details")

	reg(scopeAlertDetail, actionRevoke, []string{"r"}, "revoke")
	reg(scopeAlertDetail, actionTimeline, []string{"t"}, "timeline")
	reg(scopeAlertDetail, actionBack, []string{"esc", "backspace"}, "back")

	reg(scopeQuickFix, actionBack, []string{"esc", "backspace"}, "home")
	reg(scopeQuickFix, actionCursorUp, []string{"k", "up"}, "up")
	reg(scopeQuickFix, actionCursorDown, []string{"j", "down"}, "down")
	reg(scopeQuickFix, actionToggle, []string{"space", "enter"}, "toggle")
	reg(scopeQuickFix, actionRevokeAll, []string{"a"}, "revoke all")
	reg(scopeQuickFix, actionFixRisky, []string{"r"}, "fix risky")

	reg(scopeComparison, actionBack, []string{"esc", "backspace"}, "home")
	reg(scopeComparison, actionCycleCurrent, []string{"a"}, "current app")
	reg(scopeComparison, actionCycleAlt, []string{"b"}, "alternative")
	reg(scopeComparison, actionSwitch, []string{"enter", "s"}, "switch")

	reg(scopeSwitching, actionQuit, []string{"ctrl+c"}, "quit")

	reg(scopeTimeline, actionBack, []string{"esc", "backspace"}, "home")
	reg(scopeTimeline, actionFilterPrev, []string{"h", "left"}, "prev permission")
	reg(scopeTimeline, actionFilterNext, []string{"l", "right"}, "next permission")
	reg(scopeTimeline, actionUnusual, []string{"u"}, "unusual only")

	reg(scopeScreenshot, actionBack, []string{"esc", "backspace"}, "home")
	reg(scopeScreenshot, actionFilterPrev, []string{"h", "left"}, "prev filter")
	reg(scopeScreenshot, actionFilterNext, []string{"l", "right"}, "next filter")
	reg(scopeScreenshot, actionDetection, []string{"d"}, "detection")
	reg(scopeScreenshot, actionAutoDelete, []string{"a"}, "auto-delete")
	reg(scopeScreenshot, actionExport, []string{"e"}, "export log")
	reg(scopeScreenshot, actionConfigure, []string{"c"}, "configure")

	reg(scopeSettings, actionBack, []string{"esc", "backspace"}, "home")
	reg(scopeSettings, actionCursorUp, []string{"k", "up"}, "up")
	reg(scopeSettings, actionCursorDown, []string{"j", "down"}, "down")
	reg(scopeSettings, actionSelect, []string{"enter", "space"}, "toggle/open")
	reg(scopeSettings, actionResetSession, []string{"R"}, "reset session")

	reg(scopeReport, actionBack, []string{"esc", "backspace"}, "home")
	reg(scopeReport, actionFixIssues, []string{"f"}, "fix issues")
	reg(scopeReport, actionDownload, []string{"d"}, "download")

	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 || r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup resolves a pressed key in scope, falling back to the global scope.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		return r.lookupInScope(keyName, scopeGlobal)
	}
	return nil
}

// KeyFor returns the first key bound to action in scope, for inline hints.
func (r *KeyRegistry) KeyFor(scope string, action Action) string {
	for _, b := range r.bindingsByScope[scope] {
		if b.Action == action && len(b.Keys) > 0 {
			return b.Keys[0]
		}
	}
	return ""
}

func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Keep single uppercase keys distinct from their lowercase twin.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "spacebar", "space")
	return s
}

// keybindingConfig is one [[binding]] entry of the override file.
type keybindingConfig struct {
	Scope  string   `toml:"scope"`
	Action string   `toml:"action"`
	Keys   []string `toml:"keys"`
}

type keybindingFile struct {
	Binding []keybindingConfig `toml:"binding"`
}

// LoadKeybindingFile applies overrides from a TOML file at path. A missing
// file leaves the defaults in place.
func (r *KeyRegistry) LoadKeybindingFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	var file keybindingFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if err := r.ApplyKeybindingConfig(file.Binding); err != nil {
		return fmt.Errorf("validate %s: %w", path, err)
	}
	return nil
}

func (r *KeyRegistry) ApplyKeybindingConfig(items []keybindingConfig) error {
	if r == nil || len(items) == 0 {
		return nil
	}
	type pair struct {
		scope  string
		action Action
	}
	seenPair := make(map[pair]bool)
	for _, o := range items {
		scope := strings.TrimSpace(o.Scope)
		if scope == "" {
			return fmt.Errorf("keybinding override: scope is required")
		}
		action := Action(strings.TrimSpace(o.Action))
		if action == "" {
			return fmt.Errorf("keybinding override scope=%q: action is required", scope)
		}
		keys := normalizeKeyList(o.Keys)
		if len(keys) == 0 {
			return fmt.Errorf("keybinding override scope=%q action=%q: keys are required", scope, action)
		}

		bindings := r.bindingsByScope[scope]
		if len(bindings) == 0 {
			return fmt.Errorf("keybinding override scope=%q action=%q: unknown scope", scope, action)
		}
		var target *Binding
		for _, b := range bindings {
			if b.Action == action {
				target = b
				break
			}
		}
		if target == nil {
			return fmt.Errorf("keybinding override scope=%q action=%q: unknown action in scope", scope, action)
		}
		p := pair{scope: scope, action: action}
		if seenPair[p] {
			return fmt.Errorf("keybinding override scope=%q action=%q: duplicated override entry", scope, action)
		}
		seenPair[p] = true
		target.Keys = keys
	}

	r.rebuildIndex()
	for scope, bindings := range r.bindingsByScope {
		seen := make(map[string]Action)
		for _, b := range bindings {
			for _, k := range b.Keys {
				if prev, ok := seen[k]; ok {
					return fmt.Errorf("keybinding override conflict in scope=%q: key %q used by both %q and %q", scope, k, prev, b.Action)
				}
				seen[k] = b.Action
			}
		}
	}
	return nil
}

func (r *KeyRegistry) ExportKeybindingConfig() []keybindingConfig {
	if r == nil {
		return nil
	}
	var out []keybindingConfig
	for scope, bindings := range r.bindingsByScope {
		for _, b := range bindings {
			out = append(out, keybindingConfig{
				Scope:  scope,
				Action: string(b.Action),
				Keys:   append([]string(nil), b.Keys...),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Scope != out[j].Scope {
			return out[i].Scope < out[j].Scope
		}
		return out[i].Action < out[j].Action
	})
	return out
}

// EncodeKeybindings writes the effective bindings in the override file format.
func (r *KeyRegistry) EncodeKeybindings(w io.Writer) error {
	return toml.NewEncoder(w).Encode(keybindingFile{Binding: r.ExportKeybindingConfig()})
}

func (r *KeyRegistry) rebuildIndex() {
	r.indexByScope = make(map[string]map[string]*Binding, len(r.bindingsByScope))
	for scope, bindings := range r.bindingsByScope {
		r.indexByScope[scope] = make(map[string]*Binding)
		for _, b := range bindings {
			for _, k := range b.Keys {
				r.indexByScope[scope][k] = b
			}
		}
	}
}
