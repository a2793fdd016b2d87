package state

import (
	"fmt"
	"strings"
)

// Screen identifies which view is mounted.
type Screen string

const (
	ScreenOnboarding Screen = "onboarding"
	ScreenHome       Screen = "home"
	ScreenReport     Screen = "report"
	ScreenQuickFix   Screen = "quickfix"
	ScreenAlerts     Screen = "alerts"
	ScreenSettings   Screen = "settings"
	ScreenComparison Screen = "comparison"
	ScreenTimeline   Screen = "timeline"
	ScreenScreenshot Screen = "screenshot"
)

// Screens returns the closed set of screens in showcase order.
func Screens() []Screen {
	return []Screen{
		ScreenOnboarding,
		ScreenHome,
		ScreenScreenshot,
		ScreenAlerts,
		ScreenQuickFix,
		ScreenReport,
		ScreenComparison,
		ScreenTimeline,
		ScreenSettings,
	}
}

// Valid reports whether s is one of the known screens.
func (s Screen) Valid() bool {
	for _, known := range Screens() {
		if s == known {
			return true
		}
	}
	return false
}

// Title is the human label used in the gallery and command prompt.
func (s Screen) Title() string {
	switch s {
	case ScreenOnboarding:
		return "Onboarding"
	case ScreenHome:
		return "Home Dashboard"
	case ScreenScreenshot:
		return "Screenshot Detector"
	case ScreenAlerts:
		return "Alerts Center"
	case ScreenQuickFix:
		return "Quick Fix"
	case ScreenReport:
		return "Weekly Report"
	case ScreenComparison:
		return "App Comparison"
	case ScreenTimeline:
		return "Permission Timeline"
	case ScreenSettings:
		return "Settings"
	default:
		return string(s)
	}
}

// ParseScreen resolves an exact (case-insensitive) screen name.
func ParseScreen(name string) (Screen, error) {
	s := Screen(strings.ToLower(strings.TrimSpace(name)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown screen %q", name)
	}
	return s, nil
}
