package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/privix/internal/state"
)

// viewContext is what a mounted view may read. Views never hold a reference
// to the store.
type viewContext struct {
	State          state.State
	Keys           *KeyRegistry
	Width          int
	Mount          int
	JournalEnabled bool
}

func (c viewContext) key(scope string, a Action) string {
	return c.Keys.KeyFor(scope, a)
}

// screenView is one leaf screen. A fresh value is mounted each time the
// current screen changes, so local state never outlives a visit.
type screenView interface {
	Update(msg tea.Msg, ctx viewContext) (screenView, tea.Cmd)
	View(ctx viewContext) string
	Scope() string
}

func newView(s state.Screen) screenView {
	switch s {
	case state.ScreenOnboarding:
		return newOnboardingView()
	case state.ScreenHome:
		return newHomeView()
	case state.ScreenAlerts:
		return newAlertsView()
	case state.ScreenQuickFix:
		return newQuickFixView()
	case state.ScreenComparison:
		return newComparisonView()
	case state.ScreenTimeline:
		return newTimelineView()
	case state.ScreenScreenshot:
		return newScreenshotView()
	case state.ScreenSettings:
		return newSettingsView()
	case state.ScreenReport:
		return newReportView()
	default:
		return newHomeView()
	}
}

// step moves an index by delta, wrapping within n.
func step(idx, n, delta int) int {
	if n <= 0 {
		return 0
	}
	return ((idx+delta)%n + n) % n
}

// clampStep moves an index by delta, stopping at the ends.
func clampStep(idx, n, delta int) int {
	if n <= 0 {
		return 0
	}
	return min(max(idx+delta, 0), n-1)
}

// delta maps the paired movement actions to -1 or +1. Any other action
// does not move.
func delta(a Action) int {
	switch a {
	case actionCursorUp, actionFilterPrev:
		return -1
	case actionCursorDown, actionFilterNext:
		return 1
	}
	return 0
}

// backHeader is the "back to home" hint shown above a leaf screen's title.
func backHeader(ctx viewContext, scope string) string {
	return keyHint(ctx.key(scope, actionBack), "‹ home")
}
