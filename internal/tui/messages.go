package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/privix/internal/session"
	"github.com/jask/privix/internal/state"
)

const (
	toastDuration  = 3 * time.Second
	switchDuration = 2 * time.Second
)

// tick schedules the cosmetic timers. Tests replace it so commands can be
// drained synchronously.
var tick = tea.Tick

// actionMsg carries state actions from a view to the store.
type actionMsg []state.Action

// dispatch is how views change application state.
func dispatch(actions ...state.Action) tea.Cmd {
	return func() tea.Msg { return actionMsg(actions) }
}

func navigate(to state.Screen) tea.Cmd {
	return dispatch(state.Navigate{To: to})
}

// keyActionMsg is a key press already resolved against the view's scope.
type keyActionMsg struct {
	Action Action
}

type toastMsg string

func showToast(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg(text) }
}

type toastExpiredMsg struct{ seq int }

type statusMsg string

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg(text) }
}

type errMsg struct{ error }

type exportKind string

const (
	exportReport      exportKind = "report"
	exportScreenshots exportKind = "screenshots"
)

type exportRequestMsg struct{ kind exportKind }

func requestExport(kind exportKind) tea.Cmd {
	return func() tea.Msg { return exportRequestMsg{kind: kind} }
}

type exportDoneMsg struct {
	kind exportKind
	path string
}

type resetSessionMsg struct{}

type resetDoneMsg struct{}

type historyRequestMsg struct{}

type historyLoadedMsg struct {
	mount   int
	history session.History
}

func (m historyLoadedMsg) mountID() int { return m.mount }

// mountedMsg is implemented by timer messages that belong to one mounted
// view; the app drops them once that view is gone.
type mountedMsg interface {
	mountID() int
}

type switchDoneMsg struct{ mount int }

func (m switchDoneMsg) mountID() int { return m.mount }
