package tui

import (
	"context"
	"testing"
	"time"

	bcursor "github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/privix/internal/config"
	"github.com/jask/privix/internal/state"
)

func init() {
	// Timers never fire on their own in tests; expiry messages are sent by hand.
	tick = func(time.Duration, func(time.Time) tea.Msg) tea.Cmd { return nil }
}

func testApp(t *testing.T, s state.State) *App {
	t.Helper()
	cfg := config.Config{
		UI:     config.UIConfig{InitialScore: state.InitialScore, ViewMode: config.ViewInteractive, Clock: "9:41"},
		Export: config.ExportConfig{Dir: t.TempDir()},
	}
	a := New(context.Background(), Options{Config: cfg, Store: state.NewStore(s)})
	_ = a.prompt.Cursor.SetMode(bcursor.CursorStatic)
	return a
}

func onboarded(screen state.Screen, score int) state.State {
	return state.State{Screen: screen, Onboarded: true, Score: score}
}

func runeKey(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func send(t *testing.T, a *App, msg tea.Msg) {
	t.Helper()
	_, cmd := a.Update(msg)
	drain(t, a, cmd)
}

func press(t *testing.T, a *App, keys ...string) {
	t.Helper()
	for _, k := range keys {
		switch k {
		case "enter":
			send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
		case "esc":
			send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
		case "space":
			send(t, a, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		default:
			send(t, a, runeKey(k))
		}
	}
}

// drain runs cmd and every command it produces, feeding messages back into
// the app. Spinner frames are dropped so the loop terminates.
func drain(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 64 {
			t.Fatal("command chain exceeded max depth")
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case spinner.TickMsg:
		default:
			_, c := a.Update(msg)
			queue = append(queue, c)
		}
	}
}
