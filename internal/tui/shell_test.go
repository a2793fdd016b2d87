package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/privix/internal/state"
)

func TestBottomNavVisibility(t *testing.T) {
	keys := NewKeyRegistry()
	cases := []struct {
		name string
		st   state.State
		want bool
	}{
		{"fresh", state.Initial(67), false},
		{"not onboarded elsewhere", state.State{Screen: state.ScreenHome, Score: 67}, false},
		{"onboarded on onboarding", state.State{Screen: state.ScreenOnboarding, Onboarded: true, Score: 67}, false},
		{"onboarded home", onboarded(state.ScreenHome, 67), true},
		{"onboarded timeline", onboarded(state.ScreenTimeline, 67), true},
	}
	for _, c := range cases {
		out := renderPhone("9:41", c.st, "body", keys)
		if got := strings.Contains(out, "Settings"); got != c.want {
			t.Fatalf("%s: nav shown = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestPhoneFrameHasFixedSize(t *testing.T) {
	keys := NewKeyRegistry()
	long := strings.Repeat("line\n", 80)
	for _, st := range []state.State{state.Initial(67), onboarded(state.ScreenHome, 67)} {
		out := renderPhone("9:41", st, long, keys)
		if h := lipgloss.Height(out); h != phoneInnerHeight+2 {
			t.Fatalf("frame height = %d, want %d", h, phoneInnerHeight+2)
		}
		if w := lipgloss.Width(out); w != phoneInnerWidth+2 {
			t.Fatalf("frame width = %d, want %d", w, phoneInnerWidth+2)
		}
	}
}

func TestNavHighlightsAlertBadge(t *testing.T) {
	out := renderNav(state.ScreenAlerts, NewKeyRegistry())
	if !strings.Contains(out, "3") || !strings.Contains(out, "2 Alerts") {
		t.Fatalf("nav missing alerts badge or key hint:\n%s", out)
	}
}
