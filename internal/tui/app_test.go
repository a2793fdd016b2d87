package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/privix/internal/config"
	"github.com/jask/privix/internal/fixtures"
	"github.com/jask/privix/internal/state"
)

func TestOnboardingFlowCompletesToHome(t *testing.T) {
	a := testApp(t, state.Initial(state.InitialScore))

	press(t, a, "1")
	if got := a.State().Screen; got != state.ScreenOnboarding {
		t.Fatalf("nav key during onboarding moved to %q", got)
	}
	press(t, a, "enter", "enter", "enter")
	if got := a.State(); got.Onboarded || got.Screen != state.ScreenOnboarding {
		t.Fatalf("after 3 steps state = %+v, want still onboarding", got)
	}
	press(t, a, "s")
	if got := a.State(); got.Onboarded {
		t.Fatal("skip on the last step should do nothing")
	}
	press(t, a, "enter")
	got := a.State()
	if !got.Onboarded || got.Screen != state.ScreenHome {
		t.Fatalf("state = %+v, want onboarded on home", got)
	}
}

func TestOnboardingSkip(t *testing.T) {
	a := testApp(t, state.Initial(state.InitialScore))
	press(t, a, "s")
	if got := a.State(); !got.Onboarded || got.Screen != state.ScreenHome {
		t.Fatalf("state = %+v, want onboarded on home", got)
	}
}

func TestNavKeysAfterOnboarding(t *testing.T) {
	a := testApp(t, onboarded(state.ScreenHome, 67))
	cases := []struct {
		key  string
		want state.Screen
	}{
		{"2", state.ScreenAlerts},
		{"3", state.ScreenReport},
		{"4", state.ScreenSettings},
		{"1", state.ScreenHome},
	}
	for _, c := range cases {
		press(t, a, c.key)
		if got := a.State().Screen; got != c.want {
			t.Fatalf("key %q -> %q, want %q", c.key, got, c.want)
		}
	}
}

func TestQuickFixRevokeAllAddsPoints(t *testing.T) {
	a := testApp(t, onboarded(state.ScreenHome, 67))
	press(t, a, "f")
	if got := a.State().Screen; got != state.ScreenQuickFix {
		t.Fatalf("fix all -> %q, want quickfix", got)
	}
	press(t, a, "a")
	if got := a.State().Score; got != 92 {
		t.Fatalf("score = %d, want 92", got)
	}
	if !strings.Contains(a.toast, "+25") {
		t.Fatalf("toast = %q, want +25 message", a.toast)
	}
	press(t, a, "a")
	if got := a.State().Score; got != 100 {
		t.Fatalf("score = %d, want clamped 100", got)
	}
}

func TestQuickFixRisky(t *testing.T) {
	a := testApp(t, onboarded(state.ScreenQuickFix, 50))
	press(t, a, "r")
	if got := a.State().Score; got != 68 {
		t.Fatalf("score = %d, want 68", got)
	}
	v := a.view.(*quickFixView)
	for _, p := range v.perms {
		if p.Risk.Risky() && p.Enabled {
			t.Fatalf("%s %s still enabled", p.App, p.Label)
		}
	}
	if !v.perms[len(v.perms)-1].Enabled {
		t.Fatal("medium risk permission should stay enabled")
	}
}

func TestToastExpiry(t *testing.T) {
	a := testApp(t, onboarded(state.ScreenQuickFix, 50))
	press(t, a, "a")
	first := a.toastSeq
	press(t, a, "r")
	send(t, a, toastExpiredMsg{seq: first})
	if a.toast == "" {
		t.Fatal("stale expiry cleared the newer toast")
	}
	send(t, a, toastExpiredMsg{seq: a.toastSeq})
	if a.toast != "" {
		t.Fatalf("toast = %q, want cleared", a.toast)
	}
}

func TestComparisonSwitch(t *testing.T) {
	a := testApp(t, onboarded(state.ScreenComparison, 67))
	press(t, a, "s")
	if got := a.scope(); got != scopeSwitching {
		t.Fatalf("scope = %q, want switching", got)
	}
	press(t, a, "2")
	if got := a.State().Screen; got != state.ScreenComparison {
		t.Fatalf("nav while switching moved to %q", got)
	}
	if !strings.Contains(a.View(), "Switching Apps") {
		t.Fatal("switch overlay not rendered")
	}
	send(t, a, switchDoneMsg{mount: a.mount})
	got := a.State()
	if got.Screen != state.ScreenHome || got.Score != 82 {
		t.Fatalf("state = %+v, want home with 82", got)
	}
}

func TestStaleSwitchIgnored(t *testing.T) {
	a := testApp(t, onboarded(state.ScreenComparison, 67))
	press(t, a, "s")
	stale := a.mount
	a.apply(state.Navigate{To: state.ScreenHome})
	a.apply(state.Navigate{To: state.ScreenComparison})
	send(t, a, switchDoneMsg{mount: stale})
	if got := a.State(); got.Score != 67 || got.Screen != state.ScreenComparison {
		t.Fatalf("stale switch applied: %+v", got)
	}
}

func TestComparisonCycle(t *testing.T) {
	a := testApp(t, onboarded(state.ScreenComparison, 67))
	v := a.view.(*comparisonView)
	cur, alt := v.profiles()
	if cur.Key != "tiktok" || alt.Key != "instagram" {
		t.Fatalf("defaults = %s vs %s", cur.Key, alt.Key)
	}
	press(t, a, "b", "b")
	_, alt = a.view.(*comparisonView).profiles()
	if alt.Key != "signal" {
		t.Fatalf("alternative = %s, want signal", alt.Key)
	}
}

func TestAlertDetailFlow(t *testing.T) {
	a := testApp(t, onboarded(state.ScreenAlerts, 67))
	press(t, a, "l")
	press(t, a, "enter")
	if got := a.scope(); got != scopeAlertDetail {
		t.Fatalf("scope = %q, want alert detail", got)
	}
	if !strings.Contains(a.view.View(a.viewContext()), "Why this matters") {
		t.Fatal("detail not rendered")
	}
	press(t, a, "esc")
	if got := a.scope(); got != scopeAlerts {
		t.Fatalf("scope after back = %q", got)
	}
	press(t, a, "enter", "t")
	if got := a.State().Screen; got != state.ScreenTimeline {
		t.Fatalf("timeline action -> %q", got)
	}
}

func TestViewStateResetOnRemount(t *testing.T) {
	a := testApp(t, onboarded(state.ScreenAlerts, 67))
	press(t, a, "l")
	if a.view.(*alertsView).filter != 1 {
		t.Fatal("filter did not move")
	}
	press(t, a, "1", "2")
	if got := a.view.(*alertsView).filter; got != 0 {
		t.Fatalf("filter after revisit = %d, want 0", got)
	}
}

func TestGalleryOpensInteractive(t *testing.T) {
	a := testApp(t, onboarded(state.ScreenHome, 67))
	a.mode = config.ViewGallery
	a.galleryCursor = 0
	press(t, a, "j", "j")
	if !strings.Contains(a.View(), "3. Screenshot Detector") {
		t.Fatal("gallery list missing")
	}
	press(t, a, "enter")
	if a.mode != config.ViewInteractive {
		t.Fatalf("mode = %q, want interactive", a.mode)
	}
	if got := a.State().Screen; got != state.ScreenScreenshot {
		t.Fatalf("screen = %q, want screenshot", got)
	}
	press(t, a, "v")
	if a.mode != config.ViewGallery || a.galleryCursor != 2 {
		t.Fatalf("toggle back: mode=%q cursor=%d", a.mode, a.galleryCursor)
	}
}

func TestGalleryBeforeOnboardingCanReturnHome(t *testing.T) {
	a := testApp(t, state.Initial(state.InitialScore))
	press(t, a, "v")
	if a.mode != config.ViewGallery {
		t.Fatalf("mode = %q, want gallery", a.mode)
	}
	a.galleryCursor = galleryIndex(state.ScreenQuickFix)
	press(t, a, "enter")
	if got := a.State().Screen; got != state.ScreenQuickFix {
		t.Fatalf("screen = %q, want quickfix", got)
	}
	press(t, a, "esc")
	if got := a.State().Screen; got != state.ScreenHome {
		t.Fatalf("esc from quickfix -> %q, want home", got)
	}
}

func TestBackKeysReturnHome(t *testing.T) {
	leaves := []state.Screen{
		state.ScreenQuickFix, state.ScreenComparison, state.ScreenTimeline,
		state.ScreenScreenshot, state.ScreenSettings, state.ScreenReport,
	}
	for _, s := range leaves {
		for _, k := range []string{"esc", "backspace"} {
			a := testApp(t, onboarded(s, 67))
			if !strings.Contains(a.view.View(a.viewContext()), "‹ home") {
				t.Fatalf("%s: back hint missing", s)
			}
			if k == "esc" {
				press(t, a, "esc")
			} else {
				send(t, a, tea.KeyMsg{Type: tea.KeyBackspace})
			}
			if got := a.State().Screen; got != state.ScreenHome {
				t.Fatalf("%s: %s -> %q, want home", s, k, got)
			}
		}
	}
}

func TestRemappedCursorKeysMoveSelection(t *testing.T) {
	a := testApp(t, onboarded(state.ScreenQuickFix, 67))
	err := a.keys.ApplyKeybindingConfig([]keybindingConfig{
		{Scope: scopeQuickFix, Action: string(actionCursorDown), Keys: []string{"n"}},
		{Scope: scopeQuickFix, Action: string(actionCursorUp), Keys: []string{"p"}},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	v := a.view.(*quickFixView)
	press(t, a, "n", "n")
	if v.cursor != 2 {
		t.Fatalf("cursor after n n = %d, want 2", v.cursor)
	}
	press(t, a, "p")
	if v.cursor != 1 {
		t.Fatalf("cursor after p = %d, want 1", v.cursor)
	}
	press(t, a, "j")
	if v.cursor != 1 {
		t.Fatalf("old key j still moves cursor to %d", v.cursor)
	}
}

func TestCommandJump(t *testing.T) {
	a := testApp(t, onboarded(state.ScreenHome, 67))
	press(t, a, ":")
	if !a.prompting {
		t.Fatal("prompt not open")
	}
	for _, r := range "setings" {
		send(t, a, runeKey(string(r)))
	}
	press(t, a, "enter")
	if a.prompting {
		t.Fatal("prompt still open")
	}
	if got := a.State().Screen; got != state.ScreenSettings {
		t.Fatalf("jump -> %q, want settings", got)
	}

	press(t, a, ":")
	for _, r := range "zzzzzzzz" {
		send(t, a, runeKey(string(r)))
	}
	press(t, a, "enter")
	if !a.statusErr {
		t.Fatalf("status = %q, want error", a.status)
	}
}

func TestScreenshotExport(t *testing.T) {
	a := testApp(t, onboarded(state.ScreenScreenshot, 67))
	press(t, a, "e")
	path := strings.TrimPrefix(a.status, "saved ")
	if path == a.status {
		t.Fatalf("status = %q, want saved path", a.status)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "kind: screenshots") {
		t.Fatalf("export content:\n%s", data)
	}
}

func TestReportDownloadUsesLiveScore(t *testing.T) {
	a := testApp(t, onboarded(state.ScreenReport, 81))
	press(t, a, "d")
	path := strings.TrimPrefix(a.status, "saved ")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "score: 81") {
		t.Fatalf("export content:\n%s", data)
	}
}

func TestResetWithoutJournal(t *testing.T) {
	a := testApp(t, onboarded(state.ScreenSettings, 67))
	press(t, a, "R")
	if !strings.Contains(a.status, "journal is off") {
		t.Fatalf("status = %q", a.status)
	}
}

func TestSettingsMenu(t *testing.T) {
	a := testApp(t, onboarded(state.ScreenSettings, 67))
	v := a.view.(*settingsView)
	press(t, a, "j", "space")
	if !v.toggles[toggleFakeData].on {
		t.Fatal("fake data toggle did not flip")
	}
	if !strings.Contains(a.View(), "Experimental") {
		t.Fatal("experimental warning missing")
	}
	for i := 0; i < 5; i++ {
		press(t, a, "j")
	}
	press(t, a, "enter")
	if got := a.State().Screen; got != state.ScreenTimeline {
		t.Fatalf("scheduled permissions -> %q, want timeline", got)
	}
}

func TestTimelineBannerEnablesUnusual(t *testing.T) {
	a := testApp(t, onboarded(state.ScreenTimeline, 67))
	if !strings.Contains(a.view.View(a.viewContext()), "Unusual Activity Detected") {
		t.Fatal("banner missing")
	}
	press(t, a, "u")
	body := a.view.View(a.viewContext())
	if strings.Contains(body, "Unusual Activity Detected") {
		t.Fatal("banner should hide once unusual-only is on")
	}
	if strings.Contains(body, "Snapchat") {
		t.Fatal("non-unusual event shown with unusual-only")
	}
	press(t, a, "l", "l", "l")
	body = a.view.View(a.viewContext())
	if !strings.Contains(body, "No events found") {
		t.Fatalf("want empty state for unusual location events:\n%s", body)
	}
}

func TestEveryScreenRenders(t *testing.T) {
	for _, s := range state.Screens() {
		a := testApp(t, onboarded(s, 67))
		if s == state.ScreenOnboarding {
			a = testApp(t, state.Initial(67))
		}
		send(t, a, tea.WindowSizeMsg{Width: 120, Height: 50})
		if out := a.View(); !strings.Contains(out, s.Title()) {
			t.Fatalf("%s: title %q missing from view", s, s.Title())
		}
	}
}

func TestToggleSavesOnlyViewMode(t *testing.T) {
	a := testApp(t, onboarded(state.ScreenHome, 67))
	var saved []string
	a.save = func(mode string) error {
		saved = append(saved, mode)
		return nil
	}
	press(t, a, "v", "enter")
	if len(saved) != 2 || saved[0] != config.ViewGallery || saved[1] != config.ViewInteractive {
		t.Fatalf("saved = %v, want [gallery interactive]", saved)
	}
}

func TestAlertChipsAndTimelineStats(t *testing.T) {
	a := testApp(t, onboarded(state.ScreenAlerts, 67))
	body := a.view.View(a.viewContext())
	if strings.Contains(body, "All (") {
		t.Fatalf("All chip should carry no count:\n%s", body)
	}
	for _, want := range []string{"Critical (2)", "Warning (1)", "5 notifications"} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing %q in:\n%s", want, body)
		}
	}
	press(t, a, "l")
	if body := a.view.View(a.viewContext()); !strings.Contains(body, "2 notifications") {
		t.Fatalf("header should count the filtered list:\n%s", body)
	}

	a = testApp(t, onboarded(state.ScreenTimeline, 67))
	press(t, a, "u", "l")
	stats := timelineStats(a.view.(*timelineView).all)
	want := []fixtures.PermissionKind{fixtures.KindCamera, fixtures.KindMic, fixtures.KindLocation}
	if len(stats) != len(want) {
		t.Fatalf("stats = %+v, want camera/mic/location", stats)
	}
	total := 0
	for i, st := range stats {
		if st.kind != want[i] || st.n == 0 {
			t.Fatalf("stat %d = %+v, want non-zero %s", i, st, want[i])
		}
		total += st.n
	}
	if total != len(fixtures.TimelineEvents()) {
		t.Fatalf("stats sum to %d, want every event counted once (%d)", total, len(fixtures.TimelineEvents()))
	}
}
