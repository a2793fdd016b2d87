package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/privix/internal/fixtures"
	"github.com/jask/privix/internal/session"
	"github.com/jask/privix/internal/state"
)

// historyRows caps the ledger lines shown under Score History.
const historyRows = 5

type settingToggle struct {
	title string
	desc  string
	on    bool
}

// settingsView rows are the toggles, then the menu items, then score history
// and reset.
type settingsView struct {
	toggles []settingToggle
	items   []fixtures.SettingItem
	cursor  int
	history *session.History
}

const (
	toggleNightMode = iota
	toggleFakeData
	toggleAutoRevoke
	togglePush
)

func newSettingsView() *settingsView {
	return &settingsView{
		toggles: []settingToggle{
			toggleNightMode:  {title: "Night Privacy Mode", desc: "Block all permissions 11 PM - 7 AM"},
			toggleFakeData:   {title: "Fake Data Mode", desc: "Feed apps fake location and contacts"},
			toggleAutoRevoke: {title: "Auto-Revoke", desc: "Revoke unused permissions after 30 days", on: true},
			togglePush:       {title: "Push Notifications", desc: "Get alerted on suspicious access", on: true},
		},
		items: fixtures.SettingItems(),
	}
}

func (v *settingsView) Scope() string { return scopeSettings }

func (v *settingsView) rows() int { return len(v.toggles) + len(v.items) + 2 }

func (v *settingsView) Update(msg tea.Msg, _ viewContext) (screenView, tea.Cmd) {
	switch m := msg.(type) {
	case historyLoadedMsg:
		h := m.history
		v.history = &h
		return v, nil
	case resetDoneMsg:
		v.history = nil
		return v, nil
	}
	m, ok := msg.(keyActionMsg)
	if !ok {
		return v, nil
	}
	switch m.Action {
	case actionBack:
		return v, navigate(state.ScreenHome)
	case actionCursorUp, actionCursorDown:
		v.cursor = clampStep(v.cursor, v.rows(), delta(m.Action))
	case actionResetSession:
		return v, func() tea.Msg { return resetSessionMsg{} }
	case actionSelect:
		return v, v.activate()
	}
	return v, nil
}

func (v *settingsView) activate() tea.Cmd {
	if v.cursor < len(v.toggles) {
		v.toggles[v.cursor].on = !v.toggles[v.cursor].on
		return nil
	}
	switch v.cursor {
	case v.rows() - 2:
		return func() tea.Msg { return historyRequestMsg{} }
	case v.rows() - 1:
		return func() tea.Msg { return resetSessionMsg{} }
	}
	item := v.items[v.cursor-len(v.toggles)]
	if item.Title == "Scheduled Permissions" {
		return navigate(state.ScreenTimeline)
	}
	return statusCmd(item.Title + ": " + item.Description)
}

func (v *settingsView) View(ctx viewContext) string {
	w := ctx.Width
	var b strings.Builder
	b.WriteString(backHeader(ctx, scopeSettings))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Settings"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Customize your privacy"))
	b.WriteString("\n\n")

	b.WriteString(section("Privacy Modes"))
	b.WriteString("\n")
	for i, t := range v.toggles {
		head := cursor(v.cursor == i) + titleStyle.Render(t.title)
		sw := toggle(t.on)
		b.WriteString(head + strings.Repeat(" ", max(1, w-lipgloss.Width(head)-lipgloss.Width(sw))) + sw)
		b.WriteString("\n")
		b.WriteString("  " + mutedStyle.Render(truncate(t.desc, w-2)))
		b.WriteString("\n")
		if i == toggleFakeData && t.on {
			b.WriteString(banner(warningStyle.Render("⚠ Experimental: some apps may stop working"), w, colorWarning))
			b.WriteString("\n")
		}
	}

	lastSection := ""
	for i, item := range v.items {
		if item.Section != lastSection {
			b.WriteString("\n")
			b.WriteString(section(item.Section))
			b.WriteString("\n")
			lastSection = item.Section
		}
		row := len(v.toggles) + i
		head := cursor(v.cursor == row) + titleStyle.Render(item.Title)
		arrow := mutedStyle.Render("›")
		b.WriteString(head + strings.Repeat(" ", max(1, w-lipgloss.Width(head)-1)) + arrow)
		b.WriteString("\n")
		b.WriteString("  " + mutedStyle.Render(truncate(item.Description, w-2)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(section("Session"))
	b.WriteString("\n")
	historyRow := v.rows() - 2
	head := cursor(v.cursor == historyRow) + titleStyle.Render("Score History")
	b.WriteString(head + strings.Repeat(" ", max(1, w-lipgloss.Width(head)-1)) + mutedStyle.Render("›"))
	b.WriteString("\n")
	b.WriteString(v.renderHistory(ctx, w))
	resetRow := v.rows() - 1
	label := errorStyle.Render("Reset Session")
	if k := ctx.key(scopeSettings, actionResetSession); k != "" {
		label += mutedStyle.Render(" (" + k + ")")
	}
	b.WriteString(cursor(v.cursor == resetRow) + label)
	b.WriteString("\n")
	hint := "Clear recorded score history"
	if !ctx.JournalEnabled {
		hint = "Session journal is off"
	}
	b.WriteString("  " + mutedStyle.Render(hint))
	b.WriteString("\n\n")

	achievement := accentStyle.Render("🏆 Privacy Champion") + "\n" + subtitleStyle.Render(wrap(fmt.Sprintf(
		"You've revoked %d permissions and earned %d privacy points this month!",
		fixtures.RevokedTotal, fixtures.PointsThisMonth), w-6))
	b.WriteString(banner(achievement, w, colorAccent))
	return b.String()
}

func (v *settingsView) renderHistory(ctx viewContext, w int) string {
	switch {
	case !ctx.JournalEnabled:
		return "  " + mutedStyle.Render("Enable session.persist to keep a score ledger") + "\n"
	case v.history == nil:
		return "  " + mutedStyle.Render("Score changes recorded this session") + "\n"
	case len(v.history.Events) == 0:
		return "  " + mutedStyle.Render("No score changes yet") + "\n"
	}
	var b strings.Builder
	events := v.history.Events
	if len(events) > historyRows {
		events = events[len(events)-historyRows:]
	}
	for _, e := range events {
		reason := e.Reason
		if reason == "" {
			reason = "score change"
		}
		line := fmt.Sprintf("%+d  %s  %d→%d", e.Delta, reason, e.ScoreBefore, e.ScoreAfter)
		style := successStyle
		if e.Delta < 0 {
			style = errorStyle
		}
		b.WriteString("  " + style.Render(truncate(line, w-2)))
		b.WriteString("\n")
	}
	b.WriteString("  " + accentStyle.Render(fmt.Sprintf("Net %+d across %d changes", v.history.Net, len(v.history.Events))))
	b.WriteString("\n")
	return b.String()
}
