package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/privix/internal/filtering"
	"github.com/jask/privix/internal/fixtures"
	"github.com/jask/privix/internal/state"
)

type alertsView struct {
	all      []fixtures.Alert
	filter   int
	cursor   int
	selected *fixtures.Alert
}

func newAlertsView() *alertsView {
	return &alertsView{all: fixtures.Alerts()}
}

func (v *alertsView) Scope() string {
	if v.selected != nil {
		return scopeAlertDetail
	}
	return scopeAlerts
}

func (v *alertsView) activeFilter() filtering.AlertFilter {
	return filtering.AlertFilters()[v.filter]
}

func (v *alertsView) visible() []fixtures.Alert {
	return filtering.Alerts(v.all, v.activeFilter())
}

func (v *alertsView) Update(msg tea.Msg, _ viewContext) (screenView, tea.Cmd) {
	m, ok := msg.(keyActionMsg)
	if !ok {
		return v, nil
	}
	if v.selected != nil {
		switch m.Action {
		case actionRevoke:
			return v, navigate(state.ScreenQuickFix)
		case actionTimeline:
			return v, navigate(state.ScreenTimeline)
		case actionBack:
			v.selected = nil
		}
		return v, nil
	}
	switch m.Action {
	case actionFilterPrev, actionFilterNext:
		v.filter = step(v.filter, len(filtering.AlertFilters()), delta(m.Action))
		v.cursor = 0
	case actionCursorUp, actionCursorDown:
		v.cursor = clampStep(v.cursor, len(v.visible()), delta(m.Action))
	case actionSelect:
		list := v.visible()
		if v.cursor < len(list) {
			a := list[v.cursor]
			v.selected = &a
		}
	}
	return v, nil
}

func (v *alertsView) View(ctx viewContext) string {
	if v.selected != nil {
		return v.renderDetail(ctx)
	}
	w := ctx.Width
	var b strings.Builder
	b.WriteString(titleStyle.Render("Alerts"))
	b.WriteString("\n")
	list := v.visible()
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%d notifications", len(list))))
	b.WriteString("\n\n")

	labels := make([]string, 0, 3)
	for _, f := range filtering.AlertFilters() {
		label := strings.ToUpper(string(f[:1])) + string(f[1:])
		if f != filtering.AlertsAll {
			label = fmt.Sprintf("%s (%d)", label, filtering.Count(v.all, f.Match))
		}
		labels = append(labels, label)
	}
	b.WriteString(chips(labels, v.filter))
	b.WriteString("\n\n")

	if len(list) == 0 {
		b.WriteString(mutedStyle.Render("No alerts in this filter"))
		return b.String()
	}
	for i, a := range list {
		dot := lipgloss.NewStyle().Foreground(severityColor(a.Severity)).Render("●")
		head := fmt.Sprintf("%s %s %s", dot, a.AppIcon, titleStyle.Render(a.App))
		when := mutedStyle.Render(a.Time)
		gap := w - 2 - lipgloss.Width(head) - lipgloss.Width(when)
		b.WriteString(cursor(i == v.cursor) + head + strings.Repeat(" ", max(1, gap)) + when)
		b.WriteString("\n")
		b.WriteString("    " + subtitleStyle.Render(truncate(a.Description, w-4)))
		b.WriteString("\n")
		b.WriteString("    " + mutedStyle.Render(a.Permission.Label()))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v *alertsView) renderDetail(ctx viewContext) string {
	a := v.selected
	w := ctx.Width
	var b strings.Builder
	b.WriteString(keyHint(ctx.key(scopeAlertDetail, actionBack), "back"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Alert Details"))
	b.WriteString("\n\n")

	sev := badge(strings.ToUpper(string(a.Severity)), severityColor(a.Severity))
	b.WriteString(fmt.Sprintf("%s %s  %s", a.AppIcon, titleStyle.Render(a.App), sev))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(a.Permission.Label() + " · " + a.Time))
	b.WriteString("\n\n")

	b.WriteString(card(titleStyle.Render("What happened?")+"\n"+subtitleStyle.Render(wrap(a.Details, w-6)), w))
	b.WriteString("\n")
	b.WriteString(banner(warningStyle.Render("⚠ Why this matters")+"\n"+subtitleStyle.Render(wrap(
		"Apps accessing sensitive permissions at unusual times or in the background may be collecting data without your knowledge.", w-6)),
		w, colorWarning))
	b.WriteString("\n\n")

	b.WriteString(section("Recent Activity"))
	b.WriteString("\n")
	for _, e := range fixtures.AlertActivity() {
		marker := mutedStyle.Render("○")
		event := subtitleStyle.Render(e.Event)
		if e.Critical {
			marker = errorStyle.Render("●")
			event = errorStyle.Render(e.Event)
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n", marker, mutedStyle.Render(e.Time), event))
	}
	b.WriteString("\n")
	b.WriteString(button(ctx.key(scopeAlertDetail, actionRevoke), "Revoke "+a.Permission.Label()+" Permission"))
	b.WriteString("\n")
	b.WriteString(keyHint(ctx.key(scopeAlertDetail, actionTimeline), "View Full Timeline"))
	return b.String()
}
