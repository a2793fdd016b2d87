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

type timelineView struct {
	all     []fixtures.TimelineEvent
	perm    int
	unusual bool
}

func newTimelineView() *timelineView {
	return &timelineView{all: fixtures.TimelineEvents()}
}

func (v *timelineView) Scope() string { return scopeTimeline }

func (v *timelineView) filter() filtering.TimelineFilter {
	return filtering.TimelineFilter{
		Permission:  filtering.TimelinePermissions()[v.perm],
		UnusualOnly: v.unusual,
	}
}

func (v *timelineView) Update(msg tea.Msg, _ viewContext) (screenView, tea.Cmd) {
	m, ok := msg.(keyActionMsg)
	if !ok {
		return v, nil
	}
	switch m.Action {
	case actionBack:
		return v, navigate(state.ScreenHome)
	case actionFilterPrev, actionFilterNext:
		v.perm = step(v.perm, len(filtering.TimelinePermissions()), delta(m.Action))
	case actionUnusual:
		v.unusual = !v.unusual
	}
	return v, nil
}

type permissionStat struct {
	kind  fixtures.PermissionKind
	n     int
	color lipgloss.Color
}

// timelineStats counts the full fixture per permission, ignoring filters.
func timelineStats(all []fixtures.TimelineEvent) []permissionStat {
	stats := []permissionStat{
		{kind: fixtures.KindCamera, color: colorPink},
		{kind: fixtures.KindMic, color: colorYellow},
		{kind: fixtures.KindLocation, color: colorInfo},
	}
	for i := range stats {
		stats[i].n = filtering.Count(all, filtering.ByPermission(stats[i].kind))
	}
	return stats
}

func permissionChip(k fixtures.PermissionKind) string {
	if k == "" {
		return "All"
	}
	return k.Label()
}

func (v *timelineView) View(ctx viewContext) string {
	w := ctx.Width
	var b strings.Builder
	b.WriteString(backHeader(ctx, scopeTimeline))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Permission Timeline"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("When apps accessed your data"))
	b.WriteString("\n\n")

	kinds := filtering.TimelinePermissions()
	labels := make([]string, len(kinds))
	for i, k := range kinds {
		labels[i] = permissionChip(k)
	}
	b.WriteString(chips(labels, v.perm))
	b.WriteString("\n")
	b.WriteString(toggle(v.unusual) + " " + keyHint(ctx.key(scopeTimeline, actionUnusual), "Unusual only"))
	b.WriteString("\n\n")

	unusual := filtering.Count(v.all, func(e fixtures.TimelineEvent) bool { return e.Unusual })
	stats := timelineStats(v.all)
	cells := make([]string, len(stats))
	for i, st := range stats {
		cells[i] = lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(st.color).Bold(true).Render(fmt.Sprint(st.n)),
			mutedStyle.Render(st.kind.Label()))
	}
	b.WriteString(columns(w, cells...))
	b.WriteString("\n\n")

	if unusual > 0 && !v.unusual {
		body := errorStyle.Bold(true).Render("⚠ Unusual Activity Detected") + "\n" +
			subtitleStyle.Render(wrap(fmt.Sprintf("%d permission accesses happened at unusual times.", unusual), w-6)) + "\n" +
			keyHint(ctx.key(scopeTimeline, actionUnusual), "Review unusual events")
		b.WriteString(banner(body, w, colorError))
		b.WriteString("\n\n")
	}

	groups := filtering.GroupByDate(filtering.Timeline(v.all, v.filter()))
	if len(groups) == 0 {
		empty := lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render("No events found"),
			mutedStyle.Render("Try adjusting your filters"))
		b.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Center, empty))
		return b.String()
	}
	for _, g := range groups {
		b.WriteString(section(g.Date))
		b.WriteString("\n")
		for _, e := range g.Events {
			mark := mutedStyle.Render("│")
			name := titleStyle.Render(e.App)
			if e.Unusual {
				mark = errorStyle.Render("!")
				name += " " + badge("UNUSUAL", colorError)
			}
			when := mutedStyle.Render(e.Time)
			head := fmt.Sprintf("%s %s %s", mark, e.AppIcon, name)
			gap := w - lipgloss.Width(head) - lipgloss.Width(when)
			b.WriteString(head + strings.Repeat(" ", max(1, gap)) + when)
			b.WriteString("\n")
			b.WriteString("    " + subtitleStyle.Render(e.Permission.Label()) + mutedStyle.Render(" · "+truncate(e.Details, w-16)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
