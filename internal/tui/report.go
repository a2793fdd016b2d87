package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/privix/internal/export"
	"github.com/jask/privix/internal/state"
)

type reportView struct{}

func newReportView() *reportView { return &reportView{} }

func (v *reportView) Scope() string { return scopeReport }

func (v *reportView) Update(msg tea.Msg, _ viewContext) (screenView, tea.Cmd) {
	m, ok := msg.(keyActionMsg)
	if !ok {
		return v, nil
	}
	switch m.Action {
	case actionBack:
		return v, navigate(state.ScreenHome)
	case actionFixIssues:
		return v, navigate(state.ScreenQuickFix)
	case actionDownload:
		return v, requestExport(exportReport)
	}
	return v, nil
}

func (v *reportView) View(ctx viewContext) string {
	w := ctx.Width
	r := export.BuildReport(ctx.State.Score)
	var b strings.Builder
	b.WriteString(backHeader(ctx, scopeReport))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Weekly Report"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(r.Period))
	b.WriteString("\n\n")

	trend := fmt.Sprintf("%+d%%", r.TrendPct)
	trendStyle := successStyle
	if r.TrendPct < 0 {
		trendStyle = errorStyle
	}
	head := lipgloss.JoinHorizontal(lipgloss.Top,
		section("Privacy Score Trend"), "  ", trendStyle.Render(trend+" this week"))
	b.WriteString(head)
	b.WriteString("\n")
	b.WriteString(scoreTrendChart(r.History, w))
	b.WriteString("\n\n")

	b.WriteString(section("Permission Usage"))
	b.WriteString("\n")
	b.WriteString(usageBarChart(r.Activity, w))
	b.WriteString("\n\n")

	b.WriteString(section("Top Insights"))
	b.WriteString("\n")
	for _, in := range r.Insights {
		b.WriteString(in.Icon + " " + titleStyle.Render(in.Title))
		b.WriteString("\n")
		b.WriteString("   " + mutedStyle.Render(wrap(in.Description, w-3)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	band := lipgloss.NewStyle().Foreground(bandColor(state.Band(r.Band))).Bold(true)
	score := lipgloss.JoinVertical(lipgloss.Center,
		mutedStyle.Render("Current Score"),
		band.Render(fmt.Sprintf("%d/100", r.Score)),
		band.Render(r.Band),
	)
	b.WriteString(card(lipgloss.PlaceHorizontal(w-4, lipgloss.Center, score), w))
	b.WriteString("\n\n")

	b.WriteString(button(ctx.key(scopeReport, actionFixIssues), "Fix Issues"))
	b.WriteString(" ")
	b.WriteString(button(ctx.key(scopeReport, actionDownload), "Download"))
	return b.String()
}
