package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/privix/internal/fixtures"
	"github.com/jask/privix/internal/state"
)

type homeView struct {
	risky  []fixtures.RiskyApp
	cursor int
}

func newHomeView() *homeView {
	return &homeView{risky: fixtures.RiskyApps()}
}

func (v *homeView) Scope() string { return scopeHome }

func (v *homeView) Update(msg tea.Msg, _ viewContext) (screenView, tea.Cmd) {
	m, ok := msg.(keyActionMsg)
	if !ok {
		return v, nil
	}
	switch m.Action {
	case actionCursorUp, actionCursorDown:
		v.cursor = clampStep(v.cursor, len(v.risky), delta(m.Action))
	case actionSelect, actionScan, actionFixAll:
		return v, navigate(state.ScreenQuickFix)
	case actionScreenshots:
		return v, navigate(state.ScreenScreenshot)
	case actionReport:
		return v, navigate(state.ScreenReport)
	case actionCompare:
		return v, navigate(state.ScreenComparison)
	}
	return v, nil
}

func (v *homeView) View(ctx viewContext) string {
	w := ctx.Width
	var b strings.Builder

	b.WriteString(titleStyle.Render("Welcome back! 👋"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Let's check your privacy"))
	b.WriteString("\n\n")

	gaugeBlock := lipgloss.JoinVertical(lipgloss.Center,
		gauge(ctx.State.Score, w-8),
		mutedStyle.Render("Last updated today"),
		keyHint(ctx.key(scopeHome, actionReport), "details"),
	)
	b.WriteString(card(lipgloss.PlaceHorizontal(w-4, lipgloss.Center, gaugeBlock), w))
	b.WriteString("\n")

	stats := fixtures.DashboardStats()
	cells := make([]string, 0, len(stats))
	for _, s := range stats {
		cells = append(cells, lipgloss.JoinVertical(lipgloss.Center, titleStyle.Render(s.Value), mutedStyle.Render(s.Label)))
	}
	b.WriteString(columns(w, cells...))
	b.WriteString("\n\n")

	goal := fmt.Sprintf("%d/%d points earned", fixtures.WeeklyEarned, fixtures.WeeklyGoal)
	b.WriteString(card(strings.Join([]string{
		titleStyle.Render("🎯 Weekly Goal"),
		mutedStyle.Render(fmt.Sprintf("Earn %d privacy points this week", fixtures.WeeklyGoal)),
		progressBar(fixtures.WeeklyEarned, fixtures.WeeklyGoal, w-6, colorAccent),
		subtitleStyle.Render(goal),
	}, "\n"), w))
	b.WriteString("\n")

	b.WriteString(button(ctx.key(scopeHome, actionScan), "Scan Permissions"))
	b.WriteString(" ")
	b.WriteString(keyHint(ctx.key(scopeHome, actionScreenshots), "Screenshot Detector"))
	b.WriteString("\n")
	b.WriteString(keyHint(ctx.key(scopeHome, actionCompare), "Compare apps"))
	b.WriteString("  ")
	b.WriteString(keyHint(ctx.key(scopeHome, actionFixAll), "Fix all"))
	b.WriteString("\n\n")

	b.WriteString(section("Risky Apps"))
	b.WriteString("\n")
	for i, app := range v.risky {
		name := fmt.Sprintf("%s %s", app.Icon, app.Name)
		perms := mutedStyle.Render(fmt.Sprintf("%d perms", app.Permissions))
		risk := badge(app.Risk.Upper(), riskColor(app.Risk))
		left := cursor(i == v.cursor) + name + "  " + perms
		gap := w - lipgloss.Width(left) - lipgloss.Width(risk)
		b.WriteString(left + strings.Repeat(" ", max(1, gap)) + risk)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
