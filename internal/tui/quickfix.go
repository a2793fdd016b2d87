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

type quickFixView struct {
	perms  []fixtures.Permission
	cursor int
}

func newQuickFixView() *quickFixView {
	return &quickFixView{perms: fixtures.Permissions()}
}

func (v *quickFixView) Scope() string { return scopeQuickFix }

func (v *quickFixView) Update(msg tea.Msg, _ viewContext) (screenView, tea.Cmd) {
	m, ok := msg.(keyActionMsg)
	if !ok {
		return v, nil
	}
	switch m.Action {
	case actionBack:
		return v, navigate(state.ScreenHome)
	case actionCursorUp, actionCursorDown:
		v.cursor = clampStep(v.cursor, len(v.perms), delta(m.Action))
	case actionToggle:
		if v.cursor < len(v.perms) {
			v.perms[v.cursor].Enabled = !v.perms[v.cursor].Enabled
		}
	case actionRevokeAll:
		for i := range v.perms {
			v.perms[i].Enabled = false
		}
		return v, tea.Batch(
			dispatch(state.ApplyDelta{N: state.DeltaRevokeAll, Reason: "revoke all"}),
			showToast(fmt.Sprintf("Permissions Updated! +%d points", state.DeltaRevokeAll)),
		)
	case actionFixRisky:
		for i := range v.perms {
			if v.perms[i].Risk.Risky() {
				v.perms[i].Enabled = false
			}
		}
		return v, tea.Batch(
			dispatch(state.ApplyDelta{N: state.DeltaRevokeRisky, Reason: "fix risky"}),
			showToast(fmt.Sprintf("Permissions Updated! +%d points", state.DeltaRevokeRisky)),
		)
	}
	return v, nil
}

func (v *quickFixView) View(ctx viewContext) string {
	w := ctx.Width
	var b strings.Builder
	b.WriteString(backHeader(ctx, scopeQuickFix))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Quick Fix"))
	b.WriteString("\n")
	enabled := filtering.Count(v.perms, filtering.Enabled)
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%d permissions active", enabled)))
	b.WriteString("\n\n")

	b.WriteString(button(ctx.key(scopeQuickFix, actionRevokeAll), "Revoke All"))
	b.WriteString(" ")
	b.WriteString(button(ctx.key(scopeQuickFix, actionFixRisky), "Fix Risky Only"))
	b.WriteString("\n\n")

	risky := filtering.Count(v.perms, filtering.EnabledRisky)
	b.WriteString(banner(brandStyle.Render("✦ Smart Recommendations")+"\n"+subtitleStyle.Render(wrap(
		fmt.Sprintf("We found %d risky permissions that should be revoked for better privacy.", risky), w-6)),
		w, colorBrand))
	b.WriteString("\n\n")

	b.WriteString(section("Permissions by App"))
	b.WriteString("\n")
	for i, p := range v.perms {
		head := fmt.Sprintf("%s %s", p.AppIcon, titleStyle.Render(p.App))
		sw := toggle(p.Enabled)
		gap := w - 2 - lipgloss.Width(head) - lipgloss.Width(sw)
		b.WriteString(cursor(i == v.cursor) + head + strings.Repeat(" ", max(1, gap)) + sw)
		b.WriteString("\n")
		b.WriteString("    " + subtitleStyle.Render(p.Label) + " " + lipgloss.NewStyle().Foreground(riskColor(p.Risk)).Render(p.Risk.Upper()))
		b.WriteString("\n")
		b.WriteString("    " + mutedStyle.Render(truncate(p.Reason, w-4)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
