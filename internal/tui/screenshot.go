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

var screenshotFilters = []filtering.ScreenshotFilter{filtering.ScreenshotsAll, filtering.ScreenshotsSensitive}

type screenshotView struct {
	all        []fixtures.ScreenshotEvent
	filter     int
	detection  bool
	autoDelete bool
}

func newScreenshotView() *screenshotView {
	return &screenshotView{all: fixtures.Screenshots(), detection: true}
}

func (v *screenshotView) Scope() string { return scopeScreenshot }

func (v *screenshotView) visible() []fixtures.ScreenshotEvent {
	return filtering.Screenshots(v.all, screenshotFilters[v.filter])
}

func (v *screenshotView) Update(msg tea.Msg, _ viewContext) (screenView, tea.Cmd) {
	m, ok := msg.(keyActionMsg)
	if !ok {
		return v, nil
	}
	switch m.Action {
	case actionBack:
		return v, navigate(state.ScreenHome)
	case actionFilterPrev, actionFilterNext:
		v.filter = step(v.filter, len(screenshotFilters), delta(m.Action))
	case actionDetection:
		v.detection = !v.detection
	case actionAutoDelete:
		v.autoDelete = !v.autoDelete
	case actionExport:
		return v, requestExport(exportScreenshots)
	case actionConfigure:
		return v, navigate(state.ScreenSettings)
	}
	return v, nil
}

func (v *screenshotView) View(ctx viewContext) string {
	w := ctx.Width
	var b strings.Builder
	b.WriteString(backHeader(ctx, scopeScreenshot))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Screenshot Detector"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Monitor sensitive screenshots"))
	b.WriteString("\n\n")

	row := func(label, k string, on bool) string {
		left := keyHint(k, label)
		sw := toggle(on)
		return left + strings.Repeat(" ", max(1, w-lipgloss.Width(left)-lipgloss.Width(sw))) + sw
	}
	b.WriteString(row("Screenshot Detection", ctx.key(scopeScreenshot, actionDetection), v.detection))
	b.WriteString("\n")
	b.WriteString(row("Auto-Delete Sensitive", ctx.key(scopeScreenshot, actionAutoDelete), v.autoDelete))
	b.WriteString("\n\n")

	sensitive := filtering.Count(v.all, filtering.ScreenshotsSensitive.Match)
	if sensitive > 0 {
		body := warningStyle.Bold(true).Render(fmt.Sprintf("⚠ %d Sensitive Screenshots", sensitive)) + "\n" +
			subtitleStyle.Render(wrap("These may contain passwords, banking details or private messages.", w-6))
		b.WriteString(banner(body, w, colorWarning))
		b.WriteString("\n\n")
	}

	stat := func(c fixtures.ScreenshotCategory, label string) string {
		n := filtering.Count(v.all, filtering.ByCategory(c))
		return lipgloss.JoinVertical(lipgloss.Center,
			c.Glyph()+" "+titleStyle.Render(fmt.Sprint(n)),
			mutedStyle.Render(label))
	}
	b.WriteString(columns(w,
		stat(fixtures.CategoryBanking, "Banking"),
		stat(fixtures.CategoryMessage, "Messages"),
		stat(fixtures.CategoryDocument, "Documents"),
	))
	b.WriteString("\n\n")

	labels := []string{fmt.Sprintf("All (%d)", len(v.all)), fmt.Sprintf("Sensitive (%d)", sensitive)}
	b.WriteString(chips(labels, v.filter))
	b.WriteString("\n\n")

	for _, s := range v.visible() {
		name := titleStyle.Render(s.App)
		if s.Sensitive {
			name += " " + badge("SENSITIVE", colorError)
		}
		when := mutedStyle.Render(s.Date + " " + s.Time)
		head := s.AppIcon + " " + name
		gap := w - lipgloss.Width(head) - lipgloss.Width(when)
		if gap < 1 {
			b.WriteString(head + "\n" + "   " + when)
		} else {
			b.WriteString(head + strings.Repeat(" ", gap) + when)
		}
		b.WriteString("\n")
		b.WriteString("   " + subtitleStyle.Render(truncate(s.Content, w-3)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(button(ctx.key(scopeScreenshot, actionExport), "Export Log"))
	b.WriteString(" ")
	b.WriteString(button(ctx.key(scopeScreenshot, actionConfigure), "Configure"))
	return b.String()
}
