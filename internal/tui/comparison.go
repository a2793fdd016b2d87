package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/privix/internal/fixtures"
	"github.com/jask/privix/internal/state"
)

type comparisonView struct {
	keys      []string
	current   int
	alt       int
	switching bool
	spinner   spinner.Model
}

func newComparisonView() *comparisonView {
	keys := fixtures.ProfileKeys()
	v := &comparisonView{
		keys:    keys,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(accentStyle)),
	}
	v.current = indexOf(keys, "tiktok")
	v.alt = indexOf(keys, "instagram")
	return v
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return 0
}

func (v *comparisonView) Scope() string {
	if v.switching {
		return scopeSwitching
	}
	return scopeComparison
}

func (v *comparisonView) profiles() (fixtures.AppProfile, fixtures.AppProfile) {
	cur, _ := fixtures.Profile(v.keys[v.current])
	alt, _ := fixtures.Profile(v.keys[v.alt])
	return cur, alt
}

func (v *comparisonView) Update(msg tea.Msg, ctx viewContext) (screenView, tea.Cmd) {
	switch m := msg.(type) {
	case keyActionMsg:
		if v.switching {
			return v, nil
		}
		switch m.Action {
		case actionBack:
			return v, navigate(state.ScreenHome)
		case actionCycleCurrent:
			v.current = (v.current + 1) % len(v.keys)
		case actionCycleAlt:
			v.alt = (v.alt + 1) % len(v.keys)
		case actionSwitch:
			v.switching = true
			mount := ctx.Mount
			return v, tea.Batch(
				v.spinner.Tick,
				tick(switchDuration, func(time.Time) tea.Msg { return switchDoneMsg{mount: mount} }),
			)
		}
	case switchDoneMsg:
		if !v.switching {
			return v, nil
		}
		v.switching = false
		return v, dispatch(
			state.ApplyDelta{N: state.DeltaSwitchApp, Reason: "switch app"},
			state.Navigate{To: state.ScreenHome},
		)
	case spinner.TickMsg:
		if !v.switching {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(m)
		return v, cmd
	}
	return v, nil
}

func (v *comparisonView) View(ctx viewContext) string {
	w := ctx.Width
	cur, alt := v.profiles()
	if v.switching {
		body := lipgloss.JoinVertical(lipgloss.Center,
			v.spinner.View()+" "+titleStyle.Render("Switching Apps..."),
			"",
			successStyle.Render("Your privacy score is increasing!"),
		)
		return lipgloss.Place(w, contentHeight(true), lipgloss.Center, lipgloss.Center, body)
	}

	var b strings.Builder
	b.WriteString(backHeader(ctx, scopeComparison))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Compare Apps"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Find safer alternatives"))
	b.WriteString("\n\n")

	side := func(p fixtures.AppProfile, k string) string {
		score := lipgloss.NewStyle().Foreground(scoreColor(p.Score)).Bold(true).Render(fmt.Sprint(p.Score))
		return lipgloss.JoinVertical(lipgloss.Center,
			p.Icon+" "+titleStyle.Render(p.Name),
			score,
			mutedStyle.Render("Privacy Score"),
			keyHint(k, "change"),
		)
	}
	b.WriteString(columns(w,
		side(cur, ctx.key(scopeComparison, actionCycleCurrent)),
		mutedStyle.Render("\nvs"),
		side(alt, ctx.key(scopeComparison, actionCycleAlt)),
	))
	b.WriteString("\n\n")

	diff := alt.Score - cur.Score
	switch {
	case diff > 0:
		b.WriteString(successStyle.Render(fmt.Sprintf("%s is %d points safer", alt.Name, diff)))
	case diff < 0:
		b.WriteString(errorStyle.Render(fmt.Sprintf("%s is %d points less private", alt.Name, -diff)))
	default:
		b.WriteString(mutedStyle.Render("Both apps score the same"))
	}
	b.WriteString("\n\n")

	b.WriteString(section("Permissions Requested"))
	b.WriteString("\n")
	colW := (w - 14) / 2
	for _, perm := range fixtures.ComparedPermissions() {
		b.WriteString(padRight(subtitleStyle.Render(perm), 14))
		b.WriteString(padRight(requestMark(cur.Requests(perm)), colW))
		b.WriteString(requestMark(alt.Requests(perm)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(section("Known Trackers"))
	b.WriteString("\n")
	b.WriteString(padRight(subtitleStyle.Render("Trackers"), 14))
	b.WriteString(padRight(trackerCount(cur.Trackers), colW))
	b.WriteString(trackerCount(alt.Trackers))
	b.WriteString("\n\n")

	b.WriteString(section("Data Shared with Third Parties"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(cur.Name) + mutedStyle.Render(": "+strings.Join(cur.DataShared, ", ")))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(alt.Name) + mutedStyle.Render(": "+strings.Join(alt.DataShared, ", ")))
	b.WriteString("\n\n")

	b.WriteString(button(ctx.key(scopeComparison, actionSwitch), "Switch to "+alt.Name))
	return b.String()
}

func requestMark(requested bool) string {
	if requested {
		return errorStyle.Render("✗ yes")
	}
	return successStyle.Render("✓ no")
}

func trackerCount(n int) string {
	switch {
	case n == 0:
		return successStyle.Render("0")
	case n > 5:
		return errorStyle.Render(fmt.Sprint(n))
	default:
		return warningStyle.Render(fmt.Sprint(n))
	}
}
