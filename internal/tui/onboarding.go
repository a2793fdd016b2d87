package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/privix/internal/fixtures"
	"github.com/jask/privix/internal/state"
)

type onboardingView struct {
	steps []fixtures.OnboardingStep
	step  int
}

func newOnboardingView() *onboardingView {
	return &onboardingView{steps: fixtures.OnboardingSteps()}
}

func (v *onboardingView) Scope() string { return scopeOnboarding }

func (v *onboardingView) last() bool { return v.step >= len(v.steps)-1 }

func (v *onboardingView) Update(msg tea.Msg, _ viewContext) (screenView, tea.Cmd) {
	m, ok := msg.(keyActionMsg)
	if !ok {
		return v, nil
	}
	switch m.Action {
	case actionNext:
		if v.last() {
			return v, dispatch(state.CompleteOnboarding{})
		}
		v.step++
	case actionSkip:
		// the final step only offers "get started"
		if !v.last() {
			return v, dispatch(state.CompleteOnboarding{})
		}
	}
	return v, nil
}

func (v *onboardingView) View(ctx viewContext) string {
	st := v.steps[v.step]
	center := lipgloss.NewStyle().Width(ctx.Width).Align(lipgloss.Center)

	dots := make([]string, len(v.steps))
	for i := range v.steps {
		if i == v.step {
			dots[i] = accentStyle.Render("●")
		} else {
			dots[i] = mutedStyle.Render("○")
		}
	}

	next := "Next"
	if v.last() {
		next = "Get Started"
	}
	actions := button(ctx.key(scopeOnboarding, actionNext), next)
	if !v.last() {
		actions += "  " + keyHint(ctx.key(scopeOnboarding, actionSkip), "Skip")
	}

	lines := []string{
		"",
		center.Render(brandStyle.Render("🛡 Privix")),
		"",
		"",
		center.Render(lipgloss.NewStyle().Bold(true).Render(st.Glyph)),
		"",
		center.Render(titleStyle.Render(st.Title)),
		"",
		center.Render(subtitleStyle.Render(wrap(st.Description, ctx.Width-4))),
		"",
		"",
		center.Render(strings.Join(dots, " ")),
		"",
		center.Render(actions),
	}
	return strings.Join(lines, "\n")
}
