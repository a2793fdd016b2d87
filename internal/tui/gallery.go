package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/privix/internal/state"
)

func galleryIndex(s state.Screen) int {
	for i, cand := range state.Screens() {
		if cand == s {
			return i
		}
	}
	return 0
}

// previewState is the state a screen is shown with in the gallery: the live
// score, and onboarding considered done for every screen but onboarding.
func previewState(live state.State, s state.Screen) state.State {
	return state.State{Screen: s, Onboarded: s != state.ScreenOnboarding, Score: live.Score}
}

func (a *App) renderGallery() string {
	screens := state.Screens()
	selected := screens[a.galleryCursor]

	var b strings.Builder
	b.WriteString(brandStyle.Render("Privix") + mutedStyle.Render("  Screen Gallery"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Privacy management prototype"))
	b.WriteString("\n\n")
	for i, s := range screens {
		line := fmt.Sprintf("%d. %s", i+1, s.Title())
		if i == a.galleryCursor {
			b.WriteString(cursor(true) + accentStyle.Render(line))
		} else {
			b.WriteString(cursor(false) + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(keyHint(a.keys.KeyFor(scopeGallery, actionGalleryOpen), "open interactive"))
	b.WriteString("\n")
	b.WriteString(keyHint(a.keys.KeyFor(scopeGlobal, actionToggleView), "toggle view mode"))
	list := lipgloss.NewStyle().Width(32).PaddingRight(2).Render(b.String())

	ps := previewState(a.store.State(), selected)
	ctx := a.viewContext()
	ctx.State = ps
	body := newView(selected).View(ctx)
	phone := renderPhone(a.cfg.UI.Clock, ps, clipHeight(body, contentHeight(ps.ShowNav())), a.keys)
	preview := lipgloss.JoinVertical(lipgloss.Left, mutedStyle.Render(selected.Title()), phone)

	return lipgloss.JoinHorizontal(lipgloss.Top, list, preview)
}
