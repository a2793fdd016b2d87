package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/privix/internal/fixtures"
	"github.com/jask/privix/internal/state"
)

// Simulated device dimensions, in cells, inside the frame border.
const (
	phoneInnerWidth  = 44
	phoneInnerHeight = 30
	contentPad       = 2
	contentWidth     = phoneInnerWidth - 2*contentPad
	statusBarHeight  = 1
	navBarHeight     = 3
)

// contentHeight is the number of rows available to the mounted screen.
func contentHeight(showNav bool) int {
	h := phoneInnerHeight - statusBarHeight
	if showNav {
		h -= navBarHeight
	}
	return h
}

type navItem struct {
	screen state.Screen
	action Action
	icon   string
	label  string
	badge  int
}

func navItems() []navItem {
	return []navItem{
		{screen: state.ScreenHome, action: actionNavHome, icon: "⌂", label: "Home"},
		{screen: state.ScreenAlerts, action: actionNavAlerts, icon: "◉", label: "Alerts", badge: fixtures.AlertBadge},
		{screen: state.ScreenReport, action: actionNavReport, icon: "▤", label: "Report"},
		{screen: state.ScreenSettings, action: actionNavSettings, icon: "⚙", label: "Settings"},
	}
}

// navTarget maps a global nav action to its screen.
func navTarget(a Action) (state.Screen, bool) {
	for _, it := range navItems() {
		if it.action == a {
			return it.screen, true
		}
	}
	return "", false
}

func renderDeviceStatus(clock string) string {
	left := titleStyle.Render(clock)
	right := subtitleStyle.Render("▂▄▆█  ▮▮▮▯")
	gap := phoneInnerWidth - 2 - ansi.StringWidth(left) - ansi.StringWidth(right)
	return " " + left + strings.Repeat(" ", max(1, gap)) + right + " "
}

func renderNav(current state.Screen, keys *KeyRegistry) string {
	items := navItems()
	cells := make([]string, 0, len(items))
	for _, it := range items {
		icon := it.icon
		if it.badge > 0 {
			icon += " " + badge(fmt.Sprint(it.badge), colorError)
		}
		style := mutedStyle
		if it.screen == current {
			style = accentStyle
		}
		label := it.label
		if hint := keys.KeyFor(scopeGlobal, it.action); hint != "" {
			label = hint + " " + label
		}
		cells = append(cells, lipgloss.JoinVertical(lipgloss.Center, style.Render(icon), style.Render(label)))
	}
	sep := lipgloss.NewStyle().Foreground(colorSurface1).Render(strings.Repeat("─", phoneInnerWidth))
	return lipgloss.JoinVertical(lipgloss.Left, sep, columns(phoneInnerWidth, cells...))
}

// renderPhone lays out the device frame around body. The bottom navigation
// is present only when s.ShowNav reports true.
func renderPhone(clock string, s state.State, body string, keys *KeyRegistry) string {
	h := contentHeight(s.ShowNav())
	content := lipgloss.NewStyle().
		Width(phoneInnerWidth).
		Height(h).
		MaxHeight(h).
		Padding(0, contentPad).
		Render(clipHeight(body, h))
	parts := []string{renderDeviceStatus(clock), content}
	if s.ShowNav() {
		parts = append(parts, renderNav(s.Screen, keys))
	}
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
