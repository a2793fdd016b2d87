package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/privix/internal/state"
)

// chips renders a row of filter chips with the active one highlighted.
func chips(labels []string, active int) string {
	parts := make([]string, 0, len(labels))
	for i, l := range labels {
		if i == active {
			parts = append(parts, chipOnStyle.Render(l))
		} else {
			parts = append(parts, chipOffStyle.Render(l))
		}
	}
	return strings.Join(parts, " ")
}

func toggle(on bool) string {
	if on {
		return successStyle.Render("[● on ]")
	}
	return mutedStyle.Render("[○ off]")
}

func badge(text string, c lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(colorCrust).Background(c).Bold(true).Padding(0, 1).Render(text)
}

func cursor(selected bool) string {
	if selected {
		return cursorStyle.Render("▶ ")
	}
	return "  "
}

// progressBar draws value/total as a bar of width cells.
func progressBar(value, total, width int, c lipgloss.Color) string {
	if width <= 0 || total <= 0 {
		return ""
	}
	filled := value * width / total
	filled = min(max(filled, 0), width)
	return lipgloss.NewStyle().Foreground(c).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(colorSurface1).Render(strings.Repeat("░", width-filled))
}

// gauge is the privacy score dial: a bar, the value and its band.
func gauge(score, width int) string {
	band := state.BandFor(score)
	c := bandColor(band)
	value := lipgloss.NewStyle().Foreground(c).Bold(true).Render(fmt.Sprintf("%d", score))
	label := lipgloss.NewStyle().Foreground(c).Render(string(band))
	head := lipgloss.JoinHorizontal(lipgloss.Bottom,
		value, mutedStyle.Render("/100  "), label)
	return lipgloss.JoinVertical(lipgloss.Center,
		mutedStyle.Render("Privacy Score"),
		head,
		progressBar(score, state.MaxScore, width, c),
	)
}

// keyHint renders "[k] label" with the key highlighted.
func keyHint(k, label string) string {
	if k == "" {
		return mutedStyle.Render(label)
	}
	return accentStyle.Render("["+k+"]") + " " + subtitleStyle.Render(label)
}

func button(k, label string) string {
	if k == "" {
		return buttonStyle.Render(label)
	}
	return buttonStyle.Render(label + " (" + k + ")")
}

func section(title string) string {
	return mutedStyle.Render(strings.ToUpper(title))
}

// card wraps body in a rounded box width cells wide.
func card(body string, width int) string {
	return cardStyle.Width(max(4, width-2)).Render(body)
}

func banner(body string, width int, c lipgloss.Color) string {
	return bannerStyle.BorderForeground(c).Width(max(4, width-2)).Render(body)
}

// columns lays out cells side by side, each width/len(cells) wide.
func columns(width int, cells ...string) string {
	if len(cells) == 0 {
		return ""
	}
	w := width / len(cells)
	parts := make([]string, 0, len(cells))
	for _, c := range cells {
		parts = append(parts, lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Render(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
