package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/privix/internal/fixtures"
	"github.com/jask/privix/internal/state"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSky      lipgloss.Color = "#89dceb"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
	colorCrust    lipgloss.Color = "#11111b"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent  = colorMauve
	colorBrand   = colorBlue
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
	colorMuted   = colorOverlay1
	colorBorder  = colorSurface2
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	accentStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	brandStyle    = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	warningStyle  = lipgloss.NewStyle().Foreground(colorWarning)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	chipOnStyle = lipgloss.NewStyle().
			Background(colorAccent).
			Foreground(colorCrust).
			Bold(true).
			Padding(0, 1)
	chipOffStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorSubtext0).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Background(colorBrand).
			Foreground(colorCrust).
			Bold(true).
			Padding(0, 1)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Background(colorBase)
	toastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSuccess).
			Foreground(colorSuccess).
			Bold(true).
			Padding(0, 1)
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Background(colorMantle).
			Padding(1, 2)

	statusBarStyle    = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().Foreground(colorError).Background(colorSurface0)
	footerStyle       = lipgloss.NewStyle().Background(colorMantle)
)

func severityColor(s fixtures.Severity) lipgloss.Color {
	switch s {
	case fixtures.SeverityCritical:
		return colorError
	case fixtures.SeverityWarning:
		return colorWarning
	default:
		return colorInfo
	}
}

func riskColor(r fixtures.Risk) lipgloss.Color {
	switch r {
	case fixtures.RiskCritical:
		return colorError
	case fixtures.RiskHigh:
		return colorPeach
	case fixtures.RiskMedium:
		return colorWarning
	default:
		return colorSuccess
	}
}

func bandColor(b state.Band) lipgloss.Color {
	switch b {
	case state.BandGreat:
		return colorSuccess
	case state.BandGood:
		return colorSky
	case state.BandFair:
		return colorWarning
	default:
		return colorError
	}
}

// scoreColor colors a 0-100 score, used for app profiles as well as the
// privacy score.
func scoreColor(score int) lipgloss.Color {
	return bandColor(state.BandFor(score))
}
