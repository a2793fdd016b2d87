package tui

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/privix/internal/fixtures"
)

const (
	trendChartHeight = 8
	usageChartHeight = 8
)

// historyWeekStart anchors the Mon..Sun score history on a real week so the
// time series chart has timestamps to plot against.
var historyWeekStart = time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC)

// scoreTrendChart plots the score history as a braille line.
func scoreTrendChart(history []fixtures.ScorePoint, width int) string {
	if len(history) == 0 || width < 10 {
		return ""
	}
	lo, hi := history[0].Score, history[0].Score
	dates := make([]time.Time, len(history))
	labels := make(map[int64]string, len(history))
	for i, p := range history {
		lo, hi = min(lo, p.Score), max(hi, p.Score)
		dates[i] = historyWeekStart.AddDate(0, 0, i)
		labels[dates[i].Unix()] = p.Day[:1]
	}
	yMin, yMax := float64(max(0, lo-5)), float64(min(100, hi+5))

	chart := tslc.New(width, trendChartHeight)
	chart.SetXStep(1)
	chart.SetYStep(2)
	chart.SetStyle(lipgloss.NewStyle().Foreground(colorAccent))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(colorSurface2)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	chart.SetTimeRange(dates[0], dates[len(dates)-1])
	chart.SetViewTimeRange(dates[0], dates[len(dates)-1])
	chart.SetYRange(yMin, yMax)
	chart.SetViewYRange(yMin, yMax)
	chart.Model.XLabelFormatter = dayLabelFormatter(labels)
	chart.Model.YLabelFormatter = func(_ int, v float64) string { return fmt.Sprintf("%.0f", v) }

	for i, p := range history {
		chart.Push(tslc.TimePoint{Time: dates[i], Value: float64(p.Score)})
	}
	chart.DrawBraille()
	return chart.View()
}

func dayLabelFormatter(labels map[int64]string) linechart.LabelFormatter {
	return func(_ int, v float64) string {
		day := time.Unix(int64(v), 0).UTC().Truncate(24 * time.Hour)
		return labels[day.Unix()]
	}
}

// usageBarChart stacks camera, mic and location uses per app.
func usageBarChart(activity []fixtures.AppActivity, width int) string {
	if len(activity) == 0 || width < 10 {
		return ""
	}
	camera := lipgloss.NewStyle().Foreground(colorAccent)
	mic := lipgloss.NewStyle().Foreground(colorPeach)
	location := lipgloss.NewStyle().Foreground(colorTeal)

	data := make([]barchart.BarData, 0, len(activity))
	for _, a := range activity {
		data = append(data, barchart.BarData{
			Label: truncate(a.App, 5),
			Values: []barchart.BarValue{
				{Name: "Camera", Value: float64(a.Camera), Style: camera},
				{Name: "Mic", Value: float64(a.Mic), Style: mic},
				{Name: "Location", Value: float64(a.Location), Style: location},
			},
		})
	}
	chart := barchart.New(width, usageChartHeight,
		barchart.WithStyles(
			lipgloss.NewStyle().Foreground(colorSurface2),
			lipgloss.NewStyle().Foreground(colorOverlay1),
		),
		barchart.WithBarGap(2),
	)
	chart.PushAll(data)
	chart.Draw()

	legend := camera.Render("■") + mutedStyle.Render(" Camera  ") +
		mic.Render("■") + mutedStyle.Render(" Mic  ") +
		location.Render("■") + mutedStyle.Render(" Location")
	return lipgloss.JoinVertical(lipgloss.Left, chart.View(), legend)
}
