// Package export writes the screenshot log and the weekly report to YAML
// files a user can keep or share.
package export

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jask/privix/internal/filtering"
	"github.com/jask/privix/internal/fixtures"
	"github.com/jask/privix/internal/state"
)

// Report is the weekly report as exported.
type Report struct {
	Period   string                 `yaml:"period"`
	Score    int                    `yaml:"score"`
	Band     string                 `yaml:"band"`
	TrendPct int                    `yaml:"trend_pct"`
	History  []fixtures.ScorePoint  `yaml:"history"`
	Activity []fixtures.AppActivity `yaml:"activity"`
	Insights []fixtures.Insight     `yaml:"insights"`
}

// ScreenshotLog is the screenshot detector history as exported.
type ScreenshotLog struct {
	Total       int                        `yaml:"total"`
	Sensitive   int                        `yaml:"sensitive"`
	Screenshots []fixtures.ScreenshotEvent `yaml:"screenshots"`
}

type envelope struct {
	Kind        string    `yaml:"kind"`
	GeneratedAt time.Time `yaml:"generated_at"`
	Body        any       `yaml:"body"`
}

// BuildReport assembles the weekly report around the live score.
func BuildReport(score int) Report {
	history := fixtures.ScoreHistory()
	score = state.Clamp(score)
	return Report{
		Period:   fixtures.ReportPeriod,
		Score:    score,
		Band:     string(state.BandFor(score)),
		TrendPct: Trend(history),
		History:  history,
		Activity: fixtures.WeeklyActivity(),
		Insights: fixtures.Insights(),
	}
}

// Trend is the percentage change from the first to the last point, rounded.
func Trend(history []fixtures.ScorePoint) int {
	if len(history) < 2 || history[0].Score == 0 {
		return 0
	}
	first := float64(history[0].Score)
	last := float64(history[len(history)-1].Score)
	return int(math.Round((last - first) / first * 100))
}

// BuildScreenshotLog wraps shots with their counts.
func BuildScreenshotLog(shots []fixtures.ScreenshotEvent) ScreenshotLog {
	return ScreenshotLog{
		Total:       len(shots),
		Sensitive:   filtering.Count(shots, filtering.ScreenshotsSensitive.Match),
		Screenshots: shots,
	}
}

// Exporter writes timestamped files into Dir.
type Exporter struct {
	Dir string
	Now func() time.Time
}

func New(dir string) *Exporter {
	return &Exporter{Dir: dir, Now: time.Now}
}

// WeeklyReport writes r and returns the file path.
func (e *Exporter) WeeklyReport(r Report) (string, error) {
	return e.write("report", r)
}

// ScreenshotLog writes the log of shots and returns the file path.
func (e *Exporter) ScreenshotLog(shots []fixtures.ScreenshotEvent) (string, error) {
	return e.write("screenshots", BuildScreenshotLog(shots))
}

func (e *Exporter) write(kind string, body any) (string, error) {
	if e.Dir == "" {
		return "", fmt.Errorf("export: no directory configured")
	}
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	ts := now().UTC().Truncate(time.Second)
	data, err := yaml.Marshal(envelope{Kind: kind, GeneratedAt: ts, Body: body})
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", kind, err)
	}
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir export dir: %w", err)
	}
	path := filepath.Join(e.Dir, fmt.Sprintf("privix-%s-%s.yaml", kind, ts.Format("20060102-150405")))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", kind, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("write %s: %w", kind, err)
	}
	return path, nil
}
