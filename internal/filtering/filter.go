// Package filtering implements the predicates the screens apply to fixture
// lists. Every filter returns the matching subset in original order.
package filtering

import "github.com/jask/privix/internal/fixtures"

// Apply returns the items for which keep is true, preserving order. A nil
// predicate keeps everything.
func Apply[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep == nil || keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Count returns how many items satisfy keep.
func Count[T any](items []T, keep func(T) bool) int {
	n := 0
	for _, it := range items {
		if keep == nil || keep(it) {
			n++
		}
	}
	return n
}

// AlertFilter is the chip selection on the alerts screen.
type AlertFilter string

const (
	AlertsAll      AlertFilter = "all"
	AlertsCritical AlertFilter = "critical"
	AlertsWarning  AlertFilter = "warning"
)

// AlertFilters lists chips in display order.
func AlertFilters() []AlertFilter {
	return []AlertFilter{AlertsAll, AlertsCritical, AlertsWarning}
}

func (f AlertFilter) Match(a fixtures.Alert) bool {
	if f == AlertsAll || f == "" {
		return true
	}
	return string(a.Severity) == string(f)
}

// Alerts filters alerts by the chip f.
func Alerts(list []fixtures.Alert, f AlertFilter) []fixtures.Alert {
	return Apply(list, f.Match)
}

// BySeverity keeps alerts with exactly severity s.
func BySeverity(list []fixtures.Alert, s fixtures.Severity) []fixtures.Alert {
	return Apply(list, func(a fixtures.Alert) bool { return a.Severity == s })
}

// ScreenshotFilter is the chip selection on the screenshot detector.
type ScreenshotFilter string

const (
	ScreenshotsAll       ScreenshotFilter = "all"
	ScreenshotsSensitive ScreenshotFilter = "sensitive"
)

func (f ScreenshotFilter) Match(s fixtures.ScreenshotEvent) bool {
	if f == ScreenshotsSensitive {
		return s.Sensitive
	}
	return true
}

// Screenshots filters screenshots by the chip f.
func Screenshots(list []fixtures.ScreenshotEvent, f ScreenshotFilter) []fixtures.ScreenshotEvent {
	return Apply(list, f.Match)
}

// ByCategory keeps screenshots of category c.
func ByCategory(c fixtures.ScreenshotCategory) func(fixtures.ScreenshotEvent) bool {
	return func(s fixtures.ScreenshotEvent) bool { return s.Category == c }
}

// TimelineFilter combines the permission chip and the unusual-only toggle.
// An empty Permission means all permissions.
type TimelineFilter struct {
	Permission  fixtures.PermissionKind
	UnusualOnly bool
}

func (f TimelineFilter) Match(e fixtures.TimelineEvent) bool {
	if f.Permission != "" && e.Permission != f.Permission {
		return false
	}
	if f.UnusualOnly && !e.Unusual {
		return false
	}
	return true
}

// TimelinePermissions lists the permission chips in display order; the empty
// kind stands for "All".
func TimelinePermissions() []fixtures.PermissionKind {
	return []fixtures.PermissionKind{"", fixtures.KindCamera, fixtures.KindMic, fixtures.KindLocation}
}

// Timeline filters events by f.
func Timeline(list []fixtures.TimelineEvent, f TimelineFilter) []fixtures.TimelineEvent {
	return Apply(list, f.Match)
}

// ByPermission keeps timeline events for kind k.
func ByPermission(k fixtures.PermissionKind) func(fixtures.TimelineEvent) bool {
	return func(e fixtures.TimelineEvent) bool { return e.Permission == k }
}

// DateGroup is a run of timeline events sharing a date label.
type DateGroup struct {
	Date   string
	Events []fixtures.TimelineEvent
}

// GroupByDate buckets events by Date. Groups appear in the order their date
// is first seen and events keep their relative order inside a group.
func GroupByDate(events []fixtures.TimelineEvent) []DateGroup {
	var groups []DateGroup
	index := make(map[string]int)
	for _, e := range events {
		i, ok := index[e.Date]
		if !ok {
			i = len(groups)
			index[e.Date] = i
			groups = append(groups, DateGroup{Date: e.Date})
		}
		groups[i].Events = append(groups[i].Events, e)
	}
	return groups
}

// Enabled keeps granted permissions.
func Enabled(p fixtures.Permission) bool { return p.Enabled }

// EnabledRisky keeps granted permissions at critical or high risk.
func EnabledRisky(p fixtures.Permission) bool { return p.Enabled && p.Risk.Risky() }
