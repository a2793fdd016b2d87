package fixtures

import "strings"

// Severity classifies an alert.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Risk classifies a permission or app.
type Risk string

const (
	RiskCritical Risk = "critical"
	RiskHigh     Risk = "high"
	RiskMedium   Risk = "medium"
	RiskLow      Risk = "low"
)

// Risky reports whether the level is critical or high.
func (r Risk) Risky() bool {
	return r == RiskCritical || r == RiskHigh
}

// Upper is the badge label.
func (r Risk) Upper() string { return strings.ToUpper(string(r)) }

// PermissionKind is the OS permission a record refers to.
type PermissionKind string

const (
	KindCamera   PermissionKind = "camera"
	KindMic      PermissionKind = "mic"
	KindLocation PermissionKind = "location"
	KindContacts PermissionKind = "contacts"
	KindCalendar PermissionKind = "calendar"
)

// Label is the display name of the permission kind.
func (k PermissionKind) Label() string {
	switch k {
	case KindCamera:
		return "Camera"
	case KindMic:
		return "Microphone"
	case KindLocation:
		return "Location"
	case KindContacts:
		return "Contacts"
	case KindCalendar:
		return "Calendar"
	default:
		return string(k)
	}
}

// ScreenshotCategory is the content class of a captured screenshot.
type ScreenshotCategory string

const (
	CategoryBanking  ScreenshotCategory = "banking"
	CategoryMessage  ScreenshotCategory = "message"
	CategoryPhoto    ScreenshotCategory = "photo"
	CategoryDocument ScreenshotCategory = "document"
	CategoryOther    ScreenshotCategory = "other"
)

// Glyph is the icon shown next to the category.
func (c ScreenshotCategory) Glyph() string {
	switch c {
	case CategoryBanking:
		return "🏦"
	case CategoryMessage:
		return "💬"
	case CategoryPhoto:
		return "📸"
	case CategoryDocument:
		return "📄"
	default:
		return "📱"
	}
}

// Alert is one entry in the alerts center.
type Alert struct {
	ID          string
	App         string
	AppIcon     string
	Permission  PermissionKind
	Time        string
	Severity    Severity
	Description string
	Details     string
}

// Permission is one toggleable grant on the quick-fix screen.
type Permission struct {
	ID      string
	App     string
	AppIcon string
	Kind    PermissionKind
	Label   string
	Enabled bool
	Risk    Risk
	Reason  string
}

// ScreenshotEvent is one detected screenshot.
type ScreenshotEvent struct {
	ID        string             `yaml:"id"`
	App       string             `yaml:"app"`
	AppIcon   string             `yaml:"-"`
	Time      string             `yaml:"time"`
	Date      string             `yaml:"date"`
	Content   string             `yaml:"content"`
	Sensitive bool               `yaml:"sensitive"`
	Category  ScreenshotCategory `yaml:"category"`
}

// TimelineEvent is one permission access on the timeline.
type TimelineEvent struct {
	ID         string
	App        string
	AppIcon    string
	Permission PermissionKind
	Time       string
	Date       string
	Unusual    bool
	Details    string
}

// AppProfile is one side of the app comparison.
type AppProfile struct {
	Key         string
	Name        string
	Icon        string
	Score       int
	Permissions []string
	Trackers    int
	DataShared  []string
	Alternative string
}

// Requests reports whether the profile asks for the named permission.
func (p AppProfile) Requests(permission string) bool {
	for _, name := range p.Permissions {
		if name == permission {
			return true
		}
	}
	return false
}

// RiskyApp is a row in the dashboard's risky apps list.
type RiskyApp struct {
	Name        string
	Icon        string
	Risk        Risk
	Permissions int
}

// StatCard is a small labelled figure.
type StatCard struct {
	Label string
	Value string
}

// ScorePoint is one day of score history.
type ScorePoint struct {
	Day   string `yaml:"day"`
	Score int    `yaml:"score"`
}

// AppActivity is weekly permission usage for one app.
type AppActivity struct {
	App      string `yaml:"app"`
	Camera   int    `yaml:"camera"`
	Mic      int    `yaml:"mic"`
	Location int    `yaml:"location"`
}

// OnboardingStep is one page of the onboarding flow.
type OnboardingStep struct {
	Glyph       string
	Title       string
	Description string
}

// Insight is a highlighted finding in the weekly report.
type Insight struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// ActivityEntry is a row in an alert's recent activity.
type ActivityEntry struct {
	Time     string
	Event    string
	Critical bool
}

// SettingItem is a menu entry on the settings screen.
type SettingItem struct {
	Title       string
	Description string
	Section     string
}
