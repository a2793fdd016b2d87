// Package fixtures holds the compile-time display data behind every screen.
// Accessors return fresh copies; callers may mutate what they get back
// without affecting later calls.
package fixtures

var alerts = []Alert{
	{
		ID: "1", App: "TikTok", AppIcon: "🎵", Permission: KindCamera, Time: "2:04 AM", Severity: SeverityCritical,
		Description: "Used camera while app was in background",
		Details:     "TikTok accessed your camera at 2:04 AM when the app was not actively being used. This is unusual behavior.",
	},
	{
		ID: "2", App: "Instagram", AppIcon: "📷", Permission: KindMic, Time: "3:24 AM", Severity: SeverityCritical,
		Description: "Microphone accessed at unusual hour",
		Details:     "Instagram used your microphone at 3:24 AM. Apps should not access your microphone when you're not actively using them.",
	},
	{
		ID: "3", App: "Facebook", AppIcon: "👥", Permission: KindLocation, Time: "1 hour ago", Severity: SeverityWarning,
		Description: "Background location tracking detected",
		Details:     "Facebook has been tracking your location in the background 47 times today.",
	},
	{
		ID: "4", App: "Snapchat", AppIcon: "👻", Permission: KindCamera, Time: "2 hours ago", Severity: SeverityInfo,
		Description: "Camera accessed",
		Details:     "Snapchat used your camera while you were actively using the app.",
	},
	{
		ID: "5", App: "WhatsApp", AppIcon: "💬", Permission: KindMic, Time: "3 hours ago", Severity: SeverityInfo,
		Description: "Microphone used for voice message",
		Details:     "WhatsApp accessed your microphone for a voice message.",
	},
}

var alertActivity = []ActivityEntry{
	{Time: "2:04 AM", Event: "Camera accessed in background", Critical: true},
	{Time: "1:47 AM", Event: "Location tracking active"},
	{Time: "12:30 AM", Event: "App opened"},
	{Time: "Yesterday 11:45 PM", Event: "Microphone used"},
}

var permissions = []Permission{
	{ID: "1", App: "TikTok", AppIcon: "🎵", Kind: KindCamera, Label: "Camera Access", Enabled: true, Risk: RiskCritical, Reason: "Used 28 times this week, even when app was closed"},
	{ID: "2", App: "TikTok", AppIcon: "🎵", Kind: KindMic, Label: "Microphone Access", Enabled: true, Risk: RiskCritical, Reason: "Always listening in background"},
	{ID: "3", App: "Instagram", AppIcon: "📷", Kind: KindCamera, Label: "Camera Access", Enabled: true, Risk: RiskHigh, Reason: "Used at unusual hours (3:24 AM)"},
	{ID: "4", App: "Facebook", AppIcon: "👥", Kind: KindLocation, Label: "Location Access", Enabled: true, Risk: RiskHigh, Reason: "Tracks location even when not using app"},
	{ID: "5", App: "Instagram", AppIcon: "📷", Kind: KindMic, Label: "Microphone Access", Enabled: true, Risk: RiskHigh, Reason: "Used 23 times this week"},
	{ID: "6", App: "Snapchat", AppIcon: "👻", Kind: KindContacts, Label: "Contacts Access", Enabled: true, Risk: RiskMedium, Reason: "Syncing all contacts to servers"},
}

var screenshots = []ScreenshotEvent{
	{ID: "1", App: "Banking App", AppIcon: "🏦", Time: "2:15 PM", Date: "Today", Content: "Account balance and transaction history", Sensitive: true, Category: CategoryBanking},
	{ID: "2", App: "WhatsApp", AppIcon: "💬", Time: "11:30 AM", Date: "Today", Content: "Private conversation screenshot", Sensitive: true, Category: CategoryMessage},
	{ID: "3", App: "Instagram", AppIcon: "📷", Time: "9:45 AM", Date: "Today", Content: "Story content", Sensitive: false, Category: CategoryPhoto},
	{ID: "4", App: "Notes", AppIcon: "📝", Time: "8:20 PM", Date: "Yesterday", Content: "Password list", Sensitive: true, Category: CategoryDocument},
	{ID: "5", App: "Messages", AppIcon: "💬", Time: "3:30 PM", Date: "Yesterday", Content: "Text message conversation", Sensitive: true, Category: CategoryMessage},
}

var timeline = []TimelineEvent{
	{ID: "1", App: "TikTok", AppIcon: "🎵", Permission: KindCamera, Time: "2:04 AM", Date: "Today", Unusual: true, Details: "Background access while screen off"},
	{ID: "2", App: "Instagram", AppIcon: "📷", Permission: KindMic, Time: "3:24 AM", Date: "Today", Unusual: true, Details: "Microphone active during sleep hours"},
	{ID: "3", App: "Snapchat", AppIcon: "👻", Permission: KindCamera, Time: "10:15 AM", Date: "Today", Details: "Normal usage - taking photo"},
	{ID: "4", App: "Facebook", AppIcon: "👥", Permission: KindLocation, Time: "11:30 AM", Date: "Today", Details: "Location check-in"},
	{ID: "5", App: "Instagram", AppIcon: "📷", Permission: KindCamera, Time: "2:45 PM", Date: "Today", Details: "Story upload"},
	{ID: "6", App: "TikTok", AppIcon: "🎵", Permission: KindMic, Time: "4:20 PM", Date: "Today", Details: "Video recording"},
	{ID: "7", App: "WhatsApp", AppIcon: "💬", Permission: KindMic, Time: "6:30 PM", Date: "Today", Details: "Voice message"},
	{ID: "8", App: "Instagram", AppIcon: "📷", Permission: KindLocation, Time: "8:15 PM", Date: "Today", Details: "Post location tag"},
	{ID: "9", App: "Uber", AppIcon: "🚗", Permission: KindLocation, Time: "11:47 PM", Date: "Yesterday", Details: "Trip tracking"},
	{ID: "10", App: "TikTok", AppIcon: "🎵", Permission: KindCamera, Time: "1:30 AM", Date: "Yesterday", Unusual: true, Details: "Background access - app closed"},
}

// profileOrder fixes iteration order over the comparison profiles.
var profileOrder = []string{"tiktok", "instagram", "whatsapp", "signal"}

var profiles = map[string]AppProfile{
	"tiktok": {
		Key: "tiktok", Name: "TikTok", Icon: "🎵", Score: 32,
		Permissions: []string{"Camera", "Microphone", "Location", "Contacts", "Photos", "Calendar", "Storage"},
		Trackers:    12,
		DataShared:  []string{"Location", "Device ID", "Contacts", "Usage Data", "Browsing History"},
		Alternative: "instagram",
	},
	"instagram": {
		Key: "instagram", Name: "Instagram", Icon: "📷", Score: 54,
		Permissions: []string{"Camera", "Microphone", "Location", "Photos", "Storage"},
		Trackers:    8,
		DataShared:  []string{"Location", "Device ID", "Usage Data"},
	},
	"whatsapp": {
		Key: "whatsapp", Name: "WhatsApp", Icon: "💬", Score: 78,
		Permissions: []string{"Camera", "Microphone", "Contacts", "Photos", "Storage"},
		Trackers:    2,
		DataShared:  []string{"Phone Number", "Device ID"},
		Alternative: "signal",
	},
	"signal": {
		Key: "signal", Name: "Signal", Icon: "🔒", Score: 95,
		Permissions: []string{"Camera", "Microphone", "Contacts", "Photos"},
		Trackers:    0,
		DataShared:  []string{"Phone Number (encrypted)"},
	},
}

// comparedPermissions are the rows of the comparison matrix.
var comparedPermissions = []string{"Camera", "Microphone", "Location", "Contacts", "Photos", "Calendar", "Storage"}

var riskyApps = []RiskyApp{
	{Name: "Instagram", Icon: "📷", Risk: RiskHigh, Permissions: 8},
	{Name: "TikTok", Icon: "🎵", Risk: RiskCritical, Permissions: 12},
	{Name: "Facebook", Icon: "👥", Risk: RiskHigh, Permissions: 10},
	{Name: "Snapchat", Icon: "👻", Risk: RiskMedium, Permissions: 6},
}

var dashboardStats = []StatCard{
	{Label: "Camera", Value: "3 apps"},
	{Label: "Mic", Value: "5 apps"},
	{Label: "Location", Value: "8 apps"},
}

var scoreHistory = []ScorePoint{
	{Day: "Mon", Score: 72},
	{Day: "Tue", Score: 68},
	{Day: "Wed", Score: 65},
	{Day: "Thu", Score: 63},
	{Day: "Fri", Score: 67},
	{Day: "Sat", Score: 69},
	{Day: "Sun", Score: 67},
}

var appActivity = []AppActivity{
	{App: "Instagram", Camera: 15, Mic: 23, Location: 45},
	{App: "TikTok", Camera: 28, Mic: 31, Location: 52},
	{App: "Facebook", Camera: 8, Mic: 12, Location: 89},
	{App: "Snapchat", Camera: 19, Mic: 7, Location: 34},
}

var onboarding = []OnboardingStep{
	{Glyph: "👁", Title: "Your Apps are Watching", Description: "Every app on your phone is collecting data about you. Let's see what they know."},
	{Glyph: "🛡", Title: "We Crush Them, You Win", Description: "Privix analyzes and blocks sneaky permissions, giving you the power back."},
	{Glyph: "🔒", Title: "Take Back Control", Description: "Get real-time alerts, revoke permissions instantly, and boost your privacy score."},
	{Glyph: "✨", Title: "You're All Set!", Description: "Ready to become a privacy champion? Let's scan your apps and get started."},
}

var insights = []Insight{
	{Icon: "🔴", Title: "Riskiest App: TikTok", Description: "Used camera 28 times and mic 31 times this week"},
	{Icon: "🟢", Title: "Safest App: Messages", Description: "Only uses permissions when app is open"},
	{Icon: "⚠️", Title: "Unusual Activity", Description: "Instagram used camera at 3:24 AM on Tuesday"},
}

var settingItems = []SettingItem{
	{Section: "Notifications", Title: "Notification Schedule", Description: "Customize when you receive alerts"},
	{Section: "Permissions", Title: "Permission Templates", Description: "Preset permission configurations"},
	{Section: "Permissions", Title: "Scheduled Permissions", Description: "Auto-enable/disable at certain times"},
	{Section: "About", Title: "Team", Description: "Meet the Privix team"},
	{Section: "About", Title: "App Info", Description: "Version 1.0.0"},
	{Section: "About", Title: "Privacy Policy", Description: "How we protect your data"},
}

const (
	// AlertBadge is the unread count shown on the Alerts nav entry.
	AlertBadge = 3

	ReportPeriod    = "Nov 12 - Nov 19, 2025"
	WeeklyGoal      = 50
	WeeklyEarned    = 32
	AppVersion      = "1.0.0"
	RevokedTotal    = 47
	PointsThisMonth = 320
)

func Alerts() []Alert { return append([]Alert(nil), alerts...) }

func AlertActivity() []ActivityEntry { return append([]ActivityEntry(nil), alertActivity...) }

func Permissions() []Permission { return append([]Permission(nil), permissions...) }

func Screenshots() []ScreenshotEvent { return append([]ScreenshotEvent(nil), screenshots...) }

func TimelineEvents() []TimelineEvent { return append([]TimelineEvent(nil), timeline...) }

func RiskyApps() []RiskyApp { return append([]RiskyApp(nil), riskyApps...) }

func DashboardStats() []StatCard { return append([]StatCard(nil), dashboardStats...) }

func ScoreHistory() []ScorePoint { return append([]ScorePoint(nil), scoreHistory...) }

func WeeklyActivity() []AppActivity { return append([]AppActivity(nil), appActivity...) }

func OnboardingSteps() []OnboardingStep { return append([]OnboardingStep(nil), onboarding...) }

func Insights() []Insight { return append([]Insight(nil), insights...) }

func SettingItems() []SettingItem { return append([]SettingItem(nil), settingItems...) }

func ComparedPermissions() []string { return append([]string(nil), comparedPermissions...) }

// ProfileKeys lists comparison profiles in display order.
func ProfileKeys() []string { return append([]string(nil), profileOrder...) }

// Profile returns the comparison profile for key.
func Profile(key string) (AppProfile, bool) {
	p, ok := profiles[key]
	if !ok {
		return AppProfile{}, false
	}
	p.Permissions = append([]string(nil), p.Permissions...)
	p.DataShared = append([]string(nil), p.DataShared...)
	return p, true
}
