package store

// Persisted layout: one serialized collection per key, plus per-user
// password keys of the form password_<userId>.
const (
	KeyUsers                = "users"
	KeyCurrentUser          = "currentUser"
	KeyCompany              = "company"
	KeyChecklists           = "checklists"
	KeyTemplates            = "templates"
	KeyActivities           = "activities"
	KeyTeamMembers          = "teamMembers"
	KeyNotifications        = "notifications"
	KeyReports              = "reports"
	KeyNotificationSettings = "notificationSettings"
	KeySecuritySettings     = "securitySettings"

	passwordKeyPrefix = "password_"
)

const (
	// ActivityLogCap bounds the activity log; the oldest entries are
	// evicted once it is exceeded.
	ActivityLogCap = 100
	// NotificationCap bounds the notification list the same way.
	NotificationCap = 50
)

func passwordKey(userID string) string {
	return passwordKeyPrefix + userID
}
