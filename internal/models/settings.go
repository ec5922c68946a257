package models

type NotificationSettings struct {
	EmailNotifications bool `json:"emailNotifications"`
	PushNotifications  bool `json:"pushNotifications"`
	SMSNotifications   bool `json:"smsNotifications"`
	TaskReminders      bool `json:"taskReminders"`
	DeadlineAlerts     bool `json:"deadlineAlerts"`
	ComplianceUpdates  bool `json:"complianceUpdates"`
	WeeklyReports      bool `json:"weeklyReports"`
	ImmediateAlerts    bool `json:"immediateAlerts"`
	DailyDigest        bool `json:"dailyDigest"`
}

type SecuritySettings struct {
	TwoFactorEnabled   bool   `json:"twoFactorEnabled"`
	SessionTimeout     string `json:"sessionTimeout"`
	LoginNotifications bool   `json:"loginNotifications"`
	DataEncryption     bool   `json:"dataEncryption"`
	AccessLogging      bool   `json:"accessLogging"`
	PasswordExpiry     string `json:"passwordExpiry"`
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		EmailNotifications: true,
		PushNotifications:  true,
		SMSNotifications:   false,
		TaskReminders:      true,
		DeadlineAlerts:     true,
		ComplianceUpdates:  true,
		WeeklyReports:      true,
		ImmediateAlerts:    true,
		DailyDigest:        false,
	}
}

func DefaultSecuritySettings() SecuritySettings {
	return SecuritySettings{
		TwoFactorEnabled:   true,
		SessionTimeout:     "30",
		LoginNotifications: true,
		DataEncryption:     true,
		AccessLogging:      true,
		PasswordExpiry:     "90",
	}
}
