package store

type Repositories struct {
	Users         *UserRepository
	Company       *CompanyRepository
	Checklists    *ChecklistRepository
	Templates     *TemplateRepository
	Activities    *ActivityRepository
	TeamMembers   *TeamRepository
	Notifications *NotificationRepository
	Reports       *ReportRepository
	Settings      *SettingsRepository
	Credentials   *CredentialRepository
}

func NewRepositories(kv *KV) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(kv),
		Company:       NewCompanyRepository(kv),
		Checklists:    NewChecklistRepository(kv),
		Templates:     NewTemplateRepository(kv),
		Activities:    NewActivityRepository(kv),
		TeamMembers:   NewTeamRepository(kv),
		Notifications: NewNotificationRepository(kv),
		Reports:       NewReportRepository(kv),
		Settings:      NewSettingsRepository(kv),
		Credentials:   NewCredentialRepository(kv),
	}
}
