package api

import (
	"github.com/startupcomply/comply/internal/services"
	"github.com/startupcomply/comply/internal/store"
)

// NewHandler wires the repository container and the service layer around
// one key-value store. The auth service owns the session state; everything
// needing the current display name gets it through that one instance.
func NewHandler(kv *store.KV, secretKey string, cookieSecure bool) *Handler {
	repositories := store.NewRepositories(kv)
	auth := services.NewAuthService(
		repositories.Users,
		repositories.Company,
		repositories.Credentials,
		repositories.Activities,
	)

	return &Handler{
		repositories:  repositories,
		auth:          auth,
		checklists:    services.NewChecklistService(repositories.Checklists, repositories.Activities, auth),
		reports:       services.NewReportService(repositories.Checklists, repositories.Activities, repositories.Reports, auth),
		team:          services.NewTeamService(repositories.TeamMembers),
		templates:     services.NewTemplateService(repositories.Templates, repositories.Activities, auth),
		notifications: services.NewNotificationService(repositories.Notifications),
		settings:      services.NewSettingsService(repositories.Settings),
		secretKey:     []byte(secretKey),
		cookieSecure:  cookieSecure,
	}
}
