package services

import "github.com/startupcomply/comply/internal/models"

type SettingsStore interface {
	NotificationSettings() models.NotificationSettings
	UpdateNotificationSettings(settings models.NotificationSettings)
	SecuritySettings() models.SecuritySettings
	UpdateSecuritySettings(settings models.SecuritySettings)
}

type SettingsService struct {
	settings SettingsStore
}

func NewSettingsService(settings SettingsStore) *SettingsService {
	return &SettingsService{settings: settings}
}

func (service *SettingsService) NotificationSettings() models.NotificationSettings {
	return service.settings.NotificationSettings()
}

func (service *SettingsService) UpdateNotificationSettings(settings models.NotificationSettings) {
	service.settings.UpdateNotificationSettings(settings)
}

func (service *SettingsService) SecuritySettings() models.SecuritySettings {
	return service.settings.SecuritySettings()
}

func (service *SettingsService) UpdateSecuritySettings(settings models.SecuritySettings) {
	service.settings.UpdateSecuritySettings(settings)
}
