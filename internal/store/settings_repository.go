package store

import "github.com/startupcomply/comply/internal/models"

type SettingsRepository struct {
	kv *KV
}

func NewSettingsRepository(kv *KV) *SettingsRepository {
	return &SettingsRepository{kv: kv}
}

func (repo *SettingsRepository) NotificationSettings() models.NotificationSettings {
	return Read(repo.kv, KeyNotificationSettings, models.DefaultNotificationSettings())
}

func (repo *SettingsRepository) UpdateNotificationSettings(settings models.NotificationSettings) {
	Write(repo.kv, KeyNotificationSettings, settings)
}

func (repo *SettingsRepository) SecuritySettings() models.SecuritySettings {
	return Read(repo.kv, KeySecuritySettings, models.DefaultSecuritySettings())
}

func (repo *SettingsRepository) UpdateSecuritySettings(settings models.SecuritySettings) {
	Write(repo.kv, KeySecuritySettings, settings)
}
