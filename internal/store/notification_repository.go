package store

import "github.com/startupcomply/comply/internal/models"

type NotificationRepository struct {
	kv *KV
}

func NewNotificationRepository(kv *KV) *NotificationRepository {
	return &NotificationRepository{kv: kv}
}

// GetAll returns notifications newest-first.
func (repo *NotificationRepository) GetAll() []models.Notification {
	return Read(repo.kv, KeyNotifications, defaultNotifications())
}

// Add prepends and evicts beyond the cap.
func (repo *NotificationRepository) Add(notification models.Notification) {
	repo.kv.WithLock(KeyNotifications, func() {
		notifications := repo.GetAll()
		notifications = append([]models.Notification{notification}, notifications...)
		if len(notifications) > NotificationCap {
			notifications = notifications[:NotificationCap]
		}
		Write(repo.kv, KeyNotifications, notifications)
	})
}

func (repo *NotificationRepository) MarkRead(id string) {
	repo.kv.WithLock(KeyNotifications, func() {
		notifications := repo.GetAll()
		for index := range notifications {
			if notifications[index].ID == id {
				notifications[index].Read = true
				Write(repo.kv, KeyNotifications, notifications)
				break
			}
		}
	})
}

func (repo *NotificationRepository) MarkAllRead() {
	repo.kv.WithLock(KeyNotifications, func() {
		notifications := repo.GetAll()
		for index := range notifications {
			notifications[index].Read = true
		}
		Write(repo.kv, KeyNotifications, notifications)
	})
}

func (repo *NotificationRepository) Delete(id string) {
	repo.kv.WithLock(KeyNotifications, func() {
		notifications := repo.GetAll()
		filtered := make([]models.Notification, 0, len(notifications))
		for _, notification := range notifications {
			if notification.ID != id {
				filtered = append(filtered, notification)
			}
		}
		Write(repo.kv, KeyNotifications, filtered)
	})
}
