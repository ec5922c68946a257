package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/startupcomply/comply/internal/models"
)

type NotificationStore interface {
	GetAll() []models.Notification
	Add(notification models.Notification)
	MarkRead(id string)
	MarkAllRead()
	Delete(id string)
}

type NotificationService struct {
	notifications NotificationStore
}

func NewNotificationService(notifications NotificationStore) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (service *NotificationService) List() []models.Notification {
	return service.notifications.GetAll()
}

func (service *NotificationService) UnreadCount() int {
	count := 0
	for _, notification := range service.notifications.GetAll() {
		if !notification.Read {
			count++
		}
	}
	return count
}

func (service *NotificationService) Notify(title string, message string, notificationType string, actionURL string) models.Notification {
	notification := models.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      defaultString(notificationType, models.NotificationInfo),
		Read:      false,
		CreatedAt: time.Now(),
		ActionURL: actionURL,
	}
	service.notifications.Add(notification)
	return notification
}

func (service *NotificationService) MarkRead(id string) {
	service.notifications.MarkRead(id)
}

func (service *NotificationService) MarkAllRead() {
	service.notifications.MarkAllRead()
}

func (service *NotificationService) Delete(id string) {
	service.notifications.Delete(id)
}
