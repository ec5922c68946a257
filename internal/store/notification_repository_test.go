package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/startupcomply/comply/internal/models"
)

func newTestNotification(index int) models.Notification {
	return models.Notification{
		ID:        fmt.Sprintf("notification-%d", index),
		Title:     "Test",
		Message:   "Test notification",
		Type:      models.NotificationInfo,
		CreatedAt: time.Now(),
	}
}

func TestNotificationsAreCappedWithOldestEvicted(t *testing.T) {
	repo := NewNotificationRepository(newTestKV(t))

	for index := 0; index < NotificationCap+5; index++ {
		repo.Add(newTestNotification(index))
	}

	notifications := repo.GetAll()
	if len(notifications) != NotificationCap {
		t.Fatalf("expected cap of %d, got %d", NotificationCap, len(notifications))
	}
	if notifications[0].ID != fmt.Sprintf("notification-%d", NotificationCap+4) {
		t.Fatalf("expected newest at index 0, got %s", notifications[0].ID)
	}
}

func TestMarkReadAndMarkAllRead(t *testing.T) {
	repo := NewNotificationRepository(newTestKV(t))
	repo.Add(newTestNotification(1))
	repo.Add(newTestNotification(2))

	repo.MarkRead("notification-1")
	for _, notification := range repo.GetAll() {
		if notification.ID == "notification-1" && !notification.Read {
			t.Fatalf("expected notification-1 to be read")
		}
		if notification.ID == "notification-2" && notification.Read {
			t.Fatalf("expected notification-2 to stay unread")
		}
	}

	repo.MarkAllRead()
	for _, notification := range repo.GetAll() {
		if !notification.Read {
			t.Fatalf("expected all notifications read, %s is not", notification.ID)
		}
	}
}

func TestDeleteNotificationByUnknownIDIsNoOp(t *testing.T) {
	repo := NewNotificationRepository(newTestKV(t))
	repo.Add(newTestNotification(1))

	before := len(repo.GetAll())
	repo.Delete("does-not-exist")
	if after := len(repo.GetAll()); after != before {
		t.Fatalf("expected length %d after deleting unknown id, got %d", before, after)
	}
}
