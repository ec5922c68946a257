package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListNotifications(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"notifications": handler.notifications.List(),
		"unreadCount":   handler.notifications.UnreadCount(),
	})
}

func (handler *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	handler.notifications.MarkRead(c.Params("id"))
	return sendOK(c)
}

func (handler *Handler) MarkAllNotificationsRead(c *fiber.Ctx) error {
	handler.notifications.MarkAllRead()
	return sendOK(c)
}

func (handler *Handler) DeleteNotification(c *fiber.Ctx) error {
	handler.notifications.Delete(c.Params("id"))
	return sendOK(c)
}
