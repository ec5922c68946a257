package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", handler.Signup)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/session", handler.AuthRequired, handler.SessionInfo)

	api.Patch("/profile", handler.AuthRequired, handler.UpdateProfile)
	api.Get("/company", handler.AuthRequired, handler.GetCompany)
	api.Patch("/company", handler.AuthRequired, handler.UpdateCompany)

	checklists := api.Group("/checklists", handler.AuthRequired)
	checklists.Get("", handler.ListChecklists)
	checklists.Post("", handler.CreateChecklist)
	checklists.Get("/:id", handler.GetChecklist)
	checklists.Put("/:id", handler.UpdateChecklist)
	checklists.Delete("/:id", handler.DeleteChecklist)
	checklists.Post("/:id/items", handler.AddChecklistItem)
	checklists.Delete("/:id/items/:itemID", handler.DeleteChecklistItem)
	checklists.Post("/:id/items/:itemID/toggle", handler.ToggleChecklistItem)

	templates := api.Group("/templates", handler.AuthRequired)
	templates.Get("", handler.ListTemplates)
	templates.Post("/:id/download", handler.DownloadTemplate)

	team := api.Group("/team", handler.AuthRequired)
	team.Get("", handler.ListTeamMembers)
	team.Post("", handler.InviteTeamMember)
	team.Put("/:id", handler.UpdateTeamMember)
	team.Delete("/:id", handler.DeleteTeamMember)

	notifications := api.Group("/notifications", handler.AuthRequired)
	notifications.Get("", handler.ListNotifications)
	notifications.Post("/read-all", handler.MarkAllNotificationsRead)
	notifications.Post("/:id/read", handler.MarkNotificationRead)
	notifications.Delete("/:id", handler.DeleteNotification)

	api.Get("/activities", handler.AuthRequired, handler.ListActivities)

	reports := api.Group("/reports", handler.AuthRequired)
	reports.Get("", handler.ListReports)
	reports.Post("/generate", handler.GenerateReport)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Get("/notifications", handler.GetNotificationSettings)
	settings.Put("/notifications", handler.UpdateNotificationSettings)
	settings.Get("/security", handler.GetSecuritySettings)
	settings.Put("/security", handler.UpdateSecuritySettings)
}
