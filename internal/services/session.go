package services

import "github.com/startupcomply/comply/internal/models"

// Session is the explicit authentication state owned by AuthService and
// injected wherever current-user context is needed. Keeping it a plain
// value lets tests run isolated sessions side by side.
type Session struct {
	Authenticated bool
	User          *models.User
	Company       *models.Company
}

func (session Session) DisplayName() string {
	if session.User == nil {
		return ""
	}
	return session.User.DisplayName()
}
