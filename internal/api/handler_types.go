package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/startupcomply/comply/internal/services"
	"github.com/startupcomply/comply/internal/store"
)

type Handler struct {
	repositories  *store.Repositories
	auth          *services.AuthService
	checklists    *services.ChecklistService
	reports       *services.ReportService
	team          *services.TeamService
	templates     *services.TemplateService
	notifications *services.NotificationService
	settings      *services.SettingsService

	secretKey    []byte
	cookieSecure bool
}

const (
	authCookieName      = "comply_session"
	defaultAuthTokenTTL = 7 * 24 * time.Hour
)

const contextUserKey = "comply_current_user"

type authClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}
