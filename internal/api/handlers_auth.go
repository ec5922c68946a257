package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/startupcomply/comply/internal/services"
)

type signupRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	JobTitle   string `json:"jobTitle"`
	Department string `json:"department"`
	Location   string `json:"location"`
	Timezone   string `json:"timezone"`
	Phone      string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) Signup(c *fiber.Ctx) error {
	var request signupRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(request.Email) == "" || request.Password == "" ||
		strings.TrimSpace(request.FirstName) == "" || strings.TrimSpace(request.LastName) == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	created := handler.auth.Signup(services.SignupInput{
		Email:      request.Email,
		FirstName:  request.FirstName,
		LastName:   request.LastName,
		JobTitle:   request.JobTitle,
		Department: request.Department,
		Location:   request.Location,
		Timezone:   request.Timezone,
		Phone:      request.Phone,
	}, request.Password)
	if !created {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	session := handler.auth.Session()
	if err := handler.setAuthCookie(c, session.User); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":    session.User,
		"company": session.Company,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var request loginRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	// Unknown email and wrong password collapse into one answer.
	if !handler.auth.Login(request.Email, request.Password) {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	session := handler.auth.Session()
	if err := handler.setAuthCookie(c, session.User); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"user":    session.User,
		"company": session.Company,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.auth.Logout()
	handler.clearAuthCookie(c)
	return sendOK(c)
}

func (handler *Handler) SessionInfo(c *fiber.Ctx) error {
	session := handler.auth.Session()
	// A valid cookie can outlive the in-memory session, for example right
	// after a restart. The token's user is still authenticated.
	if session.User == nil {
		if user := currentUser(c); user != nil {
			session = services.Session{
				Authenticated: true,
				User:          user,
				Company:       handler.repositories.Company.Get(),
			}
		}
	}
	return c.JSON(fiber.Map{
		"isAuthenticated": session.Authenticated,
		"user":            session.User,
		"company":         session.Company,
	})
}
