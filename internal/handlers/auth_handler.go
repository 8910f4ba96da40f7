package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pixgram/backend/internal/apperrors"
	"github.com/pixgram/backend/internal/auth"
	"github.com/pixgram/backend/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles login: it verifies HTTP Basic credentials and
// issues the token cookie.
type AuthHandler struct {
	people repositories.PersonRepository
	tokens *auth.TokenManager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(people repositories.PersonRepository, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{people: people, tokens: tokens}
}

// RegisterAuthRoutes registers the public login probe
func (h *AuthHandler) RegisterAuthRoutes(e *echo.Echo) {
	e.GET("/login", h.Login)
}

// Login verifies the Basic credentials, sets the token cookie and echoes
// the authenticated username. It doubles as the "who am I" probe for the
// front end.
func (h *AuthHandler) Login(c echo.Context) error {
	username, password, ok := c.Request().BasicAuth()
	if !ok {
		return httpError(apperrors.ErrBadCredentials)
	}

	person, err := h.people.GetPersonByUsername(username)
	if err != nil {
		return httpError(apperrors.ErrBadCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(person.Password), []byte(password)); err != nil {
		return httpError(apperrors.ErrBadCredentials)
	}

	token, err := h.tokens.Issue(person.Username)
	if err != nil {
		return httpError(err)
	}
	c.SetCookie(h.tokens.NewCookie(token))

	return c.JSON(http.StatusOK, echo.Map{"username": person.Username})
}
