package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pixgram/backend/internal/apperrors"
	"github.com/pixgram/backend/internal/auth"
	"github.com/pixgram/backend/internal/models"
	"github.com/pixgram/backend/internal/repositories"
	"github.com/pixgram/backend/internal/services"
	"golang.org/x/crypto/bcrypt"
)

// PersonHandler handles person-related HTTP requests
type PersonHandler struct {
	people repositories.PersonRepository
	graph  *services.GraphService
}

// NewPersonHandler creates a new PersonHandler
func NewPersonHandler(people repositories.PersonRepository, graph *services.GraphService) *PersonHandler {
	return &PersonHandler{people: people, graph: graph}
}

// RegisterPublicRoutes registers registration, which needs no token
func (h *PersonHandler) RegisterPublicRoutes(e *echo.Echo) {
	e.POST("/persons", h.Register)
}

// RegisterPersonRoutes registers the gated person routes
func (h *PersonHandler) RegisterPersonRoutes(g *echo.Group) {
	g.GET("/persons/suggestions", h.Suggestions)
	g.GET("/persons/info/:username", h.Info)
	g.GET("/persons/stats/:username", h.Stats)
	g.POST("/persons/follow/:username", h.Follow)
	g.PUT("/persons", h.Edit)
}

// Register creates a new person with a hashed password
func (h *PersonHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return httpError(err)
	}

	person := &models.Person{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashedPassword),
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
	}
	if err := h.people.CreatePerson(person); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, person)
}

// Info returns the profile projection decorated with the viewer's follow flag
func (h *PersonHandler) Info(c echo.Context) error {
	username := c.Param("username")
	person, err := h.people.GetPersonByUsername(username)
	if err != nil {
		return httpError(err)
	}

	follow := false
	if viewer := auth.CurrentUsername(c); viewer != "" && viewer != username {
		follow, err = h.graph.IsFollowing(viewer, username)
		if err != nil {
			return httpError(err)
		}
	}

	return c.JSON(http.StatusOK, models.PersonInfo{
		Username:  person.Username,
		Bio:       person.Bio,
		Firstname: person.Firstname,
		Lastname:  person.Lastname,
		Validated: person.Validated,
		Photo:     person.Photo,
		Follow:    follow,
	})
}

// Stats returns the follower/following/post counters
func (h *PersonHandler) Stats(c echo.Context) error {
	stats, err := h.graph.Stats(c.Request().Context(), c.Param("username"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// Suggestions returns a random sample of not-yet-followed persons
func (h *PersonHandler) Suggestions(c echo.Context) error {
	suggestions, err := h.graph.Suggestions(auth.CurrentUsername(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, suggestions)
}

// Follow toggles the follow edge towards the target person
func (h *PersonHandler) Follow(c echo.Context) error {
	following, err := h.graph.ToggleFollow(auth.CurrentUsername(c), c.Param("username"))
	if err != nil {
		return httpError(err)
	}
	status := http.StatusOK
	if following {
		status = http.StatusCreated
	}
	return c.JSON(status, echo.Map{"following": following})
}

// Edit updates the authenticated person's own profile
func (h *PersonHandler) Edit(c echo.Context) error {
	var req models.EditPersonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor := auth.CurrentUsername(c)
	if req.Username != actor {
		return httpError(apperrors.ErrForbidden)
	}

	person, err := h.people.GetPersonByUsername(actor)
	if err != nil {
		return httpError(err)
	}

	person.Email = req.Email
	person.Firstname = req.Firstname
	person.Lastname = req.Lastname
	person.Bio = req.Bio
	person.Photo = req.Photo
	if err := h.people.UpdatePerson(person); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Profile updated successfully"})
}
