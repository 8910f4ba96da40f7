package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pixgram/backend/internal/auth"
	"github.com/pixgram/backend/internal/models"
	"github.com/pixgram/backend/internal/services"
)

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	content *services.ContentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(content *services.ContentService) *CommentHandler {
	return &CommentHandler{content: content}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/comments/:postId", h.CreateComment)
	g.PUT("/comments/:commentId", h.UpdateComment)
	g.DELETE("/comments/:commentId", h.DeleteComment)
}

// CreateComment adds a comment on a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.content.CreateComment(
		c.Request().Context(),
		auth.CurrentUsername(c),
		c.Param("postId"),
		req.Content,
	)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// UpdateComment edits a comment's text; author only
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	commentID, err := commentIDParam(c)
	if err != nil {
		return err
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.content.EditComment(auth.CurrentUsername(c), commentID, req.Content); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Comment updated successfully"})
}

// DeleteComment removes a comment; author only
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	commentID, err := commentIDParam(c)
	if err != nil {
		return err
	}

	if err := h.content.DeleteComment(auth.CurrentUsername(c), commentID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Comment deleted successfully"})
}

func commentIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("commentId"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}
	return uint(id), nil
}
