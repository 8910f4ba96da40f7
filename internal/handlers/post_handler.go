package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pixgram/backend/internal/auth"
	"github.com/pixgram/backend/internal/models"
	"github.com/pixgram/backend/internal/services"
)

// PostHandler handles post-related HTTP requests: lifecycle, like toggle
// and the feed views.
type PostHandler struct {
	content *services.ContentService
	graph   *services.GraphService
	feed    *services.FeedService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(content *services.ContentService, graph *services.GraphService, feed *services.FeedService) *PostHandler {
	return &PostHandler{content: content, graph: graph, feed: feed}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/feed", h.Feed)
	g.GET("/posts/preview/:username", h.Preview)
	g.POST("/posts/like/:postId", h.Like)
	g.GET("/posts/:postId", h.Detail)
	g.PUT("/posts/:postId", h.EditPost)
	g.DELETE("/posts/:postId", h.DeletePost)
}

// CreatePost creates a post and returns its preview projection
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.content.CreatePost(c.Request().Context(), auth.CurrentUsername(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, services.PostPreview{
		ID:    post.ID.Hex(),
		Image: post.Image,
	})
}

// Detail returns the full post view with a page of comments
func (h *PostHandler) Detail(c echo.Context) error {
	detail, err := h.feed.PostDetail(
		c.Request().Context(),
		c.Param("postId"),
		auth.CurrentUsername(c),
		pageParam(c),
	)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

// Preview returns one page of a person's profile grid
func (h *PostHandler) Preview(c echo.Context) error {
	page, err := h.feed.ProfilePreview(c.Request().Context(), c.Param("username"), pageParam(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// Feed returns one page of the viewer's home feed
func (h *PostHandler) Feed(c echo.Context) error {
	page, err := h.feed.HomeFeed(c.Request().Context(), auth.CurrentUsername(c), pageParam(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// Like toggles the viewer's like on the post
func (h *PostHandler) Like(c echo.Context) error {
	liked, err := h.graph.ToggleLike(c.Request().Context(), auth.CurrentUsername(c), c.Param("postId"))
	if err != nil {
		return httpError(err)
	}
	status := http.StatusOK
	if liked {
		status = http.StatusCreated
	}
	return c.JSON(status, echo.Map{"liked": liked})
}

// EditPost replaces the post's content; uploader only
func (h *PostHandler) EditPost(c echo.Context) error {
	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.content.EditPost(c.Request().Context(), auth.CurrentUsername(c), c.Param("postId"), req); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Post edited successfully"})
}

// DeletePost removes the post and its like/comment cascade; uploader only
func (h *PostHandler) DeletePost(c echo.Context) error {
	if err := h.content.DeletePost(c.Request().Context(), auth.CurrentUsername(c), c.Param("postId")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Post deleted successfully"})
}

// pageParam reads the zero-based page index; absent or malformed values
// mean the first page.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 0 {
		return 0
	}
	return page
}
