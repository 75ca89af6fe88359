package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/appdev-labs/photofeed/internal/authz"
	"github.com/appdev-labs/photofeed/internal/middleware"
	"github.com/appdev-labs/photofeed/internal/models"
	"github.com/appdev-labs/photofeed/internal/repositories"
	"github.com/appdev-labs/photofeed/internal/storage"
)

// PostsHandler handles post creation and deletion.
type PostsHandler struct {
	postRepository repositories.PostRepository
	media          *storage.MediaStore
}

// NewPostsHandler creates a new PostsHandler.
func NewPostsHandler(postRepo repositories.PostRepository, media *storage.MediaStore) *PostsHandler {
	return &PostsHandler{postRepository: postRepo, media: media}
}

// RegisterPostRoutes registers post-related routes.
func (h *PostsHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts/", h.Operations)
}

// Operations dispatches on the form's operation field.
func (h *PostsHandler) Operations(c echo.Context) error {
	switch c.FormValue("operation") {
	case "create":
		return h.create(c)
	case "delete":
		return h.delete(c)
	default:
		return echo.NewHTTPError(http.StatusNotFound, "Unknown operation")
	}
}

func (h *PostsHandler) create(c echo.Context) error {
	logname := middleware.Logname(c)

	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Media file is required")
	}
	filename, err := h.media.Save(file)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	post := &models.Post{Owner: logname, Filename: filename}
	if err := h.postRepository.CreatePost(post); err != nil {
		h.media.Remove(filename)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, redirectTarget(c))
}

func (h *PostsHandler) delete(c echo.Context) error {
	logname := middleware.Logname(c)

	var req models.DeletePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := authz.RequireOwner(logname, post.Owner); err != nil {
		return echo.NewHTTPError(http.StatusForbidden, "You are not the owner of this post")
	}

	filename, err := h.postRepository.DeletePostCascade(req.PostID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.media.Remove(filename); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, redirectTarget(c))
}
