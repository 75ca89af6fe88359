package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/appdev-labs/photofeed/internal/middleware"
	"github.com/appdev-labs/photofeed/internal/models"
	"github.com/appdev-labs/photofeed/internal/repositories"
)

// LikesHandler handles the like/unlike toggle.
type LikesHandler struct {
	likeRepository repositories.LikeRepository
	postRepository repositories.PostRepository
}

// NewLikesHandler creates a new LikesHandler.
func NewLikesHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository) *LikesHandler {
	return &LikesHandler{likeRepository: likeRepo, postRepository: postRepo}
}

// RegisterLikeRoutes registers like-related routes.
func (h *LikesHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/likes/", h.Operations)
}

// Operations dispatches on the form's operation field.
func (h *LikesHandler) Operations(c echo.Context) error {
	operation := c.FormValue("operation")
	if operation != "like" && operation != "unlike" {
		return echo.NewHTTPError(http.StatusNotFound, "Unknown operation")
	}

	logname := middleware.Logname(c)

	var req models.LikeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.postRepository.GetPostByID(req.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if operation == "like" {
		if err := h.likeRepository.CreateLike(logname, req.PostID); err != nil {
			if errors.Is(err, repositories.ErrAlreadyLiked) {
				return echo.NewHTTPError(http.StatusConflict, "Post already liked by this user")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	} else {
		if err := h.likeRepository.DeleteLike(logname, req.PostID); err != nil {
			if errors.Is(err, repositories.ErrLikeNotFound) {
				return echo.NewHTTPError(http.StatusConflict, "Post is not liked by this user")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.Redirect(http.StatusFound, redirectTarget(c))
}
