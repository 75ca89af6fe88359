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
)

// CommentsHandler handles comment creation and deletion.
type CommentsHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
}

// NewCommentsHandler creates a new CommentsHandler.
func NewCommentsHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentsHandler {
	return &CommentsHandler{commentRepository: commentRepo, postRepository: postRepo}
}

// RegisterCommentRoutes registers comment-related routes.
func (h *CommentsHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/comments/", h.Operations)
}

// Operations dispatches on the form's operation field.
func (h *CommentsHandler) Operations(c echo.Context) error {
	switch c.FormValue("operation") {
	case "create":
		return h.create(c)
	case "delete":
		return h.delete(c)
	default:
		return echo.NewHTTPError(http.StatusNotFound, "Unknown operation")
	}
}

func (h *CommentsHandler) create(c echo.Context) error {
	logname := middleware.Logname(c)

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
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

	comment := &models.Comment{Owner: logname, PostID: req.PostID, Text: req.Text}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		if errors.Is(err, repositories.ErrEmptyComment) {
			return echo.NewHTTPError(http.StatusBadRequest, "Comment text is required")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, redirectTarget(c))
}

func (h *CommentsHandler) delete(c echo.Context) error {
	logname := middleware.Logname(c)

	var req models.DeleteCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentRepository.GetCommentByID(req.CommentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := authz.RequireOwner(logname, comment.Owner); err != nil {
		return echo.NewHTTPError(http.StatusForbidden, "You are not the owner of this comment")
	}

	if err := h.commentRepository.DeleteComment(req.CommentID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, redirectTarget(c))
}
