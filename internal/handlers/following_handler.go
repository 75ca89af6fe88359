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

// FollowingHandler handles the follow/unfollow toggle.
type FollowingHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
}

// NewFollowingHandler creates a new FollowingHandler.
func NewFollowingHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FollowingHandler {
	return &FollowingHandler{followRepository: followRepo, userRepository: userRepo}
}

// RegisterFollowingRoutes registers follow-related routes.
func (h *FollowingHandler) RegisterFollowingRoutes(g *echo.Group) {
	g.POST("/following/", h.Operations)
}

// Operations dispatches on the form's operation field.
func (h *FollowingHandler) Operations(c echo.Context) error {
	operation := c.FormValue("operation")
	if operation != "follow" && operation != "unfollow" {
		return echo.NewHTTPError(http.StatusNotFound, "Unknown operation")
	}

	logname := middleware.Logname(c)

	var req models.FollowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.userRepository.GetUserByUsername(req.Username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if operation == "follow" {
		if err := h.followRepository.CreateFollow(logname, req.Username); err != nil {
			switch {
			case errors.Is(err, repositories.ErrSelfFollow):
				return echo.NewHTTPError(http.StatusConflict, "Cannot follow yourself")
			case errors.Is(err, repositories.ErrAlreadyFollowing):
				return echo.NewHTTPError(http.StatusConflict, "Already following this user")
			default:
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}
		}
	} else {
		if err := h.followRepository.DeleteFollow(logname, req.Username); err != nil {
			if errors.Is(err, repositories.ErrFollowNotFound) {
				return echo.NewHTTPError(http.StatusConflict, "Not following this user")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.Redirect(http.StatusFound, redirectTarget(c))
}
