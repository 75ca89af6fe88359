package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/appdev-labs/photofeed/internal/middleware"
	"github.com/appdev-labs/photofeed/internal/repositories"
)

// ViewsHandler serves the assembled read views: feed, single post, user
// profile, followers, following and explore.
type ViewsHandler struct {
	viewRepository repositories.ViewRepository
	userRepository repositories.UserRepository
}

// NewViewsHandler creates a new ViewsHandler.
func NewViewsHandler(viewRepo repositories.ViewRepository, userRepo repositories.UserRepository) *ViewsHandler {
	return &ViewsHandler{viewRepository: viewRepo, userRepository: userRepo}
}

// RegisterViewRoutes registers the read views.
func (h *ViewsHandler) RegisterViewRoutes(g *echo.Group) {
	g.GET("/", h.Index)
	g.GET("/posts/:postid/", h.Post)
	g.GET("/users/:username/", h.Profile)
	g.GET("/users/:username/followers/", h.Followers)
	g.GET("/users/:username/following/", h.Following)
	g.GET("/explore/", h.Explore)
}

// Index returns the feed: every post, newest first, fully assembled.
func (h *ViewsHandler) Index(c echo.Context) error {
	posts, err := h.viewRepository.GetFeed()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"logname": middleware.Logname(c),
		"posts":   posts,
	})
}

// Post returns one assembled post view.
func (h *ViewsHandler) Post(c echo.Context) error {
	postid, err := strconv.ParseUint(c.Param("postid"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	view, err := h.viewRepository.GetPostView(uint(postid))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"logname": middleware.Logname(c),
		"post":    view,
	})
}

// Profile returns the user-page context.
func (h *ViewsHandler) Profile(c echo.Context) error {
	profile, err := h.viewRepository.GetProfile(middleware.Logname(c), c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"logname": middleware.Logname(c),
		"profile": profile,
	})
}

// Followers lists who follows the user.
func (h *ViewsHandler) Followers(c echo.Context) error {
	username := c.Param("username")
	if err := h.requireUser(username); err != nil {
		return err
	}
	cards, err := h.viewRepository.GetFollowerCards(middleware.Logname(c), username)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"logname":   middleware.Logname(c),
		"followers": cards,
	})
}

// Following lists who the user follows.
func (h *ViewsHandler) Following(c echo.Context) error {
	username := c.Param("username")
	if err := h.requireUser(username); err != nil {
		return err
	}
	cards, err := h.viewRepository.GetFollowingCards(middleware.Logname(c), username)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"logname":   middleware.Logname(c),
		"following": cards,
	})
}

// Explore lists the users the viewer does not follow yet.
func (h *ViewsHandler) Explore(c echo.Context) error {
	cards, err := h.viewRepository.GetExploreCards(middleware.Logname(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"logname":       middleware.Logname(c),
		"not_following": cards,
	})
}

func (h *ViewsHandler) requireUser(username string) error {
	if _, err := h.userRepository.GetUserByUsername(username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return nil
}
