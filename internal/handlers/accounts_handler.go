package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/appdev-labs/photofeed/internal/authz"
	"github.com/appdev-labs/photofeed/internal/middleware"
	"github.com/appdev-labs/photofeed/internal/models"
	"github.com/appdev-labs/photofeed/internal/repositories"
	"github.com/appdev-labs/photofeed/internal/storage"
	"github.com/appdev-labs/photofeed/pkg/password"
)

// AccountsHandler handles the account lifecycle: login, logout, creation,
// profile edit, password change and deletion.
type AccountsHandler struct {
	userRepository    repositories.UserRepository
	sessionRepository repositories.SessionRepository
	media             *storage.MediaStore
	sessionMaxAge     time.Duration
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	media *storage.MediaStore,
	sessionMaxAge time.Duration,
) *AccountsHandler {
	return &AccountsHandler{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		media:             media,
		sessionMaxAge:     sessionMaxAge,
	}
}

// RegisterAccountRoutes registers account-related routes. The operation POST
// resolves identity itself because login and create run anonymously.
func (h *AccountsHandler) RegisterAccountRoutes(e *echo.Echo) {
	e.POST("/accounts/", h.Operations)
	e.POST("/accounts/logout/", h.Logout)
	e.GET("/accounts/login/", h.LoginPage)
	e.GET("/accounts/create/", h.CreatePage)
}

// Operations dispatches on the form's operation field.
func (h *AccountsHandler) Operations(c echo.Context) error {
	switch c.FormValue("operation") {
	case "login":
		return h.login(c)
	case "create":
		return h.create(c)
	case "delete":
		return h.delete(c)
	case "edit_account":
		return h.editAccount(c)
	case "update_password":
		return h.updatePassword(c)
	default:
		return echo.NewHTTPError(http.StatusNotFound, "Unknown operation")
	}
}

// LoginPage returns the login page context; an authenticated user is sent
// home instead.
func (h *AccountsHandler) LoginPage(c echo.Context) error {
	if middleware.Logname(c) != "" {
		return c.Redirect(http.StatusFound, "/")
	}
	return c.JSON(http.StatusOK, echo.Map{"page": "login"})
}

// CreatePage returns the account-creation page context.
func (h *AccountsHandler) CreatePage(c echo.Context) error {
	if middleware.Logname(c) != "" {
		return c.Redirect(http.StatusFound, "/")
	}
	return c.JSON(http.StatusOK, echo.Map{"page": "create"})
}

// Logout destroys the current session.
func (h *AccountsHandler) Logout(c echo.Context) error {
	if middleware.Logname(c) == "" {
		return echo.NewHTTPError(http.StatusForbidden, "Authentication required")
	}
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil {
		if err := h.sessionRepository.DeleteSession(cookie.Value); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	middleware.ClearSessionCookie(c)
	return c.Redirect(http.StatusFound, middleware.LoginRoute)
}

func (h *AccountsHandler) login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusForbidden, "Invalid username or password")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := authz.VerifyCredential(req.Password, user.Password); err != nil {
		if errors.Is(err, authz.ErrForbidden) {
			return echo.NewHTTPError(http.StatusForbidden, "Invalid username or password")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.startSession(c, user.Username); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, redirectTarget(c))
}

func (h *AccountsHandler) create(c echo.Context) error {
	var req models.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Avatar file is required")
	}
	avatar, err := h.media.Save(file)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	user := &models.User{
		Username: req.Username,
		Fullname: req.Fullname,
		Email:    req.Email,
		Password: password.Hash(req.Password),
		Filename: avatar,
	}
	if err := h.userRepository.CreateUser(user); err != nil {
		h.media.Remove(avatar)
		if errors.Is(err, repositories.ErrUsernameTaken) {
			return echo.NewHTTPError(http.StatusConflict, "Username already taken")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Account creation logs the new user in.
	if err := h.startSession(c, user.Username); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, redirectTarget(c))
}

func (h *AccountsHandler) delete(c echo.Context) error {
	logname := middleware.Logname(c)
	if logname == "" {
		return echo.NewHTTPError(http.StatusForbidden, "Authentication required")
	}

	files, err := h.userRepository.DeleteUserCascade(logname)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.media.Remove(files...); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	middleware.ClearSessionCookie(c)
	return c.Redirect(http.StatusFound, redirectTarget(c))
}

func (h *AccountsHandler) editAccount(c echo.Context) error {
	logname := middleware.Logname(c)
	if logname == "" {
		return echo.NewHTTPError(http.StatusForbidden, "Authentication required")
	}

	var req models.EditAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// An omitted avatar file keeps the existing one.
	var avatar, previous string
	if file, err := c.FormFile("file"); err == nil {
		user, err := h.userRepository.GetUserByUsername(logname)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		previous = user.Filename
		if avatar, err = h.media.Save(file); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	if err := h.userRepository.UpdateProfile(logname, req.Fullname, req.Email, avatar); err != nil {
		if avatar != "" {
			h.media.Remove(avatar)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if avatar != "" && previous != avatar {
		if err := h.media.Remove(previous); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.Redirect(http.StatusFound, redirectTarget(c))
}

func (h *AccountsHandler) updatePassword(c echo.Context) error {
	logname := middleware.Logname(c)
	if logname == "" {
		return echo.NewHTTPError(http.StatusForbidden, "Authentication required")
	}

	var req models.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByUsername(logname)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := authz.VerifyCredential(req.Password, user.Password); err != nil {
		if errors.Is(err, authz.ErrForbidden) {
			return echo.NewHTTPError(http.StatusForbidden, "Invalid password")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := authz.ConfirmNewPassword(req.NewPassword1, req.NewPassword2); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	if err := h.userRepository.UpdatePassword(logname, password.Hash(req.NewPassword1)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, redirectTarget(c))
}

func (h *AccountsHandler) startSession(c echo.Context, username string) error {
	session := &models.Session{
		ID:        uuid.New().String(),
		Username:  username,
		ExpiresAt: time.Now().Add(h.sessionMaxAge),
	}
	if err := h.sessionRepository.CreateSession(session); err != nil {
		return err
	}
	middleware.SetSessionCookie(c, session.ID, session.ExpiresAt)
	return nil
}
