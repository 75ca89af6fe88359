package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/appdev-labs/photofeed/internal/repositories"
)

// SessionCookie is the name of the login-session cookie.
const SessionCookie = "sessionid"

// LoginRoute is where anonymous page views are redirected.
const LoginRoute = "/accounts/login/"

const lognameKey = "logname"

// SessionResolver resolves the session cookie to a request-scoped identity
// and stores it in the echo context. It never rejects; enforcement is
// RequireSession's job.
func SessionResolver(sessions repositories.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err == nil && cookie.Value != "" {
				if session, err := sessions.GetSession(cookie.Value); err == nil {
					c.Set(lognameKey, session.Username)
				}
			}
			return next(c)
		}
	}
}

// RequireSession rejects anonymous requests: page views are redirected to the
// login route, everything else gets 403.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Logname(c) == "" {
				if c.Request().Method == http.MethodGet {
					return c.Redirect(http.StatusFound, LoginRoute)
				}
				return echo.NewHTTPError(http.StatusForbidden, "Authentication required")
			}
			return next(c)
		}
	}
}

// Logname returns the authenticated username for this request, or "".
func Logname(c echo.Context) string {
	if name, ok := c.Get(lognameKey).(string); ok {
		return name
	}
	return ""
}

// SetSessionCookie attaches a session cookie to the response.
func SetSessionCookie(c echo.Context, id string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  expires,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
	})
}
