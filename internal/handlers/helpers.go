package handlers

import "github.com/labstack/echo/v4"

// redirectTarget returns the caller-supplied redirect override, or the
// default route.
func redirectTarget(c echo.Context) string {
	if target := c.FormValue("target"); target != "" {
		return target
	}
	return "/"
}
