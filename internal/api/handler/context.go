package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillforge/course-platform/internal/api/middleware"
)

// subjectID extracts the account id injected by the Auth middleware. An empty
// id means the middleware never ran on this route; reject rather than operate
// on a blank owner.
func subjectID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.SubjectIDKey).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusForbidden, "missing authentication claims")
	}
	return id, nil
}
