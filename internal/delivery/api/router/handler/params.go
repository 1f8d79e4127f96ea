package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// parseID reads a positive int64 path parameter.
func parseID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
