package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// connectivity probe.
func HelloHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"msg": "Hello World"})
	}
}
