package api

import (
	"github.com/labstack/echo/v4"
	"net/http"
)

func registerStateEndpoints(rest *echo.Echo, source StateSource) {
	group := rest.Group("/state")

	group.GET("/", func(c echo.Context) error {
		return getState(c, source)
	})
}

// returns the values of the latest control loop cycle
func getState(c echo.Context, source StateSource) error {
	data, ok := source.Latest()
	if !ok {
		return returnUnavailable(c, "The control loop has not completed a cycle yet")
	}
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}
