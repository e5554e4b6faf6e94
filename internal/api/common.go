package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// CreateWebserver creates an echo instance with the middleware shared by all endpoints.
// Request metrics are registered to the given registerer.
func CreateWebserver(registerer prometheus.Registerer) *echo.Echo {
	webserver := echo.New()
	webserver.HideBanner = true
	webserver.HidePort = true

	// Root level middleware
	webserver.Pre(middleware.AddTrailingSlash())

	webserver.Use(middleware.Secure())
	webserver.Use(middleware.Recover())
	webserver.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "dim2go",
		Subsystem:  "api",
		Registerer: registerer,
	}))

	return webserver
}
