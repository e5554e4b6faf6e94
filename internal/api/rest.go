package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/markusressel/dim2go/internal/configuration"
	"github.com/markusressel/dim2go/internal/diagnostics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/qdm12/reprint"
	"net/http"
)

const (
	indentationChar = "  "
)

type (
	Result struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
)

// StateSource provides the latest diagnostics of the control loop
type StateSource interface {
	Latest() (diagnostics.Snapshot, bool)
}

// CreateRestService creates the read-only REST API. It never touches the
// control loop, all data is read from the given source.
func CreateRestService(source StateSource, config configuration.Configuration) *echo.Echo {
	registry := prometheus.NewRegistry()
	echoRest := CreateWebserver(registry)

	echoRest.GET("/alive/", isAlive)

	registerStateEndpoints(echoRest, source)
	registerGammaEndpoints(echoRest)
	registerConfigEndpoints(echoRest, config)

	echoRest.GET("/metrics/", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, registry},
	}))

	return echoRest
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func registerConfigEndpoints(rest *echo.Echo, config configuration.Configuration) {
	rest.GET("/config/", func(c echo.Context) error {
		data := reprint.This(config)
		return c.JSONPretty(http.StatusOK, data, indentationChar)
	})
}

// return a "not available" message
func returnUnavailable(c echo.Context, message string) (err error) {
	return c.JSONPretty(http.StatusServiceUnavailable, &Result{
		Name:    "Not available",
		Message: message,
	}, indentationChar)
}
