package api

import (
	"github.com/labstack/echo/v4"
	"github.com/markusressel/dim2go/internal/gamma"
	"net/http"
	"strconv"
)

const urlParamBrightness = "brightness"

type GammaEntry struct {
	Brightness uint8  `json:"brightness"`
	Duty       uint16 `json:"duty"`
}

func registerGammaEndpoints(rest *echo.Echo) {
	group := rest.Group("/gamma")

	group.GET("/", getGammaTable)
	group.GET("/:"+urlParamBrightness+"/", getGammaEntry)
}

// returns the complete gamma table
func getGammaTable(c echo.Context) error {
	table := gamma.Table()
	return c.JSONPretty(http.StatusOK, table[:], indentationChar)
}

func getGammaEntry(c echo.Context) error {
	param := c.Param(urlParamBrightness)
	brightness, err := strconv.ParseUint(param, 10, 8)
	if err != nil {
		return c.JSONPretty(http.StatusBadRequest, &Result{
			Name:    "Bad request",
			Message: "Brightness must be a number in 0..255, got '" + param + "'",
		}, indentationChar)
	}
	return c.JSONPretty(http.StatusOK, GammaEntry{
		Brightness: uint8(brightness),
		Duty:       gamma.Lookup(uint8(brightness)),
	}, indentationChar)
}
