package controllers

import (
	"net/http"
	"strconv"

	"github.com/YT-Kowshick/Women-Safety-Ai/internal/services"
	"github.com/labstack/echo/v4"
)

// TrendsController exposes the per-state crime trend route.
type TrendsController struct {
	svc services.TrendService
}

func NewTrendsController(svc services.TrendService) *TrendsController {
	return &TrendsController{svc: svc}
}

func (ctr *TrendsController) Register(g *echo.Group) {
	g.GET("/trends", ctr.GetTrends)
}

// GetTrends handles GET /trends?state=&crime=[&smooth=]. The optional
// smooth flag adds a trailing 3-year moving average to each point that has
// a full window behind it.
func (ctr *TrendsController) GetTrends(c echo.Context) error {
	state := c.QueryParam("state")
	crime := c.QueryParam("crime")
	if state == "" || crime == "" {
		return c.JSON(http.StatusBadRequest, detail("query parameters 'state' and 'crime' are required"))
	}

	smooth := false
	if raw := c.QueryParam("smooth"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, detail("query parameter 'smooth' must be a boolean"))
		}
		smooth = v
	}

	resp, err := ctr.svc.CrimeTrend(c.Request().Context(), state, crime, smooth)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}
