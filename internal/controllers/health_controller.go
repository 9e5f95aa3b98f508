package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthController exposes the liveness probe.
type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (ctr *HealthController) Register(g *echo.Group) {
	g.GET("/health", ctr.Health)
}

func (ctr *HealthController) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
