package controllers

import (
	"net/http"

	"github.com/YT-Kowshick/Women-Safety-Ai/internal/models"
	"github.com/YT-Kowshick/Women-Safety-Ai/internal/services"
	"github.com/labstack/echo/v4"
)

// SOSController exposes the emergency message composer.
type SOSController struct {
	svc services.SOSService
}

func NewSOSController(svc services.SOSService) *SOSController {
	return &SOSController{svc: svc}
}

func (ctr *SOSController) Register(g *echo.Group) {
	g.POST("/sos/compose", ctr.Compose)
}

// Compose handles POST /sos/compose: builds the alert text the client
// forwards to emergency contacts.
func (ctr *SOSController) Compose(c echo.Context) error {
	req := new(models.SOSRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, detail("invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return respondError(c, err)
	}

	msg, err := ctr.svc.Compose(c.Request().Context(), *req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, msg)
}
